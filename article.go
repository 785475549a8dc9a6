package articleforge

// ImageRecord is one resolved article image. The binary payload is owned
// exclusively by the record: Data holds decoded bytes when the API returned
// base64, B64 keeps the original payload, and URL points at a remote image
// when no bytes were returned.
type ImageRecord struct {
	// URL is the publishable reference spliced into the article content,
	// or the remote image URL when the API returned one.
	URL string

	// Prompt is the prompt that produced the image, kept for provenance and
	// regeneration.
	Prompt string

	// Filename is unique within an ArticleResult.
	Filename string

	// Data is the decoded image payload, nil when only a URL is known.
	Data []byte

	// B64 is the base64 payload as returned by the API, "" when absent.
	B64 string
}

// ArticleResult is the normalized output of one generation run. Content is
// final once the image resolution phase completes; regeneration replaces a
// single Images entry in place and touches nothing else.
type ArticleResult struct {
	Title   string
	Content string
	Slug    string
	Images  []ImageRecord
}
