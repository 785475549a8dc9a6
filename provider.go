package articleforge

import "context"

// TextProvider generates article markdown from a system/user prompt pair.
type TextProvider interface {
	GenerateText(ctx context.Context, system, user string, opts ...Option) (string, error)
}

// ImageProvider generates a single image from a text prompt.
type ImageProvider interface {
	GenerateImage(ctx context.Context, prompt string, opts ...ImageOption) (*GeneratedImage, error)
}

// GeneratedImage is the raw result of one image generation call. Exactly one
// of Base64 and URL is expected to be set, depending on the response format
// the endpoint honored.
type GeneratedImage struct {
	// Base64 contains base64-encoded image data.
	Base64 string
	// URL contains a remote image URL.
	URL string
}
