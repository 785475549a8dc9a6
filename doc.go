// Package articleforge turns a topic and a handful of SEO parameters into a
// publishable markdown article with generated companion images.
//
// The pipeline has four stages, each in its own package:
//
//   - [articleforge/prompt]: build the system/user prompt pair sent to the
//     chat-completion endpoint
//   - [articleforge/parse]: normalize raw model output (JSON envelope or plain
//     markdown) into a ParsedArticle
//   - [articleforge/resolve]: realize the article's image intentions as
//     ImageRecords and splice references into the content
//   - [articleforge/bundle]: pack the final article and image bytes into a zip
//
// Use the [articleforge/client] package as the entry point; it wires the
// stages together against an OpenAI-compatible API (Volcengine Ark style,
// endpoint-ID model names).
//
// # Basic Usage
//
//	c := client.New(client.Config{
//	    APIKey:    os.Getenv("ARK_API_KEY"),
//	    ChatModel: os.Getenv("ARK_MODEL"),
//	})
//
//	result, err := c.Generate(ctx, articleforge.GenerationParams{
//	    Topic:      "bank statement PDF to Excel conversion",
//	    Keywords:   "pdf to excel, bank statement",
//	    Language:   articleforge.LanguageEnglish,
//	    ImageCount: 3,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	a := &bundle.Assembler{}
//	path, err := a.WriteFile(ctx, ".", *result)
//
// Image generation failures never fail a run: failed tasks are reported on the
// client's event channel and skipped, so a result may carry fewer images than
// requested.
package articleforge
