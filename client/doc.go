// Package client orchestrates the full article generation pipeline against
// an OpenAI-compatible API.
//
// A Client wires the prompt builder, the response parser, the image task
// resolver and the single-image service behind three operations:
//
//   - [Client.Generate]: one full run, topic in, ArticleResult out
//   - [Client.GenerateImage]: one standalone image, no article involved
//   - [Client.Regenerate]: replace a single image record in place
//
// Progress and non-fatal warnings stream over the configured Events channel;
// only configuration problems and the article text call itself can fail a
// run.
package client
