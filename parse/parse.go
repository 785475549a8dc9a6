// Package parse normalizes raw chat-model output into a structured article.
//
// Two response shapes are supported: a JSON envelope carrying title, content,
// slug and an images_metadata list, and plain markdown with the metadata
// derived heuristically. Parsing never fails; a response that cannot be
// recovered as JSON is treated as markdown in its entirety.
package parse

import (
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/gjson"
)

// Shape identifies which response form produced a ParsedArticle.
type Shape string

const (
	// ShapeJSON means the response carried a JSON envelope.
	ShapeJSON Shape = "json"
	// ShapeMarkdown means the response was interpreted as plain markdown.
	ShapeMarkdown Shape = "markdown"
)

// ImageMeta describes one image the model planned for the article. Only JSON
// envelopes carry image metadata.
type ImageMeta struct {
	Filename string
	Prompt   string
	Alt      string
}

// ParsedArticle is the canonical result of parsing model output. Title,
// Content and Slug are always populated.
type ParsedArticle struct {
	Shape   Shape
	Title   string
	Content string
	Slug    string
	Images  []ImageMeta
}

// Parse normalizes raw model output. The topic serves as last-resort title
// when the response yields none.
func Parse(raw, topic string) ParsedArticle {
	if a, ok := parseEnvelope(raw); ok {
		return finalize(a, topic)
	}
	return finalize(ParsedArticle{Shape: ShapeMarkdown, Content: raw}, topic)
}

// parseEnvelope attempts the JSON envelope shape. The model may wrap the
// envelope in prose, so only the first balanced object substring is parsed.
func parseEnvelope(raw string) (ParsedArticle, bool) {
	obj := extractObject(raw)
	if obj == "" {
		return ParsedArticle{}, false
	}

	if !gjson.Valid(obj) {
		repaired, err := jsonrepair.JSONRepair(obj)
		if err != nil || !gjson.Valid(repaired) {
			return ParsedArticle{}, false
		}
		obj = repaired
	}

	root := gjson.Parse(obj)
	content := root.Get("content").String()
	if strings.TrimSpace(content) == "" {
		// An envelope without article content is some other JSON the model
		// emitted; fall back to the markdown interpretation.
		return ParsedArticle{}, false
	}

	a := ParsedArticle{
		Shape:   ShapeJSON,
		Title:   strings.TrimSpace(root.Get("title").String()),
		Content: content,
		Slug:    strings.TrimSpace(root.Get("slug").String()),
	}
	for _, m := range root.Get("images_metadata").Array() {
		a.Images = append(a.Images, ImageMeta{
			Filename: m.Get("filename").String(),
			Prompt:   m.Get("prompt").String(),
			Alt:      m.Get("alt").String(),
		})
	}
	return a, true
}

// finalize fills missing title and slug from the content and topic.
func finalize(a ParsedArticle, topic string) ParsedArticle {
	if a.Title == "" {
		a.Title = titleFromContent(a.Content)
	}
	if a.Title == "" {
		a.Title = topic
	}
	if a.Slug == "" {
		a.Slug = SlugFromFrontmatter(a.Content)
	}
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	return a
}

// titleFromContent derives a title from the first markdown heading, or the
// first non-empty line, with bold markers stripped.
func titleFromContent(content string) string {
	var title string
	if m := headingRe.FindStringSubmatch(content); m != nil {
		title = m[1]
	} else if m := firstLineRe.FindStringSubmatch(content); m != nil {
		title = m[1]
	}
	return strings.TrimSpace(strings.ReplaceAll(title, "**", ""))
}

// extractObject returns the first balanced {...} substring of s, or "".
// String literals are skipped so braces inside markdown content do not
// unbalance the scan.
func extractObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
