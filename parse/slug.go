package parse

import (
	"regexp"
	"strings"
)

var (
	headingRe   = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	firstLineRe = regexp.MustCompile(`(?m)^(.+)$`)
	slugFieldRe = regexp.MustCompile(`slug_en:\s*([A-Za-z0-9-]+)`)
	nonWordRe   = regexp.MustCompile(`[^\w\s-]`)
	spacesRe    = regexp.MustCompile(`\s+`)
)

// Slugify converts a title into a URL-safe kebab-case identifier: non-word
// characters stripped, whitespace collapsed to hyphens, lowercased. The same
// input always yields the same slug.
func Slugify(title string) string {
	s := nonWordRe.ReplaceAllString(title, "")
	s = strings.TrimSpace(s)
	s = spacesRe.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// SlugFromFrontmatter extracts a model-supplied slug_en frontmatter field
// from markdown content, or "" when absent.
func SlugFromFrontmatter(content string) string {
	if m := slugFieldRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
