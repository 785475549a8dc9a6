package resolve

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// unsafeFilenameRe matches everything not allowed in a published image
// filename.
var unsafeFilenameRe = regexp.MustCompile(`[^\w.-]+`)

// sanitizeFilename strips path components and unsafe characters and forces a
// canonical image extension: .webp survives, everything else becomes .jpg.
func sanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	base = unsafeFilenameRe.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")

	ext := strings.ToLower(path.Ext(base))
	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem == "" {
		return ""
	}
	switch ext {
	case ".webp":
		return stem + ".webp"
	case ".jpg", ".jpeg":
		return stem + ".jpg"
	default:
		return stem + ".jpg"
	}
}

// taskFilename computes the final filename for a task: the sanitized
// model-suggested name when present, else slug and ordinal.
func taskFilename(t Task, slug string) string {
	if t.Filename != "" {
		if name := sanitizeFilename(t.Filename); name != "" {
			return name
		}
	}
	if slug == "" {
		slug = "article"
	}
	return fmt.Sprintf("%s-%d.jpg", slug, t.Index+1)
}

// uniqueName disambiguates a filename against the set of names already used
// in this result, appending -2, -3, ... before the extension.
func uniqueName(name string, used map[string]bool) string {
	if !used[name] {
		used[name] = true
		return name
	}
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, i, ext)
		if !used[candidate] {
			used[candidate] = true
			return candidate
		}
	}
}
