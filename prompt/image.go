package prompt

import "fmt"

// styleSuffix is appended to every image generation prompt.
const styleSuffix = ", 4k, high quality, photorealistic or professional illustration"

// synthQualifiers keep synthesized prompts usable across target languages.
const synthQualifiers = "English-only text, no non-English characters, prefer text-free visual"

// AugmentImage appends the shared quality qualifiers to an image prompt.
func AugmentImage(p string) string {
	return p + styleSuffix
}

// CoverImage synthesizes a cover image prompt from the article topic and
// keywords, used when the model supplied no image intentions at all.
func CoverImage(topic, keywords string) string {
	if keywords == "" {
		return fmt.Sprintf("%s, high quality, professional, 4k, SEO-friendly style, %s", topic, synthQualifiers)
	}
	return fmt.Sprintf("%s, %s, high quality, professional, 4k, SEO-friendly style, %s", topic, keywords, synthQualifiers)
}

// SectionImage synthesizes an illustration prompt for a second-level section
// heading.
func SectionImage(heading, topic string) string {
	return fmt.Sprintf("%s related to %s, professional illustration, detailed, 4k, %s", heading, topic, synthQualifiers)
}
