// Package prompt constructs the prompt strings sent to the chat-completion
// and image-generation endpoints. All functions are pure.
package prompt

import (
	"fmt"
	"strings"

	"articleforge"
)

// Contract selects the machine-parseable output format requested from the
// model. The JSON envelope is the authoritative format; placeholder comments
// are kept for models that handle structured output poorly.
type Contract string

const (
	// ContractJSON asks for a JSON envelope carrying title, content, slug
	// and an images_metadata list.
	ContractJSON Contract = "json"

	// ContractPlaceholders asks for plain markdown with inline
	// <!-- IMG_PROMPT: ... --> comments marking image positions.
	ContractPlaceholders Contract = "placeholders"
)

// Prompt is the message pair sent to the chat completion endpoint.
type Prompt struct {
	System string
	User   string
}

// Build produces the article generation prompt for the given parameters.
// The caller guarantees required fields; no validation happens here.
func Build(p articleforge.GenerationParams, contract Contract) Prompt {
	lang := p.Language
	if lang == "" {
		lang = articleforge.LanguageEnglish
	}

	var sb strings.Builder
	sb.WriteString("You are a senior SEO copywriter.\n")
	fmt.Fprintf(&sb, "IMPORTANT: You MUST write the entire article content in %s. Only the \"slug_en\" in frontmatter must be in English.\n\n", lang)
	fmt.Fprintf(&sb, "Create a high-quality article about %q tailored for an Astro site.\n\n", p.Topic)

	sb.WriteString("Requirements:\n")
	fmt.Fprintf(&sb, "1) Language: The article title, description, headings, and body text MUST be in %s.\n", lang)
	sb.WriteString("2) Human tone, remove AI flavor, include concrete examples and practical tips.\n")
	sb.WriteString("3) Substance first: solve real user problems, be specific and actionable.\n")
	sb.WriteString("4) Clear structure: title, subtitle, intro, 3-5 sections, conclusion.\n")
	if p.Keywords != "" {
		fmt.Fprintf(&sb, "5) Keyword placement: naturally integrate %q with 2%%-3%% density.\n", p.Keywords)
	}
	sb.WriteString("6) Internal links: provide 3-5 related topics at the end in [anchor](url) format using long-tail keywords.\n")
	sb.WriteString("7) Output in Markdown with Astro YAML frontmatter at the top.\n")
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "title: Title in %s (<=60 chars, includes main keyword)\n", lang)
	fmt.Fprintf(&sb, "description: Description in %s (<=160 chars, includes main keyword)\n", lang)
	sb.WriteString("pubDate: ISO date\n")
	fmt.Fprintf(&sb, "lang: %s\n", lang.Code())
	sb.WriteString("slug_en: English kebab-case filename suggestion (ASCII only, e.g., bank-statement-pdf-to-excel-guide)\n")
	sb.WriteString("cover: slug_en + \"-1.jpg\"\n")
	sb.WriteString("---\n")
	sb.WriteString("8) Use ## and ### for headings, short sentences, 3-5 line paragraphs.\n")
	if p.WordCount != "" {
		fmt.Fprintf(&sb, "9) Word count: %s.\n", p.WordCount)
	}
	sb.WriteString("10) If references are provided, align content topics accordingly and cite important points with inline markdown links.\n")
	if p.ImageCount > 0 {
		writeImageContract(&sb, p.ImageCount, contract)
	}

	if len(p.References) > 0 {
		sb.WriteString("\nReferences:\n")
		for i, u := range p.References {
			fmt.Fprintf(&sb, "- [ref%d](%s)\n", i+1, u)
		}
	}

	fmt.Fprintf(&sb, "\nREMEMBER: The content MUST be in %s. Return only the final output, no extra commentary.\n", lang)

	return Prompt{
		System: sb.String(),
		User:   fmt.Sprintf("Write an article about %q in %s.", p.Topic, lang),
	}
}

func writeImageContract(sb *strings.Builder, count int, contract Contract) {
	switch contract {
	case ContractPlaceholders:
		fmt.Fprintf(sb, "11) IMAGES: Naturally insert %d image placeholders within the content where illustrations would be most helpful.\n", count)
		sb.WriteString("   - Format: `<!-- IMG_PROMPT: <detailed English description for AI image generator> -->`\n")
		sb.WriteString("   - The prompt MUST be in English, descriptive, high-quality, and context-aware.\n")
		sb.WriteString("   - Example: `<!-- IMG_PROMPT: A professional dashboard showing bank statement conversion process, high resolution, 4k -->`\n")
	default:
		fmt.Fprintf(sb, "11) IMAGES: Plan %d images for the article.\n", count)
		sb.WriteString("   Wrap your entire output in a single JSON object:\n")
		sb.WriteString("   {\"title\": string, \"content\": markdown string, \"slug\": kebab-case string, \"images_metadata\": [{\"filename\": string, \"prompt\": string, \"alt\": string}]}\n")
		sb.WriteString("   - content must already reference each image as ![alt](filename) at its intended position.\n")
		sb.WriteString("   - Each prompt MUST be in English, descriptive, high-quality, and context-aware.\n")
		sb.WriteString("   - filename must be kebab-case, derived from the slug, ending in .webp.\n")
	}
}
