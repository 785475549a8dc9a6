package resolve

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"articleforge"
	"articleforge/parse"
	"articleforge/prompt"
)

// Task is one planned image generation, bound to the way its result will be
// spliced back into the article.
type Task struct {
	// Prompt is the raw image prompt, before style augmentation.
	Prompt string

	// Index is the task's ordinal position; index 0 is the cover image.
	Index int

	// Placeholder is the exact content substring to replace with the image
	// reference, "" when the task has no placeholder.
	Placeholder string

	// Filename is the model-suggested filename, "" when none.
	Filename string

	// PreLinked means the markdown already references this image, so no
	// splicing happens.
	PreLinked bool
}

// placeholderRe matches the legacy inline image placeholder comments.
var placeholderRe = regexp.MustCompile(`<!--\s*IMG_PROMPT:\s*(.*?)\s*-->`)

// PlanTasks derives the ordered image task list for a parsed article, in
// priority order: model-supplied metadata, placeholder comments, synthesized
// prompts. The list is capped at p.ImageCount; an empty list means the
// resolution phase is a no-op.
func PlanTasks(a parse.ParsedArticle, p articleforge.GenerationParams) []Task {
	if p.ImageCount <= 0 {
		return nil
	}

	if len(a.Images) > 0 {
		metas := a.Images
		if len(metas) > p.ImageCount {
			metas = metas[:p.ImageCount]
		}
		tasks := make([]Task, 0, len(metas))
		for i, m := range metas {
			tasks = append(tasks, Task{
				Prompt:    m.Prompt,
				Index:     i,
				Filename:  m.Filename,
				PreLinked: true,
			})
		}
		return tasks
	}

	if matches := placeholderRe.FindAllStringSubmatch(a.Content, -1); len(matches) > 0 {
		if len(matches) > p.ImageCount {
			matches = matches[:p.ImageCount]
		}
		tasks := make([]Task, 0, len(matches))
		for i, m := range matches {
			tasks = append(tasks, Task{
				Prompt:      strings.TrimSpace(m[1]),
				Index:       i,
				Placeholder: m[0],
			})
		}
		return tasks
	}

	// No metadata and no placeholders: synthesize a cover prompt, then one
	// prompt per ## heading in document order.
	tasks := []Task{{Prompt: prompt.CoverImage(p.Topic, p.Keywords), Index: 0}}
	for _, h := range sectionHeadings(a.Content) {
		if len(tasks) >= p.ImageCount {
			break
		}
		tasks = append(tasks, Task{Prompt: prompt.SectionImage(h, p.Topic), Index: len(tasks)})
	}
	return tasks
}

// sectionHeadings returns the text of every second-level heading, in
// document order.
func sectionHeadings(content string) []string {
	src := []byte(content)
	doc := goldmark.New().Parser().Parse(gtext.NewReader(src))

	var headings []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 2 {
			if text := strings.TrimSpace(string(n.Text(src))); text != "" {
				headings = append(headings, text)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return headings
}
