// Package resolve turns a parsed article's image intentions into realized
// ImageRecords and a finalized content string.
//
// Resolution is strictly sequential, one task at a time in ordinal order; the
// remote API effectively rate-limits itself that way. A failed task is
// reported in its Outcome and skipped, never aborting the remaining tasks.
package resolve

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"articleforge"
	"articleforge/parse"
	"articleforge/prompt"
)

// Status reports how one image task ended.
type Status string

const (
	// StatusResolved means the task produced an ImageRecord.
	StatusResolved Status = "resolved"
	// StatusSkipped means the task failed and was dropped from the result.
	StatusSkipped Status = "skipped"
)

// Outcome is the per-task result of a resolution run. Skipped outcomes carry
// the failure reason; the run as a whole is still a success.
type Outcome struct {
	Index  int
	Status Status
	Reason string
}

// Resolver resolves image tasks against an image generation provider.
type Resolver struct {
	// Provider issues the image generation calls. Required.
	Provider articleforge.ImageProvider

	// Projects maps project names to public image URL prefixes. When the
	// run's Project names an entry, spliced references use the prefix.
	Projects map[string]string

	// Notify receives each task's outcome as it completes; nil disables
	// notifications.
	Notify func(Outcome)
}

// altLimit bounds the alt text taken from an image prompt.
const altLimit = 50

// Resolve plans and executes the article's image tasks. It returns the
// finalized content, the resolved records in task order, and one Outcome per
// planned task. With ImageCount zero the content is returned unchanged with
// no records.
func (r *Resolver) Resolve(ctx context.Context, a parse.ParsedArticle, p articleforge.GenerationParams) (string, []articleforge.ImageRecord, []Outcome) {
	content := a.Content
	tasks := PlanTasks(a, p)
	if len(tasks) == 0 {
		return content, nil, nil
	}

	used := make(map[string]bool, len(tasks))
	records := make([]articleforge.ImageRecord, 0, len(tasks))
	outcomes := make([]Outcome, 0, len(tasks))

	for _, task := range tasks {
		rec, err := r.generate(ctx, task, p)
		if err != nil {
			outcomes = append(outcomes, r.report(Outcome{
				Index:  task.Index,
				Status: StatusSkipped,
				Reason: err.Error(),
			}))
			continue
		}

		rec.Filename = uniqueName(taskFilename(task, a.Slug), used)
		ref := r.publishRef(rec.Filename, p.Project)
		if rec.URL == "" {
			rec.URL = ref
		}

		switch {
		case task.Placeholder != "":
			content = strings.Replace(content, task.Placeholder, imageRef(task.Prompt, ref), 1)
		case !task.PreLinked && task.Index > 0:
			// The cover image lives in the frontmatter; anything else
			// without a placeholder is appended.
			content += "\n\n" + imageRef(task.Prompt, ref)
		}
		// Pre-linked tasks keep the model's own reference untouched.

		records = append(records, rec)
		outcomes = append(outcomes, r.report(Outcome{Index: task.Index, Status: StatusResolved}))
	}

	return content, records, outcomes
}

// generate issues one image generation call and decodes the payload.
func (r *Resolver) generate(ctx context.Context, task Task, p articleforge.GenerationParams) (articleforge.ImageRecord, error) {
	img, err := r.Provider.GenerateImage(ctx, prompt.AugmentImage(task.Prompt),
		articleforge.WithImageSize(p.ImageSize))
	if err != nil {
		return articleforge.ImageRecord{}, err
	}

	rec := articleforge.ImageRecord{Prompt: task.Prompt}
	switch {
	case img.Base64 != "":
		data, err := base64.StdEncoding.DecodeString(img.Base64)
		if err != nil {
			return articleforge.ImageRecord{}, fmt.Errorf("decode image payload: %w", err)
		}
		rec.Data = data
		rec.B64 = img.Base64
	case img.URL != "":
		rec.URL = img.URL
	default:
		return articleforge.ImageRecord{}, errors.New("image response carried no payload")
	}
	return rec, nil
}

// publishRef prepends the project URL prefix when one is configured.
func (r *Resolver) publishRef(filename, project string) string {
	if project == "" {
		return filename
	}
	prefix, ok := r.Projects[project]
	if !ok || prefix == "" {
		return filename
	}
	return strings.TrimSuffix(prefix, "/") + "/" + filename
}

func (r *Resolver) report(o Outcome) Outcome {
	if r.Notify != nil {
		r.Notify(o)
	}
	return o
}

// imageRef formats a markdown image reference, truncating the prompt into a
// short alt text.
func imageRef(prompt, ref string) string {
	alt := prompt
	if len(alt) > altLimit {
		alt = alt[:altLimit] + "..."
	}
	return fmt.Sprintf("![%s](%s)", alt, ref)
}
