// Command articleforge generates an SEO-optimized markdown article with
// companion images and writes the result as a zip bundle.
//
// Configuration comes from flags and environment variables (a .env file is
// loaded when present):
//
//	ARK_API_KEY      API key (required)
//	ARK_MODEL        chat model endpoint ID (ep-...)
//	ARK_IMAGE_MODEL  image model endpoint ID
//	ARK_BASE_URL     API base URL override
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"articleforge"
	"articleforge/bundle"
	"articleforge/client"
)

func main() {
	godotenv.Load()

	var (
		topic    = flag.String("topic", "", "article topic (required)")
		keywords = flag.String("keywords", "", "comma-separated keywords")
		language = flag.String("language", "English", "article language (Chinese, English, Japanese, Korean)")
		words    = flag.String("words", "1000-2000", "target word count range")
		imgCount = flag.Int("images", 3, "number of companion images (0-5)")
		ratio    = flag.String("ratio", "16:9", "image aspect ratio (1:1, 16:9, 4:3, 3:4, 9:16)")
		model    = flag.String("model", os.Getenv("ARK_MODEL"), "chat model endpoint ID")
		imgModel = flag.String("image-model", os.Getenv("ARK_IMAGE_MODEL"), "image model endpoint ID")
		project  = flag.String("project", "", "target project for image URL prefixes")
		refs     = flag.String("refs", "", "comma-separated reference URLs")
		outDir   = flag.String("o", ".", "output directory for the zip bundle")
		quiet    = flag.Bool("q", false, "suppress progress output")
	)
	flag.Parse()

	if *topic == "" {
		fmt.Fprintln(os.Stderr, "error: -topic is required")
		flag.Usage()
		os.Exit(2)
	}

	events := make(chan client.Event, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range events {
			if *quiet {
				continue
			}
			printEvent(e)
		}
	}()

	c := client.New(client.Config{
		APIKey:     os.Getenv("ARK_API_KEY"),
		ChatModel:  *model,
		ImageModel: *imgModel,
		BaseURL:    os.Getenv("ARK_BASE_URL"),
		Events:     events,
	})

	params := articleforge.GenerationParams{
		Topic:      *topic,
		Keywords:   *keywords,
		Language:   articleforge.Language(*language),
		WordCount:  *words,
		ImageCount: *imgCount,
		ImageSize:  articleforge.SizeForAspectRatio(*ratio),
		Project:    *project,
	}
	if *refs != "" {
		for _, r := range strings.Split(*refs, ",") {
			if r = strings.TrimSpace(r); r != "" {
				params.References = append(params.References, r)
			}
		}
	}

	ctx := context.Background()
	result, err := c.Generate(ctx, params)
	close(events)
	<-done
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	a := &bundle.Assembler{Notify: func(filename string, err error) {
		fmt.Fprintf(os.Stderr, "warning: %s omitted from bundle: %v\n", filename, err)
	}}
	path, err := a.WriteFile(ctx, *outDir, *result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: write bundle: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%d images)\n", path, len(result.Images))
}

func printEvent(e client.Event) {
	switch e.Type {
	case client.EventArticleComplete:
		fmt.Fprintf(os.Stderr, "article text received in %s\n", e.Duration.Round(time.Millisecond))
	case client.EventError:
		fmt.Fprintf(os.Stderr, "error: %v\n", e.Err)
	case client.EventRunComplete:
		fmt.Fprintf(os.Stderr, "done in %s: %s\n", e.Duration.Round(time.Millisecond), e.Message)
	default:
		fmt.Fprintf(os.Stderr, "%s\n", e.Message)
	}
}
