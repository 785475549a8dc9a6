// Package bundle packs a finalized ArticleResult into a downloadable zip
// archive with a deterministic layout: one folder named after the slug,
// containing the markdown file and every image.
package bundle

import (
	"archive/zip"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"articleforge"
	"articleforge/parse"
)

// Assembler writes article archives. The zero value is usable.
type Assembler struct {
	// Client fetches remote image bytes for records that carry only a URL.
	// Defaults to http.DefaultClient.
	Client *http.Client

	// Notify receives a non-fatal warning for each image that could not be
	// retrieved; nil disables notifications.
	Notify func(filename string, err error)
}

// FolderName returns the archive folder name: the sanitized slug, falling
// back to the title, then to "article".
func FolderName(result articleforge.ArticleResult) string {
	base := result.Slug
	if base == "" {
		base = result.Title
	}
	if s := parse.Slugify(base); s != "" {
		return s
	}
	return "article"
}

// Filename returns the name the archive should be offered under.
func Filename(result articleforge.ArticleResult) string {
	return FolderName(result) + ".zip"
}

// Write assembles the archive onto w. Image bytes are sourced in priority
// order: in-memory payload, base64 decode, HTTP fetch of the record URL. A
// failed retrieval is reported via Notify and the image omitted; the archive
// is still produced with the remaining files.
func (a *Assembler) Write(ctx context.Context, w io.Writer, result articleforge.ArticleResult) error {
	folder := FolderName(result)
	zw := zip.NewWriter(w)

	md, err := zw.Create(folder + "/" + folder + ".md")
	if err != nil {
		return err
	}
	if _, err := md.Write([]byte(result.Content)); err != nil {
		return err
	}

	for _, img := range result.Images {
		data, err := a.imageBytes(ctx, img)
		if err != nil {
			if a.Notify != nil {
				a.Notify(img.Filename, err)
			}
			continue
		}
		f, err := zw.Create(folder + "/" + img.Filename)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			return err
		}
	}

	return zw.Close()
}

// WriteFile writes the archive as <slug>.zip inside dir and returns its path.
func (a *Assembler) WriteFile(ctx context.Context, dir string, result articleforge.ArticleResult) (string, error) {
	path := filepath.Join(dir, Filename(result))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := a.Write(ctx, f, result); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

func (a *Assembler) imageBytes(ctx context.Context, img articleforge.ImageRecord) ([]byte, error) {
	switch {
	case len(img.Data) > 0:
		return img.Data, nil
	case img.B64 != "":
		return base64.StdEncoding.DecodeString(img.B64)
	case img.URL != "":
		return a.fetch(ctx, img.URL)
	default:
		return nil, errors.New("image record has no payload or URL")
	}
}

func (a *Assembler) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
