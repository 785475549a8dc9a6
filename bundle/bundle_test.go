package bundle

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articleforge"
)

func readArchive(t *testing.T, buf *bytes.Buffer) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	entries := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		entries[f.Name] = data
	}
	return entries
}

func TestWrite(t *testing.T) {
	t.Run("archive layout and exact bytes", func(t *testing.T) {
		imageBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
		result := articleforge.ArticleResult{
			Title:   "Test & Article",
			Content: "body",
			Images: []articleforge.ImageRecord{
				{Filename: "test-article-1.jpg", Data: imageBytes},
			},
		}

		var buf bytes.Buffer
		a := &Assembler{}
		require.NoError(t, a.Write(context.Background(), &buf, result))

		entries := readArchive(t, &buf)
		require.Len(t, entries, 2)
		assert.Equal(t, []byte("body"), entries["test-article/test-article.md"])
		assert.Equal(t, imageBytes, entries["test-article/test-article-1.jpg"])
	})

	t.Run("slug wins over title for the folder name", func(t *testing.T) {
		result := articleforge.ArticleResult{Title: "Some Title", Slug: "custom-slug", Content: "x"}
		var buf bytes.Buffer
		require.NoError(t, (&Assembler{}).Write(context.Background(), &buf, result))
		entries := readArchive(t, &buf)
		assert.Contains(t, entries, "custom-slug/custom-slug.md")
	})

	t.Run("falls back to the default folder name", func(t *testing.T) {
		result := articleforge.ArticleResult{Content: "x"}
		var buf bytes.Buffer
		require.NoError(t, (&Assembler{}).Write(context.Background(), &buf, result))
		entries := readArchive(t, &buf)
		assert.Contains(t, entries, "article/article.md")
	})

	t.Run("decodes base64 payloads", func(t *testing.T) {
		payload := []byte("image-payload")
		result := articleforge.ArticleResult{
			Slug:    "s",
			Content: "x",
			Images: []articleforge.ImageRecord{
				{Filename: "s-1.jpg", B64: base64.StdEncoding.EncodeToString(payload)},
			},
		}
		var buf bytes.Buffer
		require.NoError(t, (&Assembler{}).Write(context.Background(), &buf, result))
		entries := readArchive(t, &buf)
		assert.Equal(t, payload, entries["s/s-1.jpg"])
	})

	t.Run("fetches remote images over HTTP", func(t *testing.T) {
		payload := []byte("remote-bytes")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(payload)
		}))
		defer srv.Close()

		result := articleforge.ArticleResult{
			Slug:    "s",
			Content: "x",
			Images:  []articleforge.ImageRecord{{Filename: "s-1.jpg", URL: srv.URL + "/img.jpg"}},
		}
		var buf bytes.Buffer
		a := &Assembler{Client: srv.Client()}
		require.NoError(t, a.Write(context.Background(), &buf, result))
		entries := readArchive(t, &buf)
		assert.Equal(t, payload, entries["s/s-1.jpg"])
	})

	t.Run("failed retrieval omits the image but keeps the archive", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		result := articleforge.ArticleResult{
			Slug:    "s",
			Content: "body",
			Images: []articleforge.ImageRecord{
				{Filename: "bad.jpg", URL: srv.URL + "/missing.jpg"},
				{Filename: "good.jpg", Data: []byte("ok")},
			},
		}

		var warned []string
		a := &Assembler{
			Client: srv.Client(),
			Notify: func(filename string, err error) {
				warned = append(warned, filename)
				assert.Error(t, err)
			},
		}
		var buf bytes.Buffer
		require.NoError(t, a.Write(context.Background(), &buf, result))

		entries := readArchive(t, &buf)
		require.Len(t, entries, 2)
		assert.Contains(t, entries, "s/s.md")
		assert.Contains(t, entries, "s/good.jpg")
		assert.NotContains(t, entries, "s/bad.jpg")
		assert.Equal(t, []string{"bad.jpg"}, warned)
	})

	t.Run("record without any payload source is omitted with a warning", func(t *testing.T) {
		result := articleforge.ArticleResult{
			Slug:    "s",
			Content: "body",
			Images:  []articleforge.ImageRecord{{Filename: "empty.jpg"}},
		}
		var warned int
		a := &Assembler{Notify: func(string, error) { warned++ }}
		var buf bytes.Buffer
		require.NoError(t, a.Write(context.Background(), &buf, result))
		assert.Equal(t, 1, warned)
		assert.Len(t, readArchive(t, &buf), 1)
	})
}

func TestWriteFile(t *testing.T) {
	result := articleforge.ArticleResult{Slug: "my-post", Content: "body"}
	dir := t.TempDir()

	path, err := (&Assembler{}).WriteFile(context.Background(), dir, result)
	require.NoError(t, err)
	assert.Contains(t, path, "my-post.zip")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "my-post/my-post.md", zr.File[0].Name)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "my-post.zip", Filename(articleforge.ArticleResult{Slug: "my-post"}))
	assert.Equal(t, "test-article.zip", Filename(articleforge.ArticleResult{Title: "Test & Article"}))
	assert.Equal(t, "article.zip", Filename(articleforge.ArticleResult{}))
}
