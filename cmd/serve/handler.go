package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"articleforge"
	"articleforge/bundle"
	"articleforge/client"
)

// Handler serves the generation endpoints.
type Handler struct {
	client *client.Client
	log    *zap.Logger
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// generateRequest is the JSON body for article generation.
type generateRequest struct {
	Topic       string   `json:"topic" binding:"required"`
	Keywords    string   `json:"keywords"`
	Language    string   `json:"language"`
	WordCount   string   `json:"word_count"`
	ImageCount  int      `json:"image_count"`
	AspectRatio string   `json:"aspect_ratio"`
	References  []string `json:"references"`
	Project     string   `json:"project"`
	Model       string   `json:"model"`
}

func (r generateRequest) params() articleforge.GenerationParams {
	lang := articleforge.Language(r.Language)
	if r.Language == "" {
		lang = articleforge.LanguageEnglish
	}
	return articleforge.GenerationParams{
		Topic:      r.Topic,
		Keywords:   r.Keywords,
		Language:   lang,
		WordCount:  r.WordCount,
		ImageCount: r.ImageCount,
		ImageSize:  articleforge.SizeForAspectRatio(r.AspectRatio),
		References: r.References,
		Project:    r.Project,
		Model:      r.Model,
	}
}

// articleResponse is the JSON shape of a generated article.
type articleResponse struct {
	Title   string          `json:"title"`
	Slug    string          `json:"slug"`
	Content string          `json:"content"`
	Images  []imageResponse `json:"images"`
}

type imageResponse struct {
	Filename string `json:"filename"`
	Prompt   string `json:"prompt"`
	URL      string `json:"url,omitempty"`
	B64      string `json:"b64,omitempty"`
}

func toResponse(result *articleforge.ArticleResult) articleResponse {
	resp := articleResponse{
		Title:   result.Title,
		Slug:    result.Slug,
		Content: result.Content,
		Images:  make([]imageResponse, 0, len(result.Images)),
	}
	for _, img := range result.Images {
		resp.Images = append(resp.Images, imageResponse{
			Filename: img.Filename,
			Prompt:   img.Prompt,
			URL:      img.URL,
			B64:      img.B64,
		})
	}
	return resp
}

// GenerateArticle runs one article generation and returns the result as JSON.
func (h *Handler) GenerateArticle(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.client.Generate(c.Request.Context(), req.params())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(result))
}

// GenerateBundle runs one article generation and streams the zip bundle.
func (h *Handler) GenerateBundle(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.client.Generate(c.Request.Context(), req.params())
	if err != nil {
		h.fail(c, err)
		return
	}

	a := &bundle.Assembler{Notify: func(filename string, err error) {
		h.log.Warn("image omitted from bundle", zap.String("filename", filename), zap.Error(err))
	}}

	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", `attachment; filename="`+bundle.Filename(*result)+`"`)
	c.Status(http.StatusOK)
	if err := a.Write(c.Request.Context(), c.Writer, *result); err != nil {
		// Headers are gone; all we can do is log and cut the stream.
		h.log.Error("bundle write failed", zap.Error(err))
	}
}

// imageRequest is the JSON body for standalone image generation.
type imageRequest struct {
	Prompt      string `json:"prompt" binding:"required"`
	AspectRatio string `json:"aspect_ratio"`
	Model       string `json:"model"`
}

// GenerateImage generates one standalone image.
func (h *Handler) GenerateImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.client.GenerateImage(c.Request.Context(), client.ImageRequest{
		Prompt: req.Prompt,
		Size:   articleforge.SizeForAspectRatio(req.AspectRatio),
		Model:  req.Model,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, imageResponse{
		Filename: rec.Filename,
		Prompt:   rec.Prompt,
		URL:      rec.URL,
		B64:      rec.B64,
	})
}

// fail maps classified errors onto HTTP statuses.
func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusBadGateway
	switch articleforge.KindOf(err) {
	case articleforge.ErrorConfig:
		status = http.StatusBadRequest
	case articleforge.ErrorAuth:
		status = http.StatusUnauthorized
	case articleforge.ErrorEndpoint:
		status = http.StatusNotFound
	case articleforge.ErrorTimeout:
		status = http.StatusGatewayTimeout
	}

	h.log.Warn("generation failed",
		zap.String("request_id", c.GetString("request_id")),
		zap.Int("status", status),
		zap.Error(err),
	)
	c.JSON(status, gin.H{"error": err.Error()})
}
