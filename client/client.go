package client

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"articleforge"
	"articleforge/internal/ark"
	"articleforge/parse"
	"articleforge/prompt"
	"articleforge/resolve"
)

// Default step timeouts. Article generation gets a long leash because long
// word counts routinely take minutes; image calls are bounded per task.
const (
	DefaultArticleTimeout = 5 * time.Minute
	DefaultImageTimeout   = time.Minute
)

// defaultTemperature matches the browser app's article generation setting.
const defaultTemperature = 0.7

// placeholderAPIKey is the value shipped in .env templates; treat it the
// same as an unset key.
const placeholderAPIKey = "your_api_key_here"

// DefaultProjects maps the built-in target projects to their public image
// URL prefixes.
var DefaultProjects = map[string]string{
	"astro-blog": "/images/posts",
	"docs-site":  "/assets/images",
}

// Config holds configuration for a Client. Every model-related field can be
// overridden per run through GenerationParams.
type Config struct {
	// APIKey authenticates against the API. Required unless every run
	// supplies its own key.
	APIKey string

	// ChatModel is the default text model endpoint ID.
	ChatModel string

	// ImageModel is the default image model endpoint ID.
	ImageModel string

	// BaseURL overrides the API base URL, for example a local development
	// proxy in front of the remote host.
	BaseURL string

	// ArticleTimeout bounds the chat completion call.
	// Defaults to DefaultArticleTimeout.
	ArticleTimeout time.Duration

	// ImageTimeout bounds each image generation call.
	// Defaults to DefaultImageTimeout.
	ImageTimeout time.Duration

	// Contract selects the output contract requested from the model.
	// Defaults to the JSON envelope.
	Contract prompt.Contract

	// Projects maps project names to public image URL prefixes.
	// Defaults to DefaultProjects.
	Projects map[string]string

	// Text and Images override the built-in providers, for custom backends
	// and tests. When unset the Ark client is used.
	Text   articleforge.TextProvider
	Images articleforge.ImageProvider

	// Events is an optional channel for run progress. Events are sent
	// non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// Client runs the article generation pipeline: prompt, chat completion,
// response parsing, sequential image resolution. One client may serve many
// runs; nothing serializes overlapping runs and a new run does not cancel an
// in-flight one.
type Client struct {
	cfg Config

	mu           sync.Mutex
	regenerating map[int]bool
}

// New creates a client with the given configuration.
func New(cfg Config) *Client {
	if cfg.ArticleTimeout <= 0 {
		cfg.ArticleTimeout = DefaultArticleTimeout
	}
	if cfg.ImageTimeout <= 0 {
		cfg.ImageTimeout = DefaultImageTimeout
	}
	if cfg.Contract == "" {
		cfg.Contract = prompt.ContractJSON
	}
	if cfg.Projects == nil {
		cfg.Projects = DefaultProjects
	}
	return &Client{cfg: cfg, regenerating: make(map[int]bool)}
}

// Generate runs one full article generation. Only the two-step text
// generation can fail the run; image failures surface as EventImageSkipped
// and the result simply carries fewer images.
func (c *Client) Generate(ctx context.Context, p articleforge.GenerationParams) (*articleforge.ArticleResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	apiKey, err := c.resolveAPIKey(p.APIKey)
	if err != nil {
		return nil, err
	}

	model := p.Model
	if model == "" {
		model = c.cfg.ChatModel
	}
	if !strings.HasPrefix(model, articleforge.EndpointIDPrefix) {
		c.emit(Event{
			Type:    EventWarning,
			Index:   -1,
			Message: fmt.Sprintf("model %q does not look like an %s endpoint ID", model, articleforge.EndpointIDPrefix),
		})
	}

	text, images := c.providers(apiKey)
	start := time.Now()
	c.emit(Event{Type: EventRunStart, Index: -1, Message: "generating article: " + p.Topic})

	raw, err := c.generateText(ctx, text, p, model)
	if err != nil {
		c.emit(Event{Type: EventError, Index: -1, Err: err, Message: "article generation failed"})
		return nil, err
	}
	c.emit(Event{Type: EventArticleComplete, Index: -1, Duration: time.Since(start)})

	parsed := parse.Parse(raw, p.Topic)

	r := &resolve.Resolver{
		Provider: timedImageProvider{inner: images, timeout: c.cfg.ImageTimeout},
		Projects: c.cfg.Projects,
		Notify:   c.notifyOutcome,
	}
	content, records, _ := r.Resolve(ctx, parsed, p)

	result := &articleforge.ArticleResult{
		Title:   parsed.Title,
		Content: content,
		Slug:    parsed.Slug,
		Images:  records,
	}
	c.emit(Event{
		Type:     EventRunComplete,
		Index:    -1,
		Duration: time.Since(start),
		Message:  fmt.Sprintf("resolved %d of %d images", len(records), p.ImageCount),
	})
	return result, nil
}

func (c *Client) generateText(ctx context.Context, text articleforge.TextProvider, p articleforge.GenerationParams, model string) (string, error) {
	c.emit(Event{Type: EventArticleStart, Index: -1, Message: "requesting article text"})

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ArticleTimeout)
	defer cancel()

	pr := prompt.Build(p, c.cfg.Contract)
	raw, err := text.GenerateText(ctx, pr.System, pr.User,
		articleforge.WithModel(model),
		articleforge.WithTemperature(defaultTemperature))
	if err != nil {
		return "", classify(err)
	}
	return raw, nil
}

// ImageRequest describes one standalone image generation.
type ImageRequest struct {
	// Prompt describes the image. Required.
	Prompt string

	// Size is the "WxH" output size; defaults to 1024x1024.
	Size articleforge.ImageSize

	// APIKey overrides the client's configured key.
	APIKey string

	// Model overrides the client's configured image model.
	Model string
}

// GenerateImage issues one standalone image generation with the same style
// augmentation the resolver applies. The returned record carries a
// timestamp-based filename and no content is touched.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (*articleforge.ImageRecord, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, articleforge.NewConfigError("prompt is required", nil)
	}
	apiKey, err := c.resolveAPIKey(req.APIKey)
	if err != nil {
		return nil, err
	}
	_, images := c.providers(apiKey)

	size := req.Size
	if size == "" {
		size = articleforge.ImageSize1024x1024
	}
	opts := []articleforge.ImageOption{articleforge.WithImageSize(size)}
	if req.Model != "" {
		opts = append(opts, articleforge.WithImageModel(req.Model))
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ImageTimeout)
	defer cancel()

	img, err := images.GenerateImage(ctx, prompt.AugmentImage(req.Prompt), opts...)
	if err != nil {
		err = classify(err)
		c.emit(Event{Type: EventError, Index: -1, Err: err, Message: "image generation failed"})
		return nil, err
	}

	rec, err := recordFromImage(img, req.Prompt)
	if err != nil {
		c.emit(Event{Type: EventError, Index: -1, Err: err, Message: "image generation failed"})
		return nil, err
	}
	rec.Filename = fmt.Sprintf("generated-%d.jpg", time.Now().Unix())
	return rec, nil
}

// Regenerate replaces the image record at index with a fresh generation from
// the same prompt. Only that record changes; the content and every other
// record stay untouched. The index is tracked as in progress for the
// duration so observers can mark the slot, but nothing blocks other
// operations.
func (c *Client) Regenerate(ctx context.Context, result *articleforge.ArticleResult, index int, size articleforge.ImageSize) error {
	if result == nil || index < 0 || index >= len(result.Images) {
		return articleforge.NewConfigError(fmt.Sprintf("no image at index %d", index), nil)
	}

	c.setRegenerating(index, true)
	defer c.setRegenerating(index, false)

	old := result.Images[index]
	rec, err := c.GenerateImage(ctx, ImageRequest{Prompt: old.Prompt, Size: size})
	if err != nil {
		return err
	}

	result.Images[index] = *rec
	c.emit(Event{Type: EventImageResolved, Index: index, Message: "image regenerated"})
	return nil
}

// Regenerating returns the indices currently being regenerated, sorted.
func (c *Client) Regenerating() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	indices := make([]int, 0, len(c.regenerating))
	for i := range c.regenerating {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

func (c *Client) setRegenerating(index int, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if on {
		c.regenerating[index] = true
	} else {
		delete(c.regenerating, index)
	}
}

// resolveAPIKey applies the per-run override and rejects missing or
// placeholder keys before anything goes over the network.
func (c *Client) resolveAPIKey(override string) (string, error) {
	key := strings.TrimSpace(override)
	if key == "" {
		key = strings.TrimSpace(c.cfg.APIKey)
	}
	if key == "" || key == placeholderAPIKey {
		return "", articleforge.NewConfigError("API key is not configured", nil)
	}
	return key, nil
}

// providers returns the text and image providers for a resolved API key.
func (c *Client) providers(apiKey string) (articleforge.TextProvider, articleforge.ImageProvider) {
	text, images := c.cfg.Text, c.cfg.Images
	if text != nil && images != nil {
		return text, images
	}
	a := ark.New(apiKey,
		ark.WithBaseURL(c.cfg.BaseURL),
		ark.WithChatModel(c.cfg.ChatModel),
		ark.WithImageModel(c.cfg.ImageModel))
	if text == nil {
		text = a
	}
	if images == nil {
		images = a
	}
	return text, images
}

func (c *Client) notifyOutcome(o resolve.Outcome) {
	switch o.Status {
	case resolve.StatusSkipped:
		c.emit(Event{
			Type:    EventImageSkipped,
			Index:   o.Index,
			Message: fmt.Sprintf("image %d skipped: %s", o.Index+1, o.Reason),
		})
	default:
		c.emit(Event{
			Type:    EventImageResolved,
			Index:   o.Index,
			Message: fmt.Sprintf("image %d resolved", o.Index+1),
		})
	}
}

func (c *Client) emit(event Event) {
	emit(c.cfg.Events, event)
}

// classify makes sure run-fatal errors carry a kind, wrapping anything a
// custom provider returned unclassified.
func classify(err error) error {
	if articleforge.KindOf(err) != "" {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return articleforge.NewTimeoutError("request timed out", err)
	}
	return articleforge.NewTransportError("request failed", 0, err)
}

// recordFromImage decodes a raw generation result into an ImageRecord.
func recordFromImage(img *articleforge.GeneratedImage, promptText string) (*articleforge.ImageRecord, error) {
	rec := &articleforge.ImageRecord{Prompt: promptText}
	switch {
	case img.Base64 != "":
		data, err := base64.StdEncoding.DecodeString(img.Base64)
		if err != nil {
			return nil, articleforge.NewTransportError("decode image payload", 0, err)
		}
		rec.Data = data
		rec.B64 = img.Base64
	case img.URL != "":
		rec.URL = img.URL
	default:
		return nil, articleforge.NewTransportError("image response carried no payload", 0, nil)
	}
	return rec, nil
}

// timedImageProvider bounds each image generation call with its own
// deadline.
type timedImageProvider struct {
	inner   articleforge.ImageProvider
	timeout time.Duration
}

func (t timedImageProvider) GenerateImage(ctx context.Context, p string, opts ...articleforge.ImageOption) (*articleforge.GeneratedImage, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.GenerateImage(ctx, p, opts...)
}
