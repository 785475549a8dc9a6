// Package ark wraps the Volcengine Ark OpenAI-compatible API behind the
// TextProvider and ImageProvider interfaces. Ark names deployed models by
// inference endpoint ID (ep-...), not by bare model name.
package ark

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"articleforge"
)

// Client issues chat-completion and image-generation calls.
type Client struct {
	client     *openai.Client
	chatModel  string
	imageModel string
}

// ClientOption configures the Ark client.
type ClientOption func(*Client, *[]option.RequestOption)

// WithBaseURL points the client at a different API base, such as a local
// development proxy.
func WithBaseURL(baseURL string) ClientOption {
	return func(_ *Client, reqOpts *[]option.RequestOption) {
		if baseURL != "" {
			*reqOpts = append(*reqOpts, option.WithBaseURL(baseURL))
		}
	}
}

// WithChatModel sets the default chat model endpoint ID.
func WithChatModel(model string) ClientOption {
	return func(c *Client, _ *[]option.RequestOption) {
		c.chatModel = model
	}
}

// WithImageModel sets the default image model endpoint ID.
func WithImageModel(model string) ClientOption {
	return func(c *Client, _ *[]option.RequestOption) {
		c.imageModel = model
	}
}

// New creates an Ark client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	c := &Client{}
	for _, opt := range opts {
		opt(c, &reqOpts)
	}
	client := openai.NewClient(reqOpts...)
	c.client = &client
	return c
}

// GenerateText sends a system/user prompt pair and returns the model output.
func (c *Client) GenerateText(ctx context.Context, system, user string, opts ...articleforge.Option) (string, error) {
	options := articleforge.ApplyOptions(opts...)
	model := c.chatModel
	if options.Model != "" {
		model = options.Model
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(*options.Temperature)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", articleforge.NewTransportError("chat completion returned no choices", 0, nil)
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateImage requests one image in base64 form.
func (c *Client) GenerateImage(ctx context.Context, prompt string, opts ...articleforge.ImageOption) (*articleforge.GeneratedImage, error) {
	options := articleforge.ApplyImageOptions(opts...)
	model := c.imageModel
	if options.Model != "" {
		model = options.Model
	}
	size := options.Size
	if size == "" {
		size = articleforge.ImageSize1024x1024
	}

	resp, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:          openai.ImageModel(model),
		Prompt:         prompt,
		N:              openai.Int(1),
		Size:           openai.ImageGenerateParamsSize(size),
		ResponseFormat: openai.ImageGenerateParamsResponseFormat("b64_json"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	if len(resp.Data) == 0 {
		return nil, articleforge.NewTransportError("image generation returned no data", 0, nil)
	}
	return &articleforge.GeneratedImage{
		Base64: resp.Data[0].B64JSON,
		URL:    resp.Data[0].URL,
	}, nil
}

var _ articleforge.TextProvider = (*Client)(nil)
var _ articleforge.ImageProvider = (*Client)(nil)
