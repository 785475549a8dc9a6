package articleforge

// ImageOptions contains configuration for an image generation request.
type ImageOptions struct {
	Model string
	Size  ImageSize
}

// ImageOption is a functional option for configuring image generation
// requests.
type ImageOption func(*ImageOptions)

// WithImageModel sets the model endpoint ID to use for image generation.
func WithImageModel(model string) ImageOption {
	return func(o *ImageOptions) {
		o.Model = model
	}
}

// WithImageSize sets the dimensions for the generated image.
func WithImageSize(size ImageSize) ImageOption {
	return func(o *ImageOptions) {
		o.Size = size
	}
}

// ApplyImageOptions applies functional options to an ImageOptions struct.
func ApplyImageOptions(opts ...ImageOption) *ImageOptions {
	o := &ImageOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
