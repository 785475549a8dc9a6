package articleforge

// Options contains configuration for a text generation request.
type Options struct {
	Model       string
	Temperature *float64
}

// Option is a functional option for configuring text generation requests.
type Option func(*Options)

// WithModel sets the model endpoint ID to use for the request.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
