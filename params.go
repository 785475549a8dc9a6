package articleforge

import "strings"

// Language selects the output language for generated articles.
type Language string

// Supported article languages.
const (
	LanguageChinese  Language = "Chinese"
	LanguageEnglish  Language = "English"
	LanguageJapanese Language = "Japanese"
	LanguageKorean   Language = "Korean"
)

// Code returns the ISO 639-1 code used in article frontmatter.
// Unknown languages map to "en".
func (l Language) Code() string {
	switch l {
	case LanguageChinese:
		return "zh"
	case LanguageJapanese:
		return "ja"
	case LanguageKorean:
		return "ko"
	default:
		return "en"
	}
}

// ImageSize represents predefined image dimensions in "WxH" form.
type ImageSize string

const (
	ImageSize1024x1024 ImageSize = "1024x1024" // 1:1
	ImageSize1280x720  ImageSize = "1280x720"  // 16:9
	ImageSize1024x768  ImageSize = "1024x768"  // 4:3
	ImageSize768x1024  ImageSize = "768x1024"  // 3:4
	ImageSize720x1280  ImageSize = "720x1280"  // 9:16
)

// aspectRatioSizes maps the aspect-ratio labels offered by the UI to sizes.
var aspectRatioSizes = map[string]ImageSize{
	"1:1":  ImageSize1024x1024,
	"16:9": ImageSize1280x720,
	"4:3":  ImageSize1024x768,
	"3:4":  ImageSize768x1024,
	"9:16": ImageSize720x1280,
}

// SizeForAspectRatio returns the image size for an aspect-ratio label such as
// "16:9". Unknown ratios fall back to 1024x1024.
func SizeForAspectRatio(ratio string) ImageSize {
	if size, ok := aspectRatioSizes[ratio]; ok {
		return size
	}
	return ImageSize1024x1024
}

// MaxImageCount bounds the number of companion images per article.
const MaxImageCount = 5

// EndpointIDPrefix is the prefix Volcengine Ark inference endpoint IDs carry.
// Model identifiers that do not start with it usually indicate a
// misconfigured model field.
const EndpointIDPrefix = "ep-"

// GenerationParams describes one article generation run. Immutable once
// submitted.
type GenerationParams struct {
	// Topic is the article subject. Required.
	Topic string

	// Keywords is a comma-separated keyword list woven into the article.
	Keywords string

	// Language selects the article output language.
	Language Language

	// WordCount is a bucket label such as "1000-2000" passed verbatim to the
	// prompt.
	WordCount string

	// ImageCount is the number of companion images to generate, 0 to
	// MaxImageCount. Fewer images than requested is a valid outcome.
	ImageCount int

	// ImageSize is the "WxH" size for generated images.
	ImageSize ImageSize

	// References are URLs the article should align with and cite.
	References []string

	// APIKey overrides the client's configured key for this run.
	APIKey string

	// Model overrides the client's configured chat model (an endpoint ID).
	Model string

	// Project names an entry in the client's project table; when set, image
	// URLs in the article are prefixed with the project's public URL prefix.
	Project string
}

// Validate reports configuration problems that must be fixed before any
// network call is made.
func (p GenerationParams) Validate() error {
	if strings.TrimSpace(p.Topic) == "" {
		return NewConfigError("topic is required", nil)
	}
	if p.ImageCount < 0 || p.ImageCount > MaxImageCount {
		return NewConfigError("image count must be between 0 and 5", nil)
	}
	return nil
}
