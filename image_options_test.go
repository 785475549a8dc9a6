package articleforge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyImageOptions(t *testing.T) {
	t.Run("returns empty options when no options provided", func(t *testing.T) {
		opts := ApplyImageOptions()
		assert.NotNil(t, opts)
		assert.Empty(t, opts.Model)
		assert.Empty(t, opts.Size)
	})

	t.Run("applies multiple options", func(t *testing.T) {
		opts := ApplyImageOptions(
			WithImageModel("ep-20240604123456-abcde"),
			WithImageSize(ImageSize1280x720),
		)
		assert.Equal(t, "ep-20240604123456-abcde", opts.Model)
		assert.Equal(t, ImageSize1280x720, opts.Size)
	})

	t.Run("later option overrides earlier", func(t *testing.T) {
		opts := ApplyImageOptions(
			WithImageSize(ImageSize1024x1024),
			WithImageSize(ImageSize768x1024),
		)
		assert.Equal(t, ImageSize768x1024, opts.Size)
	})
}

func TestImageSizeConstants(t *testing.T) {
	assert.Equal(t, ImageSize("1024x1024"), ImageSize1024x1024)
	assert.Equal(t, ImageSize("1280x720"), ImageSize1280x720)
	assert.Equal(t, ImageSize("1024x768"), ImageSize1024x768)
	assert.Equal(t, ImageSize("768x1024"), ImageSize768x1024)
	assert.Equal(t, ImageSize("720x1280"), ImageSize720x1280)
}
