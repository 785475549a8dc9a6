package articleforge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		name     string
		language Language
		expected string
	}{
		{"chinese", LanguageChinese, "zh"},
		{"english", LanguageEnglish, "en"},
		{"japanese", LanguageJapanese, "ja"},
		{"korean", LanguageKorean, "ko"},
		{"unknown falls back to en", Language("Klingon"), "en"},
		{"empty falls back to en", Language(""), "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.language.Code())
		})
	}
}

func TestSizeForAspectRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    string
		expected ImageSize
	}{
		{"square", "1:1", ImageSize1024x1024},
		{"landscape", "16:9", ImageSize1280x720},
		{"standard", "4:3", ImageSize1024x768},
		{"portrait", "3:4", ImageSize768x1024},
		{"phone", "9:16", ImageSize720x1280},
		{"unknown falls back to square", "2:1", ImageSize1024x1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SizeForAspectRatio(tt.ratio))
		})
	}
}

func TestGenerationParamsValidate(t *testing.T) {
	valid := GenerationParams{
		Topic:      "pdf to excel conversion",
		Language:   LanguageEnglish,
		ImageCount: 3,
	}

	t.Run("accepts valid params", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("rejects empty topic", func(t *testing.T) {
		p := valid
		p.Topic = "   "
		err := p.Validate()
		assert.Error(t, err)
		assert.Equal(t, ErrorConfig, KindOf(err))
	})

	t.Run("rejects negative image count", func(t *testing.T) {
		p := valid
		p.ImageCount = -1
		assert.Error(t, p.Validate())
	})

	t.Run("rejects image count above the cap", func(t *testing.T) {
		p := valid
		p.ImageCount = MaxImageCount + 1
		assert.Error(t, p.Validate())
	})

	t.Run("accepts zero images", func(t *testing.T) {
		p := valid
		p.ImageCount = 0
		assert.NoError(t, p.Validate())
	})
}
