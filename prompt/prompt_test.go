package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"articleforge"
)

func baseParams() articleforge.GenerationParams {
	return articleforge.GenerationParams{
		Topic:      "bank statement conversion",
		Keywords:   "pdf to excel, bank statement",
		Language:   articleforge.LanguageJapanese,
		WordCount:  "1000-2000",
		ImageCount: 3,
	}
}

func TestBuild(t *testing.T) {
	t.Run("encodes language mandate and code", func(t *testing.T) {
		p := Build(baseParams(), ContractJSON)
		assert.Contains(t, p.System, "MUST be in Japanese")
		assert.Contains(t, p.System, "lang: ja")
		assert.Contains(t, p.User, "in Japanese")
	})

	t.Run("defaults to English when language empty", func(t *testing.T) {
		params := baseParams()
		params.Language = ""
		p := Build(params, ContractJSON)
		assert.Contains(t, p.System, "MUST be in English")
		assert.Contains(t, p.System, "lang: en")
	})

	t.Run("includes topic, keywords and word count", func(t *testing.T) {
		p := Build(baseParams(), ContractJSON)
		assert.Contains(t, p.System, `"bank statement conversion"`)
		assert.Contains(t, p.System, "pdf to excel, bank statement")
		assert.Contains(t, p.System, "Word count: 1000-2000")
	})

	t.Run("json contract describes the envelope", func(t *testing.T) {
		p := Build(baseParams(), ContractJSON)
		assert.Contains(t, p.System, "images_metadata")
		assert.Contains(t, p.System, "Plan 3 images")
		assert.NotContains(t, p.System, "IMG_PROMPT")
	})

	t.Run("placeholder contract describes comments", func(t *testing.T) {
		p := Build(baseParams(), ContractPlaceholders)
		assert.Contains(t, p.System, "IMG_PROMPT")
		assert.Contains(t, p.System, "insert 3 image placeholders")
		assert.NotContains(t, p.System, "images_metadata")
	})

	t.Run("zero images omits the image contract", func(t *testing.T) {
		params := baseParams()
		params.ImageCount = 0
		p := Build(params, ContractJSON)
		assert.NotContains(t, p.System, "images_metadata")
		assert.NotContains(t, p.System, "IMG_PROMPT")
	})

	t.Run("lists references", func(t *testing.T) {
		params := baseParams()
		params.References = []string{"https://example.com/a", "https://example.com/b"}
		p := Build(params, ContractJSON)
		assert.Contains(t, p.System, "[ref1](https://example.com/a)")
		assert.Contains(t, p.System, "[ref2](https://example.com/b)")
	})

	t.Run("is pure", func(t *testing.T) {
		a := Build(baseParams(), ContractJSON)
		b := Build(baseParams(), ContractJSON)
		assert.Equal(t, a, b)
	})
}

func TestAugmentImage(t *testing.T) {
	got := AugmentImage("a red bridge at dawn")
	assert.True(t, strings.HasPrefix(got, "a red bridge at dawn"))
	assert.Contains(t, got, "4k")
	assert.Contains(t, got, "high quality")
}

func TestCoverImage(t *testing.T) {
	t.Run("combines topic and keywords", func(t *testing.T) {
		got := CoverImage("topic", "k1, k2")
		assert.Contains(t, got, "topic")
		assert.Contains(t, got, "k1, k2")
		assert.Contains(t, got, "English-only text")
	})

	t.Run("omits empty keywords", func(t *testing.T) {
		got := CoverImage("topic", "")
		assert.NotContains(t, got, "topic, ,")
	})
}

func TestSectionImage(t *testing.T) {
	got := SectionImage("Common Pitfalls", "pdf conversion")
	assert.Contains(t, got, "Common Pitfalls related to pdf conversion")
}
