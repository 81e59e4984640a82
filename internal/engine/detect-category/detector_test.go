package detectcategory

import (
	"testing"

	"toolrouter/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected models.Category
		found    bool
	}{
		{"english visual", "I need a logo for my startup", models.CategoryVisual, true},
		{"turkish visual", "bana bir görsel lazım", models.CategoryVisual, true},
		{"english text", "help me with blog writing", models.CategoryText, true},
		{"audio", "I need a podcast voice-over", models.CategoryAudio, true},
		{"research", "literature review for my thesis paper", models.CategoryResearch, true},
		{"video", "short animation clip", models.CategoryVideo, true},
		{"data", "build a sales dashboard", models.CategoryData, true},
		{"code", "python function for parsing", models.CategoryCode, true},
		{"case insensitive", "LOGO DESIGN", models.CategoryVisual, true},
		{"substring match inside word", "photography tips", models.CategoryVisual, true},
		{"no category", "help me please", "", false},
		{"empty query", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, found := Detect(tt.query)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, category)
		})
	}
}

func TestDetect_CategoryOrderWins(t *testing.T) {
	// "design a chart" matches both visual (design) and data (chart).
	// Visual comes first in the canonical order.
	category, found := Detect("design a chart")
	assert.True(t, found)
	assert.Equal(t, models.CategoryVisual, category)
}

func TestKeywordsFor(t *testing.T) {
	assert.Contains(t, KeywordsFor(models.CategoryAudio), "podcast")
	assert.Empty(t, KeywordsFor(models.Category("bogus")))
}
