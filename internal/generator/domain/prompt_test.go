package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnhancePrompt_Base(t *testing.T) {
	got := EnhancePrompt("A pendant of carved jade", 0)

	assert.True(t, strings.HasPrefix(got, "A pendant of carved jade, professional studio photography, "))
	assert.True(t, strings.HasSuffix(got, "high-end jewelry store quality"))
	assert.Equal(t, len(baseEnhancements), strings.Count(got, ", "))
}

func TestEnhancePrompt_JewelryType(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
		absent string
	}{
		{"ring", "Gold RING with ruby", "professional ring photography", "elegant chain detail"},
		{"necklace", "Pearl necklace", "perfect pendant focus", "perfect diamond sparkle"},
		{"earring", "Hoop earrings", "luxury earring presentation", "intricate bracelet design"},
		{"bracelet", "Charm bracelet", "perfect metal work", "detailed earring design"},
		{"ring wins over necklace", "necklace and ring set", "detailed stone setting", "luxury necklace display"},
		{"earrings are not rings", "Diamond earrings", "detailed earring design", "professional ring photography"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnhancePrompt(tt.prompt, 0)
			assert.Contains(t, got, tt.want)
			assert.NotContains(t, got, tt.absent)
		})
	}
}

func TestEnhancePrompt_Variations(t *testing.T) {
	assert.Contains(t, EnhancePrompt("brooch", 1), "clean lines")
	assert.Contains(t, EnhancePrompt("brooch", 2), "vintage-inspired")
	assert.Contains(t, EnhancePrompt("brooch", 3), "innovative approach")
	assert.True(t, strings.HasSuffix(EnhancePrompt("brooch", 4), "exclusive style, premium finish"))
	assert.Equal(t, EnhancePrompt("brooch", 0), EnhancePrompt("brooch", 7))
}
