package domain

import (
	"strings"
	"unicode"
)

// Photography cues added to every prompt
var baseEnhancements = []string{
	"professional studio photography",
	"high-end jewelry photography",
	"8K resolution",
	"perfect lighting",
	"luxury jewelry display",
	"ultra-realistic",
	"photorealistic",
	"detailed craftsmanship",
	"premium materials",
	"high-end jewelry store quality",
}

// Jewelry type cues; the first keyword starting a word of the prompt wins
var typeEnhancements = []struct {
	keyword string
	cues    []string
}{
	{"ring", []string{
		"perfect diamond sparkle",
		"precise metal finish",
		"detailed stone setting",
		"professional ring photography",
	}},
	{"necklace", []string{
		"elegant chain detail",
		"perfect pendant focus",
		"luxury necklace display",
		"professional jewelry photography",
	}},
	{"earring", []string{
		"detailed earring design",
		"perfect stone arrangement",
		"luxury earring presentation",
		"professional jewelry photography",
	}},
	{"bracelet", []string{
		"intricate bracelet design",
		"perfect metal work",
		"luxury bracelet display",
		"professional jewelry photography",
	}},
}

// Style cues per variation; variation 0 adds none
var variationEnhancements = map[int][]string{
	1: {"modern minimalist design", "contemporary style", "clean lines"},
	2: {"classic traditional design", "timeless elegance", "vintage-inspired"},
	3: {"avant-garde design", "unique artistic style", "innovative approach"},
	4: {"luxury high-end design", "exclusive style", "premium finish"},
}

// EnhancePrompt appends photography, jewelry type and variation cues to a
// customer prompt
func EnhancePrompt(prompt string, variation int) string {
	cues := make([]string, 0, len(baseEnhancements)+7)
	cues = append(cues, baseEnhancements...)

	words := strings.FieldsFunc(strings.ToLower(prompt), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
types:
	for _, t := range typeEnhancements {
		for _, w := range words {
			if strings.HasPrefix(w, t.keyword) {
				cues = append(cues, t.cues...)
				break types
			}
		}
	}
	cues = append(cues, variationEnhancements[variation]...)

	return prompt + ", " + strings.Join(cues, ", ")
}
