package gouast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"अ", "a"},
		{"ऐ", "ai"},
		{"ॡ", "ḹ"},
		{"क", "ka"},
		{"क्", "k"},
		{"कै", "kai"},
		{"कँ", "kaã"},
		{"कं", "kaṃ"},
		{"कः", "kaḥ"},
		{"क्ष", "kṣa"},
		{"भगवान्", "bhagavān"},
		{"।", "."},
		{"॥", ".."},
		{"।।", ".."},
		{"।।।", "..."},
		{"ऽ", "'"},
		{"१२", "12"},
		{"ॐ", "ॐ"},
		{"ॐकार", "ॐkāra"},
		{"॰", "॰"},
		// A vowel in the middle of a word has no spelling of its own
		{"कअ", "ka"},
		{"कx", "ka"},
		{"x", ""},
		// Gujarātī is not Devanāgarī
		{"ક્", ""},
		{"सूनवेऽग्ने", "sūnave'gne"},
		{"इद्देवेषु", "iddeveṣu"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, Decompose(test.input), test.input)
	}
}

func TestDecomposeConsonants(t *testing.T) {
	for glyph, spelling := range tables.glyphConsonants {
		assert.Equal(t, spelling+"a", Decompose(string(glyph)))
		assert.Equal(t, spelling, Decompose(string(glyph)+string(VIRAMA)))

		for sign, vowel := range tables.glyphVowelSigns {
			assert.Equal(t, spelling+vowel, Decompose(string(glyph)+string(sign)))
		}
	}
}
