package gouast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "अ"},
		{"ā", "आ"},
		{"ai", "ऐ"},
		{"au", "औ"},
		{"ṝ", "ॠ"},
		{"k", "क्"},
		{"ka", "क"},
		{"kā", "का"},
		{"kai", "कै"},
		{"kau", "कौ"},
		{"kh", "ख्"},
		{"kha", "ख"},
		{"ṭha", "ठ"},
		{"ḍhā", "ढा"},
		// s has no aspirated digraph
		{"sha", "स्ह"},
		{"kṣa", "क्ष"},
		{"kṃ", "कं"},
		{"kaṃ", "कं"},
		{"naḥ", "नः"},
		{"devāã", "देवाँ"},
		{"sūnave'gne", "सूनवेऽग्ने"},
		{".", "।"},
		{"..", "॥"},
		{"...", "॥।"},
		{"k.a", "क्।"},
		{"0123456789", "०१२३४५६७८९"},
		{"ॐ", "ॐ"},
		{"ॐkāra", "ॐकार"},
		// Dropped characters
		{"x", ""},
		{"kx", "क्"},
		{"xk", "क्"},
		{"k#a", "क्"},
		{"aa", "अ"},
		// Mismatched vowels are written as signs without a consonant
		{"ae", "अे"},
		{"iddeveṣu", "इद्देवेषु"},
		{"pūrvebhirṛṣibhirīḍyo", "पूर्वेभिरृषिभिरीड्यो"},
		{"yajñasya", "यज्ञस्य"},
		{"nūtanairūta", "नूतनैरूत"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, Synthesize(test.input), test.input)
	}
}

func TestSynthesizeBareConsonant(t *testing.T) {
	for spelling, glyph := range tables.consonants {
		assert.Equal(t, string(glyph)+string(VIRAMA), Synthesize(spelling), spelling)
	}
}

func TestSynthesizeInherentVowel(t *testing.T) {
	for spelling, glyph := range tables.consonants {
		result := Synthesize(spelling + "a")
		assert.Equal(t, string(glyph), result, spelling)

		for _, ch := range result {
			_, isSign := tables.glyphVowelSigns[ch]
			assert.False(t, isSign, spelling)
			assert.NotEqual(t, VIRAMA, ch, spelling)
		}
	}
}

func TestSynthesizeVowelSigns(t *testing.T) {
	for consonant, consonantGlyph := range tables.consonants {
		for vowel, sign := range tables.vowelSigns {
			assert.Equal(t, string(consonantGlyph)+string(sign), Synthesize(consonant+vowel), consonant+vowel)
		}
	}
}

func TestDigits(t *testing.T) {
	glyphs := map[string]bool{}

	for _, digit := range strings.Split("0123456789", "") {
		glyph := Synthesize(digit)
		assert.NotEmpty(t, glyph)
		assert.Equal(t, digit, Decompose(glyph))
		glyphs[glyph] = true
	}

	assert.Len(t, glyphs, 10)
}

// Words made of syllables decompose back to what they were made from
func TestRoundTrip(t *testing.T) {
	vowels := []string{"", "a"}
	for spelling, glyph := range tables.vowelSigns {
		if glyph == ANUSVARA || glyph == VISARGA {
			continue
		}
		vowels = append(vowels, spelling)
	}

	var syllables []string
	for consonant := range tables.consonants {
		for _, vowel := range vowels {
			syllables = append(syllables, consonant+vowel)
		}
	}

	for _, first := range syllables {
		assert.Equal(t, first, Decompose(Synthesize(first)))
	}

	for _, initial := range []string{"a", "ā", "i", "e", "ai", "au", "ḹ"} {
		for _, first := range syllables {
			word := initial + first
			assert.Equal(t, word, Decompose(Synthesize(word)), word)
		}
	}

	for _, first := range syllables {
		for _, second := range []string{"ka", "gh", "ṇai", "ḻu", "ś", "ṣṛ"} {
			word := first + second
			assert.Equal(t, word, Decompose(Synthesize(word)), word)
		}
	}
}

func BenchmarkSynthesize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, verse := range verses {
			ConvertLine(RomanizedToDevanagari, verse.uast)
		}
	}
}
