package gouast

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	glyph, ok := Lookup(UAST_SYMBOL_CONSONANT, "kh")
	assert.True(t, ok)
	assert.Equal(t, 'ख', glyph)

	glyph, ok = Lookup(UAST_SYMBOL_VOWEL, "au")
	assert.True(t, ok)
	assert.Equal(t, 'औ', glyph)

	glyph, ok = Lookup(UAST_SYMBOL_VOWEL_SIGN, "au")
	assert.True(t, ok)
	assert.Equal(t, 'ौ', glyph)

	glyph, ok = Lookup(UAST_SYMBOL_MISC, "..")
	assert.True(t, ok)
	assert.Equal(t, DOUBLE_DANDA, glyph)

	glyph, ok = Lookup(UAST_SYMBOL_SPECIAL, "ॐ")
	assert.True(t, ok)
	assert.Equal(t, OM, glyph)

	_, ok = Lookup(UAST_SYMBOL_CONSONANT, "a")
	assert.False(t, ok)

	_, ok = Lookup(Category(42), "k")
	assert.False(t, ok)
}

func TestSpellingLength(t *testing.T) {
	for _, category := range Categories {
		for spelling := range tables.category(category) {
			n := utf8.RuneCountInString(spelling)
			assert.True(t, n == 1 || n == 2, "%s %q", category, spelling)
		}
	}
}

// A vowel and its sign share a spelling, every other category is disjoint
func TestCategoriesExclusive(t *testing.T) {
	owner := map[string]Category{}

	for _, category := range Categories {
		for spelling := range tables.category(category) {
			c := category
			if c == UAST_SYMBOL_VOWEL_SIGN {
				c = UAST_SYMBOL_VOWEL
			}

			previous, seen := owner[spelling]
			if seen {
				assert.Equal(t, previous, c, "%q is in %s and %s", spelling, previous, category)
			}
			owner[spelling] = c
		}
	}
}

func TestGlyphsUnique(t *testing.T) {
	seen := map[rune]string{}

	for _, category := range Categories {
		for spelling, glyph := range tables.category(category) {
			previous, ok := seen[glyph]
			assert.False(t, ok, "%c is mapped from %q and %q", glyph, previous, spelling)
			seen[glyph] = spelling
		}
	}
}

func TestReverseTables(t *testing.T) {
	for spelling, glyph := range tables.vowels {
		assert.Equal(t, spelling, tables.glyphVowels[glyph])
	}
	for spelling, glyph := range tables.consonants {
		assert.Equal(t, spelling, tables.glyphConsonants[glyph])
	}
	for spelling, glyph := range tables.digits {
		assert.Equal(t, spelling, tables.glyphMisc[glyph])
	}
	for spelling, glyph := range tables.vowelSigns {
		if glyph == ANUSVARA || glyph == VISARGA {
			assert.NotContains(t, tables.glyphVowelSigns, glyph)
			continue
		}
		assert.Equal(t, spelling, tables.glyphVowelSigns[glyph])
	}

	assert.NotContains(t, tables.glyphMisc, CANDRABINDU)
	assert.Equal(t, DANDA_SPELLING, tables.glyphMisc[DANDA])
	assert.Equal(t, DOUBLE_DANDA_SPELLING, tables.glyphMisc[DOUBLE_DANDA])
}

func TestAspiratedConsonants(t *testing.T) {
	for ch := range unaspiratedConsonants {
		_, ok := Lookup(UAST_SYMBOL_CONSONANT, string(ch))
		require.True(t, ok, string(ch))

		_, ok = Lookup(UAST_SYMBOL_CONSONANT, string(ch)+"h")
		require.True(t, ok, string(ch)+"h")
	}
}

func TestSymbols(t *testing.T) {
	symbols := Symbols()

	total := 0
	for _, category := range Categories {
		total += len(tables.category(category))
	}
	require.Len(t, symbols, total)

	for i := 1; i < len(symbols); i++ {
		prev, cur := symbols[i-1], symbols[i]
		ordered := prev.Type < cur.Type || (prev.Type == cur.Type && prev.Pattern < cur.Pattern)
		assert.True(t, ordered, "%v before %v", prev, cur)
	}

	byPattern := map[string]Symbol{}
	for _, symbol := range symbols {
		if symbol.Type == UAST_SYMBOL_CONSONANT {
			byPattern[symbol.Pattern] = symbol
		}
	}

	assert.Equal(t, Symbol{UAST_SYMBOL_CONSONANT, "kh", "ख", "ખ", TAG_ASPIRATED}, byPattern["kh"])
	assert.Equal(t, Symbol{UAST_SYMBOL_CONSONANT, "ḻ", "ळ", "ળ", ""}, byPattern["ḻ"])

	for _, symbol := range symbols {
		if symbol.Pattern == "ai" || symbol.Pattern == "au" {
			assert.Equal(t, TAG_DIPHTHONG, symbol.Tag)
		}
		// Every glyph of the tables has a Gujarātī counterpart
		assert.NotEmpty(t, symbol.Value2, symbol.Pattern)
	}
}

func TestCategoryString(t *testing.T) {
	for _, category := range Categories {
		parsed, ok := ParseCategory(category.String())
		assert.True(t, ok)
		assert.Equal(t, category, parsed)
	}

	_, ok := ParseCategory("unknown")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Category(0).String())
}
