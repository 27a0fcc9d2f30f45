package gouast

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

// charMap maps a Latin phonemic spelling (1 or 2 characters) to a glyph
type charMap map[string]rune

// scriptTables holds one category-partitioned table set. It is built once
// and never written to afterwards.
type scriptTables struct {
	vowels     charMap
	vowelSigns charMap
	consonants charMap
	digits     charMap
	misc       charMap
	specials   charMap

	// Reverse direction, derived from the above by inversion
	glyphVowels     map[rune]string
	glyphVowelSigns map[rune]string
	glyphConsonants map[rune]string
	glyphMisc       map[rune]string
}

var tables = newScriptTables()

// Consonants that have an aspirated digraph made by appending 'h'
var unaspiratedConsonants = map[rune]bool{
	'b': true, 'c': true, 'd': true, 'g': true, 'j': true,
	'k': true, 'p': true, 't': true, 'ḍ': true, 'ṭ': true,
}

func newScriptTables() *scriptTables {
	t := &scriptTables{
		vowels: charMap{
			"a":  'अ',
			"ā":  'आ',
			"i":  'इ',
			"ī":  'ई',
			"u":  'उ',
			"ū":  'ऊ',
			"ṛ":  'ऋ',
			"ṝ":  'ॠ',
			"ḷ":  'ऌ',
			"ḹ":  'ॡ',
			"e":  'ए',
			"ai": 'ऐ',
			"o":  'ओ',
			"au": 'औ',
		},
		vowelSigns: charMap{
			"ā":  'ा',
			"i":  'ि',
			"ī":  'ी',
			"u":  'ु',
			"ū":  'ू',
			"ṛ":  'ृ',
			"ṝ":  'ॄ',
			"ḷ":  'ॢ',
			"ḹ":  'ॣ',
			"e":  'े',
			"ai": 'ै',
			"o":  'ो',
			"au": 'ौ',
			// Attach to a consonant like a vowel sign while synthesizing
			ANUSVARA_SPELLING: ANUSVARA,
			VISARGA_SPELLING:  VISARGA,
		},
		consonants: charMap{
			"k":  'क',
			"kh": 'ख',
			"g":  'ग',
			"gh": 'घ',
			"ṅ":  'ङ',
			"c":  'च',
			"ch": 'छ',
			"j":  'ज',
			"jh": 'झ',
			"ñ":  'ञ',
			"ṭ":  'ट',
			"ṭh": 'ठ',
			"ḍ":  'ड',
			"ḍh": 'ढ',
			"ṇ":  'ण',
			"t":  'त',
			"th": 'थ',
			"d":  'द',
			"dh": 'ध',
			"n":  'न',
			"p":  'प',
			"ph": 'फ',
			"b":  'ब',
			"bh": 'भ',
			"m":  'म',
			"y":  'य',
			"r":  'र',
			"l":  'ल',
			"v":  'व',
			"ś":  'श',
			"ṣ":  'ष',
			"s":  'स',
			"h":  'ह',
			"ḻ":  'ळ',
		},
		digits: charMap{
			"0": '०',
			"1": '१',
			"2": '२',
			"3": '३',
			"4": '४',
			"5": '५',
			"6": '६',
			"7": '७',
			"8": '८',
			"9": '९',
		},
		misc: charMap{
			DANDA_SPELLING:        DANDA,
			DOUBLE_DANDA_SPELLING: DOUBLE_DANDA,
			"'":                   AVAGRAHA,
			CANDRABINDU_SPELLING:  CANDRABINDU,
		},
		specials: charMap{
			string(OM):           OM,
			string(ABBREVIATION): ABBREVIATION,
		},
	}

	t.glyphVowels = invert(t.vowels)
	t.glyphConsonants = invert(t.consonants)

	t.glyphVowelSigns = invert(t.vowelSigns)
	delete(t.glyphVowelSigns, ANUSVARA)
	delete(t.glyphVowelSigns, VISARGA)

	t.glyphMisc = invert(t.misc)
	delete(t.glyphMisc, CANDRABINDU)
	for spelling, glyph := range t.digits {
		t.glyphMisc[glyph] = spelling
	}

	return t
}

func invert(m charMap) map[rune]string {
	result := make(map[rune]string, len(m))
	for spelling, glyph := range m {
		result[glyph] = spelling
	}
	return result
}

func (t *scriptTables) category(c Category) charMap {
	switch c {
	case UAST_SYMBOL_VOWEL:
		return t.vowels
	case UAST_SYMBOL_VOWEL_SIGN:
		return t.vowelSigns
	case UAST_SYMBOL_CONSONANT:
		return t.consonants
	case UAST_SYMBOL_DIGIT:
		return t.digits
	case UAST_SYMBOL_MISC:
		return t.misc
	case UAST_SYMBOL_SPECIAL:
		return t.specials
	}
	return nil
}

func (t *scriptTables) has(c Category, ch rune) bool {
	_, ok := t.category(c)[string(ch)]
	return ok
}

// Lookup the glyph of a spelling in a category
func Lookup(category Category, spelling string) (rune, bool) {
	glyph, ok := tables.category(category)[spelling]
	return glyph, ok
}
