package gouast

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

/* Special glyphs */
const OM = 'ॐ'
const VIRAMA = '्'
const ANUSVARA = 'ं'
const VISARGA = 'ः'
const CANDRABINDU = 'ँ'
const DANDA = '।'
const DOUBLE_DANDA = '॥'
const AVAGRAHA = 'ऽ'
const ABBREVIATION = '॰'

/* Fixed IAST spellings of the specials */
const ANUSVARA_SPELLING = "ṃ"
const VISARGA_SPELLING = "ḥ"
const CANDRABINDU_SPELLING = "ã"
const DANDA_SPELLING = "."
const DOUBLE_DANDA_SPELLING = ".."

// INHERENT_VOWEL is the vowel an unmarked consonant glyph carries
const INHERENT_VOWEL = 'a'

// ESCAPE_DELIMITER opens and closes an escape token
const ESCAPE_DELIMITER = '/'

// Category of a table entry. Categories are mutually exclusive for a spelling.
type Category int

/* Character categories */
const UAST_SYMBOL_VOWEL Category = 1
const UAST_SYMBOL_VOWEL_SIGN Category = 2
const UAST_SYMBOL_CONSONANT Category = 3
const UAST_SYMBOL_DIGIT Category = 4
const UAST_SYMBOL_MISC Category = 5
const UAST_SYMBOL_SPECIAL Category = 6

func (c Category) String() string {
	switch c {
	case UAST_SYMBOL_VOWEL:
		return "vowel"
	case UAST_SYMBOL_VOWEL_SIGN:
		return "vowel-sign"
	case UAST_SYMBOL_CONSONANT:
		return "consonant"
	case UAST_SYMBOL_DIGIT:
		return "digit"
	case UAST_SYMBOL_MISC:
		return "misc"
	case UAST_SYMBOL_SPECIAL:
		return "special"
	default:
		return "unknown"
	}
}

// ParseCategory is the inverse of Category.String
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Categories in table order
var Categories = []Category{
	UAST_SYMBOL_VOWEL,
	UAST_SYMBOL_VOWEL_SIGN,
	UAST_SYMBOL_CONSONANT,
	UAST_SYMBOL_DIGIT,
	UAST_SYMBOL_MISC,
	UAST_SYMBOL_SPECIAL,
}

/* Tags attached to symbols when tables are exported */
const TAG_ASPIRATED = "aspirated"
const TAG_DIPHTHONG = "diphthong"
