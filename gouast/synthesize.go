package gouast

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import "strings"

// Synthesize converts a lower-cased phonemic (IAST) word into Devanāgarī.
//
// A syllable is a consonant followed by a vowel sign, the inherent vowel
// (no mark) or a virama when no vowel follows. Only a word-initial vowel is
// written with its independent glyph. Characters that map to nothing are dropped.
func Synthesize(word string) string {
	data := []rune(word)
	if len(data) == 0 {
		return ""
	}

	var result strings.Builder
	result.Grow(len(word) * 2)

	i := 0

	// Starts with a vowel
	if tables.has(UAST_SYMBOL_VOWEL, data[0]) {
		if isDiphthong(data, 0) {
			i = 2
		} else {
			i = 1
		}
		result.WriteRune(tables.vowels[string(data[:i])])
	}

	for i < len(data) {
		ch := data[i]

		if glyph, ok := tables.specials[string(ch)]; ok {
			result.WriteRune(glyph)
			i++
			continue
		}

		if glyph, ok := tables.misc[string(ch)]; ok {
			if i+1 < len(data) && string(data[i:i+2]) == DOUBLE_DANDA_SPELLING {
				result.WriteRune(DOUBLE_DANDA)
				i += 2
			} else {
				result.WriteRune(glyph)
				i++
			}
			continue
		}

		if glyph, ok := tables.digits[string(ch)]; ok {
			result.WriteRune(glyph)
			i++
			continue
		}

		if !tables.has(UAST_SYMBOL_VOWEL_SIGN, ch) &&
			!tables.has(UAST_SYMBOL_VOWEL, ch) &&
			!tables.has(UAST_SYMBOL_CONSONANT, ch) {
			i++
			continue
		}

		consonant := false
		if i+1 < len(data) && unaspiratedConsonants[ch] && data[i+1] == 'h' {
			result.WriteRune(tables.consonants[string(data[i:i+2])])
			i += 2
			consonant = true
		} else if glyph, ok := tables.consonants[string(ch)]; ok {
			result.WriteRune(glyph)
			i++
			consonant = true
		}

		// No vowel follows. The next character is left for the next round.
		if i == len(data) || (!tables.has(UAST_SYMBOL_VOWEL_SIGN, data[i]) && data[i] != INHERENT_VOWEL) {
			if consonant {
				result.WriteRune(VIRAMA)
			} else {
				i++
			}
			continue
		}

		if isDiphthong(data, i) {
			result.WriteRune(tables.vowelSigns[string(data[i:i+2])])
			i += 2
		} else {
			if data[i] != INHERENT_VOWEL {
				result.WriteRune(tables.vowelSigns[string(data[i])])
			}
			i++
		}
	}

	return result.String()
}

// ai and au are written as two Latin characters but make a single sign
func isDiphthong(data []rune, i int) bool {
	return i+1 < len(data) && data[i] == INHERENT_VOWEL && (data[i+1] == 'i' || data[i+1] == 'u')
}
