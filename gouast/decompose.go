package gouast

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import "strings"

// Decompose converts a Devanāgarī word into IAST.
//
// A consonant glyph is followed by a virama (bare consonant), a vowel sign,
// or anything else, in which case it carries the inherent 'a'. Glyphs that
// map to nothing are dropped.
func Decompose(word string) string {
	data := []rune(word)

	var result strings.Builder
	result.Grow(len(word))

	i := 0

	// Starts with a vowel
	if len(data) > 0 {
		if spelling, ok := tables.glyphVowels[data[0]]; ok {
			result.WriteString(spelling)
			i++
		}
	}

	for i < len(data) {
		ch := data[i]

		if _, ok := tables.specials[string(ch)]; ok {
			result.WriteRune(ch)
			i++
			continue
		}

		if ch == DANDA && i+1 < len(data) && data[i+1] == DANDA {
			result.WriteString(DOUBLE_DANDA_SPELLING)
			i += 2
			continue
		}

		if spelling, ok := tables.glyphMisc[ch]; ok {
			result.WriteString(spelling)
			i++
			continue
		}

		switch ch {
		case ANUSVARA:
			result.WriteString(ANUSVARA_SPELLING)
			i++
			continue
		case VISARGA:
			result.WriteString(VISARGA_SPELLING)
			i++
			continue
		case CANDRABINDU:
			result.WriteString(CANDRABINDU_SPELLING)
			i++
			continue
		}

		if spelling, ok := tables.glyphConsonants[ch]; ok {
			result.WriteString(spelling)

			if i+1 < len(data) {
				next := data[i+1]
				if next == VIRAMA {
					i += 2
					continue
				}

				if sign, ok := tables.glyphVowelSigns[next]; ok {
					result.WriteString(sign)
					i += 2
					continue
				}
			}

			// Inherent vowel. The following glyph is handled in the next round.
			result.WriteRune(INHERENT_VOWEL)
			i++
			continue
		}

		i++
	}

	return result.String()
}
