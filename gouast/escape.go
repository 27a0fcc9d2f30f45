package gouast

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import "strings"

// ASCII mnemonics written between '/' and the character each stands for
var escapeTokens = map[string]rune{
	"a":  'ā',
	"i":  'ī',
	"u":  'ū',
	"r":  'ṛ',
	"ru": 'ṝ',
	"l":  'ḷ',
	"lu": 'ḹ',
	"ll": 'ḻ',
	"t":  'ṭ',
	"d":  'ḍ',
	"m":  'ṃ',
	"h":  'ḥ',
	"n":  'ñ',
	"nu": 'ṅ',
	"nl": 'ṇ',
	"su": 'ś',
	"sl": 'ṣ',
	"au": 'ã',
	"om": OM,
}

// DecodeEscapes replaces every /token/ in a word with the character it
// stands for. Unknown and empty tokens are dropped. A token left open at
// the end of the word is looked up with everything after the '/'.
func DecodeEscapes(word string) string {
	var (
		result strings.Builder
		token  strings.Builder
	)

	result.Grow(len(word))

	inToken := false
	for _, ch := range word {
		if !inToken {
			if ch == ESCAPE_DELIMITER {
				inToken = true
				token.Reset()
			} else {
				result.WriteRune(ch)
			}
			continue
		}

		if ch == ESCAPE_DELIMITER {
			writeEscape(&result, token.String())
			inToken = false
			continue
		}
		token.WriteRune(ch)
	}

	if inToken {
		writeEscape(&result, token.String())
	}

	return result.String()
}

func writeEscape(result *strings.Builder, token string) {
	if ch, ok := escapeTokens[token]; ok {
		result.WriteRune(ch)
	}
}

// LookupEscape returns the character an escape token stands for
func LookupEscape(token string) (rune, bool) {
	ch, ok := escapeTokens[token]
	return ch, ok
}
