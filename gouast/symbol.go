package gouast

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"sort"
	"unicode/utf8"
)

// Symbol is one entry of the script tables
type Symbol struct {
	Type    Category
	Pattern string // Latin phonemic spelling
	Value1  string // Devanāgarī glyph
	Value2  string // Gujarātī glyph, empty if there is none
	Tag     string
}

// Symbols returns every table entry ordered by category and then pattern
func Symbols() []Symbol {
	var results []Symbol

	for _, category := range Categories {
		m := tables.category(category)

		patterns := make([]string, 0, len(m))
		for pattern := range m {
			patterns = append(patterns, pattern)
		}
		sort.Strings(patterns)

		for _, pattern := range patterns {
			glyph := m[pattern]

			symbol := Symbol{
				Type:    category,
				Pattern: pattern,
				Value1:  string(glyph),
				Tag:     symbolTag(category, pattern),
			}
			if gu, ok := gujaratiGlyphs[glyph]; ok {
				symbol.Value2 = string(gu)
			}

			results = append(results, symbol)
		}
	}

	return results
}

func symbolTag(category Category, pattern string) string {
	if utf8.RuneCountInString(pattern) != 2 {
		return ""
	}

	first, _ := getFirstCharacter(pattern)

	switch category {
	case UAST_SYMBOL_CONSONANT:
		if unaspiratedConsonants[first] {
			return TAG_ASPIRATED
		}
	case UAST_SYMBOL_VOWEL, UAST_SYMBOL_VOWEL_SIGN:
		if first == INHERENT_VOWEL {
			return TAG_DIPHTHONG
		}
	}
	return ""
}
