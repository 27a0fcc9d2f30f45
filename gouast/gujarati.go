package gouast

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import "strings"

// Devanāgarī and Gujarātī are structurally identical, so a glyph maps to a glyph
var gujaratiGlyphs = map[rune]rune{
	'।': '।',
	'॥': '॥',
	'ॐ': 'ૐ',
	'॰': '૰',
	'ऽ': 'ઽ',
	'०': '૦',
	'१': '૧',
	'२': '૨',
	'३': '૩',
	'४': '૪',
	'५': '૫',
	'६': '૬',
	'७': '૭',
	'८': '૮',
	'९': '૯',
	'अ': 'અ',
	'आ': 'આ',
	'इ': 'ઇ',
	'ई': 'ઈ',
	'उ': 'ઉ',
	'ऊ': 'ઊ',
	'ऋ': 'ઋ',
	'ॠ': 'ૠ',
	'ऌ': 'ઌ',
	'ॡ': 'ૡ',
	'ए': 'એ',
	'ऐ': 'ઐ',
	'ओ': 'ઓ',
	'औ': 'ઔ',
	'ा': 'ા',
	'ि': 'િ',
	'ी': 'ી',
	'ु': 'ુ',
	'ू': 'ૂ',
	'ृ': 'ૃ',
	'ॄ': 'ૄ',
	'ॢ': 'ૢ',
	'ॣ': 'ૣ',
	'े': 'ે',
	'ै': 'ૈ',
	'ो': 'ો',
	'ौ': 'ૌ',
	'ं': 'ં',
	'ः': 'ઃ',
	'ँ': 'ઁ',
	'्': '્',
	'क': 'ક',
	'ख': 'ખ',
	'ग': 'ગ',
	'घ': 'ઘ',
	'ङ': 'ઙ',
	'च': 'ચ',
	'छ': 'છ',
	'ज': 'જ',
	'झ': 'ઝ',
	'ञ': 'ઞ',
	'ट': 'ટ',
	'ठ': 'ઠ',
	'ड': 'ડ',
	'ढ': 'ઢ',
	'ण': 'ણ',
	'त': 'ત',
	'थ': 'થ',
	'द': 'દ',
	'ध': 'ધ',
	'न': 'ન',
	'प': 'પ',
	'फ': 'ફ',
	'ब': 'બ',
	'भ': 'ભ',
	'म': 'મ',
	'य': 'ય',
	'र': 'ર',
	'ल': 'લ',
	'व': 'વ',
	'श': 'શ',
	'ष': 'ષ',
	'स': 'સ',
	'ह': 'હ',
	'ळ': 'ળ',
}

// DevanagariToGujarati substitutes every Devanāgarī glyph of a word with its
// Gujarātī counterpart. Glyphs without one are dropped.
func DevanagariToGujarati(word string) string {
	var result strings.Builder
	result.Grow(len(word))

	for _, ch := range word {
		if gu, ok := gujaratiGlyphs[ch]; ok {
			result.WriteRune(gu)
		}
	}

	return result.String()
}
