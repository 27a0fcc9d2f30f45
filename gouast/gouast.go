package gouast

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"errors"
	"fmt"
	"strings"
)

// Converter converts a single word. Converters never fail, input that
// can't be mapped is dropped.
type Converter func(word string) string

// ErrInvalidMode is returned for a mode with no converter
var ErrInvalidMode = errors.New("invalid mode")

/* Conversion modes */
const MODE_DEVANAGARI = "d"
const MODE_IAST = "i"
const MODE_GUJARATI = "g"
const MODE_SLP = "s"

var modes = map[string]Converter{
	MODE_DEVANAGARI: RomanizedToDevanagari,
	MODE_IAST:       DevanagariToIAST,
	MODE_GUJARATI:   DevanagariToGujarati,
	MODE_SLP:        SLPToIAST,
}

// Modes lists the accepted modes
var Modes = []string{MODE_DEVANAGARI, MODE_IAST, MODE_GUJARATI, MODE_SLP}

// RomanizedToDevanagari converts a word written in IAST, or in the ASCII
// escape notation over IAST, to Devanāgarī
func RomanizedToDevanagari(word string) string {
	return Synthesize(DecodeEscapes(foldCase(word)))
}

// DevanagariToIAST converts a Devanāgarī word to IAST
func DevanagariToIAST(word string) string {
	return Decompose(word)
}

// ConvertLine applies a converter to every whitespace separated word of a
// line and joins the results with a single space
func ConvertLine(conv Converter, line string) string {
	words := strings.Fields(line)
	for i, word := range words {
		words[i] = conv(word)
	}
	return strings.Join(words, " ")
}

// ConverterForMode returns the converter of a mode
func ConverterForMode(mode string) (Converter, error) {
	conv, ok := modes[mode]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %s", ErrInvalidMode, mode, strings.Join(Modes, "|"))
	}
	return conv, nil
}
