package vst

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import "errors"

// Marks an int field of a search criteria as unset
const STRUCT_INT_DEFAULT_VALUE = -1

// Bumped when the layout of the symbols table changes
const VST_SCHEMA_SYMBOLS_VERSION = 1

/* Metadata keys */
const VST_METADATA_SCHEME_IDENTIFIER = "scheme-id"
const VST_METADATA_SCHEME_LANGUAGE_CODE = "lang-code"
const VST_METADATA_SCHEME_DISPLAY_NAME = "scheme-display-name"
const VST_METADATA_SCHEME_AUTHOR = "scheme-author"
const VST_METADATA_SCHEME_COMPILED_DATE = "scheme-compiled-date"
const VST_METADATA_SCHEME_STABLE = "scheme-stable"

var (
	// ErrSymbolNotFound is returned when no symbol matches a lookup
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrDuplicateSymbol is returned when a type and pattern pair repeats
	ErrDuplicateSymbol = errors.New("duplicate symbol")
	// ErrInvalidSymbol is returned for symbols with missing fields or an unknown type
	ErrInvalidSymbol = errors.New("invalid symbol")
)
