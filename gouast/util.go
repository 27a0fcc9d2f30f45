package gouast

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func getFirstCharacter(input string) (rune, int) {
	r, size := utf8.DecodeRuneInString(input)
	if r == utf8.RuneError && (size == 0 || size == 1) {
		size = 0
	}
	return r, size
}

// A Caser keeps state between calls, so every call makes its own
func foldCase(input string) string {
	return cases.Lower(language.Und).String(input)
}
