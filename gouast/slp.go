package gouast

import "strings"

// SLP1 spells every phoneme with one ASCII character
var slpSpellings = map[rune]string{
	'a':  "a",
	'A':  "ā",
	'i':  "i",
	'I':  "ī",
	'u':  "u",
	'U':  "ū",
	'f':  "ṛ",
	'F':  "ṝ",
	'x':  "ḷ",
	'X':  "ḹ",
	'e':  "e",
	'E':  "ai",
	'o':  "o",
	'O':  "au",
	'M':  "ṃ",
	'H':  "ḥ",
	'~':  "ã",
	'.':  ".",
	'\'': "'",
	'0':  "0",
	'1':  "1",
	'2':  "2",
	'3':  "3",
	'4':  "4",
	'5':  "5",
	'6':  "6",
	'7':  "7",
	'8':  "8",
	'9':  "9",
	'k':  "k",
	'K':  "kh",
	'g':  "g",
	'G':  "gh",
	'N':  "ṅ",
	'c':  "c",
	'C':  "ch",
	'j':  "j",
	'J':  "jh",
	'Y':  "ñ",
	'w':  "ṭ",
	'W':  "ṭh",
	'q':  "ḍ",
	'Q':  "ḍh",
	'R':  "ṇ",
	't':  "t",
	'T':  "th",
	'd':  "d",
	'D':  "dh",
	'n':  "n",
	'p':  "p",
	'P':  "ph",
	'b':  "b",
	'B':  "bh",
	'm':  "m",
	'y':  "y",
	'r':  "r",
	'l':  "l",
	'v':  "v",
	'S':  "ś",
	'z':  "ṣ",
	's':  "s",
	'h':  "h",
	'L':  "ḻ",
}

// SLPToIAST converts a word in SLP1 to IAST. Characters outside SLP1 are dropped.
func SLPToIAST(word string) string {
	var result strings.Builder
	result.Grow(len(word) * 2)

	for _, ch := range word {
		result.WriteString(slpSpellings[ch])
	}

	return result.String()
}
