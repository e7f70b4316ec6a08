package mtgjson

import (
	"strings"
)

var replacer = strings.NewReplacer(
	// Quotes and commas and whatnot
	"''", "",
	"“", "",
	"”", "",
	"\"", "",
	"'", "",
	"’", "",
	"-", "",
	",", "",
	":", "",
	"!", "",
	"?", "",
	".", "",

	// Split cards are listed with either separator in the missing list
	" // ", "",
	"/", "",

	// Accented characters
	"â", "a",
	"á", "a",
	"à", "a",
	"ä", "a",
	"é", "e",
	"í", "i",
	"ö", "o",
	"ó", "o",
	"ú", "u",
	"û", "u",
	"ü", "u",

	// Almost everbody spells aether differently
	"æther", "aether",
	"æ", "ae",

	// Spaces are overrated
	" ", "",
)

// Normalize uses the rules defined in replacer to fold uncommon elements of
// card names, dropping all the spaces and producing a lowercase string.
func Normalize(str string) string {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)
	str = replacer.Replace(str)
	return str
}

// Compare strings after both are Normalize-d.
func Equals(str1, str2 string) bool {
	return Normalize(str1) == Normalize(str2)
}
