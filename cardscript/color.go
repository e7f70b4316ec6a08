package cardscript

import (
	"strings"
	"unicode"
)

// Black and Blue share an initial
var colorLetters = map[string]string{
	"White": "W",
	"Blue":  "U",
	"Black": "B",
	"Red":   "R",
	"Green": "G",
}

// Color collapses color names to their lowercase letter codes, keeping the
// input order. Names outside the table keep their uppercase letters only.
func Color(colors []string) string {
	var sb strings.Builder
	for _, color := range colors {
		letter, found := colorLetters[color]
		if !found {
			letter = strings.Map(func(r rune) rune {
				if unicode.IsUpper(r) {
					return r
				}
				return -1
			}, color)
		}
		sb.WriteString(letter)
	}
	return strings.ToLower(sb.String())
}
