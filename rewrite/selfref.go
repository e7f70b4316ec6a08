package rewrite

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SelfReference replaces every occurrence of the card name in text with
// placeholder, then puts the name back where a card is searched by name,
// as in "a card named Sengir Vampire".
//
// Occurrences glued to other letters or digits are part of a longer word
// and are left alone.
func SelfReference(text, name, placeholder string) string {
	if name == "" || placeholder == "" || name == placeholder {
		return text
	}

	var sb strings.Builder
	rest := text
	for {
		idx := strings.Index(rest, name)
		if idx < 0 {
			sb.WriteString(rest)
			break
		}
		end := idx + len(name)

		before, _ := utf8.DecodeLastRuneInString(sb.String() + rest[:idx])
		after, _ := utf8.DecodeRuneInString(rest[end:])
		if isWordRune(before) || isWordRune(after) {
			sb.WriteString(rest[:end])
		} else {
			sb.WriteString(rest[:idx])
			sb.WriteString(placeholder)
		}
		rest = rest[end:]
	}

	return restoreNamed(sb.String(), name, placeholder)
}

func restoreNamed(text, name, placeholder string) string {
	return strings.ReplaceAll(text, "named "+placeholder, "named "+name)
}

func isWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
