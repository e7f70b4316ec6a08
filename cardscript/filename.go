package cardscript

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const DefaultExtension = ".txt"

type FilenameMode string

const (
	// Every character outside [A-Za-z0-9] becomes an underscore
	FilenamePlaceholder FilenameMode = "placeholder"

	// Accented letters and ligatures are spelled in ASCII first
	FilenameTransliterate FilenameMode = "transliterate"
)

var ligatureReplacer = strings.NewReplacer(
	"Æ", "AE",
	"æ", "ae",
	"Œ", "OE",
	"œ", "oe",
	"ß", "ss",
)

func transliterate(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, ligatureReplacer.Replace(str))
	if err != nil {
		return str
	}
	return out
}

// Filename returns a filesystem safe name for a card.
func Filename(name string, mode FilenameMode, extension string) string {
	if mode == FilenameTransliterate {
		name = transliterate(name)
	}
	slug := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, name)
	return slug + extension
}
