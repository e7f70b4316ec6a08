package rewrite

import (
	"strings"
)

var oracleReplacer = strings.NewReplacer(
	"..", ".",
	"—.", "—",
	". .", ".",
)

// Oracle renders prepared rules text on a single line. Each line is closed
// with a period unless it already ends with a punctuation mark.
func Oracle(text string) string {
	lines := strings.Split(text, "\n")

	var sb strings.Builder
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(line)
		if i < len(lines)-1 && !hasTerminalPunctuation(line) {
			sb.WriteString(".")
		}
	}

	return strings.TrimSpace(oracleReplacer.Replace(sb.String()))
}

func hasTerminalPunctuation(line string) bool {
	for _, suffix := range []string{".", "!", "?", ":", "—", "\""} {
		if strings.HasSuffix(line, suffix) {
			return true
		}
	}
	return false
}
