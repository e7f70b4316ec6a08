package cardscript

import (
	"io"
	"strings"
)

// Every card starts with the same value
const DefaultValue = "2.500"

type scriptLine struct {
	key   string
	value string
}

func scriptLines(card *Card) []scriptLine {
	rarity := card.Rarity
	if rarity == "S" {
		rarity = "R"
	}
	// Color is implied by the cost
	color := card.Color
	if card.Cost != "" {
		color = ""
	}

	return []scriptLine{
		{"name", card.Name},
		{"image", card.Image},
		{"value", DefaultValue},
		{"rarity", rarity},
		{"type", card.Type},
		{"subtype", card.Subtype},
		{"color", color},
		{"cost", card.Cost},
		{"pt", card.PT()},
		{"loyalty", card.Loyalty},
		{"ability", card.Ability},
		{"effect", card.Effect},
		{"timing", card.Timing},
		{"oracle", card.Oracle},
	}
}

// MarshalScript renders card in the key=value script format.
func MarshalScript(card *Card) string {
	var sb strings.Builder
	for _, line := range scriptLines(card) {
		if line.value == "" {
			continue
		}
		sb.WriteString(line.key)
		sb.WriteString("=")
		sb.WriteString(line.value)
		sb.WriteString("\n")
	}
	return sb.String()
}

func WriteScript(w io.Writer, card *Card) error {
	_, err := io.WriteString(w, MarshalScript(card))
	return err
}
