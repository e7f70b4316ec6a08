package cardscript

import "strings"

type timingRule struct {
	Tag   string
	Match func(card *Card) bool
}

func abilityHas(card *Card, words ...string) bool {
	for _, word := range words {
		if strings.Contains(card.Ability, word) {
			return true
		}
	}
	return false
}

// First match wins
var timingRules = []timingRule{
	{"flash", func(card *Card) bool {
		return abilityHas(card, "Flash") && !abilityHas(card, "Flashback")
	}},
	{"storm", func(card *Card) bool {
		return abilityHas(card, "Storm")
	}},
	{"counter", func(card *Card) bool {
		return card.Types.Has(TypeInstant) && strings.Contains(card.Effect, "Counter")
	}},
	{"removal", func(card *Card) bool {
		return card.Types.Has(TypeInstant)
	}},
	{"land", func(card *Card) bool {
		return card.Types.Has(TypeLand)
	}},
	{"equipment", func(card *Card) bool {
		return card.Subtypes.Has("Equipment")
	}},
	{"aura", func(card *Card) bool {
		return card.Subtypes.Has("Aura")
	}},
	{"fmain", func(card *Card) bool {
		return card.Types.Has(TypeCreature) && abilityHas(card, "Haste", "Bolster", "Exalted")
	}},
	{"smain", func(card *Card) bool {
		return card.Types.Has(TypeCreature) && abilityHas(card, "Defender")
	}},
	{"main", func(card *Card) bool {
		return card.Types.Has(TypeCreature)
	}},
	{"artifact", func(card *Card) bool {
		return card.Types.Has(TypeArtifact)
	}},
	{"enchantment", func(card *Card) bool {
		return card.Types.Has(TypeEnchantment)
	}},
}

// DefaultTiming is the tag of cards no rule matches.
const DefaultTiming = "main"

// Timing classifies how a card is usually played. Ability and effect text
// must already be set.
func Timing(card *Card) string {
	for _, rule := range timingRules {
		if rule.Match(card) {
			return rule.Tag
		}
	}
	return DefaultTiming
}

// TimingTags lists every tag Timing can return, in rule order.
func TimingTags() []string {
	tags := make([]string, 0, len(timingRules))
	for _, rule := range timingRules {
		tags = append(tags, rule.Tag)
	}
	return tags
}
