// Package cardscript turns MTGJSON card records into the key=value card
// scripts read by the game engine.
package cardscript

import (
	"strings"

	"github.com/mtgban/go-mtgscript/mtgjson"
	"github.com/mtgban/go-mtgscript/rewrite"
)

// Card is the normalized form of a card, built once per card name.
type Card struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	SetCode  string `json:"set"`
	Image    string `json:"image,omitempty"`

	Rarity  string `json:"rarity"`
	Type    string `json:"type,omitempty"`
	Subtype string `json:"subtype,omitempty"`
	Timing  string `json:"timing"`

	Cost  string `json:"cost,omitempty"`
	Color string `json:"color,omitempty"`

	Power     string `json:"power,omitempty"`
	Toughness string `json:"toughness,omitempty"`
	Loyalty   string `json:"loyalty,omitempty"`

	Ability string `json:"ability,omitempty"`
	Effect  string `json:"effect,omitempty"`
	Oracle  string `json:"oracle,omitempty"`

	Types    TypeSet    `json:"-"`
	Subtypes SubtypeSet `json:"-"`
}

// Card implements the Stringer interface
func (c Card) String() string {
	return c.Name + " [" + c.SetCode + "]"
}

// PT returns power and toughness in the "p/t" form, or an empty string.
func (c *Card) PT() string {
	if c.Power == "" || c.Toughness == "" {
		return ""
	}
	return c.Power + "/" + c.Toughness
}

// IsEligible reports whether a record should be turned into a script:
// Special cards are skipped, as are printings that cannot be identified.
func IsEligible(raw *mtgjson.Card) bool {
	if isSpecial(raw.Rarity) {
		return false
	}
	return raw.HasNumber() || raw.HasAlternateId()
}

func isSpecial(rarity string) bool {
	return strings.EqualFold(rarity, mtgjson.RaritySpecial) || strings.EqualFold(rarity, "S")
}

// Normalizer builds Cards according to a Policy.
type Normalizer struct {
	Policy Policy

	pipeline *rewrite.Pipeline
}

// NewNormalizer returns a Normalizer following policy. The policy is not
// validated, see Policy.Validate.
func NewNormalizer(policy Policy) *Normalizer {
	return &Normalizer{
		Policy:   policy,
		pipeline: rewrite.NewPipeline(policy.PlaceholderToken),
	}
}

var defaultNormalizer = NewNormalizer(DefaultPolicy())

// Normalize uses the default Policy.
func Normalize(raw *mtgjson.Card, setCode string) (*Card, *Diagnostic, error) {
	return defaultNormalizer.Normalize(raw, setCode)
}

// Normalize builds the Card of raw, printed in setCode. Optional fields
// may be missing, name and rarity may not. A non-nil Diagnostic reports
// a data problem that did not prevent building the Card.
func (n *Normalizer) Normalize(raw *mtgjson.Card, setCode string) (*Card, *Diagnostic, error) {
	if raw.Name == "" {
		return nil, nil, newMalformedRecordError(ErrMissingName, "name", raw.Name, setCode)
	}
	if raw.Rarity == "" {
		return nil, nil, newMalformedRecordError(ErrMissingRarity, "rarity", raw.Name, setCode)
	}

	card := &Card{
		Name:     raw.Name,
		Filename: Filename(raw.Name, n.Policy.Filename, n.Policy.Extension),
		SetCode:  setCode,
		Rarity:   strings.ToUpper(raw.Rarity[:1]),
		Type:     JoinTypes(raw.Supertypes, raw.Types),
		Subtype:  JoinSubtypes(raw.Subtypes, n.Policy.Possessive),
		Cost:     raw.ManaCost,
		Loyalty:  raw.Loyalty.String(),
		Types:    ParseTypes(raw.Types),
		Subtypes: ParseSubtypes(raw.Subtypes),
	}

	if card.Cost == "" {
		card.Color = Color(raw.Colors)
	}

	// Half a stat line is as good as none
	if raw.Power != "" && raw.Toughness != "" {
		card.Power = raw.Power
		card.Toughness = raw.Toughness
	}

	attrs := n.pipeline.Derive(raw.Text, raw.Name, card.Types.IsEffect())
	card.Ability = attrs.Ability
	card.Effect = attrs.Effect
	card.Oracle = attrs.Oracle
	card.Timing = Timing(card)

	var diag *Diagnostic
	image, found := ImageURL(n.Policy.ImageHost, setCode, raw.Number, raw.MultiverseId.String())
	if found {
		card.Image = image
	} else {
		diag = newMissingImageDiagnostic(raw.Name)
	}

	return card, diag, nil
}
