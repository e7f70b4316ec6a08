package cardscript

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtgban/go-mtgscript/mtgjson"
	"github.com/mtgban/go-mtgscript/rewrite"
)

func TestNormalizeShock(t *testing.T) {
	raw := &mtgjson.Card{
		Name:   "Shock",
		Rarity: "Common",
		Types:  []string{"Instant"},
		Text:   "Shock deals 2 damage to any target.",
		Number: "123",
	}

	card, diag, err := Normalize(raw, "M10")
	require.NoError(t, err)
	assert.Nil(t, diag)

	assert.Equal(t, "Shock", card.Name)
	assert.Equal(t, "Shock.txt", card.Filename)
	assert.Equal(t, "C", card.Rarity)
	assert.Equal(t, "Instant", card.Type)
	assert.Equal(t, "SN deals 2 damage to any target.", card.Effect)
	assert.Empty(t, card.Ability)
	assert.Equal(t, "removal", card.Timing)
	assert.Equal(t, "Shock deals 2 damage to any target.", card.Oracle)
	assert.Equal(t, "http://magiccards.info/scans/en/m10/123.jpg", card.Image)
}

func TestNormalizeMalformed(t *testing.T) {
	_, _, err := Normalize(&mtgjson.Card{Rarity: "Common"}, "M10")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingName))

	_, _, err = Normalize(&mtgjson.Card{Name: "Shock"}, "M10")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRarity))

	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "rarity", malformed.Field)
	assert.Equal(t, "Shock", malformed.Name)
	assert.Equal(t, "M10", malformed.SetCode)
}

func TestNormalizeCreature(t *testing.T) {
	raw := &mtgjson.Card{
		Name:         "Sengir Vampire",
		Rarity:       "Uncommon",
		ManaCost:     "{3}{B}{B}",
		Colors:       []string{"Black"},
		Types:        []string{"Creature"},
		Subtypes:     []string{"Vampire"},
		Power:        "3",
		Toughness:    "3",
		MultiverseId: "1234",
		Text:         "Flying\nWhenever a creature dealt damage by Sengir Vampire this turn dies, put a +1/+1 counter on Sengir Vampire.",
	}

	card, diag, err := Normalize(raw, "4ED")
	require.NoError(t, err)
	assert.Nil(t, diag)

	assert.Equal(t, "4ed", card.Image)
	assert.Empty(t, card.Color)
	assert.Equal(t, "3/3", card.PT())
	assert.Empty(t, card.Effect)
	assert.Equal(t, "Flying"+rewrite.AbilitySeparator+"Whenever a creature dealt damage by SN this turn dies, put a +1/+1 counter on SN.", card.Ability)
	assert.Equal(t, "main", card.Timing)
}

func TestNormalizeFlashCreature(t *testing.T) {
	raw := &mtgjson.Card{
		Name:      "Ambush Viper",
		Rarity:    "Common",
		ManaCost:  "{1}{G}",
		Types:     []string{"Creature"},
		Subtypes:  []string{"Snake"},
		Power:     "2",
		Toughness: "1",
		Number:    "1",
		Text:      "Flash\nDeathtouch",
	}

	card, _, err := Normalize(raw, "M11")
	require.NoError(t, err)
	assert.Equal(t, "flash", card.Timing)
}

func TestNormalizeColorAndStats(t *testing.T) {
	raw := &mtgjson.Card{
		Name:      "Dryad Arbor",
		Rarity:    "Uncommon",
		Colors:    []string{"Green"},
		Types:     []string{"Land", "Creature"},
		Subtypes:  []string{"Forest", "Dryad"},
		Power:     "1",
		Toughness: "1",
		Number:    "174",
		Text:      "(Dryad Arbor isn't a spell, it's affected by summoning sickness, and it has \"{T}: Add {G}.\")",
	}

	card, _, err := Normalize(raw, "FUT")
	require.NoError(t, err)
	assert.Equal(t, "g", card.Color)
	assert.Equal(t, "Land,Creature", card.Type)
	assert.Equal(t, "Forest,Dryad", card.Subtype)
	assert.Equal(t, "(SN isn't a spell, it's affected by summoning sickness, and it has \"{T}: Add {G}.\")", card.Ability)
	assert.Equal(t, raw.Text, card.Oracle)
	assert.Equal(t, "land", card.Timing)

	raw.Toughness = ""
	card, _, err = Normalize(raw, "FUT")
	require.NoError(t, err)
	assert.Empty(t, card.Power)
	assert.Empty(t, card.Toughness)
	assert.Empty(t, card.PT())
}

func TestNormalizeMissingImage(t *testing.T) {
	raw := &mtgjson.Card{
		Name:   "Ghost Printing",
		Rarity: "Rare",
		Types:  []string{"Enchantment"},
	}

	card, diag, err := Normalize(raw, "XXX")
	require.NoError(t, err)
	require.NotNil(t, diag)
	assert.Empty(t, card.Image)
	assert.Equal(t, "Ghost Printing", diag.Name)
	assert.Equal(t, "Ghost Printing has no identifying number - cannot set image property.", diag.Message)
}

func TestNormalizerPolicy(t *testing.T) {
	policy := DefaultPolicy()
	policy.Possessive = PossessiveStrip
	policy.Filename = FilenameTransliterate
	policy.PlaceholderToken = "CARDNAME"
	policy.ImageHost = "https://example.com/img/"

	raw := &mtgjson.Card{
		Name:     "Æther Shockwave",
		Rarity:   "Uncommon",
		Types:    []string{"Instant"},
		Subtypes: []string{"Urza’s"},
		Number:   "2",
		Text:     "Æther Shockwave taps all creatures.",
	}

	card, _, err := NewNormalizer(policy).Normalize(raw, "TSP")
	require.NoError(t, err)
	assert.Equal(t, "AEther_Shockwave.txt", card.Filename)
	assert.Equal(t, "Urza", card.Subtype)
	assert.Equal(t, "CARDNAME taps all creatures.", card.Effect)
	assert.Equal(t, "https://example.com/img/tsp/2.jpg", card.Image)
}

type EligibleTest struct {
	Name string
	In   mtgjson.Card
	Out  bool
}

var EligibleTests = []EligibleTest{
	{
		Name: "numbered",
		In:   mtgjson.Card{Rarity: "Common", Number: "1"},
		Out:  true,
	},
	{
		Name: "multiverse id only",
		In:   mtgjson.Card{Rarity: "Rare", MultiverseId: "42"},
		Out:  true,
	},
	{
		Name: "special",
		In:   mtgjson.Card{Rarity: "Special", Number: "1"},
		Out:  false,
	},
	{
		Name: "special letter",
		In:   mtgjson.Card{Rarity: "S", Number: "1"},
		Out:  false,
	},
	{
		Name: "no identifier",
		In:   mtgjson.Card{Rarity: "Common"},
		Out:  false,
	},
}

func TestIsEligible(t *testing.T) {
	for _, probe := range EligibleTests {
		test := probe
		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()
			out := IsEligible(&test.In)
			if out != test.Out {
				t.Errorf("FAIL %s: Expected '%t' got '%t'", test.Name, test.Out, out)
				return
			}
			t.Log("PASS:", test.Name)
		})
	}
}
