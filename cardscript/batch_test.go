package cardscript

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtgban/go-mtgscript/mtgjson"
)

func TestBatchFirstWins(t *testing.T) {
	batch := NewBatch(nil)

	first, err := batch.Add(&mtgjson.Card{Name: "Shock", Rarity: "Common", Types: []string{"Instant"}, Number: "1"}, "STH")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := batch.Add(&mtgjson.Card{Name: "Shock", Rarity: "Uncommon", Types: []string{"Instant"}, Number: "2"}, "M10")
	require.NoError(t, err)
	assert.Nil(t, second)

	assert.Equal(t, 1, batch.Len())
	assert.Equal(t, 1, batch.Duplicates)
	card := batch.Cards()[0]
	assert.Equal(t, "STH", card.SetCode)
	assert.Equal(t, "C", card.Rarity)
}

func TestBatchLedgerLifecycle(t *testing.T) {
	batch := NewBatch(nil)

	_, err := batch.Add(&mtgjson.Card{Name: "Ghost Printing", Rarity: "Rare"}, "XXX")
	require.NoError(t, err)
	assert.Equal(t, 1, batch.Ledger().Len())
	diag, found := batch.Ledger().Get("Ghost Printing")
	require.True(t, found)
	assert.Equal(t, "Ghost Printing has no identifying number - cannot set image property.", diag.Message)

	_, err = batch.Add(&mtgjson.Card{Name: "Ghost Printing", Rarity: "Rare", Number: "7"}, "YYY")
	require.NoError(t, err)
	assert.Equal(t, 0, batch.Ledger().Len())
}

func TestBatchAddSet(t *testing.T) {
	var logs []string
	batch := NewBatch(nil)
	batch.LogCallback = func(format string, a ...interface{}) {
		logs = append(logs, format)
	}

	set := &mtgjson.Set{
		Code: "TST",
		Cards: []mtgjson.Card{
			{Name: "Alpha", Rarity: "Common", Number: "1"},
			{Name: "Promo", Rarity: "Special", Number: "2"},
			{Name: "Nameless", Rarity: "Common", Number: "3"},
			{Name: "Unnumbered", Rarity: "Common"},
			{Rarity: "Common", Number: "4"},
			{Name: "Alpha", Rarity: "Rare", Number: "5"},
		},
	}

	err := batch.AddSet(set)
	require.NoError(t, err)
	assert.Equal(t, 2, batch.Len())
	assert.Equal(t, 2, batch.Skipped)
	assert.Equal(t, 1, batch.Malformed)
	assert.Equal(t, 1, batch.Duplicates)
	require.Len(t, logs, 1)
	assert.True(t, strings.HasPrefix(logs[0], "[Batch] "))

	strict := NewBatch(nil)
	strict.Strict = true
	err = strict.AddSet(set)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingName))
}

func TestBatchAddFeed(t *testing.T) {
	feed := mtgjson.Feed{
		{Code: "AAA", Cards: []mtgjson.Card{{Name: "Alpha", Rarity: "Common", Number: "1"}}},
		{Code: "BBB", Cards: []mtgjson.Card{{Name: "Beta", Rarity: "Common", Number: "1"}, {Name: "Alpha", Rarity: "Common", Number: "2"}}},
	}

	batch := NewBatch(nil)
	require.NoError(t, batch.AddFeed(feed))

	cards := batch.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "Alpha", cards[0].Name)
	assert.Equal(t, "AAA", cards[0].SetCode)
	assert.Equal(t, "Beta", cards[1].Name)
}

func TestBatchLookup(t *testing.T) {
	batch := NewBatch(nil)
	_, err := batch.Add(&mtgjson.Card{Name: "Lim-Dûl's Vault", Rarity: "Uncommon", Number: "1"}, "ALL")
	require.NoError(t, err)

	card, found := batch.Lookup("Lim-Dûl's Vault")
	require.True(t, found)
	assert.Equal(t, "Lim-Dûl's Vault", card.Name)

	card, found = batch.Lookup("Lim-Dul's Vault")
	require.True(t, found)
	assert.Equal(t, "Lim-Dûl's Vault", card.Name)

	_, found = batch.Lookup("Lim-Dûl the Necromancer")
	assert.False(t, found)
}

func TestCrossReference(t *testing.T) {
	batch := NewBatch(nil)
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := batch.Add(&mtgjson.Card{Name: name, Rarity: "Common", Number: "1"}, "TST")
		require.NoError(t, err)
	}

	names, err := ReadMissingList(strings.NewReader("Gamma\n\n  alpha \nZeta\nGamma\nDelta\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Gamma", "alpha", "Zeta", "Gamma", "Delta"}, names)

	cards, orphans := CrossReference(batch, names)
	require.Len(t, cards, 2)
	assert.Equal(t, "Gamma", cards[0].Name)
	assert.Equal(t, "Alpha", cards[1].Name)
	assert.Equal(t, []string{"Delta", "Zeta"}, orphans)
}
