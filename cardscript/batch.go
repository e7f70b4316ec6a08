package cardscript

import (
	"errors"

	"github.com/mtgban/go-mtgscript/mtgjson"
)

type LogCallbackFunc func(format string, a ...interface{})

// Batch accumulates the Cards of a run. The first record of a name wins,
// later duplicates are normalized only to keep the Ledger current.
type Batch struct {
	LogCallback LogCallbackFunc

	// Stop at the first malformed record instead of skipping it
	Strict bool

	normalizer *Normalizer
	ledger     *Ledger
	cards      map[string]*Card
	normalized map[string]*Card
	order      []string

	Skipped    int
	Duplicates int
	Malformed  int
}

// NewBatch returns an empty Batch normalizing with normalizer, or with the
// default policy when nil.
func NewBatch(normalizer *Normalizer) *Batch {
	if normalizer == nil {
		normalizer = defaultNormalizer
	}
	return &Batch{
		normalizer: normalizer,
		ledger:     NewLedger(),
		cards:      map[string]*Card{},
		normalized: map[string]*Card{},
	}
}

func (b *Batch) printf(format string, a ...interface{}) {
	if b.LogCallback != nil {
		b.LogCallback("[Batch] "+format, a...)
	}
}

// Add normalizes raw and keeps it unless a card with the same name is
// already present. The returned Card is nil for duplicates.
func (b *Batch) Add(raw *mtgjson.Card, setCode string) (*Card, error) {
	card, diag, err := b.normalizer.Normalize(raw, setCode)
	if err != nil {
		b.Malformed++
		return nil, err
	}
	b.ledger.Record(card.Name, diag)

	_, found := b.cards[card.Name]
	if found {
		b.Duplicates++
		return nil, nil
	}

	b.cards[card.Name] = card
	b.normalized[mtgjson.Normalize(card.Name)] = card
	b.order = append(b.order, card.Name)
	return card, nil
}

// AddSet adds every eligible card of set.
func (b *Batch) AddSet(set *mtgjson.Set) error {
	for i := range set.Cards {
		raw := &set.Cards[i]
		if !IsEligible(raw) {
			b.Skipped++
			continue
		}

		_, err := b.Add(raw, set.Code)
		if err != nil {
			var malformed *MalformedRecordError
			if b.Strict || !errors.As(err, &malformed) {
				return err
			}
			b.printf("skipping %s #%d: %s", set.Code, i, err)
		}
	}
	return nil
}

// AddFeed adds all the sets of feed, in order.
func (b *Batch) AddFeed(feed mtgjson.Feed) error {
	for _, set := range feed {
		err := b.AddSet(set)
		if err != nil {
			return err
		}
		b.printf("%s done, %d cards so far", set.Code, len(b.order))
	}
	return nil
}

// Cards returns the accumulated cards in insertion order.
func (b *Batch) Cards() []*Card {
	out := make([]*Card, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.cards[name])
	}
	return out
}

func (b *Batch) Len() int {
	return len(b.order)
}

// Lookup finds a card by its exact name, then by its normalized name.
func (b *Batch) Lookup(name string) (*Card, bool) {
	card, found := b.cards[name]
	if found {
		return card, true
	}
	card, found = b.normalized[mtgjson.Normalize(name)]
	return card, found
}

func (b *Batch) Ledger() *Ledger {
	return b.ledger
}
