package cardscript

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

// ReadMissingList reads one card name per line, blank lines are ignored.
func ReadMissingList(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, scanner.Err()
}

// CrossReference splits names into the cards of b they refer to and the
// sorted list of names with no card, the orphans.
func CrossReference(b *Batch, names []string) ([]*Card, []string) {
	var cards []*Card
	var orphans []string
	seen := map[string]bool{}
	for _, name := range names {
		card, found := b.Lookup(name)
		if !found {
			orphans = append(orphans, name)
			continue
		}
		if seen[card.Name] {
			continue
		}
		seen[card.Name] = true
		cards = append(cards, card)
	}
	sort.Strings(orphans)
	return cards, orphans
}
