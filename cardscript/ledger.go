package cardscript

import (
	"fmt"
	"sort"
)

// Diagnostic is a data quality problem found while normalizing a card.
type Diagnostic struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func newMissingImageDiagnostic(name string) *Diagnostic {
	return &Diagnostic{
		Name:    name,
		Message: fmt.Sprintf(missingImageMessage, name),
	}
}

func (d Diagnostic) String() string {
	return d.Message
}

// Ledger keeps the latest Diagnostic of each card name. The zero value is
// ready to use. A Ledger is not safe for concurrent use.
type Ledger struct {
	entries map[string]Diagnostic
}

func NewLedger() *Ledger {
	return &Ledger{
		entries: map[string]Diagnostic{},
	}
}

func (l *Ledger) Add(diag Diagnostic) {
	if l.entries == nil {
		l.entries = map[string]Diagnostic{}
	}
	l.entries[diag.Name] = diag
}

func (l *Ledger) Remove(name string) {
	delete(l.entries, name)
}

// Record stores the outcome of a normalization of name: diag is added, or
// when nil any previous entry for name is dropped.
func (l *Ledger) Record(name string, diag *Diagnostic) {
	if diag == nil {
		l.Remove(name)
		return
	}
	l.Add(*diag)
}

func (l *Ledger) Get(name string) (Diagnostic, bool) {
	diag, found := l.entries[name]
	return diag, found
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns the diagnostics sorted by card name.
func (l *Ledger) Entries() []Diagnostic {
	out := make([]Diagnostic, 0, len(l.entries))
	for _, diag := range l.entries {
		out = append(out, diag)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
