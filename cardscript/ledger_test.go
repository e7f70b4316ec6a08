package cardscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger(t *testing.T) {
	var ledger Ledger
	ledger.Add(Diagnostic{Name: "Zodiac Monkey", Message: "z"})
	ledger.Add(Diagnostic{Name: "Air Elemental", Message: "a"})
	ledger.Record("Mox Pearl", &Diagnostic{Name: "Mox Pearl", Message: "m"})
	assert.Equal(t, 3, ledger.Len())

	entries := ledger.Entries()
	assert.Equal(t, "Air Elemental", entries[0].Name)
	assert.Equal(t, "Mox Pearl", entries[1].Name)
	assert.Equal(t, "Zodiac Monkey", entries[2].Name)

	// Same name keeps a single entry
	ledger.Add(Diagnostic{Name: "Mox Pearl", Message: "m2"})
	assert.Equal(t, 3, ledger.Len())
	diag, found := ledger.Get("Mox Pearl")
	assert.True(t, found)
	assert.Equal(t, "m2", diag.Message)

	ledger.Record("Mox Pearl", nil)
	assert.Equal(t, 2, ledger.Len())
	_, found = ledger.Get("Mox Pearl")
	assert.False(t, found)

	ledger.Remove("Not There")
	assert.Equal(t, 2, ledger.Len())
}
