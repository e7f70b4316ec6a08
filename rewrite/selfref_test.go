package rewrite

import "testing"

type SelfReferenceTest struct {
	In   string
	Name string
	Out  string
}

var SelfReferenceTests = []SelfReferenceTest{
	{
		In:   "Sengir Vampire gets +1/+1. A creature named Sengir Vampire can block it.",
		Name: "Sengir Vampire",
		Out:  "SN gets +1/+1. A creature named Sengir Vampire can block it.",
	},
	{
		In:   "Search for a card named Fog or Fogbank.",
		Name: "Fog",
		Out:  "Search for a card named Fog or Fogbank.",
	},
	{
		In:   "Shockwave and Shock",
		Name: "Shock",
		Out:  "Shockwave and SN",
	},
	{
		In:   "Urza's Rage deals 3 damage.",
		Name: "Urza's Rage",
		Out:  "SN deals 3 damage.",
	},
	{
		In:   "Lightning Bolt's damage",
		Name: "Lightning Bolt",
		Out:  "SN's damage",
	},
	{
		In:   "Nothing to replace.",
		Name: "",
		Out:  "Nothing to replace.",
	},
}

func TestSelfReference(t *testing.T) {
	for _, probe := range SelfReferenceTests {
		test := probe
		t.Run(test.In, func(t *testing.T) {
			t.Parallel()
			out := SelfReference(test.In, test.Name, DefaultPlaceholder)
			if out != test.Out {
				t.Errorf("FAIL %s: Expected '%s' got '%s'", test.In, test.Out, out)
				return
			}
			t.Log("PASS:", test.In)
		})
	}
}
