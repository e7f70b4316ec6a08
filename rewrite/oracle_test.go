package rewrite

import "testing"

var OracleTests = []PrepareTest{
	{
		In:  "Flying\nFirst strike",
		Out: "Flying. First strike",
	},
	{
		In:  "Draw a card.\nScry 1.",
		Out: "Draw a card. Scry 1.",
	},
	{
		In:  "Choose one —\n• A.\n• B.",
		Out: "Choose one — • A. • B.",
	},
	{
		In:  "Sacrifice it:\nDraw",
		Out: "Sacrifice it: Draw",
	},
	{
		In:  "Tap target creature\n\"Hello\"\nDraw",
		Out: "Tap target creature. \"Hello\" Draw",
	},
}

func TestOracle(t *testing.T) {
	for _, probe := range OracleTests {
		test := probe
		t.Run(test.In, func(t *testing.T) {
			t.Parallel()
			out := Oracle(test.In)
			if out != test.Out {
				t.Errorf("FAIL %s: Expected '%s' got '%s'", test.In, test.Out, out)
				return
			}
			t.Log("PASS:", test.In)
		})
	}
}
