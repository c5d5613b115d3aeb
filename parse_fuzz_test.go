package scicalc_test

import (
	"strings"
	"testing"

	"github.com/deskutils/scicalc"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("1×2")
	f.Add("√π")
	f.Add("2^π(3)")
	f.Add("sin^2 x + cos^2 x")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := scicalc.Parse(strings.NewReader(s))
		if err != nil {
			return
		}
		// Formatted trees must parse again.
		if _, err := scicalc.ParseString(a.String()); err != nil {
			t.Errorf("%q formatted as %q which does not parse: %v", s, a.String(), err)
		}
	})
}
