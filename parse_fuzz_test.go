//go:build go1.18
// +build go1.18

package scicalc_test

import (
	"testing"

	scicalc "github.com/talhatariq2141/othercalculators-sub001"
)

func FuzzParse(f *testing.F) {
	f.Add("2+3*4")
	f.Add("-2^-3^2")
	f.Add("sin(√(2)×π)")
	f.Add("((1)")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := scicalc.ParseString(s)
		if err != nil {
			return
		}
		b, err := scicalc.ParseString(a.String())
		if err != nil {
			t.Fatalf("%q formats as %q which doesn't parse: %v", s, a.String(), err)
		}
		if a.String() != b.String() {
			t.Errorf("%q formats as %q which formats as %q", s, a.String(), b.String())
		}
	})
}
