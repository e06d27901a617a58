package scicalc_test

import (
	"errors"
	"fmt"
	"testing"

	scicalc "github.com/talhatariq2141/othercalculators-sub001"
)

// press presses the keys given as space-separated labels.
func press(t *testing.T, c scicalc.Calculator, labels string) scicalc.Calculator {
	t.Helper()
	ks, err := scicalc.ParseKeys(labels)
	if err != nil {
		t.Fatalf("bad keys %q: %v", labels, err)
	}
	for _, k := range ks {
		c = c.Press(k)
	}
	return c
}

func TestCalculator(t *testing.T) {
	cases := []struct {
		name    string
		keys    string
		state   scicalc.State
		expr    string
		display string
	}{
		{"empty", "", scicalc.Entering, "", ""},
		{"digits", "1 2 . 5", scicalc.Entering, "12.5", "12.5"},
		{"glyphs", "2 × 3 ÷ 4 − 1", scicalc.Entering, "2*3/4-1", "2×3÷4−1"},
		{"funcs", "√ 4 ) + sin 3 0 )", scicalc.Entering, "sqrt(4)+sin(30)", "√(4)+sin(30)"},
		{"consts", "π × e", scicalc.Entering, "pi*e", "π×e"},
		{"result", "2 + 3 × 4 =", scicalc.Result, "", "14"},
		{"parens", "( 2 + 3 ) × 4 =", scicalc.Result, "", "20"},
		{"power", "2 ^ 3 ^ 2 =", scicalc.Result, "", "512"},
		{"negative", "− 5 + 3 =", scicalc.Result, "", "-2"},
		{"sin90", "sin 9 0 ) =", scicalc.Result, "", "1"},
		{"third", "1 ÷ 3 =", scicalc.Result, "", "0.3333333333"},
		{"fact", "x! 5 ) =", scicalc.Result, "", "120"},
		{"empty-equals", "=", scicalc.Entering, "", ""},

		{"div-zero", "5 ÷ 0 =", scicalc.Error, "5/0", "Error"},
		{"syntax", "2 + + 3 =", scicalc.Error, "2++3", "Error"},
		{"unclosed", "( 2 + 3 =", scicalc.Error, "(2+3", "Error"},
		{"domain", "√ − 4 ) =", scicalc.Error, "sqrt(-4)", "Error"},
		{"lex", "1 . . 2 =", scicalc.Error, "1..2", "Error"},

		{"chain", "2 + 3 = × 2 =", scicalc.Result, "", "10"},
		{"chain-entering", "2 + 3 = ×", scicalc.Entering, "5*", "5×"},
		{"chain-negative", "− 2 = ^ 2 =", scicalc.Result, "", "4"},
		{"chain-negative-entering", "− 2 = ^", scicalc.Entering, "(-2)^", "(-2)^"},
		{"chain-negative-shown", "− 2 = − 3", scicalc.Entering, "(-2)-3", "(-2)−3"},
		{"chain-third", "1 ÷ 3 = × 3 =", scicalc.Result, "", "1"},
		{"new-after-result", "2 + 3 = 7", scicalc.Entering, "7", "7"},
		{"func-after-result", "2 + 3 = sin", scicalc.Entering, "sin(", "sin("},
		{"paren-after-result", "2 + 3 = (", scicalc.Entering, "(", "("},
		{"const-after-result", "2 + 3 = π", scicalc.Entering, "pi", "π"},
		{"repeat", "2 + 3 = =", scicalc.Result, "", "8"},
		{"repeat-twice", "2 + 3 = = =", scicalc.Result, "", "11"},
		{"repeat-mul", "2 × 3 = =", scicalc.Result, "", "18"},
		{"repeat-call", "sin 9 0 ) = =", scicalc.Result, "", "1"},

		{"digit-after-error", "5 ÷ 0 = 7", scicalc.Entering, "7", "7"},
		{"op-after-error", "5 ÷ 0 = +", scicalc.Entering, "+", "+"},
		{"equals-after-error", "5 ÷ 0 = =", scicalc.Entering, "", ""},
		{"fixed-after-error", "5 ÷ 0 = 7 × 2 =", scicalc.Result, "", "14"},

		{"clear", "1 2 + AC", scicalc.Entering, "", ""},
		{"clear-result", "2 + 3 = AC", scicalc.Entering, "", ""},
		{"clear-error", "5 ÷ 0 = AC", scicalc.Entering, "", ""},
		{"backspace", "1 2 + ⌫", scicalc.Entering, "12", "12"},
		{"backspace-func", "1 + sin ⌫", scicalc.Entering, "1+", "1+"},
		{"backspace-empty", "⌫ ⌫", scicalc.Entering, "", ""},
		{"backspace-result", "2 + 3 = ⌫", scicalc.Entering, "", ""},
		{"backspace-error", "5 ÷ 0 = ⌫", scicalc.Entering, "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			calc := press(t, scicalc.New(), c.keys)
			if calc.State() != c.state {
				t.Errorf("%q: want state %v, got %v", c.keys, c.state, calc.State())
			}
			if calc.Expression() != c.expr {
				t.Errorf("%q: want expression %q, got %q", c.keys, c.expr, calc.Expression())
			}
			if calc.Display() != c.display {
				t.Errorf("%q: want display %q, got %q", c.keys, c.display, calc.Display())
			}
			if calc.Display() != calc.Display() {
				t.Errorf("%q: display changed between calls", c.keys)
			}
			if (calc.State() == scicalc.Error) != (calc.Err() != nil) {
				t.Errorf("%q: state %v with error %v", c.keys, calc.State(), calc.Err())
			}
		})
	}
}

func TestCalculatorErrors(t *testing.T) {
	cases := []struct {
		name string
		keys string
		kind scicalc.MathErrorKind
	}{
		{"div", "5 ÷ 0 =", scicalc.DivisionByZero},
		{"mod", "5 % 0 =", scicalc.DivisionByZero},
		{"sqrt", "√ − 4 ) =", scicalc.DomainError},
		{"log", "log 0 ) =", scicalc.DomainError},
		{"tan", "tan 9 0 ) =", scicalc.DomainError},
		{"fact", "x! 1 7 1 ) =", scicalc.Overflow},
		{"exp", "exp 1 0 0 0 ) =", scicalc.Overflow},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			calc := press(t, scicalc.New(), c.keys)
			if calc.State() != scicalc.Error {
				t.Fatalf("%q: want Error state, got %v showing %q", c.keys, calc.State(), calc.Display())
			}
			var me *scicalc.MathError
			if !errors.As(calc.Err(), &me) {
				t.Fatalf("%q: %#v is not *scicalc.MathError", c.keys, calc.Err())
			}
			if me.Kind != c.kind {
				t.Errorf("%q: want %v, got %v", c.keys, c.kind, me.Kind)
			}
		})
	}

	calc := press(t, scicalc.New(), "2 + + 3 =")
	var se *scicalc.SyntaxError
	if !errors.As(calc.Err(), &se) {
		t.Fatalf("%#v is not *scicalc.SyntaxError", calc.Err())
	}
	if se.Reason != scicalc.ReasonConsecutiveOperators {
		t.Errorf("2++3 gave reason %v", se.Reason)
	}
	calc = press(t, scicalc.New(), "2 ( 3 ) =")
	if !errors.As(calc.Err(), &se) || se.Reason != scicalc.ReasonImplicitMul {
		t.Errorf("2(3) gave %v", calc.Err())
	}
}

func TestCalculatorMode(t *testing.T) {
	calc := press(t, scicalc.New(), "sin 9 0 ) =")
	if calc.Mode() != scicalc.Degrees {
		t.Fatalf("new calculator in %v", calc.Mode())
	}
	if calc.Display() != "1" {
		t.Errorf("sin(90) in degrees shows %q", calc.Display())
	}
	calc = press(t, calc, "RAD")
	if calc.Mode() != scicalc.Radians {
		t.Errorf("RAD gave %v", calc.Mode())
	}
	if calc.State() != scicalc.Result || calc.Display() != "1" {
		t.Errorf("mode change altered result to %v %q", calc.State(), calc.Display())
	}
	if r, ok := calc.LastResult(); !ok || r != 1 {
		t.Errorf("mode change altered last result to %g, %t", r, ok)
	}
	calc = press(t, calc, "sin 9 0 ) =")
	if calc.Display() != "0.8939966636" {
		t.Errorf("sin(90) in radians shows %q", calc.Display())
	}
	calc = press(t, calc, "DRG")
	if calc.Mode() != scicalc.Degrees {
		t.Errorf("DRG from radians gave %v", calc.Mode())
	}
	calc = press(t, calc, "DRG")
	if calc.Mode() != scicalc.Radians {
		t.Errorf("DRG from degrees gave %v", calc.Mode())
	}
	calc = press(t, calc, "1 + DEG 2")
	if calc.Mode() != scicalc.Degrees || calc.Expression() != "1+2" || calc.State() != scicalc.Entering {
		t.Errorf("DEG while entering gave %v %q %v", calc.Mode(), calc.Expression(), calc.State())
	}
	calc = press(t, calc, "AC")
	if calc.Mode() != scicalc.Degrees {
		t.Errorf("AC changed mode to %v", calc.Mode())
	}
	calc = press(t, scicalc.New(scicalc.WithMode(scicalc.Radians)), "AC")
	if calc.Mode() != scicalc.Radians {
		t.Errorf("AC changed mode to %v", calc.Mode())
	}
	calc = press(t, scicalc.New(scicalc.WithMode(scicalc.Mode(5))), "DRG")
	if calc.Mode() != scicalc.Degrees {
		t.Errorf("DRG from an invalid mode gave %v", calc.Mode())
	}
	calc = press(t, calc, "DRG")
	if calc.Mode() != scicalc.Radians {
		t.Errorf("second DRG gave %v", calc.Mode())
	}
}

func TestCalculatorLastResult(t *testing.T) {
	calc := scicalc.New()
	if _, ok := calc.LastResult(); ok {
		t.Error("new calculator has a last result")
	}
	calc = press(t, calc, "2 + 3 =")
	if r, ok := calc.LastResult(); !ok || r != 5 {
		t.Errorf("last result is %g, %t", r, ok)
	}
	calc = press(t, calc, "1 ÷ 0 =")
	if r, ok := calc.LastResult(); !ok || r != 5 {
		t.Errorf("error changed last result to %g, %t", r, ok)
	}
	calc = press(t, calc, "AC")
	if _, ok := calc.LastResult(); ok {
		t.Error("AC kept last result")
	}
	calc = press(t, calc, "× 2 =")
	if calc.State() != scicalc.Error {
		t.Errorf("operator after AC continued from %q", calc.Display())
	}
}

func TestCalculatorIndependent(t *testing.T) {
	a := press(t, scicalc.New(), "1 2")
	b := a.Press(scicalc.Key3)
	c := a.Press(scicalc.Key4)
	if a.Expression() != "12" {
		t.Errorf("pressing keys on copies changed original to %q", a.Expression())
	}
	if b.Expression() != "123" || c.Expression() != "124" {
		t.Errorf("copies share input: %q and %q", b.Expression(), c.Expression())
	}
	d := b.Press(scicalc.KeyBackspace)
	e := d.Press(scicalc.Key5)
	f := d.Press(scicalc.Key6)
	if b.Expression() != "123" || e.Expression() != "125" || f.Expression() != "126" {
		t.Errorf("backspace shares input: %q, %q, %q", b.Expression(), e.Expression(), f.Expression())
	}
	r := press(t, a, "=")
	if a.State() != scicalc.Entering || r.State() != scicalc.Result {
		t.Errorf("evaluating a copy changed original to %v", a.State())
	}
}

func TestStep(t *testing.T) {
	a := press(t, scicalc.New(), "2 +")
	for _, k := range []scicalc.Key{scicalc.Key3, scicalc.KeyEquals, scicalc.KeyAllClear, scicalc.KeyPi} {
		b, c := scicalc.Step(a, k), a.Press(k)
		if b.Display() != c.Display() || b.State() != c.State() || b.Expression() != c.Expression() {
			t.Errorf("Step and Press differ on %v: %q and %q", k, b.Display(), c.Display())
		}
	}
}

func TestPreview(t *testing.T) {
	calc := press(t, scicalc.New(), "2 + 3")
	s, err := calc.Preview()
	if err != nil {
		t.Fatal(err)
	}
	if s != "5" {
		t.Errorf("preview of 2+3 is %q", s)
	}
	if calc.State() != scicalc.Entering || calc.Expression() != "2+3" {
		t.Errorf("preview changed calculator to %v %q", calc.State(), calc.Expression())
	}
	calc = press(t, calc, "×")
	if _, err := calc.Preview(); err == nil {
		t.Error("preview of incomplete expression gave no error")
	}
	calc = press(t, calc, "4 =")
	if s, err := calc.Preview(); err != nil || s != "14" {
		t.Errorf("preview of result is %q, %v", s, err)
	}
}

func TestNewOptions(t *testing.T) {
	calc := press(t, scicalc.New(scicalc.WithDigits(3)), "1 ÷ 3 =")
	if calc.Display() != "0.333" {
		t.Errorf("3 digits shows %q", calc.Display())
	}
	calc = press(t, scicalc.New(scicalc.WithPrec(256)), "2 ^ 0 . 5 =")
	if calc.Display() != "1.414213562" {
		t.Errorf("sqrt 2 at 256 bits shows %q", calc.Display())
	}
	calc = press(t, scicalc.New(scicalc.WithMode(scicalc.Radians)), "cos π ) =")
	if calc.Display() != "-1" {
		t.Errorf("cos(pi) in radians shows %q", calc.Display())
	}
}

func ExampleCalculator() {
	c := scicalc.New()
	for _, k := range []scicalc.Key{scicalc.Key2, scicalc.KeyAdd, scicalc.Key3, scicalc.KeyMul, scicalc.Key4, scicalc.KeyEquals} {
		c = c.Press(k)
	}
	fmt.Println(c.Display())
	c = c.Press(scicalc.KeyDiv).Press(scicalc.Key4)
	fmt.Println(c.Display())
	c = c.Press(scicalc.KeyEquals)
	fmt.Println(c.Display())
	c = c.Press(scicalc.KeyDiv).Press(scicalc.Key0).Press(scicalc.KeyEquals)
	fmt.Println(c.Display(), c.Err())

	// Output:
	// 14
	// 14÷4
	// 3.5
	// Error evaluating "3.5/0": division by zero in /
}
