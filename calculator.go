package scicalc

import (
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// State is the state of a calculator's input.
type State int8

const (
	// Entering means the calculator is accumulating an expression.
	Entering State = iota
	// Result means the display shows the result of the last evaluation.
	Result
	// Error means the last evaluation failed.
	Error
)

func (s State) String() string {
	switch s {
	case Entering:
		return "Entering"
	case Result:
		return "Result"
	case Error:
		return "Error"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// entry is the text one key press adds to the expression.
type entry struct {
	input   string
	display string
}

// Calculator is the input state of a scientific calculator. Calculators are
// values: Press returns the next state and never modifies its receiver, so
// any number of calculators may be kept independently.
type Calculator struct {
	buf []entry

	last    float64
	hasLast bool

	// pend and pendRHS are the last top-level binary operation, which
	// repeated = applies again to the last result.
	pend    Operator
	pendRHS float64

	state State
	mode  Mode
	err   error

	digits int
	prec   uint
}

// Option is an option for a new calculator.
type Option func(*Calculator)

// WithMode sets the initial angle mode.
func WithMode(m Mode) Option {
	return func(c *Calculator) { c.mode = m }
}

// WithDigits sets the number of significant digits shown for results.
func WithDigits(n int) Option {
	return func(c *Calculator) { c.digits = n }
}

// WithPrec sets the working precision of evaluation in bits.
func WithPrec(prec uint) Option {
	return func(c *Calculator) { c.prec = prec }
}

// New creates a calculator with an empty expression in Degrees mode.
func New(opts ...Option) Calculator {
	c := Calculator{digits: DefaultDigits, prec: 64}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Step returns the state of c after pressing k.
func Step(c Calculator, k Key) Calculator {
	return c.Press(k)
}

// Press returns the state after pressing k. Unknown keys are ignored.
// Backspace removes the text of the last key press as a unit, so after sin
// it removes all of "sin(" rather than one character.
func (c Calculator) Press(k Key) Calculator {
	info := k.info()
	switch info.class {
	case classDigit, classOperand:
		if c.state != Entering {
			c.buf = nil
		}
		return c.enter(info)
	case classOperator:
		switch c.state {
		case Result:
			if len(c.buf) == 0 && c.hasLast {
				c = c.enter(c.seed())
			}
		case Error:
			c.buf = nil
		}
		return c.enter(info)
	case classControl:
		switch k {
		case KeyEquals:
			return c.equals()
		case KeyAllClear:
			return New(WithMode(c.mode), WithDigits(c.digits), WithPrec(c.prec))
		case KeyBackspace:
			if c.state != Entering || len(c.buf) == 0 {
				c.buf = nil
			} else {
				c.buf = c.buf[:len(c.buf)-1]
			}
			c.state, c.err = Entering, nil
		case KeyDegrees:
			c.mode = Degrees
		case KeyRadians:
			c.mode = Radians
		case KeyToggleMode:
			if c.mode == Degrees {
				c.mode = Radians
			} else {
				c.mode = Degrees
			}
		default:
			panic("scicalc: unhandled control key " + k.String())
		}
	}
	return c
}

// enter appends a key's text to the expression. The buffer is always copied
// so that earlier states keep their own.
func (c Calculator) enter(info keyinfo) Calculator {
	c.buf = append(c.buf[:len(c.buf):len(c.buf)], entry{input: info.input, display: info.display})
	c.state, c.err = Entering, nil
	return c
}

// seed gives the entry that stands for the last result when an operator
// continues from it.
func (c Calculator) seed() keyinfo {
	in, disp := exact(c.last), FormatResult(c.last, c.digits)
	if c.last < 0 {
		// -2^2 would mean -(2^2).
		in, disp = "("+in+")", "("+disp+")"
	}
	return keyinfo{input: in, display: disp}
}

func (c Calculator) equals() Calculator {
	switch c.state {
	case Error:
		c.buf, c.err, c.state = nil, nil, Entering
		return c
	case Result:
		if c.pend == OpNone {
			return c
		}
		src := "(" + exact(c.last) + ")" + c.pend.String() + "(" + exact(c.pendRHS) + ")"
		return c.eval(src)
	}
	if len(c.buf) == 0 {
		return c
	}
	return c.eval(c.Expression())
}

// eval evaluates src and moves to the Result or Error state.
func (c Calculator) eval(src string) Calculator {
	e, err := ParseString(src)
	if err != nil {
		return c.fail(src, err)
	}
	ctx := NewContext(Angle(c.mode), Prec(c.prec))
	v, err := ctx.Eval(e)
	if err != nil {
		return c.fail(src, err)
	}
	c.last, c.hasLast = v, true
	c.pend, c.pendRHS = OpNone, 0
	if op := e.n.kind.binop(); op != OpNone {
		// The right operand evaluated fine as part of the whole.
		if rhs, err := ctx.Eval(&Expr{n: e.n.right}); err == nil {
			c.pend, c.pendRHS = op, rhs
		}
	}
	c.buf, c.state, c.err = nil, Result, nil
	return c
}

func (c Calculator) fail(src string, err error) Calculator {
	c.state = Error
	c.err = xerrors.Errorf("evaluating %q: %w", src, err)
	return c
}

// Preview evaluates the expression entered so far without changing state.
// It returns the formatted result, or the error evaluating it. Outside the
// Entering state, it returns the display.
func (c Calculator) Preview() (string, error) {
	if c.state != Entering {
		return c.Display(), c.err
	}
	v, err := EvalString(c.Expression(), Angle(c.mode), Prec(c.prec))
	if err != nil {
		return "", err
	}
	return FormatResult(v, c.digits), nil
}

// State returns the input state.
func (c Calculator) State() State {
	return c.state
}

// Mode returns the angle mode.
func (c Calculator) Mode() Mode {
	return c.mode
}

// LastResult returns the result of the last successful evaluation, if there
// has been one since the calculator was created or cleared.
func (c Calculator) LastResult() (float64, bool) {
	return c.last, c.hasLast
}

// Err returns the reason the last evaluation failed while in the Error
// state. The underlying *LexError, *SyntaxError, or *MathError is available
// through errors.As.
func (c Calculator) Err() error {
	return c.err
}

// Expression returns the expression text entered so far.
func (c Calculator) Expression() string {
	var b strings.Builder
	for _, e := range c.buf {
		b.WriteString(e.input)
	}
	return b.String()
}

// Display returns the text the calculator shows.
func (c Calculator) Display() string {
	switch c.state {
	case Result:
		return FormatResult(c.last, c.digits)
	case Error:
		return ErrorText
	}
	var b strings.Builder
	for _, e := range c.buf {
		b.WriteString(e.display)
	}
	return b.String()
}
