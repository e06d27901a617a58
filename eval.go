package scicalc

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Mode is the angle mode, which determines how trig functions interpret
// their arguments and how inverse trig functions express their results.
type Mode int8

const (
	Degrees Mode = iota
	Radians
)

func (m Mode) String() string {
	switch m {
	case Degrees:
		return "DEG"
	case Radians:
		return "RAD"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode parses an angle mode name, e.g. from a configuration file.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "deg", "degrees", "DEG", "Degrees":
		return Degrees, nil
	case "rad", "radians", "RAD", "Radians":
		return Radians, nil
	default:
		return 0, errors.New("unknown angle mode " + strconv.Quote(s))
	}
}

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	mode  Mode
	prec  uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	angleopt Mode
	precopt  uint
)

func (angleopt) ctxOption() {}
func (precopt) ctxOption()  {}

// Angle sets the angle mode of calculations.
func Angle(m Mode) ContextOption {
	return angleopt(m)
}

// Prec sets the working precision of calculations in bits. Results are
// always rounded to doubles.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64. If no angle mode is given, the default is Degrees.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: 64}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			// do nothing
		case angleopt:
			ctx.mode = Mode(opt)
		case precopt:
			if opt != 0 {
				ctx.prec = uint(opt)
			}
		default:
			panic("scicalc: unknown option type")
		}
	}
	return &ctx
}

// Mode returns the angle mode of the context.
func (ctx *Context) Mode() Mode {
	return ctx.mode
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates an expression. If an error occurs, it is a *MathError and
// the result is 0.
func (ctx *Context) Eval(e *Expr) (r float64, err error) {
	if len(ctx.stack) != 0 {
		panic("scicalc: Eval during Eval")
	}
	defer func() {
		ctx.stack = ctx.stack[:0]
		x := recover()
		if x == nil {
			return
		}
		// Domains are checked before calling into math/big, but it's
		// better to report an error than crash if one slips through.
		var nan big.ErrNaN
		if xe, ok := x.(error); ok && errors.As(xe, &nan) {
			r, err = 0, &MathError{Kind: DomainError, X: math.NaN()}
			return
		}
		panic(x)
	}()
	if err := e.n.eval(ctx); err != nil {
		return 0, err
	}
	if len(ctx.stack) != 1 {
		panic("scicalc: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
	return f64(ctx.stack[0]), nil
}

// Evaluate evaluates an expression in the given angle mode at the default
// precision.
func Evaluate(e *Expr, mode Mode) (float64, error) {
	return NewContext(Angle(mode)).Eval(e)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	e, err := ParseString(src)
	if err != nil {
		return 0, err
	}
	return NewContext(opts...).Eval(e)
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float))
	}
	return ctx.stack[len(ctx.stack)-1].SetPrec(ctx.prec)
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future node evaluations.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from its text.
func (ctx *Context) num(s string) *big.Float {
	if r := ctx.nums[s]; r != nil {
		return r
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	if err != nil {
		// The lexer only produces digits with at most one dot.
		panic("scicalc: invalid number: " + s + " (" + err.Error() + ")")
	}
	ctx.nums[s] = r
	return r
}

// finite checks that v is representable as a double.
func finite(v *big.Float, what string) error {
	if f := f64(v); v.IsInf() || math.IsInf(f, 0) {
		return &MathError{Kind: Overflow, Func: what, X: math.Inf(v.Sign())}
	}
	return nil
}

// binary evaluates both operands of a binary node and returns them. l is
// left on the stack to receive the result.
func (n *node) binary(ctx *Context) (l, r *big.Float, err error) {
	if err := n.left.eval(ctx); err != nil {
		return nil, nil, err
	}
	if err := n.right.eval(ctx); err != nil {
		return nil, nil, err
	}
	r = ctx.pop()
	l = ctx.top()
	return l, r, nil
}

// eval pushes the node's value to the context's stack. Every value pushed is
// a finite double.
func (n *node) eval(ctx *Context) error {
	var what string
	switch n.kind {
	case nodeNum:
		ctx.push().Set(ctx.num(n.text))
		what = n.text
	case nodeConst:
		r := ctx.push()
		switch n.c {
		case ConstPi:
			bigfloat.Pi(r)
		case ConstE:
			one := new(big.Float).SetPrec(ctx.prec).SetInt64(1)
			bigfloat.Exp(r, one)
		default:
			panic("scicalc: unknown constant " + n.c.String())
		}
		what = n.c.String()
	case nodeCall:
		r := ctx.push()
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		if err := ctx.call(n.fn, r, ctx.pop()); err != nil {
			return err
		}
		what = n.fn.String()
	case nodeNeg:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		v := ctx.top()
		v.Neg(v)
		return nil
	case nodeAdd:
		l, r, err := n.binary(ctx)
		if err != nil {
			return err
		}
		l.Add(l, r)
		what = OpAdd.String()
	case nodeSub:
		l, r, err := n.binary(ctx)
		if err != nil {
			return err
		}
		l.Sub(l, r)
		what = OpSub.String()
	case nodeMul:
		l, r, err := n.binary(ctx)
		if err != nil {
			return err
		}
		l.Mul(l, r)
		what = OpMul.String()
	case nodeDiv:
		l, r, err := n.binary(ctx)
		if err != nil {
			return err
		}
		if r.Sign() == 0 {
			return &MathError{Kind: DivisionByZero, Func: OpDiv.String()}
		}
		l.Quo(l, r)
		what = OpDiv.String()
	case nodeMod:
		l, r, err := n.binary(ctx)
		if err != nil {
			return err
		}
		if r.Sign() == 0 {
			return &MathError{Kind: DivisionByZero, Func: OpMod.String()}
		}
		// Remainders are exact in binary floating point, so double
		// precision loses nothing for double inputs.
		l.SetFloat64(math.Mod(f64(l), f64(r)))
		what = OpMod.String()
	case nodePow:
		l, r, err := n.binary(ctx)
		if err != nil {
			return err
		}
		if err := pow(l, l, r); err != nil {
			return err
		}
		what = OpPow.String()
	default:
		panic("scicalc: invalid AST node " + n.kind.String())
	}
	return finite(ctx.top(), what)
}
