package scicalc

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Function is one of the calculator's built-in functions. The set is closed;
// there are no user-defined functions.
type Function int8

const (
	FuncNone Function = iota
	FuncSin
	FuncCos
	FuncTan
	FuncAsin
	FuncAcos
	FuncAtan
	FuncLog
	FuncLn
	FuncSqrt
	FuncExp
	FuncAbs
	FuncFact
)

var funcnames = [...]string{
	FuncNone: "",
	FuncSin:  "sin",
	FuncCos:  "cos",
	FuncTan:  "tan",
	FuncAsin: "asin",
	FuncAcos: "acos",
	FuncAtan: "atan",
	FuncLog:  "log",
	FuncLn:   "ln",
	FuncSqrt: "sqrt",
	FuncExp:  "exp",
	FuncAbs:  "abs",
	FuncFact: "fact",
}

func (f Function) String() string {
	if f < 0 || int(f) >= len(funcnames) {
		return "Function(" + strconv.Itoa(int(f)) + ")"
	}
	return funcnames[f]
}

// Constant is a named mathematical constant.
type Constant int8

const (
	ConstNone Constant = iota
	ConstPi
	ConstE
)

var constnames = [...]string{
	ConstNone: "",
	ConstPi:   "pi",
	ConstE:    "e",
}

func (c Constant) String() string {
	if c < 0 || int(c) >= len(constnames) {
		return "Constant(" + strconv.Itoa(int(c)) + ")"
	}
	return constnames[c]
}

func lookupFunc(name string) Function {
	for i, s := range funcnames {
		if s != "" && s == name {
			return Function(i)
		}
	}
	return FuncNone
}

func lookupConst(name string) Constant {
	for i, s := range constnames {
		if s != "" && s == name {
			return Constant(i)
		}
	}
	return ConstNone
}

// isNamePrefix reports whether s begins any function or constant name.
func isNamePrefix(s string) bool {
	for _, name := range funcnames {
		if name != "" && strings.HasPrefix(name, s) {
			return true
		}
	}
	for _, name := range constnames {
		if name != "" && strings.HasPrefix(name, s) {
			return true
		}
	}
	return false
}

const (
	// maxExpArg and minExpArg bound the arguments to exp whose results are
	// finite and nonzero as doubles.
	maxExpArg = 709.782712893384
	minExpArg = -745.1332191019412
	// maxFact is the largest integer whose factorial is a finite double.
	maxFact = 170
	// maxIntPow is the largest exponent computed by repeated squaring.
	maxIntPow = 1 << 20
)

// call sets r to fn(x). r may alias x.
func (ctx *Context) call(fn Function, r, x *big.Float) error {
	switch fn {
	case FuncSin, FuncCos, FuncTan:
		v, err := ctx.trig(fn, f64(x))
		if err != nil {
			return err
		}
		r.SetFloat64(v)
	case FuncAsin, FuncAcos:
		v := f64(x)
		if v < -1 || v > 1 {
			return &MathError{Kind: DomainError, Func: fn.String(), X: v}
		}
		if fn == FuncAsin {
			v = math.Asin(v)
		} else {
			v = math.Acos(v)
		}
		r.SetFloat64(ctx.fromRadians(v))
	case FuncAtan:
		r.SetFloat64(ctx.fromRadians(math.Atan(f64(x))))
	case FuncLog:
		if x.Sign() <= 0 {
			return &MathError{Kind: DomainError, Func: fn.String(), X: f64(x)}
		}
		// Use guard digits so that exact powers of ten come out exact.
		p := r.Prec() + 64
		in := new(big.Float).SetPrec(p).Set(x)
		bigfloat.Log(in, in)
		ten := new(big.Float).SetPrec(p).SetInt64(10)
		bigfloat.Log(ten, ten)
		r.Set(in.Quo(in, ten))
	case FuncLn:
		if x.Sign() <= 0 {
			return &MathError{Kind: DomainError, Func: fn.String(), X: f64(x)}
		}
		bigfloat.Log(r, x)
	case FuncSqrt:
		if x.Sign() < 0 {
			return &MathError{Kind: DomainError, Func: fn.String(), X: f64(x)}
		}
		r.Sqrt(x)
	case FuncExp:
		v := f64(x)
		switch {
		case v > maxExpArg:
			return &MathError{Kind: Overflow, Func: fn.String(), X: math.Inf(1)}
		case v < minExpArg:
			r.SetInt64(0)
		default:
			bigfloat.Exp(r, x)
		}
	case FuncAbs:
		r.Abs(x)
	case FuncFact:
		return fact(r, x)
	default:
		panic("scicalc: unknown function " + fn.String())
	}
	return nil
}

// trig evaluates sin, cos, or tan in the context's angle mode.
func (ctx *Context) trig(fn Function, x float64) (float64, error) {
	if ctx.mode == Degrees {
		if v, ok, err := quadrant(fn, x); ok {
			return v, err
		}
		x = x / 180 * math.Pi
	}
	switch fn {
	case FuncSin:
		return math.Sin(x), nil
	case FuncCos:
		return math.Cos(x), nil
	case FuncTan:
		return math.Tan(x), nil
	default:
		panic("scicalc: not a trig function: " + fn.String())
	}
}

// quadrant gives exact values of sin, cos, and tan at multiples of 90
// degrees. ok is false if deg is not such a multiple.
func quadrant(fn Function, deg float64) (v float64, ok bool, err error) {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	if math.Mod(m, 90) != 0 {
		return 0, false, nil
	}
	q := int(m / 90)
	switch fn {
	case FuncSin:
		return [4]float64{0, 1, 0, -1}[q], true, nil
	case FuncCos:
		return [4]float64{1, 0, -1, 0}[q], true, nil
	case FuncTan:
		if q%2 == 1 {
			return 0, true, &MathError{Kind: DomainError, Func: fn.String(), X: deg}
		}
		return 0, true, nil
	default:
		panic("scicalc: not a trig function: " + fn.String())
	}
}

// fromRadians converts the result of an inverse trig function to the
// context's angle mode.
func (ctx *Context) fromRadians(x float64) float64 {
	if ctx.mode == Degrees {
		return x / math.Pi * 180
	}
	return x
}

// fact sets r to x! by repeated multiplication. r may alias x.
func fact(r, x *big.Float) error {
	if x.Sign() < 0 || !x.IsInt() {
		return &MathError{Kind: DomainError, Func: FuncFact.String(), X: f64(x)}
	}
	n, acc := x.Int64()
	if acc != big.Exact || n > maxFact {
		return &MathError{Kind: Overflow, Func: FuncFact.String(), X: math.Inf(1)}
	}
	var k big.Float
	k.SetPrec(r.Prec())
	r.SetInt64(1)
	for i := int64(2); i <= n; i++ {
		r.Mul(r, k.SetInt64(i))
	}
	return nil
}

// pow sets z to x^y. z may alias x or y.
func pow(z, x, y *big.Float) error {
	switch {
	case y.Sign() == 0:
		z.SetInt64(1)
		return nil
	case x.Sign() == 0:
		if y.Sign() < 0 {
			return &MathError{Kind: DivisionByZero, Func: OpPow.String()}
		}
		z.SetInt64(0)
		return nil
	}
	if y.IsInt() {
		if n, acc := y.Int64(); acc == big.Exact && -maxIntPow <= n && n <= maxIntPow {
			powInt(z, x, n)
			return nil
		}
	}
	neg := false
	if x.Sign() < 0 {
		if !y.IsInt() {
			return &MathError{Kind: DomainError, Func: OpPow.String(), X: f64(x)}
		}
		i, _ := y.Int(nil)
		neg = i.Bit(0) == 1
	}
	// Estimate the magnitude first so that bigfloat never has to work with
	// results no double can hold.
	xf, yf := f64(x), f64(y)
	switch est := yf * math.Log(math.Abs(xf)); {
	case est > maxExpArg:
		return &MathError{Kind: Overflow, Func: OpPow.String(), X: math.Inf(1)}
	case est < minExpArg:
		z.SetInt64(0)
		return nil
	}
	a := new(big.Float).SetPrec(z.Prec()).Abs(x)
	b := new(big.Float).SetPrec(z.Prec()).Set(y)
	bigfloat.Pow(z, a, b)
	if neg {
		z.Neg(z)
	}
	return nil
}

// powInt sets z to x^n by repeated squaring with guard digits.
func powInt(z, x *big.Float, n int64) {
	prec := z.Prec() + 64
	b := new(big.Float).SetPrec(prec).Set(x)
	r := new(big.Float).SetPrec(prec).SetInt64(1)
	inv := n < 0
	if inv {
		n = -n
	}
	for n > 0 {
		if n&1 == 1 {
			r.Mul(r, b)
		}
		n >>= 1
		if n > 0 {
			b.Mul(b, b)
		}
	}
	if inv {
		one := new(big.Float).SetPrec(prec).SetInt64(1)
		r.Quo(one, r)
	}
	z.Set(r)
}

// f64 rounds x to the nearest double.
func f64(x *big.Float) float64 {
	f, _ := x.Float64()
	return f
}
