package scicalc

import "strconv"

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "name", or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the column of the last rune scanned, usually the invalid one.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// Reason is the cause of a SyntaxError.
type Reason int8

const (
	// ReasonEmpty is an empty expression or empty parentheses.
	ReasonEmpty Reason = iota
	// ReasonUnclosedParen is a ( with no matching ).
	ReasonUnclosedParen
	// ReasonUnopenedParen is a ) with no matching (.
	ReasonUnopenedParen
	// ReasonMissingOperand is an operator with nothing to apply to.
	ReasonMissingOperand
	// ReasonConsecutiveOperators is a binary operator directly following
	// another operator.
	ReasonConsecutiveOperators
	// ReasonMissingCallParen is a function name not followed by (.
	ReasonMissingCallParen
	// ReasonImplicitMul is an operand directly following another operand.
	// Multiplication is always written explicitly.
	ReasonImplicitMul
)

var reasonstrs = [...]string{
	ReasonEmpty:                "empty expression",
	ReasonUnclosedParen:        "open paren with no close paren",
	ReasonUnopenedParen:        "close paren with no open paren",
	ReasonMissingOperand:       "missing operand",
	ReasonConsecutiveOperators: "consecutive operators",
	ReasonMissingCallParen:     "function call without parentheses",
	ReasonImplicitMul:          "missing operator",
}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonstrs) {
		return "Reason(" + strconv.Itoa(int(r)) + ")"
	}
	return reasonstrs[r]
}

// SyntaxError is an error indicating a sequence of tokens which does not form
// an expression. It implements InputError.
type SyntaxError struct {
	// Col is the position of the token where the problem was found.
	Col int
	// Reason is what is wrong.
	Reason Reason
	// Text is the text of the offending token, if any.
	Text string
}

func (err *SyntaxError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, err.Reason.String())
	}
	return errpos(err.Col, err.Reason.String()+" at "+strconv.Quote(err.Text))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// MathErrorKind classifies evaluation failures.
type MathErrorKind int8

const (
	// DivisionByZero is a division or remainder with a zero divisor.
	DivisionByZero MathErrorKind = iota
	// DomainError is a function applied outside the set of inputs on which
	// it is defined.
	DomainError
	// Overflow is a value too large in magnitude to represent as a double.
	Overflow
)

func (k MathErrorKind) String() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	case DomainError:
		return "domain error"
	case Overflow:
		return "overflow"
	default:
		return "MathErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// MathError is an error from evaluating an expression which is syntactically
// valid.
type MathError struct {
	// Kind is the class of failure.
	Kind MathErrorKind
	// Func names the operator or function that failed.
	Func string
	// X is the offending argument. For overflows, it is the infinity the
	// computation produced.
	X float64
}

func (err *MathError) Error() string {
	r := err.Kind.String()
	if err.Func != "" {
		r += " in " + err.Func
	}
	if err.Kind == DomainError {
		r += ": " + strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	}
	return r
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as a 1-based rune column.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
)
