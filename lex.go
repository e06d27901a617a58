package scicalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical unit of a calculator expression.
type Token struct {
	// Kind is the token's type.
	Kind TokenKind
	// Text is the source text of the token, exactly as it was entered.
	Text string
	// Pos is the 1-based rune column where the token starts.
	Pos int
	// Op is the operator of an operator token.
	Op Operator
	// Func is the function of a function token.
	Func Function
	// Const is the constant of a constant token.
	Const Constant
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	// TokenEOF indicates the end of the input. Tokenize never includes it in
	// its result.
	TokenEOF TokenKind = iota
	// TokenNumber is a decimal literal.
	TokenNumber
	// TokenOperator is a binary operator.
	TokenOperator
	// TokenFunction is a function name.
	TokenFunction
	// TokenConstant is a named constant, pi or e.
	TokenConstant
	// TokenOpen is (.
	TokenOpen
	// TokenClose is ).
	TokenClose
	// TokenUnaryMinus is a - in a position where no left operand exists.
	TokenUnaryMinus
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// Operator is a binary operator.
type Operator int8

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMod
)

var opstrs = [...]string{
	OpNone: "",
	OpAdd:  "+",
	OpSub:  "-",
	OpMul:  "*",
	OpDiv:  "/",
	OpPow:  "^",
	OpMod:  "%",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(opstrs) {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return opstrs[op]
}

// opfor gets the operator for a rune. Minus signs are handled by the lexer
// because they may also be unary.
func opfor(r rune) Operator {
	switch r {
	case '+':
		return OpAdd
	case '*', '×':
		return OpMul
	case '/', '÷':
		return OpDiv
	case '^':
		return OpPow
	case '%':
		return OpMod
	default:
		return OpNone
	}
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes consumed so far.
	col int
	// prev is the kind of the last token scanned, used to classify minus
	// signs.
	prev TokenKind
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// Tokenize splits an expression into tokens. The first invalid rune or
// malformed number ends tokenizing with a *LexError.
func Tokenize(src string) ([]Token, error) {
	l := lex(strings.NewReader(src))
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	tok := Token{Pos: l.col + 1}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.Kind = TokenEOF
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.Pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenNumber
		case 'a' <= r && r <= 'z':
			l.unreadRune()
			if err := l.scanName(&tok); err != nil {
				return tok, err
			}
		case r == '-', r == '−':
			tok.Text = string(r)
			if l.unary() {
				tok.Kind = TokenUnaryMinus
			} else {
				tok.Kind = TokenOperator
				tok.Op = OpSub
			}
		case r == '(':
			tok.Text = "("
			tok.Kind = TokenOpen
		case r == ')':
			tok.Text = ")"
			tok.Kind = TokenClose
		case r == 'π':
			tok.Text = "π"
			tok.Kind = TokenConstant
			tok.Const = ConstPi
		case r == '√':
			tok.Text = "√"
			tok.Kind = TokenFunction
			tok.Func = FuncSqrt
		default:
			op := opfor(r)
			if op == OpNone {
				// Write the rune so that it shows up in the error message.
				l.buf.WriteRune(r)
				return tok, l.error("")
			}
			tok.Text = string(r)
			tok.Kind = TokenOperator
			tok.Op = op
		}
		l.prev = tok.Kind
		return tok, nil
	}
}

// unary reports whether a minus sign at the current position negates rather
// than subtracts.
func (l *lexer) unary() bool {
	switch l.prev {
	case TokenEOF, TokenOpen, TokenOperator, TokenUnaryMinus, TokenFunction:
		return true
	default:
		return false
	}
}

func (l *lexer) scanNum() error {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '.' {
			l.buf.WriteRune(r)
			if dot {
				return l.error("number")
			}
			dot = true
			continue
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		dig = true
	}
	if !dig {
		return l.error("number")
	}
	return nil
}

// scanName scans the longest function or constant name at the current
// position into tok.
func (l *lexer) scanName(tok *Token) error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if !isNamePrefix(l.buf.String() + string(r)) {
			if l.buf.Len() == 0 {
				l.buf.WriteRune(r)
				return l.error("name")
			}
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	tok.Text = l.buf.String()
	if fn := lookupFunc(tok.Text); fn != FuncNone {
		tok.Kind = TokenFunction
		tok.Func = fn
		return nil
	}
	if c := lookupConst(tok.Text); c != ConstNone {
		tok.Kind = TokenConstant
		tok.Const = c
		return nil
	}
	return l.error("name")
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.col,
	}
}
