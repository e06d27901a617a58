package scicalc

import (
	"strings"
	"unicode/utf8"
)

// Expr = num | const | Call | Neg | Add | Sub | Mul | Div | Mod | Pow | '(' Expr ')'
// Call = funcname '(' Expr ')'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Mod = Expr '%' Expr
// Pow = Expr '^' Expr

// Expr is a parsed expression that can be evaluated in either angle mode.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// scanner steps through a token slice. Past the end, it returns EOF tokens.
type scanner struct {
	toks []Token
	i    int
	end  int
}

func newScanner(toks []Token) *scanner {
	end := 1
	if len(toks) > 0 {
		last := toks[len(toks)-1]
		end = last.Pos + utf8.RuneCountInString(last.Text)
	}
	return &scanner{toks: toks, end: end}
}

func (s *scanner) next() Token {
	s.i++
	if s.i > len(s.toks) {
		return Token{Kind: TokenEOF, Pos: s.end}
	}
	return s.toks[s.i-1]
}

// push unreads the last token returned from next.
func (s *scanner) push() {
	if s.i == 0 {
		panic("scicalc: push before next")
	}
	s.i--
}

// Parse parses a token sequence into an expression.
func Parse(toks []Token) (*Expr, error) {
	scan := newScanner(toks)
	n, err := parseterm(scan, exprprec, Token{})
	if err != nil {
		return nil, err
	}
	switch tok := scan.next(); tok.Kind {
	case TokenEOF:
	case TokenClose:
		return nil, &SyntaxError{Col: tok.Pos, Reason: ReasonUnopenedParen, Text: tok.Text}
	default:
		panic("scicalc: parseterm ended on " + tok.String())
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to tokenize and parse a string.
func ParseString(src string) (*Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// parseterm parses a term whose operators all bind more tightly than until.
// after is the token preceding the term, or the zero Token at the start of
// the input. If there is no error, then parseterm pushes the last token it
// scans, which is always a close paren or EOF.
func parseterm(scan *scanner, until operator, after Token) (*node, error) {
	n, err := parselhs(scan, until, after)
	if err != nil {
		return nil, err
	}
	for {
		tok := scan.next()
		switch tok.Kind {
		case TokenOperator:
			prec := binop(tok.Op)
			if prec.op == nodeNone {
				panic("scicalc: unknown operator in " + tok.String())
			}
			if !prec.moreBinding(until) {
				scan.push()
				return n, nil
			}
			rhs, err := parseterm(scan, prec, tok)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case TokenClose, TokenEOF:
			// End of expression.
			scan.push()
			return n, nil
		case TokenNumber, TokenConstant, TokenFunction, TokenOpen, TokenUnaryMinus:
			// 2(3), (2)3, 2 pi, &c. are not multiplications.
			return nil, &SyntaxError{Col: tok.Pos, Reason: ReasonImplicitMul, Text: tok.Text}
		default:
			panic("scicalc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., any encountered token
// must be valid as the start of a subexpression.
func parselhs(scan *scanner, until operator, after Token) (*node, error) {
	tok := scan.next()
	switch tok.Kind {
	case TokenNumber:
		return &node{kind: nodeNum, text: tok.Text}, nil
	case TokenConstant:
		return &node{kind: nodeConst, c: tok.Const}, nil
	case TokenFunction:
		return parsecall(scan, tok)
	case TokenUnaryMinus:
		prec := negprec
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, prec, tok)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: rhs}, nil
	case TokenOpen:
		return parsegroup(scan, tok)
	case TokenOperator:
		if after.Kind == TokenOperator || after.Kind == TokenUnaryMinus {
			return nil, &SyntaxError{Col: tok.Pos, Reason: ReasonConsecutiveOperators, Text: tok.Text}
		}
		return nil, &SyntaxError{Col: tok.Pos, Reason: ReasonMissingOperand, Text: tok.Text}
	case TokenClose:
		switch {
		case after.Kind == TokenOpen:
			return nil, &SyntaxError{Col: tok.Pos, Reason: ReasonEmpty, Text: after.Text + tok.Text}
		case after.Pos == 0:
			return nil, &SyntaxError{Col: tok.Pos, Reason: ReasonUnopenedParen, Text: tok.Text}
		}
		return nil, &SyntaxError{Col: after.Pos, Reason: ReasonMissingOperand, Text: after.Text}
	case TokenEOF:
		switch {
		case after.Pos == 0:
			return nil, &SyntaxError{Col: tok.Pos, Reason: ReasonEmpty}
		case after.Kind == TokenOpen:
			return nil, &SyntaxError{Col: after.Pos, Reason: ReasonUnclosedParen, Text: after.Text}
		}
		return nil, &SyntaxError{Col: after.Pos, Reason: ReasonMissingOperand, Text: after.Text}
	default:
		panic("scicalc: unknown token: " + tok.String())
	}
}

// parsegroup parses the contents of parentheses through the close paren.
func parsegroup(scan *scanner, open Token) (*node, error) {
	n, err := parseterm(scan, exprprec, open)
	if err != nil {
		return nil, err
	}
	if end := scan.next(); end.Kind != TokenClose {
		return nil, &SyntaxError{Col: open.Pos, Reason: ReasonUnclosedParen, Text: open.Text}
	}
	return n, nil
}

// parsecall parses the single parenthesized argument of a function.
func parsecall(scan *scanner, fn Token) (*node, error) {
	open := scan.next()
	if open.Kind != TokenOpen {
		return nil, &SyntaxError{Col: fn.Pos, Reason: ReasonMissingCallParen, Text: fn.Text}
	}
	arg, err := parsegroup(scan, open)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeCall, fn: fn.Func, left: arg}, nil
}

// String creates a string representation of the parsed expression with every
// term parenthesized.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the precedence of a binary operator. If there is no such
// operator, then the result has an op of nodeNone.
func binop(op Operator) operator {
	switch op {
	case OpAdd, OpSub:
		return operator{1, false, binkind(op)}
	case OpMul, OpDiv, OpMod:
		return operator{5, false, binkind(op)}
	case OpPow:
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

var (
	// negprec is the precedence of unary minus, between multiplication and
	// exponentiation.
	negprec = operator{10, true, nodeNeg}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true, nodeNone}
)
