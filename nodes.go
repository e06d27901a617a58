package scicalc

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// text is the literal of a nodeNum.
	text string
	fn   Function
	c    Constant

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // push literal text
	nodeConst // push constant c
	nodeCall  // eval left, apply fn

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodeMod // evaluate left, remainder by right
	nodePow // evaluate left, exp by right
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

// binkind gives the node kind for a binary operator.
func binkind(op Operator) nodeKind {
	switch op {
	case OpAdd:
		return nodeAdd
	case OpSub:
		return nodeSub
	case OpMul:
		return nodeMul
	case OpDiv:
		return nodeDiv
	case OpMod:
		return nodeMod
	case OpPow:
		return nodePow
	default:
		return nodeNone
	}
}

// binop gives the operator of a binary node kind, or OpNone if k is not a
// binary operation.
func (k nodeKind) binop() Operator {
	switch k {
	case nodeAdd:
		return OpAdd
	case nodeSub:
		return OpSub
	case nodeMul:
		return OpMul
	case nodeDiv:
		return OpDiv
	case nodeMod:
		return OpMod
	case nodePow:
		return OpPow
	default:
		return OpNone
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes n fully parenthesized. The output parses to the same tree.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.text)
	case nodeConst:
		b.WriteString(n.c.String())
	case nodeCall:
		b.WriteString(n.fn.String())
		n.left.fmt(b)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.binop().String())
		b.WriteByte(' ')
		n.right.fmt(b)
	default:
		panic("scicalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
