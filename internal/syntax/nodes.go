package syntax

// Node is implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the first token belonging to the node
	aNode()
}

// Expr is implemented by all expression nodes.
//
// Each node exclusively owns its children: parsing builds a fresh tree per
// input and never shares subtrees, and no child is ever nil.
type Expr interface {
	Node
	aExpr()
}

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (*node) aNode()     {}

type expr struct{ node }

func (*expr) aExpr() {}

// IntLit is an integer literal leaf.
type IntLit struct {
	expr
	Value int64
}

// Operation is a binary arithmetic operation X Op Y.
// Op is one of Add, Sub, Mul, Div. The node position is that of X.
type Operation struct {
	expr
	Op    Kind
	OpPos Pos // position of the operator
	X     Expr
	Y     Expr
}

// Negation is unary minus: -X
type Negation struct {
	expr
	X Expr
}

// NewIntLit, NewOperation and NewNegation build nodes outside the parser,
// mainly for tests and tools.

func NewIntLit(pos Pos, v int64) *IntLit {
	n := &IntLit{Value: v}
	n.pos = pos
	return n
}

func NewOperation(opPos Pos, op Kind, x, y Expr) *Operation {
	n := &Operation{Op: op, OpPos: opPos, X: x, Y: y}
	n.pos = x.Pos()
	return n
}

func NewNegation(pos Pos, x Expr) *Negation {
	n := &Negation{X: x}
	n.pos = pos
	return n
}
