package ast

import "minijava/internal/source"

// BinaryOp is one of the five binary operators of the language
type BinaryOp int

const (
	OpAnd  BinaryOp = iota // &&
	OpLess                 // <
	OpAdd                  // +
	OpSub                  // -
	OpMul                  // *
)

func (op BinaryOp) String() string {
	switch op {
	case OpAnd:
		return "&&"
	case OpLess:
		return "<"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	default:
		return "?"
	}
}

// Identifier is a name reference; it also names declarations
type Identifier struct {
	Name string
	source.Location
}

func (i *Identifier) INode()                {} // Implements Node interface
func (i *Identifier) Expr()                 {} // Expr is a marker interface for all expressions
func (i *Identifier) Loc() *source.Location { return &i.Location }

// BinaryExpr is `X op Y`
type BinaryExpr struct {
	X  Expression
	Op BinaryOp
	Y  Expression
	source.Location
}

func (b *BinaryExpr) INode()                {} // Implements Node interface
func (b *BinaryExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BinaryExpr) Loc() *source.Location { return &b.Location }

// IndexExpr is `X[Index]`
type IndexExpr struct {
	X     Expression
	Index Expression
	source.Location
}

func (i *IndexExpr) INode()                {} // Implements Node interface
func (i *IndexExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (i *IndexExpr) Loc() *source.Location { return &i.Location }

// LengthExpr is `X.length`
type LengthExpr struct {
	X Expression
	source.Location
}

func (l *LengthExpr) INode()                {} // Implements Node interface
func (l *LengthExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (l *LengthExpr) Loc() *source.Location { return &l.Location }

// CallExpr is `Receiver.Method(Args)`
type CallExpr struct {
	Receiver Expression
	Method   *Identifier
	Args     []Expression
	source.Location
}

func (c *CallExpr) INode()                {} // Implements Node interface
func (c *CallExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (c *CallExpr) Loc() *source.Location { return &c.Location }

// IntLit is an integer literal, kept as written
type IntLit struct {
	Value string
	source.Location
}

func (l *IntLit) INode()                {} // Implements Node interface
func (l *IntLit) Expr()                 {} // Expr is a marker interface for all expressions
func (l *IntLit) Loc() *source.Location { return &l.Location }

// BoolLit is `true` or `false`
type BoolLit struct {
	Value bool
	source.Location
}

func (l *BoolLit) INode()                {} // Implements Node interface
func (l *BoolLit) Expr()                 {} // Expr is a marker interface for all expressions
func (l *BoolLit) Loc() *source.Location { return &l.Location }

// ThisExpr is `this`
type ThisExpr struct {
	source.Location
}

func (t *ThisExpr) INode()                {} // Implements Node interface
func (t *ThisExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (t *ThisExpr) Loc() *source.Location { return &t.Location }

// NewArrayExpr is `new int[Size]`
type NewArrayExpr struct {
	Size Expression
	source.Location
}

func (n *NewArrayExpr) INode()                {} // Implements Node interface
func (n *NewArrayExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (n *NewArrayExpr) Loc() *source.Location { return &n.Location }

// NewObjectExpr is `new Class()`
type NewObjectExpr struct {
	Class *Identifier
	source.Location
}

func (n *NewObjectExpr) INode()                {} // Implements Node interface
func (n *NewObjectExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (n *NewObjectExpr) Loc() *source.Location { return &n.Location }

// NotExpr is `!X`
type NotExpr struct {
	X Expression
	source.Location
}

func (n *NotExpr) INode()                {} // Implements Node interface
func (n *NotExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (n *NotExpr) Loc() *source.Location { return &n.Location }

// ParenExpr is `(X)`
type ParenExpr struct {
	X Expression
	source.Location
}

func (p *ParenExpr) INode()                {} // Implements Node interface
func (p *ParenExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (p *ParenExpr) Loc() *source.Location { return &p.Location }
