package ast

import "minijava/internal/source"

// TypeNode is a type as written in a declaration
type TypeNode interface {
	Node
	TypeExpr()
}

// IntType is `int`
type IntType struct {
	source.Location
}

func (t *IntType) INode()                {} // Implements Node interface
func (t *IntType) TypeExpr()             {} // TypeExpr is a marker interface for all types
func (t *IntType) Loc() *source.Location { return &t.Location }

// BooleanType is `boolean`
type BooleanType struct {
	source.Location
}

func (t *BooleanType) INode()                {} // Implements Node interface
func (t *BooleanType) TypeExpr()             {} // TypeExpr is a marker interface for all types
func (t *BooleanType) Loc() *source.Location { return &t.Location }

// IntArrayType is `int[]`
type IntArrayType struct {
	source.Location
}

func (t *IntArrayType) INode()                {} // Implements Node interface
func (t *IntArrayType) TypeExpr()             {} // TypeExpr is a marker interface for all types
func (t *IntArrayType) Loc() *source.Location { return &t.Location }

// NamedType refers to a class by name
type NamedType struct {
	Name string
	source.Location
}

func (t *NamedType) INode()                {} // Implements Node interface
func (t *NamedType) TypeExpr()             {} // TypeExpr is a marker interface for all types
func (t *NamedType) Loc() *source.Location { return &t.Location }
