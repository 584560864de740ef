package ast

import "minijava/internal/source"

// Node is implemented by every syntax tree node
type Node interface {
	INode()
	Loc() *source.Location
}

// Expression is a node that produces a value
type Expression interface {
	Node
	Expr()
}

// Statement is a node executed for its effect
type Statement interface {
	Node
	Stmt()
}

// Program is one compilation unit: the entry class followed by the other classes in source order
type Program struct {
	FullPath string
	Main     *MainClass
	Classes  []*ClassDecl
	source.Location
}

func (p *Program) INode()                {} // Implements Node interface
func (p *Program) Loc() *source.Location { return &p.Location }

// MainClass is the entry class with its single `public static void main(String[] arg)` method.
// Locals and Body belong to main.
type MainClass struct {
	Name    *Identifier
	ArgName *Identifier
	Locals  []*VarDecl
	Body    []Statement
	source.Location
}

func (m *MainClass) INode()                {} // Implements Node interface
func (m *MainClass) Loc() *source.Location { return &m.Location }

// ClassDecl is `class Name [extends Base] { fields methods }`
type ClassDecl struct {
	Name    *Identifier
	Extends *Identifier // nil when the class has no extends clause
	Fields  []*VarDecl
	Methods []*MethodDecl
	source.Location
}

func (c *ClassDecl) INode()                {} // Implements Node interface
func (c *ClassDecl) Loc() *source.Location { return &c.Location }

// VarDecl is `Type name;` used for both fields and locals
type VarDecl struct {
	Type TypeNode
	Name *Identifier
	source.Location
}

func (v *VarDecl) INode()                {} // Implements Node interface
func (v *VarDecl) Loc() *source.Location { return &v.Location }

// MethodDecl is `public Type name(params) { locals body return expr; }`
type MethodDecl struct {
	ReturnType TypeNode
	Name       *Identifier
	Params     []*Param
	Locals     []*VarDecl
	Body       []Statement
	Return     Expression
	source.Location
}

func (m *MethodDecl) INode()                {} // Implements Node interface
func (m *MethodDecl) Loc() *source.Location { return &m.Location }

// Param is a single formal parameter
type Param struct {
	Type TypeNode
	Name *Identifier
	source.Location
}

func (p *Param) INode()                {} // Implements Node interface
func (p *Param) Loc() *source.Location { return &p.Location }
