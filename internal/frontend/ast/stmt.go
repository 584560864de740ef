package ast

import "minijava/internal/source"

// Block is `{ stmts }`
type Block struct {
	Stmts []Statement
	source.Location
}

func (b *Block) INode()                {} // Implements Node interface
func (b *Block) Stmt()                 {} // Stmt is a marker interface for all statements
func (b *Block) Loc() *source.Location { return &b.Location }

// AssignStmt is `name = value;`
type AssignStmt struct {
	Name  *Identifier
	Value Expression
	source.Location
}

func (a *AssignStmt) INode()                {} // Implements Node interface
func (a *AssignStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (a *AssignStmt) Loc() *source.Location { return &a.Location }

// ArrayAssignStmt is `name[index] = value;`
type ArrayAssignStmt struct {
	Name  *Identifier
	Index Expression
	Value Expression
	source.Location
}

func (a *ArrayAssignStmt) INode()                {} // Implements Node interface
func (a *ArrayAssignStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (a *ArrayAssignStmt) Loc() *source.Location { return &a.Location }

// IfStmt is `if (cond) then else els`; the else branch is mandatory
type IfStmt struct {
	Cond Expression
	Then Statement
	Else Statement
	source.Location
}

func (i *IfStmt) INode()                {} // Implements Node interface
func (i *IfStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (i *IfStmt) Loc() *source.Location { return &i.Location }

// WhileStmt is `while (cond) body`
type WhileStmt struct {
	Cond Expression
	Body Statement
	source.Location
}

func (w *WhileStmt) INode()                {} // Implements Node interface
func (w *WhileStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (w *WhileStmt) Loc() *source.Location { return &w.Location }

// PrintStmt is `System.out.println(x);`
type PrintStmt struct {
	X Expression
	source.Location
}

func (p *PrintStmt) INode()                {} // Implements Node interface
func (p *PrintStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (p *PrintStmt) Loc() *source.Location { return &p.Location }
