package collector

import (
	"minijava/colors"
	"minijava/internal/context"
	"minijava/internal/diagnostics"
	"minijava/internal/frontend/ast"
	"minijava/internal/semantics"
)

// Options tune a single Build
type Options struct {
	// DeferBaseResolution retries extends clauses that named a class not yet
	// declared, once the whole unit has been walked. Off by default: a forward
	// reference then leaves the class without a base.
	DeferBaseResolution bool
	Debug               bool
}

// scope is the walk position: the enclosing class and method, either may be nil.
// It is passed by value; entering a class or method derives a new one.
type scope struct {
	class  *semantics.ClassScope
	method *semantics.MethodScope
}

func (s scope) enterClass(class *semantics.ClassScope) scope {
	return scope{class: class}
}

func (s scope) enterMethod(method *semantics.MethodScope) scope {
	return scope{class: s.class, method: method}
}

// unresolvedBase is an extends clause whose base was not declared yet
type unresolvedBase struct {
	class *semantics.ClassScope
	base  string
}

// Collector walks one program and builds its symbol table (Phase 3)
type Collector struct {
	table       *semantics.SymbolTable
	diagnostics *diagnostics.DiagnosticBag
	filepath    string
	opts        Options
	unresolved  []unresolvedBase
}

// Build walks program and returns its symbol table. Duplicate declarations
// are reported to diag and dropped; the walk always completes.
func Build(program *ast.Program, diag *diagnostics.DiagnosticBag, opts Options) *semantics.SymbolTable {
	c := &Collector{
		table:       semantics.NewSymbolTable(),
		diagnostics: diag,
		opts:        opts,
	}
	if program == nil {
		return c.table
	}

	c.filepath = program.FullPath
	c.collect(program, scope{})

	if opts.DeferBaseResolution {
		c.resolveDeferredBases()
	}
	return c.table
}

// Run builds the symbol table of every parsed file in the context
func Run(ctx *context.CompilerContext) {
	opts := Options{
		DeferBaseResolution: ctx.Options.ResolveForwardBases,
		Debug:               ctx.Options.Debug,
	}

	for _, file := range ctx.GetAllFiles() {
		if file.AST == nil {
			continue
		}
		if opts.Debug {
			colors.BLUE.Printf("  Collecting %s\n", file.Path)
		}
		file.Symbols = Build(file.AST, ctx.Diagnostics, opts)
	}
}

// collect dispatches on the nodes that carry declarations. Statements and
// expressions never declare anything and are not visited.
func (c *Collector) collect(node ast.Node, s scope) {
	switch n := node.(type) {
	case *ast.Program:
		if n.Main != nil {
			c.collect(n.Main, s)
		}
		for _, class := range n.Classes {
			c.collect(class, s)
		}
	case *ast.MainClass:
		c.collectMainClass(n, s)
	case *ast.ClassDecl:
		c.collectClassDecl(n, s)
	case *ast.VarDecl:
		c.collectVarDecl(n, s)
	case *ast.MethodDecl:
		c.collectMethodDecl(n, s)
	case *ast.Param:
		c.collectParam(n, s)
	}
}

// collectMainClass registers the entry class and synthesizes
// `void main(String[] arg)`, whose locals are the body's declarations.
func (c *Collector) collectMainClass(main *ast.MainClass, s scope) {
	class, ok := c.declareClass(main.Name.Name)
	if !ok {
		return
	}
	inClass := s.enterClass(class)

	method, _ := class.AddMethod("main", semantics.Void)
	inMain := inClass.enterMethod(method)
	if main.ArgName != nil {
		c.declareParam(inMain, main.ArgName.Name, semantics.StringArray)
	}

	for _, local := range main.Locals {
		c.collect(local, inMain)
	}
}

// collectClassDecl: a duplicate name skips the whole declaration, extends clause included
func (c *Collector) collectClassDecl(decl *ast.ClassDecl, s scope) {
	class, ok := c.declareClass(decl.Name.Name)
	if !ok {
		return
	}
	inClass := s.enterClass(class)

	if decl.Extends != nil {
		c.collectExtends(decl.Extends, inClass)
	}
	for _, field := range decl.Fields {
		c.collect(field, inClass)
	}
	for _, method := range decl.Methods {
		c.collect(method, inClass)
	}
}

func (c *Collector) declareClass(name string) (*semantics.ClassScope, bool) {
	class, ok := c.table.AddClass(name)
	if !ok {
		c.diagnostics.Add(diagnostics.DuplicateClass(c.filepath, name))
		return nil, false
	}
	if c.opts.Debug {
		colors.GREEN.Printf("    class %s\n", name)
	}
	return class, true
}

// collectExtends links the base if it is already declared
func (c *Collector) collectExtends(base *ast.Identifier, s scope) {
	found, ok := c.table.FindClass(base.Name)
	s.class.SetBaseClass(found)
	if ok {
		return
	}

	if c.opts.Debug {
		colors.YELLOW.Printf("    %s extends %s before it is declared\n", s.class.Name(), base.Name)
	}
	if c.opts.DeferBaseResolution {
		c.unresolved = append(c.unresolved, unresolvedBase{class: s.class, base: base.Name})
	}
}

func (c *Collector) resolveDeferredBases() {
	for _, pending := range c.unresolved {
		if found, ok := c.table.FindClass(pending.base); ok {
			pending.class.SetBaseClass(found)
		}
	}
	c.unresolved = nil
}

// collectVarDecl is a field outside a method and a local inside one
func (c *Collector) collectVarDecl(decl *ast.VarDecl, s scope) {
	typ, ok := declaredType(decl.Type)
	if !ok || s.class == nil {
		return
	}
	name := decl.Name.Name

	if s.method != nil {
		if !s.method.AddVar(name, typ) {
			c.diagnostics.Add(diagnostics.DuplicateVariable(c.filepath, name, s.method.Name(), s.class.Name()))
		}
		return
	}

	if !s.class.AddField(name, typ) {
		c.diagnostics.Add(diagnostics.DuplicateField(c.filepath, name, s.class.Name()))
	}
}

// collectMethodDecl: a duplicate method is dropped along with its parameters and locals
func (c *Collector) collectMethodDecl(decl *ast.MethodDecl, s scope) {
	ret, ok := declaredType(decl.ReturnType)
	if !ok {
		return
	}
	name := decl.Name.Name

	method, ok := s.class.AddMethod(name, ret)
	if !ok {
		c.diagnostics.Add(diagnostics.DuplicateMethod(c.filepath, name, s.class.Name()))
		return
	}
	if c.opts.Debug {
		colors.GREEN.Printf("      method %s.%s\n", s.class.Name(), name)
	}
	inMethod := s.enterMethod(method)

	for _, param := range decl.Params {
		c.collect(param, inMethod)
	}
	for _, local := range decl.Locals {
		c.collect(local, inMethod)
	}
}

func (c *Collector) collectParam(param *ast.Param, s scope) {
	typ, ok := declaredType(param.Type)
	if !ok {
		return
	}
	c.declareParam(s, param.Name.Name, typ)
}

func (c *Collector) declareParam(s scope, name string, typ semantics.Type) {
	if !s.method.AddParam(name, typ) {
		c.diagnostics.Add(diagnostics.DuplicateParameter(c.filepath, name, s.method.Name(), s.class.Name()))
	}
}

// declaredType converts a written type. A missing type means the parser
// already reported an error, so the declaration is dropped.
func declaredType(node ast.TypeNode) (semantics.Type, bool) {
	switch t := node.(type) {
	case *ast.IntType:
		return semantics.Int, true
	case *ast.BooleanType:
		return semantics.Boolean, true
	case *ast.IntArrayType:
		return semantics.IntArray, true
	case *ast.NamedType:
		typ, err := semantics.ClassType(t.Name)
		return typ, err == nil
	default:
		return semantics.Type{}, false
	}
}
