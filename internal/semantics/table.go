package semantics

import "encoding/json"

// SymbolTable maps class names to their scopes. It owns every ClassScope it
// holds and keeps declaration order for inspection and dumping.
type SymbolTable struct {
	classes []*ClassScope
	index   map[string]*ClassScope
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		classes: []*ClassScope{},
		index:   make(map[string]*ClassScope),
	}
}

// AddClass creates and registers a class scope. If the name is taken the
// table is left untouched and AddClass returns nil, false.
func (st *SymbolTable) AddClass(name string) (*ClassScope, bool) {
	if _, exists := st.index[name]; exists {
		return nil, false
	}
	scope := newClassScope(name)
	st.index[name] = scope
	st.classes = append(st.classes, scope)
	return scope, true
}

func (st *SymbolTable) FindClass(name string) (*ClassScope, bool) {
	scope, ok := st.index[name]
	return scope, ok
}

// Classes returns the class scopes in declaration order
func (st *SymbolTable) Classes() []*ClassScope {
	out := make([]*ClassScope, len(st.classes))
	copy(out, st.classes)
	return out
}

func (st *SymbolTable) Len() int {
	return len(st.classes)
}

type methodDump struct {
	Name   string     `json:"name"`
	Return Type       `json:"return"`
	Params []Variable `json:"params"`
	Locals []Variable `json:"locals"`
}

type classDump struct {
	Name    string       `json:"name"`
	Base    *string      `json:"base"`
	Fields  []Variable   `json:"fields"`
	Methods []methodDump `json:"methods"`
}

func (c *ClassScope) dump() classDump {
	out := classDump{
		Name:    c.name,
		Fields:  c.Fields(),
		Methods: make([]methodDump, 0, len(c.methods)),
	}
	if c.base != nil {
		name := c.base.name
		out.Base = &name
	}
	for _, m := range c.methods {
		out.Methods = append(out.Methods, methodDump{
			Name:   m.name,
			Return: m.returnType,
			Params: m.Params(),
			Locals: m.Locals(),
		})
	}
	return out
}

// MarshalJSON writes the table as {"classes": [...]} in declaration order
func (st *SymbolTable) MarshalJSON() ([]byte, error) {
	classes := make([]classDump, 0, len(st.classes))
	for _, c := range st.classes {
		classes = append(classes, c.dump())
	}
	return json.Marshal(struct {
		Classes []classDump `json:"classes"`
	}{classes})
}

// Equal reports whether both tables hold the same classes, members, types
// and base links, in the same order.
func (st *SymbolTable) Equal(other *SymbolTable) bool {
	if st == nil || other == nil {
		return st == other
	}
	if len(st.classes) != len(other.classes) {
		return false
	}
	for i := range st.classes {
		if !classesEqual(st.classes[i], other.classes[i]) {
			return false
		}
	}
	return true
}

func classesEqual(a, b *ClassScope) bool {
	if a.name != b.name || baseName(a) != baseName(b) {
		return false
	}
	if !variablesEqual(a.fields, b.fields) || len(a.methods) != len(b.methods) {
		return false
	}
	for i := range a.methods {
		ma, mb := a.methods[i], b.methods[i]
		if ma.name != mb.name || ma.returnType != mb.returnType {
			return false
		}
		if !variablesEqual(ma.params, mb.params) || !variablesEqual(ma.locals, mb.locals) {
			return false
		}
	}
	return true
}

func baseName(c *ClassScope) string {
	if c.base == nil {
		return ""
	}
	return c.base.name
}

func variablesEqual(a, b []Variable) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
