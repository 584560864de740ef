package semantics

// Variable is a named, typed slot: a field, a parameter or a local
type Variable struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// MethodScope holds one method's signature and locals.
// Parameters and locals share a single namespace.
type MethodScope struct {
	name       string
	returnType Type
	params     []Variable
	locals     []Variable
	names      map[string]Type
	class      *ClassScope // owning class, not owned
}

func newMethodScope(name string, returnType Type, class *ClassScope) *MethodScope {
	return &MethodScope{
		name:       name,
		returnType: returnType,
		params:     []Variable{},
		locals:     []Variable{},
		names:      make(map[string]Type),
		class:      class,
	}
}

// AddParam appends a parameter. Returns false, changing nothing, if the name
// is already a parameter or a local.
func (m *MethodScope) AddParam(name string, t Type) bool {
	if _, exists := m.names[name]; exists {
		return false
	}
	m.names[name] = t
	m.params = append(m.params, Variable{Name: name, Type: t})
	return true
}

// AddVar records a local variable under the same rule as AddParam
func (m *MethodScope) AddVar(name string, t Type) bool {
	if _, exists := m.names[name]; exists {
		return false
	}
	m.names[name] = t
	m.locals = append(m.locals, Variable{Name: name, Type: t})
	return true
}

func (m *MethodScope) Name() string {
	return m.name
}

func (m *MethodScope) ReturnType() Type {
	return m.returnType
}

// Params returns the parameters in declaration order
func (m *MethodScope) Params() []Variable {
	out := make([]Variable, len(m.params))
	copy(out, m.params)
	return out
}

// Locals returns the local variables in declaration order
func (m *MethodScope) Locals() []Variable {
	out := make([]Variable, len(m.locals))
	copy(out, m.locals)
	return out
}

// Local finds a local variable; parameters are not considered
func (m *MethodScope) Local(name string) (Type, bool) {
	for _, v := range m.locals {
		if v.Name == name {
			return v.Type, true
		}
	}
	return Type{}, false
}

// Lookup finds a parameter or a local
func (m *MethodScope) Lookup(name string) (Type, bool) {
	t, ok := m.names[name]
	return t, ok
}

func (m *MethodScope) Class() *ClassScope {
	return m.class
}
