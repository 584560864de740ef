package semantics

// ClassScope holds a class's fields and methods in declaration order,
// plus a link to its base class when one was found.
type ClassScope struct {
	name        string
	fields      []Variable
	fieldIndex  map[string]int
	methods     []*MethodScope
	methodIndex map[string]*MethodScope
	base        *ClassScope // not owned; nil when absent or not yet declared
}

func newClassScope(name string) *ClassScope {
	return &ClassScope{
		name:        name,
		fields:      []Variable{},
		fieldIndex:  make(map[string]int),
		methods:     []*MethodScope{},
		methodIndex: make(map[string]*MethodScope),
	}
}

// AddField records a field; the first declaration of a name wins
func (c *ClassScope) AddField(name string, t Type) bool {
	if _, exists := c.fieldIndex[name]; exists {
		return false
	}
	c.fieldIndex[name] = len(c.fields)
	c.fields = append(c.fields, Variable{Name: name, Type: t})
	return true
}

// AddMethod creates and registers an empty method scope. There is no
// overloading, so a second method of the same name returns nil, false.
func (c *ClassScope) AddMethod(name string, returnType Type) (*MethodScope, bool) {
	if _, exists := c.methodIndex[name]; exists {
		return nil, false
	}
	method := newMethodScope(name, returnType, c)
	c.methodIndex[name] = method
	c.methods = append(c.methods, method)
	return method, true
}

// SetBaseClass overwrites the base link; nil clears it
func (c *ClassScope) SetBaseClass(base *ClassScope) {
	c.base = base
}

func (c *ClassScope) Name() string {
	return c.name
}

func (c *ClassScope) Base() *ClassScope {
	return c.base
}

func (c *ClassScope) Fields() []Variable {
	out := make([]Variable, len(c.fields))
	copy(out, c.fields)
	return out
}

// Field looks a field up in this class only
func (c *ClassScope) Field(name string) (Type, bool) {
	idx, ok := c.fieldIndex[name]
	if !ok {
		return Type{}, false
	}
	return c.fields[idx].Type, true
}

func (c *ClassScope) Methods() []*MethodScope {
	out := make([]*MethodScope, len(c.methods))
	copy(out, c.methods)
	return out
}

// Method looks a method up in this class only
func (c *ClassScope) Method(name string) (*MethodScope, bool) {
	m, ok := c.methodIndex[name]
	return m, ok
}

// LookupField searches this class then its base chain. It also returns the
// class that declares the field. Each scope is visited at most once, so a
// cyclic chain terminates.
func (c *ClassScope) LookupField(name string) (Type, *ClassScope, bool) {
	var found Type
	var owner *ClassScope
	c.walkChain(func(scope *ClassScope) bool {
		t, ok := scope.Field(name)
		if ok {
			found, owner = t, scope
		}
		return ok
	})
	return found, owner, owner != nil
}

// LookupMethod searches this class then its base chain, like LookupField
func (c *ClassScope) LookupMethod(name string) (*MethodScope, bool) {
	var found *MethodScope
	c.walkChain(func(scope *ClassScope) bool {
		m, ok := scope.Method(name)
		if ok {
			found = m
		}
		return ok
	})
	return found, found != nil
}

// walkChain calls visit on c and each base until visit returns true
func (c *ClassScope) walkChain(visit func(*ClassScope) bool) {
	seen := make(map[*ClassScope]bool)
	for scope := c; scope != nil && !seen[scope]; scope = scope.base {
		seen[scope] = true
		if visit(scope) {
			return
		}
	}
}
