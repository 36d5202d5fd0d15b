package mython

import "fmt"

// Method is a named, fixed-arity chunk of executable AST owned by a Class.
// formal_params excludes the implicit receiver, per §3.
type Method struct {
	Name         string
	FormalParams []string
	Body         Node
}

// Class is a named class with an ordered list of methods and an optional
// parent class reference, realizing §3's Class variant.
type Class struct {
	Name    string
	Parent  *Class
	Methods []*Method
	byName  map[string]*Method
}

// NewClass creates an empty class with the given name and optional parent.
func NewClass(name string, parent *Class) *Class {
	return &Class{Name: name, Parent: parent, byName: make(map[string]*Method)}
}

// AddMethod appends a method to the class, directly grounded on the
// teacher's Class being built up one slot at a time during parsing.
func (c *Class) AddMethod(m *Method) {
	c.Methods = append(c.Methods, m)
	c.byName[m.Name] = m
}

// GetMethod searches the owning class's own methods, then recurses into
// the parent, returning the first match by name regardless of arity, or
// nil. Directly grounded on runtime.cpp's Class::GetMethod.
func (c *Class) GetMethod(name string) *Method {
	if m, ok := c.byName[name]; ok {
		return m
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil
}

func (c *Class) Type() string { return "Class" }
func (c *Class) Print(ctx *Context) (string, error) {
	return fmt.Sprintf("Class %s", c.Name), nil
}

// ClassInstance is a value bound to a specific Class carrying its own
// mutable field bindings, realizing §3's ClassInstance variant. The class
// reference is a non-owning back-reference into the long-lived class
// table owned by the AST; Go's GC makes that note purely informative,
// since there is nothing to leak either way.
type ClassInstance struct {
	class  *Class
	fields map[string]Value
}

// NewClassInstance constructs an instance bound to class with no fields
// set.
func NewClassInstance(class *Class) *ClassInstance {
	return &ClassInstance{class: class, fields: make(map[string]Value)}
}

func (inst *ClassInstance) Type() string { return inst.class.Name }

// Print implements runtime.cpp's ClassInstance::Print: call __str__ if
// present against the real ctx, else fall back to an implementation-
// defined stable token. A RuntimeError raised by __str__ (or anything it
// transitively calls, including a nested print) propagates to the
// caller rather than being swallowed by the fallback, matching §7: only
// the *absence* of __str__ falls back, not a failure within it.
func (inst *ClassInstance) Print(ctx *Context) (string, error) {
	if m := inst.class.GetMethod("__str__"); m != nil && len(m.FormalParams) == 0 {
		v, err := inst.Call(m, nil, ctx)
		if err != nil {
			return "", err
		}
		return stringify(v, ctx)
	}
	return fmt.Sprintf("<%s object at %p>", inst.class.Name, inst), nil
}

// HasMethod reports whether name resolves to a method of the given arity.
// Overloading by arity is not supported; an arity mismatch is reported as
// "no such method" by the caller.
func (inst *ClassInstance) HasMethod(name string, arity int) bool {
	m := inst.class.GetMethod(name)
	return m != nil && len(m.FormalParams) == arity
}

// GetField resolves a field on the instance.
func (inst *ClassInstance) GetField(name string) (Value, bool) {
	v, ok := inst.fields[name]
	return v, ok
}

// SetField assigns into the instance's field map.
func (inst *ClassInstance) SetField(name string, value Value) {
	inst.fields[name] = value
}

// Call implements runtime.cpp's ClassInstance::Call: build a fresh
// Closure with self bound to this instance and each formal parameter
// bound to the corresponding actual argument positionally, execute the
// method body, and unwrap a Return unwind into the call's return value.
func (inst *ClassInstance) Call(m *Method, args []Value, ctx *Context) (Value, error) {
	if len(args) != len(m.FormalParams) {
		return nil, newRuntimeError("method %q expects %d argument(s), got %d", m.Name, len(m.FormalParams), len(args))
	}
	closure := NewClosure()
	closure.Set("self", inst)
	for i, name := range m.FormalParams {
		closure.Set(name, args[i])
	}
	value, sig, err := m.Body.Execute(closure, ctx)
	if err != nil {
		return nil, err
	}
	if sig == ReturnSignal {
		return value, nil
	}
	return nil, nil
}
