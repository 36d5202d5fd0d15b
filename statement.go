package mython

import "fmt"

// resolveChain implements the shared dotted-name resolution used by
// VariableValue, FieldAssignment's receiver, and MethodCall's receiver:
// chain[0] is resolved in the closure, and each subsequent name accesses
// a field on the previously resolved ClassInstance.
func resolveChain(closure *Closure, chain []string) (Value, error) {
	v, ok := closure.Get(chain[0])
	if !ok {
		return nil, newRuntimeError("unknown identifier %q", chain[0])
	}
	for _, name := range chain[1:] {
		inst, ok := v.(*ClassInstance)
		if !ok {
			return nil, newRuntimeError("cannot access field %q on non-instance value", name)
		}
		v, ok = inst.GetField(name)
		if !ok {
			return nil, newRuntimeError("instance of %s has no field %q", inst.class.Name, name)
		}
	}
	return v, nil
}

// Compound executes its children in order, returning None unless a
// child signals Return, in which case its value and signal propagate and
// the remaining children do not execute.
type Compound struct {
	Stmts []Node
}

func (c *Compound) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	for _, stmt := range c.Stmts {
		v, sig, err := stmt.Execute(closure, ctx)
		if err != nil {
			return nil, NoSignal, err
		}
		if sig == ReturnSignal {
			return v, sig, nil
		}
	}
	return nil, NoSignal, nil
}

// Assignment evaluates expr and stores into closure[Target], shadowing
// allowed. Returns the assigned value.
type Assignment struct {
	Target string
	Expr   Node
}

func (a *Assignment) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	v, _, err := a.Expr.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	closure.Set(a.Target, v)
	return v, NoSignal, nil
}

// FieldAssignment evaluates ObjectChain to a ClassInstance (else runtime
// error), evaluates Expr, and assigns into the instance's field map.
type FieldAssignment struct {
	ObjectChain []string
	Field       string
	Expr        Node
}

func (f *FieldAssignment) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	obj, err := resolveChain(closure, f.ObjectChain)
	if err != nil {
		return nil, NoSignal, err
	}
	inst, ok := obj.(*ClassInstance)
	if !ok {
		return nil, NoSignal, newRuntimeError("cannot assign field %q on non-instance value", f.Field)
	}
	v, _, err := f.Expr.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	inst.SetField(f.Field, v)
	return v, NoSignal, nil
}

// VariableValue resolves Chain[0] in the closure; each subsequent name
// accesses a field on the previously resolved ClassInstance. Used both as
// a statement (a bare expression-statement) and as a primary expression.
type VariableValue struct {
	Chain []string
}

func (v *VariableValue) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	value, err := resolveChain(closure, v.Chain)
	if err != nil {
		return nil, NoSignal, err
	}
	return value, NoSignal, nil
}

// Return evaluates Expr and signals an unwind up to the enclosing method
// invocation boundary, where ClassInstance.Call converts it back into a
// plain return value. It must never be observable outside that boundary.
type Return struct {
	Expr Node
}

func (r *Return) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	v, _, err := r.Expr.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	return v, ReturnSignal, nil
}

// IfElse evaluates Cond, applies truthiness, executes the selected
// branch in the same closure, and propagates a Return signal from
// whichever branch ran.
type IfElse struct {
	Cond Node
	Then Node
	Else Node // nil if there is no else clause
}

func (i *IfElse) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	cond, _, err := i.Cond.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	if IsTrue(cond) {
		return i.Then.Execute(closure, ctx)
	}
	if i.Else != nil {
		return i.Else.Execute(closure, ctx)
	}
	return nil, NoSignal, nil
}

// Print evaluates each expression, writes their stringifications
// separated by single spaces followed by a newline, to the Context's
// output. An empty print writes only a newline.
type Print struct {
	Exprs []Node
}

func (p *Print) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	parts := make([]string, len(p.Exprs))
	for i, e := range p.Exprs {
		v, _, err := e.Execute(closure, ctx)
		if err != nil {
			return nil, NoSignal, err
		}
		s, err := stringify(v, ctx)
		if err != nil {
			return nil, NoSignal, err
		}
		parts[i] = s
	}
	out := ctx.OutputStream()
	for i, s := range parts {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprint(out, s)
	}
	fmt.Fprint(out, "\n")
	return nil, NoSignal, nil
}

// MethodCall evaluates ObjectChain to a ClassInstance, evaluates all Args
// left-to-right, then dispatches Method with that arity.
type MethodCall struct {
	ObjectChain []string
	Method      string
	Args        []Node
}

func (mc *MethodCall) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	obj, err := resolveChain(closure, mc.ObjectChain)
	if err != nil {
		return nil, NoSignal, err
	}
	inst, ok := obj.(*ClassInstance)
	if !ok {
		return nil, NoSignal, newRuntimeError("cannot call method %q on non-instance value", mc.Method)
	}
	args, err := evalArgs(mc.Args, closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	if !inst.HasMethod(mc.Method, len(args)) {
		return nil, NoSignal, newRuntimeError("no such method %q with %d argument(s) on %s", mc.Method, len(args), inst.class.Name)
	}
	v, err := inst.Call(inst.class.GetMethod(mc.Method), args, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	return v, NoSignal, nil
}

// NewInstance constructs a ClassInstance bound to the class named
// ClassName; if __init__ exists with matching arity, it is invoked with
// the new instance as self.
type NewInstance struct {
	ClassName string
	Args      []Node
}

func (n *NewInstance) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	v, ok := closure.Get(n.ClassName)
	if !ok {
		return nil, NoSignal, newRuntimeError("unknown identifier %q", n.ClassName)
	}
	class, ok := v.(*Class)
	if !ok {
		return nil, NoSignal, newRuntimeError("%q is not a class", n.ClassName)
	}
	args, err := evalArgs(n.Args, closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	inst := NewClassInstance(class)
	if init := class.GetMethod("__init__"); init != nil && len(init.FormalParams) == len(args) {
		if _, err := inst.Call(init, args, ctx); err != nil {
			return nil, NoSignal, err
		}
	}
	return inst, NoSignal, nil
}

func evalArgs(exprs []Node, closure *Closure, ctx *Context) ([]Value, error) {
	args := make([]Value, len(exprs))
	for i, e := range exprs {
		v, _, err := e.Execute(closure, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// ClassDef builds a Class from its parsed methods and optional parent
// name, then binds it into the closure under Name — the same closure
// slot ordinary variables live in, so a later `Greeter(...)` call
// resolves through the same lookup path as any other identifier.
type ClassDef struct {
	Name       string
	ParentName string // empty if there is no parent clause
	Methods    []*Method
}

func (cd *ClassDef) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	var parent *Class
	if cd.ParentName != "" {
		pv, ok := closure.Get(cd.ParentName)
		if !ok {
			return nil, NoSignal, newRuntimeError("unknown base class %q", cd.ParentName)
		}
		parent, ok = pv.(*Class)
		if !ok {
			return nil, NoSignal, newRuntimeError("%q is not a class", cd.ParentName)
		}
	}
	class := NewClass(cd.Name, parent)
	for _, m := range cd.Methods {
		class.AddMethod(m)
	}
	closure.Set(cd.Name, class)
	return nil, NoSignal, nil
}
