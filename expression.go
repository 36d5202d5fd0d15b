package mython

// NumberLiteral, StringLiteral, BoolLiteral, and NoneLiteral are the
// atomic leaves of the expression grammar; they evaluate to themselves
// regardless of closure or context.

type NumberLiteral struct{ Val int }

func (n *NumberLiteral) Execute(*Closure, *Context) (Value, Signal, error) {
	return &Number{Val: n.Val}, NoSignal, nil
}

type StringLiteral struct{ Val string }

func (s *StringLiteral) Execute(*Closure, *Context) (Value, Signal, error) {
	return &String{Val: s.Val}, NoSignal, nil
}

type BoolLiteral struct{ Val bool }

func (b *BoolLiteral) Execute(*Closure, *Context) (Value, Signal, error) {
	return &Bool{Val: b.Val}, NoSignal, nil
}

type NoneLiteral struct{}

func (*NoneLiteral) Execute(*Closure, *Context) (Value, Signal, error) {
	return nil, NoSignal, nil
}

// BinaryOp implements §4.3's arithmetic operators. Both operands must be
// Number, except '+' which additionally concatenates two Strings and may
// invoke __add__ on a ClassInstance.
type BinaryOp struct {
	Op          byte // '+', '-', '*', '/'
	Left, Right Node
}

func (b *BinaryOp) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	lv, _, err := b.Left.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	rv, _, err := b.Right.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	if b.Op == '+' {
		if ls, ok := lv.(*String); ok {
			rs, ok := rv.(*String)
			if !ok {
				return nil, NoSignal, newRuntimeError("cannot add String and %s", typeName(rv))
			}
			return &String{Val: ls.Val + rs.Val}, NoSignal, nil
		}
		if inst, ok := lv.(*ClassInstance); ok {
			if m := inst.class.GetMethod("__add__"); m != nil && len(m.FormalParams) == 1 {
				v, err := inst.Call(m, []Value{rv}, ctx)
				if err != nil {
					return nil, NoSignal, err
				}
				return v, NoSignal, nil
			}
		}
	}
	ln, ok := lv.(*Number)
	if !ok {
		return nil, NoSignal, newRuntimeError("cannot apply operator %q to %s", string(b.Op), typeName(lv))
	}
	rn, ok := rv.(*Number)
	if !ok {
		return nil, NoSignal, newRuntimeError("cannot apply operator %q to %s", string(b.Op), typeName(rv))
	}
	switch b.Op {
	case '+':
		return &Number{Val: ln.Val + rn.Val}, NoSignal, nil
	case '-':
		return &Number{Val: ln.Val - rn.Val}, NoSignal, nil
	case '*':
		return &Number{Val: ln.Val * rn.Val}, NoSignal, nil
	case '/':
		if rn.Val == 0 {
			return nil, NoSignal, newRuntimeError("division by zero")
		}
		return &Number{Val: ln.Val / rn.Val}, NoSignal, nil
	}
	return nil, NoSignal, newRuntimeError("unknown operator %q", string(b.Op))
}

// UnaryNeg implements §4.3's unary minus: numeric negation only.
type UnaryNeg struct {
	Expr Node
}

func (u *UnaryNeg) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	v, _, err := u.Expr.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	n, ok := v.(*Number)
	if !ok {
		return nil, NoSignal, newRuntimeError("cannot negate %s", typeName(v))
	}
	return &Number{Val: -n.Val}, NoSignal, nil
}

// Or implements short-circuit `or`: returns Left if truthy, else Right,
// without coercing either operand to Bool.
type Or struct {
	Left, Right Node
}

func (o *Or) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	lv, _, err := o.Left.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	if IsTrue(lv) {
		return lv, NoSignal, nil
	}
	rv, _, err := o.Right.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	return rv, NoSignal, nil
}

// And implements short-circuit `and`: returns Left if falsy, else Right.
type And struct {
	Left, Right Node
}

func (a *And) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	lv, _, err := a.Left.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	if !IsTrue(lv) {
		return lv, NoSignal, nil
	}
	rv, _, err := a.Right.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	return rv, NoSignal, nil
}

// Not returns a Bool.
type Not struct {
	Expr Node
}

func (n *Not) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	v, _, err := n.Expr.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	return &Bool{Val: !IsTrue(v)}, NoSignal, nil
}

// CompareOp is the comparison symbol recognized by Comparison.
type CompareOp int

const (
	CmpEq CompareOp = iota
	CmpNotEq
	CmpLess
	CmpGreater
	CmpLessOrEq
	CmpGreaterOrEq
)

// Comparison dispatches through Equal/Less and their derivatives per
// §4.3. Comparison is non-chaining: exactly one operator per expression.
type Comparison struct {
	Op          CompareOp
	Left, Right Node
}

func (c *Comparison) Execute(closure *Closure, ctx *Context) (Value, Signal, error) {
	lv, _, err := c.Left.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	rv, _, err := c.Right.Execute(closure, ctx)
	if err != nil {
		return nil, NoSignal, err
	}
	var result bool
	switch c.Op {
	case CmpEq:
		result, err = Equal(lv, rv, ctx)
	case CmpNotEq:
		result, err = NotEqual(lv, rv, ctx)
	case CmpLess:
		result, err = Less(lv, rv, ctx)
	case CmpGreater:
		result, err = Greater(lv, rv, ctx)
	case CmpLessOrEq:
		result, err = LessOrEqual(lv, rv, ctx)
	case CmpGreaterOrEq:
		result, err = GreaterOrEqual(lv, rv, ctx)
	}
	if err != nil {
		return nil, NoSignal, err
	}
	return &Bool{Val: result}, NoSignal, nil
}
