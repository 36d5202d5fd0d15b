package mython

import "testing"

// TestClassGetMethod tests that method lookup recurses into the parent
// chain and that an override shadows the parent's version.
func TestClassGetMethod(t *testing.T) {
	base := NewClass("A", nil)
	base.AddMethod(&Method{Name: "f", Body: &Return{Expr: &NumberLiteral{Val: 1}}})
	base.AddMethod(&Method{Name: "shared", Body: &Return{Expr: &NumberLiteral{Val: 0}}})

	derived := NewClass("B", base)
	derived.AddMethod(&Method{Name: "f", Body: &Return{Expr: &NumberLiteral{Val: 2}}})

	cases := map[string]struct {
		class *Class
		name  string
		found bool
	}{
		"OwnMethod":        {derived, "f", true},
		"InheritedMethod":  {derived, "shared", true},
		"Missing":          {derived, "nope", false},
		"BaseOwnMethod":    {base, "f", true},
		"BaseMissingChild": {base, "nope", false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			m := c.class.GetMethod(c.name)
			if (m != nil) != c.found {
				t.Errorf("GetMethod(%q) on %s: wanted found=%v, got %v", c.name, c.class.Name, c.found, m != nil)
			}
		})
	}

	f := derived.GetMethod("f")
	v, _, err := f.Body.Execute(NewClosure(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := v.(*Number); !ok || n.Val != 2 {
		t.Errorf("derived.f() should return the override's value 2, got %#v", v)
	}
}

// TestClassInstanceCall tests that Call binds self and positional
// parameters into a fresh closure and unwraps a Return unwind.
func TestClassInstanceCall(t *testing.T) {
	class := NewClass("Adder", nil)
	class.AddMethod(&Method{
		Name:         "add",
		FormalParams: []string{"n"},
		Body: &Return{Expr: &BinaryOp{
			Op:    '+',
			Left:  &VariableValue{Chain: []string{"self", "base"}},
			Right: &VariableValue{Chain: []string{"n"}},
		}},
	})
	inst := NewClassInstance(class)
	inst.SetField("base", &Number{Val: 10})

	v, err := inst.Call(class.GetMethod("add"), []Value{&Number{Val: 5}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := v.(*Number)
	if !ok || n.Val != 15 {
		t.Errorf("wanted Number(15), got %#v", v)
	}
}

// TestClassInstanceCallArityMismatch tests that calling with the wrong
// number of arguments is a runtime error.
func TestClassInstanceCallArityMismatch(t *testing.T) {
	class := NewClass("A", nil)
	m := &Method{Name: "f", FormalParams: []string{"x"}, Body: &Return{Expr: &NoneLiteral{}}}
	class.AddMethod(m)
	inst := NewClassInstance(class)
	if _, err := inst.Call(m, nil, nil); err == nil {
		t.Error("expected an arity-mismatch error")
	}
}
