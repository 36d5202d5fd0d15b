package mython

import "fmt"

// Value is the runtime value model (ObjectHolder). A Go nil interface
// value realizes "None" directly: there is no separate None wrapper type,
// and no reference counting is needed — Go's garbage collector already
// gives the share-by-reference, tolerate-cycles, collect-when-unreachable
// behavior §3 of the specification describes.
type Value interface {
	// Type names the runtime kind, used in error messages. Equality and
	// ordering decide "same kind" with type switches, not with Type.
	Type() string
	// Print renders the value the way `print` stringifies it. ctx is the
	// real execution context, threaded through so that a ClassInstance's
	// __str__ can itself run print statements or raise a RuntimeError;
	// see ClassInstance.Print in class.go.
	Print(ctx *Context) (string, error)
}

// Number wraps a signed integer. Mython has no floating-point numbers.
type Number struct {
	Val int
}

func (n *Number) Type() string { return "Number" }
func (n *Number) Print(ctx *Context) (string, error) {
	return fmt.Sprintf("%d", n.Val), nil
}

// Bool wraps a boolean, printed as True/False per §3.
type Bool struct {
	Val bool
}

func (b *Bool) Type() string { return "Bool" }
func (b *Bool) Print(ctx *Context) (string, error) {
	if b.Val {
		return "True", nil
	}
	return "False", nil
}

// String wraps a byte string.
type String struct {
	Val string
}

func (s *String) Type() string { return "String" }
func (s *String) Print(ctx *Context) (string, error) {
	return s.Val, nil
}

// IsTrue implements §4.3's truthiness rules.
func IsTrue(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case *Bool:
		return t.Val
	case *Number:
		return t.Val != 0
	case *String:
		return t.Val != ""
	default:
		// Class, ClassInstance: no truthy coercion.
		return false
	}
}

// stringify renders v exactly as `print` would, including the None
// literal for the nil interface value, forwarding ctx so a
// ClassInstance's __str__ runs against the real output sink and any
// RuntimeError it raises propagates instead of being swallowed. Directly
// modeled on original_source/runtime.cpp's ClassInstance::Print, which
// takes the real Context rather than printing blind.
func stringify(v Value, ctx *Context) (string, error) {
	if v == nil {
		return "None", nil
	}
	return v.Print(ctx)
}
