package mython

// Equal implements §4.3's Equal(lhs, rhs, ctx) dispatch.
func Equal(lhs, rhs Value, ctx *Context) (bool, error) {
	if lhs == nil && rhs == nil {
		return true, nil
	}
	if inst, ok := lhs.(*ClassInstance); ok {
		if m := inst.class.GetMethod("__eq__"); m != nil && len(m.FormalParams) == 1 {
			result, err := inst.Call(m, []Value{rhs}, ctx)
			if err != nil {
				return false, err
			}
			return IsTrue(result), nil
		}
	}
	switch a := lhs.(type) {
	case *Bool:
		b, ok := rhs.(*Bool)
		if !ok {
			return false, newRuntimeError("cannot compare Bool with %s", typeName(rhs))
		}
		return a.Val == b.Val, nil
	case *Number:
		b, ok := rhs.(*Number)
		if !ok {
			return false, newRuntimeError("cannot compare Number with %s", typeName(rhs))
		}
		return a.Val == b.Val, nil
	case *String:
		b, ok := rhs.(*String)
		if !ok {
			return false, newRuntimeError("cannot compare String with %s", typeName(rhs))
		}
		return a.Val == b.Val, nil
	}
	return false, newRuntimeError("cannot compare %s with %s", typeName(lhs), typeName(rhs))
}

// Less implements §4.3's Less(lhs, rhs, ctx) dispatch.
func Less(lhs, rhs Value, ctx *Context) (bool, error) {
	if inst, ok := lhs.(*ClassInstance); ok {
		if m := inst.class.GetMethod("__lt__"); m != nil && len(m.FormalParams) == 1 {
			result, err := inst.Call(m, []Value{rhs}, ctx)
			if err != nil {
				return false, err
			}
			return IsTrue(result), nil
		}
	}
	switch a := lhs.(type) {
	case *Bool:
		b, ok := rhs.(*Bool)
		if !ok {
			return false, newRuntimeError("cannot order Bool with %s", typeName(rhs))
		}
		return !a.Val && b.Val, nil
	case *Number:
		b, ok := rhs.(*Number)
		if !ok {
			return false, newRuntimeError("cannot order Number with %s", typeName(rhs))
		}
		return a.Val < b.Val, nil
	case *String:
		b, ok := rhs.(*String)
		if !ok {
			return false, newRuntimeError("cannot order String with %s", typeName(rhs))
		}
		return a.Val < b.Val, nil
	}
	return false, newRuntimeError("cannot order %s with %s", typeName(lhs), typeName(rhs))
}

// NotEqual, Greater, LessOrEqual, and GreaterOrEqual are derived from
// Equal and Less per §4.3.

func NotEqual(lhs, rhs Value, ctx *Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func Greater(lhs, rhs Value, ctx *Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !(lt || eq), nil
}

func LessOrEqual(lhs, rhs Value, ctx *Context) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

func GreaterOrEqual(lhs, rhs Value, ctx *Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

func typeName(v Value) string {
	if v == nil {
		return "None"
	}
	return v.Type()
}
