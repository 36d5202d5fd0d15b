package mython

// Signal is the Go realization of the internal Return control-flow
// channel §4.3 and §9 call for: a dedicated signal type handled only at
// method-call boundaries, never exposed in the public value model.
// Directly modeled on the teacher's Stop enum (control.go) and its
// (Interface, Stop) calling convention used throughout ObjectIf/
// ObjectWhile/ObjectFor.
type Signal int

const (
	NoSignal Signal = iota
	ReturnSignal
)

// Node is the uniform evaluation contract every AST node implements,
// realizing §4.3's execute(closure, context) -> value. The error return
// is the one addition beyond the teacher's own Stop-based contract:
// unlike Io, a Mython runtime fault is never recoverable by the running
// program (no try/except), so it is idiomatic Go to surface it as a real
// error instead of folding it into Signal.
type Node interface {
	Execute(closure *Closure, ctx *Context) (Value, Signal, error)
}
