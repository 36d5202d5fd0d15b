// Package mython implements an interpreter for Mython, a small
// indentation-sensitive object-oriented scripting language resembling a
// subset of Python.
package mython

import "io"

// Run lexes and parses src, then executes the resulting program against a
// fresh top-level Closure, writing output to ctx. This is the driver
// §2 describes: Lexer -> Parser -> Execute with an empty top-level
// environment.
func Run(src io.Reader, ctx *Context) error {
	toks, err := Lex(src)
	if err != nil {
		return err
	}
	root, err := Parse(toks)
	if err != nil {
		return err
	}
	closure := NewClosure()
	_, _, err = root.Execute(closure, ctx)
	return err
}
