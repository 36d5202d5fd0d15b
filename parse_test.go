package mython

import (
	"strings"
	"testing"
)

func mustLex(t *testing.T, text string) []Token {
	toks, err := Lex(strings.NewReader(text))
	if err != nil {
		t.Fatalf("%q failed to lex: %v", text, err)
	}
	return toks
}

// TestParseValid tests that well-formed programs parse without error.
func TestParseValid(t *testing.T) {
	cases := map[string]string{
		"Assignment":    "x = 1\n",
		"FieldAssign":   "x.y = 1\n",
		"Print":         "print 1, 2, 3\n",
		"PrintEmpty":    "print\n",
		"Return":        "class A:\n  def f():\n    return 1\n",
		"IfElse":        "if x:\n  print 1\nelse:\n  print 2\n",
		"ClassNoParent": "class A:\n  def f():\n    return 1\n",
		"ClassParent":   "class A:\n  def f():\n    return 1\nclass B(A):\n  def g():\n    return 2\n",
		"MethodCall":    "g.hello()\n",
		"Constructor":   "g = Greeter(\"bob\")\n",
		"Arithmetic":    "print 1 + 2 * 3\n",
		"Parens":        "print (1 + 2) * 3\n",
		"LogicalOps":    "print x or y and not z\n",
		"Comparison":    "print x < y\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			toks := mustLex(t, text)
			node, err := Parse(toks)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", text, err)
			}
			if node == nil {
				t.Fatalf("%q parsed to nil", text)
			}
		})
	}
}

// TestParseErrors tests that certain illegal phrasings result in a
// ParsingError.
func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"BadAssignTarget":   "1 = 2\n",
		"UnclosedParen":     "print (1 + 2\n",
		"ChainedComparison": "print 1 < 2 < 3\n",
		"DuplicateClass":    "class A:\n  def f():\n    return 1\nclass A:\n  def g():\n    return 2\n",
		"DuplicateMethod":   "class A:\n  def f():\n    return 1\n  def f():\n    return 2\n",
		"UndeclaredParent":  "class B(A):\n  def f():\n    return 1\n",
		"EmptyClassBody":    "class A:\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			toks, err := Lex(strings.NewReader(text))
			if err != nil {
				// A lexer error also satisfies "fails to process".
				return
			}
			_, err = Parse(toks)
			if err == nil {
				t.Errorf("%q failed to cause an error", text)
			}
		})
	}
}

// TestParsePrecedence tests that the precedence cascade groups operators
// correctly by checking the resulting AST shape.
func TestParsePrecedence(t *testing.T) {
	toks := mustLex(t, "print 1 + 2 * 3\n")
	node, err := Parse(toks)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	comp, ok := node.(*Compound)
	if !ok || len(comp.Stmts) != 1 {
		t.Fatalf("expected a single top-level statement, got %#v", node)
	}
	printStmt, ok := comp.Stmts[0].(*Print)
	if !ok || len(printStmt.Exprs) != 1 {
		t.Fatalf("expected a single print argument, got %#v", comp.Stmts[0])
	}
	add, ok := printStmt.Exprs[0].(*BinaryOp)
	if !ok || add.Op != '+' {
		t.Fatalf("expected top-level '+', got %#v", printStmt.Exprs[0])
	}
	if _, ok := add.Left.(*NumberLiteral); !ok {
		t.Errorf("expected left operand to be a literal, got %#v", add.Left)
	}
	mul, ok := add.Right.(*BinaryOp)
	if !ok || mul.Op != '*' {
		t.Fatalf("expected right operand to be '*', got %#v", add.Right)
	}
}
