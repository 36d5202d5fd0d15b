package mython

import (
	"strings"
	"testing"
)

// TestLexSingles tests that individual tokens have the correct kinds and
// values.
func TestLexSingles(t *testing.T) {
	cases := map[string]struct {
		text string
		kind TokenKind
	}{
		"Ident":       {"abcd", IdToken},
		"Number":      {"1234", NumberToken},
		"Class":       {"class", ClassToken},
		"Return":      {"return", ReturnToken},
		"If":          {"if", IfToken},
		"Else":        {"else", ElseToken},
		"Def":         {"def", DefToken},
		"Print":       {"print", PrintToken},
		"And":         {"and", AndToken},
		"Or":          {"or", OrToken},
		"Not":         {"not", NotToken},
		"None":        {"None", NoneToken},
		"True":        {"True", TrueToken},
		"False":       {"False", FalseToken},
		"String":      {`"abcd"`, StringToken},
		"Eq":          {"==", EqToken},
		"NotEq":       {"!=", NotEqToken},
		"LessOrEq":    {"<=", LessOrEqToken},
		"GreaterOrEq": {">=", GreaterOrEqToken},
		"Bang":        {"!", CharToken},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			toks, err := Lex(strings.NewReader(c.text))
			if err != nil {
				t.Fatalf("%q failed to lex: %v", c.text, err)
			}
			if len(toks) == 0 {
				t.Fatalf("%q produced no tokens", c.text)
			}
			if toks[0].Kind != c.kind {
				t.Errorf("%q lexed as wrong kind: wanted %v, got %v", c.text, c.kind, toks[0].Kind)
			}
		})
	}
}

// TestLexIndentation tests that indentation changes produce the correct
// Indent/Dedent deltas.
func TestLexIndentation(t *testing.T) {
	text := "a\n  b\n    c\nd\n"
	toks, err := Lex(strings.NewReader(text))
	if err != nil {
		t.Fatalf("failed to lex: %v", err)
	}
	var kinds []TokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []TokenKind{
		IdToken, NewlineToken,
		IndentToken, IdToken, NewlineToken,
		IndentToken, IdToken, NewlineToken,
		DedentToken, DedentToken, IdToken, NewlineToken,
		EofToken,
	}
	if len(kinds) != len(want) {
		t.Fatalf("wrong token count: wanted %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: wanted %v, got %v", i, want[i], kinds[i])
		}
	}
}

// TestLexBlankLines tests that blank lines and comment-only lines emit
// no tokens and no indentation change.
func TestLexBlankLines(t *testing.T) {
	text := "a\n\n  # comment\nb\n"
	toks, err := Lex(strings.NewReader(text))
	if err != nil {
		t.Fatalf("failed to lex: %v", err)
	}
	var kinds []TokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []TokenKind{IdToken, NewlineToken, IdToken, NewlineToken, EofToken}
	if len(kinds) != len(want) {
		t.Fatalf("wrong token count: wanted %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: wanted %v, got %v", i, want[i], kinds[i])
		}
	}
}

// TestLexStringEscapes tests the fixed escape set and its decoding.
func TestLexStringEscapes(t *testing.T) {
	toks, err := Lex(strings.NewReader(`"a\nb\tc\"d"` + "\n"))
	if err != nil {
		t.Fatalf("failed to lex: %v", err)
	}
	if len(toks) == 0 || toks[0].Kind != StringToken {
		t.Fatalf("expected a string token, got %v", toks)
	}
	want := "a\nb\tc\"d"
	if toks[0].Text != want {
		t.Errorf("wrong decoded string: wanted %q, got %q", want, toks[0].Text)
	}
}

// TestLexErrors tests that certain illegal phrasings result in a
// ParsingError.
func TestLexErrors(t *testing.T) {
	cases := map[string]string{
		"UnterminatedString": `"abcd`,
		"NewlineInString":    "\"abcd\n\"",
		"BadEscape":          `"a\qb"`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Lex(strings.NewReader(text))
			if err == nil {
				t.Errorf("%q failed to cause an error", text)
			}
		})
	}
}
