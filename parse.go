package mython

import (
	"github.com/zephyrtronium/contains"
)

// nameIDs assigns a stable uintptr identity to each distinct string seen,
// so that string keys can be tracked with a contains.Set the way the
// teacher tracks *Object ancestry with one (by UniqueID).
type nameIDs struct {
	ids  map[string]uintptr
	next uintptr
}

func newNameIDs() *nameIDs {
	return &nameIDs{ids: make(map[string]uintptr)}
}

func (n *nameIDs) id(name string) uintptr {
	if id, ok := n.ids[name]; ok {
		return id
	}
	n.next++
	n.ids[name] = n.next
	return n.next
}

// Parser lowers a token sequence into an executable AST, realizing §4.2.
type Parser struct {
	toks []Token
	pos  int

	names    *nameIDs
	classes  contains.Set    // declared class names, for duplicate-declaration detection
	declared map[string]bool // declared class names, for parent-reference existence checks
}

// Parse consumes the full token sequence produced by Lex and returns the
// root AST node: a Compound of top-level statements.
func Parse(toks []Token) (Node, error) {
	p := &Parser{
		toks:     toks,
		names:    newNameIDs(),
		classes:  contains.Set{},
		declared: make(map[string]bool),
	}
	return p.parseProgram()
}

func (p *Parser) cur() Token {
	return p.toks[p.pos]
}

func (p *Parser) peek(ahead int) Token {
	i := p.pos + ahead
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) check(kind TokenKind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) checkChar(ch byte) bool {
	t := p.cur()
	return t.Kind == CharToken && t.Char == ch
}

func (p *Parser) fail(format string, args ...interface{}) error {
	return newParsingError(p.cur().Line, format, args...)
}

func (p *Parser) expect(kind TokenKind) (Token, error) {
	if !p.check(kind) {
		return Token{}, p.fail("expected %v, got %v", kind, p.cur())
	}
	return p.advance(), nil
}

func (p *Parser) expectChar(ch byte) error {
	if !p.checkChar(ch) {
		return p.fail("expected %q, got %v", string(ch), p.cur())
	}
	p.advance()
	return nil
}

// parseProgram implements `program := statement* EOF`.
func (p *Parser) parseProgram() (Node, error) {
	var stmts []Node
	for !p.check(EofToken) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.expect(EofToken); err != nil {
		return nil, err
	}
	return &Compound{Stmts: stmts}, nil
}

// parseStatement implements:
//
//	statement := class_def | simple_stmt NEWLINE | if_stmt
func (p *Parser) parseStatement() (Node, error) {
	switch {
	case p.check(ClassToken):
		return p.parseClassDef()
	case p.check(IfToken):
		return p.parseIfStmt()
	default:
		stmt, err := p.parseSimpleStmt()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(NewlineToken); err != nil {
			return nil, err
		}
		return stmt, nil
	}
}

// parseSimpleStmt implements:
//
//	simple_stmt := assignment | return_stmt | print_stmt | expression
func (p *Parser) parseSimpleStmt() (Node, error) {
	switch {
	case p.check(ReturnToken):
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &Return{Expr: expr}, nil
	case p.check(PrintToken):
		return p.parsePrintStmt()
	case p.check(IdToken) && p.lookaheadIsAssignment():
		return p.parseAssignment()
	default:
		return p.parseExpr()
	}
}

func (p *Parser) parsePrintStmt() (Node, error) {
	p.advance() // 'print'
	if p.check(NewlineToken) {
		return &Print{}, nil
	}
	exprs, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	return &Print{Exprs: exprs}, nil
}

func (p *Parser) parseExprList() ([]Node, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	exprs := []Node{first}
	for p.checkChar(',') {
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// parseAssignment implements:
//
//	assignment := lvalue '=' expression
//	lvalue      := Id ('.' Id)*          // last '.' Id = field store
func (p *Parser) parseAssignment() (Node, error) {
	chain, err := p.parseDottedChain()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar('='); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if len(chain) == 1 {
		return &Assignment{Target: chain[0], Expr: expr}, nil
	}
	return &FieldAssignment{
		ObjectChain: chain[:len(chain)-1],
		Field:       chain[len(chain)-1],
		Expr:        expr,
	}, nil
}

// lookaheadIsAssignment scans forward without consuming to distinguish an
// assignment statement from a bare expression statement, per §4.2's
// disambiguation rule: one token of lookahead past the dotted chain.
func (p *Parser) lookaheadIsAssignment() bool {
	i := p.pos
	if p.toks[i].Kind != IdToken {
		return false
	}
	i++
	for i+1 < len(p.toks) && p.toks[i].Kind == CharToken && p.toks[i].Char == '.' && p.toks[i+1].Kind == IdToken {
		i += 2
	}
	return i < len(p.toks) && p.toks[i].Kind == CharToken && p.toks[i].Char == '='
}

func (p *Parser) parseDottedChain() ([]string, error) {
	first, err := p.expect(IdToken)
	if err != nil {
		return nil, err
	}
	chain := []string{first.Text}
	for p.checkChar('.') {
		p.advance()
		t, err := p.expect(IdToken)
		if err != nil {
			return nil, err
		}
		chain = append(chain, t.Text)
	}
	return chain, nil
}

// parseClassDef implements:
//
//	class_def := 'class' Id ('(' Id ')')? ':' NEWLINE INDENT method+ DEDENT
func (p *Parser) parseClassDef() (Node, error) {
	p.advance() // 'class'
	nameTok, err := p.expect(IdToken)
	if err != nil {
		return nil, err
	}
	name := nameTok.Text
	if !p.classes.Add(p.names.id(name)) {
		return nil, p.fail("class %q already declared", name)
	}

	parentName := ""
	if p.checkChar('(') {
		p.advance()
		parentTok, err := p.expect(IdToken)
		if err != nil {
			return nil, err
		}
		parentName = parentTok.Text
		if !p.declared[parentName] {
			return nil, p.fail("base class %q is not declared", parentName)
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expect(NewlineToken); err != nil {
		return nil, err
	}
	if _, err := p.expect(IndentToken); err != nil {
		return nil, err
	}

	methodNames := contains.Set{}
	var methods []*Method
	for p.check(DefToken) {
		m, err := p.parseMethod()
		if err != nil {
			return nil, err
		}
		if !methodNames.Add(p.names.id(name + "." + m.Name)) {
			return nil, p.fail("class %q already has a method named %q", name, m.Name)
		}
		methods = append(methods, m)
	}
	if len(methods) == 0 {
		return nil, p.fail("class %q has no methods", name)
	}
	// End of input also closes the class body (see parseSuite).
	if !p.check(EofToken) {
		if _, err := p.expect(DedentToken); err != nil {
			return nil, err
		}
	}
	p.declared[name] = true
	return &ClassDef{Name: name, ParentName: parentName, Methods: methods}, nil
}

// parseMethod implements:
//
//	method := 'def' Id '(' params? ')' ':' suite
//	params  := Id (',' Id)*
func (p *Parser) parseMethod() (*Method, error) {
	p.advance() // 'def'
	nameTok, err := p.expect(IdToken)
	if err != nil {
		return nil, err
	}
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var params []string
	if !p.checkChar(')') {
		t, err := p.expect(IdToken)
		if err != nil {
			return nil, err
		}
		params = append(params, t.Text)
		for p.checkChar(',') {
			p.advance()
			t, err := p.expect(IdToken)
			if err != nil {
				return nil, err
			}
			params = append(params, t.Text)
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return &Method{Name: nameTok.Text, FormalParams: params, Body: body}, nil
}

// parseSuite implements `suite := NEWLINE INDENT statement+ DEDENT`. The
// lexer does not close outstanding indentation at end of input, so EOF
// also ends a suite; it is left unconsumed for the enclosing rules.
func (p *Parser) parseSuite() (Node, error) {
	if _, err := p.expect(NewlineToken); err != nil {
		return nil, err
	}
	if _, err := p.expect(IndentToken); err != nil {
		return nil, err
	}
	var stmts []Node
	for !p.check(DedentToken) && !p.check(EofToken) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if p.check(DedentToken) {
		p.advance()
	}
	return &Compound{Stmts: stmts}, nil
}

// parseIfStmt implements:
//
//	if_stmt := 'if' expression ':' suite ('else' ':' suite)?
func (p *Parser) parseIfStmt() (Node, error) {
	p.advance() // 'if'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	thenBody, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	var elseBody Node
	if p.check(ElseToken) {
		p.advance()
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseBody, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return &IfElse{Cond: cond, Then: thenBody, Else: elseBody}, nil
}

// parseExpr implements `expression := or_expr`, the top of the
// precedence cascade: or < and < not < comparisons < + − < * / <
// unary − < atom.
func (p *Parser) parseExpr() (Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.check(OrToken) {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.check(AndToken) {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (Node, error) {
	if p.check(NotToken) {
		p.advance()
		e, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &Not{Expr: e}, nil
	}
	return p.parseComparison()
}

// parseComparison implements non-chaining comparisons: at most one
// operator per expression.
func (p *Parser) parseComparison() (Node, error) {
	left, err := p.parseAddExpr()
	if err != nil {
		return nil, err
	}
	op, ok := p.matchCompareOp()
	if !ok {
		return left, nil
	}
	right, err := p.parseAddExpr()
	if err != nil {
		return nil, err
	}
	return &Comparison{Op: op, Left: left, Right: right}, nil
}

func (p *Parser) matchCompareOp() (CompareOp, bool) {
	switch {
	case p.check(EqToken):
		p.advance()
		return CmpEq, true
	case p.check(NotEqToken):
		p.advance()
		return CmpNotEq, true
	case p.check(LessOrEqToken):
		p.advance()
		return CmpLessOrEq, true
	case p.check(GreaterOrEqToken):
		p.advance()
		return CmpGreaterOrEq, true
	case p.checkChar('<'):
		p.advance()
		return CmpLess, true
	case p.checkChar('>'):
		p.advance()
		return CmpGreater, true
	}
	return 0, false
}

func (p *Parser) parseAddExpr() (Node, error) {
	left, err := p.parseMulExpr()
	if err != nil {
		return nil, err
	}
	for p.checkChar('+') || p.checkChar('-') {
		op := p.cur().Char
		p.advance()
		right, err := p.parseMulExpr()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMulExpr() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.checkChar('*') || p.checkChar('/') {
		op := p.cur().Char
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (Node, error) {
	if p.checkChar('-') {
		p.advance()
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryNeg{Expr: e}, nil
	}
	return p.parsePrimary()
}

// parsePrimary implements:
//
//	primary := Number | String | True | False | None
//	         | Id
//	         | Id ('.' Id)* '(' args? ')'     // method / constructor call
//	         | '(' expression ')'
func (p *Parser) parsePrimary() (Node, error) {
	switch {
	case p.check(NumberToken):
		t := p.advance()
		return &NumberLiteral{Val: t.Num}, nil
	case p.check(StringToken):
		t := p.advance()
		return &StringLiteral{Val: t.Text}, nil
	case p.check(TrueToken):
		p.advance()
		return &BoolLiteral{Val: true}, nil
	case p.check(FalseToken):
		p.advance()
		return &BoolLiteral{Val: false}, nil
	case p.check(NoneToken):
		p.advance()
		return &NoneLiteral{}, nil
	case p.check(IdToken):
		chain, err := p.parseDottedChain()
		if err != nil {
			return nil, err
		}
		if p.checkChar('(') {
			p.advance()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			if len(chain) == 1 {
				return &NewInstance{ClassName: chain[0], Args: args}, nil
			}
			return &MethodCall{ObjectChain: chain[:len(chain)-1], Method: chain[len(chain)-1], Args: args}, nil
		}
		return &VariableValue{Chain: chain}, nil
	case p.checkChar('('):
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, p.fail("unexpected token %v", p.cur())
}

func (p *Parser) parseArgs() ([]Node, error) {
	if p.checkChar(')') {
		return nil, nil
	}
	return p.parseExprList()
}
