package parser

import (
	"bantamc/pkg/ast"
	"bantamc/pkg/lexer"
	"bantamc/pkg/parser/stack"
)

type Parser struct {
	tokens    []lexer.Token        // buffered token stream, ILLEGAL tokens removed
	pos       int                  // index of the current token
	filename  string               // recorded on every parsed class
	contexts  *stack.Stack[string] // enclosing constructs, innermost on top
	errors    []SyntaxError        // list of errors
	panicking bool                 // suppresses cascading errors until resync
}

// NewParser creates a parser over the whole token stream of l. Lexical
// errors are recorded straight away.
func NewParser(l *lexer.Lexer, filename string) *Parser {
	p := &Parser{
		filename: filename,
		contexts: stack.NewStack[string](),
		errors:   []SyntaxError{},
	}

	for _, tok := range l.Tokenize() {
		if tok.Type == lexer.ILLEGAL {
			p.errors = append(p.errors, SyntaxError{Pos: tok.Pos, Message: tok.Literal})
			continue
		}
		p.tokens = append(p.tokens, tok)
	}

	return p
}

// Parse parses every class in the input. The result is usable even when
// errors were recorded, but should not be handed to later phases then.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{}

	if p.at(lexer.EOF) {
		p.addError("Expected class declaration")
		return program
	}

	for !p.at(lexer.EOF) {
		if !p.at(lexer.CLASS) {
			p.addError("Expected class declaration")
			p.skipTo(lexer.CLASS)
			continue
		}

		if class := p.parseClass(); class != nil {
			program.Classes = append(program.Classes, class)
		}
		p.panicking = false
	}

	return program
}

func (p *Parser) parseClass() *ast.Class {
	class := &ast.Class{Filename: p.filename, Pos: p.current().Pos}
	p.advance() // class

	name, ok := p.expectID()
	if !ok {
		p.skipTo(lexer.CLASS)
		return nil
	}
	class.Name = name

	if p.match(lexer.EXTENDS) {
		if class.Parent, ok = p.expectID(); !ok {
			p.skipTo(lexer.CLASS)
			return nil
		}
	}

	if !p.expect(lexer.LBRACE) {
		p.skipTo(lexer.CLASS)
		return nil
	}

	p.contexts.Push("class " + name)
	defer p.contexts.Pop()

	for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) && !p.at(lexer.CLASS) {
		member := p.parseMember()
		if member == nil {
			p.synchronize()
			continue
		}
		class.Members = append(class.Members, member)
	}

	p.expect(lexer.RBRACE)

	return class
}

func (p *Parser) parseMember() ast.Member {
	pos := p.current().Pos

	typ, ok := p.parseType()
	if !ok {
		return nil
	}

	name, ok := p.expectID()
	if !ok {
		return nil
	}

	switch {
	case p.match(lexer.SEMICOLON):
		return &ast.Field{Type: typ, Name: name, Pos: pos}

	case p.match(lexer.ASSIGN):
		init := p.parseExpr()
		if init == nil || !p.expect(lexer.SEMICOLON) {
			return nil
		}
		return &ast.Field{Type: typ, Name: name, Init: init, Pos: pos}

	case p.match(lexer.LPAREN):
		method := &ast.Method{ReturnType: typ, Name: name, Pos: pos}
		if method.Formals, ok = p.parseFormals(); !ok {
			return nil
		}

		p.contexts.Push("method " + name)
		defer p.contexts.Pop()

		if method.Body, ok = p.parseBlockBody(); !ok {
			return nil
		}
		return method

	default:
		p.addError("Expected ';', '=' or '(' after member name")
		return nil
	}
}

// parseFormals parses a parameter list up to and including the closing parenthesis.
func (p *Parser) parseFormals() ([]*ast.Formal, bool) {
	formals := []*ast.Formal{}
	if p.match(lexer.RPAREN) {
		return formals, true
	}

	for {
		pos := p.current().Pos
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		name, ok := p.expectID()
		if !ok {
			return nil, false
		}
		formals = append(formals, &ast.Formal{Type: typ, Name: name, Pos: pos})

		if !p.match(lexer.COMMA) {
			break
		}
	}

	return formals, p.expect(lexer.RPAREN)
}

// parseType parses a class name, optionally followed by [] for an array type.
func (p *Parser) parseType() (string, bool) {
	name, ok := p.expectID()
	if !ok {
		return "", false
	}

	if p.at(lexer.LSBRACE) && p.peek(1).Type == lexer.RSBRACE {
		p.advance()
		p.advance()
		return name + "[]", true
	}

	return name, true
}

// Errors returns the list of lexical and syntax errors
func (p *Parser) Errors() []SyntaxError {
	return p.errors
}

// current returns the token under the cursor
func (p *Parser) current() lexer.Token {
	return p.peek(0)
}

// peek looks n tokens ahead of the cursor. Past the end it keeps returning EOF.
func (p *Parser) peek(n int) lexer.Token {
	if p.pos+n < len(p.tokens) {
		return p.tokens[p.pos+n]
	}

	return p.tokens[len(p.tokens)-1]
}

// advance moves to the next token, never past EOF
func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}

	return tok
}
