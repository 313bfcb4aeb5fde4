package parser

import (
	"bantamc/pkg/ast"
	"bantamc/pkg/lexer"
	"slices"
)

// Binary operator levels, loosest first. Relational operators share a
// level with instanceof, which is handled separately.
var binaryLevels = [][]lexer.TokenType{
	{lexer.OR},
	{lexer.AND},
	{lexer.EQ, lexer.NE},
	{lexer.LT, lexer.LE, lexer.GT, lexer.GE},
	{lexer.PLUS, lexer.MINUS},
	{lexer.MULT, lexer.DIV, lexer.MOD},
}

const relationalLevel = 3

// parseExpr parses a full expression. Assignment is right associative.
func (p *Parser) parseExpr() ast.Expr {
	left := p.parseBinary(0)
	if left == nil {
		return nil
	}

	if !p.at(lexer.ASSIGN) {
		return left
	}

	tok := p.current()
	switch left.(type) {
	case *ast.VarExpr, *ast.IndexExpr:
	default:
		p.addError("Invalid assignment target")
		return nil
	}
	p.advance()

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	return &ast.AssignExpr{Target: left, Value: value, Pos: tok.Pos}
}

func (p *Parser) parseBinary(level int) ast.Expr {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}

	left := p.parseBinary(level + 1)
	if left == nil {
		return nil
	}

	for {
		tok := p.current()

		if level == relationalLevel && tok.Type == lexer.INSTANCEOF {
			p.advance()
			typ, ok := p.parseType()
			if !ok {
				return nil
			}
			left = &ast.InstanceofExpr{Expr: left, Type: typ, Pos: tok.Pos}
			continue
		}

		if !slices.Contains(binaryLevels[level], tok.Type) {
			return left
		}
		p.advance()

		right := p.parseBinary(level + 1)
		if right == nil {
			return nil
		}
		left = &ast.BinaryExpr{Op: tok.Type, Left: left, Right: right, Pos: tok.Pos}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	tok := p.current()

	switch tok.Type {
	case lexer.MINUS, lexer.NOT, lexer.INCR, lexer.DECR:
		p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{Op: tok.Type, Expr: operand, Pos: tok.Pos}
	}

	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		tok := p.current()

		switch tok.Type {
		case lexer.DOT:
			p.advance()
			name, ok := p.expectID()
			if !ok {
				return nil
			}
			if p.at(lexer.LPAREN) {
				args, ok := p.parseArgs()
				if !ok {
					return nil
				}
				expr = &ast.DispatchExpr{Receiver: expr, Method: name, Args: args, Pos: tok.Pos}
			} else {
				expr = &ast.VarExpr{Ref: expr, Name: name, Pos: tok.Pos}
			}

		case lexer.LSBRACE:
			p.advance()
			index := p.parseExpr()
			if index == nil || !p.expect(lexer.RSBRACE) {
				return nil
			}
			expr = &ast.IndexExpr{Array: expr, Index: index, Pos: tok.Pos}

		case lexer.INCR, lexer.DECR:
			p.advance()
			return &ast.UnaryExpr{Op: tok.Type, Expr: expr, Postfix: true, Pos: tok.Pos}

		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.current()

	switch tok.Type {
	case lexer.INT:
		p.advance()
		return &ast.IntLit{Value: tok.Literal, Pos: tok.Pos}

	case lexer.STRING:
		p.advance()
		return &ast.StringLit{Value: tok.Literal, Pos: tok.Pos}

	case lexer.TRUE, lexer.FALSE:
		p.advance()
		return &ast.BoolLit{Value: tok.Type == lexer.TRUE, Pos: tok.Pos}

	case lexer.NEW:
		return p.parseNew()

	case lexer.LPAREN:
		if p.isCast() {
			return p.parseCast()
		}
		p.advance()
		expr := p.parseExpr()
		if expr == nil || !p.expect(lexer.RPAREN) {
			return nil
		}
		return expr

	case lexer.ID:
		p.advance()
		if p.at(lexer.LPAREN) {
			args, ok := p.parseArgs()
			if !ok {
				return nil
			}
			return &ast.DispatchExpr{Method: tok.Lexeme, Args: args, Pos: tok.Pos}
		}
		return &ast.VarExpr{Name: tok.Lexeme, Pos: tok.Pos}
	}

	p.handleNonTerminalError("Expr")
	return nil
}

// parseNew parses 'new' id '(' ')' or 'new' id '[' Expr ']'
func (p *Parser) parseNew() ast.Expr {
	tok := p.advance()

	typ, ok := p.expectID()
	if !ok {
		return nil
	}

	if p.match(lexer.LSBRACE) {
		size := p.parseExpr()
		if size == nil || !p.expect(lexer.RSBRACE) {
			return nil
		}
		return &ast.NewArrayExpr{Type: typ, Size: size, Pos: tok.Pos}
	}

	if !p.expect(lexer.LPAREN) || !p.expect(lexer.RPAREN) {
		return nil
	}

	return &ast.NewExpr{Type: typ, Pos: tok.Pos}
}

// isCast reports whether the cursor starts '(' Type ')' '('
func (p *Parser) isCast() bool {
	if p.peek(1).Type != lexer.ID {
		return false
	}

	n := 2
	if p.peek(n).Type == lexer.LSBRACE && p.peek(n+1).Type == lexer.RSBRACE {
		n += 2
	}

	return p.peek(n).Type == lexer.RPAREN && p.peek(n+1).Type == lexer.LPAREN
}

// parseCast parses '(' Type ')' '(' Expr ')'
func (p *Parser) parseCast() ast.Expr {
	tok := p.advance()

	typ, ok := p.parseType()
	if !ok || !p.expect(lexer.RPAREN) || !p.expect(lexer.LPAREN) {
		return nil
	}

	expr := p.parseExpr()
	if expr == nil || !p.expect(lexer.RPAREN) {
		return nil
	}

	return &ast.CastExpr{Type: typ, Expr: expr, Pos: tok.Pos}
}

// parseArgs parses '(' [Expr {',' Expr}] ')'
func (p *Parser) parseArgs() ([]ast.Expr, bool) {
	if !p.expect(lexer.LPAREN) {
		return nil, false
	}

	args := []ast.Expr{}
	if p.match(lexer.RPAREN) {
		return args, true
	}

	for {
		arg := p.parseExpr()
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)

		if !p.match(lexer.COMMA) {
			break
		}
	}

	if !p.at(lexer.RPAREN) {
		p.handleNonTerminalError("ArgList")
		return nil, false
	}
	p.advance()

	return args, true
}
