package parser

import (
	"bantamc/pkg/ast"
	"bantamc/pkg/lexer"
)

// parseBlockBody parses '{' Stmt* '}'
func (p *Parser) parseBlockBody() ([]ast.Stmt, bool) {
	if !p.expect(lexer.LBRACE) {
		return nil, false
	}

	stmts := []ast.Stmt{}
	for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) && !p.at(lexer.CLASS) {
		stmt := p.parseStmt()
		if stmt == nil {
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}

	return stmts, p.expect(lexer.RBRACE)
}

func (p *Parser) parseStmt() ast.Stmt {
	tok := p.current()

	switch tok.Type {
	case lexer.LBRACE:
		p.contexts.Push("block")
		defer p.contexts.Pop()

		stmts, ok := p.parseBlockBody()
		if !ok {
			return nil
		}
		return &ast.BlockStmt{Stmts: stmts, Pos: tok.Pos}

	case lexer.IF:
		return p.parseIf()

	case lexer.WHILE:
		p.advance()
		cond := p.parseCondition()
		if cond == nil {
			return nil
		}

		p.contexts.Push("while")
		defer p.contexts.Pop()

		body := p.parseStmt()
		if body == nil {
			return nil
		}
		return &ast.WhileStmt{Cond: cond, Body: body, Pos: tok.Pos}

	case lexer.FOR:
		return p.parseFor()

	case lexer.BREAK:
		p.advance()
		if !p.expect(lexer.SEMICOLON) {
			return nil
		}
		return &ast.BreakStmt{Pos: tok.Pos}

	case lexer.RETURN:
		p.advance()
		stmt := &ast.ReturnStmt{Pos: tok.Pos}
		if !p.at(lexer.SEMICOLON) {
			if stmt.Value = p.parseExpr(); stmt.Value == nil {
				return nil
			}
		}
		if !p.expect(lexer.SEMICOLON) {
			return nil
		}
		return stmt
	}

	if p.isDeclaration() {
		return p.parseDeclaration()
	}

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}
	if !isStatementExpr(expr) {
		p.addErrorAt(tok.Pos, "Not a statement")
		return nil
	}
	if !p.expect(lexer.SEMICOLON) {
		return nil
	}

	return &ast.ExprStmt{Expr: expr}
}

func (p *Parser) parseIf() ast.Stmt {
	tok := p.advance()

	cond := p.parseCondition()
	if cond == nil {
		return nil
	}

	then := p.parseStmt()
	if then == nil {
		return nil
	}

	stmt := &ast.IfStmt{Cond: cond, Then: then, Pos: tok.Pos}
	if p.match(lexer.ELSE) {
		if stmt.Else = p.parseStmt(); stmt.Else == nil {
			return nil
		}
	}

	return stmt
}

func (p *Parser) parseFor() ast.Stmt {
	tok := p.advance()
	stmt := &ast.ForStmt{Pos: tok.Pos}

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	// Each of the three clauses is optional.
	clauses := []*ast.Expr{&stmt.Init, &stmt.Cond, &stmt.Update}
	terminators := []lexer.TokenType{lexer.SEMICOLON, lexer.SEMICOLON, lexer.RPAREN}
	for i, clause := range clauses {
		if !p.at(terminators[i]) {
			if *clause = p.parseExpr(); *clause == nil {
				return nil
			}
		}
		if !p.expect(terminators[i]) {
			return nil
		}
	}

	p.contexts.Push("for")
	defer p.contexts.Pop()

	if stmt.Body = p.parseStmt(); stmt.Body == nil {
		return nil
	}

	return stmt
}

// parseCondition parses '(' Expr ')'
func (p *Parser) parseCondition() ast.Expr {
	if !p.expect(lexer.LPAREN) {
		return nil
	}

	if p.at(lexer.RPAREN) {
		p.addError("Empty condition")
		return nil
	}

	cond := p.parseExpr()
	if cond == nil || !p.expect(lexer.RPAREN) {
		return nil
	}

	return cond
}

// isDeclaration reports whether the cursor starts "Type id", which is the
// only way a local declaration can be told apart from an expression.
func (p *Parser) isDeclaration() bool {
	if !p.at(lexer.ID) {
		return false
	}

	next := p.peek(1).Type
	if next == lexer.ID {
		return true
	}

	return next == lexer.LSBRACE &&
		p.peek(2).Type == lexer.RSBRACE &&
		p.peek(3).Type == lexer.ID
}

// parseDeclaration parses Type id '=' Expr ';'. Locals must be initialized.
func (p *Parser) parseDeclaration() ast.Stmt {
	pos := p.current().Pos

	typ, ok := p.parseType()
	if !ok {
		return nil
	}
	name, ok := p.expectID()
	if !ok {
		return nil
	}
	if !p.expect(lexer.ASSIGN) {
		return nil
	}

	init := p.parseExpr()
	if init == nil || !p.expect(lexer.SEMICOLON) {
		return nil
	}

	return &ast.DeclStmt{Type: typ, Name: name, Init: init, Pos: pos}
}

// isStatementExpr reports whether expr may stand alone as a statement
func isStatementExpr(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.AssignExpr, *ast.DispatchExpr, *ast.NewExpr:
		return true
	case *ast.UnaryExpr:
		return e.Op == lexer.INCR || e.Op == lexer.DECR
	default:
		return false
	}
}
