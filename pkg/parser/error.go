package parser

import (
	"bantamc/pkg/color"
	"bantamc/pkg/lexer"
	"fmt"
)

// SyntaxError is a lexical or syntax error found in one input file
type SyntaxError struct {
	Pos     lexer.Position
	Message string
}

// Error returns the message prefixed with the line and column
func (e SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Render renders the error for the terminal, prefixed with the file it came from
func (e SyntaxError) Render(filename string) string {
	return color.ErrorWithPosition(filename, e.Pos.Line, e.Pos.Column, e.Message)
}

// handleTerminalError is called when the current token is not the one the grammar requires.
// It only reports an error. It does NOT advance tokens.
func (p *Parser) handleTerminalError(expected lexer.TokenType) {
	// Heuristic: if we expected ';' but current token clearly starts a new statement,
	// closes a block, or ends input, report "Missing semicolon".
	if expected == lexer.SEMICOLON && p.isStatementBoundary(p.current().Type) {
		p.addError("Missing semicolon")
		return
	}

	p.addError(p.categorizeError(expected, p.current()))
}

// handleNonTerminalError is called when no alternative of a grammar rule starts with the current token.
// It only reports an error. It does NOT advance tokens.
func (p *Parser) handleNonTerminalError(expected string) {
	current := p.current()

	switch {
	// A call like f(a, b followed by a boundary most likely lost its ')'.
	case expected == "ArgList" && (current.Type == lexer.SEMICOLON || p.isStatementBoundary(current.Type)):
		p.addError("Missing closing parenthesis")

	case expected == "Expr" && (current.Type == lexer.SEMICOLON || current.Type == lexer.RPAREN || current.Type == lexer.RSBRACE):
		p.addError("Missing expression")

	case expected == "Expr" && current.Type.GetCategory() == lexer.KEYWORD:
		p.addError(fmt.Sprintf("Unexpected keyword '%s' in expression", current.Lexeme))

	case current.Type == lexer.EOF:
		p.addError("Unexpected end of input")

	default:
		p.addError(fmt.Sprintf("Syntax error at '%s'", current.Lexeme))
	}
}

// addError records an error at the current token
func (p *Parser) addError(msg string) {
	p.addErrorAt(p.current().Pos, msg)
}

// addErrorAt records an error at pos unless the parser is still recovering from an earlier one
func (p *Parser) addErrorAt(pos lexer.Position, msg string) {
	if p.panicking {
		return
	}

	p.panicking = true
	p.errors = append(p.errors, SyntaxError{Pos: pos, Message: msg})
}

// isStatementBoundary checks if a token type indicates the start of a new statement or block boundary
func (p *Parser) isStatementBoundary(t lexer.TokenType) bool {
	switch t {
	case lexer.IF, lexer.WHILE, lexer.FOR, lexer.RETURN, lexer.BREAK, lexer.ELSE, lexer.RBRACE, lexer.CLASS, lexer.EOF:
		return true
	default:
		return false
	}
}

// categorizeError provides a specific error message based on expected symbol and current token
func (p *Parser) categorizeError(expected lexer.TokenType, current lexer.Token) string {
	// Delimiters
	switch expected {
	case lexer.RPAREN:
		return "Missing closing parenthesis"
	case lexer.RSBRACE:
		return "Missing closing bracket"
	case lexer.RBRACE:
		if enclosing, ok := p.contexts.Peek(); ok {
			return "Missing closing brace for " + enclosing
		}
		return "Missing closing brace"
	case lexer.LBRACE:
		return "Missing opening brace"
	case lexer.SEMICOLON:
		return "Missing semicolon"
	case lexer.ASSIGN:
		return "Missing assignment operator"
	case lexer.LPAREN:
		if current.Type == lexer.LBRACE {
			return "Wrong bracket type - expected parenthesis"
		}
		return "Missing opening parenthesis"
	}

	// Identifiers
	if expected == lexer.ID {
		switch {
		case current.Type.GetCategory() == lexer.KEYWORD:
			return fmt.Sprintf("Cannot use reserved keyword '%s' as identifier", current.Lexeme)
		case current.Type == lexer.ASSIGN || current.Type == lexer.SEMICOLON:
			return "Missing identifier"
		default:
			return "Expected identifier"
		}
	}

	if current.Type == lexer.EOF {
		return fmt.Sprintf("Expected '%s' but reached end of input", expected)
	}

	return fmt.Sprintf("Expected '%s' but found '%s'", expected, current.Lexeme)
}
