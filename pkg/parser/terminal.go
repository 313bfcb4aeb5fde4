package parser

import (
	"bantamc/pkg/lexer"
)

// at checks if the current token has the given type
func (p *Parser) at(t lexer.TokenType) bool {
	return p.current().Type == t
}

// match consumes the current token if it has the given type
func (p *Parser) match(t lexer.TokenType) bool {
	if !p.at(t) {
		return false
	}

	p.advance()
	return true
}

// expect consumes a token of the given type or records an error
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.match(t) {
		return true
	}

	p.handleTerminalError(t)
	return false
}

// expectID consumes an identifier and returns its name
func (p *Parser) expectID() (string, bool) {
	tok := p.current()
	if !p.expect(lexer.ID) {
		return "", false
	}

	return tok.Lexeme, true
}

// skipTo discards tokens until one of type t or EOF is reached
func (p *Parser) skipTo(t lexer.TokenType) {
	for !p.at(t) && !p.at(lexer.EOF) {
		p.advance()
	}
}

// synchronize recovers after an error by skipping past the next ';' or up
// to the next '}' that closes the current construct.
func (p *Parser) synchronize() {
	defer func() { p.panicking = false }()

	for !p.at(lexer.EOF) {
		switch p.current().Type {
		case lexer.RBRACE, lexer.CLASS:
			return
		case lexer.SEMICOLON:
			p.advance()
			return
		}
		p.advance()
	}
}
