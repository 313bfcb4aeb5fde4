package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual string from source code
	Literal string    // Literal value (if applicable), error message for ILLEGAL tokens
	Pos     Position  // Position in source code
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     pos,
	}
}

const (
	NONE TokenCategory = iota
	KEYWORD
	IDENTIFIER
	LITERAL
	OPERATOR
	DELIMITER
)

const (
	EOF TokenType = iota // End of file

	CLASS      // class
	EXTENDS    // extends
	IF         // if
	ELSE       // else
	WHILE      // while
	FOR        // for
	BREAK      // break
	NEW        // new
	RETURN     // return
	INSTANCEOF // instanceof
	TRUE       // true
	FALSE      // false

	ID     // identifier
	INT    // integer constant
	STRING // string constant

	ASSIGN // =
	PLUS   // +
	MINUS  // -
	MULT   // *
	DIV    // /
	MOD    // %
	INCR   // ++
	DECR   // --
	LT     // <
	GT     // >
	LE     // <=
	GE     // >=
	EQ     // ==
	NE     // !=
	AND    // &&
	OR     // ||
	NOT    // !

	SEMICOLON // ;
	COMMA     // ,
	DOT       // .
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LSBRACE   // [
	RSBRACE   // ]

	ILLEGAL // illegal token
)

// Keywords maps each reserved word to its token type
var Keywords = map[string]TokenType{
	"class":      CLASS,
	"extends":    EXTENDS,
	"if":         IF,
	"else":       ELSE,
	"while":      WHILE,
	"for":        FOR,
	"break":      BREAK,
	"new":        NEW,
	"return":     RETURN,
	"instanceof": INSTANCEOF,
	"true":       TRUE,
	"false":      FALSE,
}

var tokenNames = map[TokenType]string{
	CLASS:      "class",
	EXTENDS:    "extends",
	IF:         "if",
	ELSE:       "else",
	WHILE:      "while",
	FOR:        "for",
	BREAK:      "break",
	NEW:        "new",
	RETURN:     "return",
	INSTANCEOF: "instanceof",
	TRUE:       "true",
	FALSE:      "false",
	ID:         "identifier",
	INT:        "integer",
	STRING:     "string",
	ASSIGN:     "=",
	PLUS:       "+",
	MINUS:      "-",
	MULT:       "*",
	DIV:        "/",
	MOD:        "%",
	INCR:       "++",
	DECR:       "--",
	LT:         "<",
	GT:         ">",
	LE:         "<=",
	GE:         ">=",
	EQ:         "==",
	NE:         "!=",
	AND:        "&&",
	OR:         "||",
	NOT:        "!",
	SEMICOLON:  ";",
	COMMA:      ",",
	DOT:        ".",
	LPAREN:     "(",
	RPAREN:     ")",
	LBRACE:     "{",
	RBRACE:     "}",
	LSBRACE:    "[",
	RSBRACE:    "]",
	EOF:        "end of file",
	ILLEGAL:    "illegal token",
}

// String returns a string representation of the Token
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("T_{%s, %v, nil, %s}",
			t.Type, t.Lexeme, t.Pos.String())
	}

	return fmt.Sprintf("T_{%s, %v, %q, %s}",
		t.Type, t.Lexeme, t.Literal, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := tokenNames[t]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch t {
	case CLASS, EXTENDS, IF, ELSE, WHILE, FOR, BREAK, NEW, RETURN, INSTANCEOF, TRUE, FALSE:
		return KEYWORD
	case ID:
		return IDENTIFIER
	case INT, STRING:
		return LITERAL
	case ASSIGN, PLUS, MINUS, MULT, DIV, MOD, INCR, DECR, LT, GT, LE, GE, EQ, NE, AND, OR, NOT:
		return OPERATOR
	case SEMICOLON, COMMA, DOT, LPAREN, RPAREN, LBRACE, RBRACE, LSBRACE, RSBRACE:
		return DELIMITER
	default:
		return NONE
	}
}

// IsKeyword checks if the given identifier is a keyword and returns its TokenType if it is
func IsKeyword(identifier string) (TokenType, bool) {
	tokenType, ok := Keywords[identifier]
	return tokenType, ok
}
