package lexer

import (
	"regexp"
)

// Token regex patterns. Keywords are matched as identifiers and then looked up in Keywords.
var tokenRegexes = map[TokenType]*regexp.Regexp{
	INCR: regexp.MustCompile(`^\+\+`),
	DECR: regexp.MustCompile(`^--`),
	LE:   regexp.MustCompile(`^<=`),
	GE:   regexp.MustCompile(`^>=`),
	EQ:   regexp.MustCompile(`^==`),
	NE:   regexp.MustCompile(`^!=`),
	AND:  regexp.MustCompile(`^&&`),
	OR:   regexp.MustCompile(`^\|\|`),

	ASSIGN: regexp.MustCompile(`^=`),
	PLUS:   regexp.MustCompile(`^\+`),
	MINUS:  regexp.MustCompile(`^-`),
	MULT:   regexp.MustCompile(`^\*`),
	DIV:    regexp.MustCompile(`^/`),
	MOD:    regexp.MustCompile(`^%`),
	LT:     regexp.MustCompile(`^<`),
	GT:     regexp.MustCompile(`^>`),
	NOT:    regexp.MustCompile(`^!`),

	SEMICOLON: regexp.MustCompile(`^;`),
	COMMA:     regexp.MustCompile(`^,`),
	DOT:       regexp.MustCompile(`^\.`),
	LPAREN:    regexp.MustCompile(`^\(`),
	RPAREN:    regexp.MustCompile(`^\)`),
	LBRACE:    regexp.MustCompile(`^\{`),
	RBRACE:    regexp.MustCompile(`^\}`),
	LSBRACE:   regexp.MustCompile(`^\[`),
	RSBRACE:   regexp.MustCompile(`^\]`),

	INT: regexp.MustCompile(`^\d+`),
	ID:  regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*`),
}

// Token precedence order for matching (longer patterns first)
var tokenPrecedenceOrder = []TokenType{
	INCR, DECR, LE, GE, EQ, NE, AND, OR,
	ASSIGN, PLUS, MINUS, MULT, DIV, MOD, LT, GT, NOT,
	SEMICOLON, COMMA, DOT, LPAREN, RPAREN, LBRACE, RBRACE, LSBRACE, RSBRACE,
	INT, ID,
}

// MatchToken matches the token at the start of s, which must not begin with
// whitespace or a comment. Identifiers spelled like a keyword come back as that keyword.
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	}

	for _, tokenType := range tokenPrecedenceOrder {
		match := tokenRegexes[tokenType].FindString(s)
		if match == "" {
			continue
		}

		if tokenType == ID {
			if keyword, ok := IsKeyword(match); ok {
				return keyword, match, true
			}
		}

		return tokenType, match, true
	}

	return ILLEGAL, string(s[0]), false
}
