package lexer

import (
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// MaxStringLength is the longest string constant the language accepts.
const MaxStringLength = 5000

type Lexer struct {
	input        string // input string to be tokenized
	length       int    // length of the input string
	position     int    // current position in the input string
	line         int    // current line number for error reporting
	column       int    // current column number for error reporting
	currentToken Token  // last token returned
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:        s,
		length:       len(s),
		position:     0,
		line:         1,
		column:       1,
		currentToken: Token{},
	}
}

// Get the next token from the input
func (l *Lexer) NextToken() Token {
	if tok, ok := l.skipWhitespace(); !ok {
		l.currentToken = tok
		return tok
	}

	start := l.currentPosition()

	// End of input
	if l.position >= l.length {
		tok := NewToken(EOF, "", "", start)
		l.currentToken = tok
		return tok
	}

	if l.input[l.position] == '"' {
		tok := l.lexString()
		l.currentToken = tok
		return tok
	}

	// Regex match the first token it sees from the remaining input from current position to the end
	remaining := l.input[l.position:]
	tokenType, lexeme, matched := MatchToken(remaining)

	if !matched {
		char := string(l.input[l.position])
		l.advance(1)

		tok := NewToken(ILLEGAL, char, "illegal character '"+char+"'", start)
		l.currentToken = tok
		return tok
	}

	l.advance(len(lexeme))

	var tok Token
	switch tokenType {
	case INT:
		if err := checkIntConstant(lexeme); err != "" {
			tok = NewToken(ILLEGAL, lexeme, err, start)
		} else {
			tok = NewToken(INT, lexeme, lexeme, start)
		}
	case TRUE, FALSE:
		tok = NewToken(tokenType, lexeme, lexeme, start)
	default:
		tok = NewToken(tokenType, lexeme, "", start)
	}

	l.currentToken = tok
	return tok
}

// View next token without advancing the position
func (l *Lexer) Peek() Token {
	// save state
	cpos := l.position
	cline := l.line
	ccol := l.column
	ctok := l.currentToken

	token := l.NextToken()

	// restore state
	l.position = cpos
	l.line = cline
	l.column = ccol
	l.currentToken = ctok

	return token
}

// Tokenize drains the lexer, returning every token up to and including EOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// skipWhitespace skips whitespace and comments. It reports false together
// with an ILLEGAL token when a block comment runs off the end of the input.
func (l *Lexer) skipWhitespace() (Token, bool) {
	for l.position < l.length {
		ch := l.input[l.position]

		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f':
			l.advance(1)

		case strings.HasPrefix(l.input[l.position:], "//"):
			for l.position < l.length && l.input[l.position] != '\n' {
				l.advance(1)
			}

		case strings.HasPrefix(l.input[l.position:], "/*"):
			start := l.currentPosition()
			end := strings.Index(l.input[l.position+2:], "*/")
			if end < 0 {
				lexeme := l.input[l.position:]
				l.advance(len(lexeme))
				return NewToken(ILLEGAL, lexeme, "unterminated comment", start), false
			}
			l.advance(end + 4)

		default:
			return Token{}, true
		}
	}

	return Token{}, true
}

// lexString scans a string constant starting at the opening quote. Only the
// first problem found is reported.
func (l *Lexer) lexString() Token {
	start := l.currentPosition()
	begin := l.position
	l.advance(1)

	var (
		value strings.Builder
		msg   string
	)

	for {
		if l.position >= l.length || l.input[l.position] == '\n' {
			return NewToken(ILLEGAL, l.input[begin:l.position], "unterminated string constant", start)
		}

		ch := l.input[l.position]
		if ch == '"' {
			l.advance(1)
			break
		}

		if ch == '\\' && l.position+1 < l.length {
			esc := l.input[l.position+1]
			switch esc {
			case 'n':
				value.WriteByte('\n')
			case 't':
				value.WriteByte('\t')
			case 'f':
				value.WriteByte('\f')
			case '"':
				value.WriteByte('"')
			case '\\':
				value.WriteByte('\\')
			default:
				if msg == "" {
					msg = "illegal escape sequence '\\" + string(esc) + "'"
				}
			}
			l.advance(2)
			continue
		}

		value.WriteByte(ch)
		l.advance(1)
	}

	lexeme := l.input[begin:l.position]
	if msg == "" && value.Len() > MaxStringLength {
		msg = "string constant exceeds " + strconv.Itoa(MaxStringLength) + " characters"
	}
	if msg != "" {
		return NewToken(ILLEGAL, lexeme, msg, start)
	}

	return NewToken(STRING, lexeme, value.String(), start)
}

// Advance the lexer position by n characters
func (l *Lexer) advance(n int) {
	for range n {
		if l.position >= l.length {
			break
		}

		if l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		l.position++
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

// checkIntConstant returns an error message when lexeme does not fit a 32-bit int.
func checkIntConstant(lexeme string) string {
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err == nil {
		_, err = safecast.Conv[int32](v)
	}
	if err != nil {
		return "integer constant too large: " + lexeme
	}

	return ""
}
