package lexer_test

import (
	"bantamc/pkg/lexer"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegers(t *testing.T) {
	tests := []struct {
		input       string
		expected    lexer.TokenType
		description string
	}{
		{"42", lexer.INT, "integer"},
		{"0", lexer.INT, "zero"},
		{"2147483647", lexer.INT, "largest int"},
		{"2147483648", lexer.ILLEGAL, "one past largest int"},
		{"99999999999999999999999", lexer.ILLEGAL, "overflows int64"},
	}

	for _, test := range tests {
		tok := lexer.NewLexer(test.input).NextToken()
		require.Equal(t, test.expected, tok.Type, test.description)
		require.Equal(t, test.input, tok.Lexeme, test.description)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected lexer.TokenType
		literal  string
	}{
		{`"hello"`, lexer.STRING, "hello"},
		{`""`, lexer.STRING, ""},
		{`"a\tb\n"`, lexer.STRING, "a\tb\n"},
		{`"say \"hi\" \\"`, lexer.STRING, `say "hi" \`},
		{`"bad \q escape"`, lexer.ILLEGAL, `illegal escape sequence '\q'`},
		{`"no end`, lexer.ILLEGAL, "unterminated string constant"},
		{"\"line\nbreak\"", lexer.ILLEGAL, "unterminated string constant"},
	}

	for _, test := range tests {
		tok := lexer.NewLexer(test.input).NextToken()
		require.Equal(t, test.expected, tok.Type, test.input)
		require.Equal(t, test.literal, tok.Literal, test.input)
	}
}

func TestStringTooLong(t *testing.T) {
	input := `"` + strings.Repeat("a", lexer.MaxStringLength+1) + `"`

	tok := lexer.NewLexer(input).NextToken()
	require.Equal(t, lexer.ILLEGAL, tok.Type)
	require.Contains(t, tok.Literal, "exceeds")
}

func TestIllegalCharacter(t *testing.T) {
	mylexer := lexer.NewLexer("a # b")

	require.Equal(t, lexer.ID, mylexer.NextToken().Type)

	tok := mylexer.NextToken()
	require.Equal(t, lexer.ILLEGAL, tok.Type)
	require.Equal(t, "#", tok.Lexeme)
	require.Equal(t, 3, tok.Pos.Column)

	require.Equal(t, lexer.ID, mylexer.NextToken().Type)
}
