package lexer_test

import (
	"bantamc/pkg/lexer"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComments(t *testing.T) {
	input := `// test comment
int x = 10; // another test comment
/* a block
   comment */ boolean y = /* inline */ true;`

	mylexer := lexer.NewLexer(input)
	expectedTokens := []lexer.TokenType{
		lexer.ID, lexer.ID, lexer.ASSIGN, lexer.INT, lexer.SEMICOLON,
		lexer.ID, lexer.ID, lexer.ASSIGN, lexer.TRUE, lexer.SEMICOLON,
		lexer.EOF,
	}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		require.Equal(t, expected, token.Type, "token %d", i)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	mylexer := lexer.NewLexer("int x; /* never closed")

	for range 3 {
		mylexer.NextToken()
	}

	tok := mylexer.NextToken()
	require.Equal(t, lexer.ILLEGAL, tok.Type)
	require.Equal(t, "unterminated comment", tok.Literal)
	require.Equal(t, lexer.EOF, mylexer.NextToken().Type)
}
