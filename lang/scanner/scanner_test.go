package scanner_test

import (
	"testing"

	"github.com/nenuphar-lang/clox/lang/scanner"
	"github.com/nenuphar-lang/clox/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []scanner.Tok {
	t.Helper()
	var s scanner.Scanner
	s.Init(src)
	var toks []scanner.Tok
	for {
		tok := s.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []scanner.Tok) []token.Token {
	out := make([]token.Token, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestNextPunctuationAndOperators(t *testing.T) {
	toks := scanAll(t, "(){};,.-+/*!!====<=<>=>")
	got := kinds(toks)
	want := []token.Token{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.SEMI,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SLASH, token.STAR,
		token.BANG, token.BANGEQ, token.EQEQ, token.EQ, token.LTEQ, token.LT, token.GTEQ, token.GT,
		token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestNextIdentifiersAndKeywords(t *testing.T) {
	toks := scanAll(t, "var x = foo_bar2; while")
	got := kinds(toks)
	want := []token.Token{
		token.VAR, token.IDENT, token.EQ, token.IDENT, token.SEMI, token.WHILE, token.EOF,
	}
	require.Equal(t, want, got)
	assert.Equal(t, "x", toks[1].Lexeme)
	assert.Equal(t, "foo_bar2", toks[3].Lexeme)
}

func TestNextNumbers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"integer", "123", "123"},
		{"fraction", "1.5", "1.5"},
		{"trailing dot not consumed", "1.", "1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks := scanAll(t, tc.src)
			require.Equal(t, token.NUMBER, toks[0].Kind)
			assert.Equal(t, tc.want, toks[0].Lexeme)
		})
	}

	// a '.' not followed by a digit is left for the caller as its own
	// DOT token, rather than being consumed into the number literal.
	toks := scanAll(t, "1.foo")
	require.Len(t, toks, 4)
	assert.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, "1", toks[0].Lexeme)
	assert.Equal(t, token.DOT, toks[1].Kind)
	assert.Equal(t, token.IDENT, toks[2].Kind)
}

func TestNextStrings(t *testing.T) {
	toks := scanAll(t, `"hello" "a` + "\n" + `b"`)
	require.Len(t, toks, 3)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, `"hello"`, toks[0].Lexeme)
	assert.Equal(t, token.STRING, toks[1].Kind)
	assert.Equal(t, 2, toks[1].Line, "the embedded newline bumped the line counter by the time the string token is made")
}

func TestNextUnterminatedString(t *testing.T) {
	toks := scanAll(t, "\"abc\ndef")
	require.Len(t, toks, 2)
	assert.Equal(t, token.ILLEGAL, toks[0].Kind)
	assert.Equal(t, "Unterminated string.", toks[0].Lexeme)
}

func TestNextCommentsAndWhitespace(t *testing.T) {
	src := "var a = 1; // this is a comment\nvar b = 2;"
	toks := scanAll(t, src)
	got := kinds(toks)
	want := []token.Token{
		token.VAR, token.IDENT, token.EQ, token.NUMBER, token.SEMI,
		token.VAR, token.IDENT, token.EQ, token.NUMBER, token.SEMI,
		token.EOF,
	}
	require.Equal(t, want, got)
	// the var on the second line should report line 2.
	assert.Equal(t, 2, toks[5].Line)
}

func TestNextUnexpectedCharacter(t *testing.T) {
	toks := scanAll(t, "@")
	require.Len(t, toks, 2)
	assert.Equal(t, token.ILLEGAL, toks[0].Kind)
	assert.Equal(t, "Unexpected character.", toks[0].Lexeme)
}

func TestNextEOFAlwaysLast(t *testing.T) {
	toks := scanAll(t, "")
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}
