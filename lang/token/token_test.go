package token_test

import (
	"testing"

	"github.com/nenuphar-lang/clox/lang/token"
	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		lit  string
		want token.Token
	}{
		{"and", token.AND},
		{"class", token.CLASS},
		{"else", token.ELSE},
		{"false", token.FALSE},
		{"for", token.FOR},
		{"fun", token.FUN},
		{"if", token.IF},
		{"nil", token.NIL},
		{"or", token.OR},
		{"print", token.PRINT},
		{"return", token.RETURN},
		{"super", token.SUPER},
		{"this", token.THIS},
		{"true", token.TRUE},
		{"var", token.VAR},
		{"while", token.WHILE},
		// near-misses must fall through to IDENT, not a keyword.
		{"", token.IDENT},
		{"a", token.IDENT},
		{"andy", token.IDENT},
		{"classroom", token.IDENT},
		{"f", token.IDENT},
		{"fo", token.IDENT},
		{"fun2", token.IDENT},
		{"thi", token.IDENT},
		{"thisRef", token.IDENT},
		{"truthy", token.IDENT},
		{"FOR", token.IDENT},
	}
	for _, tc := range tests {
		t.Run(tc.lit, func(t *testing.T) {
			assert.Equal(t, tc.want, token.LookupIdent(tc.lit))
		})
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "and", token.AND.String())
	assert.Equal(t, "(", token.LPAREN.String())
	assert.Equal(t, "unknown token", token.Token(255).String())
}

// every defined token kind must have a non-empty String representation.
func TestTokenStringExhaustive(t *testing.T) {
	for tok := token.ILLEGAL; tok <= token.WHILE; tok++ {
		assert.NotEmpty(t, tok.String(), "token %d missing a String()", tok)
	}
}
