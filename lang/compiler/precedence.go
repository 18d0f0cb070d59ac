package compiler

import "github.com/nenuphar-lang/clox/lang/token"

// Precedence orders binding power from loosest to tightest, low to high.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssignment
	PrecOr
	PrecAnd
	PrecEquality
	PrecComparison
	PrecTerm
	PrecFactor
	PrecUnary
	PrecCall
	PrecPrimary
)

type parseFn func(p *Parser, canAssign bool)

// ParseRule associates a token kind with its prefix/infix parsing
// functions and its infix binding precedence.
type ParseRule struct {
	prefix     parseFn
	infix      parseFn
	precedence Precedence
}

var rules map[token.Token]ParseRule

func init() {
	rules = map[token.Token]ParseRule{
		token.LPAREN: {prefix: grouping, infix: call, precedence: PrecCall},
		token.DOT:    {infix: dot, precedence: PrecCall},
		token.MINUS:  {prefix: unary, infix: binary, precedence: PrecTerm},
		token.PLUS:   {infix: binary, precedence: PrecTerm},
		token.SLASH:  {infix: binary, precedence: PrecFactor},
		token.STAR:   {infix: binary, precedence: PrecFactor},
		token.BANG:   {prefix: unary},
		token.BANGEQ: {infix: binary, precedence: PrecEquality},
		token.EQEQ:   {infix: binary, precedence: PrecEquality},
		token.GT:     {infix: binary, precedence: PrecComparison},
		token.GTEQ:   {infix: binary, precedence: PrecComparison},
		token.LT:     {infix: binary, precedence: PrecComparison},
		token.LTEQ:   {infix: binary, precedence: PrecComparison},
		token.IDENT:  {prefix: variable},
		token.STRING: {prefix: strLiteral},
		token.NUMBER: {prefix: number},
		token.AND:    {infix: and_, precedence: PrecAnd},
		token.OR:     {infix: or_, precedence: PrecOr},
		token.FALSE:  {prefix: literal},
		token.NIL:    {prefix: literal},
		token.TRUE:   {prefix: literal},
		token.THIS:   {prefix: this_},
	}
}

func getRule(tok token.Token) ParseRule {
	return rules[tok]
}
