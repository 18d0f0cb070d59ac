package compiler

import (
	"strconv"

	"github.com/nenuphar-lang/clox/lang/token"
	"github.com/nenuphar-lang/clox/lang/vm"
)

func parsePrecedence(p *Parser, prec Precedence) {
	p.advance()
	prefixRule := getRule(p.previous.Kind).prefix
	if prefixRule == nil {
		p.errorAtPrevious("Expect expression.")
		return
	}
	canAssign := prec <= PrecAssignment
	prefixRule(p, canAssign)

	for prec <= getRule(p.current.Kind).precedence {
		p.advance()
		infixRule := getRule(p.previous.Kind).infix
		infixRule(p, canAssign)
	}

	if canAssign && p.match(token.EQ) {
		p.errorAtPrevious("Invalid assignment target.")
	}
}

func expression(p *Parser) { parsePrecedence(p, PrecAssignment) }

func grouping(p *Parser, _ bool) {
	expression(p)
	p.consume(token.RPAREN, "Expect ')' after expression.")
}

func unary(p *Parser, _ bool) {
	opType := p.previous.Kind
	parsePrecedence(p, PrecUnary)
	switch opType {
	case token.BANG:
		p.emitByte(byte(vm.OpNot))
	case token.MINUS:
		p.emitByte(byte(vm.OpNegate))
	}
}

func binary(p *Parser, _ bool) {
	opType := p.previous.Kind
	rule := getRule(opType)
	parsePrecedence(p, rule.precedence+1)

	switch opType {
	case token.BANGEQ:
		p.emitBytes(byte(vm.OpEqual), byte(vm.OpNot))
	case token.EQEQ:
		p.emitByte(byte(vm.OpEqual))
	case token.GT:
		p.emitByte(byte(vm.OpGreater))
	case token.GTEQ:
		p.emitBytes(byte(vm.OpLess), byte(vm.OpNot))
	case token.LT:
		p.emitByte(byte(vm.OpLess))
	case token.LTEQ:
		p.emitBytes(byte(vm.OpGreater), byte(vm.OpNot))
	case token.PLUS:
		p.emitByte(byte(vm.OpAdd))
	case token.MINUS:
		p.emitByte(byte(vm.OpSubtract))
	case token.STAR:
		p.emitByte(byte(vm.OpMultiply))
	case token.SLASH:
		p.emitByte(byte(vm.OpDivide))
	}
}

func number(p *Parser, _ bool) {
	val, err := strconv.ParseFloat(p.previous.Lexeme, 64)
	if err != nil {
		p.errorAtPrevious("Invalid number literal.")
		return
	}
	p.emitConstant(vm.Number(val))
}

func strLiteral(p *Parser, _ bool) {
	lex := p.previous.Lexeme
	contents := lex[1 : len(lex)-1]
	p.emitConstant(p.vm.Intern(contents))
}

func literal(p *Parser, _ bool) {
	switch p.previous.Kind {
	case token.FALSE:
		p.emitByte(byte(vm.OpFalse))
	case token.NIL:
		p.emitByte(byte(vm.OpNil))
	case token.TRUE:
		p.emitByte(byte(vm.OpTrue))
	}
}

func and_(p *Parser, _ bool) {
	endJump := p.emitJump(byte(vm.OpJumpIfFalse))
	p.emitByte(byte(vm.OpPop))
	parsePrecedence(p, PrecAnd)
	p.patchJump(endJump)
}

func or_(p *Parser, _ bool) {
	elseJump := p.emitJump(byte(vm.OpJumpIfFalse))
	endJump := p.emitJump(byte(vm.OpJump))
	p.patchJump(elseJump)
	p.emitByte(byte(vm.OpPop))
	parsePrecedence(p, PrecOr)
	p.patchJump(endJump)
}

func namedVariable(p *Parser, name string, canAssign bool) {
	var getOp, setOp byte
	var arg int
	if idx := p.cur.resolveLocal(p, name); idx != -1 {
		arg = idx
		getOp, setOp = byte(vm.OpGetLocal), byte(vm.OpSetLocal)
	} else if idx := p.cur.resolveUpvalue(p, name); idx != -1 {
		arg = idx
		getOp, setOp = byte(vm.OpGetUpvalue), byte(vm.OpSetUpvalue)
	} else {
		arg = int(p.identifierConstant(name))
		getOp, setOp = byte(vm.OpGetGlobal), byte(vm.OpSetGlobal)
	}

	if canAssign && p.match(token.EQ) {
		expression(p)
		p.emitBytes(setOp, byte(arg))
	} else {
		p.emitBytes(getOp, byte(arg))
	}
}

func variable(p *Parser, canAssign bool) {
	namedVariable(p, p.previous.Lexeme, canAssign)
}

func this_(p *Parser, _ bool) {
	if p.class == nil {
		p.errorAtPrevious("Can't use 'this' outside of a class.")
		return
	}
	namedVariable(p, "this", false)
}

func dot(p *Parser, canAssign bool) {
	p.consume(token.IDENT, "Expect property name after '.'.")
	name := p.identifierConstant(p.previous.Lexeme)

	switch {
	case canAssign && p.match(token.EQ):
		expression(p)
		p.emitBytes(byte(vm.OpSetInst), name)
	case p.match(token.LPAREN):
		argCount := argumentList(p)
		p.emitBytes(byte(vm.OpInvoke), name)
		p.emitByte(argCount)
	default:
		p.emitBytes(byte(vm.OpGetInst), name)
	}
}

func call(p *Parser, _ bool) {
	argCount := argumentList(p)
	p.emitBytes(byte(vm.OpCall), argCount)
}

func argumentList(p *Parser) byte {
	var count int
	if !p.check(token.RPAREN) {
		for {
			expression(p)
			if count == 255 {
				p.errorAtPrevious("Can't have more than 255 arguments.")
			}
			count++
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "Expect ')' after arguments.")
	return byte(count)
}
