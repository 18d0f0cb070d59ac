package compiler

import (
	"github.com/nenuphar-lang/clox/lang/token"
	"github.com/nenuphar-lang/clox/lang/vm"
)

func (p *Parser) beginCompiler(kind FunctionType, name string) {
	p.cur = newCompiler(p, p.cur, kind, name)
}

func (p *Parser) endCompiler() *vm.Function {
	p.emitReturn()
	fn := p.cur.fn
	p.vm.PopCompilerRoot()
	p.cur = p.cur.enclosing
	return fn
}

func declaration(p *Parser) {
	switch {
	case p.match(token.CLASS):
		classDeclaration(p)
	case p.match(token.FUN):
		funDeclaration(p)
	case p.match(token.VAR):
		varDeclaration(p)
	default:
		statement(p)
	}
	if p.panicMode {
		p.synchronize()
	}
}

func statement(p *Parser) {
	switch {
	case p.match(token.PRINT):
		printStatement(p)
	case p.match(token.FOR):
		forStatement(p)
	case p.match(token.IF):
		ifStatement(p)
	case p.match(token.RETURN):
		returnStatement(p)
	case p.match(token.WHILE):
		whileStatement(p)
	case p.match(token.LBRACE):
		p.cur.beginScope()
		block(p)
		p.cur.endScope(p)
	default:
		expressionStatement(p)
	}
}

func block(p *Parser) {
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		declaration(p)
	}
	p.consume(token.RBRACE, "Expect '}' after block.")
}

func printStatement(p *Parser) {
	expression(p)
	p.consume(token.SEMI, "Expect ';' after value.")
	p.emitByte(byte(vm.OpPrint))
}

func expressionStatement(p *Parser) {
	expression(p)
	p.consume(token.SEMI, "Expect ';' after expression.")
	p.emitByte(byte(vm.OpPop))
}

func returnStatement(p *Parser) {
	if p.cur.kind == TypeScript {
		p.errorAtPrevious("Can't return from top-level code.")
	}
	if p.match(token.SEMI) {
		p.emitReturn()
		return
	}
	if p.cur.kind == TypeInitializer {
		p.errorAtPrevious("Can't return a value from an initializer.")
	}
	expression(p)
	p.consume(token.SEMI, "Expect ';' after return value.")
	p.emitByte(byte(vm.OpReturn))
}

func ifStatement(p *Parser) {
	p.consume(token.LPAREN, "Expect '(' after 'if'.")
	expression(p)
	p.consume(token.RPAREN, "Expect ')' after condition.")

	thenJump := p.emitJump(byte(vm.OpJumpIfFalse))
	p.emitByte(byte(vm.OpPop))
	statement(p)

	elseJump := p.emitJump(byte(vm.OpJump))
	p.patchJump(thenJump)
	p.emitByte(byte(vm.OpPop))

	if p.match(token.ELSE) {
		statement(p)
	}
	p.patchJump(elseJump)
}

func whileStatement(p *Parser) {
	loopStart := len(p.currentChunk().Code)
	p.consume(token.LPAREN, "Expect '(' after 'while'.")
	expression(p)
	p.consume(token.RPAREN, "Expect ')' after condition.")

	exitJump := p.emitJump(byte(vm.OpJumpIfFalse))
	p.emitByte(byte(vm.OpPop))
	statement(p)
	p.emitLoop(loopStart)

	p.patchJump(exitJump)
	p.emitByte(byte(vm.OpPop))
}

func forStatement(p *Parser) {
	p.cur.beginScope()
	p.consume(token.LPAREN, "Expect '(' after 'for'.")
	switch {
	case p.match(token.SEMI):
	case p.match(token.VAR):
		varDeclaration(p)
	default:
		expressionStatement(p)
	}

	loopStart := len(p.currentChunk().Code)
	exitJump := -1
	if !p.match(token.SEMI) {
		expression(p)
		p.consume(token.SEMI, "Expect ';' after loop condition.")
		exitJump = p.emitJump(byte(vm.OpJumpIfFalse))
		p.emitByte(byte(vm.OpPop))
	}

	if !p.match(token.RPAREN) {
		bodyJump := p.emitJump(byte(vm.OpJump))
		incrementStart := len(p.currentChunk().Code)
		expression(p)
		p.emitByte(byte(vm.OpPop))
		p.consume(token.RPAREN, "Expect ')' after for clauses.")

		p.emitLoop(loopStart)
		loopStart = incrementStart
		p.patchJump(bodyJump)
	}

	statement(p)
	p.emitLoop(loopStart)

	if exitJump != -1 {
		p.patchJump(exitJump)
		p.emitByte(byte(vm.OpPop))
	}
	p.cur.endScope(p)
}

func declareVariable(p *Parser) {
	if p.cur.scopeDepth == 0 {
		return
	}
	name := p.previous.Lexeme
	for i := len(p.cur.locals) - 1; i >= 0; i-- {
		l := p.cur.locals[i]
		if l.depth != -1 && l.depth < p.cur.scopeDepth {
			break
		}
		if l.name == name {
			p.errorAtPrevious("Already a variable with this name in this scope.")
		}
	}
	p.cur.addLocal(p, name)
}

func parseVariable(p *Parser, errMsg string) byte {
	p.consume(token.IDENT, errMsg)
	declareVariable(p)
	if p.cur.scopeDepth > 0 {
		return 0
	}
	return p.identifierConstant(p.previous.Lexeme)
}

func defineVariable(p *Parser, global byte) {
	if p.cur.scopeDepth > 0 {
		p.cur.markInitialized()
		return
	}
	p.emitBytes(byte(vm.OpDefineGlobal), global)
}

func varDeclaration(p *Parser) {
	global := parseVariable(p, "Expect variable name.")
	if p.match(token.EQ) {
		expression(p)
	} else {
		p.emitByte(byte(vm.OpNil))
	}
	p.consume(token.SEMI, "Expect ';' after variable declaration.")
	defineVariable(p, global)
}

func function(p *Parser, kind FunctionType) {
	p.beginCompiler(kind, p.previous.Lexeme)
	c := p.cur
	c.beginScope()

	p.consume(token.LPAREN, "Expect '(' after function name.")
	if !p.check(token.RPAREN) {
		for {
			c.fn.Arity++
			if c.fn.Arity > 255 {
				p.errorAtCurrent("Can't have more than 255 parameters.")
			}
			paramConst := parseVariable(p, "Expect parameter name.")
			defineVariable(p, paramConst)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "Expect ')' after parameters.")
	p.consume(token.LBRACE, "Expect '{' before function body.")
	block(p)

	fn := p.endCompiler()
	idx := p.makeConstant(fn)
	p.emitBytes(byte(vm.OpClosure), idx)
	for _, uv := range c.upvalues {
		if uv.isLocal {
			p.emitByte(1)
		} else {
			p.emitByte(0)
		}
		p.emitByte(uv.index)
	}
}

func funDeclaration(p *Parser) {
	global := parseVariable(p, "Expect function name.")
	p.cur.markInitialized()
	function(p, TypeFunction)
	defineVariable(p, global)
}

func method(p *Parser) {
	p.consume(token.IDENT, "Expect method name.")
	name := p.previous.Lexeme
	constant := p.identifierConstant(name)

	kind := TypeMethod
	if name == "init" {
		kind = TypeInitializer
	}
	function(p, kind)
	p.emitBytes(byte(vm.OpMethod), constant)
}

func classDeclaration(p *Parser) {
	p.consume(token.IDENT, "Expect class name.")
	className := p.previous.Lexeme
	nameConstant := p.identifierConstant(className)
	declareVariable(p)

	p.emitBytes(byte(vm.OpClass), nameConstant)
	defineVariable(p, nameConstant)

	p.class = &classCompiler{enclosing: p.class}

	namedVariable(p, className, false)
	p.consume(token.LBRACE, "Expect '{' before class body.")
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		method(p)
	}
	p.consume(token.RBRACE, "Expect '}' after class body.")
	p.emitByte(byte(vm.OpPop))

	p.class = p.class.enclosing
}
