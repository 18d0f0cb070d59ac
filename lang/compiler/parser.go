package compiler

import (
	"fmt"

	"github.com/nenuphar-lang/clox/lang/scanner"
	"github.com/nenuphar-lang/clox/lang/token"
	"github.com/nenuphar-lang/clox/lang/vm"
)

// Parser drives a single compile: it owns the scanner, the token lookahead
// pair, error/panic-mode state, and the chain of Compilers for the
// function currently being emitted into.
type Parser struct {
	vm *vm.VM
	sc *scanner.Scanner

	current  scanner.Tok
	previous scanner.Tok

	hadError  bool
	panicMode bool
	errors    []string

	cur   *Compiler
	class *classCompiler
}

func (p *Parser) advance() {
	p.previous = p.current
	for {
		p.current = p.sc.Next()
		if p.current.Kind != token.ILLEGAL {
			break
		}
		p.errorAtCurrent(p.current.Lexeme)
	}
}

func (p *Parser) check(kind token.Token) bool { return p.current.Kind == kind }

func (p *Parser) match(kind token.Token) bool {
	if !p.check(kind) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) consume(kind token.Token, msg string) {
	if p.current.Kind == kind {
		p.advance()
		return
	}
	p.errorAtCurrent(msg)
}

func (p *Parser) errorAtCurrent(msg string) { p.errorAt(p.current, msg) }
func (p *Parser) errorAtPrevious(msg string) { p.errorAt(p.previous, msg) }

func (p *Parser) errorAt(tok scanner.Tok, msg string) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.hadError = true

	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Kind == token.EOF {
		where = " at end"
	} else if tok.Kind == token.ILLEGAL {
		where = ""
	}
	p.errors = append(p.errors, fmt.Sprintf("[line %d] Error%s: %s", tok.Line, where, msg))
}

// synchronize discards tokens until it reaches a statement boundary,
// suppressing cascading errors after the first one in a statement.
func (p *Parser) synchronize() {
	p.panicMode = false
	for p.current.Kind != token.EOF {
		if p.previous.Kind == token.SEMI {
			return
		}
		switch p.current.Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
