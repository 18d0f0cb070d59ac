package compiler

import (
	"github.com/dolthub/swiss"
	"github.com/nenuphar-lang/clox/lang/vm"
)

// FunctionType distinguishes the kinds of function body a Compiler may be
// compiling, since slot 0 and `return`/`this` legality depend on it.
type FunctionType int

const (
	TypeFunction FunctionType = iota
	TypeScript
	TypeMethod
	TypeInitializer
)

const (
	maxLocals   = 256
	maxUpvalues = 256
)

type local struct {
	name       string
	depth      int // -1 means declared but not yet initialized
	isCaptured bool
}

type upvalueDesc struct {
	index   byte
	isLocal bool
}

// Compiler holds the per-function-being-compiled state: the emitting
// target (fn.Chunk), its locals and upvalue descriptors, and a link to the
// enclosing function's Compiler so resolution can walk outward.
type Compiler struct {
	enclosing *Compiler
	fn        *vm.Function
	kind      FunctionType

	locals     []local
	scopeDepth int
	upvalues   []upvalueDesc

	// strConsts dedupes identifier-name constants within this function's
	// constant pool (string literals are not deduped); purely a
	// compile-time convenience, unrelated to the VM's weak interned-string
	// table.
	strConsts *swiss.Map[string, byte]
}

func newCompiler(p *Parser, enclosing *Compiler, kind FunctionType, name string) *Compiler {
	c := &Compiler{
		enclosing: enclosing,
		kind:      kind,
		strConsts: swiss.NewMap[string, byte](8),
	}
	c.fn = p.vm.NewFunction()
	if name != "" {
		c.fn.Name = p.vm.Intern(name)
	}
	p.vm.PushCompilerRoot(c.fn)

	// slot 0 is reserved: "this" for methods/initializers, empty otherwise.
	reserved := ""
	if kind == TypeMethod || kind == TypeInitializer {
		reserved = "this"
	}
	c.locals = append(c.locals, local{name: reserved, depth: 0})
	return c
}

func (c *Compiler) beginScope() { c.scopeDepth++ }

// endScope pops every local declared at or below the scope being closed,
// emitting OP_CLOSE_UPVALUE for captured locals and OP_POP otherwise.
func (c *Compiler) endScope(p *Parser) {
	c.scopeDepth--
	for len(c.locals) > 0 && c.locals[len(c.locals)-1].depth > c.scopeDepth {
		last := c.locals[len(c.locals)-1]
		if last.isCaptured {
			p.emitByte(byte(vm.OpCloseUpvalue))
		} else {
			p.emitByte(byte(vm.OpPop))
		}
		c.locals = c.locals[:len(c.locals)-1]
	}
}

// resolveLocal finds name among c's own locals, innermost first. A match
// with depth==-1 (declared, not yet initialized) is reported here as a read
// of a local variable in its own initializer.
func (c *Compiler) resolveLocal(p *Parser, name string) int {
	for i := len(c.locals) - 1; i >= 0; i-- {
		if c.locals[i].name == name {
			if c.locals[i].depth == -1 {
				p.errorAtPrevious("Can't read local variable in its own initializer.")
			}
			return i
		}
	}
	return -1
}

// resolveUpvalue implements the recursive enclosing-compiler search: a
// match in the immediately enclosing function's locals captures that
// local directly; a match further out chains through an upvalue on every
// intermediate function.
func (c *Compiler) resolveUpvalue(p *Parser, name string) int {
	if c.enclosing == nil {
		return -1
	}
	if loc := c.enclosing.resolveLocal(p, name); loc != -1 {
		c.enclosing.locals[loc].isCaptured = true
		return c.addUpvalue(p, byte(loc), true)
	}
	if up := c.enclosing.resolveUpvalue(p, name); up != -1 {
		return c.addUpvalue(p, byte(up), false)
	}
	return -1
}

func (c *Compiler) addUpvalue(p *Parser, index byte, isLocal bool) int {
	for i, uv := range c.upvalues {
		if uv.index == index && uv.isLocal == isLocal {
			return i
		}
	}
	if len(c.upvalues) >= maxUpvalues {
		p.errorAtPrevious("Too many closure variables in function.")
		return 0
	}
	c.upvalues = append(c.upvalues, upvalueDesc{index: index, isLocal: isLocal})
	c.fn.UpvalueCount = len(c.upvalues)
	return len(c.upvalues) - 1
}

func (c *Compiler) addLocal(p *Parser, name string) {
	if len(c.locals) >= maxLocals {
		p.errorAtPrevious("Too many local variables in function.")
		return
	}
	c.locals = append(c.locals, local{name: name, depth: -1})
}

func (c *Compiler) markInitialized() {
	if c.scopeDepth == 0 {
		return
	}
	c.locals[len(c.locals)-1].depth = c.scopeDepth
}

// classCompiler tracks nesting of class bodies, used only to validate
// `this` appears inside a method.
type classCompiler struct {
	enclosing *classCompiler
}
