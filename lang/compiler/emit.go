package compiler

import "github.com/nenuphar-lang/clox/lang/vm"

func (p *Parser) currentChunk() *vm.Chunk { return &p.cur.fn.Chunk }

func (p *Parser) emitByte(b byte) {
	p.currentChunk().Write(b, p.previous.Line)
}

func (p *Parser) emitBytes(a, b byte) {
	p.emitByte(a)
	p.emitByte(b)
}

func (p *Parser) emitLoop(loopStart int) {
	p.emitByte(byte(vm.OpLoop))
	offset := len(p.currentChunk().Code) - loopStart + 2
	if offset > 0xFFFF {
		p.errorAtPrevious("Loop body too large.")
	}
	p.emitByte(byte(offset >> 8))
	p.emitByte(byte(offset))
}

// emitJump writes the jump opcode and a two-byte placeholder operand,
// returning the operand's offset for patchJump to fill in later.
func (p *Parser) emitJump(instr byte) int {
	p.emitByte(instr)
	p.emitByte(0xff)
	p.emitByte(0xff)
	return len(p.currentChunk().Code) - 2
}

func (p *Parser) patchJump(offset int) {
	jump := len(p.currentChunk().Code) - offset - 2
	if jump > 0xFFFF {
		p.errorAtPrevious("Too much code to jump over.")
	}
	p.currentChunk().Code[offset] = byte(jump >> 8)
	p.currentChunk().Code[offset+1] = byte(jump)
}

func (p *Parser) makeConstant(v vm.Value) byte {
	idx, err := p.currentChunk().AddConstant(v)
	if err != nil {
		p.errorAtPrevious(err.Error())
		return 0
	}
	return byte(idx)
}

// identifierConstant interns name and adds (or reuses) its constant pool
// slot, deduping repeated uses of the same identifier within one function.
func (p *Parser) identifierConstant(name string) byte {
	if idx, ok := p.cur.strConsts.Get(name); ok {
		return idx
	}
	idx := p.makeConstant(p.vm.Intern(name))
	p.cur.strConsts.Put(name, idx)
	return idx
}

func (p *Parser) emitConstant(v vm.Value) {
	p.emitBytes(byte(vm.OpConstant), p.makeConstant(v))
}

func (p *Parser) emitReturn() {
	if p.cur.kind == TypeInitializer {
		p.emitBytes(byte(vm.OpGetLocal), 0)
	} else {
		p.emitByte(byte(vm.OpNil))
	}
	p.emitByte(byte(vm.OpReturn))
}
