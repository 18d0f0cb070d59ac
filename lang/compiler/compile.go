package compiler

import (
	"github.com/nenuphar-lang/clox/lang/scanner"
	"github.com/nenuphar-lang/clox/lang/token"
	"github.com/nenuphar-lang/clox/lang/vm"
)

// Compile compiles source into a top-level script Function. On any
// compile error it returns a nil Function along with every accumulated
// "[line N] Error ...: msg" message, matching the public compile(source)
// entry point.
func Compile(v *vm.VM, source string) (*vm.Function, []string) {
	sc := &scanner.Scanner{}
	sc.Init(source)

	p := &Parser{vm: v, sc: sc}
	p.beginCompiler(TypeScript, "")
	p.advance()

	for !p.match(token.EOF) {
		declaration(p)
	}

	fn := p.endCompiler()
	if p.hadError {
		return nil, p.errors
	}
	return fn, nil
}
