package vm

import "fmt"

// Function is a compiled function: its arity, the number of upvalues its
// closures must capture, an optional name, and its owned Chunk. Chunks are
// exclusively owned by their enclosing Function.
type Function struct {
	obj
	Name         *String
	Arity        int
	UpvalueCount int
	Chunk        Chunk
}

func (fn *Function) String() string {
	if fn.Name == nil {
		return "<script>"
	}
	return fmt.Sprintf("<fn %s>", fn.Name.chars)
}
func (fn *Function) Type() string { return "function" }

func (fn *Function) blacken(gc *gc) {
	if fn.Name != nil {
		gc.markObject(fn.Name)
	}
	for _, c := range fn.Chunk.Constants {
		gc.markValue(c)
	}
}

// NativeFn is the signature of a native (Go-implemented) callable.
type NativeFn func(args []Value) (Value, error)

// Native wraps a Go function so it can be called from interpreted code.
type Native struct {
	obj
	Name string
	Fn   NativeFn
}

func (n *Native) String() string { return fmt.Sprintf("<native fn %s>", n.Name) }
func (n *Native) Type() string   { return "native" }
func (n *Native) blacken(*gc)    {}
