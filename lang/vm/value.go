// Package vm implements the object memory model, bytecode chunk format,
// hash table, tracing garbage collector and stack-based virtual machine
// that execute compiled programs.
package vm

import "fmt"

// Value is the interface implemented by every value the machine can
// manipulate: the immediate kinds Nil, Bool and Number, plus every heap
// object kind (String, Function, Native, Closure, Upvalue, Class,
// Instance, BoundMethod).
type Value interface {
	// String returns the printable representation of the value, exactly what
	// OP_PRINT writes.
	String() string
	// Type returns a short, stable name for the value's kind, used in error
	// messages.
	Type() string
}

// Nil is the value of the literal `nil`. There is exactly one nil value.
type Nil struct{}

func (Nil) String() string { return "nil" }
func (Nil) Type() string   { return "nil" }

// NilValue is the singleton Nil value.
var NilValue = Nil{}

// Bool is the boolean value kind.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Bool) Type() string { return "bool" }

// Number is the machine's only numeric kind, a double-precision float.
type Number float64

func (n Number) String() string { return formatNumber(float64(n)) }
func (Number) Type() string     { return "number" }

func formatNumber(f float64) string {
	return fmt.Sprintf("%g", f)
}

// Truthy reports whether v is truthy. Nil and Bool(false) are falsey;
// every other value, including 0 and the empty string, is truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// Equal implements the language's total equality: Nil equals only Nil,
// booleans and numbers compare by value, objects compare by identity
// except strings, which (by virtue of interning) also compare correctly
// by identity.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bb, ok := b.(Bool)
		return ok && a == bb
	case Number:
		bb, ok := b.(Number)
		return ok && a == bb
	case *String:
		bb, ok := b.(*String)
		return ok && a == bb
	default:
		return a == b
	}
}
