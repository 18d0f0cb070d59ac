package vm

// BoundMethod pairs a receiver instance with one of its class's method
// closures, produced by property access that resolves to a method rather
// than a field. Calling it prepends the receiver as slot 0.
type BoundMethod struct {
	obj
	Receiver Value
	Method   *Closure
}

func (b *BoundMethod) String() string { return b.Method.String() }
func (b *BoundMethod) Type() string   { return "bound method" }

func (b *BoundMethod) blacken(gc *gc) {
	gc.markValue(b.Receiver)
	gc.markObject(b.Method)
}
