package vm

// obj is the common header embedded in every heap-allocated value: the
// tri-color mark bit, the intrusive link into the VM's all-objects list,
// and the accounted size charged against bytesAllocated at track time (so
// sweep can give it back).
type obj struct {
	marked bool
	next   heapObject
	size   int64
}

// heapObject is implemented by every heap-allocated Value kind, giving the
// collector uniform access to the mark bit and the set of references a
// blackened object must trace.
type heapObject interface {
	Value
	header() *obj
	// blacken pushes onto gc's gray stack every Value this object directly references.
	blacken(gc *gc)
}

func (o *obj) header() *obj { return o }
