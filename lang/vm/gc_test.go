package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCSweepsUnreachableAndKeepsReachable(t *testing.T) {
	v := New()

	reachable := v.intern("kept")
	v.globals.Set(reachable, Bool(true))

	garbage := &String{chars: "garbage", hash: hashString("garbage")}
	v.gc.track(garbage, 32)

	v.gc.collect()

	found := false
	for o := v.gc.objects; o != nil; o = o.header().next {
		if o == heapObject(reachable) {
			found = true
		}
		assert.NotEqual(t, heapObject(garbage), o, "unreachable object must have been unlinked by sweep")
	}
	assert.True(t, found, "reachable object must survive collection")
}

func TestGCNextGCKeepsFloorAfterCollect(t *testing.T) {
	v := New()
	before := v.gc.nextGC
	v.gc.collect()
	assert.GreaterOrEqual(t, v.gc.nextGC, before/2, "nextGC should not shrink below a sane floor after a collection")
}

func TestGCCompilerRootSurvivesCollectionMidCompile(t *testing.T) {
	v := New()
	fn := v.newFunction()
	v.gc.pushCompilerRoot(fn)

	v.gc.collect()

	found := false
	for o := v.gc.objects; o != nil; o = o.header().next {
		if o == heapObject(fn) {
			found = true
		}
	}
	require.True(t, found, "a function under construction must be rooted across a mid-compile collection")
	v.gc.popCompilerRoot()
}

func TestGCKeepsInitStringRootedAcrossCollection(t *testing.T) {
	// vm.initString is used for pointer-identity comparison against class
	// method tables (see (*VM).callValue's Class case); it must survive
	// collection even though it lives in no frame, stack slot or global.
	v := New()
	initBefore := v.initString

	v.gc.collect()

	found := false
	for o := v.gc.objects; o != nil; o = o.header().next {
		if o == heapObject(initBefore) {
			found = true
		}
	}
	assert.True(t, found, "initString must remain linked after a collection")

	// re-interning "init" after the collection must return the identical
	// object, or class init-method lookup by identity would silently break.
	assert.Same(t, initBefore, v.intern("init"))
}

func TestFreeZeroesAllocationAccounting(t *testing.T) {
	// spec.md §8 property 2: after interpretation all heap objects are
	// freed and bytes_allocated == 0, the Go analog of clox's
	// initVM()/interpret()/freeVM() lifecycle.
	v := New()
	v.intern("hi")
	v.intern("there")
	v.newFunction()
	require.Greater(t, v.gc.bytesAllocated, int64(0))

	v.Free()

	assert.Equal(t, int64(0), v.gc.bytesAllocated)
	assert.Nil(t, v.gc.objects)
}

func TestInternReusesExistingString(t *testing.T) {
	v := New()
	a := v.intern("same")
	b := v.intern("same")
	assert.Same(t, a, b, "interning the same content twice returns the identical object")
}
