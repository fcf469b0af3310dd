package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeHandle_MakeUniqueClonesWhenShared(t *testing.T) {
	h := newLeafChild("hello")
	shared := h.retain() // now rc == 2

	unique := shared.makeUnique()
	assert.NotSame(t, h, unique, "a shared handle must clone, not mutate in place")
	assert.Equal(t, "hello", string(unique.leaf.bytes()))

	// h itself is untouched.
	assert.Equal(t, "hello", string(h.leaf.bytes()))
}

func TestNodeHandle_MakeUniqueMutatesInPlaceWhenSole(t *testing.T) {
	h := newLeafChild("hello")
	unique := h.makeUnique()
	assert.Same(t, h, unique, "a sole-owner handle must be reused, not cloned")
}

func TestNodeHandle_CloneSharesChildrenNotDeep(t *testing.T) {
	ch := acquireChildren()
	leaf := newLeafChild("x")
	ch.push(leaf, leaf.infoOf())
	internal := newInternalHandle(ch)

	cloned := internal.internal.clone()
	assert.Same(t, leaf, cloned.handles[0], "cloning an internal node must retain child handles, not deep copy them")
}

func TestNodeHandle_HeightAndFringe(t *testing.T) {
	leafA := newLeafChild("a")
	leafB := newLeafChild("b")
	ch := acquireChildren()
	ch.push(leafA, leafA.infoOf())
	ch.push(leafB, leafB.infoOf())
	internal := newInternalHandle(ch)

	assert.Equal(t, 1, internal.height())
	assert.Same(t, leafA, internal.leftmostLeaf())
	assert.Same(t, leafB, internal.rightmostLeaf())
}
