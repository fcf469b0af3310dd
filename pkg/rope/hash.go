package rope

import "hash/fnv"

// hash.go computes an FNV content hash by walking chunks rather than the
// tree shape, so two Ropes holding identical text hash identically no
// matter how their edit history happened to carve up the leaves.

// HashCode32 returns a 32-bit FNV-1a hash of the rope's content, or 0 for
// an empty rope.
func (r *Rope) HashCode32() uint32 {
	if r == nil || r.root == nil {
		return 0
	}
	h := fnv.New32a()
	c := NewChunks(r)
	for {
		chunk, ok := c.Next()
		if !ok {
			break
		}
		h.Write(chunk)
	}
	return h.Sum32()
}

// HashCode64 returns a 64-bit FNV-1a hash of the rope's content, or 0 for
// an empty rope.
func (r *Rope) HashCode64() uint64 {
	if r == nil || r.root == nil {
		return 0
	}
	h := fnv.New64a()
	c := NewChunks(r)
	for {
		chunk, ok := c.Next()
		if !ok {
			break
		}
		h.Write(chunk)
	}
	return h.Sum64()
}

// HashEquals is a cheap pre-check before a full content comparison: equal
// hashes don't prove equal content, but unequal hashes prove unequal
// content.
func (r *Rope) HashEquals(other *Rope) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.HashCode64() == other.HashCode64()
}
