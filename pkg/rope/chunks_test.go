package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunks_ForwardConcatenatesToWhole(t *testing.T) {
	s := strings.Repeat("abcdefghij", maxBytes)
	r := New(s)
	c := NewChunks(r)
	var got strings.Builder
	for {
		chunk, ok := c.Next()
		if !ok {
			break
		}
		got.Write(chunk)
	}
	assert.Equal(t, s, got.String())
}

func TestChunks_BackwardMirrorsForward(t *testing.T) {
	s := strings.Repeat("xy", maxBytes)
	r := New(s)

	c := NewChunks(r)
	var forward [][]byte
	for {
		chunk, ok := c.Next()
		if !ok {
			break
		}
		cp := append([]byte(nil), chunk...)
		forward = append(forward, cp)
	}

	var backward [][]byte
	for {
		chunk, ok := c.Prev()
		if !ok {
			break
		}
		cp := append([]byte(nil), chunk...)
		backward = append([][]byte{cp}, backward...)
	}
	require.Equal(t, len(forward), len(backward))
	for i := range forward {
		assert.Equal(t, forward[i], backward[i])
	}
}

func TestChunks_SeekAt(t *testing.T) {
	s := strings.Repeat("0123456789", maxBytes)
	r := New(s)
	mid := len(s) / 2
	c, err := NewChunksAt(r, mid)
	require.NoError(t, err)
	chunk, ok := c.Next()
	require.True(t, ok)
	_, chunkStart, err := r.TryChunkAtByte(mid)
	require.NoError(t, err)
	assert.Equal(t, s[chunkStart:chunkStart+len(chunk)], string(chunk))
}

func TestChunks_EmptyRope(t *testing.T) {
	c := NewChunks(Empty())
	_, ok := c.Next()
	assert.False(t, ok)
}

func TestChunks_Clone(t *testing.T) {
	s := strings.Repeat("abc", maxBytes)
	r := New(s)
	c := NewChunks(r)
	c.Next()
	c.Next()

	fork := c.Clone()
	a, okA := c.Next()
	b, okB := fork.Next()
	assert.Equal(t, okA, okB)
	assert.Equal(t, a, b)
}
