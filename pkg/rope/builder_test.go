package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromChunks_ConcatenatesRegardlessOfBoundaries(t *testing.T) {
	r, err := FromChunks([]string{"Hel", "lo, ", "World", "!"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", r.String())
}

func TestFromChunks_RejectsInvalidUTF8(t *testing.T) {
	_, err := FromChunks([]string{"ok", string([]byte{0xff, 0xfe})}, nil)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindNonUTF8Input, rerr.Kind)
}

func TestFromChunks_Large(t *testing.T) {
	var chunks []string
	for i := 0; i < 500; i++ {
		chunks = append(chunks, strings.Repeat("n", 37))
	}
	r, err := FromChunks(chunks, nil)
	require.NoError(t, err)
	assert.Equal(t, 500*37, r.LenBytes())
	assert.Equal(t, strings.Repeat("n", 500*37), r.String())
}

func TestFromChunks_Empty(t *testing.T) {
	r, err := FromChunks(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, r.LenBytes())
}

func TestBuildLevels_SingleLeafNoWrapper(t *testing.T) {
	root := buildFromBytes([]byte("small"), DefaultConfig())
	require.NotNil(t, root)
	assert.True(t, root.isLeaf())
}
