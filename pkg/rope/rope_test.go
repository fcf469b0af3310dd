package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	r := New("")
	assert.Equal(t, 0, r.LenBytes())
	assert.Equal(t, "", r.String())
}

func TestNew_Basic(t *testing.T) {
	r := New("Hello, World!")
	assert.Equal(t, 13, r.LenBytes())
	assert.Equal(t, 13, r.LenChars())
	assert.Equal(t, "Hello, World!", r.String())
}

func TestNew_MultiLeaf(t *testing.T) {
	s := strings.Repeat("0123456789", maxChildren*maxBytes/5) // forces several tree levels
	r := New(s)
	assert.Equal(t, len(s), r.LenBytes())
	assert.Equal(t, s, r.String())
}

func TestInsert_Basic(t *testing.T) {
	r := New("Hello World")
	r = r.Insert(5, ",")
	assert.Equal(t, "Hello, World", r.String())
}

func TestInsert_Large(t *testing.T) {
	r := New("start|end")
	middle := strings.Repeat("x", maxBytes*3+17)
	r = r.Insert(6, middle)
	assert.Equal(t, "start|"+middle+"end", r.String())
	assert.Equal(t, 6+len(middle)+3, r.LenBytes())
}

func TestInsert_RejectsNonCharBoundary(t *testing.T) {
	r := New("日本語")
	_, err := r.TryInsert(1, "x")
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindNotCharBoundary, rerr.Kind)
}

func TestRemove_Basic(t *testing.T) {
	r := New("Hello, World!")
	r = r.Remove(5, 7)
	assert.Equal(t, "HelloWorld!", r.String())
}

func TestRemove_Everything(t *testing.T) {
	r := New("abc")
	r = r.Remove(0, 3)
	assert.Equal(t, 0, r.LenBytes())
	assert.Equal(t, "", r.String())
}

func TestRemove_Large(t *testing.T) {
	s := strings.Repeat("a", maxBytes*5)
	r := New("XX" + s + "YY")
	r = r.Remove(2, 2+len(s))
	assert.Equal(t, "XXYY", r.String())
}

func TestSplitAt_RoundTrips(t *testing.T) {
	orig := "The quick brown fox jumps over the lazy dog"
	r := New(orig)
	left, right := r.SplitAt(16)
	assert.Equal(t, orig[:16], left.String())
	assert.Equal(t, orig[16:], right.String())
}

func TestSplitAt_LargeRoundTrips(t *testing.T) {
	orig := strings.Repeat("abcdefghij", maxBytes)
	r := New(orig)
	cut := len(orig) / 3
	left, right := r.SplitAt(cut)
	assert.Equal(t, orig[:cut], left.String())
	assert.Equal(t, orig[cut:], right.String())
	assert.NoError(t, checkInvariants(left.root))
	assert.NoError(t, checkInvariants(right.root))
}

// TestSplitAt_DeepTree_PreservesInvariants sweeps cut points across a tree
// deep enough to have at least two levels of internal nodes (height >= 2),
// concentrating near the very start and end where a recursive call's own
// split can leave it with only a single surviving child on one side --
// exactly the shape that must not be collapsed into a shorter node while
// its level still has untouched full-height siblings to its other side.
func TestSplitAt_DeepTree_PreservesInvariants(t *testing.T) {
	orig := strings.Repeat("0123456789", maxChildren*maxChildren*maxBytes/10+17)
	require.Greater(t, New(orig).root.height(), 1, "test fixture must build a tree with height >= 2")

	positions := []int{}
	for off := 1; off < 200; off++ {
		positions = append(positions, off, len(orig)-off)
	}
	for off := 0; off < len(orig); off += 37 {
		positions = append(positions, off)
	}

	for _, pos := range positions {
		if pos <= 0 || pos >= len(orig) {
			continue
		}
		r := New(orig)
		left, right := r.SplitAt(pos)
		require.NoError(t, checkInvariants(left.root), "cut at %d (left half)", pos)
		require.NoError(t, checkInvariants(right.root), "cut at %d (right half)", pos)
		require.Equal(t, orig[:pos], left.String(), "cut at %d", pos)
		require.Equal(t, orig[pos:], right.String(), "cut at %d", pos)
	}
}

func TestAppend_RoundTrips(t *testing.T) {
	a := New(strings.Repeat("left-", maxBytes))
	b := New(strings.Repeat("right-", maxBytes))
	want := a.String() + b.String()
	joined := a.Append(b)
	assert.Equal(t, want, joined.String())
}

func TestAppend_EmptySides(t *testing.T) {
	a := New("hello")
	assert.Equal(t, "hello", a.Append(Empty()).String())
	assert.Equal(t, "hello", Empty().Append(New("hello")).String())
}

func TestClone_IsIndependentAfterEdit(t *testing.T) {
	r := New("hello")
	clone := r.Clone()
	assert.True(t, r.IsInstance(clone))

	r = r.Insert(5, " world")
	assert.Equal(t, "hello world", r.String())
	assert.Equal(t, "hello", clone.String())
	assert.False(t, r.IsInstance(clone))
}

func TestGeneration_ChangesOnEditNotOnClone(t *testing.T) {
	r := New("hello")
	gen0 := r.Generation()
	clone := r.Clone()
	assert.Equal(t, gen0, clone.Generation())

	r = r.Insert(0, "x")
	assert.NotEqual(t, gen0, r.Generation())
}

func TestByteCharConversions(t *testing.T) {
	r := New("aé中\U0001F600z") // a, e-acute, CJK, emoji, z
	for i := 0; i <= r.LenChars(); i++ {
		b := r.CharToByte(i)
		back := r.ByteToChar(b)
		assert.Equal(t, i, back)
	}
}

func TestByteToLine_LineToByte(t *testing.T) {
	r := New("one\ntwo\nthree\n")
	assert.Equal(t, 3, r.LenLines(LineLF))
	assert.Equal(t, 0, r.ByteToLine(0, LineLF))
	assert.Equal(t, 1, r.ByteToLine(4, LineLF))
	assert.Equal(t, 4, r.LineToByte(1, LineLF))
}

func TestChunkAtByte(t *testing.T) {
	r := New(strings.Repeat("z", maxBytes*2))
	chunk, start := r.ChunkAtByte(maxBytes + 5)
	assert.LessOrEqual(t, start, maxBytes+5)
	assert.Less(t, maxBytes+5-start, len(chunk))
}

func TestSlice_Basic(t *testing.T) {
	r := New("Hello, World!")
	s := r.Slice(7, 12)
	assert.Equal(t, "World", s.String())
	assert.Equal(t, 5, s.LenBytes())
}

func TestLine_EmptyRope(t *testing.T) {
	r := Empty()
	assert.Equal(t, "", r.Line(0, LineLF).String())
}

func TestLine_MidAndFinalLines(t *testing.T) {
	r := New("line1\nline2\nline3")
	assert.Equal(t, "line1\n", r.Line(0, LineLF).String())
	assert.Equal(t, "line2\n", r.Line(1, LineLF).String())
	assert.Equal(t, "line3", r.Line(2, LineLF).String())

	_, err := r.TryLine(3, LineLF)
	require.Error(t, err)
}

func TestLine_TrailingLineBreakAddsEmptyFinalLine(t *testing.T) {
	r := New("only\n")
	assert.Equal(t, "only\n", r.Line(0, LineLF).String())
	assert.Equal(t, "", r.Line(1, LineLF).String())
}

func TestOutOfBoundsErrors(t *testing.T) {
	r := New("abc")
	_, err := r.TryInsert(100, "x")
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindOutOfBounds, rerr.Kind)
}

func TestInvalidRangeError(t *testing.T) {
	r := New("abcdef")
	_, err := r.TryRemove(4, 2)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindInvalidRange, rerr.Kind)
}
