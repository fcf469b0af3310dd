package rope

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Rope is a persistent, clone-cheap UTF-8 text buffer. The zero value is
// not valid; use New, Empty, or FromChunks.
//
// Mutating methods (Insert, Remove, Append and their Try forms) follow the
// same rule every node in the tree follows: if this Rope is the sole owner
// of its root (no Clone of it is outstanding), the edit happens in place
// and the returned Rope is backed by the same, now-mutated storage; if the
// root is shared, the edit clones along the path instead. Either way the
// caller should simply keep using the returned value, exactly as with
// append to a slice.
type Rope struct {
	root *nodeHandle // nil means empty
	info TextInfo
	cfg  *Config

	buildID    uuid.UUID // stable across edits of one logical Rope lineage
	generation uuid.UUID // refreshed whenever content changes
}

func newRope(root *nodeHandle, cfg *Config) *Rope {
	r := &Rope{root: root, cfg: cfg, buildID: uuid.New(), generation: uuid.New()}
	r.refreshInfo()
	return r
}

func (r *Rope) refreshInfo() {
	if r.root == nil {
		r.info = TextInfo{}
		return
	}
	r.info = r.root.infoOf()
}

// New builds a Rope from s using the default Config. s must be valid
// UTF-8; callers that cannot guarantee this should use FromChunks, which
// validates.
func New(s string) *Rope {
	return newRope(buildFromBytes([]byte(s), DefaultConfig()), DefaultConfig())
}

// NewWithConfig is New with an explicit Config.
func NewWithConfig(s string, cfg *Config) *Rope {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return newRope(buildFromBytes([]byte(s), cfg), cfg)
}

// Empty returns a Rope holding no content.
func Empty() *Rope {
	return newRope(nil, DefaultConfig())
}

// Clone returns a Rope sharing this Rope's storage, at O(1) cost. Both
// Ropes remain independently safe to read; whichever is edited first
// clones its path away from the other transparently.
func (r *Rope) Clone() *Rope {
	out := &Rope{
		root:       r.root.retain(),
		info:       r.info,
		cfg:        r.cfg,
		buildID:    r.buildID,
		generation: r.generation,
	}
	return out
}

// IsInstance reports whether r and other currently share the same root
// storage (e.g. because one is a Clone of the other and neither has been
// edited since). It is a fast, pointer-identity based check, not a content
// comparison -- two Ropes with identical text but unrelated histories
// report false.
func (r *Rope) IsInstance(other *Rope) bool {
	return r.root == other.root
}

// Generation returns an opaque token that changes every time this Rope's
// content changes (Insert, Remove, Append, Split) and stays the same
// across Clone, so callers doing incremental work (syntax highlighting,
// diffing) can cheaply tell "has this buffer's text moved since I last
// looked" without hashing it.
func (r *Rope) Generation() uuid.UUID {
	return r.generation
}

// BuildID identifies the lineage a Rope was constructed under. It is
// carried over by Clone and by in-place Insert and Remove, while every
// Rope produced by a constructor, SplitAt, or Append (when both sides are
// non-empty) gets a fresh BuildID; split halves and append results do not
// share their ancestor's. Purely a caller-correlation aid; the rope itself
// never inspects it.
func (r *Rope) BuildID() uuid.UUID {
	return r.buildID
}

func (r *Rope) bumpGeneration() {
	r.generation = uuid.New()
}

// LenBytes returns the UTF-8 byte length of the rope's content.
func (r *Rope) LenBytes() int { return int(r.info.Bytes) }

// LenChars returns the Unicode scalar-value count.
func (r *Rope) LenChars() int { return int(r.info.Chars) }

// LenUTF16 returns the length the content would have if encoded as
// UTF-16.
func (r *Rope) LenUTF16() int { return int(r.info.Chars + r.info.UTF16Surrogates) }

// LenLines returns the number of line breaks of the given flavor. The
// number of lines (in the usual editor sense) is always LenLines+1: an
// empty rope has one empty line, and content ending in a line break has a
// trailing empty line, which Line(LenLines) returns.
func (r *Rope) LenLines(flavor LineType) int { return int(r.info.lineBreaks(flavor)) }

// String materializes the rope's full content. Prefer Chunks for large
// ropes or streaming consumers.
func (r *Rope) String() string {
	if r.root == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(int(r.info.Bytes))
	collectBytes(r.root, &b)
	return b.String()
}

func collectBytes(h *nodeHandle, b *strings.Builder) {
	if h.isLeaf() {
		b.Write(h.leaf.bytes())
		return
	}
	ch := h.internal
	for i := 0; i < ch.n; i++ {
		collectBytes(ch.handles[i], b)
	}
}

func (r *Rope) checkByteIdx(idx int) *Error {
	if idx < 0 || idx > r.LenBytes() {
		return errOutOfBounds("bytes", idx, r.LenBytes())
	}
	return nil
}

func (r *Rope) checkCharBoundary(idx int) *Error {
	if idx <= 0 || idx >= r.LenBytes() || r.root == nil {
		return nil
	}
	leaf, local := leafAt(r.root, idx)
	if !isCharBoundary(leaf.leaf.bytes(), local) {
		return errNotCharBoundary(idx)
	}
	return nil
}

// TryInsert inserts text at byteIdx, which must be a char boundary.
func (r *Rope) TryInsert(byteIdx int, text string) (*Rope, error) {
	if err := r.checkByteIdx(byteIdx); err != nil {
		return r, err
	}
	if err := r.checkCharBoundary(byteIdx); err != nil {
		return r, err
	}
	if text == "" {
		return r, nil
	}
	data := []byte(text)

	if r.root == nil {
		r.root = buildFromBytes(data, r.cfg)
		r.refreshInfo()
		r.bumpGeneration()
		return r, nil
	}

	pos := byteIdx
	for len(data) > 0 {
		n := len(data)
		if n > maxBytes {
			n = maxBytes
		}
		chunk := data[:n]
		data = data[n:]

		newRoot, sig := insertChunk(r.root, pos, chunk, r.cfg)
		r.root = newRoot
		if sig != nil {
			r.root = growRoot(r.root, sig.sibling)
		}
		pos += n
	}
	r.refreshInfo()
	r.bumpGeneration()
	return r, nil
}

// Insert is TryInsert, panicking on error.
func (r *Rope) Insert(byteIdx int, text string) *Rope {
	out, err := r.TryInsert(byteIdx, text)
	if err != nil {
		panic(err)
	}
	return out
}

// TryRemove deletes the byte range [start, end), which must both be char
// boundaries with start <= end.
func (r *Rope) TryRemove(start, end int) (*Rope, error) {
	if start > end {
		return r, errInvalidRange(start, end)
	}
	if err := r.checkByteIdx(end); err != nil {
		return r, err
	}
	if err := r.checkCharBoundary(start); err != nil {
		return r, err
	}
	if err := r.checkCharBoundary(end); err != nil {
		return r, err
	}
	if start == end {
		return r, nil
	}
	if r.root == nil {
		return r, nil
	}

	newRoot, sig := removeRange(r.root, start, end, r.cfg)
	r.root = collapseRoot(newRoot, sig)
	r.refreshInfo()
	r.bumpGeneration()
	return r, nil
}

// Remove is TryRemove, panicking on error.
func (r *Rope) Remove(start, end int) *Rope {
	out, err := r.TryRemove(start, end)
	if err != nil {
		panic(err)
	}
	return out
}

// growRoot wraps a root that just overflowed (producing a same-height
// sibling) in a new two-child internal node, growing the tree's height by
// one -- the mirror image of collapseRoot, which shrinks it.
func growRoot(root, sibling *nodeHandle) *nodeHandle {
	ch := acquireChildren()
	ch.push(root, root.infoOf())
	ch.push(sibling, sibling.infoOf())
	return newInternalHandle(ch)
}

// collapseRoot drops pointless single-child wrapper levels a removal can
// leave behind at the root -- the root is exempt from minChildren (there
// is no sibling to redistribute with at the very top), so the only
// cleanup needed is collapsing a chain of size-1 internal nodes down to
// their eventual content.
func collapseRoot(h *nodeHandle, sig removeSignal) *nodeHandle {
	if sig == removeEmpty {
		return nil
	}
	return collapseSingletonChain(h)
}

// TrySplitAt divides the rope into two independent Ropes at byteIdx, which
// must be a char boundary. r itself must not be used afterward (per the
// package's consume-on-edit convention); use Clone first if both the
// original and the split pieces are needed.
func (r *Rope) TrySplitAt(byteIdx int) (*Rope, *Rope, error) {
	if err := r.checkByteIdx(byteIdx); err != nil {
		return nil, nil, err
	}
	if err := r.checkCharBoundary(byteIdx); err != nil {
		return nil, nil, err
	}
	if r.root == nil {
		return Empty(), Empty(), nil
	}
	l, rr := splitTree(r.root, byteIdx, r.cfg)
	l = collapseSingletonChain(l)
	rr = collapseSingletonChain(rr)
	fixSeam(l, rr)
	return newRope(l, r.cfg), newRope(rr, r.cfg), nil
}

// SplitAt is TrySplitAt, panicking on error.
func (r *Rope) SplitAt(byteIdx int) (*Rope, *Rope) {
	l, rr, err := r.TrySplitAt(byteIdx)
	if err != nil {
		panic(err)
	}
	return l, rr
}

// Append concatenates other onto the end of r and returns the combined
// Rope. Per the package's consume-on-edit convention, neither r nor other
// should be used afterward; Clone first if they are still needed
// independently.
func (r *Rope) Append(other *Rope) *Rope {
	if other == nil || other.root == nil {
		return r
	}
	if r.root == nil {
		return other
	}

	fixSeam(r.root, other.root)

	hL, hR := r.root.height(), other.root.height()
	var root *nodeHandle
	if hL >= hR {
		newRoot, sig := appendAtDepth(r.root, hL-hR, other.root)
		root = newRoot
		if sig != nil {
			root = growRoot(root, sig.sibling)
		}
	} else {
		newRoot, sig := prependAtDepth(other.root, hR-hL, r.root)
		root = newRoot
		if sig != nil {
			root = growRoot(sig.sibling, root)
		}
	}
	out := newRope(root, r.cfg)
	return out
}

// --- conversions ---

func (r *Rope) TryByteToChar(byteIdx int) (int, error) {
	if err := r.checkByteIdx(byteIdx); err != nil {
		return 0, err
	}
	return int(treeByteToMetric(r.root, byteIdx, metricChars)), nil
}

func (r *Rope) ByteToChar(byteIdx int) int {
	n, err := r.TryByteToChar(byteIdx)
	if err != nil {
		panic(err)
	}
	return n
}

func (r *Rope) TryCharToByte(charIdx int) (int, error) {
	if charIdx < 0 || charIdx > r.LenChars() {
		return 0, errOutOfBounds("chars", charIdx, r.LenChars())
	}
	return treeMetricToByte(r.root, uint64(charIdx), metricChars), nil
}

func (r *Rope) CharToByte(charIdx int) int {
	n, err := r.TryCharToByte(charIdx)
	if err != nil {
		panic(err)
	}
	return n
}

func (r *Rope) TryByteToUTF16(byteIdx int) (int, error) {
	if err := r.checkByteIdx(byteIdx); err != nil {
		return 0, err
	}
	return int(treeByteToMetric(r.root, byteIdx, metricUTF16)), nil
}

func (r *Rope) ByteToUTF16(byteIdx int) int {
	n, err := r.TryByteToUTF16(byteIdx)
	if err != nil {
		panic(err)
	}
	return n
}

func (r *Rope) TryUTF16ToByte(unitIdx int) (int, error) {
	if unitIdx < 0 || unitIdx > r.LenUTF16() {
		return 0, errOutOfBounds("utf16", unitIdx, r.LenUTF16())
	}
	return treeMetricToByte(r.root, uint64(unitIdx), metricUTF16), nil
}

func (r *Rope) UTF16ToByte(unitIdx int) int {
	n, err := r.TryUTF16ToByte(unitIdx)
	if err != nil {
		panic(err)
	}
	return n
}

func (r *Rope) TryByteToLine(byteIdx int, flavor LineType) (int, error) {
	if err := r.checkByteIdx(byteIdx); err != nil {
		return 0, err
	}
	return int(treeByteToMetric(r.root, byteIdx, lineTypeToMetric(flavor))), nil
}

func (r *Rope) ByteToLine(byteIdx int, flavor LineType) int {
	n, err := r.TryByteToLine(byteIdx, flavor)
	if err != nil {
		panic(err)
	}
	return n
}

func (r *Rope) TryLineToByte(lineIdx int, flavor LineType) (int, error) {
	n := r.LenLines(flavor)
	if lineIdx < 0 || lineIdx > n {
		return 0, errLineOutOfBounds(lineIdx, n)
	}
	return treeMetricToByte(r.root, uint64(lineIdx), lineTypeToMetric(flavor)), nil
}

func (r *Rope) LineToByte(lineIdx int, flavor LineType) int {
	n, err := r.TryLineToByte(lineIdx, flavor)
	if err != nil {
		panic(err)
	}
	return n
}

// TryLine returns a view over line lineIdx (0-indexed) under the given
// flavor: the span from its start through its own line break, except for
// the last line, which runs to the end of the rope instead. lineIdx must
// be in [0, LenLines(flavor)], the same range TryLineToByte accepts,
// since the trailing value addresses the partial final line (or the
// empty line immediately after a trailing break).
func (r *Rope) TryLine(lineIdx int, flavor LineType) (*RopeSlice, error) {
	n := r.LenLines(flavor)
	if lineIdx < 0 || lineIdx > n {
		return nil, errLineOutOfBounds(lineIdx, n)
	}
	start := r.LineToByte(lineIdx, flavor)
	end := r.LenBytes()
	if lineIdx < n {
		end = r.LineToByte(lineIdx+1, flavor)
	}
	return r.TrySlice(start, end)
}

// Line is TryLine, panicking on error.
func (r *Rope) Line(lineIdx int, flavor LineType) *RopeSlice {
	s, err := r.TryLine(lineIdx, flavor)
	if err != nil {
		panic(err)
	}
	return s
}

// ChunkAtByte returns the leaf-sized chunk containing byteIdx and that
// chunk's starting byte offset within the whole rope. Chunks and the
// index conversions walk the tree themselves rather than calling it.
func (r *Rope) TryChunkAtByte(byteIdx int) (chunk []byte, chunkStart int, err error) {
	if err := r.checkByteIdx(byteIdx); err != nil {
		return nil, 0, err
	}
	if r.root == nil {
		return nil, 0, nil
	}
	leaf, local := leafAt(r.root, byteIdx)
	start := byteIdx - local
	return leaf.leaf.bytes(), start, nil
}

func (r *Rope) ChunkAtByte(byteIdx int) ([]byte, int) {
	chunk, start, err := r.TryChunkAtByte(byteIdx)
	if err != nil {
		panic(err)
	}
	return chunk, start
}

// TryByteAt returns the raw byte at byteIdx.
func (r *Rope) TryByteAt(byteIdx int) (byte, error) {
	if byteIdx < 0 || byteIdx >= r.LenBytes() {
		return 0, errOutOfBounds("bytes", byteIdx, r.LenBytes())
	}
	leaf, local := leafAt(r.root, byteIdx)
	return leaf.leaf.bytes()[local], nil
}

func (r *Rope) ByteAt(byteIdx int) byte {
	b, err := r.TryByteAt(byteIdx)
	if err != nil {
		panic(err)
	}
	return b
}

// TryCharAt decodes the scalar value starting at byteIdx, which must be a
// char boundary.
func (r *Rope) TryCharAt(byteIdx int) (rune, error) {
	if err := r.checkByteIdx(byteIdx); err != nil {
		return 0, err
	}
	if err := r.checkCharBoundary(byteIdx); err != nil {
		return 0, err
	}
	if byteIdx >= r.LenBytes() {
		return 0, errOutOfBounds("bytes", byteIdx, r.LenBytes())
	}
	leaf, local := leafAt(r.root, byteIdx)
	data := leaf.leaf.bytes()
	if local < len(data) {
		rr, _ := utf8.DecodeRune(data[local:])
		return rr, nil
	}
	// Scalar value happened to straddle this leaf and the next (never
	// mid-leaf, only possible exactly at a leaf's end boundary).
	next, _, _ := r.TryChunkAtByte(byteIdx)
	rr, _ := utf8.DecodeRune(next)
	return rr, nil
}

func (r *Rope) CharAt(byteIdx int) rune {
	rr, err := r.TryCharAt(byteIdx)
	if err != nil {
		panic(err)
	}
	return rr
}

// TrySlice returns a read-only view over [start, end), both of which must
// be char boundaries with start <= end.
func (r *Rope) TrySlice(start, end int) (*RopeSlice, error) {
	if start > end {
		return nil, errInvalidRange(start, end)
	}
	if err := r.checkByteIdx(end); err != nil {
		return nil, err
	}
	if err := r.checkCharBoundary(start); err != nil {
		return nil, err
	}
	if err := r.checkCharBoundary(end); err != nil {
		return nil, err
	}
	return sliceRope(r, start, end), nil
}

func (r *Rope) Slice(start, end int) *RopeSlice {
	s, err := r.TrySlice(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// Config returns the Config this Rope was built with.
func (r *Rope) Config() *Config { return r.cfg }
