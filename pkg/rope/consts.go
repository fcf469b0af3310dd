package rope

// Internal tree-shape constants. Spec intentionally keeps these out of the
// public API ("must be treated as internal and not exposed"); they are
// tuned, not historical, and are free to change between releases without
// breaking callers.
const (
	// maxBytes bounds how much UTF-8 a single leaf holds inline; leafText's
	// inline array is exactly this size. A leaf's storage and an internal
	// node's children array are separate allocations, and their sizes
	// (about 1 KiB and under 0.5 KiB on a 64-bit system) are not matched
	// to each other or to a multiple of 256 bytes.
	maxBytes = 1024

	// minBytes is the lower size a non-root, non-oversized leaf must
	// maintain after any edit.
	minBytes = maxBytes / 2

	// maxChildren bounds internal node fan-out.
	maxChildren = 8

	// minChildren is the lower fan-out a non-root internal node must
	// maintain after any edit.
	minChildren = maxChildren / 2
)
