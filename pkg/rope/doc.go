// Package rope implements a persistent, clone-cheap, thread-safe B-tree rope:
// the in-memory backing store of a text editor buffer.
//
// A Rope holds valid UTF-8 text as a balanced tree of fixed-fan-out nodes.
// Every leaf sits at the same depth, every internal node keeps a parallel
// array of precomputed per-child aggregates (TextInfo), and every mutation
// proceeds by cloning only the nodes on the path from the root to the edit
// (copy-on-write), so a Rope is cheap to Clone and safe to read from many
// goroutines at once.
//
// # Why a B-tree instead of a plain binary tree
//
// A naive rope built from a binary tree of (left, right) nodes degrades to
// O(n) depth under repeated edits at one end, and every leaf is a single
// allocation with poor cache locality. Bounding fan-out to [minChildren,
// maxChildren] keeps the tree shallow (height is O(log n / log
// maxChildren)) and keeps each node's children packed into one allocation
// that the memory allocator sees as a uniform size class.
//
// # Thread safety
//
// Insert and Remove edit a Rope in place and return the same *Rope; along
// the mutation path, nodes this Rope owns alone are mutated directly and
// nodes with more than one owner are cloned first, so other Ropes sharing
// them never see the change. Clone is O(1): it only increments the root's
// reference count.
// Concurrent reads across clones require no locking; concurrent mutation of
// the *same* Rope value from multiple goroutines is not supported (callers
// needing that must synchronize externally, exactly as they would for a
// shared slice header).
//
// # Metrics
//
// Every subtree carries a TextInfo: byte length, Unicode scalar-value
// count, UTF-16 code-unit count, and one line-break count per recognized
// line-break flavor. TextInfo is a commutative monoid under addition, which
// is what lets splits and concatenations update ancestor metadata in O(fan
// out) instead of rescanning the whole subtree.
//
// # Example
//
//	r := rope.New("Hello, 世界!\n")
//	r, _ = r.TryInsert(7, "beautiful ")
//	fmt.Println(r.String())
//	fmt.Println(r.LenChars(), r.LenLines(rope.LineLF))
package rope
