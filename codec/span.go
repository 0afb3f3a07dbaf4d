package codec

// Span is a non-owning, bounds-known view over a contiguous byte region.
//
// A Span never owns storage: it is a plain slice header (pointer, length,
// capacity) over a buffer supplied by the caller. Every codec operation reads
// or writes through a Span and returns the remaining suffix as a new Span
// sharing the same backing array.
//
// Spans are not safe for concurrent mutation. The contract assumes a single
// logical writer or reader per span at a time; callers that need concurrency
// must partition spans disjointly or serialize access externally.
type Span []byte

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return len(s)
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return len(s) == 0
}
