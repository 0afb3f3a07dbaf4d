// Package codec implements the protobuf-style wire codec primitives that the
// rest of picowire is built on: fixed-width integer/float/bool coders, the
// variable-length integer (varint) coder with its zigzag-signed variant, an
// enum coder, and length-prefixed sequence coders for slices, strings and
// byte blobs.
//
// # Coders
//
// Every coder is a small stateless value type that converts between a Go
// value and its binary encoding inside a caller-supplied Span. Composite
// coders (arrays, enums) delegate to their component coder rather than
// reimplementing byte-level logic.
//
// # Safe and unsafe modes
//
// Each operation exists in two variants with identical byte-level semantics:
//
//   - Safe (Encode, Decode, DecodeSkip): bounds-checked. Failure — an output
//     span too small for the value, or an input span that ends before a
//     complete encoding — is reported through an ok=false result, never
//     through a partial value.
//   - Unsafe (EncodeUnsafe, DecodeUnsafe, DecodeSkipUnsafe): no bounds
//     checks. The caller must have already established that the span is
//     large enough, typically by computing the exact size with EncodeSkip
//     first. Calling an unsafe variant with an undersized span is a contract
//     violation with undefined results.
//
// # Skip
//
// Every coder also answers two questions without doing the full work:
// EncodeSkip reports the exact number of bytes Encode would write, and
// DecodeSkip advances past one encoded value without constructing it.
// Sequence encoding depends on EncodeSkip to compute its length prefix, and
// higher layers use DecodeSkip to jump over values they do not care about.
package codec
