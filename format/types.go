// Package format defines the wire-visible identifiers shared between the
// envelope layer and its codecs.
package format

// CompressionType identifies the compression algorithm applied to an
// envelope payload. It is encoded on the wire as a varint of its underlying
// uint8 value via codec.EnumCoder, so unknown values survive decoding and
// are rejected only when a codec is looked up.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
