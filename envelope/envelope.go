// Package envelope frames a single encoded payload for storage or
// transport. A sealed envelope carries a version byte, the compression
// algorithm, the payload's original size, the (possibly compressed) body as
// a length-prefixed blob, and an xxHash64 checksum of the body.
//
// The frame is written and read with the codec-layer coders themselves; the
// envelope treats the payload as opaque bytes and adds no message or field
// semantics.
package envelope

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/picowire/buffer"
	"github.com/arloliu/picowire/codec"
	"github.com/arloliu/picowire/compress"
	"github.com/arloliu/picowire/endian"
	"github.com/arloliu/picowire/format"
	"github.com/arloliu/picowire/internal/options"
)

// Version is the envelope frame version written by Seal.
const Version uint8 = 0x1

var (
	// ErrTruncated indicates the sealed bytes end before a complete frame.
	ErrTruncated = errors.New("envelope: truncated frame")
	// ErrVersionMismatch indicates an unsupported frame version.
	ErrVersionMismatch = errors.New("envelope: unsupported frame version")
	// ErrChecksumMismatch indicates the body bytes do not match the stored checksum.
	ErrChecksumMismatch = errors.New("envelope: checksum mismatch")
	// ErrSizeMismatch indicates the decompressed payload size does not match the stored raw size.
	ErrSizeMismatch = errors.New("envelope: raw size mismatch")
)

// Frame coders. The envelope is a cross-machine container, so fixed-width
// fields use an explicit little-endian layout rather than the native engine.
var (
	u8Coder   = codec.NewIntegerCoder[uint8](endian.GetLittleEndianEngine())
	u64Coder  = codec.NewIntegerCoder[uint64](endian.GetLittleEndianEngine())
	sizeCoder = codec.NewVarintCoder[uint64]()
	typeCoder = codec.NewEnumCoder[format.CompressionType]()
	bodyCoder = codec.NewBytesCoder()
)

// Info describes a sealed envelope without materializing its payload.
type Info struct {
	Version     uint8
	Compression format.CompressionType
	RawSize     uint64
	BodySize    int
}

type sealConfig struct {
	compression format.CompressionType
}

// Option configures Seal.
type Option = options.Option[*sealConfig]

// WithCompression selects the compression algorithm applied to the payload
// before framing. The default is format.CompressionNone.
func WithCompression(typ format.CompressionType) Option {
	return options.New(func(cfg *sealConfig) error {
		if _, err := compress.GetCodec(typ); err != nil {
			return err
		}
		cfg.compression = typ

		return nil
	})
}

// Seal frames payload into a self-describing envelope.
//
// The payload is compressed with the configured codec, then framed as:
// version byte, compression type (enum varint), raw payload size (varint),
// length-prefixed body, and the xxHash64 of the body as a fixed 64-bit
// little-endian word.
//
// Parameters:
//   - payload: Encoded payload bytes to frame (treated as opaque)
//   - opts: Optional configuration (e.g. WithCompression)
//
// Returns:
//   - []byte: The sealed frame, newly allocated and owned by the caller
//   - error: Configuration or compression error
func Seal(payload []byte, opts ...Option) ([]byte, error) {
	cfg := &sealConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	cc, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	body, err := cc.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("envelope: compress payload: %w", err)
	}

	w := buffer.NewWriter()
	defer w.Release()

	buffer.Append(w, u8Coder, Version)
	buffer.Append(w, typeCoder, cfg.compression)
	buffer.Append(w, sizeCoder, uint64(len(payload)))
	buffer.Append(w, bodyCoder, body)
	buffer.Append(w, u64Coder, xxhash.Sum64(body))

	out := make([]byte, w.Size())
	copy(out, w.Bytes())

	return out, nil
}

// Open verifies and unframes a sealed envelope, returning the original
// payload.
//
// Verification order: frame completeness, version, body checksum, then
// decompression and raw-size agreement. Any trailing bytes after the frame
// are rejected as truncation-style corruption.
//
// Parameters:
//   - sealed: Bytes produced by Seal
//
// Returns:
//   - []byte: The original payload, newly allocated and owned by the caller
//   - error: One of the package sentinels, or a codec lookup/decompression error
func Open(sealed []byte) ([]byte, error) {
	span := codec.Span(sealed)

	version, span, ok := u8Coder.Decode(span)
	if !ok {
		return nil, ErrTruncated
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersionMismatch, version)
	}

	typ, span, ok := typeCoder.Decode(span)
	if !ok {
		return nil, ErrTruncated
	}

	rawSize, span, ok := sizeCoder.Decode(span)
	if !ok {
		return nil, ErrTruncated
	}

	body, span, ok := bodyCoder.Decode(span)
	if !ok {
		return nil, ErrTruncated
	}

	sum, span, ok := u64Coder.Decode(span)
	if !ok {
		return nil, ErrTruncated
	}
	if !span.Empty() {
		return nil, fmt.Errorf("envelope: %d trailing bytes after frame", span.Len())
	}

	if xxhash.Sum64(body) != sum {
		return nil, ErrChecksumMismatch
	}

	cc, err := compress.GetCodec(typ)
	if err != nil {
		return nil, err
	}

	payload, err := cc.Decompress(body)
	if err != nil {
		return nil, fmt.Errorf("envelope: decompress payload: %w", err)
	}

	if uint64(len(payload)) != rawSize {
		return nil, fmt.Errorf("%w: header %d, payload %d", ErrSizeMismatch, rawSize, len(payload))
	}

	return payload, nil
}

// Inspect reads an envelope's header and verifies its framing without
// decompressing or copying the payload. The body is stepped over with the
// blob coder's DecodeSkip, so the cost is independent of payload size.
//
// Parameters:
//   - sealed: Bytes produced by Seal
//
// Returns:
//   - Info: Frame metadata (version, compression, sizes)
//   - error: ErrTruncated or ErrVersionMismatch
func Inspect(sealed []byte) (Info, error) {
	span := codec.Span(sealed)

	version, span, ok := u8Coder.Decode(span)
	if !ok {
		return Info{}, ErrTruncated
	}
	if version != Version {
		return Info{}, fmt.Errorf("%w: %d", ErrVersionMismatch, version)
	}

	typ, span, ok := typeCoder.Decode(span)
	if !ok {
		return Info{}, ErrTruncated
	}

	rawSize, span, ok := sizeCoder.Decode(span)
	if !ok {
		return Info{}, ErrTruncated
	}

	afterBody, ok := bodyCoder.DecodeSkip(span)
	if !ok {
		return Info{}, ErrTruncated
	}
	bodySize := span.Len() - afterBody.Len()

	if _, ok := u64Coder.DecodeSkip(afterBody); !ok {
		return Info{}, ErrTruncated
	}

	return Info{
		Version:     version,
		Compression: typ,
		RawSize:     rawSize,
		BodySize:    bodySize,
	}, nil
}
