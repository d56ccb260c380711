package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools single-threaded decoders; DecodeAll is stateless across calls.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPool pools encoders; EncodeAll is stateless across calls.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

// ZstdCodec is klauspost zstd with pooled encoders and decoders.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns the zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Method implements Codec.
func (ZstdCodec) Method() Method {
	return MethodZstd
}

// Compress encodes src as one zstd frame.
func (ZstdCodec) Compress(src []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	out := encoder.EncodeAll(src, nil)
	if len(out) >= len(src) {
		return nil, ErrIncompressible
	}

	return out, nil
}

// Decompress decodes one zstd frame of exactly size bytes.
func (ZstdCodec) Decompress(src []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, checkSize(MethodZstd, 0, size)
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(src, make([]byte, 0, size))
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if err := checkSize(MethodZstd, len(out), size); err != nil {
		return nil, err
	}

	return out, nil
}
