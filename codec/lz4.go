package codec

import (
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; each carries a hash table worth reusing.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec is the pierrec/lz4 block codec. Its blocks use the same wire format as
// BlockCodec.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec returns the pierrec/lz4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Method implements Codec.
func (LZ4Codec) Method() Method {
	return MethodLZ4
}

// Compress encodes src with a pooled lz4.Compressor.
func (LZ4Codec) Compress(src []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(src)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst)
	if err != nil {
		return nil, err
	}

	// pierrec reports incompressible input as 0 bytes written.
	if n == 0 || n >= len(src) {
		return nil, ErrIncompressible
	}

	return dst[:n], nil
}

// Decompress decodes src into exactly size bytes.
func (LZ4Codec) Decompress(src []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, checkSize(MethodLZ4, 0, size)
	}

	dst := make([]byte, size)
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, err
	}

	if err := checkSize(MethodLZ4, n, size); err != nil {
		return nil, err
	}

	return dst, nil
}
