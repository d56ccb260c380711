package codec

import (
	"errors"

	"github.com/woozymasta/lz4block"
)

// BlockCodec wraps the block encoder. Level 0 selects the fast encoder and 1-9 the
// high-compression encoder.
type BlockCodec struct {
	level int
	hc    *lz4block.HCOptions
}

var _ Codec = (*BlockCodec)(nil)

// NewBlockCodec returns a block codec for level (clamped to 0..9).
func NewBlockCodec(level int) *BlockCodec {
	level = min(max(level, 0), 9)

	c := &BlockCodec{level: level}
	if level > 0 {
		c.hc = lz4block.HCLevelOptions(level)
	}

	return c
}

// Method implements Codec.
func (c *BlockCodec) Method() Method {
	if c.hc != nil {
		return MethodBlockHC
	}

	return MethodBlock
}

// Level returns the clamped compression level.
func (c *BlockCodec) Level() int {
	return c.level
}

// Compress encodes src with a cap of len(src)-1 bytes, so any success is a real saving.
func (c *BlockCodec) Compress(src []byte) ([]byte, error) {
	dst := make([]byte, max(len(src)-1, 0))

	var (
		n   int
		err error
	)
	if c.hc != nil {
		n, err = lz4block.CompressBlockHCLimited(src, dst, len(dst), c.hc)
	} else {
		n, err = lz4block.CompressBlockLimited(src, dst, len(dst))
	}

	if errors.Is(err, lz4block.ErrOutputTooSmall) {
		return nil, ErrIncompressible
	}
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes src with the safe decoder, using size as the capacity.
func (c *BlockCodec) Decompress(src []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, checkSize(c.Method(), 0, size)
	}

	dst := make([]byte, size)
	n, err := lz4block.DecompressBlockSafe(src, dst, size)
	if err != nil {
		return nil, err
	}

	if err := checkSize(c.Method(), n, size); err != nil {
		return nil, err
	}

	return dst, nil
}
