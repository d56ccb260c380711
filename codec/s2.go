package codec

import "github.com/klauspost/compress/s2"

// S2Codec is klauspost S2 block compression.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec returns the S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Method implements Codec.
func (S2Codec) Method() Method {
	return MethodS2
}

// Compress encodes src as an S2 block.
func (S2Codec) Compress(src []byte) ([]byte, error) {
	out := s2.Encode(nil, src)
	if len(out) >= len(src) {
		return nil, ErrIncompressible
	}

	return out, nil
}

// Decompress checks the length recorded in the S2 block before decoding it.
func (S2Codec) Decompress(src []byte, size int) ([]byte, error) {
	n, err := s2.DecodedLen(src)
	if err != nil {
		return nil, err
	}

	if err := checkSize(MethodS2, n, size); err != nil {
		return nil, err
	}

	return s2.Decode(make([]byte, size), src)
}
