package codec

// NoneCodec stores payloads as they are.
type NoneCodec struct{}

var _ Codec = NoneCodec{}

// NewNoneCodec returns the pass-through codec.
func NewNoneCodec() NoneCodec {
	return NoneCodec{}
}

// Method implements Codec.
func (NoneCodec) Method() Method {
	return MethodNone
}

// Compress returns a copy of src. It never reports ErrIncompressible.
func (NoneCodec) Compress(src []byte) ([]byte, error) {
	return append([]byte(nil), src...), nil
}

// Decompress returns a copy of src, which must be exactly size bytes.
func (NoneCodec) Decompress(src []byte, size int) ([]byte, error) {
	if err := checkSize(MethodNone, len(src), size); err != nil {
		return nil, err
	}

	return append(make([]byte, 0, size), src...), nil
}
