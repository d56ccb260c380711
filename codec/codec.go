// Package codec puts the block encoder behind a common interface with a few
// reference codecs and implements the caller-side storage policy: a payload the codec
// cannot shrink is stored raw, and a payload that fails to decode is rejected whole.
//
// Blocks carry no framing, so every Decompress takes the original size.
package codec

import (
	"errors"
	"fmt"
	"strings"
)

// Method identifies how a payload was stored.
type Method uint8

const (
	// MethodNone stores the payload uncompressed.
	MethodNone Method = iota
	// MethodBlock is the fast block encoder.
	MethodBlock
	// MethodBlockHC is the high-compression block encoder.
	MethodBlockHC
	// MethodLZ4 is the pierrec/lz4 block codec.
	MethodLZ4
	// MethodS2 is klauspost S2.
	MethodS2
	// MethodZstd is klauspost zstd.
	MethodZstd
)

var methodNames = [...]string{
	MethodNone:    "none",
	MethodBlock:   "block",
	MethodBlockHC: "block-hc",
	MethodLZ4:     "lz4",
	MethodS2:      "s2",
	MethodZstd:    "zstd",
}

var (
	// ErrUnknownMethod is returned for a Method value or name with no codec.
	ErrUnknownMethod = errors.New("unknown compression method")
	// ErrIncompressible is returned by Compress when the encoded form would not be
	// smaller than the input. Store turns it into MethodNone.
	ErrIncompressible = errors.New("payload is incompressible")
	// ErrSizeMismatch is returned when a payload decodes to a size other than the declared one.
	ErrSizeMismatch = errors.New("decoded size mismatch")
	// ErrFingerprintMismatch is returned by Verify when decoded bytes differ from the source.
	ErrFingerprintMismatch = errors.New("fingerprint mismatch")
	// ErrRejected wraps every Load failure: the payload must not be used.
	ErrRejected = errors.New("payload rejected")
)

// Codec compresses and decompresses whole payloads.
type Codec interface {
	// Method returns the identifier recorded next to stored payloads.
	Method() Method
	// Compress returns a newly allocated encoded payload, or ErrIncompressible when the
	// result would not be smaller than src.
	Compress(src []byte) ([]byte, error)
	// Decompress decodes src into a newly allocated buffer of exactly size bytes.
	Decompress(src []byte, size int) ([]byte, error)
}

// String returns the method name.
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}

	return fmt.Sprintf("method(%d)", uint8(m))
}

// Methods returns every supported method in identifier order.
func Methods() []Method {
	return []Method{MethodNone, MethodBlock, MethodBlockHC, MethodLZ4, MethodS2, MethodZstd}
}

// ParseMethod resolves a method name, case-insensitively.
func ParseMethod(name string) (Method, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range Methods() {
		if methodNames[m] == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// New returns the codec for method with default settings.
func New(method Method) (Codec, error) {
	switch method {
	case MethodNone:
		return NewNoneCodec(), nil
	case MethodBlock:
		return NewBlockCodec(0), nil
	case MethodBlockHC:
		return NewBlockCodec(9), nil
	case MethodLZ4:
		return NewLZ4Codec(), nil
	case MethodS2:
		return NewS2Codec(), nil
	case MethodZstd:
		return NewZstdCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

// checkSize reports a decoded length that differs from the declared size.
func checkSize(method Method, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s produced %d bytes, want %d", ErrSizeMismatch, method, got, want)
	}

	return nil
}
