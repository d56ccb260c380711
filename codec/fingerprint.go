package codec

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns the xxHash64 of data.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Verify decodes payload with c and checks that the result matches src by size and fingerprint.
func Verify(c Codec, src, payload []byte) error {
	out, err := c.Decompress(payload, len(src))
	if err != nil {
		return fmt.Errorf("verify %s: %w", c.Method(), err)
	}

	want, got := Fingerprint(src), Fingerprint(out)
	if want != got {
		return fmt.Errorf("verify %s: %w: fingerprint %016x, want %016x", c.Method(), ErrFingerprintMismatch, got, want)
	}

	return nil
}
