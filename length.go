// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// Length fields that saturate their token nibble continue in extension bytes: a run of
// 255 bytes followed by one terminal byte in 0..254, all summed onto the nibble value.
// The encoder and the decoder both go through the helpers below.

// lengthExtSize returns the number of extension bytes needed for field value n with the given nibble mask.
func lengthExtSize(n, mask int) int {
	if n < mask {
		return 0
	}

	return (n-mask)/extLimit + 1
}

// putLengthExt writes the extension bytes for field value n (n >= mask) at dst[pos:]
// and returns the position after the terminal byte.
func putLengthExt(dst []byte, pos, n, mask int) int {
	n -= mask
	for n >= extLimit {
		dst[pos] = extLimit
		pos++
		n -= extLimit
	}

	// #nosec G115 -- n < 255 here.
	dst[pos] = byte(n)
	return pos + 1
}

// readLengthExt accumulates extension bytes from src[pos:] onto n. It returns the final
// length and the position after the terminal byte. A run that hits the end of src is
// ErrInputOverrun; one that outgrows MaxInputSize is ErrLengthOverflow.
func readLengthExt(src []byte, pos, n int) (int, int, error) {
	for {
		if pos >= len(src) {
			return 0, pos, ErrInputOverrun
		}

		b := src[pos]
		pos++
		n += int(b)
		if n > MaxInputSize {
			return 0, pos, ErrLengthOverflow
		}

		if b != extLimit {
			return n, pos, nil
		}
	}
}
