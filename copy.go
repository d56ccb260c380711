// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// copyBackRef copies length bytes from dst[outputPos-dist:] to dst[outputPos:].
// If dist < length, source and destination overlap and the copy must go byte-by-byte
// so that short patterns repeat (RLE). The built-in copy does not replicate that when
// src precedes dst, so it is used only for disjoint ranges.
func copyBackRef(dst []byte, outputPos, dist, length int) error {
	if dist == 0 {
		return ErrZeroOffset
	}

	mPos := outputPos - dist
	if mPos < 0 {
		return ErrLookBehindUnderrun
	}

	if length > len(dst)-outputPos {
		return ErrOutputOverrun
	}

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := range length {
		dst[outputPos+i] = dst[mPos+i]
	}

	return nil
}

// copyLiteralRun copies n bytes from src[*inPos:] to dst[*outPos:] and advances both positions.
func copyLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if n == 0 {
		return nil
	}

	if n > len(src)-*inPos {
		return ErrInputOverrun
	}

	if n > len(dst)-*outPos {
		return ErrOutputOverrun
	}

	copy(dst[*outPos:*outPos+n], src[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}
