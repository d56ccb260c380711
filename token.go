// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// tokenNibble clamps a length field to its 4-bit token slot; mask means "extension bytes follow".
func tokenNibble(n, mask int) byte {
	if n >= mask {
		return byte(mask)
	}

	// #nosec G115 -- n < mask <= 15.
	return byte(n)
}

// tokenByte packs a literal-run length and a match length (already minus MinMatch) into one token.
func tokenByte(litLen, matchLenField int) byte {
	return tokenNibble(litLen, runMask)<<mlBits | tokenNibble(matchLenField, mlMask)
}
