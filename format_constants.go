// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// LZ4 block format constants: token layout, end-of-block margins and limits.

// Token layout: high nibble is the literal-run length, low nibble the match length minus MinMatch.
const (
	runBits  = 4
	mlBits   = 4
	runMask  = (1 << runBits) - 1
	mlMask   = (1 << mlBits) - 1
	extLimit = 255 // extension byte value that continues the length field
)

// Match bounds.
const (
	// MinMatch is the shortest back-reference the format can express.
	MinMatch = 4
	// MaxOffset is the largest backward distance a 2-byte offset can hold.
	MaxOffset = 65535
)

// End-of-block margins. Every block ends with a literals-only sequence holding at
// least lastLiterals bytes, and match search stops mfLimit bytes before the end so a
// 4-byte prefix load never reads past the input.
const (
	lastLiterals = 1
	mfLimit      = MinMatch + lastLiterals
	minInputLen  = mfLimit + 1 // shorter inputs are emitted as a single literal run
	boundMargin  = 16          // fixed overhead in CompressBound
	offsetSize   = 2           // little-endian offset field
)

// MaxInputSize is the largest input the encoder accepts (the legacy "~1.9 GB" limit).
const MaxInputSize = 0x7E000000

// Hash parameters for the fast match index.
const (
	hashMinLog   = 10
	hashMaxLog   = 16
	hashPrime32  = 2654435761 // Knuth's multiplicative constant (2^32 / phi)
	skipStrength = 6          // literal-search acceleration: step grows every 2^skipStrength misses
)

// Hash parameters for the high-compression chain index.
const (
	chainHashLog  = 15
	chainSize     = MaxOffset + 1 // one delta slot per position in the offset window
	chainMask     = chainSize - 1
	chainMaxDelta = MaxOffset
)
