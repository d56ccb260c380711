// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// DecompressOptions configures decompression.
// OutLen is required (exact decompressed size); MaxInputSize limits reads when using DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the exact decompressed size (required: the block format carries no size).
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// CompressOptions configures the allocating Compress helper.
type CompressOptions struct {
	// Level: 0 = fast encoder; 1-9 = high-compression encoder (higher = better ratio, slower).
	Level int
}

// DefaultCompressOptions returns options for the fast encoder (level 0).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: 0}
}

// HCOptions configures the high-compression chain search.
type HCOptions struct {
	// MaxAttempts is the number of chain candidates examined per position (<= 0 = level 9 value).
	MaxAttempts int
	// NiceLength stops the chain walk once a match this long is found (0 = no limit).
	NiceLength int
	// Lazy defers a match by one byte when the next position yields a strictly longer one.
	Lazy bool
}

// DefaultHCOptions returns the level 9 search parameters.
func DefaultHCOptions() *HCOptions {
	return hcLevelOptions(len(hcLevels))
}

// HCLevelOptions returns the search parameters for level 1-9 (clamped).
func HCLevelOptions(level int) *HCOptions {
	return hcLevelOptions(level)
}
