// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// Compress compresses src into a newly allocated block. opts may be nil (fast encoder).
// Level 0 = fast encoder; 1-9 = high-compression encoder (better ratio, slower).
// Levels are clamped to 0..9.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	level := max(opts.Level, 0)

	dst := make([]byte, CompressBound(len(src)))

	var (
		n   int
		err error
	)
	if level == 0 {
		n, err = CompressBlock(src, dst)
	} else {
		n, err = CompressBlockHC(src, dst, hcLevelOptions(level))
	}
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}
