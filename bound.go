// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// CompressBound returns the worst-case encoded size for an input of n bytes,
// fully incompressible data included. Use it to size destination buffers.
// It returns 0 when n is negative or larger than MaxInputSize.
func CompressBound(n int) int {
	if n < 0 || n > MaxInputSize {
		return 0
	}

	return n + n/extLimit + boundMargin
}
