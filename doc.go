// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

/*
Package lz4block implements LZ4-style block compression and decompression as a
stateless buffer-to-buffer transform. The caller owns all memory and supplies
destination capacity; nothing persists between calls, so calls on disjoint
buffers may run concurrently.

A block is a series of sequences: a token byte (high nibble literal-run length,
low nibble match length minus 4, 15 meaning "255-continued extension bytes
follow"), the literal bytes, then a 2-byte little-endian offset (1..65535) and
the match length extension. The last sequence carries literals only. There is
no magic, size or checksum: framing is the caller's job.

# Compress

Size the destination with CompressBound:

	dst := make([]byte, lz4block.CompressBound(len(src)))
	n, err := lz4block.CompressBlock(src, dst)
	// dst[:n] is the block

With a hard cap (0 and ErrOutputTooSmall if it does not fit; store src uncompressed then):

	n, err := lz4block.CompressBlockLimited(src, dst, len(src)-1)

High compression (hash chains, same format and decoders):

	n, err := lz4block.CompressBlockHC(src, dst, lz4block.HCLevelOptions(9))

Allocating helper; Level 0 = fast, 1-9 = high compression:

	block, err := lz4block.Compress(src, &lz4block.CompressOptions{Level: 9})

# Decompress

Known original size (returns compressed bytes consumed, trailing bytes untouched):

	nRead, err := lz4block.DecompressBlock(block, dst, originalSize)

Untrusted input with only a capacity bound (returns bytes produced):

	n, err := lz4block.DecompressBlockSafe(block, dst, len(dst))

Malformed input yields a *CorruptInputError carrying the fault offset:

	var ce *lz4block.CorruptInputError
	if errors.As(err, &ce) {
		_ = ce.Pos
	}

Allocating helpers:

	out, err := lz4block.Decompress(block, lz4block.DefaultDecompressOptions(originalSize))
	out, nRead, err := lz4block.DecompressN(block, lz4block.DefaultDecompressOptions(originalSize))
	out, err := lz4block.DecompressFromReader(r, lz4block.DefaultDecompressOptions(originalSize))
*/
package lz4block
