// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

import (
	"encoding/binary"
	"fmt"
)

// Decompress decompresses a block from src into a new buffer of length opts.OutLen.
// Returns ErrOptionsRequired if opts is nil or OutLen is negative.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := DecompressN(src, opts)
	return out, err
}

// DecompressN decompresses a block from src and returns the decoded slice and the
// number of input bytes consumed (nRead). nRead is 0 on error. Use this when walking
// back-to-back blocks with known sizes.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, 0, ErrOptionsRequired
	}

	return DecompressNInto(src, make([]byte, opts.OutLen))
}

// DecompressInto decodes a block of exactly len(dst) bytes into caller-managed memory
// and returns dst.
func DecompressInto(src, dst []byte) ([]byte, error) {
	out, _, err := DecompressNInto(src, dst)
	return out, err
}

// DecompressNInto is DecompressInto that also returns the number of input bytes consumed.
func DecompressNInto(src, dst []byte) ([]byte, int, error) {
	nRead, err := DecompressBlock(src, dst, len(dst))
	if err != nil {
		return nil, 0, err
	}

	return dst, nRead, nil
}

// DecompressBlock decodes a block whose original size is known. It writes exactly
// outputSize bytes to dst and returns the number of compressed bytes consumed; bytes of
// src after the block are left alone, so back-to-back blocks can be walked by advancing
// src. dst must hold at least outputSize bytes.
//
// On malformed input it stops at the fault and returns 0 and a *CorruptInputError whose
// Pos is the offending source offset. dst contents are unspecified after an error.
func DecompressBlock(src, dst []byte, outputSize int) (int, error) {
	if outputSize < 0 || outputSize > len(dst) {
		return 0, fmt.Errorf("%w: outputSize=%d len(dst)=%d", ErrOutputTooSmall, outputSize, len(dst))
	}

	_, consumed, err := decodeBlock(src, dst[:outputSize], true)
	if err != nil {
		return 0, err
	}

	return consumed, nil
}

// DecompressBlockSafe decodes a block of unknown original size into at most
// min(maxOutputSize, len(dst)) bytes of dst and returns the number of bytes produced.
// All of src must be the block. Every literal run and match is checked against the
// remaining capacity before it is written, so no input, however malformed, makes it read
// or write outside src and dst.
//
// On malformed input it returns 0 and a *CorruptInputError. dst contents are unspecified after an error.
func DecompressBlockSafe(src, dst []byte, maxOutputSize int) (int, error) {
	limit := min(maxOutputSize, len(dst))
	limit = max(limit, 0)

	produced, _, err := decodeBlock(src, dst[:limit], false)
	if err != nil {
		return 0, err
	}

	return produced, nil
}

// decodeBlock is the sequence loop shared by both decoders. It writes from dst[0] and
// returns (bytes written, source bytes consumed, nil) on success.
//
// With exact set the block ends as soon as a literal run fills dst; otherwise it ends
// when a literal run ends exactly at the end of src. Either way the block must end on a
// literals-only sequence.
func decodeBlock(src, dst []byte, exact bool) (outPos, inPos int, err error) {
	for {
		if inPos >= len(src) {
			return 0, 0, corruptAt(inPos, ErrInputOverrun)
		}

		token := src[inPos]
		inPos++

		litLen := int(token >> mlBits)
		if litLen == runMask {
			litLen, inPos, err = readLengthExt(src, inPos, litLen)
			if err != nil {
				return 0, 0, corruptAt(inPos, err)
			}
		}

		if err := copyLiteralRun(src, &inPos, dst, &outPos, litLen); err != nil {
			return 0, 0, corruptAt(inPos, err)
		}

		if (exact && outPos == len(dst)) || (!exact && inPos == len(src)) {
			return outPos, inPos, nil
		}

		if offsetSize > len(src)-inPos {
			return 0, 0, corruptAt(inPos, ErrInputOverrun)
		}

		offset := int(binary.LittleEndian.Uint16(src[inPos:]))
		inPos += offsetSize

		matchLen := int(token & mlMask)
		if matchLen == mlMask {
			matchLen, inPos, err = readLengthExt(src, inPos, matchLen)
			if err != nil {
				return 0, 0, corruptAt(inPos, err)
			}
		}
		matchLen += MinMatch

		if err := copyBackRef(dst, outPos, offset, matchLen); err != nil {
			return 0, 0, corruptAt(inPos, err)
		}

		outPos += matchLen
	}
}
