// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

import "encoding/binary"

// blockWriter serializes sequences into dst and never writes at or past limit.
type blockWriter struct {
	dst   []byte // dst is the caller-owned destination buffer.
	pos   int    // pos is the next write offset in dst.
	limit int    // limit is the effective capacity: min(len(dst), maxOutputSize).
}

// newBlockWriter returns a writer whose capacity is min(len(dst), maxOutputSize).
func newBlockWriter(dst []byte, maxOutputSize int) blockWriter {
	limit := min(len(dst), maxOutputSize)
	limit = max(limit, 0)

	return blockWriter{dst: dst, limit: limit}
}

// sequenceSize returns the exact encoded size of one sequence.
// matchLen 0 means a literals-only sequence (no offset, no match length).
func sequenceSize(litLen, matchLen int) int {
	n := 1 + lengthExtSize(litLen, runMask) + litLen
	if matchLen > 0 {
		n += offsetSize + lengthExtSize(matchLen-MinMatch, mlMask)
	}

	return n
}

// writeSequence appends lit followed by a back-reference of matchLen bytes at offset.
// matchLen 0 writes the final literals-only sequence. It returns false without writing
// anything when the sequence does not fit.
func (w *blockWriter) writeSequence(lit []byte, matchLen, offset int) bool {
	if sequenceSize(len(lit), matchLen) > w.limit-w.pos {
		return false
	}

	dst := w.dst
	tokenPos := w.pos
	pos := tokenPos + 1

	matchField := 0
	if matchLen > 0 {
		matchField = matchLen - MinMatch
	}

	if len(lit) >= runMask {
		pos = putLengthExt(dst, pos, len(lit), runMask)
	}
	pos += copy(dst[pos:], lit)

	if matchLen > 0 {
		// #nosec G115 -- offset is 1..MaxOffset.
		binary.LittleEndian.PutUint16(dst[pos:], uint16(offset))
		pos += offsetSize
		if matchField >= mlMask {
			pos = putLengthExt(dst, pos, matchField, mlMask)
		}
	}

	dst[tokenPos] = tokenByte(len(lit), matchField)
	w.pos = pos
	return true
}
