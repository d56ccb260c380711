// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

import (
	"encoding/binary"
	"math/bits"
)

// matchIndex maps the hash of a 4-byte prefix to the most recent input position with
// that hash. Slots are overwritten, never removed, so every hit must be verified by a
// direct byte compare. Slots store pos+1; zero means empty.
type matchIndex struct {
	table []int32 // table holds pos+1 per hash slot.
	shift uint    // shift turns the 32-bit product into a table index.
}

// hashLogFor sizes the table to the input: one slot per input byte, clamped to [2^10, 2^16].
func hashLogFor(n int) uint {
	log := uint(bits.Len(uint(n))) //nolint:gosec // G115: n is a non-negative slice length
	log = max(log, hashMinLog)
	log = min(log, hashMaxLog)

	return log
}

// reset sizes the index for an input of n bytes and empties every slot.
func (m *matchIndex) reset(n int) {
	log := hashLogFor(n)
	size := 1 << log
	if cap(m.table) < size {
		m.table = make([]int32, size)
	} else {
		m.table = m.table[:size]
		clear(m.table)
	}

	m.shift = 32 - log
}

// hash returns the slot for the 4 bytes at src[pos:].
func (m *matchIndex) hash(src []byte, pos int) uint32 {
	return (load32(src, pos) * hashPrime32) >> m.shift
}

// get returns the position stored in slot h, or -1 if the slot is empty.
func (m *matchIndex) get(h uint32) int {
	return int(m.table[h]) - 1
}

// put records pos as the most recent position for slot h.
func (m *matchIndex) put(h uint32, pos int) {
	m.table[h] = int32(pos + 1) //nolint:gosec // G115: pos < MaxInputSize fits int32
}

// load32 reads 4 bytes at src[pos:] as a little-endian word.
func load32(src []byte, pos int) uint32 {
	return binary.LittleEndian.Uint32(src[pos:])
}

// commonPrefix counts equal bytes at src[left:] and src[right:], stopping at leftLimit.
// right must be below left so the right side never reaches leftLimit first.
func commonPrefix(src []byte, left, right, leftLimit int) int {
	matched := 0

	// Compare 8-byte words for the hot part, then finish byte-by-byte.
	for left+matched+8 <= leftLimit {
		diff := binary.LittleEndian.Uint64(src[left+matched:]) ^ binary.LittleEndian.Uint64(src[right+matched:])
		if diff != 0 {
			return matched + bits.TrailingZeros64(diff)>>3
		}

		matched += 8
	}

	for left+matched < leftLimit && src[left+matched] == src[right+matched] {
		matched++
	}

	return matched
}
