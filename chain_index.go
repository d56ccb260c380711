// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// chainIndex extends the match index with backward chains for the high-compression
// encoder. head holds pos+1 of the newest position per hash; chain[pos&chainMask] holds
// the distance back to the previous position in the same bucket, saturated at
// chainMaxDelta which ends a walk. The chain ring spans exactly the offset window, so a
// slot is never reused while its position is still reachable.
type chainIndex struct {
	head  [1 << chainHashLog]int32 // head is the newest position+1 per hash bucket.
	chain [chainSize]uint16        // chain is the backward delta per ring position.

	src          []byte // src is the input being indexed.
	nextToUpdate int    // nextToUpdate is the first position not yet inserted.
}

// reset prepares the index for a new input. chain needs no clearing: every slot is
// written on insert before a walk can reach it.
func (c *chainIndex) reset(src []byte) {
	clear(c.head[:])
	c.src = src
	c.nextToUpdate = 0
}

// chainHash returns the bucket for the 4 bytes at src[pos:].
func chainHash(src []byte, pos int) uint32 {
	return (load32(src, pos) * hashPrime32) >> (32 - chainHashLog)
}

// insert adds every position below target that is not indexed yet.
func (c *chainIndex) insert(target int) {
	for p := c.nextToUpdate; p < target; p++ {
		h := chainHash(c.src, p)

		delta := chainMaxDelta
		if prev := int(c.head[h]) - 1; prev >= 0 && p-prev < chainMaxDelta {
			delta = p - prev
		}

		c.chain[p&chainMask] = uint16(delta) //nolint:gosec // G115: delta <= chainMaxDelta
		c.head[h] = int32(p + 1)             //nolint:gosec // G115: p < MaxInputSize fits int32
	}

	c.nextToUpdate = max(c.nextToUpdate, target)
}

// findLongest walks the chain for pos and returns the longest verified match
// (length, candidate position). Length is 0 when no candidate has MinMatch equal bytes.
// Candidates are visited newest first and only a strictly longer match replaces the
// current best, so ties keep the smaller offset. The walk stops after maxAttempts
// candidates, at the edge of the offset window, or once niceLen is reached (niceLen 0 = no limit).
func (c *chainIndex) findLongest(pos, matchLimit, maxAttempts, niceLen int) (int, int) {
	c.insert(pos)

	src := c.src
	lowLimit := max(pos-MaxOffset, 0)
	prefix := load32(src, pos)
	bestLen, bestRef := 0, 0

	ref := int(c.head[chainHash(src, pos)]) - 1
	for attempts := maxAttempts; attempts > 0 && ref >= lowLimit; attempts-- {
		// Probe the byte that would make this candidate longer before the full compare.
		if (bestLen == 0 || src[ref+bestLen] == src[pos+bestLen]) && load32(src, ref) == prefix {
			l := MinMatch + commonPrefix(src, pos+MinMatch, ref+MinMatch, matchLimit)
			if l > bestLen {
				bestLen, bestRef = l, ref
				if niceLen > 0 && l >= niceLen {
					break
				}
			}
		}

		delta := int(c.chain[ref&chainMask])
		if delta >= chainMaxDelta {
			break
		}
		ref -= delta
	}

	return bestLen, bestRef
}
