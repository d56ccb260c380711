// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

import "fmt"

// CompressBlock compresses src into dst with the fast encoder and returns the number
// of bytes written. Size dst with CompressBound(len(src)) to guarantee success.
// If the block does not fit in dst it returns 0 and ErrOutputTooSmall; dst must then
// be discarded and the data stored uncompressed.
func CompressBlock(src, dst []byte) (int, error) {
	return compressFast(src, dst, len(dst))
}

// CompressBlockLimited is CompressBlock with an explicit output cap. It writes at most
// min(maxOutputSize, len(dst)) bytes and returns 0 and ErrOutputTooSmall the moment the
// next sequence would exceed it. When it succeeds the output is byte-identical to CompressBlock.
func CompressBlockLimited(src, dst []byte, maxOutputSize int) (int, error) {
	return compressFast(src, dst, maxOutputSize)
}

// compressFast runs the fast parse and appends the final literals-only sequence.
func compressFast(src, dst []byte, maxOutputSize int) (int, error) {
	if len(src) > MaxInputSize {
		return 0, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(src), MaxInputSize)
	}

	w := newBlockWriter(dst, maxOutputSize)
	anchor := 0
	if len(src) >= minInputLen {
		idx := acquireMatchIndex(len(src))
		defer releaseMatchIndex(idx)

		var ok bool
		anchor, ok = compressFastCore(src, &w, idx)
		if !ok {
			return 0, fmt.Errorf("%w: capacity %d", ErrOutputTooSmall, w.limit)
		}
	}

	if !w.writeSequence(src[anchor:], 0, 0) {
		return 0, fmt.Errorf("%w: capacity %d", ErrOutputTooSmall, w.limit)
	}

	return w.pos, nil
}

// compressFastCore performs the greedy hash-table parse and returns the start of the
// pending literal tail. ok is false when a sequence did not fit the writer.
//
// Indexing policy: every probed position is inserted; after a match only the end of the
// skipped span (end-2 and end) is inserted. Probing speeds up over data that keeps
// missing: the step grows by one every 2^skipStrength failed probes.
func compressFastCore(src []byte, w *blockWriter, idx *matchIndex) (anchor int, ok bool) {
	n := len(src)
	matchSearchLimit := n - mfLimit
	matchLimit := n - lastLiterals

	idx.put(idx.hash(src, 0), 0)
	ip := 1
	forwardHash := idx.hash(src, ip)

	for {
		// Scan forward for a verified candidate.
		var ref int
		attempts := (1 << skipStrength) + 3
		forwardIP := ip
		for {
			h := forwardHash
			ip = forwardIP
			step := attempts >> skipStrength
			attempts++
			forwardIP = ip + step
			if forwardIP > matchSearchLimit {
				return anchor, true
			}

			ref = idx.get(h)
			idx.put(h, ip)
			forwardHash = idx.hash(src, forwardIP)

			if ref >= 0 && ip-ref <= MaxOffset && load32(src, ref) == load32(src, ip) {
				break
			}
		}

		// Grow the match backwards over pending literals.
		for ip > anchor && ref > 0 && src[ip-1] == src[ref-1] {
			ip--
			ref--
		}

		// Emit the match, and keep emitting while the position right after it matches too.
		for {
			matchEnd := ip + MinMatch + commonPrefix(src, ip+MinMatch, ref+MinMatch, matchLimit)
			if !w.writeSequence(src[anchor:ip], matchEnd-ip, ip-ref) {
				return anchor, false
			}

			ip = matchEnd
			anchor = ip
			if ip > matchSearchLimit {
				return anchor, true
			}

			h := idx.hash(src, ip-2)
			idx.put(h, ip-2)

			h = idx.hash(src, ip)
			ref = idx.get(h)
			idx.put(h, ip)
			if ref < 0 || ip-ref > MaxOffset || load32(src, ref) != load32(src, ip) {
				break
			}
		}

		ip++
		forwardHash = idx.hash(src, ip)
	}
}
