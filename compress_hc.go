// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

import "fmt"

// CompressBlockHC compresses src into dst with the high-compression (hash-chain) encoder.
// opts may be nil (DefaultHCOptions). The output uses the same block format as
// CompressBlock and decodes with the same decoders. Size dst with CompressBound(len(src));
// if the block does not fit it returns 0 and ErrOutputTooSmall.
func CompressBlockHC(src, dst []byte, opts *HCOptions) (int, error) {
	return compressHC(src, dst, len(dst), opts)
}

// CompressBlockHCLimited is CompressBlockHC with an explicit output cap of
// min(maxOutputSize, len(dst)) bytes; 0 and ErrOutputTooSmall mean it did not fit.
func CompressBlockHCLimited(src, dst []byte, maxOutputSize int, opts *HCOptions) (int, error) {
	return compressHC(src, dst, maxOutputSize, opts)
}

// compressHC runs the chain-search parse and appends the final literals-only sequence.
func compressHC(src, dst []byte, maxOutputSize int, opts *HCOptions) (int, error) {
	if opts == nil {
		opts = DefaultHCOptions()
	}

	if len(src) > MaxInputSize {
		return 0, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(src), MaxInputSize)
	}

	w := newBlockWriter(dst, maxOutputSize)
	anchor := 0
	if len(src) >= minInputLen {
		idx := acquireChainIndex(src)
		defer releaseChainIndex(idx)

		var ok bool
		anchor, ok = compressHCCore(src, &w, idx, opts)
		if !ok {
			return 0, fmt.Errorf("%w: capacity %d", ErrOutputTooSmall, w.limit)
		}
	}

	if !w.writeSequence(src[anchor:], 0, 0) {
		return 0, fmt.Errorf("%w: capacity %d", ErrOutputTooSmall, w.limit)
	}

	return w.pos, nil
}

// compressHCCore searches every position with the chain index and returns the start of
// the pending literal tail. ok is false when a sequence did not fit the writer.
func compressHCCore(src []byte, w *blockWriter, idx *chainIndex, opts *HCOptions) (anchor int, ok bool) {
	n := len(src)
	matchSearchLimit := n - mfLimit
	matchLimit := n - lastLiterals

	attempts := opts.MaxAttempts
	if attempts <= 0 {
		attempts = hcLevels[len(hcLevels)-1].maxAttempts
	}
	niceLen := max(opts.NiceLength, 0)

	ip := 0
	for ip < matchSearchLimit {
		matchLen, ref := idx.findLongest(ip, matchLimit, attempts, niceLen)
		if matchLen < MinMatch {
			ip++
			continue
		}

		// Lazy evaluation: a strictly longer match one byte later turns ip into a literal.
		for opts.Lazy && ip+1 < matchSearchLimit {
			nextLen, nextRef := idx.findLongest(ip+1, matchLimit, attempts, niceLen)
			if nextLen <= matchLen {
				break
			}

			ip++
			matchLen, ref = nextLen, nextRef
		}

		if !w.writeSequence(src[anchor:ip], matchLen, ip-ref) {
			return anchor, false
		}

		ip += matchLen
		anchor = ip
	}

	return anchor, true
}
