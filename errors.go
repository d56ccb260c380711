// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

import (
	"errors"
	"fmt"
)

// Sentinel errors for compression and decompression.
var (
	// ErrOutputTooSmall is returned when the encoded block does not fit the destination
	// capacity (or the requested maxOutputSize). The destination contents must be discarded.
	ErrOutputTooSmall = errors.New("output buffer too small")
	// ErrInputTooLarge is returned when the input exceeds MaxInputSize, or when
	// DecompressFromReader reads more than DecompressOptions.MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input too large")
	// ErrOptionsRequired is returned when Decompress is called with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")

	// ErrInputOverrun is returned when a token, length extension, literal run or offset
	// is truncated by the end of the compressed input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when a literal run or match would write past the
	// destination capacity or the declared output size.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrZeroOffset is returned for a match offset of 0.
	ErrZeroOffset = errors.New("zero match offset")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrLengthOverflow is returned when a length extension run exceeds any size the format can address.
	ErrLengthOverflow = errors.New("length extension overflow")
)

// CorruptInputError reports a malformed compressed block. Pos is the offset in the
// compressed input at which the fault was detected; decoding stops there.
type CorruptInputError struct {
	Pos int
	Err error
}

// Error implements error.
func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("corrupt input at byte %d: %v", e.Pos, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *CorruptInputError) Unwrap() error {
	return e.Err
}

// Code returns the legacy negative result code: -Pos, or -1 when the fault is at byte 0.
// It is never zero or positive.
func (e *CorruptInputError) Code() int {
	if e.Pos <= 0 {
		return -1
	}

	return -e.Pos
}

// corruptAt builds a CorruptInputError for source offset pos.
func corruptAt(pos int, err error) error {
	return &CorruptInputError{Pos: pos, Err: err}
}
