// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/pierrec/lz4/v4"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lz4 benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
		"random-64k":      randomBytes(1<<16, 5),
	}
}

func BenchmarkCompress(b *testing.B) {
	levels := []int{0, 1, 5, 9}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			name := fmt.Sprintf("%s/level-%d", inputName, level)
			b.Run(name, func(b *testing.B) {
				opts := &CompressOptions{Level: level}
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))

				for b.Loop() {
					if _, err := Compress(inputData, opts); err != nil {
						b.Fatalf("Compress failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkCompressBlock_ReusedBuffer(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		b.Run(inputName, func(b *testing.B) {
			dst := make([]byte, CompressBound(len(inputData)))
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))

			for b.Loop() {
				if _, err := CompressBlock(inputData, dst); err != nil {
					b.Fatalf("CompressBlock failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	levels := []int{0, 9}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			compressedData, err := Compress(inputData, &CompressOptions{Level: level})
			if err != nil {
				b.Fatalf("setup Compress failed for %s level %d: %v", inputName, level, err)
			}

			dst := make([]byte, len(inputData))
			b.Run(fmt.Sprintf("%s/from-level-%d", inputName, level), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))

				for b.Loop() {
					if _, err := DecompressBlock(compressedData, dst, len(dst)); err != nil {
						b.Fatalf("DecompressBlock failed: %v", err)
					}
				}
			})

			b.Run(fmt.Sprintf("%s/safe-from-level-%d", inputName, level), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))

				for b.Loop() {
					if _, err := DecompressBlockSafe(compressedData, dst, len(dst)); err != nil {
						b.Fatalf("DecompressBlockSafe failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkReferenceCompressBlock(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		b.Run(inputName, func(b *testing.B) {
			var c lz4.Compressor
			dst := make([]byte, lz4.CompressBlockBound(len(inputData)))
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))

			for b.Loop() {
				if _, err := c.CompressBlock(inputData, dst); err != nil {
					b.Fatalf("lz4.CompressBlock failed: %v", err)
				}
			}
		})
	}
}
