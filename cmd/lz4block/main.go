// Command lz4block compresses, decompresses and benchmarks raw blocks.
//
// Blocks carry no header, so decompression needs the original size:
//
//	lz4block -mode compress -in mesh.bin -out mesh.lz4 -level 9 -verify
//	lz4block -mode decompress -in mesh.lz4 -out mesh.bin -size 81920
//	lz4block -mode bench -in mesh.bin
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/woozymasta/lz4block"
	"github.com/woozymasta/lz4block/codec"
	"github.com/woozymasta/lz4block/host"
)

type config struct {
	mode    string
	in      string
	out     string
	level   int
	size    int
	safe    bool
	verify  bool
	verbose bool
}

var errUsage = errors.New("usage")

func main() {
	cfg := config{}
	flag.StringVar(&cfg.mode, "mode", "compress", "Operation: compress, decompress or bench")
	flag.StringVar(&cfg.in, "in", "", "Input file path")
	flag.StringVar(&cfg.out, "out", "", "Output file path (- for stdout)")
	flag.IntVar(&cfg.level, "level", 0, "Compression level: 0 fast, 1-9 high compression")
	flag.IntVar(&cfg.size, "size", -1, "Original size in bytes (required to decompress)")
	flag.BoolVar(&cfg.safe, "safe", false, "Decompress with the bounds-checked decoder, -size is the capacity")
	flag.BoolVar(&cfg.verify, "verify", false, "Decode the compressed block and compare fingerprints")
	flag.BoolVar(&cfg.verbose, "v", false, "Print debug diagnostics to stderr")
	flag.Parse()

	var opts []host.Option
	if cfg.verbose {
		opts = append(opts, host.WithDebugPrinter(log.New(os.Stderr, "lz4block: ", log.LstdFlags|log.Lmicroseconds)))
	}

	if err := run(cfg, host.New(opts...), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		log.Fatalf("lz4block: %v", err)
	}
}

func run(cfg config, h *host.Host, stdout io.Writer) error {
	if cfg.in == "" {
		return fmt.Errorf("%w: -in is required", errUsage)
	}

	src, err := os.ReadFile(cfg.in)
	if err != nil {
		return err
	}
	h.Debugf("read %d bytes from %s", len(src), cfg.in)

	switch cfg.mode {
	case "compress":
		return runCompress(cfg, h, src, stdout)
	case "decompress":
		return runDecompress(cfg, h, src, stdout)
	case "bench":
		return runBench(cfg, h, src, stdout)
	default:
		return fmt.Errorf("%w: unknown mode %q", errUsage, cfg.mode)
	}
}

func runCompress(cfg config, h *host.Host, src []byte, stdout io.Writer) error {
	start := time.Now()
	block, err := lz4block.Compress(src, &lz4block.CompressOptions{Level: cfg.level})
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	h.Debugf("level %d: %d -> %d bytes in %s", cfg.level, len(src), len(block), time.Since(start))

	if cfg.verify {
		out := make([]byte, len(src))
		n, err := lz4block.DecompressBlockSafe(block, out, len(out))
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if n != len(src) || codec.Fingerprint(out) != codec.Fingerprint(src) {
			return fmt.Errorf("verify: %w", codec.ErrFingerprintMismatch)
		}
		h.Debugf("verified xxh64 %016x", codec.Fingerprint(src))
	}

	if err := writeOutput(cfg.out, block, stdout); err != nil {
		return err
	}

	// The block has no header; the original size must travel with it.
	fmt.Fprintf(os.Stderr, "compressed %d -> %d bytes (decompress with -size %d)\n", len(src), len(block), len(src))
	return nil
}

func runDecompress(cfg config, h *host.Host, src []byte, stdout io.Writer) error {
	if cfg.size < 0 {
		return fmt.Errorf("%w: -size is required to decompress", errUsage)
	}

	var (
		out []byte
		err error
	)
	if cfg.safe {
		out = make([]byte, cfg.size)
		var n int
		n, err = lz4block.DecompressBlockSafe(src, out, cfg.size)
		out = out[:n]
	} else {
		out, err = lz4block.Decompress(src, lz4block.DefaultDecompressOptions(cfg.size))
	}

	var corrupt *lz4block.CorruptInputError
	if errors.As(err, &corrupt) {
		return fmt.Errorf("decompress: rejected block (code %d): %w", corrupt.Code(), err)
	}
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}
	h.Debugf("decompressed %d -> %d bytes (safe=%t)", len(src), len(out), cfg.safe)

	return writeOutput(cfg.out, out, stdout)
}

func runBench(cfg config, h *host.Host, src []byte, stdout io.Writer) error {
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "codec\tstored\tsize\tratio\tcompress\tdecompress")

	for _, m := range codec.Methods() {
		var c codec.Codec
		if m == codec.MethodBlock || m == codec.MethodBlockHC {
			level := 0
			if m == codec.MethodBlockHC {
				level = max(cfg.level, 1)
			}
			c = codec.NewBlockCodec(level)
		} else {
			var err error
			if c, err = codec.New(m); err != nil {
				return err
			}
		}

		start := time.Now()
		stored, payload, err := codec.Store(c, src, codec.WithHost(h))
		if err != nil {
			return fmt.Errorf("bench %s: %w", m, err)
		}
		compressTime := time.Since(start)

		start = time.Now()
		out, err := codec.Load(stored, payload, len(src))
		if err != nil {
			return fmt.Errorf("bench %s: %w", m, err)
		}
		decompressTime := time.Since(start)

		if codec.Fingerprint(out) != codec.Fingerprint(src) {
			return fmt.Errorf("bench %s: %w", m, codec.ErrFingerprintMismatch)
		}

		ratio := 0.0
		if len(src) > 0 {
			ratio = float64(len(payload)) / float64(len(src))
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%s\t%s\n", m, stored, len(payload), ratio, compressTime, decompressTime)
	}

	return tw.Flush()
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		return fmt.Errorf("%w: -out is required", errUsage)
	}

	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
