package lz4block

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "below-min-input", data: []byte("abcde")},
		{name: "short-text", data: []byte("hello world, lz4 block test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "random-4k", data: randomBytes(4096, 1)},
		{name: "far-repeat", data: farRepeat()},
		{name: "mixed", data: mixedPayload()},
	}
}

// randomBytes returns n pseudo-random bytes from a fixed seed.
func randomBytes(n int, seed int64) []byte {
	data := make([]byte, n)
	rand.New(rand.NewSource(seed)).Read(data)
	return data
}

// farRepeat repeats a random chunk beyond the 64 KiB offset window and just inside it.
func farRepeat() []byte {
	chunk := randomBytes(1000, 2)
	data := append([]byte(nil), chunk...)
	data = append(data, randomBytes(MaxOffset+10, 3)...)
	data = append(data, chunk...)
	data = append(data, chunk...)
	return data
}

// mixedPayload interleaves compressible text with random noise.
func mixedPayload() []byte {
	var buf bytes.Buffer
	for i := range 64 {
		fmt.Fprintf(&buf, "asset-%04d:mesh=lod%d;material=default;", i, i%4)
		buf.Write(randomBytes(i%17, int64(i)))
	}

	return buf.Bytes()
}

func TestCompressDecompress_RoundTripAcrossLevels(t *testing.T) {
	levels := []int{-7, 0, 1, 4, 9, 15}

	for _, in := range testInputSet() {
		for _, level := range levels {
			t.Run(fmt.Sprintf("%s/level-%d", in.name, level), func(t *testing.T) {
				cmp, err := Compress(in.data, &CompressOptions{Level: level})
				require.NoError(t, err)
				require.NotEmpty(t, cmp)
				require.LessOrEqual(t, len(cmp), CompressBound(len(in.data)))

				out, err := Decompress(cmp, DefaultDecompressOptions(len(in.data)))
				require.NoError(t, err)
				require.Equal(t, len(in.data), len(out))
				require.True(t, bytes.Equal(out, in.data), "round-trip mismatch")

				safe := make([]byte, len(in.data))
				n, err := DecompressBlockSafe(cmp, safe, len(safe))
				require.NoError(t, err)
				require.Equal(t, len(in.data), n)
				require.True(t, bytes.Equal(safe, in.data), "safe round-trip mismatch")

				outReader, err := DecompressFromReader(bytes.NewReader(cmp), DefaultDecompressOptions(len(in.data)))
				require.NoError(t, err)
				require.True(t, bytes.Equal(outReader, in.data), "reader round-trip mismatch")
			})
		}
	}
}

func TestCompress_DefaultAndExplicitLevels(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)

	cmpDefault, err := Compress(data, nil)
	require.NoError(t, err)

	cmpLevel0, err := Compress(data, &CompressOptions{Level: 0})
	require.NoError(t, err)
	require.Equal(t, cmpLevel0, cmpDefault, "default compression should match level=0")

	dst := make([]byte, CompressBound(len(data)))
	n, err := CompressBlock(data, dst)
	require.NoError(t, err)
	require.Equal(t, dst[:n], cmpLevel0, "level=0 should be the fast block encoder")

	cmpLevel9, err := Compress(data, &CompressOptions{Level: 9})
	require.NoError(t, err)

	n, err = CompressBlockHC(data, dst, nil)
	require.NoError(t, err)
	require.Equal(t, dst[:n], cmpLevel9, "level=9 should match default HC options")
}

func TestCompress_LevelClamping(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 4096)

	cmpNeg, err := Compress(data, &CompressOptions{Level: -100})
	require.NoError(t, err)
	cmpZero, err := Compress(data, &CompressOptions{Level: 0})
	require.NoError(t, err)
	require.Equal(t, cmpZero, cmpNeg, "negative level should be clamped to level 0")

	cmpHigh, err := Compress(data, &CompressOptions{Level: 100})
	require.NoError(t, err)
	cmpNine, err := Compress(data, &CompressOptions{Level: 9})
	require.NoError(t, err)
	require.Equal(t, cmpNine, cmpHigh, "level > 9 should be clamped to level 9")
}

func TestHCLevelOptions_Clamping(t *testing.T) {
	require.Equal(t, HCLevelOptions(1), HCLevelOptions(-10))
	require.Equal(t, HCLevelOptions(9), HCLevelOptions(100))
	require.Equal(t, DefaultHCOptions(), HCLevelOptions(9))
}

func TestCompressBound(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: 0, want: 16},
		{n: 1, want: 17},
		{n: 254, want: 270},
		{n: 255, want: 272},
		{n: 1000, want: 1019},
		{n: MaxInputSize, want: MaxInputSize + MaxInputSize/255 + 16},
		{n: -1, want: 0},
		{n: MaxInputSize + 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			require.Equal(t, tt.want, CompressBound(tt.n))
		})
	}
}

func TestCompressBlock_EmptyInput(t *testing.T) {
	dst := make([]byte, CompressBound(0))
	n, err := CompressBlock(nil, dst)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, byte(0x00), dst[0], "empty block is a single zero token")

	nRead, err := DecompressBlock(dst[:n], nil, 0)
	require.NoError(t, err)
	require.Equal(t, 1, nRead)

	produced, err := DecompressBlockSafe(dst[:n], nil, 0)
	require.NoError(t, err)
	require.Zero(t, produced)
}

func TestCompressBlock_ShortRepeatShrinks(t *testing.T) {
	data := []byte("AAAAAAAAAA")

	for name, compress := range blockCompressors() {
		t.Run(name, func(t *testing.T) {
			dst := make([]byte, CompressBound(len(data)))
			n, err := compress(data, dst)
			require.NoError(t, err)
			require.Less(t, n, len(data))

			out := make([]byte, len(data))
			nRead, err := DecompressBlock(dst[:n], out, len(data))
			require.NoError(t, err)
			require.Equal(t, n, nRead)
			require.Equal(t, data, out)
		})
	}
}

func TestCompressBlock_RandomStaysWithinBound(t *testing.T) {
	data := randomBytes(1000, 42)

	for name, compress := range blockCompressors() {
		t.Run(name, func(t *testing.T) {
			dst := make([]byte, CompressBound(len(data)))
			n, err := compress(data, dst)
			require.NoError(t, err)
			require.LessOrEqual(t, n, CompressBound(len(data)))
			require.GreaterOrEqual(t, n, len(data), "incompressible data should not shrink")

			out := make([]byte, len(data))
			_, err = DecompressBlock(dst[:n], out, len(data))
			require.NoError(t, err)
			require.Equal(t, data, out)
		})
	}
}

func TestCompressBlock_BoundIsSufficient(t *testing.T) {
	// Exact-bound destinations must always be enough, including for lengths around
	// the 15 and 255 extension boundaries.
	sizes := []int{0, 1, 5, 6, 14, 15, 16, 29, 30, 269, 270, 271, 524, 525, 4096, 70000}

	for _, size := range sizes {
		for _, seed := range []int64{1, 2} {
			data := randomBytes(size, seed)
			for name, compress := range blockCompressors() {
				dst := make([]byte, CompressBound(size))
				n, err := compress(data, dst)
				require.NoError(t, err, "%s size=%d", name, size)

				out := make([]byte, size)
				_, err = DecompressBlock(dst[:n], out, size)
				require.NoError(t, err, "%s size=%d", name, size)
				require.Equal(t, data, out, "%s size=%d", name, size)
			}
		}
	}
}

func TestCompressBlockLimited_MatchesUnbounded(t *testing.T) {
	limited := map[string]func(src, dst []byte, maxOutputSize int) (int, error){
		"fast": CompressBlockLimited,
		"hc": func(src, dst []byte, maxOutputSize int) (int, error) {
			return CompressBlockHCLimited(src, dst, maxOutputSize, nil)
		},
	}

	for _, in := range testInputSet() {
		for name, compress := range blockCompressors() {
			t.Run(in.name+"/"+name, func(t *testing.T) {
				natural := make([]byte, CompressBound(len(in.data)))
				n, err := compress(in.data, natural)
				require.NoError(t, err)

				dst := make([]byte, len(natural))
				got, err := limited[name](in.data, dst, n)
				require.NoError(t, err)
				require.Equal(t, natural[:n], dst[:got], "capped output must equal unbounded output")

				got, err = limited[name](in.data, dst, n-1)
				require.ErrorIs(t, err, ErrOutputTooSmall)
				require.Zero(t, got)
			})
		}
	}
}

func TestCompressBlockLimited_NeverWritesPastCap(t *testing.T) {
	data := mixedPayload()
	const guard = 0xA5

	for _, limit := range []int{0, 1, 7, 64, len(data) / 10} {
		dst := bytes.Repeat([]byte{guard}, CompressBound(len(data)))
		n, err := CompressBlockLimited(data, dst, limit)
		require.ErrorIs(t, err, ErrOutputTooSmall)
		require.Zero(t, n)

		for i := limit; i < len(dst); i++ {
			require.Equal(t, byte(guard), dst[i], "limit=%d wrote at %d", limit, i)
		}
	}
}

func TestCompressBlockLimited_CapOfOneFails(t *testing.T) {
	data := []byte("a non-trivial payload that needs more than one byte")
	dst := make([]byte, CompressBound(len(data)))

	n, err := CompressBlockLimited(data, dst, 1)
	require.ErrorIs(t, err, ErrOutputTooSmall)
	require.Zero(t, n)

	n, err = CompressBlockHCLimited(data, dst, 1, nil)
	require.ErrorIs(t, err, ErrOutputTooSmall)
	require.Zero(t, n)
}

func TestCompressBlock_SmallDestinationFails(t *testing.T) {
	data := randomBytes(512, 7)
	n, err := CompressBlock(data, make([]byte, 100))
	require.ErrorIs(t, err, ErrOutputTooSmall)
	require.Zero(t, n)
}

func TestCompress_RecompressRoundTrips(t *testing.T) {
	data := mixedPayload()

	once, err := Compress(data, nil)
	require.NoError(t, err)
	twice, err := Compress(once, &CompressOptions{Level: 9})
	require.NoError(t, err)

	back, err := Decompress(twice, DefaultDecompressOptions(len(once)))
	require.NoError(t, err)
	require.Equal(t, once, back)

	orig, err := Decompress(back, DefaultDecompressOptions(len(data)))
	require.NoError(t, err)
	require.Equal(t, data, orig)
}

func TestCompressBlock_ConcurrentCalls(t *testing.T) {
	inputs := testInputSet()
	done := make(chan error, len(inputs)*2)

	for _, in := range inputs {
		for _, level := range []int{0, 9} {
			go func() {
				cmp, err := Compress(in.data, &CompressOptions{Level: level})
				if err != nil {
					done <- err
					return
				}

				out, err := Decompress(cmp, DefaultDecompressOptions(len(in.data)))
				if err == nil && !bytes.Equal(out, in.data) {
					err = fmt.Errorf("%s level %d: round-trip mismatch", in.name, level)
				}
				done <- err
			}()
		}
	}

	for range len(inputs) * 2 {
		require.NoError(t, <-done)
	}
}

// blockCompressors returns the default-capacity encoders by name.
func blockCompressors() map[string]func(src, dst []byte) (int, error) {
	return map[string]func(src, dst []byte) (int, error){
		"fast": CompressBlock,
		"hc": func(src, dst []byte) (int, error) {
			return CompressBlockHC(src, dst, nil)
		},
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(0))
	f.Add([]byte("hello world"), uint8(1))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(9))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(7))

	f.Fuzz(func(t *testing.T, data []byte, level uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cmp, err := Compress(data, &CompressOptions{Level: int(level % 10)})
		require.NoError(t, err)
		require.LessOrEqual(t, len(cmp), CompressBound(len(data)))

		out, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
		require.NoError(t, err)
		require.True(t, bytes.Equal(out, data), "round-trip mismatch: got=%d want=%d", len(out), len(data))
	})
}
