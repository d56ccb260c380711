package lz4block

// hcLevelParams holds the chain-search parameters for one high-compression level.
type hcLevelParams struct {
	maxAttempts int  // chain candidates examined per position
	niceLen     int  // stop searching at this match length (0 = no limit)
	lazy        bool // defer a match by one byte when the next position matches longer
}

// hcLevels defines parameters for compression levels 1-9. Level 9 is the default.
var hcLevels = [9]hcLevelParams{
	{4, 32, false},
	{8, 64, false},
	{16, 64, false},
	{16, 128, true},
	{32, 128, true},
	{64, 256, true},
	{96, 1024, true},
	{128, 0, true},
	{256, 0, true},
}

// hcLevelOptions returns HC options for level, clamped to 1..9.
func hcLevelOptions(level int) *HCOptions {
	level = max(level, 1)
	level = min(level, len(hcLevels))

	p := hcLevels[level-1]
	return &HCOptions{
		MaxAttempts: p.maxAttempts,
		NiceLength:  p.niceLen,
		Lazy:        p.lazy,
	}
}
