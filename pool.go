package lz4block

import "sync"

// matchIndexPool is a pool of fast-encoder match indexes.
var matchIndexPool = sync.Pool{
	New: func() any {
		return &matchIndex{}
	},
}

// chainIndexPool is a pool of high-compression chain indexes.
var chainIndexPool = sync.Pool{
	New: func() any {
		return &chainIndex{}
	},
}

// acquireMatchIndex acquires a match index sized and cleared for an input of n bytes.
func acquireMatchIndex(n int) *matchIndex {
	idx := matchIndexPool.Get().(*matchIndex)
	idx.reset(n)
	return idx
}

// releaseMatchIndex releases a match index to the pool.
func releaseMatchIndex(idx *matchIndex) {
	if idx == nil {
		return
	}

	matchIndexPool.Put(idx)
}

// acquireChainIndex acquires a chain index reset for src.
func acquireChainIndex(src []byte) *chainIndex {
	idx := chainIndexPool.Get().(*chainIndex)
	idx.reset(src)
	return idx
}

// releaseChainIndex releases a chain index to the pool, dropping its input reference.
func releaseChainIndex(idx *chainIndex) {
	if idx == nil {
		return
	}

	idx.src = nil
	chainIndexPool.Put(idx)
}
