package respool

import "sync/atomic"

// block is the unit of storage growth: a contiguous run of item slots
// bump-filled left to right by the one cache that owns it. nitem only
// ever grows; slot i has been constructed iff i < nitem. A block is
// never freed or relocated while the pool lives, which is what keeps
// resolved addresses stable.
type block[T any] struct {
	nitem atomic.Uint64
	items []T
}

func newBlock[T any](n uint64) *block[T] {
	return &block[T]{items: make([]T, n)}
}

func (b *block[T]) full() bool {
	return b.nitem.Load() >= uint64(len(b.items))
}

// blockGroup is the second-level index: a fixed run of block pointers
// published with atomic stores. nblock is reserved with a plain Add and
// rolled back when the group turns out to be full, so it may transiently
// exceed the slot count; readers clamp and nil-check.
type blockGroup[T any] struct {
	nblock atomic.Int64
	blocks []atomic.Pointer[block[T]]
}

func newBlockGroup[T any](n uint64) *blockGroup[T] {
	return &blockGroup[T]{blocks: make([]atomic.Pointer[block[T]], n)}
}
