package respool

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// Defaults for Config fields left zero.
const (
	DefaultBlockMaxSize     = 64 * 1024
	DefaultBlockMaxItem     = 256
	DefaultFreeChunkMaxItem = 256
	DefaultGroupBlocks      = 1 << 16
	DefaultMaxGroups        = 1 << 16
)

// Config shapes a Pool[T]. Zero fields take the package defaults, so
// Config[T]{} is a fully usable configuration.
type Config[T any] struct {
	// BlockMaxSize caps a block at a byte budget; the effective slots
	// per block is min(BlockMaxSize/sizeof(T), BlockMaxItem), at least 1.
	BlockMaxSize int
	BlockMaxItem int

	// FreeChunkMaxItem caps the per-cache free chunk; the effective
	// size is additionally clamped to the slots per block.
	FreeChunkMaxItem int

	// GroupBlocks and MaxGroups size the two index levels of the
	// storage plane. Overriding them below the defaults is only useful
	// for tests that want to exercise growth cheaply.
	GroupBlocks int
	MaxGroups   int

	// Validate, when set, runs after each fresh construction. If it
	// returns false the slot is discarded for the process lifetime and
	// the allocation fails with a nil pointer.
	Validate func(*T) bool

	// CountFree maintains the free-item counter reported by Describe.
	// Off by default to keep returns free of extra atomic traffic.
	CountFree bool
}

// Pool is a sharded object pool addressed by stable 64-bit handles.
// The zero value is not usable; construct with New. A Pool must not be
// copied after first use.
type Pool[T any] struct {
	geo       geometry
	itemBytes uintptr
	validate  func(*T) bool

	// Storage plane. groups entries and ngroup only ever grow (Clear
	// excepted); both are published with atomic stores so resolvers
	// never lock.
	groups []atomic.Pointer[blockGroup[T]]
	ngroup atomic.Uint64
	growMu sync.Mutex

	// Global vector of freed-handle chunks, LIFO to keep recently
	// returned batches hot. nchunk shadows len(chunks) for the
	// unlocked empty check on the refill path.
	chunkMu sync.Mutex
	chunks  [][]uint64
	nchunk  atomic.Int64

	caches atomic.Pointer[sync.Pool]
	nlocal atomic.Int64
	gen    atomic.Uint32

	countFree bool
	nfree     atomic.Int64
}

// New builds a pool for T with the given configuration.
func New[T any](cfg Config[T]) *Pool[T] {
	var probe T
	size := unsafe.Sizeof(probe)

	maxBytes := cfg.BlockMaxSize
	if maxBytes <= 0 {
		maxBytes = DefaultBlockMaxSize
	}
	maxItems := cfg.BlockMaxItem
	if maxItems <= 0 {
		maxItems = DefaultBlockMaxItem
	}
	blockItems := uint64(maxItems)
	if size > 0 {
		if byBytes := uint64(maxBytes) / uint64(size); byBytes < blockItems {
			blockItems = byBytes
		}
	}
	if blockItems < 1 {
		blockItems = 1
	}

	chunkItems := cfg.FreeChunkMaxItem
	if chunkItems <= 0 {
		chunkItems = DefaultFreeChunkMaxItem
	}
	if uint64(chunkItems) > blockItems {
		chunkItems = int(blockItems)
	}

	groupBlocks := cfg.GroupBlocks
	if groupBlocks <= 0 {
		groupBlocks = DefaultGroupBlocks
	}
	maxGroups := cfg.MaxGroups
	if maxGroups <= 0 {
		maxGroups = DefaultMaxGroups
	}

	p := &Pool[T]{
		geo: geometry{
			blockItems:  blockItems,
			groupBlocks: uint64(groupBlocks),
			maxGroups:   uint64(maxGroups),
			chunkItems:  chunkItems,
		},
		itemBytes: size,
		validate:  cfg.Validate,
		groups:    make([]atomic.Pointer[blockGroup[T]], maxGroups),
		countFree: cfg.CountFree,
	}
	p.caches.Store(&sync.Pool{New: func() any { return p.newCache() }})
	return p
}

// Get allocates a slot and returns its address and handle. The object
// holds whatever state its previous holder left (the zero value for a
// never-used slot). A nil pointer means the pool could not allocate:
// the plane is exhausted or the validator rejected the construction;
// the handle is meaningless in that case.
func (p *Pool[T]) Get() (*T, Handle[T]) {
	return p.GetInit(nil)
}

// GetInit is Get with a construction hook: init runs only when the slot
// is freshly bump-constructed, never when a previously returned slot is
// reused from a free list.
func (p *Pool[T]) GetInit(init func(*T)) (*T, Handle[T]) {
	cp := p.caches.Load()
	c := cp.Get().(*cache[T])
	item, h, ok := c.get(init)
	cp.Put(c)
	if !ok {
		return nil, 0
	}
	return item, Handle[T](h)
}

// Put returns a handle to the pool so its slot can be reused. The
// object is not cleared and stays addressable. Putting a handle that is
// not currently held, or putting it twice, corrupts the free lists the
// same way a double free would.
func (p *Pool[T]) Put(h Handle[T]) {
	cp := p.caches.Load()
	c := cp.Get().(*cache[T])
	c.put(uint64(h))
	cp.Put(c)
}

// Address resolves a handle to its slot address, or nil when the handle
// does not fall inside the published plane. It never faults, locks or
// spins, for any 64-bit input. A handle that is parked on a free list
// still resolves; Address says nothing about ownership.
func (p *Pool[T]) Address(h Handle[T]) *T {
	gi, bi, slot := p.geo.split(uint64(h))
	if gi >= p.ngroup.Load() {
		return nil
	}
	g := p.groups[gi].Load()
	if g == nil {
		return nil
	}
	nb := uint64(g.nblock.Load())
	if nb > p.geo.groupBlocks {
		nb = p.geo.groupBlocks
	}
	if bi >= nb {
		return nil
	}
	b := g.blocks[bi].Load()
	if b == nil {
		return nil
	}
	if slot >= b.nitem.Load() {
		return nil
	}
	return &b.items[slot]
}

// mustAddress is the unchecked resolution used on the free-list fast
// path, where the handle is known to have been emitted.
func (p *Pool[T]) mustAddress(h uint64) *T {
	gi, bi, slot := p.geo.split(h)
	return &p.groups[gi].Load().blocks[bi].Load().items[slot]
}

// addBlock publishes a fresh empty block and returns it with its flat
// index. It reserves a slot in the tail group with a plain Add, rolling
// back and growing the group list when the tail is full. Returns false
// only when every group is exhausted.
func (p *Pool[T]) addBlock() (*block[T], uint64, bool) {
	for {
		ng := p.ngroup.Load()
		if ng > 0 {
			g := p.groups[ng-1].Load()
			i := g.nblock.Add(1) - 1
			if uint64(i) < p.geo.groupBlocks {
				b := newBlock[T](p.geo.blockItems)
				g.blocks[i].Store(b)
				return b, (ng-1)*p.geo.groupBlocks + uint64(i), true
			}
			g.nblock.Add(-1)
		}
		if !p.addBlockGroup(ng) {
			return nil, 0, false
		}
	}
}

// addBlockGroup appends one group, expecting ngroup to still equal
// expect. A concurrent grower winning the race counts as success: the
// caller rereads ngroup and retries its reservation.
func (p *Pool[T]) addBlockGroup(expect uint64) bool {
	p.growMu.Lock()
	defer p.growMu.Unlock()

	ng := p.ngroup.Load()
	if ng != expect {
		return true
	}
	if ng >= p.geo.maxGroups {
		return false
	}
	p.groups[ng].Store(newBlockGroup[T](p.geo.groupBlocks))
	p.ngroup.Store(ng + 1)
	return true
}

// pushFreeChunk copies the handles into a right-sized chunk and appends
// it to the global vector.
func (p *Pool[T]) pushFreeChunk(handles []uint64) {
	chunk := make([]uint64, len(handles))
	copy(chunk, handles)

	p.chunkMu.Lock()
	p.chunks = append(p.chunks, chunk)
	p.nchunk.Add(1)
	p.chunkMu.Unlock()
}

// popFreeChunk moves one chunk from the global vector into the cache's
// free chunk. The unlocked emptiness test keeps the common miss cheap.
func (p *Pool[T]) popFreeChunk(c *cache[T]) bool {
	if p.nchunk.Load() == 0 {
		return false
	}

	p.chunkMu.Lock()
	n := len(p.chunks)
	if n == 0 {
		p.chunkMu.Unlock()
		return false
	}
	chunk := p.chunks[n-1]
	p.chunks[n-1] = nil
	p.chunks = p.chunks[:n-1]
	p.nchunk.Add(-1)
	p.chunkMu.Unlock()

	c.free = append(c.free[:0], chunk...)
	return true
}

// Clear tears the pool down to its initial state: the free-chunk vector
// is dropped, every group slot is reset and ngroup returns to 0. Caches
// from before the Clear are invalidated by a generation bump so their
// eviction hooks cannot push stale handles.
//
// Clear exists for tests. It must only run while no other goroutine
// touches the pool; raw pointers resolved before the Clear dangle
// logically (the Go heap keeps them alive, but they belong to no slot).
func (p *Pool[T]) Clear() {
	p.gen.Add(1)
	p.caches.Store(&sync.Pool{New: func() any { return p.newCache() }})

	p.chunkMu.Lock()
	p.chunks = nil
	p.nchunk.Store(0)
	p.chunkMu.Unlock()

	p.growMu.Lock()
	ng := p.ngroup.Load()
	p.ngroup.Store(0)
	for i := uint64(0); i < ng; i++ {
		p.groups[i].Store(nil)
	}
	p.growMu.Unlock()

	p.nfree.Store(0)
}
