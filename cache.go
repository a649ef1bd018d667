package respool

import "runtime"

// cache is the per-P allocation state: the block currently being
// bump-filled and one fixed-capacity chunk of freed handles. Exactly
// one goroutine holds a given cache at a time; it moves between
// holders through the pool's sync.Pool.
type cache[T any] struct {
	owner  *Pool[T]
	cur    *block[T]
	curIdx uint64 // flat index of cur
	free   []uint64
	gen    uint32
}

func (p *Pool[T]) newCache() *cache[T] {
	c := &cache[T]{
		owner: p,
		free:  make([]uint64, 0, p.geo.chunkItems),
		gen:   p.gen.Load(),
	}
	p.nlocal.Add(1)
	// Eviction from the sync.Pool stands in for a thread-exit hook:
	// once the runtime drops the cache, its residual handles move to
	// the global vector instead of leaking.
	runtime.SetFinalizer(c, (*cache[T]).evict)
	return c
}

// get tries, in order: the local free chunk, a refill from the global
// vector, a bump inside the current block, a freshly published block.
func (c *cache[T]) get(init func(*T)) (*T, uint64, bool) {
	p := c.owner

	if len(c.free) > 0 {
		item, h := c.drain()
		return item, h, true
	}
	if p.popFreeChunk(c) {
		item, h := c.drain()
		return item, h, true
	}

	for {
		if b := c.cur; b != nil {
			if n := b.nitem.Load(); n < uint64(len(b.items)) {
				item := &b.items[n]
				if init != nil {
					init(item)
				}
				if p.validate != nil && !p.validate(item) {
					// The slot is discarded for the process lifetime:
					// nitem still advances so the plane stays monotone,
					// but the handle is never emitted.
					var zero T
					*item = zero
					b.nitem.Store(n + 1)
					return nil, 0, false
				}
				b.nitem.Store(n + 1)
				return item, p.geo.join(c.curIdx, n), true
			}
		}
		b, flat, ok := p.addBlock()
		if !ok {
			return nil, 0, false
		}
		c.cur, c.curIdx = b, flat
	}
}

// drain pops the most recently freed handle. LIFO keeps the hot slots
// hot.
func (c *cache[T]) drain() (*T, uint64) {
	n := len(c.free) - 1
	h := c.free[n]
	c.free = c.free[:n]
	if c.owner.countFree {
		c.owner.nfree.Add(-1)
	}
	return c.owner.mustAddress(h), h
}

// put parks a handle locally, shipping the chunk to the global vector
// the moment it fills. The amortised global cost is one short mutex
// section per chunkItems returns.
func (c *cache[T]) put(h uint64) {
	c.free = append(c.free, h)
	if c.owner.countFree {
		c.owner.nfree.Add(1)
	}
	if len(c.free) == c.owner.geo.chunkItems {
		c.owner.pushFreeChunk(c.free)
		c.free = c.free[:0]
	}
}

// evict runs as a finalizer after the sync.Pool lets go of the cache.
// The generation check stops caches that predate a Clear from pushing
// handles into the rebuilt plane.
func (c *cache[T]) evict() {
	p := c.owner
	p.nlocal.Add(-1)
	if len(c.free) > 0 && c.gen == p.gen.Load() {
		p.pushFreeChunk(c.free)
	}
	c.cur = nil
	c.free = nil
}
