package reclaim

import "sync/atomic"

// RetireRing is a lock-free SPSC ring buffer of retired handle words.
// The service goroutine enqueues, the epoch advancer dequeues.
type RetireRing struct {
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte
	buf   []uint64
	mask  uint64
}

func NewRetireRing(size uint64) *RetireRing {
	if size&(size-1) != 0 {
		panic("RetireRing size must be power of two")
	}
	return &RetireRing{
		buf:  make([]uint64, size),
		mask: size - 1,
	}
}

func (r *RetireRing) Enqueue(h uint64) bool {
	hd := r.head
	t := atomic.LoadUint64(&r.tail)
	if hd-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[hd&r.mask] = h
	atomic.StoreUint64(&r.head, hd+1)
	return true
}

// Dequeue returns the oldest retired handle. Handle 0 is valid, so
// emptiness is reported through the second result.
func (r *RetireRing) Dequeue() (uint64, bool) {
	t := r.tail
	hd := atomic.LoadUint64(&r.head)
	if t == hd {
		return 0, false
	}
	h := r.buf[t&r.mask]
	atomic.StoreUint64(&r.tail, t+1)
	return h, true
}

func (r *RetireRing) Len() uint64 {
	return atomic.LoadUint64(&r.head) - atomic.LoadUint64(&r.tail)
}
