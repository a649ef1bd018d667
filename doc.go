// Package respool provides a handle-addressable, sharded object pool.
//
// A Pool[T] hands out live *T values together with a compact 64-bit
// Handle that identifies the slot for the remainder of the process
// lifetime. Storage grows as an append-only plane of fixed-size blocks
// indexed by block groups; slots never move once constructed, so any
// handle the pool has ever emitted can be resolved to its address
// without locking, from any goroutine.
//
// Allocation and return go through per-P caches exchanged via a
// sync.Pool, with batched hand-off of freed handles to a global vector.
// The fast paths take no locks; growth and batch transfer take short
// leaf mutexes.
//
// Returned objects are not cleared. A reused slot holds whatever state
// the previous holder left, and callers must reset what they need.
package respool
