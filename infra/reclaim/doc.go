// Package reclaim defers the return of pool handles until no reader
// can still be looking at them. It provides a lock-free retire ring,
// global epoch tracking and per-reader epoch marks used by the lease
// service and its snapshot iterators.
//
// The package is dependency-free and works on raw handle words; the
// typed Put of the owning pool is passed in at reclamation time.
package reclaim
