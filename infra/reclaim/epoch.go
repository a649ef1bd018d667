package reclaim

import "sync/atomic"

// GlobalEpoch monotonically increases.
var GlobalEpoch atomic.Uint64

const inactive = ^uint64(0)

// ReaderEpoch marks when a reader entered a read section.
type ReaderEpoch struct {
	epoch atomic.Uint64
}

func NewReaderEpoch() *ReaderEpoch {
	r := &ReaderEpoch{}
	r.epoch.Store(inactive)
	return r
}

func (r *ReaderEpoch) Enter() {
	r.epoch.Store(GlobalEpoch.Load())
}

func (r *ReaderEpoch) Exit() {
	r.epoch.Store(inactive)
}

func (r *ReaderEpoch) Value() uint64 {
	return r.epoch.Load()
}

// AdvanceAndReclaim advances the epoch and hands retired handles back
// through put once no reader section predates them. Retired handles
// stay addressable while parked, so readers that resolved them before
// retirement keep a valid view.
func AdvanceAndReclaim(
	ring *RetireRing,
	put func(uint64),
	readers ...*ReaderEpoch,
) {
	GlobalEpoch.Add(1)
	min := minReaderEpoch(readers...)

	for {
		h, ok := ring.Dequeue()
		if !ok {
			return
		}

		if min == inactive {
			put(h)
			continue
		}

		// Not safe yet → FIFO guarantees newer ones aren't either
		_ = ring.Enqueue(h)
		return
	}
}

func minReaderEpoch(rs ...*ReaderEpoch) uint64 {
	min := inactive
	for _, r := range rs {
		if r == nil {
			continue
		}
		v := r.Value()
		if v < min {
			min = v
		}
	}
	return min
}
