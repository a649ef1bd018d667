package reclaim

import "testing"

func TestRetireRingBasic(t *testing.T) {
	r := NewRetireRing(4)

	if !r.Enqueue(0) || !r.Enqueue(7) {
		t.Fatal("enqueue failed unexpectedly")
	}
	if h, ok := r.Dequeue(); !ok || h != 0 {
		t.Error("expected first dequeue to be handle 0")
	}
	if h, ok := r.Dequeue(); !ok || h != 7 {
		t.Error("expected second dequeue to be handle 7")
	}
	if _, ok := r.Dequeue(); ok {
		t.Error("expected empty ring to report no handle")
	}
}

func TestRetireRingFull(t *testing.T) {
	r := NewRetireRing(2)
	if !r.Enqueue(1) || !r.Enqueue(2) {
		t.Fatal("ring should hold its capacity")
	}
	if r.Enqueue(3) {
		t.Error("full ring must reject")
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}

func TestAdvanceAndReclaim(t *testing.T) {
	r := NewRetireRing(8)
	r.Enqueue(10)
	r.Enqueue(11)

	var got []uint64
	put := func(h uint64) { got = append(got, h) }

	// An active reader parks everything.
	reader := NewReaderEpoch()
	reader.Enter()
	AdvanceAndReclaim(r, put, reader)
	if len(got) != 0 {
		t.Fatalf("reclaimed %d handles under an active reader", len(got))
	}

	reader.Exit()
	AdvanceAndReclaim(r, put, reader)
	if len(got) != 2 || got[0] != 10 || got[1] != 11 {
		t.Fatalf("reclaimed = %v, want [10 11]", got)
	}
}
