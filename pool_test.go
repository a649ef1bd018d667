package respool

import (
	"testing"
)

type testItem struct {
	id    uint64
	extra uint64
}

// tinyPool builds a pool with a 4-slot block so growth is cheap to hit.
func tinyPool(t *testing.T) *Pool[testItem] {
	t.Helper()
	return New(Config[testItem]{BlockMaxItem: 4})
}

func TestBumpAllocationAndReuse(t *testing.T) {
	p := tinyPool(t)

	var ptrs [4]*testItem
	for i := 0; i < 4; i++ {
		item, h := p.Get()
		if item == nil {
			t.Fatalf("allocation %d failed", i)
		}
		if uint64(h) != uint64(i) {
			t.Fatalf("allocation %d: handle = %d, want %d", i, h, i)
		}
		ptrs[i] = item
	}

	// The first four slots must share one contiguous block.
	blk := p.groups[0].Load().blocks[0].Load()
	for i := range ptrs {
		if ptrs[i] != &blk.items[i] {
			t.Fatalf("slot %d not inside the first block", i)
		}
	}

	// The fifth allocation opens a second block.
	item4, h4 := p.Get()
	if item4 == nil || uint64(h4) != 4 {
		t.Fatalf("fifth allocation: handle = %d, want 4", h4)
	}
	blk2 := p.groups[0].Load().blocks[1].Load()
	if blk2 == nil || item4 != &blk2.items[0] {
		t.Fatal("fifth allocation did not land in a second block")
	}

	// Returning h2 and allocating again must reuse the same slot.
	p.Put(Handle[testItem](2))
	item, h := p.Get()
	if uint64(h) != 2 {
		t.Fatalf("reuse: handle = %d, want 2", h)
	}
	if item != ptrs[2] {
		t.Fatal("reuse: pointer differs from the original allocation")
	}
}

func TestAddressMatchesAllocation(t *testing.T) {
	p := tinyPool(t)

	for i := 0; i < 64; i++ {
		item, h := p.Get()
		if item == nil {
			t.Fatalf("allocation %d failed", i)
		}
		if got := p.Address(h); got != item {
			t.Fatalf("handle %d: Address = %p, want %p", h, got, item)
		}
	}
}

func TestCrossGoroutineResolution(t *testing.T) {
	p := tinyPool(t)

	type emitted struct {
		h   Handle[testItem]
		ptr *testItem
	}
	ch := make(chan emitted)

	go func() {
		item, h := p.Get()
		item.id = 42
		ch <- emitted{h: h, ptr: item}
	}()

	e := <-ch
	got := p.Address(e.h)
	if got != e.ptr {
		t.Fatalf("Address = %p, want %p", got, e.ptr)
	}
	if got.id != 42 {
		t.Fatalf("id = %d, want 42", got.id)
	}
}

func TestFreeChunkTransfer(t *testing.T) {
	p := New(Config[testItem]{BlockMaxItem: 16, FreeChunkMaxItem: 4})

	handles := make([]Handle[testItem], 0, 12)
	ptrs := make(map[*testItem]bool, 12)
	for i := 0; i < 12; i++ {
		item, h := p.Get()
		if item == nil {
			t.Fatalf("allocation %d failed", i)
		}
		handles = append(handles, h)
		ptrs[item] = true
	}

	for _, h := range handles {
		p.Put(h)
	}

	// Twelve returns through a 4-handle chunk ship three full chunks.
	if n := p.nchunk.Load(); n != 3 {
		t.Fatalf("global vector holds %d chunks, want 3", n)
	}

	// Reallocation must draw from the same twelve slots, none fresh.
	for i := 0; i < 12; i++ {
		item, _ := p.Get()
		if item == nil {
			t.Fatalf("reallocation %d failed", i)
		}
		if !ptrs[item] {
			t.Fatalf("reallocation %d produced a slot outside the original set", i)
		}
		delete(ptrs, item)
	}
	if st := p.Describe(); st.Items != 12 {
		t.Fatalf("constructed items = %d, want 12", st.Items)
	}
}

func TestGroupGrowth(t *testing.T) {
	p := New(Config[testItem]{
		BlockMaxItem: 1,
		GroupBlocks:  2,
		MaxGroups:    4,
	})

	var hs [3]Handle[testItem]
	for i := range hs {
		item, h := p.Get()
		if item == nil {
			t.Fatalf("allocation %d failed", i)
		}
		if uint64(h) != uint64(i) {
			t.Fatalf("allocation %d: handle = %d, want %d", i, h, i)
		}
		hs[i] = h
	}

	if ng := p.ngroup.Load(); ng != 2 {
		t.Fatalf("ngroup = %d, want 2", ng)
	}
	if nb := p.groups[0].Load().nblock.Load(); nb != 2 {
		t.Fatalf("first group holds %d blocks, want 2", nb)
	}
	if nb := p.groups[1].Load().nblock.Load(); nb != 1 {
		t.Fatalf("second group holds %d blocks, want 1", nb)
	}
	for i, h := range hs {
		if p.Address(h) == nil {
			t.Fatalf("handle %d no longer resolves", i)
		}
	}
}

func TestPlaneExhaustion(t *testing.T) {
	p := New(Config[testItem]{
		BlockMaxItem: 1,
		GroupBlocks:  1,
		MaxGroups:    1,
	})

	if item, _ := p.Get(); item == nil {
		t.Fatal("first allocation should fit")
	}
	if item, _ := p.Get(); item != nil {
		t.Fatal("second allocation should fail, the plane is full")
	}
}

func TestValidatorRejection(t *testing.T) {
	ctor := 0
	p := New(Config[testItem]{
		BlockMaxItem: 8,
		Validate: func(*testItem) bool {
			ctor++
			return (ctor-1)%3 != 0
		},
	})

	var ok, failed int
	seen := map[Handle[testItem]]bool{}
	for i := 0; i < 5; i++ {
		item, h := p.Get()
		if item == nil {
			failed++
			continue
		}
		ok++
		if seen[h] {
			t.Fatalf("handle %d emitted twice", h)
		}
		seen[h] = true
		if p.Address(h) != item {
			t.Fatalf("handle %d does not resolve to its slot", h)
		}
	}
	if failed != 2 || ok != 3 {
		t.Fatalf("failed = %d, ok = %d, want 2 and 3", failed, ok)
	}
}

func TestGarbageHandleResolution(t *testing.T) {
	p := tinyPool(t)

	if got := p.Address(Handle[testItem](^uint64(0))); got != nil {
		t.Fatalf("Address(max) = %p, want nil", got)
	}

	_, h := p.Get()
	if got := p.Address(h + 1<<40); got != nil {
		t.Fatalf("Address past the plane = %p, want nil", got)
	}
}

func TestGetInitRunsOnlyOnFreshConstruction(t *testing.T) {
	p := tinyPool(t)

	inits := 0
	init := func(it *testItem) { inits++; it.id = 7 }

	item, h := p.GetInit(init)
	if item == nil || inits != 1 {
		t.Fatalf("fresh construction: inits = %d, want 1", inits)
	}
	item.id = 99

	p.Put(h)
	item2, h2 := p.GetInit(init)
	if h2 != h || item2 != item {
		t.Fatal("expected the returned slot to be reused")
	}
	if inits != 1 {
		t.Fatalf("reuse ran init: inits = %d, want 1", inits)
	}
	if item2.id != 99 {
		t.Fatalf("reused slot was cleared: id = %d, want 99", item2.id)
	}
}

func TestDescribe(t *testing.T) {
	p := New(Config[testItem]{BlockMaxItem: 4, CountFree: true})

	var hs []Handle[testItem]
	for i := 0; i < 10; i++ {
		_, h := p.Get()
		hs = append(hs, h)
	}
	for _, h := range hs[:3] {
		p.Put(h)
	}

	st := p.Describe()
	if st.Groups != 1 {
		t.Errorf("Groups = %d, want 1", st.Groups)
	}
	if st.Blocks != 3 {
		t.Errorf("Blocks = %d, want 3", st.Blocks)
	}
	if st.Items != 10 {
		t.Errorf("Items = %d, want 10", st.Items)
	}
	if st.FreeItems != 3 {
		t.Errorf("FreeItems = %d, want 3", st.FreeItems)
	}
	if st.BlockItemCap != 4 || st.FreeChunkItemCap != 4 {
		t.Errorf("caps = %d/%d, want 4/4", st.BlockItemCap, st.FreeChunkItemCap)
	}
	if want := st.Blocks * 4 * 16; st.TotalBytes != want {
		t.Errorf("TotalBytes = %d, want %d", st.TotalBytes, want)
	}
}

func TestClear(t *testing.T) {
	p := tinyPool(t)

	_, h0 := p.Get()
	_, h1 := p.Get()
	p.Put(h1)

	p.Clear()

	if st := p.Describe(); st.Groups != 0 || st.Blocks != 0 || st.Items != 0 {
		t.Fatalf("plane not empty after Clear: %+v", st)
	}
	if p.Address(h0) != nil {
		t.Fatal("pre-Clear handle still resolves")
	}

	item, h := p.Get()
	if item == nil || uint64(h) != 0 {
		t.Fatalf("post-Clear allocation: handle = %d, want 0", h)
	}
}
