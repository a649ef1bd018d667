package respool

// Stats is a point-in-time description of a pool. It is assembled by
// walking the published plane, so concurrent allocators may move the
// counters while the walk runs; individual fields are exact for the
// moment each was read.
type Stats struct {
	LocalCaches int64  // caches currently live
	FreeChunks  int64  // chunks parked in the global vector
	Groups      uint64 // groups published
	Blocks      uint64 // blocks published
	Items       uint64 // slots ever constructed
	FreeItems   int64  // handles parked in free lists; only with CountFree

	BlockItemCap     uint64 // slots per block
	FreeChunkItemCap int    // handles per free chunk
	TotalBytes       uint64 // bytes of item storage backing the plane
}

// Describe walks every published group and block. It is not O(1) and
// does not belong on a hot path.
func (p *Pool[T]) Describe() Stats {
	st := Stats{
		LocalCaches:      p.nlocal.Load(),
		FreeChunks:       p.nchunk.Load(),
		BlockItemCap:     p.geo.blockItems,
		FreeChunkItemCap: p.geo.chunkItems,
	}

	ng := p.ngroup.Load()
	st.Groups = ng
	for gi := uint64(0); gi < ng; gi++ {
		g := p.groups[gi].Load()
		if g == nil {
			continue
		}
		nb := uint64(g.nblock.Load())
		if nb > p.geo.groupBlocks {
			nb = p.geo.groupBlocks
		}
		for bi := uint64(0); bi < nb; bi++ {
			b := g.blocks[bi].Load()
			if b == nil {
				continue
			}
			st.Blocks++
			st.Items += b.nitem.Load()
		}
	}
	st.TotalBytes = st.Blocks * p.geo.blockItems * uint64(p.itemBytes)

	if p.countFree {
		st.FreeItems = p.nfree.Load()
	}
	return st
}
