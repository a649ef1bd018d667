package respool

// Handle identifies one slot of a Pool[T]. Handles are stable for the
// process lifetime: once emitted, a handle resolves to the same address
// forever. Distinct object types instantiate distinct handle types, so
// handles from pools of different types cannot be compared or mixed.
//
// Handle 0 is the first slot ever constructed and is a valid handle.
// Callers that need a "no handle" notion must carry an out-of-band flag.
type Handle[T any] uint64

// geometry fixes the shape of the storage plane for one pool. A handle
// value encodes a position in the (group, block, slot) lattice:
//
//	slot  = h % blockItems
//	flat  = h / blockItems
//	block = flat % groupBlocks
//	group = flat / groupBlocks
type geometry struct {
	blockItems  uint64 // constructed slots per block
	groupBlocks uint64 // block pointers per group
	maxGroups   uint64
	chunkItems  int // handles per free chunk
}

func (g geometry) split(h uint64) (group, block, slot uint64) {
	slot = h % g.blockItems
	flat := h / g.blockItems
	return flat / g.groupBlocks, flat % g.groupBlocks, slot
}

// join forms the handle for a slot inside the block with the given flat
// index.
func (g geometry) join(flatBlock, slot uint64) uint64 {
	return flatBlock*g.blockItems + slot
}
