package ecs

// Archetype owns a growable list of Chunks sharing one Signature. New rows
// go into the last chunk, and a new chunk is allocated when it is full.
// Per spec §9 (Open Question, resolved in DESIGN.md), emptied chunks are
// retained for reuse rather than freed. Because removal fills a gap from
// the last non-empty chunk while additions go to the physically last
// chunk, an earlier chunk can be left partially filled or empty after
// removals; iteration visits only rows [0, size) of each chunk.
type Archetype struct {
	index         int
	signature     Signature
	bitset        BitSet
	chunks        []Chunk
	chunkCapacity int
	queryBackRefs []*Query
}

func newArchetype(index int, sig Signature, chunkCapacity int) *Archetype {
	return &Archetype{
		index:         index,
		signature:     sig,
		bitset:        sig.bitset(),
		chunkCapacity: chunkCapacity,
	}
}

// ID returns the archetype's index-assigned identity.
func (a *Archetype) ID() uint32 { return uint32(a.index) }

// Signature returns the component-type set identifying this archetype.
func (a *Archetype) Signature() Signature { return a.signature }

// Chunks returns the archetype's chunks in allocation order.
func (a *Archetype) Chunks() []Chunk { return a.chunks }

// Len returns the total number of live entities across all chunks.
func (a *Archetype) Len() int {
	total := 0
	for i := range a.chunks {
		total += a.chunks[i].size
	}
	return total
}

// add appends entity as a new row, allocating a fresh chunk of the
// archetype's default capacity if the last chunk is full (or none exist
// yet). It returns the chunk index and row the entity now occupies.
func (a *Archetype) add(entity Entity) (chunkIdx, row int) {
	if len(a.chunks) == 0 || a.chunks[len(a.chunks)-1].full() {
		a.chunks = append(a.chunks, newChunk(a.signature.types, a.chunkCapacity))
	}
	chunkIdx = len(a.chunks) - 1
	row = a.chunks[chunkIdx].add(entity)
	return chunkIdx, row
}

// remove deletes the row at (chunkIdx, row) via swap-with-last. If the
// vacated row is not already in the last non-empty chunk, the globally-last
// live entity is moved into the gap instead of shifting anything; this is
// still an O(1) swap, just across chunks rather than within one. Trailing
// chunks can be retained at size 0 under this archetype's empty-chunk
// retention policy, so the search for the donor chunk walks backward past
// any already-emptied trailing chunks rather than assuming len(a.chunks)-1
// holds a live row. It reports the entity that moved (so the caller can fix
// up that entity's world slot) and whether a move actually happened.
func (a *Archetype) remove(chunkIdx, row int) (moved Entity, didMove bool) {
	lastIdx := len(a.chunks) - 1
	for lastIdx > chunkIdx && a.chunks[lastIdx].size == 0 {
		lastIdx--
	}
	if chunkIdx == lastIdx {
		return a.chunks[chunkIdx].removeLocal(row)
	}
	target := &a.chunks[chunkIdx]
	last := &a.chunks[lastIdx]
	moved = target.transfer(row, last)
	return moved, true
}

// registerQuery records a back-reference from this archetype to a Query
// that matches it (spec §4.5/§4.7). The core never walks this list
// itself: new archetypes are matched against existing queries through the
// World's query cache. It exists for symmetry with the teacher's design
// and for collaborators building invalidation on top.
func (a *Archetype) registerQuery(q *Query) {
	a.queryBackRefs = append(a.queryBackRefs, q)
}
