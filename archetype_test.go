package ecs

import "testing"

type archTestPosition struct{ X, Y float64 }

func TestArchetypeAllocatesNewChunkWhenFull(t *testing.T) {
	pos := registerComponent[archTestPosition]()
	sig := NewSignature(pos)
	arch := newArchetype(0, sig, 2)

	for i := 0; i < 2; i++ {
		arch.add(Entity{id: uint32(i)})
	}
	if len(arch.chunks) != 1 {
		t.Fatalf("expected 1 chunk while under capacity, got %d", len(arch.chunks))
	}

	chunkIdx, row := arch.add(Entity{id: 2})
	if len(arch.chunks) != 2 {
		t.Fatalf("expected a second chunk once the first filled, got %d", len(arch.chunks))
	}
	if chunkIdx != 1 || row != 0 {
		t.Errorf("expected new entity at chunk 1 row 0, got chunk %d row %d", chunkIdx, row)
	}
}

func TestArchetypeRemoveSameChunk(t *testing.T) {
	pos := registerComponent[archTestPosition]()
	sig := NewSignature(pos)
	arch := newArchetype(0, sig, 4)

	e0 := Entity{id: 1}
	e1 := Entity{id: 2}
	arch.add(e0)
	arch.add(e1)

	moved, didMove := arch.remove(0, 0)
	if !didMove || moved != e1 {
		t.Fatalf("expected e1 to move into vacated row, got %v (didMove=%v)", moved, didMove)
	}
}

func TestArchetypeRemoveCrossChunk(t *testing.T) {
	pos := registerComponent[archTestPosition]()
	sig := NewSignature(pos)
	arch := newArchetype(0, sig, 1)

	e0 := Entity{id: 1}
	e1 := Entity{id: 2}
	arch.add(e0)
	arch.add(e1)

	if len(arch.chunks) != 2 {
		t.Fatalf("expected 2 chunks with capacity 1, got %d", len(arch.chunks))
	}

	moved, didMove := arch.remove(0, 0)
	if !didMove || moved != e1 {
		t.Fatalf("expected the last chunk's entity (e1) to be transferred in, got %v (didMove=%v)", moved, didMove)
	}
	if arch.chunks[0].EntityAt(0) != e1 {
		t.Errorf("expected chunk 0 row 0 to now hold e1, got %v", arch.chunks[0].EntityAt(0))
	}
	if arch.chunks[1].Size() != 0 {
		t.Errorf("expected the emptied last chunk to shrink to size 0, got %d", arch.chunks[1].Size())
	}
}

func TestArchetypeRemoveSkipsEmptiedTrailingChunk(t *testing.T) {
	pos := registerComponent[archTestPosition]()
	sig := NewSignature(pos)
	arch := newArchetype(0, sig, 1)

	e0 := Entity{id: 1}
	e1 := Entity{id: 2}
	e2 := Entity{id: 3}
	arch.add(e0)
	arch.add(e1)
	arch.add(e2)

	if len(arch.chunks) != 3 {
		t.Fatalf("expected 3 chunks with capacity 1, got %d", len(arch.chunks))
	}

	// Empty the trailing chunk first; with only one row it cannot move
	// anything in, so the chunk is retained at size 0 as the last chunk.
	moved, didMove := arch.remove(2, 0)
	if didMove {
		t.Fatalf("expected removing the sole row of the last chunk to report no move, got moved=%v", moved)
	}
	if arch.chunks[2].Size() != 0 {
		t.Fatalf("expected the last chunk to be retained at size 0, got %d", arch.chunks[2].Size())
	}

	// Now remove from an earlier chunk. The donor must be the nearest
	// non-empty chunk (chunk 1, holding e1), not the emptied chunk 2.
	moved, didMove = arch.remove(0, 0)
	if !didMove || moved != e1 {
		t.Fatalf("expected e1 to be transferred in from chunk 1, got %v (didMove=%v)", moved, didMove)
	}
	if arch.chunks[0].EntityAt(0) != e1 {
		t.Errorf("expected chunk 0 row 0 to now hold e1, got %v", arch.chunks[0].EntityAt(0))
	}
	if arch.chunks[1].Size() != 0 {
		t.Errorf("expected chunk 1 to be emptied by the transfer, got size %d", arch.chunks[1].Size())
	}
}

func TestArchetypeLen(t *testing.T) {
	pos := registerComponent[archTestPosition]()
	sig := NewSignature(pos)
	arch := newArchetype(0, sig, 2)

	for i := 0; i < 5; i++ {
		arch.add(Entity{id: uint32(i)})
	}
	if arch.Len() != 5 {
		t.Errorf("expected Len() 5 across chunks, got %d", arch.Len())
	}
}
