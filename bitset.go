package ecs

import "math/bits"

// BitSet is a dynamically-grown, word-packed set of non-negative integers
// (component ids), per spec §4.2. It grows to cover the largest id ever
// inserted; predicates treat any bit beyond the current storage as unset.
type BitSet struct {
	words []uint64
}

func wordFor(id int) int   { return id / 64 }
func maskFor(id int) uint64 { return uint64(1) << uint(id%64) }

// Set marks the given component id.
func (b *BitSet) Set(id int) {
	w := wordFor(id)
	if w >= len(b.words) {
		grown := make([]uint64, w+1)
		copy(grown, b.words)
		b.words = grown
	}
	b.words[w] |= maskFor(id)
}

// SetBits marks one bit per component id, growing storage as needed.
func (b *BitSet) SetBits(ids ...int) {
	for _, id := range ids {
		b.Set(id)
	}
}

// Test reports whether the given component id is set.
func (b BitSet) Test(id int) bool {
	w := wordFor(id)
	if w >= len(b.words) {
		return false
	}
	return b.words[w]&maskFor(id) != 0
}

// IsEmpty reports whether no bit is set.
func (b BitSet) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

func (b BitSet) wordAt(i int) uint64 {
	if i < len(b.words) {
		return b.words[i]
	}
	return 0
}

// All reports whether every bit of mask is also set in self. An empty
// mask is vacuously satisfied.
func (b BitSet) All(mask BitSet) bool {
	for w := 0; w < len(mask.words); w++ {
		if mask.words[w]&b.wordAt(w) != mask.words[w] {
			return false
		}
	}
	return true
}

// Any reports whether self and mask share a set bit. An empty mask is
// vacuously satisfied (so an omitted "any" predicate never filters).
func (b BitSet) Any(mask BitSet) bool {
	if mask.IsEmpty() {
		return true
	}
	for w := 0; w < len(mask.words); w++ {
		if mask.words[w]&b.wordAt(w) != 0 {
			return true
		}
	}
	return false
}

// None reports that self and mask share no set bit. An empty mask is
// vacuously satisfied.
func (b BitSet) None(mask BitSet) bool {
	for w := 0; w < len(mask.words); w++ {
		if mask.words[w]&b.wordAt(w) != 0 {
			return false
		}
	}
	return true
}

// Exclusive reports that self and mask are bit-for-bit identical.
func (b BitSet) Exclusive(mask BitSet) bool {
	n := len(b.words)
	if len(mask.words) > n {
		n = len(mask.words)
	}
	for w := 0; w < n; w++ {
		if b.wordAt(w) != mask.wordAt(w) {
			return false
		}
	}
	return true
}

// Hash returns an order-independent hash over the set bits, so that two
// BitSets built by inserting the same ids in different orders hash equal.
func (b BitSet) Hash() uint32 {
	var h uint32
	for wi, w := range b.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			h ^= avalanche(uint32(wi*64 + tz))
			w &= w - 1
		}
	}
	return h
}

// avalanche is a small integer mixing function (murmur3 finalizer) used to
// turn a bit position into a well-distributed value before XOR-combining,
// so that Hash stays order-independent without degenerating to a simple
// popcount.
func avalanche(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x85ebca6b
	x ^= x >> 13
	x *= 0xc2b2ae35
	x ^= x >> 16
	return x
}
