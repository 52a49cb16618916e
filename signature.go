package ecs

import (
	"sort"
	"strconv"
	"strings"
)

// uncomputedHash is the sentinel stored in Signature.hash (and in
// QueryDescription.hash) before the hash has been lazily computed, per
// spec §4.3/§9. A valid hash, masked to 32 bits, can never equal it.
const uncomputedHash int64 = -1

// Signature is the ordered, deduplicated identity of an archetype's
// component set: a sorted-by-id sequence of ComponentTypes plus a cached
// order-independent hash.
type Signature struct {
	types []ComponentType
	hash  int64
}

// NewSignature builds a Signature from a variadic component-type list,
// sorting by id and dropping duplicates.
func NewSignature(types ...ComponentType) Signature {
	if len(types) == 0 {
		return Signature{hash: uncomputedHash}
	}
	sorted := append([]ComponentType(nil), types...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].id < sorted[j].id })

	deduped := make([]ComponentType, 0, len(sorted))
	for i, t := range sorted {
		if i > 0 && t.id == sorted[i-1].id {
			continue
		}
		deduped = append(deduped, t)
	}
	return Signature{types: deduped, hash: uncomputedHash}
}

// Len returns the number of distinct component types in the signature.
func (s Signature) Len() int { return len(s.types) }

// Types returns the sorted, deduplicated component types.
func (s Signature) Types() []ComponentType { return s.types }

// Contains reports whether id is a member of this signature.
func (s Signature) Contains(id ComponentID) bool {
	for _, t := range s.types {
		if t.id == id {
			return true
		}
	}
	return false
}

// Hash returns the signature's order-independent hash, computing and
// caching it on first use (sentinel -1 means "not yet computed").
func (s *Signature) Hash() uint32 {
	if s.hash == uncomputedHash {
		s.hash = int64(uint32(s.bitset().Hash()))
	}
	return uint32(s.hash)
}

// Equal reports whether two signatures have the same sorted id sequence.
// Per spec §4.3, equality is hash-based; BitSet.Hash is strong enough
// (murmur3-avalanched per bit, XOR-combined) that collisions between
// distinct real component sets are not expected in practice.
func (s *Signature) Equal(other *Signature) bool {
	return s.Hash() == other.Hash()
}

// Key returns a canonical string key for this signature, used internally
// to index the world's archetype table. Unlike Hash (which spec §4.3
// allows to stand in for equality on its own), map keys must never
// collide, so Key encodes the exact sorted id sequence rather than a
// hash of it.
func (s Signature) Key() string {
	if len(s.types) == 0 {
		return ""
	}
	var b strings.Builder
	for i, t := range s.types {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(t.id)))
	}
	return b.String()
}

// bitset materializes the signature as a BitSet for predicate matching.
func (s Signature) bitset() BitSet {
	var bs BitSet
	for _, t := range s.types {
		bs.Set(int(t.id))
	}
	return bs
}

// rowStride returns the byte size of one row across every column in this
// signature: the sum of each component's element size.
func (s Signature) rowStride() uintptr {
	var total uintptr
	for _, t := range s.types {
		total += t.size
	}
	return total
}
