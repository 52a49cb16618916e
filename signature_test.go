package ecs

import "testing"

type sigTestA struct{ X int }
type sigTestB struct{ Y int }
type sigTestC struct{ Z int }

// TestSignatureHashStability verifies spec §8 property 1: signatures built
// from permutations of the same component-id multiset hash equal and
// compare equal.
func TestSignatureHashStability(t *testing.T) {
	a := registerComponent[sigTestA]()
	b := registerComponent[sigTestB]()
	c := registerComponent[sigTestC]()

	orderings := [][]ComponentType{
		{a, b, c},
		{c, b, a},
		{b, c, a},
	}

	var sigs []Signature
	for _, order := range orderings {
		sigs = append(sigs, NewSignature(order...))
	}

	for i := 1; i < len(sigs); i++ {
		if sigs[0].Hash() != sigs[i].Hash() {
			t.Errorf("permutation %d hash mismatch: %d vs %d", i, sigs[0].Hash(), sigs[i].Hash())
		}
		if !sigs[0].Equal(&sigs[i]) {
			t.Errorf("permutation %d should compare equal", i)
		}
	}
}

func TestSignatureDeduplicates(t *testing.T) {
	a := registerComponent[sigTestA]()
	sig := NewSignature(a, a, a)
	if sig.Len() != 1 {
		t.Errorf("expected duplicates collapsed to 1 type, got %d", sig.Len())
	}
}

func TestSignatureKeyDistinguishesDifferentSets(t *testing.T) {
	a := registerComponent[sigTestA]()
	b := registerComponent[sigTestB]()

	sigAB := NewSignature(a, b)
	sigA := NewSignature(a)

	if sigAB.Key() == sigA.Key() {
		t.Error("different signatures should not share a Key()")
	}
}

func TestSignatureEmptyHashIsZero(t *testing.T) {
	var empty Signature
	if empty.Hash() != 0 {
		t.Errorf("zero-value Signature should hash to 0, got %d", empty.Hash())
	}
}
