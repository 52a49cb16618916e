package ecs

import "testing"

func TestBitSetPredicatesOnEmptyMask(t *testing.T) {
	var self BitSet
	self.SetBits(1, 5, 9)

	var empty BitSet

	if !self.All(empty) {
		t.Error("All(empty) should be vacuously true")
	}
	if !self.Any(empty) {
		t.Error("Any(empty) should be vacuously true")
	}
	if !self.None(empty) {
		t.Error("None(empty) should be vacuously true")
	}
}

func TestBitSetAll(t *testing.T) {
	var self BitSet
	self.SetBits(1, 2, 3, 100)

	var subset BitSet
	subset.SetBits(1, 100)

	if !self.All(subset) {
		t.Error("All() should be true when every mask bit is set in self")
	}

	var missing BitSet
	missing.SetBits(1, 2, 3, 4)
	if self.All(missing) {
		t.Error("All() should be false when a mask bit is absent from self")
	}
}

func TestBitSetAny(t *testing.T) {
	var self BitSet
	self.SetBits(5)

	var overlap BitSet
	overlap.SetBits(5, 6)
	if !self.Any(overlap) {
		t.Error("Any() should be true on overlap")
	}

	var disjoint BitSet
	disjoint.SetBits(6, 7)
	if self.Any(disjoint) {
		t.Error("Any() should be false on disjoint sets")
	}
}

func TestBitSetNone(t *testing.T) {
	var self BitSet
	self.SetBits(5)

	var disjoint BitSet
	disjoint.SetBits(6, 7)
	if !self.None(disjoint) {
		t.Error("None() should be true on disjoint sets")
	}

	var overlap BitSet
	overlap.SetBits(5, 6)
	if self.None(overlap) {
		t.Error("None() should be false on overlap")
	}
}

func TestBitSetExclusive(t *testing.T) {
	var a, b BitSet
	a.SetBits(1, 64, 200)
	b.SetBits(200, 1, 64)

	if !a.Exclusive(b) {
		t.Error("Exclusive() should be true for identical sets built in different order")
	}

	b.Set(5)
	if a.Exclusive(b) {
		t.Error("Exclusive() should be false once sets diverge")
	}
}

func TestBitSetHashOrderIndependent(t *testing.T) {
	var a, b BitSet
	a.SetBits(3, 70, 1, 500)
	b.SetBits(500, 1, 70, 3)

	if a.Hash() != b.Hash() {
		t.Errorf("Hash() should be order-independent: got %d and %d", a.Hash(), b.Hash())
	}
}

func TestBitSetGrowsAcrossWordBoundary(t *testing.T) {
	var b BitSet
	b.Set(130)
	if !b.Test(130) {
		t.Error("expected bit 130 to be set after growth")
	}
	if b.Test(129) {
		t.Error("unrelated bit should not be set")
	}
}
