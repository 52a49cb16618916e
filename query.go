package ecs

// QueryDescription carries the four Signatures spec §4.7 describes:
// All, Any, and None combine (an archetype must satisfy all three);
// Exclusive, when non-empty, instead demands an exact signature match
// and must not be combined with the other three. An all-empty
// description matches every archetype.
type QueryDescription struct {
	All       Signature
	Any       Signature
	None      Signature
	Exclusive Signature

	hash int64
}

// NewQueryDescription returns an empty QueryDescription (matches every
// archetype until narrowed with With*).
func NewQueryDescription() *QueryDescription {
	return &QueryDescription{hash: uncomputedHash}
}

// WithAll narrows the description to archetypes carrying every given
// component type.
func (d *QueryDescription) WithAll(types ...ComponentType) *QueryDescription {
	d.All = NewSignature(types...)
	d.hash = uncomputedHash
	return d
}

// WithAny narrows the description to archetypes carrying at least one of
// the given component types.
func (d *QueryDescription) WithAny(types ...ComponentType) *QueryDescription {
	d.Any = NewSignature(types...)
	d.hash = uncomputedHash
	return d
}

// WithNone narrows the description to archetypes carrying none of the
// given component types.
func (d *QueryDescription) WithNone(types ...ComponentType) *QueryDescription {
	d.None = NewSignature(types...)
	d.hash = uncomputedHash
	return d
}

// WithExclusive narrows the description to archetypes whose signature is
// exactly the given component types, no more and no fewer. It is
// mutually exclusive with All/Any/None.
func (d *QueryDescription) WithExclusive(types ...ComponentType) *QueryDescription {
	d.Exclusive = NewSignature(types...)
	d.hash = uncomputedHash
	return d
}

// Rebuild invalidates the cached composite hash after the description's
// Signatures have been mutated directly (rather than through With*),
// per spec §4.7 "Rebuild".
func (d *QueryDescription) Rebuild() {
	d.hash = uncomputedHash
}

// validate enforces spec §4.7's validation invariant: Exclusive is
// mutually exclusive with All/Any/None.
func (d *QueryDescription) validate() error {
	if d.Exclusive.Len() > 0 && (d.All.Len() > 0 || d.Any.Len() > 0 || d.None.Len() > 0) {
		return MalformedQueryError{}
	}
	return nil
}

// Hash returns the description's composite hash, mixing the four
// Signature hashes with a prime-multiplier combine (h = 17; h = 23*h +
// each), computed lazily and cached like Signature.Hash (spec §4.7
// "Caching").
func (d *QueryDescription) Hash() uint32 {
	if d.hash == uncomputedHash {
		h := uint32(17)
		h = 23*h + d.All.Hash()
		h = 23*h + d.Any.Hash()
		h = 23*h + d.None.Hash()
		h = 23*h + d.Exclusive.Hash()
		d.hash = int64(h)
	}
	return uint32(d.hash)
}

// Query is a compiled, cached set of archetypes matching a
// QueryDescription. It is kept up to date as new archetypes are created
// (spec §4.7 "Lifecycle"); it is never kept up to date as archetypes are
// removed, because the core never removes archetypes (spec §5 "Memory").
type Query struct {
	desc          QueryDescription
	allMask       BitSet
	anyMask       BitSet
	noneMask      BitSet
	exclusiveMask BitSet
	exclusive     bool
	matches       []*Archetype
}

// CompileQuery resolves or builds the Query for desc. Two
// QueryDescriptions with equal composite hash are treated as the same
// query (spec §4.7 "Caching"). On first build, every existing archetype
// is scanned and matches are registered with a back-reference.
func (w *World) CompileQuery(desc *QueryDescription) (*Query, error) {
	if err := desc.validate(); err != nil {
		return nil, err
	}
	h := desc.Hash()
	if idx, ok := w.queryCache.getIndex(h); ok {
		return *w.queryCache.getItem(idx), nil
	}

	q := &Query{
		desc:          *desc,
		allMask:       desc.All.bitset(),
		anyMask:       desc.Any.bitset(),
		noneMask:      desc.None.bitset(),
		exclusiveMask: desc.Exclusive.bitset(),
		exclusive:     desc.Exclusive.Len() > 0,
	}
	for _, arch := range w.archetypes {
		if q.matchesArchetype(arch) {
			q.matches = append(q.matches, arch)
			arch.registerQuery(q)
		}
	}
	w.queryCache.register(h, q)
	return q, nil
}

// matchesArchetype evaluates the compiled predicate (spec §4.7
// "Compilation") against a's BitSet.
func (q *Query) matchesArchetype(a *Archetype) bool {
	if q.exclusive {
		return a.bitset.Exclusive(q.exclusiveMask)
	}
	return a.bitset.All(q.allMask) && a.bitset.Any(q.anyMask) && a.bitset.None(q.noneMask)
}

// Valid reports whether the given BitSet satisfies this query's
// predicate — the Query API's predicate hook named in spec §6.
func (q *Query) Valid(bitset BitSet) bool {
	if q.exclusive {
		return bitset.Exclusive(q.exclusiveMask)
	}
	return bitset.All(q.allMask) && bitset.Any(q.anyMask) && bitset.None(q.noneMask)
}

// MatchedArchetypeCount returns the number of archetypes currently
// matched by this query.
func (q *Query) MatchedArchetypeCount() int {
	return len(q.matches)
}

// TotalMatched returns the total number of entities across every
// archetype this query currently matches.
func (q *Query) TotalMatched() int {
	total := 0
	for _, a := range q.matches {
		total += a.Len()
	}
	return total
}
