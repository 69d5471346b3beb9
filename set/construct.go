package set

// Union returns a ∪ b, applying the identities that keep the tree small:
// NOTHING ∪ x = x, EVERYTHING ∪ x = EVERYTHING.
func Union(a, b Set) Set {
	switch {
	case a.zero():
		return b
	case b.zero():
		return a
	case a.Kind() == KindNothing:
		return b
	case b.Kind() == KindNothing:
		return a
	case a.Kind() == KindEverything || b.Kind() == KindEverything:
		return Everything()
	}
	return wrap(&node{id: nextID.Add(1), kind: KindUnion, ch0: a, ch1: b})
}

// Intersection returns a ∩ b, applying the dual identities: EVERYTHING ∩ x
// = x, NOTHING ∩ x = NOTHING.
func Intersection(a, b Set) Set {
	switch {
	case a.zero():
		return b
	case b.zero():
		return a
	case a.Kind() == KindEverything:
		return b
	case b.Kind() == KindEverything:
		return a
	case a.Kind() == KindNothing || b.Kind() == KindNothing:
		return Nothing()
	}
	return wrap(&node{id: nextID.Add(1), kind: KindIntersection, ch0: a, ch1: b})
}

// Difference returns a − b = a ∩ ¬b (spec §4.2).
func Difference(a, b Set) Set {
	return Intersection(a, Complement(b))
}

// SymmetricDifference returns a ⊕ b = (a − b) ∪ (b − a) (spec §4.2).
func SymmetricDifference(a, b Set) Set {
	return Union(Difference(a, b), Difference(b, a))
}
