package set

import "github.com/svlis-go/svlis/prim"

// Walk performs a pre-order traversal of the set tree rooted at s, calling
// visit on every primitive leaf reached. Mirrors prim.Walk's shape one
// layer up the stack.
func Walk(s Set, visit func(prim.Primitive) bool) {
	if s.zero() {
		return
	}
	switch s.Kind() {
	case KindPrim:
		visit(s.Primitive())
	case KindUnion, KindIntersection:
		Walk(s.Child(0), visit)
		Walk(s.Child(1), visit)
	}
}
