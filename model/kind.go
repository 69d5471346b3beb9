package model

// Kind identifies the shape of a model node (spec §3.4).
type Kind uint8

const (
	// KindLeaf carries a box and a set-list.
	KindLeaf Kind = iota
	// KindXDiv splits its box along X at cut.
	KindXDiv
	// KindYDiv splits its box along Y at cut.
	KindYDiv
	// KindZDiv splits its box along Z at cut.
	KindZDiv
)

// String renders the kind's file-format letter (spec §4.4: "L X Y Z").
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "L"
	case KindXDiv:
		return "X"
	case KindYDiv:
		return "Y"
	case KindZDiv:
		return "Z"
	default:
		return "?"
	}
}
