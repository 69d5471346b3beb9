package facet

import "github.com/svlis-go/svlis/scalar"

// PolygonKind identifies the shape of a Polygon (spec §6: "Polygon kinds:
// P L O (point-set, polyline, closed polygon)").
type PolygonKind uint8

const (
	// KindPointSet is an unordered collection of points.
	KindPointSet PolygonKind = iota
	// KindPolyline is an open, ordered chain of points.
	KindPolyline
	// KindClosed is a closed polygon (last point implicitly joins the first).
	KindClosed
)

// String renders the kind's file-format letter.
func (k PolygonKind) String() string {
	switch k {
	case KindPointSet:
		return "P"
	case KindPolyline:
		return "L"
	case KindClosed:
		return "O"
	default:
		return "?"
	}
}

// Polygon is one facet of the polygonised boundary.
type Polygon struct {
	Kind   PolygonKind
	Points []scalar.Point

	// sourceBox records the model leaf this polygon came from, so Refacet
	// can tell which previously-emitted polygons belong to a touched leaf
	// without re-walking the whole tree. Not part of the serialised form.
	sourceBox scalar.Box
}
