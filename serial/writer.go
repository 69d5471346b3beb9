package serial

import (
	"bufio"
	"io"
	"strconv"

	"github.com/svlis-go/svlis/facet"
	"github.com/svlis-go/svlis/model"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/report"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

// Writer serialises kernel values to the tagged-stream format. Its address
// table (written map[uint64]bool, one per shared-DAG package) is
// instance-scoped: a fresh Writer starts with an empty table, so two
// Writers over the same process never collide the way a process-wide
// table would (spec §5's concurrency note, overridden per spec.md's
// REDESIGN FLAGS).
type Writer struct {
	out        *bufio.Writer
	primWrit   map[uint64]bool
	setWrit    map[uint64]bool
	headerDone bool
}

// NewWriter wraps w, ready to emit the version header followed by entities.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		out:      bufio.NewWriter(w),
		primWrit: make(map[uint64]bool),
		setWrit:  make(map[uint64]bool),
	}
}

// Flush writes any buffered output to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.out.Flush()
}

func (w *Writer) header() {
	if w.headerDone {
		return
	}
	w.out.WriteString(magic + "\n")
	w.out.WriteString(strconv.Itoa(VersionCurrent) + "\n")
	w.headerDone = true
}

func (w *Writer) real(r scalar.Real) {
	w.out.WriteString(strconv.FormatFloat(r, 'g', -1, 64))
	w.out.WriteByte(' ')
}

func (w *Writer) word(s string) {
	w.out.WriteString(s)
	w.out.WriteByte(' ')
}

func (w *Writer) int(n int) {
	w.out.WriteString(strconv.Itoa(n))
	w.out.WriteByte(' ')
}

func (w *Writer) uint(n uint64) {
	w.out.WriteString(strconv.FormatUint(n, 10))
	w.out.WriteByte(' ')
}

// WritePoint emits p as a POINT entity.
func (w *Writer) WritePoint(p scalar.Point) {
	w.header()
	w.word(tagPoint)
	w.word("{")
	w.uint(0)
	w.real(p.X)
	w.real(p.Y)
	w.real(p.Z)
	w.word("}")
}

// WriteInterval emits iv as an INTERVAL entity.
func (w *Writer) WriteInterval(iv scalar.Interval) {
	w.header()
	w.word(tagInterval)
	w.word("{")
	w.uint(0)
	w.real(iv.Lo)
	w.real(iv.Hi)
	w.word("}")
}

// WriteBox emits b as a BOX entity, nesting its three axis intervals.
func (w *Writer) WriteBox(b scalar.Box) {
	w.header()
	w.word(tagBox)
	w.word("{")
	w.uint(0)
	w.WriteInterval(b.X)
	w.WriteInterval(b.Y)
	w.WriteInterval(b.Z)
	w.word("}")
}

// WriteLine emits ln as a LINE entity.
func (w *Writer) WriteLine(ln scalar.Line) {
	w.header()
	w.word(tagLine)
	w.word("{")
	w.uint(0)
	w.WritePoint(ln.Dir)
	w.WritePoint(ln.Origin)
	w.word("}")
}

// WritePlane emits pl as a PLANE entity.
func (w *Writer) WritePlane(pl scalar.Plane) {
	w.header()
	w.word(tagPlane)
	w.word("{")
	w.uint(0)
	w.WritePoint(pl.Normal)
	w.real(pl.D)
	w.word("}")
}

// WritePrimitive emits p as a PRIM entity. A primitive already written in
// this stream is referenced by address alone; the zero Primitive (an
// absent child slot) is written as address 0, which — since prim's ID()
// counter starts at 1 — can never collide with a real node's address.
func (w *Writer) WritePrimitive(p prim.Primitive) {
	w.header()
	w.word(tagPrim)
	w.word("{")
	if p.Zero() {
		w.uint(0)
		w.word("}")
		return
	}
	id := p.ID()
	w.uint(id)
	if w.primWrit[id] {
		w.word("}")
		return
	}
	w.primWrit[id] = true
	w.int(int(p.Kind()))

	switch p.Arity() {
	case 0:
		switch p.Kind() {
		case prim.KindPlane:
			w.word("PLANE")
			pl := p.PlaneValue()
			w.real(pl.Normal.X)
			w.real(pl.Normal.Y)
			w.real(pl.Normal.Z)
			w.real(pl.D)
		case prim.KindBlock:
			w.word("BLOCK")
			b := p.BlockValue()
			w.real(b.X.Lo)
			w.real(b.X.Hi)
			w.real(b.Y.Lo)
			w.real(b.Y.Hi)
			w.real(b.Z.Lo)
			w.real(b.Z.Hi)
		case prim.KindUser:
			w.word("USER")
			w.int(p.UserTag())
		default:
			w.word("REAL")
			w.real(p.RealValue())
		}
	case 1:
		w.word("UNARY")
		w.word(p.Op().String())
		w.WritePrimitive(p.Child(0))
	case 2:
		w.word("BINARY")
		w.word(p.Op().String())
		w.WritePrimitive(p.Child(0))
		w.WritePrimitive(p.Child(1))
	}
	w.word("}")
}

func setKindChar(k set.Kind) string {
	switch k {
	case set.KindNothing:
		return "0"
	case set.KindEverything:
		return "1"
	case set.KindPrim:
		return "P"
	case set.KindUnion:
		return "|"
	default:
		return "&"
	}
}

// WriteSet emits s as a SET entity, including its attribute chain.
func (w *Writer) WriteSet(s set.Set) {
	w.header()
	w.word(tagSet)
	w.word("{")
	if s.Zero() {
		w.uint(0)
		w.word("}")
		return
	}
	id := s.ID()
	w.uint(id)
	if w.setWrit[id] {
		w.word("}")
		return
	}
	w.setWrit[id] = true
	w.word(setKindChar(s.Kind()))

	switch s.Kind() {
	case set.KindPrim:
		w.WritePrimitive(s.Primitive())
	case set.KindUnion, set.KindIntersection:
		w.WriteSet(s.Child(0))
		w.WriteSet(s.Child(1))
	}

	attrs := attributeChain(s.Attributes())
	w.int(len(attrs))
	for _, a := range attrs {
		w.writeAttribute(a)
	}
	w.word("}")
}

func attributeChain(head *set.Attribute) []*set.Attribute {
	var out []*set.Attribute
	for a := head; a != nil; a = a.Next {
		out = append(out, a)
	}
	return out
}

func (w *Writer) writeAttribute(a *set.Attribute) {
	w.word(tagAttribute)
	w.word("{")
	w.uint(0)
	w.int(a.Tag)
	codec, ok := set.CodecFor(a.Tag)
	if !ok {
		report.Warn(site, "writeAttribute: %v for tag %d, writing empty payload", ErrNoCodec, a.Tag)
		w.word(strconv.Quote(""))
	} else {
		w.word(strconv.Quote(codec.Write(a.Payload)))
	}
	w.word("}")
}

// WriteSetList emits list as a SET_LIST entity.
func (w *Writer) WriteSetList(list []set.Set) {
	w.header()
	w.word(tagSetList)
	w.word("{")
	w.uint(0)
	w.int(len(list))
	for _, s := range list {
		w.WriteSet(s)
	}
	w.word("}")
}

// WriteModel emits m as a MODEL entity, recursing through the box tree. A
// Model tree is never shared across models (unlike prim/set's DAGs), so it
// is always written in full; address 0 is used uniformly rather than
// introducing addressing machinery a tree never needs.
func (w *Writer) WriteModel(m *model.Model) {
	w.header()
	w.word(tagModel)
	w.word("{")
	w.uint(0)
	if m == nil {
		w.word(model.KindLeaf.String())
		w.WriteBox(scalar.Box{})
		w.WriteSetList(nil)
		w.word("}")
		return
	}
	w.word(m.Kind().String())
	w.WriteBox(m.Box())
	switch m.Kind() {
	case model.KindLeaf:
		w.WriteSetList(m.SetList())
	default:
		w.real(m.Cut())
		w.WriteModel(m.Low())
		w.WriteModel(m.High())
	}
	w.word("}")
}

// WritePolygon emits p as a POLYGON entity.
func (w *Writer) WritePolygon(p facet.Polygon) {
	w.header()
	w.word(tagPolygon)
	w.word("{")
	w.uint(0)
	w.word(p.Kind.String())
	w.int(len(p.Points))
	for _, pt := range p.Points {
		w.WritePoint(pt)
	}
	w.word("}")
}
