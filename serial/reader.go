package serial

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/svlis-go/svlis/facet"
	"github.com/svlis-go/svlis/model"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/set"
)

// Reader parses the tagged-stream format back into kernel values. Like
// Writer, its address tables are instance-scoped: a fresh Reader starts
// with empty prims/sets maps, so addresses from one stream never leak into
// another Reader's lookups.
type Reader struct {
	sc      *bufio.Scanner
	version int
	prims   map[uint64]prim.Primitive
	sets    map[uint64]set.Set
}

// NewReader wraps r, reading and validating the version header.
func NewReader(r io.Reader) (*Reader, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	rd := &Reader{sc: sc, prims: make(map[uint64]prim.Primitive), sets: make(map[uint64]set.Set)}
	if err := rd.readHeader(); err != nil {
		return nil, err
	}
	return rd, nil
}

// Version returns the stream's declared format version.
func (r *Reader) Version() int { return r.version }

func (r *Reader) readHeader() error {
	m, err := r.next()
	if err != nil {
		return err
	}
	if m != magic {
		return fmt.Errorf("%w: bad magic %q", ErrBadToken, m)
	}
	vtok, err := r.next()
	if err != nil {
		return err
	}
	v, err := strconv.Atoi(vtok)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	if v != VersionCurrent && v != VersionPrevious {
		return fmt.Errorf("%w: %d", ErrUnknownVersion, v)
	}
	r.version = v
	return nil
}

func (r *Reader) next() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", ErrUnexpectedEOF
	}
	return r.sc.Text(), nil
}

func (r *Reader) expect(tok string) error {
	t, err := r.next()
	if err != nil {
		return err
	}
	if t != tok {
		return fmt.Errorf("%w: expected %q, got %q", ErrBadToken, tok, t)
	}
	return nil
}

func (r *Reader) real() (scalar.Real, error) {
	t, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	return v, nil
}

func (r *Reader) integer() (int, error) {
	t, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	return v, nil
}

func (r *Reader) uinteger() (uint64, error) {
	t, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(t, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	return v, nil
}

// ReadPoint parses a POINT entity.
func (r *Reader) ReadPoint() (scalar.Point, error) {
	if err := r.expect(tagPoint); err != nil {
		return scalar.Point{}, err
	}
	if err := r.expect("{"); err != nil {
		return scalar.Point{}, err
	}
	if _, err := r.uinteger(); err != nil {
		return scalar.Point{}, err
	}
	x, err := r.real()
	if err != nil {
		return scalar.Point{}, err
	}
	y, err := r.real()
	if err != nil {
		return scalar.Point{}, err
	}
	z, err := r.real()
	if err != nil {
		return scalar.Point{}, err
	}
	if err := r.expect("}"); err != nil {
		return scalar.Point{}, err
	}
	return scalar.Point{X: x, Y: y, Z: z}, nil
}

// ReadInterval parses an INTERVAL entity.
func (r *Reader) ReadInterval() (scalar.Interval, error) {
	if err := r.expect(tagInterval); err != nil {
		return scalar.Interval{}, err
	}
	if err := r.expect("{"); err != nil {
		return scalar.Interval{}, err
	}
	if _, err := r.uinteger(); err != nil {
		return scalar.Interval{}, err
	}
	lo, err := r.real()
	if err != nil {
		return scalar.Interval{}, err
	}
	hi, err := r.real()
	if err != nil {
		return scalar.Interval{}, err
	}
	if err := r.expect("}"); err != nil {
		return scalar.Interval{}, err
	}
	return scalar.Interval{Lo: lo, Hi: hi}, nil
}

// ReadBox parses a BOX entity.
func (r *Reader) ReadBox() (scalar.Box, error) {
	if err := r.expect(tagBox); err != nil {
		return scalar.Box{}, err
	}
	if err := r.expect("{"); err != nil {
		return scalar.Box{}, err
	}
	if _, err := r.uinteger(); err != nil {
		return scalar.Box{}, err
	}
	x, err := r.ReadInterval()
	if err != nil {
		return scalar.Box{}, err
	}
	y, err := r.ReadInterval()
	if err != nil {
		return scalar.Box{}, err
	}
	z, err := r.ReadInterval()
	if err != nil {
		return scalar.Box{}, err
	}
	if err := r.expect("}"); err != nil {
		return scalar.Box{}, err
	}
	return scalar.Box{X: x, Y: y, Z: z}, nil
}

// ReadLine parses a LINE entity.
func (r *Reader) ReadLine() (scalar.Line, error) {
	if err := r.expect(tagLine); err != nil {
		return scalar.Line{}, err
	}
	if err := r.expect("{"); err != nil {
		return scalar.Line{}, err
	}
	if _, err := r.uinteger(); err != nil {
		return scalar.Line{}, err
	}
	dir, err := r.ReadPoint()
	if err != nil {
		return scalar.Line{}, err
	}
	origin, err := r.ReadPoint()
	if err != nil {
		return scalar.Line{}, err
	}
	if err := r.expect("}"); err != nil {
		return scalar.Line{}, err
	}
	return scalar.Line{Dir: dir, Origin: origin}, nil
}

// ReadPlane parses a PLANE entity.
func (r *Reader) ReadPlane() (scalar.Plane, error) {
	if err := r.expect(tagPlane); err != nil {
		return scalar.Plane{}, err
	}
	if err := r.expect("{"); err != nil {
		return scalar.Plane{}, err
	}
	if _, err := r.uinteger(); err != nil {
		return scalar.Plane{}, err
	}
	n, err := r.ReadPoint()
	if err != nil {
		return scalar.Plane{}, err
	}
	d, err := r.real()
	if err != nil {
		return scalar.Plane{}, err
	}
	if err := r.expect("}"); err != nil {
		return scalar.Plane{}, err
	}
	return scalar.Plane{Normal: n, D: d}, nil
}

// ReadPrimitive parses a PRIM entity, resolving back-references through
// the instance-scoped address table.
func (r *Reader) ReadPrimitive() (prim.Primitive, error) {
	if err := r.expect(tagPrim); err != nil {
		return prim.Primitive{}, err
	}
	if err := r.expect("{"); err != nil {
		return prim.Primitive{}, err
	}
	addr, err := r.uinteger()
	if err != nil {
		return prim.Primitive{}, err
	}
	if addr == 0 {
		return prim.Primitive{}, r.expect("}")
	}
	if p, ok := r.prims[addr]; ok {
		return p, r.expect("}")
	}

	kindTag, err := r.integer()
	if err != nil {
		return prim.Primitive{}, err
	}
	kind := prim.Kind(kindTag)

	sub, err := r.next()
	if err != nil {
		return prim.Primitive{}, err
	}

	var p prim.Primitive
	switch sub {
	case "REAL":
		v, err := r.real()
		if err != nil {
			return prim.Primitive{}, err
		}
		p = prim.NewReal(v)
	case "PLANE":
		nx, err := r.real()
		if err != nil {
			return prim.Primitive{}, err
		}
		ny, err := r.real()
		if err != nil {
			return prim.Primitive{}, err
		}
		nz, err := r.real()
		if err != nil {
			return prim.Primitive{}, err
		}
		d, err := r.real()
		if err != nil {
			return prim.Primitive{}, err
		}
		p = prim.NewPlaneLeaf(scalar.Plane{Normal: scalar.Point{X: nx, Y: ny, Z: nz}, D: d})
	case "BLOCK":
		vals := make([]scalar.Real, 6)
		for i := range vals {
			vals[i], err = r.real()
			if err != nil {
				return prim.Primitive{}, err
			}
		}
		p = prim.NewBlock(scalar.Box{
			X: scalar.Interval{Lo: vals[0], Hi: vals[1]},
			Y: scalar.Interval{Lo: vals[2], Hi: vals[3]},
			Z: scalar.Interval{Lo: vals[4], Hi: vals[5]},
		})
	case "USER":
		tag, err := r.integer()
		if err != nil {
			return prim.Primitive{}, err
		}
		p = prim.NewUser(tag)
	case "UNARY":
		opTok, err := r.next()
		if err != nil {
			return prim.Primitive{}, err
		}
		op, ok := prim.OpFromByte(opTok[0])
		if !ok {
			return prim.Primitive{}, fmt.Errorf("%w: operator %q", ErrBadToken, opTok)
		}
		child, err := r.ReadPrimitive()
		if err != nil {
			return prim.Primitive{}, err
		}
		p = prim.NewUnary(op, child)
	case "BINARY":
		opTok, err := r.next()
		if err != nil {
			return prim.Primitive{}, err
		}
		op, ok := prim.OpFromByte(opTok[0])
		if !ok {
			return prim.Primitive{}, fmt.Errorf("%w: operator %q", ErrBadToken, opTok)
		}
		c0, err := r.ReadPrimitive()
		if err != nil {
			return prim.Primitive{}, err
		}
		c1, err := r.ReadPrimitive()
		if err != nil {
			return prim.Primitive{}, err
		}
		p = prim.NewBinary(op, c0, c1)
	default:
		return prim.Primitive{}, fmt.Errorf("%w: primitive discriminator %q", ErrBadToken, sub)
	}

	if p.Kind() != kind {
		p = prim.SetKind(p, kind)
	}
	r.prims[addr] = p
	return p, r.expect("}")
}

func setKindFromChar(c string) (set.Kind, bool) {
	switch c {
	case "0":
		return set.KindNothing, true
	case "1":
		return set.KindEverything, true
	case "P":
		return set.KindPrim, true
	case "|":
		return set.KindUnion, true
	case "&":
		return set.KindIntersection, true
	default:
		return 0, false
	}
}

// ReadSet parses a SET entity, including its attribute chain.
func (r *Reader) ReadSet() (set.Set, error) {
	if err := r.expect(tagSet); err != nil {
		return set.Set{}, err
	}
	if err := r.expect("{"); err != nil {
		return set.Set{}, err
	}
	addr, err := r.uinteger()
	if err != nil {
		return set.Set{}, err
	}
	if addr == 0 {
		return set.Set{}, r.expect("}")
	}
	if s, ok := r.sets[addr]; ok {
		return s, r.expect("}")
	}

	kindTok, err := r.next()
	if err != nil {
		return set.Set{}, err
	}
	kind, ok := setKindFromChar(kindTok)
	if !ok {
		return set.Set{}, fmt.Errorf("%w: set kind %q", ErrBadToken, kindTok)
	}

	var s set.Set
	switch kind {
	case set.KindNothing:
		s = set.Nothing()
	case set.KindEverything:
		s = set.Everything()
	case set.KindPrim:
		p, err := r.ReadPrimitive()
		if err != nil {
			return set.Set{}, err
		}
		s = set.FromPrimitive(p)
	case set.KindUnion:
		a, err := r.ReadSet()
		if err != nil {
			return set.Set{}, err
		}
		b, err := r.ReadSet()
		if err != nil {
			return set.Set{}, err
		}
		s = set.Union(a, b)
	case set.KindIntersection:
		a, err := r.ReadSet()
		if err != nil {
			return set.Set{}, err
		}
		b, err := r.ReadSet()
		if err != nil {
			return set.Set{}, err
		}
		s = set.Intersection(a, b)
	}

	n, err := r.integer()
	if err != nil {
		return set.Set{}, err
	}
	for i := 0; i < n; i++ {
		tag, payload, err := r.readAttribute()
		if err != nil {
			return set.Set{}, err
		}
		s = s.WithAttribute(tag, payload)
	}

	r.sets[addr] = s
	return s, r.expect("}")
}

func (r *Reader) readAttribute() (int, any, error) {
	if err := r.expect(tagAttribute); err != nil {
		return 0, nil, err
	}
	if err := r.expect("{"); err != nil {
		return 0, nil, err
	}
	if _, err := r.uinteger(); err != nil {
		return 0, nil, err
	}
	tag, err := r.integer()
	if err != nil {
		return 0, nil, err
	}
	raw, err := r.next()
	if err != nil {
		return 0, nil, err
	}
	data, err := strconv.Unquote(raw)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	var payload any
	if codec, ok := set.CodecFor(tag); ok {
		payload, err = codec.Read(data)
		if err != nil {
			return 0, nil, err
		}
	} else {
		payload = data
	}
	return tag, payload, r.expect("}")
}

// ReadSetList parses a SET_LIST entity.
func (r *Reader) ReadSetList() ([]set.Set, error) {
	if err := r.expect(tagSetList); err != nil {
		return nil, err
	}
	if err := r.expect("{"); err != nil {
		return nil, err
	}
	if _, err := r.uinteger(); err != nil {
		return nil, err
	}
	n, err := r.integer()
	if err != nil {
		return nil, err
	}
	list := make([]set.Set, n)
	for i := range list {
		list[i], err = r.ReadSet()
		if err != nil {
			return nil, err
		}
	}
	return list, r.expect("}")
}

func modelKindFromChar(c string) (model.Kind, bool) {
	switch c {
	case "L":
		return model.KindLeaf, true
	case "X":
		return model.KindXDiv, true
	case "Y":
		return model.KindYDiv, true
	case "Z":
		return model.KindZDiv, true
	default:
		return 0, false
	}
}

func kindAxis(k model.Kind) scalar.SplitAxis {
	switch k {
	case model.KindXDiv:
		return scalar.AxisX
	case model.KindYDiv:
		return scalar.AxisY
	default:
		return scalar.AxisZ
	}
}

// ReadModel parses a MODEL entity, recursing through the box tree.
func (r *Reader) ReadModel() (*model.Model, error) {
	if err := r.expect(tagModel); err != nil {
		return nil, err
	}
	if err := r.expect("{"); err != nil {
		return nil, err
	}
	if _, err := r.uinteger(); err != nil {
		return nil, err
	}
	kindTok, err := r.next()
	if err != nil {
		return nil, err
	}
	kind, ok := modelKindFromChar(kindTok)
	if !ok {
		return nil, fmt.Errorf("%w: model kind %q", ErrBadToken, kindTok)
	}
	box, err := r.ReadBox()
	if err != nil {
		return nil, err
	}

	var m *model.Model
	if kind == model.KindLeaf {
		setList, err := r.ReadSetList()
		if err != nil {
			return nil, err
		}
		m = model.NewLeaf(box, setList)
	} else {
		cut, err := r.real()
		if err != nil {
			return nil, err
		}
		low, err := r.ReadModel()
		if err != nil {
			return nil, err
		}
		high, err := r.ReadModel()
		if err != nil {
			return nil, err
		}
		m = model.NewInterior(box, kindAxis(kind), cut, low, high)
	}
	return m, r.expect("}")
}

func polygonKindFromChar(c string) (facet.PolygonKind, bool) {
	switch c {
	case "P":
		return facet.KindPointSet, true
	case "L":
		return facet.KindPolyline, true
	case "O":
		return facet.KindClosed, true
	default:
		return 0, false
	}
}

// ReadPolygon parses a POLYGON entity.
func (r *Reader) ReadPolygon() (facet.Polygon, error) {
	if err := r.expect(tagPolygon); err != nil {
		return facet.Polygon{}, err
	}
	if err := r.expect("{"); err != nil {
		return facet.Polygon{}, err
	}
	if _, err := r.uinteger(); err != nil {
		return facet.Polygon{}, err
	}
	kindTok, err := r.next()
	if err != nil {
		return facet.Polygon{}, err
	}
	kind, ok := polygonKindFromChar(kindTok)
	if !ok {
		return facet.Polygon{}, fmt.Errorf("%w: polygon kind %q", ErrBadToken, kindTok)
	}
	n, err := r.integer()
	if err != nil {
		return facet.Polygon{}, err
	}
	pts := make([]scalar.Point, n)
	for i := range pts {
		pts[i], err = r.ReadPoint()
		if err != nil {
			return facet.Polygon{}, err
		}
	}
	if err := r.expect("}"); err != nil {
		return facet.Polygon{}, err
	}
	return facet.Polygon{Kind: kind, Points: pts}, nil
}
