package serial_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/facet"
	"github.com/svlis-go/svlis/model"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/serial"
	"github.com/svlis-go/svlis/set"
)

type stringCodec struct{}

func (stringCodec) Write(payload any) string { return payload.(string) }
func (stringCodec) Read(data string) (any, error) { return data, nil }

const testAttrTag = 7001

func init() {
	set.RegisterAttributeCodec(testAttrTag, stringCodec{})
}

func TestWriter_ReadsBackPrimitiveSphere(t *testing.T) {
	sphere := prim.Sphere(scalar.Point{X: 1, Y: 2, Z: 3}, 5)

	var buf bytes.Buffer
	w := serial.NewWriter(&buf)
	w.WritePrimitive(sphere)
	require.NoError(t, w.Flush())

	r, err := serial.NewReader(&buf)
	require.NoError(t, err)
	got, err := r.ReadPrimitive()
	require.NoError(t, err)

	require.Equal(t, prim.KindSphere, got.Kind())
	require.Equal(t, sphere.Op(), got.Op())
}

func TestWriter_SharedPrimitiveWrittenOnce(t *testing.T) {
	plane := prim.NewPlaneLeaf(scalar.Plane{Normal: scalar.Point{X: 1}, D: 0})
	sq := prim.Mul(plane, plane)
	shared := prim.Add(sq, sq)

	var buf bytes.Buffer
	w := serial.NewWriter(&buf)
	w.WritePrimitive(shared)
	require.NoError(t, w.Flush())

	text := buf.String()
	require.Equal(t, 1, strings.Count(text, "PLANE"), "the shared plane leaf must be written once and referenced by address thereafter")
}

func TestWriter_Reader_SetWithAttributeRoundTrip(t *testing.T) {
	s := set.FromPrimitive(prim.Sphere(scalar.Point{}, 1)).WithAttribute(testAttrTag, "colour=red")

	var buf bytes.Buffer
	w := serial.NewWriter(&buf)
	w.WriteSet(s)
	require.NoError(t, w.Flush())

	r, err := serial.NewReader(&buf)
	require.NoError(t, err)
	got, err := r.ReadSet()
	require.NoError(t, err)

	require.Equal(t, set.KindPrim, got.Kind())
	payload, ok := got.Attribute(testAttrTag)
	require.True(t, ok)
	require.Equal(t, "colour=red", payload)
}

func TestWriter_Reader_ModelRoundTrip(t *testing.T) {
	box := scalar.NewBox(scalar.NewInterval(-2, 2), scalar.NewInterval(-2, 2), scalar.NewInterval(-2, 2))
	sphere := set.FromPrimitive(prim.Sphere(scalar.Point{}, 1))
	leaf := model.NewLeaf(box, []set.Set{sphere})
	tree := model.Divide(leaf, model.NewLimits(model.WithDepthLimit(4)), model.DefaultDecision)

	var buf bytes.Buffer
	w := serial.NewWriter(&buf)
	w.WriteModel(tree)
	require.NoError(t, w.Flush())

	r, err := serial.NewReader(&buf)
	require.NoError(t, err)
	got, err := r.ReadModel()
	require.NoError(t, err)

	wantStats := model.WalkStats(tree)
	gotStats := model.WalkStats(got)
	require.Equal(t, wantStats.Nodes, gotStats.Nodes)
	require.Equal(t, wantStats.Leaves, gotStats.Leaves)
	require.Equal(t, wantStats.MaxDepth, gotStats.MaxDepth)
}

func TestWriter_Reader_PolygonRoundTrip(t *testing.T) {
	p := facet.Polygon{
		Kind: facet.KindClosed,
		Points: []scalar.Point{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
	}

	var buf bytes.Buffer
	w := serial.NewWriter(&buf)
	w.WritePolygon(p)
	require.NoError(t, w.Flush())

	r, err := serial.NewReader(&buf)
	require.NoError(t, err)
	got, err := r.ReadPolygon()
	require.NoError(t, err)

	require.Equal(t, p.Kind, got.Kind)
	require.Equal(t, p.Points, got.Points)
}

func TestReader_RejectsUnknownVersion(t *testing.T) {
	_, err := serial.NewReader(strings.NewReader("SVLIS\n99\n"))
	require.ErrorIs(t, err, serial.ErrUnknownVersion)
}
