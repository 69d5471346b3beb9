package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/svlis-go/svlis/model"
	"github.com/svlis-go/svlis/prim"
	"github.com/svlis-go/svlis/scalar"
	"github.com/svlis-go/svlis/serial"
	"github.com/svlis-go/svlis/set"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	sphere := set.FromPrimitive(prim.Sphere(scalar.Origin, 2))
	box := scalar.BoxFromCorners(scalar.Point{X: -3, Y: -3, Z: -3}, scalar.Point{X: 3, Y: 3, Z: 3})
	leaf := model.NewLeaf(box, []set.Set{sphere})

	var buf bytes.Buffer
	w := serial.NewWriter(&buf)
	w.WriteModel(leaf)
	require.NoError(t, w.Flush())

	path := filepath.Join(t.TempDir(), "fixture.svlis")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestRun_ReportsStatsForLeafModel(t *testing.T) {
	path := writeFixture(t)
	require.NoError(t, run([]string{"-in", path}))
}

func TestRun_DivideAndWriteRoundTrips(t *testing.T) {
	path := writeFixture(t)
	outPath := filepath.Join(t.TempDir(), "divided.svlis")

	require.NoError(t, run([]string{"-in", path, "-divide", "-depth-limit", "4", "-out", outPath}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	r, err := serial.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	m, err := r.ReadModel()
	require.NoError(t, err)

	stats := model.WalkStats(m)
	require.Greater(t, stats.Nodes, 0)
}
