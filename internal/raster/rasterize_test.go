package raster

import (
	"testing"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/require"
)

func mustWKT(t *testing.T, wkt string) geom.Geometry {
	t.Helper()
	g, err := geom.UnmarshalWKT(wkt)
	require.NoError(t, err)
	return g
}

func TestFromGeometry_Rectangle(t *testing.T) {
	g := mustWKT(t, "POLYGON((10 10,30 10,30 20,10 20,10 10))")

	m, err := FromGeometry(g, 50, 40)
	require.NoError(t, err)

	// Pixels whose centers fall inside [10,30)x[10,20).
	require.Equal(t, 20*10, m.CountNonZero())
	require.Equal(t, uint8(1), m.At(10, 10))
	require.Equal(t, uint8(1), m.At(29, 19))
	require.Equal(t, uint8(0), m.At(30, 10))
	require.Equal(t, uint8(0), m.At(9, 10))
	require.Equal(t, uint8(0), m.At(10, 20))
}

func TestFromGeometry_Hole(t *testing.T) {
	g := mustWKT(t, "POLYGON((0 0,40 0,40 40,0 40,0 0),(10 10,30 10,30 30,10 30,10 10))")

	m, err := FromGeometry(g, 40, 40)
	require.NoError(t, err)

	require.Equal(t, 40*40-20*20, m.CountNonZero())
	require.Equal(t, uint8(1), m.At(5, 5))
	require.Equal(t, uint8(0), m.At(15, 15))
}

func TestFromGeometry_MultiPolygon(t *testing.T) {
	g := mustWKT(t, "MULTIPOLYGON(((0 0,10 0,10 10,0 10,0 0)),((20 20,30 20,30 30,20 30,20 20)))")

	m, err := FromGeometry(g, 40, 40)
	require.NoError(t, err)
	require.Equal(t, 200, m.CountNonZero())
	require.Equal(t, uint8(1), m.At(5, 5))
	require.Equal(t, uint8(1), m.At(25, 25))
	require.Equal(t, uint8(0), m.At(15, 15))
}

func TestFromGeometry_Empty(t *testing.T) {
	g := mustWKT(t, "MULTIPOLYGON EMPTY")

	m, err := FromGeometry(g, 10, 10)
	require.NoError(t, err)
	require.Equal(t, 0, m.CountNonZero())
}

func TestFromGeometry_NonPolygonal(t *testing.T) {
	g := mustWKT(t, "POINT(1 2)")

	_, err := FromGeometry(g, 10, 10)
	require.Error(t, err)
}

func TestFromGeometry_ClipsToBounds(t *testing.T) {
	// Polygon partly outside the mask must not panic and fills only the
	// overlapping pixels.
	g := mustWKT(t, "POLYGON((-10 -10,5 -10,5 5,-10 5,-10 -10))")

	m, err := FromGeometry(g, 10, 10)
	require.NoError(t, err)
	require.Equal(t, 25, m.CountNonZero())
	require.Equal(t, uint8(1), m.At(0, 0))
	require.Equal(t, uint8(1), m.At(4, 4))
	require.Equal(t, uint8(0), m.At(5, 5))
}
