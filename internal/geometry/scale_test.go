package geometry

import (
	"testing"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/require"
)

func TestForImage(t *testing.T) {
	s, err := ForImage(100, 50, 2.0, -1.0)
	require.NoError(t, err)

	// w*(w/(w+1))/xMax and h*(h/(h+1))/yMin.
	require.InDelta(t, 100*(100.0/101.0)/2.0, s.X, 1e-9)
	require.InDelta(t, 50*(50.0/51.0)/-1.0, s.Y, 1e-9)
}

func TestForImage_Invalid(t *testing.T) {
	_, err := ForImage(0, 50, 1, -1)
	require.Error(t, err)
	_, err = ForImage(100, 50, 0, -1)
	require.Error(t, err)
	_, err = ForImage(100, 50, 1, 0)
	require.Error(t, err)
}

func TestScalers_Invert(t *testing.T) {
	s := Scalers{X: 4, Y: -2}
	inv := s.Invert()
	require.InDelta(t, 0.25, inv.X, 1e-12)
	require.InDelta(t, -0.5, inv.Y, 1e-12)
}

func TestScale(t *testing.T) {
	g, err := geom.UnmarshalWKT("POLYGON((0 0,1 0,1 1,0 1,0 0))")
	require.NoError(t, err)

	scaled := Scale(g, Scalers{X: 2, Y: -3})
	require.InDelta(t, 6.0, scaled.Area(), 1e-9)

	// Scaling back recovers the unit square.
	back := Scale(scaled, Scalers{X: 2, Y: -3}.Invert())
	require.InDelta(t, 1.0, back.Area(), 1e-9)
}
