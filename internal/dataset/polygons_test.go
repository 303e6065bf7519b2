package dataset

import (
	"errors"
	"testing"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/require"
)

func TestLoadTrainingPolygons(t *testing.T) {
	path := writeFile(t, "train_wkt_v4.csv",
		"ImageId,ClassType,MultipolygonWKT\n"+
			"6120_2_2,1,\"MULTIPOLYGON(((0 0,1 0,1 1,0 1,0 0)))\"\n"+
			"6120_2_2,5,\"MULTIPOLYGON EMPTY\"\n")

	g, err := LoadTrainingPolygons(path, "6120_2_2", "1")
	require.NoError(t, err)
	require.Equal(t, geom.TypeMultiPolygon, g.Type())
	require.InDelta(t, 1.0, g.Area(), 1e-9)
}

func TestLoadTrainingPolygons_EmptyClass(t *testing.T) {
	path := writeFile(t, "train_wkt_v4.csv",
		"6120_2_2,5,\"MULTIPOLYGON EMPTY\"\n")

	g, err := LoadTrainingPolygons(path, "6120_2_2", "5")
	require.NoError(t, err)
	require.True(t, g.IsEmpty())
}

func TestLoadTrainingPolygons_NotFound(t *testing.T) {
	path := writeFile(t, "train_wkt_v4.csv",
		"6120_2_2,1,\"MULTIPOLYGON EMPTY\"\n")

	_, err := LoadTrainingPolygons(path, "6120_2_2", "2")
	require.True(t, errors.Is(err, ErrNotFound))

	_, err = LoadTrainingPolygons(path, "6010_0_0", "1")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadTrainingPolygons_BadWKT(t *testing.T) {
	path := writeFile(t, "train_wkt_v4.csv",
		"6120_2_2,1,\"MULTIPOLYGON(((garbage)))\"\n")

	_, err := LoadTrainingPolygons(path, "6120_2_2", "1")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))
}
