package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadGridSize(t *testing.T) {
	path := writeFile(t, "grid_sizes.csv",
		"ImageId,Xmax,Ymin\n"+
			"6010_0_0,0.009188,-0.009039\n"+
			"6120_2_2,0.009175,-0.009046\n")

	g, err := LoadGridSize(path, "6120_2_2")
	require.NoError(t, err)
	require.Equal(t, "6120_2_2", g.ImageID)
	require.InDelta(t, 0.009175, g.XMax, 1e-12)
	require.InDelta(t, -0.009046, g.YMin, 1e-12)
}

func TestLoadGridSize_NotFound(t *testing.T) {
	path := writeFile(t, "grid_sizes.csv", "ImageId,Xmax,Ymin\n6010_0_0,1,-1\n")

	_, err := LoadGridSize(path, "9999_9_9")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadGridSize_BadFloat(t *testing.T) {
	path := writeFile(t, "grid_sizes.csv", "6010_0_0,not-a-number,-1\n")

	_, err := LoadGridSize(path, "6010_0_0")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))
}

func TestLoadGridSize_MissingFile(t *testing.T) {
	_, err := LoadGridSize(filepath.Join(t.TempDir(), "nope.csv"), "6010_0_0")
	require.Error(t, err)
}
