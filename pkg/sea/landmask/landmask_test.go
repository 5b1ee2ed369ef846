package landmask

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a 10x10 degree square of "land" centered on (0,0): lon in [-5,5], lat in [-5,5].
const squareLandGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[-5,-5],[5,-5],[5,5],[-5,5],[-5,-5]]]
      }
    }
  ]
}`

func writeMask(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "land.geojson")
	require.NoError(t, os.WriteFile(path, []byte(squareLandGeoJSON), 0o644))
	return path
}

func TestLoadAndContains(t *testing.T) {
	m, err := Load(writeMask(t))
	require.NoError(t, err)

	assert.True(t, m.Contains(0, 0))
	assert.False(t, m.Contains(45, 90))
}

func TestIntersectsSegmentCrossingLand(t *testing.T) {
	m, err := Load(writeMask(t))
	require.NoError(t, err)

	assert.True(t, m.IntersectsSegment(-10, 0, 10, 0)) // passes straight through the square
	assert.False(t, m.IntersectsSegment(20, 20, 30, 30))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.geojson"))
	require.Error(t, err)
}

func TestLoadEmptyFeatureCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"FeatureCollection","features":[]}`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
