package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dynop/routing-service/pkg/sea/chokepoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a tiny island far from any grid point used in these tests, so it
// never discards a waypoint; it exists only so Load succeeds.
const remoteIslandGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {},
     "geometry": {"type": "Polygon",
       "coordinates": [[[170.1,-79.9],[170.2,-79.9],[170.2,-79.8],[170.1,-79.8],[170.1,-79.9]]]}}
  ]
}`

func writeRemoteIslandMask(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "remote-island.geojson")
	require.NoError(t, os.WriteFile(path, []byte(remoteIslandGeoJSON), 0o644))
	return path
}

func TestBuildSmallWorldIsConnected(t *testing.T) {
	cfg := Config{
		LandMaskPath:       writeRemoteIslandMask(t),
		GridStepDegrees:    40.0,
		StrictConnectivity: true,
		Catalog: []chokepoint.Chokepoint{
			{ID: "SUEZ", Lat: 30.0, Lon: 30.0, RadiusDegrees: 2.0, StepDegrees: 1.0},
		},
	}

	result, err := Build(cfg)
	require.NoError(t, err)

	assert.Greater(t, result.Graph.NodeCount(), 0)
	assert.Greater(t, result.Graph.EdgeCount(), 0)
	assert.Equal(t, 1, result.Summary.ConnectedComponentCount)
	assert.Equal(t, result.Graph.NodeCount(), result.Summary.LargestComponentSize)

	suez, ok := result.Chokepoints.Get("SUEZ")
	require.True(t, ok)
	assert.NotEmpty(t, suez.NodeIDs)
}

func TestBuildRejectsNonPositiveStep(t *testing.T) {
	cfg := Config{
		LandMaskPath:    writeRemoteIslandMask(t),
		GridStepDegrees: 0,
	}
	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestBuildFailsOnMissingLandMask(t *testing.T) {
	cfg := Config{
		LandMaskPath:    filepath.Join(t.TempDir(), "missing.geojson"),
		GridStepDegrees: 10,
	}
	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestComputeVersionHashIsStablePrefix(t *testing.T) {
	h := computeVersionHash(100, 200, "2024-01-01T00:00:00Z")
	assert.Regexp(t, `^sha256:[0-9a-f]{16}$`, h)
}

func TestSaveAndLoadSummaryRoundTrips(t *testing.T) {
	dir := t.TempDir()
	summary := BuildSummary{
		SeaGraphVersion:       "sha256:aaaaaaaaaaaaaaaa",
		NodeCount:             10,
		EdgeCount:             20,
		MaxSnapDistanceKm:     150.0,
		MaxGraphSnapDistanceM: 200_000.0,
	}
	require.NoError(t, SaveSummary(dir, summary))

	loaded, err := LoadSummary(dir)
	require.NoError(t, err)
	assert.Equal(t, summary, loaded)
}

func TestLoadSummaryMissingFile(t *testing.T) {
	_, err := LoadSummary(t.TempDir())
	assert.Error(t, err)
}
