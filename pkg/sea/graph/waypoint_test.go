package graph

import (
	"testing"

	"github.com/dynop/routing-service/pkg/sea/chokepoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePrimaryGridBoundaries(t *testing.T) {
	waypoints := GeneratePrimaryGrid(10.0, nil)

	foundPoleLat := false
	for _, wp := range waypoints {
		assert.LessOrEqual(t, wp.Lon, 170.0+1e-9) // lon=180 excluded
		if wp.Lat == 80.0 {
			foundPoleLat = true
		}
	}
	assert.True(t, foundPoleLat, "lat=80 must be included")
}

func TestGeneratePrimaryGridTagsNearChokepoint(t *testing.T) {
	catalog := []chokepoint.Chokepoint{
		{ID: "SUEZ", Lat: 30.0, Lon: 30.0},
	}
	waypoints := GeneratePrimaryGrid(5.0, catalog)

	tagged := 0
	for _, wp := range waypoints {
		if wp.ChokepointID == "SUEZ" {
			tagged++
		}
	}
	assert.Greater(t, tagged, 0)
}

func TestDensifyChokepointsExcludesZeroOffsetButIncludesCenter(t *testing.T) {
	catalog := []chokepoint.Chokepoint{
		{ID: "SUEZ", Lat: 30.0, Lon: 30.0, RadiusDegrees: 1.0, StepDegrees: 0.5},
	}
	waypoints := DensifyChokepoints(0, catalog)

	centerCount := 0
	for _, wp := range waypoints {
		if wp.Lat == 30.0 && wp.Lon == 30.0 {
			centerCount++
		}
		assert.Equal(t, "SUEZ", wp.ChokepointID)
	}
	// the center appears exactly once (appended explicitly), not as a
	// by-product of the dlat=dlon=0 offset, which is skipped.
	assert.Equal(t, 1, centerCount)
}

func TestDensifyChokepointsStaysWithinRadius(t *testing.T) {
	catalog := []chokepoint.Chokepoint{
		{ID: "SUEZ", Lat: 30.0, Lon: 30.0, RadiusDegrees: 2.0, StepDegrees: 0.5},
	}
	waypoints := DensifyChokepoints(0, catalog)

	for _, wp := range waypoints {
		dlat := wp.Lat - 30.0
		dlon := wp.Lon - 30.0
		dist := dlat*dlat + dlon*dlon
		assert.LessOrEqual(t, dist, 2.0*2.0+1e-6)
	}
}

func TestFilterLandDiscardsAndReindexes(t *testing.T) {
	waypoints := []Waypoint{
		{Index: 0, Lat: 0, Lon: 0},
		{Index: 1, Lat: 10, Lon: 10},
		{Index: 2, Lat: 20, Lon: 20},
	}
	survivors := FilterLand(waypoints, func(lat, lon float64) bool {
		return lat == 10 // discard the middle one
	})

	require.Len(t, survivors, 2)
	assert.Equal(t, 0, survivors[0].Index)
	assert.Equal(t, 1, survivors[1].Index)
	assert.Equal(t, 20.0, survivors[1].Lat)
}
