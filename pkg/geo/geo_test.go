package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceKnown(t *testing.T) {
	// Rotterdam to Singapore, sanity-checked against public great-circle calculators.
	d := HaversineDistanceLatLon(51.9167, 4.5, 1.2833, 103.85)
	assert.InDelta(t, 10555, d, 50)
}

func TestHaversineDistanceZero(t *testing.T) {
	d := HaversineDistanceLatLon(10, 20, 10, 20)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestAntimeridianAwareDistanceNotAboveNaive(t *testing.T) {
	// Shanghai and Los Angeles straddle the dateline; the wrapped
	// distance is never larger than the distance on raw longitudes.
	shanghaiLat, shanghaiLon := 31.23, 121.47
	laLat, laLon := 33.74, -118.27

	naive := HaversineDistanceLatLon(shanghaiLat, shanghaiLon, laLat, laLon)
	anti := AntimeridianAwareDistance(shanghaiLat, shanghaiLon, laLat, laLon)

	assert.LessOrEqual(t, anti, naive)
}

func TestAntimeridianAwareDistanceMatchesShorterWrap(t *testing.T) {
	lat1, lon1 := -18.0, 179.0
	lat2, lon2 := -19.0, -179.5

	want := math.Min(
		HaversineDistanceLatLon(lat1, lon1, lat2, lon2+360),
		math.Min(
			HaversineDistanceLatLon(lat1, lon1, lat2, lon2),
			HaversineDistanceLatLon(lat1, lon1, lat2, lon2-360),
		),
	)
	got := AntimeridianAwareDistance(lat1, lon1, lat2, lon2)
	assert.InDelta(t, want, got, 1e-9)
}

func TestNormalizeLongitude(t *testing.T) {
	assert.InDelta(t, -179.0, NormalizeLongitude(181.0), 1e-9)
	assert.InDelta(t, 179.0, NormalizeLongitude(-181.0), 1e-9)
	assert.InDelta(t, 10.0, NormalizeLongitude(10.0), 1e-9)
	assert.InDelta(t, -180.0+0.0, NormalizeLongitude(180.0), 1e-9)
}
