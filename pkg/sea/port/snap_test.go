package port

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/dynop/routing-service/pkg/geo"
	"github.com/dynop/routing-service/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapRotterdam(t *testing.T) {
	// S1
	ports := []Port{
		{Unlocode: "NLRTM", Lat: 51.9167, Lon: 4.5},
		{Unlocode: "SGSIN", Lat: 1.2833, Lon: 103.85},
	}
	s := NewSnapper(ports)

	result, err := s.Snap(52.0, 4.3, RolePortOfLoading)
	require.NoError(t, err)
	assert.Equal(t, "NLRTM", result.Unlocode)
	assert.Less(t, result.SnapDistanceKm, 50.0)
}

func TestSnapOutOfRange(t *testing.T) {
	// S2
	ports := []Port{{Unlocode: "NLRTM", Lat: 51.9167, Lon: 4.5}}
	s := NewSnapperWithThreshold(ports, 1.0)

	_, err := s.Snap(45.0, 10.0, RolePortOfLoading)
	require.Error(t, err)

	var serr *server.Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, server.ErrNoSeaportWithinRange, serr.Code())
}

func TestSnapAntimeridianNearestPort(t *testing.T) {
	// S3
	ports := []Port{
		{Unlocode: "FJSUV", Lat: -18.1248, Lon: 178.4501},
		{Unlocode: "NZAKL", Lat: -36.8485, Lon: 174.7633},
	}
	s := NewSnapperWithThreshold(ports, 3000)

	result, err := s.Snap(-18.0, 179.0, RolePortOfLoading)
	require.NoError(t, err)
	assert.Equal(t, "FJSUV", result.Unlocode)
}

func TestSnapEmptyPortList(t *testing.T) {
	s := NewSnapper(nil)
	_, err := s.Snap(0, 0, RolePortOfLoading)
	require.Error(t, err)

	var serr *server.Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, server.ErrNoSeaportFound, serr.Code())
}

func TestSnapLargeRegistryMatchesFullScan(t *testing.T) {
	// Once the registry crosses largePortListThreshold, Snap
	// switches to the h3-indexed ring expansion. Scatter enough ports
	// worldwide to build the index, add two close-together candidates
	// straddling whatever H3 cell boundary lands near the query point,
	// and assert the result matches an independent brute-force scan
	// rather than whatever the first non-empty ring happens to contain.
	const n = 2500
	ports := make([]Port, 0, n+2)
	for i := 0; i < n; i++ {
		lat := math.Mod(float64(i)*37.28, 170.0) - 85.0
		lon := math.Mod(float64(i)*71.53, 360.0) - 180.0
		ports = append(ports, Port{Unlocode: fmt.Sprintf("ZZ%04d", i), Lat: lat, Lon: lon})
	}
	ports = append(ports, Port{Unlocode: "NEAR1", Lat: 10.02, Lon: 20.01})
	ports = append(ports, Port{Unlocode: "NEAR2", Lat: 10.15, Lon: 20.20})

	require.Greater(t, len(ports), largePortListThreshold)
	s := NewSnapperWithThreshold(ports, 20000)

	const queryLat, queryLon = 10.0, 20.0

	wantIdx := -1
	wantDist := math.Inf(1)
	for i, p := range ports {
		d := geo.HaversineDistanceLatLon(queryLat, queryLon, p.Lat, p.Lon)
		if d < wantDist {
			wantDist = d
			wantIdx = i
		}
	}

	result, err := s.Snap(queryLat, queryLon, RolePortOfLoading)
	require.NoError(t, err)
	assert.Equal(t, ports[wantIdx].Unlocode, result.Unlocode)
	assert.InDelta(t, wantDist, result.SnapDistanceKm, 1e-6)
}

func TestSnapSinglePortRoundTrip(t *testing.T) {
	p := Port{Unlocode: "NLRTM", Lat: 51.9167, Lon: 4.5}
	s := NewSnapper([]Port{p})

	result, err := s.Snap(p.Lat, p.Lon, RolePortOfDischarge)
	require.NoError(t, err)
	assert.Equal(t, p.Unlocode, result.Unlocode)
	assert.Less(t, result.SnapDistanceKm, 1.0)
}
