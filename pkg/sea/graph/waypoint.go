package graph

import (
	"math"

	"github.com/dynop/routing-service/pkg/geo"
	"github.com/dynop/routing-service/pkg/sea/chokepoint"
)

// Waypoint is a build-time-only candidate graph node.
type Waypoint struct {
	Index        int
	Lat          float64
	Lon          float64
	ChokepointID string // empty when untagged
}

const (
	minLat = -80.0
	maxLat = 80.0
	minLon = -180.0
	maxLon = 180.0
)

// GeneratePrimaryGrid builds the primary lat/lon grid: lat in
// [-80, 80] inclusive of both bounds, lon in [-180, 180) inclusive of
// the lower bound and exclusive of the upper bound, so the dateline
// is represented exactly once. Waypoints near a mandatory chokepoint
// (within 2*stepDegrees in planar degree distance) are tagged with
// that chokepoint's id; ties break by catalog order.
func GeneratePrimaryGrid(stepDegrees float64, catalog []chokepoint.Chokepoint) []Waypoint {
	var waypoints []Waypoint
	index := 0

	tagRadius := 2 * stepDegrees

	for lat := minLat; lat <= maxLat+1e-9; lat += stepDegrees {
		for lon := minLon; lon < maxLon-1e-9; lon += stepDegrees {
			wp := Waypoint{Index: index, Lat: lat, Lon: lon}
			if id := nearbyChokepoint(lat, lon, tagRadius, catalog); id != "" {
				wp.ChokepointID = id
			}
			waypoints = append(waypoints, wp)
			index++
		}
	}
	return waypoints
}

func nearbyChokepoint(lat, lon, radius float64, catalog []chokepoint.Chokepoint) string {
	for _, c := range catalog {
		dlat := lat - c.Lat
		dlon := lon - c.Lon
		if math.Sqrt(dlat*dlat+dlon*dlon) <= radius {
			return c.ID
		}
	}
	return ""
}

// DensifyChokepoints generates, for every chokepoint in the catalog,
// a local dense grid of waypoints covering [-radius, +radius] in both
// dlat and dlon stepped by that chokepoint's StepDegrees, keeping
// offsets within the circle of that radius and excluding the exact
// zero offset (the chokepoint center is appended separately to avoid
// an exact duplicate). Indices continue from startIndex.
func DensifyChokepoints(startIndex int, catalog []chokepoint.Chokepoint) []Waypoint {
	var waypoints []Waypoint
	index := startIndex

	for _, c := range catalog {
		for dlat := -c.RadiusDegrees; dlat <= c.RadiusDegrees+1e-9; dlat += c.StepDegrees {
			for dlon := -c.RadiusDegrees; dlon <= c.RadiusDegrees+1e-9; dlon += c.StepDegrees {
				if dlat == 0 && dlon == 0 {
					continue
				}
				if math.Sqrt(dlat*dlat+dlon*dlon) > c.RadiusDegrees {
					continue
				}

				lat := clampLat(c.Lat + dlat)
				lon := geo.NormalizeLongitude(c.Lon + dlon)

				waypoints = append(waypoints, Waypoint{
					Index:        index,
					Lat:          lat,
					Lon:          lon,
					ChokepointID: c.ID,
				})
				index++
			}
		}

		waypoints = append(waypoints, Waypoint{
			Index:        index,
			Lat:          c.Lat,
			Lon:          c.Lon,
			ChokepointID: c.ID,
		})
		index++
	}

	return waypoints
}

func clampLat(lat float64) float64 {
	if lat < minLat {
		return minLat
	}
	if lat > maxLat {
		return maxLat
	}
	return lat
}

// FilterLand discards waypoints that lie strictly inside land
// geometry, re-indexing survivors densely from 0 while preserving
// relative order and tags.
func FilterLand(waypoints []Waypoint, contains func(lat, lon float64) bool) []Waypoint {
	survivors := make([]Waypoint, 0, len(waypoints))
	for _, wp := range waypoints {
		if contains(wp.Lat, wp.Lon) {
			continue
		}
		wp.Index = len(survivors)
		survivors = append(survivors, wp)
	}
	return survivors
}
