package port

import (
	"math"

	"github.com/dynop/routing-service/pkg/geo"
	"github.com/dynop/routing-service/pkg/server"
	"github.com/uber/h3-go/v4"
)

// DefaultMaxSnapDistanceKm is the default maximum great-circle
// distance a query coordinate may be from the nearest seaport before
// the snap is rejected. Distinct from the sea-graph node snap
// threshold in pkg/sea/dispatch, which bounds a different operation.
const DefaultMaxSnapDistanceKm = 300.0

// largePortListThreshold is the registry size above which the
// snapper pre-narrows candidates through an H3 ring lookup before
// falling back to a full linear scan. It never changes the result,
// only the amount of work done to find it.
const largePortListThreshold = 2000

const snapperH3Resolution = 4

// h3Res4MinRingStepKm is a conservative lower bound, in kilometers, on
// how far the closest point in H3 ring k (at snapperH3Resolution) can
// possibly be from the ring's origin cell. Derived from the published
// average hexagon edge length at resolution 4 (~22.6 km, see
// https://h3geo.org/docs/core-library/restable) with headroom so the
// bound never overstates the true minimum; understating it only costs
// an extra ring of scanning, never correctness.
const h3Res4MinRingStepKm = 15.0

// maxSnapperRingExpansion caps how many rings candidateIndices will
// expand before giving up and falling back to a full scan.
const maxSnapperRingExpansion = 12

// SnapMethodNearestSeaport is the constant method tag carried on
// every successful snap result.
const SnapMethodNearestSeaport = "NEAREST_SEAPORT"

// Result is the outcome of a successful snap.
type Result struct {
	Unlocode      string
	Name          string
	Lat           float64
	Lon           float64
	OriginalLat   float64
	OriginalLon   float64
	SnapDistanceKm float64
	SnapMethod    string
	Role          Role
}

// Snapper resolves arbitrary coordinates to the nearest seaport in a
// fixed port list.
type Snapper struct {
	ports               []Port
	maxSnapDistanceKm   float64
	index               map[h3.Cell][]int // populated lazily, only for large registries
}

// NewSnapper builds a snapper over ports using the default distance
// threshold.
func NewSnapper(ports []Port) *Snapper {
	return NewSnapperWithThreshold(ports, DefaultMaxSnapDistanceKm)
}

// NewSnapperWithThreshold builds a snapper with an explicit maximum
// snap distance in kilometers.
func NewSnapperWithThreshold(ports []Port, maxSnapDistanceKm float64) *Snapper {
	s := &Snapper{ports: ports, maxSnapDistanceKm: maxSnapDistanceKm}
	if len(ports) > largePortListThreshold {
		s.buildIndex()
	}
	return s
}

func (s *Snapper) buildIndex() {
	s.index = make(map[h3.Cell][]int, len(s.ports))
	for i, p := range s.ports {
		cell := h3.LatLngToCell(h3.NewLatLng(p.Lat, p.Lon), snapperH3Resolution)
		s.index[cell] = append(s.index[cell], i)
	}
}

// Snap returns the nearest seaport to (lat, lon), failing with
// server.ErrNoSeaportFound if the port list is empty or
// server.ErrNoSeaportWithinRange if the nearest candidate exceeds the
// configured distance threshold. The role is carried through for
// diagnostics only; the snap policy does not depend on it.
func (s *Snapper) Snap(lat, lon float64, role Role) (Result, error) {
	if len(s.ports) == 0 {
		return Result{}, server.WrapErrorf(nil, server.ErrNoSeaportFound,
			"no seaport available to snap (%.4f, %.4f)", lat, lon)
	}

	candidates := s.candidateIndices(lat, lon)

	bestIdx := -1
	bestDist := 0.0
	for _, i := range candidates {
		p := s.ports[i]
		d := geo.HaversineDistanceLatLon(lat, lon, p.Lat, p.Lon)
		if bestIdx == -1 || d < bestDist {
			bestIdx = i
			bestDist = d
		}
	}

	nearest := s.ports[bestIdx]
	if bestDist > s.maxSnapDistanceKm {
		return Result{}, server.WrapErrorf(nil, server.ErrNoSeaportWithinRange,
			"nearest seaport %s is %.2f km from (%.4f, %.4f), exceeding threshold of %.2f km",
			nearest.Unlocode, bestDist, lat, lon, s.maxSnapDistanceKm)
	}

	return Result{
		Unlocode:       nearest.Unlocode,
		Name:           nearest.Name,
		Lat:            nearest.Lat,
		Lon:            nearest.Lon,
		OriginalLat:    lat,
		OriginalLon:    lon,
		SnapDistanceKm: bestDist,
		SnapMethod:     SnapMethodNearestSeaport,
		Role:           role,
	}, nil
}

// candidateIndices returns the indices to scan: an expanding H3 disk
// around the query point when the registry is large enough to have an
// index, otherwise every port in the list. The disk keeps growing
// until the next, unexplored ring's minimum possible distance from the
// query point exceeds the nearest candidate found so far, at which
// point no unexamined port could possibly be closer. This is a pure
// optimization; it never changes Snap's observable result, since the
// ring expansion is provably exhaustive up to the best candidate and
// a full scan is the fallback if it does not converge.
func (s *Snapper) candidateIndices(lat, lon float64) []int {
	if s.index == nil {
		return allIndices(len(s.ports))
	}

	home := h3.LatLngToCell(h3.NewLatLng(lat, lon), snapperH3Resolution)

	var out []int
	seen := make(map[h3.Cell]bool)
	bestDist := math.Inf(1)

	for ring := 0; ring <= maxSnapperRingExpansion; ring++ {
		for _, cell := range h3.GridDisk(home, ring) {
			if seen[cell] {
				continue
			}
			seen[cell] = true
			for _, i := range s.index[cell] {
				out = append(out, i)
				p := s.ports[i]
				if d := geo.HaversineDistanceLatLon(lat, lon, p.Lat, p.Lon); d < bestDist {
					bestDist = d
				}
			}
		}

		nextRingMinDist := float64(ring) * h3Res4MinRingStepKm
		if len(out) > 0 && nextRingMinDist > bestDist {
			return out
		}
	}

	return allIndices(len(s.ports))
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
