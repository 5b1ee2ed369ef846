package dispatch

import (
	"github.com/dynop/routing-service/pkg/geo"
	"github.com/dynop/routing-service/pkg/sea/graph"
	"github.com/dynop/routing-service/pkg/server"
)

// DefaultMaxSnapDistanceMeters bounds the sea-node snap (Stage 2 of the
// dispatch pipeline), a distinct constant from port.DefaultMaxSnapDistanceKm
// since it bounds a different operation: snapping onto a graph node
// rather than onto a seaport, carried as SeaNodeSnapper's
// DEFAULT_MAX_SNAP_DISTANCE_METERS from the original source.
const DefaultMaxSnapDistanceMeters = 300_000.0

// snapCandidatePool is how many nearest candidates the spatial index is
// asked for before filtering and re-ranking by exact distance; wide
// enough that an excluded node rarely exhausts the pool.
const snapCandidatePool = 16

// snapPoolGrowthFactor widens the candidate pool when every candidate
// in the current pool is rejected by the filter, mirroring
// port.Snapper's ring-expansion-with-fallback search instead of
// failing on a fixed window.
const snapPoolGrowthFactor = 4

// SeaNodeSnapper resolves a free (lat, lon) to the nearest sea-graph
// node, honoring an EdgeFilter so excluded chokepoint nodes are never
// returned as a snap target.
type SeaNodeSnapper struct {
	graph            *graph.SeaGraph
	index            *graph.Index
	maxSnapDistanceM float64
}

// NewSeaNodeSnapper builds a snapper over g using its rebuilt-on-load
// spatial index, with the default maximum snap distance.
func NewSeaNodeSnapper(g *graph.SeaGraph, index *graph.Index) *SeaNodeSnapper {
	return NewSeaNodeSnapperWithThreshold(g, index, DefaultMaxSnapDistanceMeters)
}

// NewSeaNodeSnapperWithThreshold builds a snapper with an explicit
// maximum snap distance in meters.
func NewSeaNodeSnapperWithThreshold(g *graph.SeaGraph, index *graph.Index, maxSnapDistanceM float64) *SeaNodeSnapper {
	return &SeaNodeSnapper{graph: g, index: index, maxSnapDistanceM: maxSnapDistanceM}
}

// Snap returns the nearest node index to (lat, lon) whose id is
// accepted by filter, failing with server.ErrGraphSnapFailed if no
// accepted candidate is found within maxSnapDistanceM. A densified
// chokepoint can pack dozens of nodes into a small area, so an
// excluded-chokepoint query may see every node in the initial pool
// rejected by filter even though an accepted node exists farther out;
// Snap widens the pool (up to a full scan of the graph) rather than
// reporting a spurious failure in that case.
func (s *SeaNodeSnapper) Snap(lat, lon float64, filter EdgeFilter) (int, error) {
	total := s.graph.NodeCount()
	if total == 0 {
		return -1, server.WrapErrorf(nil, server.ErrGraphSnapFailed, "sea graph has no nodes")
	}

	best, bestDist := -1, 0.0
	for pool := snapCandidatePool; ; pool *= snapPoolGrowthFactor {
		if pool > total {
			pool = total
		}

		candidates := s.index.NearestNeighbors(pool, lat, lon)
		for _, idx := range candidates {
			if filter.RejectsNode(idx) {
				continue
			}
			node := s.graph.Nodes[idx]
			d := geo.AntimeridianAwareDistance(lat, lon, node.Lat, node.Lon) * 1000.0
			if best == -1 || d < bestDist {
				best = idx
				bestDist = d
			}
		}

		if best != -1 || pool >= total {
			break
		}
	}

	if best == -1 {
		return -1, server.WrapErrorf(nil, server.ErrGraphSnapFailed, "no sea graph node accepted by filter near (%f, %f)", lat, lon)
	}
	if bestDist > s.maxSnapDistanceM {
		return -1, server.WrapErrorf(nil, server.ErrGraphSnapFailed, "nearest sea graph node is %.0fm away, exceeds %.0fm", bestDist, s.maxSnapDistanceM)
	}

	return best, nil
}
