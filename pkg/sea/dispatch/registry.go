package dispatch

import (
	"github.com/dynop/routing-service/pkg/sea/chokepoint"
	"github.com/dynop/routing-service/pkg/sea/graph"
	"github.com/dynop/routing-service/pkg/sea/port"
	"github.com/dynop/routing-service/pkg/server"
	"github.com/dynop/routing-service/pkg/server/rest/service"
)

// SeaEngine bundles the sea graph with its spatial index, port
// registry snapper, and chokepoint registry: everything C6 needs to
// serve a sea-mode matrix request without touching the road engine.
type SeaEngine struct {
	Graph       *graph.SeaGraph
	Index       *graph.Index
	Ports       *port.Snapper
	Chokepoints *chokepoint.Registry
	snapper     *SeaNodeSnapper
}

// NewSeaEngine wires a built/loaded sea graph into a ready-to-query
// engine, using the default graph-node snap distance threshold.
func NewSeaEngine(g *graph.SeaGraph, idx *graph.Index, ports *port.Snapper, chokepoints *chokepoint.Registry) *SeaEngine {
	return &SeaEngine{
		Graph:       g,
		Index:       idx,
		Ports:       ports,
		Chokepoints: chokepoints,
		snapper:     NewSeaNodeSnapper(g, idx),
	}
}

// NewSeaEngineWithMaxSnapDistance is NewSeaEngine with an explicit
// graph-node snap distance threshold, typically the
// max_graph_snap_distance_m value recorded by the sea graph's own
// build summary.
func NewSeaEngineWithMaxSnapDistance(g *graph.SeaGraph, idx *graph.Index, ports *port.Snapper, chokepoints *chokepoint.Registry, maxGraphSnapDistanceM float64) *SeaEngine {
	return &SeaEngine{
		Graph:       g,
		Index:       idx,
		Ports:       ports,
		Chokepoints: chokepoints,
		snapper:     NewSeaNodeSnapperWithThreshold(g, idx, maxGraphSnapDistanceM),
	}
}

// FindClosest snaps (lat, lon) to the nearest sea-graph node accepted
// by filter, Stage 2 of the dispatch pipeline.
func (e *SeaEngine) FindClosest(lat, lon float64, filter EdgeFilter) (int, error) {
	return e.snapper.Snap(lat, lon, filter)
}

// ComputePath runs Dijkstra between two already-snapped sea-graph node
// indices, honoring filter.
func (e *SeaEngine) ComputePath(src, tgt int, filter EdgeFilter) graph.ShortestPathResult {
	return graph.Dijkstra(e.Graph, src, tgt, filter.Accept)
}

// RoutingEngineRegistry holds the existing road RoutingAlgorithm
// alongside an optional SeaEngine, so a road-only deployment keeps
// working unmodified and a sea-enabled one can dispatch per request.
// Grounded on RoutingEngineRegistry/SeaHopperHolder from the original
// source.
type RoutingEngineRegistry struct {
	road service.RoutingAlgorithm
	sea  *SeaEngine
}

// NewRoutingEngineRegistry constructs a registry. sea may be nil for a
// road-only deployment.
func NewRoutingEngineRegistry(road service.RoutingAlgorithm, sea *SeaEngine) *RoutingEngineRegistry {
	return &RoutingEngineRegistry{road: road, sea: sea}
}

// RoadEngine returns the road RoutingAlgorithm, always present.
func (r *RoutingEngineRegistry) RoadEngine() service.RoutingAlgorithm {
	return r.road
}

// SeaEngineFor returns the configured sea engine for ModeSea, failing
// with server.ErrSeaRoutingUnavailable for ModeRoad or when no sea
// engine was configured at startup.
func (r *RoutingEngineRegistry) SeaEngineFor(mode Mode) (*SeaEngine, error) {
	if mode != ModeSea {
		return nil, server.WrapErrorf(nil, server.ErrSeaRoutingUnavailable, "mode %s does not use the sea engine", mode)
	}
	if r.sea == nil {
		return nil, server.WrapErrorf(nil, server.ErrSeaRoutingUnavailable, "sea routing is not configured on this deployment")
	}
	return r.sea, nil
}

// HasSeaEngine reports whether a sea engine was configured.
func (r *RoutingEngineRegistry) HasSeaEngine() bool {
	return r.sea != nil
}
