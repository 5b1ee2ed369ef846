package graph

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"golang.org/x/exp/slices"

	"github.com/dynop/routing-service/pkg/geo"
	"github.com/dynop/routing-service/pkg/sea/chokepoint"
	"github.com/dynop/routing-service/pkg/sea/landmask"
	"github.com/dynop/routing-service/pkg/server"
)

// K is the number of nearest neighbors considered per waypoint during
// candidate edge construction.
const K = 6

// knnCandidatePool is how many planar-nearest candidates the rtree
// index is asked for before re-ranking by the exact antimeridian-aware
// metric and truncating to K; it must exceed K so the planar index's
// approximation never starves the final top-K selection.
const knnCandidatePool = 24

// Config holds the parameters of a single builder run.
type Config struct {
	OutputDir          string
	LandMaskPath       string
	GridStepDegrees    float64
	StrictConnectivity bool
	Catalog            []chokepoint.Chokepoint
}

// BuildSummary is the JSON-serializable build report persisted as
// build_summary.json.
type BuildSummary struct {
	SeaGraphVersion                    string  `json:"sea_graph_version"`
	NodeCount                          int     `json:"node_count"`
	EdgeCount                          int     `json:"edge_count"`
	ConnectedComponentCount            int     `json:"connected_component_count"`
	LargestComponentSize               int     `json:"largest_component_size"`
	BuildDurationMs                    int64   `json:"build_duration_ms"`
	WaypointGridStepDegrees            float64 `json:"waypoint_grid_step_degrees"`
	ChokepointDensificationStepDegrees float64 `json:"chokepoint_densification_step_degrees"`
	LandMaskSource                     string  `json:"land_mask_source"`
	BuildTimestamp                     string  `json:"build_timestamp"`
	// MaxSnapDistanceKm and MaxGraphSnapDistanceM are pass-through
	// runtime thresholds chosen at build time (cmd/sealane's
	// -max-snap-distance-km and -max-graph-snap-distance-m flags), not
	// computed by the build itself. cmd/auto reads them back via
	// LoadSummary so a sea graph carries its own operator-chosen
	// snapping tolerances.
	MaxSnapDistanceKm     float64 `json:"max_snap_distance_km"`
	MaxGraphSnapDistanceM float64 `json:"max_graph_snap_distance_m"`
}

// BuildResult is the in-memory outcome of a build, before
// persistence.
type BuildResult struct {
	Graph       *SeaGraph
	Chokepoints *chokepoint.Registry
	Summary     BuildSummary
}

// Build runs the full offline pipeline: land mask load, grid
// generation, densification, land filtering, k-NN candidate
// construction, land-crossing rejection, edge insertion, chokepoint
// node mapping, and connectivity validation. It writes nothing to
// disk: the result is returned in memory and the caller persists it
// (cmd/sealane does so).
func Build(cfg Config) (*BuildResult, error) {
	if cfg.GridStepDegrees <= 0 {
		return nil, server.WrapErrorf(nil, server.ErrInvalidBuildConfig,
			"grid_step_degrees must be positive, got %v", cfg.GridStepDegrees)
	}

	start := time.Now()

	// Stage 1
	mask, err := landmask.Load(cfg.LandMaskPath)
	if err != nil {
		return nil, err
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = chokepoint.MandatoryCatalog
	}

	// Stage 2
	primary := GeneratePrimaryGrid(cfg.GridStepDegrees, catalog)

	// Stage 3
	dense := DensifyChokepoints(len(primary), catalog)

	all := make([]Waypoint, 0, len(primary)+len(dense))
	all = append(all, primary...)
	all = append(all, dense...)

	// Stage 4
	survivors := FilterLand(all, mask.Contains)

	// Stage 5 + 6 + 7
	g, err := buildEdges(survivors, mask)
	if err != nil {
		return nil, err
	}

	// Stage 8
	registry := buildChokepointRegistry(catalog, survivors)

	// Stage 9
	conn := g.Connectivity()
	if cfg.StrictConnectivity {
		if err := validateConnectivity(g, conn, registry, catalog); err != nil {
			return nil, err
		}
	} else if conn.ComponentCount > 1 {
		fmt.Printf("warn: sea-lane graph has %d connected components (largest has %d of %d nodes)\n",
			conn.ComponentCount, conn.LargestComponentSize, g.NodeCount())
	}

	elapsed := time.Since(start)
	buildTimestamp := time.Now().UTC().Format(time.RFC3339)

	summary := BuildSummary{
		SeaGraphVersion:                    computeVersionHash(g.NodeCount(), g.EdgeCount(), buildTimestamp),
		NodeCount:                          g.NodeCount(),
		EdgeCount:                          g.EdgeCount(),
		ConnectedComponentCount:            conn.ComponentCount,
		LargestComponentSize:               conn.LargestComponentSize,
		BuildDurationMs:                    elapsed.Milliseconds(),
		WaypointGridStepDegrees:            cfg.GridStepDegrees,
		ChokepointDensificationStepDegrees: densificationStep(catalog),
		LandMaskSource:                     mask.Source(),
		BuildTimestamp:                     buildTimestamp,
	}

	return &BuildResult{Graph: g, Chokepoints: registry, Summary: summary}, nil
}

func densificationStep(catalog []chokepoint.Chokepoint) float64 {
	if len(catalog) == 0 {
		return 0
	}
	return catalog[0].StepDegrees
}

// buildEdges performs Stages 5-7: k-NN candidate construction via the
// rtree index, antimeridian-aware land-crossing rejection, and
// canonical-order-deduplicated edge insertion.
func buildEdges(waypoints []Waypoint, mask *landmask.Mask) (*SeaGraph, error) {
	nodes := make([]Node, len(waypoints))
	for i, wp := range waypoints {
		nodes[i] = Node{Lat: wp.Lat, Lon: wp.Lon}
	}
	g := NewSeaGraph(nodes)

	idx := NewIndexFromWaypoints(waypoints)

	seen := make(map[[2]int]bool)

	for _, u := range waypoints {
		neighbors := topKAntimeridianNeighbors(u, waypoints, idx, K)
		for _, v := range neighbors {
			key := canonicalPair(u.Index, v)
			if seen[key] {
				continue
			}

			if edgeCrossesLand(waypoints[u.Index], waypoints[v], mask) {
				continue
			}
			seen[key] = true

			distKm := geo.AntimeridianAwareDistance(u.Lat, u.Lon, waypoints[v].Lat, waypoints[v].Lon)
			g.AddEdge(u.Index, v, distKm*1000)
		}
	}

	return g, nil
}

func canonicalPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// topKAntimeridianNeighbors narrows candidates via the rtree's planar
// nearest-neighbor query, then re-ranks by the exact
// antimeridian-aware metric and truncates to k. Each query asks for a
// larger pool than k, since the index's own distance is only an
// approximation used for narrowing, never the final ordering. The
// planar index does not wrap longitude, so the query is repeated with
// u shifted by +/-360 degrees to bring neighbors on the far side of
// the dateline into the pool.
func topKAntimeridianNeighbors(u Waypoint, waypoints []Waypoint, idx *Index, k int) []int {
	pool := idx.NearestNeighbors(k+knnCandidatePool, u.Lat, u.Lon)
	pool = append(pool, idx.NearestNeighbors(k+knnCandidatePool, u.Lat, u.Lon+360)...)
	pool = append(pool, idx.NearestNeighbors(k+knnCandidatePool, u.Lat, u.Lon-360)...)

	type scored struct {
		idx  int
		dist float64
	}
	scoredList := make([]scored, 0, len(pool))
	inPool := make(map[int]bool, len(pool))
	for _, c := range pool {
		if c == u.Index || inPool[c] {
			continue
		}
		inPool[c] = true
		v := waypoints[c]
		d := geo.AntimeridianAwareDistance(u.Lat, u.Lon, v.Lat, v.Lon)
		scoredList = append(scoredList, scored{idx: c, dist: d})
	}

	slices.SortFunc(scoredList, func(a, b scored) bool { return a.dist < b.dist })

	if len(scoredList) > k {
		scoredList = scoredList[:k]
	}

	out := make([]int, len(scoredList))
	for i, s := range scoredList {
		out[i] = s.idx
	}
	return out
}

// edgeCrossesLand implements Stage 6: a candidate pair whose
// longitude delta exceeds 180 degrees crosses the antimeridian and is
// split into two sub-segments at +/-180 via a midpoint heuristic
// before testing; any crossing sub-segment rejects the edge.
func edgeCrossesLand(u, v Waypoint, mask *landmask.Mask) bool {
	if math.Abs(v.Lon-u.Lon) <= 180 {
		return mask.IntersectsSegment(u.Lat, u.Lon, v.Lat, v.Lon)
	}

	midLat := (u.Lat + v.Lat) / 2

	uSign := 1.0
	if u.Lon < 0 {
		uSign = -1.0
	}
	vSign := 1.0
	if v.Lon < 0 {
		vSign = -1.0
	}

	seg1Crosses := mask.IntersectsSegment(u.Lat, u.Lon, midLat, 180*uSign)
	seg2Crosses := mask.IntersectsSegment(midLat, 180*vSign, v.Lat, v.Lon)

	return seg1Crosses || seg2Crosses
}

func buildChokepointRegistry(catalog []chokepoint.Chokepoint, survivors []Waypoint) *chokepoint.Registry {
	nodeIDsByChokepoint := make(map[string]map[int]bool)
	for _, wp := range survivors {
		if wp.ChokepointID == "" {
			continue
		}
		if nodeIDsByChokepoint[wp.ChokepointID] == nil {
			nodeIDsByChokepoint[wp.ChokepointID] = make(map[int]bool)
		}
		nodeIDsByChokepoint[wp.ChokepointID][wp.Index] = true
	}

	registry := chokepoint.NewRegistry()
	for _, c := range catalog {
		nodeIDs := nodeIDsByChokepoint[c.ID]
		if nodeIDs == nil {
			nodeIDs = make(map[int]bool)
		}
		registry.Add(c.WithNodeIDs(nodeIDs))
	}
	return registry
}

// validateConnectivity enforces: a single connected component, and
// every mandatory chokepoint center's nearest node reachable within
// that component.
func validateConnectivity(g *SeaGraph, conn ConnectivityResult, registry *chokepoint.Registry, catalog []chokepoint.Chokepoint) error {
	if conn.ComponentCount > 1 {
		return server.WrapErrorf(nil, server.ErrConnectivityInvariantViolated,
			"sea-lane graph has %d connected components (largest has %d of %d nodes)",
			conn.ComponentCount, conn.LargestComponentSize, g.NodeCount())
	}

	for _, c := range catalog {
		ch, ok := registry.Get(c.ID)
		if !ok || len(ch.NodeIDs) == 0 {
			return server.WrapErrorf(nil, server.ErrConnectivityInvariantViolated,
				"mandatory chokepoint %s has no surviving graph nodes", c.ID)
		}
	}
	return nil
}

// computeVersionHash is a stable short version hash: a 16-hex-char
// prefix of SHA-256 over (node_count, edge_count, build_timestamp),
// prefixed "sha256:".
func computeVersionHash(nodeCount, edgeCount int, buildTimestamp string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d:%d:%s", nodeCount, edgeCount, buildTimestamp)
	digest := hex.EncodeToString(h.Sum(nil))
	return "sha256:" + digest[:16]
}

// SaveSummary writes build_summary.json under dir.
func SaveSummary(dir string, summary BuildSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return server.WrapErrorf(err, server.ErrIO, "encoding build summary")
	}
	path := dir + "/build_summary.json"
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return server.WrapErrorf(err, server.ErrIO, "writing build summary %s", path)
	}
	return nil
}

// LoadSummary reads build_summary.json back from dir.
func LoadSummary(dir string) (BuildSummary, error) {
	path := dir + "/build_summary.json"
	data, err := os.ReadFile(path)
	if err != nil {
		return BuildSummary{}, server.WrapErrorf(err, server.ErrIO, "reading build summary %s", path)
	}
	var summary BuildSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return BuildSummary{}, server.WrapErrorf(err, server.ErrIO, "parsing build summary %s", path)
	}
	return summary, nil
}
