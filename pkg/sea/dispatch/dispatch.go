package dispatch

import "github.com/dynop/routing-service/pkg/sea/port"

// Point is a free-form query coordinate, a matrix request's source or
// target before snapping.
type Point struct {
	Lat float64
	Lon float64
}

// CellResult is one (source, target) entry of a sea-mode matrix
// response.
type CellResult struct {
	SourceIndex int
	TargetIndex int
	DistanceM   float64
	TimeMs      float64
	Found       bool
}

// SeaMatrixRequest is the sea-mode subset of a matrix request: the
// road-only fields (vehicle profile, instructions, etc.) are handled
// entirely by the road engine and never reach this package.
type SeaMatrixRequest struct {
	Sources             []Point
	Targets             []Point
	ExcludedChokepoints []string
}

// SeaMatrixResult is the sea-mode subset of a matrix response: one
// PortSnaps entry per input point in input order, one CellResult per
// (source, target) pair, and the canonicalized chokepoint exclusions
// actually applied (deduplicated, unknown ids dropped).
type SeaMatrixResult struct {
	PortSnaps           []port.Result
	Cells               []CellResult
	ExcludedChokepoints []string
}

// Dispatch runs the full C6 per-request pipeline for a sea-mode matrix
// request: port-snap every input point, build the edge filter from the
// excluded chokepoint ids, snap each port onto the sea graph, then
// compute every (source, target) shortest path.
func Dispatch(engine *SeaEngine, req SeaMatrixRequest) (*SeaMatrixResult, error) {
	filter := NewEdgeFilterFromChokepoints(req.ExcludedChokepoints, engine.Chokepoints)

	var canonicalExcluded []string
	if engine.Chokepoints != nil {
		canonicalExcluded = engine.Chokepoints.CanonicalIDs(req.ExcludedChokepoints)
	}

	points := make([]Point, 0, len(req.Sources)+len(req.Targets))
	points = append(points, req.Sources...)
	points = append(points, req.Targets...)

	snaps := make([]port.Result, len(points))
	nodes := make([]int, len(points))
	for i, p := range points {
		role := port.RolePortOfLoading
		if i >= len(req.Sources) {
			role = port.RolePortOfDischarge
		}

		snap, err := engine.Ports.Snap(p.Lat, p.Lon, role)
		if err != nil {
			return nil, err
		}
		snaps[i] = snap

		node, err := engine.FindClosest(snap.Lat, snap.Lon, filter)
		if err != nil {
			return nil, err
		}
		nodes[i] = node
	}

	numSources := len(req.Sources)
	cells := make([]CellResult, 0, numSources*len(req.Targets))
	for si := 0; si < numSources; si++ {
		for ti := 0; ti < len(req.Targets); ti++ {
			result := engine.ComputePath(nodes[si], nodes[numSources+ti], filter)
			cells = append(cells, CellResult{
				SourceIndex: si,
				TargetIndex: ti,
				DistanceM:   result.DistanceM,
				TimeMs:      result.TimeMs(),
				Found:       result.Found,
			})
		}
	}

	return &SeaMatrixResult{PortSnaps: snaps, Cells: cells, ExcludedChokepoints: canonicalExcluded}, nil
}
