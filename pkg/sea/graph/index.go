package graph

import (
	"github.com/dhconnelly/rtreego"
)

// nodeRect adapts a waypoint/node coordinate to rtreego's Spatial
// interface.
type nodeRect struct {
	Location rtreego.Point
	NodeIdx  int
}

// tol is the half-width of the degenerate bounding box rtreego
// requires around a point object.
const tol = 0.0001

func (r *nodeRect) Bounds() *rtreego.Rect {
	rect, _ := rtreego.NewRect(r.Location, []float64{tol, tol})
	return rect
}

// Index is a 2D R-tree over waypoint/node (lat, lon) used both during
// the build (Stage 5 k-NN candidate narrowing) and at runtime (the
// sea-node snapper in pkg/sea/dispatch).
type Index struct {
	tree *rtreego.Rtree
}

// NewIndexFromWaypoints builds an index over build-time waypoints.
func NewIndexFromWaypoints(waypoints []Waypoint) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	for _, wp := range waypoints {
		tree.Insert(&nodeRect{Location: rtreego.Point{wp.Lat, wp.Lon}, NodeIdx: wp.Index})
	}
	return &Index{tree: tree}
}

// NewIndexFromNodes builds an index over a finished graph's nodes,
// used when a persisted sea graph is loaded back into memory (the
// index itself is never persisted, matching the teacher's own
// rebuild-on-load pattern for street data).
func NewIndexFromNodes(nodes []Node) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	for i, n := range nodes {
		tree.Insert(&nodeRect{Location: rtreego.Point{n.Lat, n.Lon}, NodeIdx: i})
	}
	return &Index{tree: tree}
}

// NearestNeighbors returns up to k candidate node indices nearest
// (lat, lon) by the index's own planar metric. Callers that need
// antimeridian-aware distance (Stage 5) must re-rank these
// candidates themselves; the index is only a narrowing step.
func (idx *Index) NearestNeighbors(k int, lat, lon float64) []int {
	results := idx.tree.NearestNeighbors(k, rtreego.Point{lat, lon})
	out := make([]int, 0, len(results))
	for _, r := range results {
		out = append(out, r.(*nodeRect).NodeIdx)
	}
	return out
}
