package graph

import "container/heap"

// EdgeFilter reports whether the edge between u and v may be traversed.
// A nil filter accepts every edge. Concrete filters live in
// pkg/sea/dispatch; this package only depends on the function shape,
// never on dispatch itself, to keep the dependency direction leaves-first.
type EdgeFilter func(u, v int) bool

// ShortestPathResult mirrors the (distance_m, time_ms) pair the
// dispatch layer hands back to a matrix cell, with Found indicating
// reachability under the supplied filter.
type ShortestPathResult struct {
	DistanceM float64
	Found     bool
	Path      []int
}

// sea lanes carry no speed profile of their own; this fixed average
// speed converts distance into a travel time estimate for matrix
// responses, the way pkg/datastructure/graph.go's PathEstimatedCostETA
// does for road edges with its own constant.
const averageVesselSpeedKmH = 35.0

// TimeMs converts a distance in meters into a travel time estimate in
// milliseconds at averageVesselSpeedKmH.
func (r ShortestPathResult) TimeMs() float64 {
	if !r.Found {
		return 0
	}
	hours := (r.DistanceM / 1000.0) / averageVesselSpeedKmH
	return hours * 3600.0 * 1000.0
}

type dijkstraItem struct {
	node int
	dist float64
}

type dijkstraQueue []dijkstraItem

func (q dijkstraQueue) Len() int            { return len(q) }
func (q dijkstraQueue) Less(i, j int) bool   { return q[i].dist < q[j].dist }
func (q dijkstraQueue) Swap(i, j int)        { q[i], q[j] = q[j], q[i] }
func (q *dijkstraQueue) Push(x interface{}) { *q = append(*q, x.(dijkstraItem)) }
func (q *dijkstraQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Dijkstra computes the shortest path between src and tgt over g's
// undirected adjacency list, respecting filter (nil accepts every
// edge). Grounded in the priority-queue shortest path style of
// pkg/contractor/dijkstra_witness_search.go, without the
// contraction-hierarchy witness search that file runs on the road
// graph: the sea graph has no shortcuts to search through.
func Dijkstra(g *SeaGraph, src, tgt int, filter EdgeFilter) ShortestPathResult {
	n := g.NodeCount()
	if src < 0 || src >= n || tgt < 0 || tgt >= n {
		return ShortestPathResult{Found: false}
	}
	if src == tgt {
		return ShortestPathResult{DistanceM: 0, Found: true, Path: []int{src}}
	}

	dist := make([]float64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = -1
		prev[i] = -1
	}
	dist[src] = 0

	pq := &dijkstraQueue{{node: src, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(dijkstraItem)
		u := cur.node
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == tgt {
			break
		}

		for _, e := range g.Adjacency[u] {
			v := e.To
			if visited[v] {
				continue
			}
			if filter != nil && !filter(u, v) {
				continue
			}
			nd := dist[u] + e.DistM
			if dist[v] == -1 || nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				heap.Push(pq, dijkstraItem{node: v, dist: nd})
			}
		}
	}

	if dist[tgt] == -1 {
		return ShortestPathResult{Found: false}
	}

	path := []int{tgt}
	for u := prev[tgt]; u != -1; u = prev[u] {
		path = append([]int{u}, path...)
	}

	return ShortestPathResult{DistanceM: dist[tgt], Found: true, Path: path}
}
