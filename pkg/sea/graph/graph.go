// Package graph holds the sea-lane graph representation, its
// connectivity and k-nearest-neighbor construction, and the on-disk
// persistence format produced by the offline builder and consumed at
// routing time.
package graph

// Node is a sea-lane graph vertex. Indices are dense, starting at 0.
type Node struct {
	Lat float64
	Lon float64
}

// Edge is one undirected, weighted connection from a node's
// adjacency list. DistM is the antimeridian-aware great-circle
// distance in meters.
type Edge struct {
	To    int
	DistM float64
}

// SeaGraph is the fully built, immutable sea-lane routing graph.
type SeaGraph struct {
	Nodes     []Node
	Adjacency [][]Edge
}

// NewSeaGraph allocates a graph with n empty adjacency lists.
func NewSeaGraph(nodes []Node) *SeaGraph {
	return &SeaGraph{
		Nodes:     nodes,
		Adjacency: make([][]Edge, len(nodes)),
	}
}

// AddEdge inserts an undirected edge between u and v with the given
// weight. Callers are responsible for canonical de-duplication before
// calling this (see builder.go's Stage 7).
func (g *SeaGraph) AddEdge(u, v int, distM float64) {
	g.Adjacency[u] = append(g.Adjacency[u], Edge{To: v, DistM: distM})
	g.Adjacency[v] = append(g.Adjacency[v], Edge{To: u, DistM: distM})
}

// NodeCount returns len(Nodes).
func (g *SeaGraph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of undirected edges (each counted
// once, not per adjacency-list entry).
func (g *SeaGraph) EdgeCount() int {
	total := 0
	for _, adj := range g.Adjacency {
		total += len(adj)
	}
	return total / 2
}

// ConnectivityResult summarizes the connected-component structure of
// a built graph.
type ConnectivityResult struct {
	ComponentCount       int
	LargestComponentSize int
	ComponentOf          []int // node index -> component label
}

// Connectivity computes connected components via breadth-first
// traversal over the undirected edge set.
func (g *SeaGraph) Connectivity() ConnectivityResult {
	n := len(g.Nodes)
	componentOf := make([]int, n)
	for i := range componentOf {
		componentOf[i] = -1
	}

	componentCount := 0
	largest := 0
	for start := 0; start < n; start++ {
		if componentOf[start] != -1 {
			continue
		}
		label := componentCount
		componentCount++
		size := g.bfs(start, label, componentOf)
		if size > largest {
			largest = size
		}
	}

	return ConnectivityResult{
		ComponentCount:       componentCount,
		LargestComponentSize: largest,
		ComponentOf:          componentOf,
	}
}

func (g *SeaGraph) bfs(start, label int, componentOf []int) int {
	queue := []int{start}
	componentOf[start] = label
	size := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		size++
		for _, e := range g.Adjacency[u] {
			if componentOf[e.To] == -1 {
				componentOf[e.To] = label
				queue = append(queue, e.To)
			}
		}
	}
	return size
}
