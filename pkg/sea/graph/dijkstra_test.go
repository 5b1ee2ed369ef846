package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lineGraph() *SeaGraph {
	g := NewSeaGraph([]Node{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	g.AddEdge(0, 1, 100)
	g.AddEdge(1, 2, 100)
	g.AddEdge(2, 3, 100)
	return g
}

func TestDijkstraFindsShortestPath(t *testing.T) {
	g := lineGraph()
	result := Dijkstra(g, 0, 3, nil)
	assert.True(t, result.Found)
	assert.Equal(t, 300.0, result.DistanceM)
	assert.Equal(t, []int{0, 1, 2, 3}, result.Path)
}

func TestDijkstraSameNode(t *testing.T) {
	g := lineGraph()
	result := Dijkstra(g, 2, 2, nil)
	assert.True(t, result.Found)
	assert.Equal(t, 0.0, result.DistanceM)
}

func TestDijkstraUnreachableWhenDisconnected(t *testing.T) {
	g := NewSeaGraph([]Node{{0, 0}, {1, 1}, {2, 2}})
	g.AddEdge(0, 1, 50)
	result := Dijkstra(g, 0, 2, nil)
	assert.False(t, result.Found)
}

func TestDijkstraRespectsFilter(t *testing.T) {
	g := lineGraph()
	filter := func(u, v int) bool {
		return !(u == 1 && v == 2) && !(u == 2 && v == 1)
	}
	result := Dijkstra(g, 0, 3, filter)
	assert.False(t, result.Found)
}

func TestDijkstraOutOfRangeNodes(t *testing.T) {
	g := lineGraph()
	result := Dijkstra(g, 0, 99, nil)
	assert.False(t, result.Found)
}
