package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectivitySingleComponent(t *testing.T) {
	g := NewSeaGraph([]Node{{0, 0}, {1, 1}, {2, 2}})
	g.AddEdge(0, 1, 100)
	g.AddEdge(1, 2, 100)

	conn := g.Connectivity()
	assert.Equal(t, 1, conn.ComponentCount)
	assert.Equal(t, 3, conn.LargestComponentSize)
}

func TestConnectivityMultipleComponents(t *testing.T) {
	g := NewSeaGraph([]Node{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	g.AddEdge(0, 1, 100)
	g.AddEdge(2, 3, 100)

	conn := g.Connectivity()
	assert.Equal(t, 2, conn.ComponentCount)
	assert.Equal(t, 2, conn.LargestComponentSize)
	assert.Equal(t, conn.ComponentOf[0], conn.ComponentOf[1])
	assert.NotEqual(t, conn.ComponentOf[0], conn.ComponentOf[2])
}

func TestEdgeCountCountsEachUndirectedEdgeOnce(t *testing.T) {
	g := NewSeaGraph([]Node{{0, 0}, {1, 1}})
	g.AddEdge(0, 1, 100)

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.NodeCount())
}
