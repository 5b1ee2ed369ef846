package dispatch

import (
	"errors"
	"testing"

	"github.com/dynop/routing-service/pkg/sea/graph"
	"github.com/dynop/routing-service/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallSeaGraph() (*graph.SeaGraph, *graph.Index) {
	nodes := []graph.Node{
		{Lat: 51.9, Lon: 4.5},   // 0: Rotterdam-ish
		{Lat: 1.3, Lon: 103.8},  // 1: Singapore-ish
		{Lat: 30.8, Lon: 32.3},  // 2: Suez-ish
	}
	g := graph.NewSeaGraph(nodes)
	g.AddEdge(0, 2, 5_000_000)
	g.AddEdge(2, 1, 8_000_000)
	return g, graph.NewIndexFromNodes(nodes)
}

func TestSeaNodeSnapperReturnsNearestNode(t *testing.T) {
	g, idx := smallSeaGraph()
	snapper := NewSeaNodeSnapper(g, idx)

	node, err := snapper.Snap(52.0, 4.4, AcceptAllFilter())
	require.NoError(t, err)
	assert.Equal(t, 0, node)
}

func TestSeaNodeSnapperRespectsFilter(t *testing.T) {
	g, idx := smallSeaGraph()
	snapper := NewSeaNodeSnapper(g, idx)

	filter := NewEdgeFilterFromNodeIDs(map[int]bool{0: true})
	node, err := snapper.Snap(52.0, 4.4, filter)
	require.NoError(t, err)
	assert.NotEqual(t, 0, node)
}

func TestSeaNodeSnapperFailsBeyondThreshold(t *testing.T) {
	g, idx := smallSeaGraph()
	snapper := NewSeaNodeSnapperWithThreshold(g, idx, 1000)

	_, err := snapper.Snap(-45.0, -60.0, AcceptAllFilter())
	require.Error(t, err)
	var serr *server.Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, server.ErrGraphSnapFailed, serr.Code())
}

func TestSeaNodeSnapperExpandsPoolWhenExcludedClusterFillsIt(t *testing.T) {
	// Pack 20 nodes tightly around a Suez-like chokepoint center,
	// all excluded, plus one valid node well outside the cluster.
	// With a fixed snapCandidatePool of 16 every one of the nearest
	// candidates would be excluded; Snap must widen the pool and
	// still find the valid, farther node instead of failing.
	nodes := make([]graph.Node, 0, 21)
	excluded := make(map[int]bool)
	for i := 0; i < 20; i++ {
		lat := 30.0 + float64(i%5)*0.01
		lon := 32.0 + float64(i/5)*0.01
		nodes = append(nodes, graph.Node{Lat: lat, Lon: lon})
		excluded[i] = true
	}
	validIdx := len(nodes)
	nodes = append(nodes, graph.Node{Lat: 31.5, Lon: 33.5})

	g := graph.NewSeaGraph(nodes)
	idx := graph.NewIndexFromNodes(nodes)
	snapper := NewSeaNodeSnapperWithThreshold(g, idx, 1_000_000)

	filter := NewEdgeFilterFromNodeIDs(excluded)
	node, err := snapper.Snap(30.0, 32.0, filter)
	require.NoError(t, err)
	assert.Equal(t, validIdx, node)
}

func TestSeaNodeSnapperFailsOnEmptyGraph(t *testing.T) {
	g := graph.NewSeaGraph(nil)
	idx := graph.NewIndexFromNodes(nil)
	snapper := NewSeaNodeSnapper(g, idx)

	_, err := snapper.Snap(0, 0, AcceptAllFilter())
	require.Error(t, err)
}
