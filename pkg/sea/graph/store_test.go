package graph

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAndLoadRoundTrip(t *testing.T) {
	g := NewSeaGraph([]Node{
		{Lat: 10, Lon: 20},
		{Lat: 30, Lon: 40},
		{Lat: 50, Lon: 60},
	})
	g.AddEdge(0, 1, 111.0)
	g.AddEdge(1, 2, 222.0)

	dir := filepath.Join(t.TempDir(), "graph.db")
	require.NoError(t, Store(dir, g))

	loaded, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, g.NodeCount(), loaded.NodeCount())
	assert.Equal(t, g.EdgeCount(), loaded.EdgeCount())
	for i, n := range g.Nodes {
		assert.Equal(t, n.Lat, loaded.Nodes[i].Lat)
		assert.Equal(t, n.Lon, loaded.Nodes[i].Lon)
	}
}
