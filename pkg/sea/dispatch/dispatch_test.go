package dispatch

import (
	"testing"

	"github.com/dynop/routing-service/pkg/sea/chokepoint"
	"github.com/dynop/routing-service/pkg/sea/graph"
	"github.com/dynop/routing-service/pkg/sea/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPorts() []port.Port {
	return []port.Port{
		{Unlocode: "NLRTM", Name: "ROTTERDAM", Lat: 51.9167, Lon: 4.5, Function: "1234----", Status: "AI"},
		{Unlocode: "SGSIN", Name: "SINGAPORE", Lat: 1.2833, Lon: 103.85, Function: "1234----", Status: "AI"},
	}
}

func testSeaGraph() (*graph.SeaGraph, *graph.Index) {
	nodes := []graph.Node{
		{Lat: 51.9, Lon: 4.5},  // 0: near Rotterdam
		{Lat: 30.8, Lon: 32.3}, // 1: Suez
		{Lat: 1.3, Lon: 103.8}, // 2: near Singapore
	}
	g := graph.NewSeaGraph(nodes)
	g.AddEdge(0, 1, 5_000_000)
	g.AddEdge(1, 2, 8_000_000)
	return g, graph.NewIndexFromNodes(nodes)
}

func TestDispatchEndToEndComputesSeaRoute(t *testing.T) {
	g, idx := testSeaGraph()
	ports := port.NewSnapper(testPorts())
	registry := chokepoint.NewRegistry()
	registry.Add(chokepoint.Chokepoint{ID: "SUEZ", NodeIDs: map[int]bool{1: true}})

	engine := NewSeaEngine(g, idx, ports, registry)

	req := SeaMatrixRequest{
		Sources: []Point{{Lat: 52.0, Lon: 4.4}},
		Targets: []Point{{Lat: 1.25, Lon: 103.9}},
	}

	result, err := Dispatch(engine, req)
	require.NoError(t, err)

	require.Len(t, result.PortSnaps, 2)
	assert.Equal(t, "NLRTM", result.PortSnaps[0].Unlocode)
	assert.Equal(t, "SGSIN", result.PortSnaps[1].Unlocode)

	require.Len(t, result.Cells, 1)
	assert.True(t, result.Cells[0].Found)
	assert.Equal(t, 13_000_000.0, result.Cells[0].DistanceM)
	assert.Greater(t, result.Cells[0].TimeMs, 0.0)
}

func TestDispatchExcludingSuezMakesRouteUnreachable(t *testing.T) {
	g, idx := testSeaGraph()
	ports := port.NewSnapper(testPorts())
	registry := chokepoint.NewRegistry()
	registry.Add(chokepoint.Chokepoint{ID: "SUEZ", NodeIDs: map[int]bool{1: true}})

	engine := NewSeaEngine(g, idx, ports, registry)

	req := SeaMatrixRequest{
		Sources:             []Point{{Lat: 52.0, Lon: 4.4}},
		Targets:             []Point{{Lat: 1.25, Lon: 103.9}},
		ExcludedChokepoints: []string{"SUEZ"},
	}

	result, err := Dispatch(engine, req)
	require.NoError(t, err)
	require.Len(t, result.Cells, 1)
	assert.False(t, result.Cells[0].Found)
	assert.Equal(t, []string{"SUEZ"}, result.ExcludedChokepoints)
}

func TestDispatchCanonicalizesExcludedChokepoints(t *testing.T) {
	g, idx := testSeaGraph()
	ports := port.NewSnapper(testPorts())
	registry := chokepoint.NewRegistry()
	registry.Add(chokepoint.Chokepoint{ID: "SUEZ", NodeIDs: map[int]bool{1: true}})

	engine := NewSeaEngine(g, idx, ports, registry)

	req := SeaMatrixRequest{
		Sources:             []Point{{Lat: 52.0, Lon: 4.4}},
		Targets:             []Point{{Lat: 1.25, Lon: 103.9}},
		ExcludedChokepoints: []string{"SUEZ", "NOT_A_REAL_CHOKEPOINT", "SUEZ"},
	}

	result, err := Dispatch(engine, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"SUEZ"}, result.ExcludedChokepoints)
}

func TestDispatchFailsWhenPortSnapOutOfRange(t *testing.T) {
	g, idx := testSeaGraph()
	ports := port.NewSnapperWithThreshold(testPorts(), 1.0)
	registry := chokepoint.NewRegistry()
	engine := NewSeaEngine(g, idx, ports, registry)

	req := SeaMatrixRequest{
		Sources: []Point{{Lat: 0, Lon: 0}},
		Targets: []Point{{Lat: 1.25, Lon: 103.9}},
	}

	_, err := Dispatch(engine, req)
	assert.Error(t, err)
}
