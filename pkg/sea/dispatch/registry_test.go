package dispatch

import (
	"errors"
	"testing"

	"github.com/dynop/routing-service/pkg/sea/chokepoint"
	"github.com/dynop/routing-service/pkg/sea/port"
	"github.com/dynop/routing-service/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutingEngineRegistryFailsSeaModeWhenUnconfigured(t *testing.T) {
	registry := NewRoutingEngineRegistry(nil, nil)

	assert.False(t, registry.HasSeaEngine())
	_, err := registry.SeaEngineFor(ModeSea)
	require.Error(t, err)
	var serr *server.Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, server.ErrSeaRoutingUnavailable, serr.Code())
}

func TestRoutingEngineRegistryRejectsSeaEngineForRoadMode(t *testing.T) {
	g, idx := testSeaGraph()
	ports := port.NewSnapper(testPorts())
	sea := NewSeaEngine(g, idx, ports, chokepoint.NewRegistry())

	registry := NewRoutingEngineRegistry(nil, sea)
	assert.True(t, registry.HasSeaEngine())

	_, err := registry.SeaEngineFor(ModeRoad)
	assert.Error(t, err)
}

func TestNewSeaEngineWithMaxSnapDistanceAppliesThreshold(t *testing.T) {
	g, idx := testSeaGraph()
	ports := port.NewSnapper(testPorts())
	sea := NewSeaEngineWithMaxSnapDistance(g, idx, ports, chokepoint.NewRegistry(), 1.0)

	// Rotterdam node sits at (51.9, 4.5); a query far enough away that
	// even the nearest graph node exceeds a 1m threshold must fail.
	_, err := sea.FindClosest(10.0, 10.0, AcceptAllFilter())
	require.Error(t, err)
}

func TestRoutingEngineRegistryReturnsConfiguredSeaEngine(t *testing.T) {
	g, idx := testSeaGraph()
	ports := port.NewSnapper(testPorts())
	sea := NewSeaEngine(g, idx, ports, chokepoint.NewRegistry())

	registry := NewRoutingEngineRegistry(nil, sea)
	got, err := registry.SeaEngineFor(ModeSea)
	require.NoError(t, err)
	assert.Same(t, sea, got)
}
