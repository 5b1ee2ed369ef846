package dispatch

import (
	"testing"

	"github.com/dynop/routing-service/pkg/sea/chokepoint"
	"github.com/stretchr/testify/assert"
)

func TestAcceptAllFilterAcceptsEverything(t *testing.T) {
	f := AcceptAllFilter()
	assert.True(t, f.Accept(1, 2))
	assert.True(t, f.Accept(100, 200))
	assert.False(t, f.RejectsNode(100))
}

// S5 from the testable-properties scenarios: SUEZ -> {100,101,102},
// PANAMA -> {200,201}; excluding both rejects any edge touching either
// set and accepts an edge touching neither.
func TestEdgeFilterFromChokepointsRejectsExcludedEndpoints(t *testing.T) {
	registry := chokepoint.NewRegistry()
	registry.Add(chokepoint.Chokepoint{ID: "SUEZ", NodeIDs: map[int]bool{100: true, 101: true, 102: true}})
	registry.Add(chokepoint.Chokepoint{ID: "PANAMA", NodeIDs: map[int]bool{200: true, 201: true}})

	f := NewEdgeFilterFromChokepoints([]string{"SUEZ", "PANAMA"}, registry)

	assert.False(t, f.Accept(101, 50))
	assert.False(t, f.Accept(50, 200))
	assert.True(t, f.Accept(50, 60))
}

func TestEdgeFilterFromChokepointsEmptyListAcceptsAll(t *testing.T) {
	registry := chokepoint.NewRegistry()
	registry.Add(chokepoint.Chokepoint{ID: "SUEZ", NodeIDs: map[int]bool{100: true}})

	f := NewEdgeFilterFromChokepoints(nil, registry)
	assert.True(t, f.Accept(100, 101))
}

func TestEdgeFilterFromNodeIDsDirect(t *testing.T) {
	f := NewEdgeFilterFromNodeIDs(map[int]bool{7: true})
	assert.False(t, f.Accept(7, 9))
	assert.True(t, f.RejectsNode(7))
	assert.False(t, f.RejectsNode(8))
}
