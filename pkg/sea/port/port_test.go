package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortPredicates(t *testing.T) {
	p := Port{Unlocode: "NLRTM", Function: "1-3-5---"}
	assert.True(t, p.IsSeaport())
	assert.True(t, p.HasRoad())
	assert.False(t, p.HasRail())
	assert.False(t, p.HasAirport())
	assert.True(t, p.IsMajorPort()) // positions 0, 2 and 4 are non-dash

	minor := Port{Function: "1-------"}
	assert.False(t, minor.IsMajorPort())
}
