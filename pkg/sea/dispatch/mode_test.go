package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModeDefaultsToRoad(t *testing.T) {
	assert.Equal(t, ModeRoad, ParseMode(""))
	assert.Equal(t, ModeRoad, ParseMode("road"))
	assert.Equal(t, ModeRoad, ParseMode("bogus"))
}

func TestParseModeRecognizesSeaCaseInsensitively(t *testing.T) {
	assert.Equal(t, ModeSea, ParseMode("sea"))
	assert.Equal(t, ModeSea, ParseMode("SEA"))
	assert.Equal(t, ModeSea, ParseMode("  Sea  "))
}

func TestModeStringRoundTrips(t *testing.T) {
	assert.Equal(t, "road", ModeRoad.String())
	assert.Equal(t, "sea", ModeSea.String())
}
