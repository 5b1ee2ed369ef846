package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantLat float64
		wantLon float64
		wantOK  bool
	}{
		{"rotterdam", "5155N 00430E", 51.9167, 4.5, true},
		{"zero", "0000N 00000E", 0.0, 0.0, true},
		{"south west", "1830S 17926W", -18.5, -179.4333, true},
		{"lowercase hemisphere", "5155n 00430e", 51.9167, 4.5, true},
		{"extra whitespace", "  5155N    00430E  ", 51.9167, 4.5, true},
		{"out of range minutes and degrees", "9999N 99999E", 0, 0, false},
		{"empty", "", 0, 0, false},
		{"blank", "   ", 0, 0, false},
		{"single token", "5155N", 0, 0, false},
		{"too many tokens", "5155N 00430E extra", 0, 0, false},
		{"bad hemisphere", "5155X 00430E", 0, 0, false},
		{"non digit", "51AAN 00430E", 0, 0, false},
		{"wrong lat length", "515N 00430E", 0, 0, false},
		{"wrong lon length", "5155N 0430E", 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.InDelta(t, tc.wantLat, got.Lat, 0.001)
				assert.InDelta(t, tc.wantLon, got.Lon, 0.001)
			}
		})
	}
}

func TestParseBoundary(t *testing.T) {
	got, ok := Parse("0000N 00000E")
	assert.True(t, ok)
	assert.Equal(t, Coordinate{Lat: 0, Lon: 0}, got)

	_, ok = Parse("9999N 99999E")
	assert.False(t, ok)
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{"", " ", "N", "\t\n", "99999999999999999999999 X", "5155N 00430"}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			Parse(in)
		})
	}
}
