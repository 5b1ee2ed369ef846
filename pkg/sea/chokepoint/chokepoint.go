// Package chokepoint holds maritime chokepoint definitions (Suez,
// Panama, Malacca, ...) and the registry that maps them to sea-lane
// graph node sets for query-time exclusion.
package chokepoint

import "golang.org/x/exp/slices"

// Chokepoint is an immutable record identified by a stable id such as
// "SUEZ" or "PANAMA". NodeIDs is empty before the graph is built and
// populated once the builder tags graph nodes against it; replacing
// NodeIDs produces a new Chokepoint rather than mutating this one.
type Chokepoint struct {
	ID            string
	Name          string
	Region        string
	Lat           float64
	Lon           float64
	RadiusDegrees float64
	StepDegrees   float64
	NodeIDs       map[int]bool
	Enabled       bool
}

// WithNodeIDs returns a copy of c with NodeIDs replaced.
func (c Chokepoint) WithNodeIDs(nodeIDs map[int]bool) Chokepoint {
	c.NodeIDs = cloneNodeIDs(nodeIDs)
	return c
}

func cloneNodeIDs(src map[int]bool) map[int]bool {
	out := make(map[int]bool, len(src))
	for id := range src {
		out[id] = true
	}
	return out
}

// NodeIDSlice returns NodeIDs as a sorted slice, for JSON
// serialization and deterministic test assertions.
func (c Chokepoint) NodeIDSlice() []int {
	out := make([]int, 0, len(c.NodeIDs))
	for id := range c.NodeIDs {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// MandatoryCatalog is the hard-coded list of eight chokepoints every
// sea-lane graph build densifies around, in catalog order (catalog
// order breaks ties when a primary-grid waypoint is near more than
// one chokepoint).
var MandatoryCatalog = []Chokepoint{
	{ID: "SUEZ", Name: "Suez Canal", Region: "AFRICA", Lat: 30.8123, Lon: 32.3179, RadiusDegrees: 2.0, StepDegrees: 0.5, Enabled: true},
	{ID: "PANAMA", Name: "Panama Canal", Region: "AMERICAS", Lat: 9.0832, Lon: -79.6776, RadiusDegrees: 2.0, StepDegrees: 0.5, Enabled: true},
	{ID: "MALACCA", Name: "Strait of Malacca", Region: "ASIA", Lat: 2.5, Lon: 101.0, RadiusDegrees: 3.0, StepDegrees: 0.5, Enabled: true},
	{ID: "GIBRALTAR", Name: "Strait of Gibraltar", Region: "EUROPE", Lat: 35.9429, Lon: -5.6147, RadiusDegrees: 2.0, StepDegrees: 0.5, Enabled: true},
	{ID: "BOSPHORUS", Name: "Bosphorus Strait", Region: "EUROPE", Lat: 41.0976, Lon: 29.0606, RadiusDegrees: 2.0, StepDegrees: 0.5, Enabled: true},
	{ID: "CAPE_GOOD_HOPE", Name: "Cape of Good Hope", Region: "AFRICA", Lat: -34.3532, Lon: 18.2282, RadiusDegrees: 3.0, StepDegrees: 1.0, Enabled: true},
	{ID: "BAB_EL_MANDEB", Name: "Bab-el-Mandeb", Region: "AFRICA", Lat: 12.6, Lon: 43.3, RadiusDegrees: 2.0, StepDegrees: 0.5, Enabled: true},
	{ID: "HORMUZ", Name: "Strait of Hormuz", Region: "ASIA", Lat: 26.5, Lon: 56.3, RadiusDegrees: 2.0, StepDegrees: 0.5, Enabled: true},
}
