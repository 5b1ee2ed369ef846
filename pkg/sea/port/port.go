// Package port loads the UN/LOCODE seaport registry and resolves
// arbitrary coordinates to the nearest known seaport.
package port

import "strings"

// Role distinguishes the two ends of a maritime leg. The snap policy
// is identical for both; the role is carried only for diagnostics and
// response composition.
type Role string

const (
	RolePortOfLoading    Role = "PORT_OF_LOADING"
	RolePortOfDischarge  Role = "PORT_OF_DISCHARGE"
)

// ValidStatuses is the closed set of UN/LOCODE status codes this
// registry accepts.
var ValidStatuses = map[string]bool{
	"AA": true,
	"AC": true,
	"AF": true,
	"AI": true,
	"AS": true,
	"RL": true,
}

// Port is an immutable UN/LOCODE seaport record. Equality and map
// identity are by Unlocode alone.
type Port struct {
	Unlocode     string
	Name         string
	CountryCode  string
	Subdivision  string
	Lat          float64
	Lon          float64
	Function     string
	Status       string
}

// IsMajorPort reports whether at least 3 of the 8 function
// characters are not the placeholder '-'.
func (p Port) IsMajorPort() bool {
	n := 0
	for _, c := range p.Function {
		if c != '-' {
			n++
		}
	}
	return n >= 3
}

// HasRail reports function position 1 (0-indexed) == '2'.
func (p Port) HasRail() bool { return functionCharIs(p.Function, 1, '2') }

// HasRoad reports function position 2 (0-indexed) == '3'.
func (p Port) HasRoad() bool { return functionCharIs(p.Function, 2, '3') }

// HasAirport reports function position 3 (0-indexed) == '4'.
func (p Port) HasAirport() bool { return functionCharIs(p.Function, 3, '4') }

func functionCharIs(function string, pos int, want byte) bool {
	if len(function) <= pos {
		return false
	}
	return function[pos] == want
}

// IsSeaport reports function position 0 (0-indexed) == '1', the
// filter predicate's defining condition for a UN/LOCODE record to be
// treated as a seaport at all.
func (p Port) IsSeaport() bool { return functionCharIs(p.Function, 0, '1') }

func normalizeUnlocode(countryCode, locationCode string) string {
	return strings.ToUpper(strings.TrimSpace(countryCode) + strings.TrimSpace(locationCode))
}
