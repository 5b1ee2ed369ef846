package chokepoint

import (
	"encoding/json"
	"os"

	"golang.org/x/exp/slices"

	"github.com/dynop/routing-service/pkg/server"
)

// Registry is a read-only-after-build, id-keyed set of chokepoints.
// Adding an id that already exists replaces the previous value.
type Registry struct {
	byID map[string]Chokepoint
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Chokepoint)}
}

// Add inserts or replaces a chokepoint by id.
func (r *Registry) Add(c Chokepoint) {
	r.byID[c.ID] = c
}

// Size returns the number of chokepoints in the registry.
func (r *Registry) Size() int {
	return len(r.byID)
}

// Get returns the chokepoint with the given id, or the zero value and
// false if it is not known.
func (r *Registry) Get(id string) (Chokepoint, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// ExcludedNodeIDs returns the union of NodeIDs over every known
// chokepoint in ids. Unknown ids are silently ignored; a nil or empty
// slice yields an empty set.
func (r *Registry) ExcludedNodeIDs(ids []string) map[int]bool {
	out := make(map[int]bool)
	for _, id := range ids {
		c, ok := r.byID[id]
		if !ok {
			continue
		}
		for nodeID := range c.NodeIDs {
			out[nodeID] = true
		}
	}
	return out
}

// CanonicalIDs returns the subset of ids known to the registry,
// deduplicated and sorted, for echoing a request's chokepoint
// exclusions back to the caller with unknown ids dropped.
func (r *Registry) CanonicalIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := r.byID[id]; ok {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// jsonFile and jsonChokepoint mirror the chokepoint_metadata.json
// schema documented in the external-interfaces section: fields other
// than id and coordinates are optional on load.
type jsonFile struct {
	Chokepoints []jsonChokepoint `json:"chokepoints"`
}

type jsonChokepoint struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	Region        string `json:"region,omitempty"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	RadiusDegrees float64 `json:"radiusDegrees,omitempty"`
	StepDegrees   float64 `json:"stepDegrees,omitempty"`
	NodeIDs       []int   `json:"nodeIds,omitempty"`
}

// LoadFrom parses a chokepoint metadata JSON file into a new
// Registry.
func LoadFrom(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrIO, "reading chokepoint metadata %s", path)
	}

	var f jsonFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, server.WrapErrorf(err, server.ErrIO, "parsing chokepoint metadata %s", path)
	}

	r := NewRegistry()
	for _, jc := range f.Chokepoints {
		nodeIDs := make(map[int]bool, len(jc.NodeIDs))
		for _, id := range jc.NodeIDs {
			nodeIDs[id] = true
		}
		r.Add(Chokepoint{
			ID:            jc.ID,
			Name:          jc.Name,
			Region:        jc.Region,
			Lat:           jc.Lat,
			Lon:           jc.Lon,
			RadiusDegrees: jc.RadiusDegrees,
			StepDegrees:   jc.StepDegrees,
			NodeIDs:       nodeIDs,
			Enabled:       true,
		})
	}
	return r, nil
}

// SaveTo writes the registry back to path in the same schema LoadFrom
// reads, in ascending id order for deterministic output.
func (r *Registry) SaveTo(path string) error {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	f := jsonFile{Chokepoints: make([]jsonChokepoint, 0, len(ids))}
	for _, id := range ids {
		c := r.byID[id]
		f.Chokepoints = append(f.Chokepoints, jsonChokepoint{
			ID:            c.ID,
			Name:          c.Name,
			Region:        c.Region,
			Lat:           c.Lat,
			Lon:           c.Lon,
			RadiusDegrees: c.RadiusDegrees,
			StepDegrees:   c.StepDegrees,
			NodeIDs:       c.NodeIDSlice(),
		})
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return server.WrapErrorf(err, server.ErrIO, "encoding chokepoint metadata")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return server.WrapErrorf(err, server.ErrIO, "writing chokepoint metadata %s", path)
	}
	return nil
}
