package chokepoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcludedNodeIDsUnionAndIgnoreUnknown(t *testing.T) {
	// S5 setup
	r := NewRegistry()
	r.Add(Chokepoint{ID: "SUEZ", NodeIDs: map[int]bool{100: true, 101: true, 102: true}})
	r.Add(Chokepoint{ID: "PANAMA", NodeIDs: map[int]bool{200: true, 201: true}})

	excluded := r.ExcludedNodeIDs([]string{"SUEZ", "PANAMA", "NOT_A_CHOKEPOINT"})

	assert.True(t, excluded[100])
	assert.True(t, excluded[101])
	assert.True(t, excluded[102])
	assert.True(t, excluded[200])
	assert.True(t, excluded[201])
	assert.False(t, excluded[300])
}

func TestExcludedNodeIDsEmptyAndNil(t *testing.T) {
	r := NewRegistry()
	r.Add(Chokepoint{ID: "SUEZ", NodeIDs: map[int]bool{100: true}})

	assert.Empty(t, r.ExcludedNodeIDs(nil))
	assert.Empty(t, r.ExcludedNodeIDs([]string{}))
}

func TestCanonicalIDsDropsUnknownDedupesAndSorts(t *testing.T) {
	r := NewRegistry()
	r.Add(Chokepoint{ID: "SUEZ"})
	r.Add(Chokepoint{ID: "PANAMA"})

	got := r.CanonicalIDs([]string{"PANAMA", "NOT_A_CHOKEPOINT", "SUEZ", "PANAMA"})
	assert.Equal(t, []string{"PANAMA", "SUEZ"}, got)
}

func TestCanonicalIDsEmptyInput(t *testing.T) {
	r := NewRegistry()
	r.Add(Chokepoint{ID: "SUEZ"})

	assert.Empty(t, r.CanonicalIDs(nil))
}

func TestAddReplacesExistingID(t *testing.T) {
	r := NewRegistry()
	r.Add(Chokepoint{ID: "SUEZ", Name: "first"})
	r.Add(Chokepoint{ID: "SUEZ", Name: "second"})

	assert.Equal(t, 1, r.Size())
	c, ok := r.Get("SUEZ")
	require.True(t, ok)
	assert.Equal(t, "second", c.Name)
}

func TestGetUnknownID(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Get("UNKNOWN")
	assert.False(t, ok)
}

func TestRoundTripsChokepointData(t *testing.T) {
	// S6
	r := NewRegistry()
	r.Add(Chokepoint{ID: "SUEZ", Name: "Suez Canal", Lat: 30.585, Lon: 32.265, NodeIDs: map[int]bool{100: true, 101: true, 102: true}})
	r.Add(Chokepoint{ID: "PANAMA", Name: "Panama Canal", Lat: 9.08, Lon: -79.68, NodeIDs: map[int]bool{200: true, 201: true}})

	path := filepath.Join(t.TempDir(), "chokepoints.json")
	require.NoError(t, r.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 2, loaded.Size())

	suez, ok := loaded.Get("SUEZ")
	require.True(t, ok)
	assert.Equal(t, "Suez Canal", suez.Name)
	assert.ElementsMatch(t, []int{100, 101, 102}, suez.NodeIDSlice())

	panama, ok := loaded.Get("PANAMA")
	require.True(t, ok)
	assert.ElementsMatch(t, []int{200, 201}, panama.NodeIDSlice())
}

func TestLoadFromOptionalFieldsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.json")
	contents := `{"chokepoints":[{"id":"SUEZ","lat":30.5,"lon":32.3}]}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	r, err := LoadFrom(path)
	require.NoError(t, err)

	c, ok := r.Get("SUEZ")
	require.True(t, ok)
	assert.Equal(t, "", c.Region)
	assert.Equal(t, 0.0, c.RadiusDegrees)
	assert.Equal(t, 0.0, c.StepDegrees)
	assert.Empty(t, c.NodeIDs)
}
