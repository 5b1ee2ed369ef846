package dispatch

import "github.com/dynop/routing-service/pkg/sea/chokepoint"

// EdgeFilter excludes sets of sea-graph nodes from routing without
// mutating the graph, grounded on ChokepointAwareEdgeFilter from the
// original source. It holds no routing state beyond the excluded id
// set; a registry is consulted once at construction time, never held
// as a back-reference.
type EdgeFilter struct {
	excluded map[int]bool
}

// AcceptAllFilter returns a filter that rejects nothing, the Go
// equivalent of ChokepointAwareEdgeFilter.acceptAll().
func AcceptAllFilter() EdgeFilter {
	return EdgeFilter{}
}

// NewEdgeFilterFromNodeIDs builds a filter directly from an explicit
// excluded node id set.
func NewEdgeFilterFromNodeIDs(excluded map[int]bool) EdgeFilter {
	return EdgeFilter{excluded: excluded}
}

// NewEdgeFilterFromChokepoints builds a filter from a list of
// chokepoint ids resolved against registry, via
// Registry.ExcludedNodeIDs's union-with-ignore-unknown semantics.
func NewEdgeFilterFromChokepoints(excludedChokepointIDs []string, registry *chokepoint.Registry) EdgeFilter {
	if registry == nil || len(excludedChokepointIDs) == 0 {
		return AcceptAllFilter()
	}
	return EdgeFilter{excluded: registry.ExcludedNodeIDs(excludedChokepointIDs)}
}

// Accept reports whether the edge between u and v may be traversed: it
// always accepts when the filter is empty, and otherwise accepts iff
// neither endpoint is excluded.
func (f EdgeFilter) Accept(u, v int) bool {
	if len(f.excluded) == 0 {
		return true
	}
	return !f.excluded[u] && !f.excluded[v]
}

// RejectsNode reports whether a single node is excluded, used by the
// sea-node snapper to skip candidate nodes before they ever reach
// Dijkstra.
func (f EdgeFilter) RejectsNode(node int) bool {
	if len(f.excluded) == 0 {
		return false
	}
	return f.excluded[node]
}
