package transform

import (
	"sort"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/graph"
)

// findIsomorphicMatch looks for a copy of the target subgraph among the
// non-target items of accessible contexts (the targets' common context and
// its ancestors). Matching is deterministic signature matching, not full
// subgraph isomorphism: entities match on (name, kind, properties),
// predicates on (name, kind, arity, entity names in tuple order, properties).
// Each target needs a distinct partner.
func findIsomorphicMatch(g graph.Graph, targets TargetSet) (TargetSet, bool) {
	ctx := commonContext(g, targets)
	if ctx == "" {
		return nil, false
	}

	// Candidate pool: items of the common context and every enclosing one.
	var pool []core.ItemID
	for _, ancestor := range g.Contexts().Path(ctx) {
		for item := range g.ItemsIn(ancestor) {
			if !targets.Contains(item) {
				pool = append(pool, item)
			}
		}
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i] < pool[j] })

	used := make(map[core.ItemID]struct{}, len(targets))
	match := make(TargetSet, 0, len(targets))
	for _, target := range targets {
		found := false
		for _, candidate := range pool {
			if _, taken := used[candidate]; taken {
				continue
			}
			if itemsMatch(g, target, candidate) {
				used[candidate] = struct{}{}
				match = append(match, candidate)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return match, true
}

// itemsMatch compares two items of the same kind by structural signature.
func itemsMatch(g graph.Graph, a, b core.ItemID) bool {
	if ea, ok := g.Entity(core.EntityID(a)); ok {
		eb, ok := g.Entity(core.EntityID(b))
		return ok && ea.Name == eb.Name && ea.Kind == eb.Kind &&
			cmp.Equal(ea.Properties, eb.Properties)
	}
	if pa, ok := g.Predicate(core.PredicateID(a)); ok {
		pb, ok := g.Predicate(core.PredicateID(b))
		return ok && pa.Name == pb.Name && pa.Kind == pb.Kind &&
			pa.Arity() == pb.Arity() &&
			cmp.Equal(tupleNames(g, pa), tupleNames(g, pb)) &&
			cmp.Equal(pa.Properties, pb.Properties)
	}
	return false
}

// tupleNames resolves a predicate's tuple to entity names in tuple order.
// The tuple is ordered (argument positions matter), so the matcher compares
// positions, not name multisets.
func tupleNames(g graph.Graph, p core.Predicate) []string {
	out := make([]string, 0, len(p.Entities))
	for _, eid := range p.Entities {
		if e, ok := g.Entity(eid); ok {
			out = append(out, e.Name)
		}
	}
	return out
}
