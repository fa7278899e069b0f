package transform

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/graph"
	"github.com/katalvlaran/peirce/hierarchy"
)

// LegalTransformations enumerates, per rule, the structurally eligible
// target sets that also pass the cross-cut pre-flight. Passing a focus
// context restricts enumeration to it; an empty focus covers the whole
// graph. Pure function of the graph value: equal graphs yield equal maps.
//
// For Insertion the target set holds the eligible context ID itself, since
// insertion takes a destination, not existing items. Enumeration per rule is
// capped by WithMaxEnumeration when set.
// Complexity: bounded by O(items·contexts) plus the matcher for Deiteration.
func (e *Engine) LegalTransformations(g graph.Graph, focus core.ContextID) (map[Rule][]TargetSet, error) {
	var contexts []core.ContextID
	if focus == "" {
		contexts = g.Contexts().IDs()
	} else {
		if !g.Contexts().Has(focus) {
			return nil, fmt.Errorf("legal transformations: focus %q: %w", focus, hierarchy.ErrContextNotFound)
		}
		contexts = []core.ContextID{focus}
	}

	out := make(map[Rule][]TargetSet)
	admit := func(rule Rule, ts TargetSet, target core.ContextID) {
		if e.opts.MaxEnumeration > 0 && len(out[rule]) >= e.opts.MaxEnumeration {
			return
		}
		if len(e.v.ValidateTransformationConstraints(g, rule.String(), ts, target)) == 0 {
			out[rule] = append(out[rule], ts)
		}
	}

	// Double cut insertion: any focused context with content can be wrapped.
	for _, ctx := range contexts {
		items := sortedItems(g, ctx)
		if len(items) > 0 {
			admit(DoubleCutInsertion, items, ctx)
		}
	}

	// Double cut erasure: contexts matching the double-cut pattern.
	for _, ctx := range contexts {
		if doubleCutPattern(g, ctx) {
			admit(DoubleCutErasure, NewTargetSet(core.ItemID(ctx)), ctx)
		}
	}

	// Erasure: single items in negative contexts.
	for _, ctx := range contexts {
		if core.PolarityOf(g.Contexts().Depth(ctx)) != core.Negative {
			continue
		}
		for _, item := range sortedItems(g, ctx) {
			admit(Erasure, NewTargetSet(item), ctx)
		}
	}

	// Insertion: positive contexts are eligible destinations.
	for _, ctx := range contexts {
		if core.PolarityOf(g.Contexts().Depth(ctx)) == core.Positive {
			admit(Insertion, NewTargetSet(core.ItemID(ctx)), ctx)
		}
	}

	// Iteration: predicates with at least one same-or-deeper destination.
	for _, pid := range g.PredicateIDs() {
		src, ok := g.ContainerOf(core.ItemID(pid))
		if !ok {
			continue
		}
		for _, ctx := range contexts {
			if ctx != src && g.Contexts().Depth(ctx) >= g.Contexts().Depth(src) {
				admit(Iteration, NewTargetSet(core.ItemID(pid)), ctx)
				break
			}
		}
	}

	// Deiteration: predicates with an accessible isomorphic partner.
	for _, pid := range g.PredicateIDs() {
		ts := NewTargetSet(core.ItemID(pid))
		if _, ok := findIsomorphicMatch(g, ts); ok {
			admit(Deiteration, ts, "")
		}
	}

	// Entity join: pairs of entities sharing a name (same line candidates).
	for _, group := range entitiesByName(g) {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				admit(EntityJoin, NewTargetSet(core.ItemID(group[i]), core.ItemID(group[j])), "")
			}
		}
	}

	// Entity sever: entities shared by more than one predicate.
	for _, eid := range g.EntityIDs() {
		if len(g.PredicatesReferencing(eid)) > 1 {
			admit(EntitySever, NewTargetSet(core.ItemID(eid)), "")
		}
	}

	return out, nil
}

// sortedItems returns the direct items of ctx as a sorted TargetSet.
func sortedItems(g graph.Graph, ctx core.ContextID) TargetSet {
	items := g.ItemsIn(ctx)
	out := make(TargetSet, 0, len(items))
	for item := range items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// entitiesByName groups entity IDs by display name, names sorted.
func entitiesByName(g graph.Graph) [][]core.EntityID {
	byName := make(map[string][]core.EntityID)
	for _, eid := range g.EntityIDs() {
		e, _ := g.Entity(eid)
		byName[e.Name] = append(byName[e.Name], eid)
	}
	names := make([]string, 0, len(byName))
	for name, group := range byName {
		if len(group) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([][]core.EntityID, 0, len(names))
	for _, name := range names {
		out = append(out, byName[name])
	}
	return out
}
