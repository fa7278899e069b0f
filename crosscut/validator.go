package crosscut

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/graph"
)

// Validator performs cross-cut analysis. Stateless; the zero value is ready.
type Validator struct{}

// reach accumulates the contexts and predicates touching one entity.
type reach struct {
	direct   map[core.ContextID]struct{} // via own placement or predicate membership
	full     map[core.ContextID]struct{} // direct closed over ligature joins
	involved map[core.PredicateID]struct{}
}

// AnalyzeCrossCuts computes the context-reachability of every entity and
// returns one Info per entity reachable from more than one context, sorted
// by entity ID.
// Complexity: O(P·arity + E·L) where L is the number of ligature rounds.
func (v Validator) AnalyzeCrossCuts(g graph.Graph) []Info {
	reaches := v.buildReachability(g)

	var out []Info
	for _, eid := range g.EntityIDs() {
		r, ok := reaches[eid]
		if !ok || len(r.full) < 2 {
			continue
		}
		out = append(out, Info{
			Entity:     eid,
			Kind:       v.classify(g, r),
			Contexts:   r.full,
			DepthSpan:  depthSpan(g, r.full),
			Predicates: r.involved,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Entity < out[j].Entity })
	return out
}

// buildReachability maps every entity to the contexts that reach it.
// Stage 1 records direct reachability: the entity's own containing context
// and the containing context of every predicate whose tuple holds it.
// Stage 2 closes the mapping over ligature groups until fixpoint.
func (v Validator) buildReachability(g graph.Graph) map[core.EntityID]*reach {
	reaches := make(map[core.EntityID]*reach, g.EntityCount())
	at := func(eid core.EntityID) *reach {
		r, ok := reaches[eid]
		if !ok {
			r = &reach{
				direct:   make(map[core.ContextID]struct{}),
				full:     make(map[core.ContextID]struct{}),
				involved: make(map[core.PredicateID]struct{}),
			}
			reaches[eid] = r
		}
		return r
	}

	// 1a. Own placement.
	for _, eid := range g.EntityIDs() {
		if ctx, ok := g.ContainerOf(core.ItemID(eid)); ok {
			at(eid).direct[ctx] = struct{}{}
		}
	}

	// 1b. Predicate membership.
	for _, pid := range g.PredicateIDs() {
		p, _ := g.Predicate(pid)
		ctx, ok := g.ContainerOf(core.ItemID(pid))
		if !ok {
			continue
		}
		for _, eid := range p.Entities {
			r := at(eid)
			r.direct[ctx] = struct{}{}
			r.involved[pid] = struct{}{}
		}
	}

	for _, r := range reaches {
		for ctx := range r.direct {
			r.full[ctx] = struct{}{}
		}
	}

	// 2. Ligature closure: members of one join group share reachability.
	groups := make(map[any][]core.EntityID)
	for _, eid := range g.EntityIDs() {
		e, _ := g.Entity(eid)
		if lig, ok := e.Property(LigatureProperty); ok {
			groups[lig] = append(groups[lig], eid)
		}
	}
	for changed := true; changed; {
		changed = false
		for _, members := range groups {
			union := make(map[core.ContextID]struct{})
			for _, eid := range members {
				for ctx := range at(eid).full {
					union[ctx] = struct{}{}
				}
			}
			for _, eid := range members {
				r := at(eid)
				for ctx := range union {
					if _, ok := r.full[ctx]; !ok {
						r.full[ctx] = struct{}{}
						changed = true
					}
				}
			}
		}
	}

	return reaches
}

// classify determines the crossing kind of one reachability record.
func (v Validator) classify(g graph.Graph, r *reach) Kind {
	if len(r.direct) < 2 {
		// Plural reachability exists only through the join.
		return LigatureCross
	}
	if isChain(g, r.full) {
		return NestedCross
	}
	if len(r.full) == 2 {
		return SimpleCross
	}
	return MultiCross
}

// isChain reports whether every pair in the context set is ancestor-related.
func isChain(g graph.Graph, ctxs map[core.ContextID]struct{}) bool {
	ids := sortedContexts(ctxs)
	m := g.Contexts()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if !m.IsAncestor(ids[i], ids[j]) && !m.IsAncestor(ids[j], ids[i]) {
				return false
			}
		}
	}
	return true
}

// depthSpan returns max depth minus min depth over the context set.
func depthSpan(g graph.Graph, ctxs map[core.ContextID]struct{}) int {
	minD, maxD := -1, -1
	for ctx := range ctxs {
		d := g.Contexts().Depth(ctx)
		if minD == -1 || d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}
	if minD == -1 {
		return 0
	}
	return maxD - minD
}

// mixesPolarity reports whether the context set holds both parities.
func mixesPolarity(g graph.Graph, ctxs map[core.ContextID]struct{}) bool {
	var pos, neg bool
	for ctx := range ctxs {
		if core.PolarityOf(g.Contexts().Depth(ctx)) == core.Negative {
			neg = true
		} else {
			pos = true
		}
	}
	return pos && neg
}

// sortedContexts returns the set as a sorted slice.
func sortedContexts(ctxs map[core.ContextID]struct{}) []core.ContextID {
	out := make([]core.ContextID, 0, len(ctxs))
	for ctx := range ctxs {
		out = append(out, ctx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidateIdentityPreservation checks every cross-cut for scope equivocation:
// a line of identity reaching contexts of both polarities without a nesting
// chain between them is simultaneously bound in incompatible scopes.
// Vacuously preserved on graphs without cross-cuts.
func (v Validator) ValidateIdentityPreservation(g graph.Graph) IdentityReport {
	crossCuts := v.AnalyzeCrossCuts(g)
	report := IdentityReport{CrossCuts: crossCuts}

	for _, cc := range crossCuts {
		if cc.Kind != NestedCross && mixesPolarity(g, cc.Contexts) {
			report.Violations = append(report.Violations, fmt.Sprintf(
				"entity %s is reached from contexts of mixed polarity without nesting (%s)",
				cc.Entity, cc.Kind))
			continue
		}
		if cc.DepthSpan > 2 {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"entity %s spans %d cut levels", cc.Entity, cc.DepthSpan))
		}
	}

	report.IsPreserved = len(report.Violations) == 0
	return report
}

// Transformation names understood by ValidateTransformationConstraints.
// They mirror the engine's rule names; unknown names yield no constraints.
const (
	RuleErasure          = "erasure"
	RuleDeiteration      = "deiteration"
	RuleEntityJoin       = "entity_join"
	RuleEntitySever      = "entity_sever"
	RuleIteration        = "iteration"
	RuleInsertion        = "insertion"
	RuleDoubleCutInsert  = "double_cut_insertion"
	RuleDoubleCutErasure = "double_cut_erasure"
)

// ValidateTransformationConstraints is the pre-flight check run before a
// transformation mutates the graph. It returns one message per rewrite that
// would break identity continuity; an empty slice means the rewrite is safe.
func (v Validator) ValidateTransformationConstraints(g graph.Graph, rule string, targets []core.ItemID, target core.ContextID) []string {
	crossCut := make(map[core.EntityID]Info)
	for _, cc := range v.AnalyzeCrossCuts(g) {
		crossCut[cc.Entity] = cc
	}
	if len(crossCut) == 0 {
		return nil
	}

	targetSet := make(map[core.ItemID]struct{}, len(targets))
	for _, t := range targets {
		targetSet[t] = struct{}{}
	}

	sorted := make([]core.ItemID, len(targets))
	copy(sorted, targets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var violations []string
	switch rule {
	case RuleErasure, RuleDeiteration:
		// Removing every predicate that binds a cross-cut entity would leave
		// the remote references dangling over nothing.
		for _, t := range sorted {
			p, ok := g.Predicate(core.PredicateID(t))
			if !ok {
				continue
			}
			for _, eid := range p.Entities {
				if _, crossing := crossCut[eid]; !crossing {
					continue
				}
				if remainingReferences(g, eid, targetSet) == 0 {
					violations = append(violations, fmt.Sprintf(
						"removing predicate %s would orphan cross-cut entity %s", p.ID, eid))
				}
			}
		}
	case RuleEntitySever:
		for _, t := range sorted {
			if cc, crossing := crossCut[core.EntityID(t)]; crossing {
				violations = append(violations, fmt.Sprintf(
					"severing entity %s would break identity across %d contexts", cc.Entity, len(cc.Contexts)))
			}
		}
	case RuleEntityJoin:
		// Joining entities whose combined contexts equivocate over scope is
		// rejected up front; the merged line would fail post-validation anyway.
		union := make(map[core.ContextID]struct{})
		for _, t := range sorted {
			if cc, crossing := crossCut[core.EntityID(t)]; crossing {
				for ctx := range cc.Contexts {
					union[ctx] = struct{}{}
				}
			}
		}
		if len(union) > 1 && mixesPolarity(g, union) && !isChain(g, union) {
			violations = append(violations, "joining entities would mix polarities without nesting")
		}
	case RuleIteration:
		if target != "" && !g.Contexts().Has(target) {
			violations = append(violations, fmt.Sprintf("iteration target context %s not found", target))
		}
	}
	return violations
}

// remainingReferences counts predicates referencing eid that survive the
// removal of targetSet.
func remainingReferences(g graph.Graph, eid core.EntityID, targetSet map[core.ItemID]struct{}) int {
	n := 0
	for _, pid := range g.PredicatesReferencing(eid) {
		if _, doomed := targetSet[core.ItemID(pid)]; !doomed {
			n++
		}
	}
	return n
}
