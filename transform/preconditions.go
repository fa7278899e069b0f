package transform

import (
	"fmt"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/graph"
	"github.com/katalvlaran/peirce/hierarchy"
)

// checkPreconditions validates the rule-specific structural preconditions
// without mutating anything. A nil return means the apply stage may run.
func (e *Engine) checkPreconditions(g graph.Graph, rule Rule, targets TargetSet, target core.ContextID, cfg applyConfig) error {
	switch rule {
	case DoubleCutInsertion:
		return checkDoubleCutInsertion(g, target, cfg.wrapItems)
	case DoubleCutErasure:
		return checkDoubleCutErasure(g, target)
	case Erasure:
		return checkErasure(g, targets)
	case Insertion:
		return checkInsertion(g, target)
	case Iteration:
		return checkIteration(g, targets, target)
	case Deiteration:
		return e.checkDeiteration(g, targets)
	case EntityJoin:
		return checkEntityJoin(g, targets)
	case EntitySever:
		return checkEntitySever(g, targets)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownRule, rule)
	}
}

func checkDoubleCutInsertion(g graph.Graph, target core.ContextID, wrap TargetSet) error {
	if target == "" {
		return fmt.Errorf("double cut insertion: %w", ErrTargetContextRequired)
	}
	if !g.Contexts().Has(target) {
		return fmt.Errorf("double cut insertion: target %q: %w", target, hierarchy.ErrContextNotFound)
	}
	// Wrap items must sit directly in the target context.
	for _, item := range wrap {
		ctx, ok := g.ContainerOf(item)
		if !ok {
			return fmt.Errorf("double cut insertion: item %q: %w", item, ErrItemUncontained)
		}
		if ctx != target {
			return fmt.Errorf("double cut insertion: item %q in %q: %w", item, ctx, ErrOutsideTarget)
		}
	}
	return nil
}

func checkDoubleCutErasure(g graph.Graph, target core.ContextID) error {
	if target == "" {
		return fmt.Errorf("double cut erasure: %w", ErrTargetContextRequired)
	}
	if !g.Contexts().Has(target) {
		return fmt.Errorf("double cut erasure: target %q: %w", target, hierarchy.ErrContextNotFound)
	}
	if !doubleCutPattern(g, target) {
		return fmt.Errorf("double cut erasure: target %q: %w", target, ErrNoDoubleCut)
	}
	return nil
}

func checkErasure(g graph.Graph, targets TargetSet) error {
	if len(targets) == 0 {
		return fmt.Errorf("erasure: %w", ErrNoTargets)
	}
	for _, item := range targets {
		ctx, ok := g.ContainerOf(item)
		if !ok {
			return fmt.Errorf("erasure: item %q: %w", item, ErrItemUncontained)
		}
		if core.PolarityOf(g.Contexts().Depth(ctx)) == core.Positive {
			return fmt.Errorf("erasure: item %q: %w", item, ErrPositiveContext)
		}
	}
	return nil
}

func checkInsertion(g graph.Graph, target core.ContextID) error {
	if target == "" {
		return fmt.Errorf("insertion: %w", ErrTargetContextRequired)
	}
	if !g.Contexts().Has(target) {
		return fmt.Errorf("insertion: target %q: %w", target, hierarchy.ErrContextNotFound)
	}
	if core.PolarityOf(g.Contexts().Depth(target)) == core.Negative {
		return fmt.Errorf("insertion: target %q: %w", target, ErrNegativeContext)
	}
	return nil
}

func checkIteration(g graph.Graph, targets TargetSet, target core.ContextID) error {
	if len(targets) == 0 {
		return fmt.Errorf("iteration: %w", ErrNoTargets)
	}
	if target == "" {
		return fmt.Errorf("iteration: %w", ErrTargetContextRequired)
	}
	if !g.Contexts().Has(target) {
		return fmt.Errorf("iteration: target %q: %w", target, hierarchy.ErrContextNotFound)
	}
	// Iteration may copy to the same level or deeper, never shallower.
	if src := commonContext(g, targets); src != "" {
		if g.Contexts().Depth(target) < g.Contexts().Depth(src) {
			return fmt.Errorf("iteration: target %q: %w", target, ErrShallowerTarget)
		}
	}
	return nil
}

func (e *Engine) checkDeiteration(g graph.Graph, targets TargetSet) error {
	if len(targets) == 0 {
		return fmt.Errorf("deiteration: %w", ErrNoTargets)
	}
	if _, ok := findIsomorphicMatch(g, targets); !ok {
		return fmt.Errorf("deiteration: %w", ErrNoIsomorph)
	}
	return nil
}

func checkEntityJoin(g graph.Graph, targets TargetSet) error {
	if len(targets) == 0 {
		return fmt.Errorf("entity join: %w", ErrNoTargets)
	}
	for _, item := range targets {
		if !g.HasEntity(core.EntityID(item)) {
			return fmt.Errorf("entity join: item %q: %w", item, ErrNotAnEntity)
		}
	}
	if len(targets) < 2 {
		return fmt.Errorf("entity join: %w", ErrTooFewEntities)
	}
	return nil
}

func checkEntitySever(g graph.Graph, targets TargetSet) error {
	if len(targets) == 0 {
		return fmt.Errorf("entity sever: %w", ErrNoTargets)
	}
	for _, item := range targets {
		if g.HasEntity(core.EntityID(item)) && len(g.PredicatesReferencing(core.EntityID(item))) > 1 {
			return nil
		}
	}
	return fmt.Errorf("entity sever: %w", ErrEntityNotShared)
}
