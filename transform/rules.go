package transform

import (
	"fmt"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/graph"
)

// applyRule dispatches the structural rewrite. Preconditions have already
// been checked; errors here still classify like precondition failures.
func (e *Engine) applyRule(g graph.Graph, rule Rule, targets TargetSet, target core.ContextID, cfg applyConfig) (graph.Graph, error) {
	switch rule {
	case DoubleCutInsertion:
		return applyDoubleCutInsertion(g, target, cfg.wrapItems)
	case DoubleCutErasure:
		return applyDoubleCutErasure(g, target)
	case Erasure:
		return applyRemoval(g, targets)
	case Insertion:
		return applyInsertion(g, target, cfg.insertion)
	case Iteration:
		return applyIteration(g, targets, target)
	case Deiteration:
		return applyRemoval(g, targets)
	case EntityJoin:
		return applyEntityJoin(g, targets)
	case EntitySever:
		return applyEntitySever(g, targets)
	default:
		return g, fmt.Errorf("%w: %d", ErrUnknownRule, rule)
	}
}

// applyDoubleCutInsertion creates the outer and inner cut under target and
// moves the wrap items into the inner cut. Wrapped cuts are reparented so
// their subtree depths follow them.
func applyDoubleCutInsertion(g graph.Graph, target core.ContextID, wrap TargetSet) (graph.Graph, error) {
	res, outer, err := g.CreateContext(core.Cut, target, "double cut outer")
	if err != nil {
		return g, err
	}
	res, inner, err := res.CreateContext(core.Cut, outer.ID, "double cut inner")
	if err != nil {
		return g, err
	}
	for _, item := range wrap {
		if res.Contexts().Has(core.ContextID(item)) {
			if res, err = res.ReparentContext(core.ContextID(item), inner.ID); err != nil {
				return g, err
			}
			continue
		}
		if res, err = res.MoveItem(item, inner.ID); err != nil {
			return g, err
		}
	}
	return res, nil
}

// applyDoubleCutErasure reparents the inner cut's content to the outer
// cut's parent, then removes both cuts.
func applyDoubleCutErasure(g graph.Graph, target core.ContextID) (graph.Graph, error) {
	outer, _ := g.Contexts().Context(target)
	inner := g.Contexts().Children(target)[0] // pattern-checked: exactly one

	grand := outer.Parent
	if grand == "" {
		grand = g.RootID()
	}

	res := g
	var err error
	ic, _ := g.Contexts().Context(inner)
	for _, item := range ic.ItemIDs() {
		if res.Contexts().Has(core.ContextID(item)) {
			// Nested cuts keep their subtree; depths are recomputed.
			if res, err = res.ReparentContext(core.ContextID(item), grand); err != nil {
				return g, err
			}
			continue
		}
		if res, err = res.MoveItem(item, grand); err != nil {
			return g, err
		}
	}

	if res, err = res.RemoveContext(inner); err != nil {
		return g, err
	}
	if res, err = res.RemoveContext(target); err != nil {
		return g, err
	}
	return res, nil
}

// applyRemoval deletes the target items; erasure and deiteration share it.
// Items cascaded away by an earlier context removal are skipped.
func applyRemoval(g graph.Graph, targets TargetSet) (graph.Graph, error) {
	res := g
	var err error
	for _, item := range targets {
		switch {
		case res.HasEntity(core.EntityID(item)):
			res, err = res.RemoveEntity(core.EntityID(item))
		case res.HasPredicate(core.PredicateID(item)):
			res, err = res.RemovePredicate(core.PredicateID(item))
		case res.Contexts().Has(core.ContextID(item)):
			res, err = res.RemoveContext(core.ContextID(item))
		default:
			continue
		}
		if err != nil {
			return g, err
		}
	}
	return res, nil
}

// applyInsertion adds the caller-supplied subgraph: entities first, then
// predicates over them. A nil subgraph inserts nothing.
func applyInsertion(g graph.Graph, target core.ContextID, sub *Subgraph) (graph.Graph, error) {
	if sub == nil {
		return g, nil
	}
	res := g
	var err error
	for _, ent := range sub.Entities {
		if res, err = res.AddEntity(ent, target); err != nil {
			return g, err
		}
	}
	for _, pred := range sub.Predicates {
		if res, err = res.AddPredicate(pred, target); err != nil {
			return g, err
		}
	}
	return res, nil
}

// applyIteration copies the target items into the target context. Entities
// are copied first and recorded in a mapping; predicate tuples rewrite
// references to copied entities while keeping external references shared.
func applyIteration(g graph.Graph, targets TargetSet, target core.ContextID) (graph.Graph, error) {
	res := g
	var err error
	mapping := make(map[core.EntityID]core.EntityID)

	for _, item := range targets {
		ent, ok := g.Entity(core.EntityID(item))
		if !ok {
			continue
		}
		cp := ent.CloneWith(ent.Name)
		if res, err = res.AddEntity(cp, target); err != nil {
			return g, err
		}
		mapping[ent.ID] = cp.ID
	}

	for _, item := range targets {
		p, ok := g.Predicate(core.PredicateID(item))
		if !ok {
			continue
		}
		tuple := make([]core.EntityID, len(p.Entities))
		for i, eid := range p.Entities {
			if fresh, copied := mapping[eid]; copied {
				tuple[i] = fresh
			} else {
				tuple[i] = eid
			}
		}
		opts := []core.PredicateOption{core.WithPredicateKind(p.Kind)}
		if p.ReturnEntity != "" {
			ret := p.ReturnEntity
			if fresh, copied := mapping[ret]; copied {
				ret = fresh
			}
			opts = append(opts, core.WithReturnEntity(ret))
		}
		for k, v := range p.Properties {
			opts = append(opts, core.WithPredicateProperty(k, v))
		}
		cp, err := core.NewPredicate(p.Name, tuple, opts...)
		if err != nil {
			return g, err
		}
		if res, err = res.AddPredicate(cp, target); err != nil {
			return g, err
		}
	}

	return res, nil
}

// applyEntityJoin merges the target entities into a fresh one carrying the
// first entity's name and kind, rewrites every affected predicate tuple,
// and removes the originals. Entity count drops by len(targets)-1.
func applyEntityJoin(g graph.Graph, targets TargetSet) (graph.Graph, error) {
	first, _ := g.Entity(core.EntityID(targets[0]))
	merged, err := core.NewEntity(first.Name, first.Kind)
	if err != nil {
		return g, err
	}

	ctx, ok := g.ContainerOf(targets[0])
	if !ok {
		ctx = g.RootID()
	}
	res, err := g.AddEntity(merged, ctx)
	if err != nil {
		return g, err
	}

	for _, pid := range res.PredicateIDs() {
		p, _ := res.Predicate(pid)
		changed := false
		for _, item := range targets {
			if p.References(core.EntityID(item)) {
				p = p.Rewritten(core.EntityID(item), merged.ID)
				changed = true
			}
		}
		if changed {
			if res, err = res.ReplacePredicate(p); err != nil {
				return g, err
			}
		}
	}

	for _, item := range targets {
		if res, err = res.RemoveEntity(core.EntityID(item)); err != nil {
			return g, err
		}
	}
	return res, nil
}

// applyEntitySever splits each shared target entity: the first referencing
// predicate keeps the original, every further predicate gets a fresh copy
// named name_1, name_2, ... placed in that predicate's context.
func applyEntitySever(g graph.Graph, targets TargetSet) (graph.Graph, error) {
	res := g
	var err error
	for _, item := range targets {
		ent, ok := res.Entity(core.EntityID(item))
		if !ok {
			continue
		}
		preds := res.PredicatesReferencing(ent.ID)
		if len(preds) < 2 {
			continue
		}
		for i, pid := range preds[1:] {
			cp := ent.CloneWith(fmt.Sprintf("%s_%d", ent.Name, i+1))
			ctx, ok := res.ContainerOf(core.ItemID(pid))
			if !ok {
				ctx = res.RootID()
			}
			if res, err = res.AddEntity(cp, ctx); err != nil {
				return g, err
			}
			p, _ := res.Predicate(pid)
			if res, err = res.ReplacePredicate(p.Rewritten(ent.ID, cp.ID)); err != nil {
				return g, err
			}
		}
	}
	return res, nil
}
