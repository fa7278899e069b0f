package graph

import (
	"fmt"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/hierarchy"
)

// AddEntity registers an entity and places it in the given context.
// An empty ctx means the sheet of assertion.
// Complexity: O(n) copy-on-write.
func (g Graph) AddEntity(e core.Entity, ctx core.ContextID) (Graph, error) {
	if ctx == "" {
		ctx = g.contexts.RootID()
	}
	contexts, err := g.contexts.AddItem(ctx, core.ItemID(e.ID))
	if err != nil {
		return g, err
	}
	entities := g.cloneEntities()
	entities[e.ID] = e
	return Graph{entities: entities, predicates: g.predicates, contexts: contexts}, nil
}

// RemoveEntity unregisters an entity and its containment entry.
func (g Graph) RemoveEntity(id core.EntityID) (Graph, error) {
	if _, ok := g.entities[id]; !ok {
		return g, fmt.Errorf("remove entity %q: %w", id, ErrEntityNotFound)
	}
	contexts := g.contexts
	if ctx, ok := contexts.FindItem(core.ItemID(id)); ok {
		var err error
		if contexts, err = contexts.RemoveItem(ctx, core.ItemID(id)); err != nil {
			return g, err
		}
	}
	entities := g.cloneEntities()
	delete(entities, id)
	return Graph{entities: entities, predicates: g.predicates, contexts: contexts}, nil
}

// AddPredicate registers a predicate and places it in the given context.
// Every entity in the tuple must already exist; the predicate's own
// invariants (function return membership) are re-checked.
func (g Graph) AddPredicate(p core.Predicate, ctx core.ContextID) (Graph, error) {
	if err := p.Validate(); err != nil {
		return g, err
	}
	for _, eid := range p.Entities {
		if _, ok := g.entities[eid]; !ok {
			return g, fmt.Errorf("add predicate %q: entity %q: %w", p.ID, eid, ErrDanglingEntity)
		}
	}
	if ctx == "" {
		ctx = g.contexts.RootID()
	}
	contexts, err := g.contexts.AddItem(ctx, core.ItemID(p.ID))
	if err != nil {
		return g, err
	}
	predicates := g.clonePredicates()
	predicates[p.ID] = p
	return Graph{entities: g.entities, predicates: predicates, contexts: contexts}, nil
}

// RemovePredicate unregisters a predicate and its containment entry.
// The entities it referenced stay in the graph.
func (g Graph) RemovePredicate(id core.PredicateID) (Graph, error) {
	if _, ok := g.predicates[id]; !ok {
		return g, fmt.Errorf("remove predicate %q: %w", id, ErrPredicateNotFound)
	}
	contexts := g.contexts
	if ctx, ok := contexts.FindItem(core.ItemID(id)); ok {
		var err error
		if contexts, err = contexts.RemoveItem(ctx, core.ItemID(id)); err != nil {
			return g, err
		}
	}
	predicates := g.clonePredicates()
	delete(predicates, id)
	return Graph{entities: g.entities, predicates: predicates, contexts: contexts}, nil
}

// CreateContext creates a cut (or sheet) under parent and returns the new
// graph together with the created context record. An empty parent means the
// root.
func (g Graph) CreateContext(kind core.ContextKind, parent core.ContextID, name string) (Graph, core.Context, error) {
	contexts, child, err := g.contexts.CreateContext(kind, parent, name)
	if err != nil {
		return g, core.Context{}, err
	}
	return Graph{entities: g.entities, predicates: g.predicates, contexts: contexts}, child, nil
}

// RemoveContext removes a context subtree and every entity and predicate
// contained anywhere inside it. Removing the root is rejected.
// Complexity: O(n·d).
func (g Graph) RemoveContext(id core.ContextID) (Graph, error) {
	if !g.contexts.Has(id) {
		return g, fmt.Errorf("remove context %q: %w", id, hierarchy.ErrContextNotFound)
	}

	// Collect every item contained in the subtree before dropping it.
	doomed := append(g.contexts.Descendants(id), id)
	entities := g.cloneEntities()
	predicates := g.clonePredicates()
	for _, ctx := range doomed {
		for item := range g.contexts.Items(ctx) {
			delete(entities, core.EntityID(item))
			delete(predicates, core.PredicateID(item))
		}
	}

	contexts, err := g.contexts.RemoveContext(id)
	if err != nil {
		return g, err
	}
	return Graph{entities: entities, predicates: predicates, contexts: contexts}, nil
}

// MoveItem relocates an entity or predicate from its current context into
// another. The double-cut rules are built on this primitive.
func (g Graph) MoveItem(item core.ItemID, to core.ContextID) (Graph, error) {
	from, ok := g.contexts.FindItem(item)
	if !ok {
		return g, fmt.Errorf("move item %q: %w", item, ErrItemNotFound)
	}
	contexts, err := g.contexts.RemoveItem(from, item)
	if err != nil {
		return g, err
	}
	if contexts, err = contexts.AddItem(to, item); err != nil {
		return g, err
	}
	return Graph{entities: g.entities, predicates: g.predicates, contexts: contexts}, nil
}

// ReparentContext moves a context subtree (and everything it contains) under
// a new parent context, recomputing depths.
func (g Graph) ReparentContext(id, newParent core.ContextID) (Graph, error) {
	contexts, err := g.contexts.Reparent(id, newParent)
	if err != nil {
		return g, err
	}
	return Graph{entities: g.entities, predicates: g.predicates, contexts: contexts}, nil
}

// ReplacePredicate swaps the stored record for an existing predicate,
// keeping its containment. EntityJoin and EntitySever rewrite tuples
// through this.
func (g Graph) ReplacePredicate(p core.Predicate) (Graph, error) {
	if _, ok := g.predicates[p.ID]; !ok {
		return g, fmt.Errorf("replace predicate %q: %w", p.ID, ErrPredicateNotFound)
	}
	if err := p.Validate(); err != nil {
		return g, err
	}
	for _, eid := range p.Entities {
		if _, ok := g.entities[eid]; !ok {
			return g, fmt.Errorf("replace predicate %q: entity %q: %w", p.ID, eid, ErrDanglingEntity)
		}
	}
	predicates := g.clonePredicates()
	predicates[p.ID] = p
	return Graph{entities: g.entities, predicates: predicates, contexts: g.contexts}, nil
}
