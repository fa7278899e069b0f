package graph

import (
	"errors"
	"sort"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/hierarchy"
)

// Sentinel errors for graph mutations.
var (
	// ErrEntityNotFound indicates an operation referenced a non-existent entity.
	ErrEntityNotFound = errors.New("graph: entity not found")

	// ErrPredicateNotFound indicates an operation referenced a non-existent predicate.
	ErrPredicateNotFound = errors.New("graph: predicate not found")

	// ErrItemNotFound indicates an item that no context contains.
	ErrItemNotFound = errors.New("graph: item not contained in any context")

	// ErrDanglingEntity indicates a predicate referencing an entity absent
	// from the graph.
	ErrDanglingEntity = errors.New("graph: predicate references missing entity")
)

// Graph is the immutable existential-graph aggregate.
//
// The zero Graph is not usable; construct with New. All methods use value
// receivers; mutators return a new Graph sharing unchanged records.
type Graph struct {
	entities   map[core.EntityID]core.Entity       // entity ID → record
	predicates map[core.PredicateID]core.Predicate // predicate ID → record
	contexts   hierarchy.Manager                   // context tree + containment
}

// New creates a graph containing only the root sheet of assertion.
// Complexity: O(1).
func New() Graph {
	return Graph{
		entities:   map[core.EntityID]core.Entity{},
		predicates: map[core.PredicateID]core.Predicate{},
		contexts:   hierarchy.NewManager(),
	}
}

// cloneEntities returns a fresh entity map copied from g.
func (g Graph) cloneEntities() map[core.EntityID]core.Entity {
	out := make(map[core.EntityID]core.Entity, len(g.entities)+1)
	for id, e := range g.entities {
		out[id] = e
	}
	return out
}

// clonePredicates returns a fresh predicate map copied from g.
func (g Graph) clonePredicates() map[core.PredicateID]core.Predicate {
	out := make(map[core.PredicateID]core.Predicate, len(g.predicates)+1)
	for id, p := range g.predicates {
		out[id] = p
	}
	return out
}

// Entity returns the record for id and whether it exists.
func (g Graph) Entity(id core.EntityID) (core.Entity, bool) {
	e, ok := g.entities[id]
	return e, ok
}

// Predicate returns the record for id and whether it exists.
func (g Graph) Predicate(id core.PredicateID) (core.Predicate, bool) {
	p, ok := g.predicates[id]
	return p, ok
}

// HasEntity reports whether id names a known entity.
func (g Graph) HasEntity(id core.EntityID) bool {
	_, ok := g.entities[id]
	return ok
}

// HasPredicate reports whether id names a known predicate.
func (g Graph) HasPredicate(id core.PredicateID) bool {
	_, ok := g.predicates[id]
	return ok
}

// EntityCount returns the number of entities.
func (g Graph) EntityCount() int { return len(g.entities) }

// PredicateCount returns the number of predicates.
func (g Graph) PredicateCount() int { return len(g.predicates) }

// EntityIDs returns all entity IDs in sorted order.
func (g Graph) EntityIDs() []core.EntityID {
	out := make([]core.EntityID, 0, len(g.entities))
	for id := range g.entities {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PredicateIDs returns all predicate IDs in sorted order.
func (g Graph) PredicateIDs() []core.PredicateID {
	out := make([]core.PredicateID, 0, len(g.predicates))
	for id := range g.predicates {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Entities returns every entity record, ordered by ID.
func (g Graph) Entities() []core.Entity {
	out := make([]core.Entity, 0, len(g.entities))
	for _, id := range g.EntityIDs() {
		out = append(out, g.entities[id])
	}
	return out
}

// Predicates returns every predicate record, ordered by ID.
func (g Graph) Predicates() []core.Predicate {
	out := make([]core.Predicate, 0, len(g.predicates))
	for _, id := range g.PredicateIDs() {
		out = append(out, g.predicates[id])
	}
	return out
}

// Contexts returns the context hierarchy manager (itself an immutable value).
func (g Graph) Contexts() hierarchy.Manager { return g.contexts }

// RootID returns the ID of the sheet of assertion.
func (g Graph) RootID() core.ContextID { return g.contexts.RootID() }

// ItemsIn returns a copy of the direct item set of a context.
func (g Graph) ItemsIn(ctx core.ContextID) map[core.ItemID]struct{} {
	return g.contexts.Items(ctx)
}

// ContainerOf locates the context directly containing item.
func (g Graph) ContainerOf(item core.ItemID) (core.ContextID, bool) {
	return g.contexts.FindItem(item)
}

// PredicatesReferencing returns the IDs of every predicate whose tuple
// contains the entity, in sorted order.
// Complexity: O(P·arity).
func (g Graph) PredicatesReferencing(id core.EntityID) []core.PredicateID {
	var out []core.PredicateID
	for pid, p := range g.predicates {
		if p.References(id) {
			out = append(out, pid)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
