package graph

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/peirce/core"
)

// Report is the outcome of a graph-wide consistency check.
type Report struct {
	// IsValid is true when no errors were found (warnings allowed).
	IsValid bool

	// Errors are invariant violations.
	Errors []string

	// Warnings are suspicious but legal states.
	Warnings []string
}

// Validate runs the structural consistency checks on the aggregate:
//
//  1. every entity ID in any predicate tuple exists in the entity map
//  2. every function predicate's return entity is a tuple member
//  3. every entity and predicate is contained in exactly one context
//  4. every non-root context is held by exactly one item set, owned by its
//     recorded parent
//  5. the context hierarchy passes its own integrity checks
//
// Cross-cut identity analysis is a separate concern (package crosscut).
// Complexity: O(P·arity + items·contexts).
func (g Graph) Validate() Report {
	var errs error
	var warnings []string

	// 1-2. Predicate reference and shape checks.
	for _, pid := range g.PredicateIDs() {
		p := g.predicates[pid]
		for _, eid := range p.Entities {
			if _, ok := g.entities[eid]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("predicate %s references non-existent entity %s", pid, eid))
			}
		}
		if err := p.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("predicate %s: %w", pid, err))
		}
	}

	// 3. Containment: exactly one containing context per item.
	count := make(map[core.ItemID]int)
	for _, ctx := range g.contexts.IDs() {
		for item := range g.contexts.Items(ctx) {
			count[item]++
		}
	}
	check := func(item core.ItemID, label string) {
		switch count[item] {
		case 1:
			// sole containment, as required
		case 0:
			warnings = append(warnings, fmt.Sprintf("%s %s is not contained in any context", label, item))
		default:
			errs = multierr.Append(errs, fmt.Errorf("%s %s is contained in %d contexts", label, item, count[item]))
		}
	}
	for _, id := range g.EntityIDs() {
		check(core.ItemID(id), "entity")
	}
	for _, id := range g.PredicateIDs() {
		check(core.ItemID(id), "predicate")
	}

	// Non-root contexts: held by exactly one item set, and that set must be
	// the recorded parent's.
	for _, id := range g.contexts.IDs() {
		if id == g.contexts.RootID() {
			continue
		}
		c, _ := g.contexts.Context(id)
		switch count[core.ItemID(id)] {
		case 1:
			if holder, ok := g.contexts.FindItem(core.ItemID(id)); ok && holder != c.Parent {
				errs = multierr.Append(errs, fmt.Errorf(
					"context %s is held by %s but records parent %s", id, holder, c.Parent))
			}
		case 0:
			errs = multierr.Append(errs, fmt.Errorf("context %s is not held by any item set", id))
		default:
			errs = multierr.Append(errs, fmt.Errorf(
				"context %s is held by %d item sets", id, count[core.ItemID(id)]))
		}
	}

	// 4. Hierarchy invariants.
	for _, msg := range g.contexts.ValidateIntegrity() {
		errs = multierr.Append(errs, errors.New(msg))
	}

	report := Report{IsValid: errs == nil, Warnings: warnings}
	for _, err := range multierr.Errors(errs) {
		report.Errors = append(report.Errors, err.Error())
	}
	return report
}
