// Package core defines the value types of the existential-graph hypergraph:
// identifiers, Entity (line of identity), Predicate (hyperedge), and Context
// (cut / sheet of assertion), together with their constructors and
// sentinel errors.
//
// What:
//
//   - Typed identifiers (EntityID, PredicateID, ContextID, LigatureID) and the
//     ItemID union used as map keys by every other package.
//   - Entity: a term of the logical language - a named constant, a quantified
//     variable, or a functional term.
//   - Predicate: a relation or function over an ordered tuple of entities.
//     The tuple itself is the identity-sharing mechanism; there is no separate
//     edge object.
//   - Context: a negation boundary. Exactly one root context (the sheet of
//     assertion) exists per graph; polarity is derived from nesting depth,
//     never stored.
//
// Why:
//   - Every record is an immutable value. Mutating helpers (WithProperty,
//     WithItem, ...) return copies, so any number of graph snapshots may share
//     the same underlying records without synchronization.
//
// Key Types:
//
//   - EntityKind:    Constant, Variable, FunctionalTerm
//   - PredicateKind: Relation, Function
//   - ContextKind:   SheetOfAssertion, Cut
//   - Polarity:      Positive (even depth), Negative (odd depth)
//
// Errors:
//
//   - ErrEmptyName              name is the empty string
//   - ErrBadEntityKind          kind outside the closed EntityKind set
//   - ErrBadPredicateKind       kind outside the closed PredicateKind set
//   - ErrNoEntities             function predicate with an empty tuple
//   - ErrReturnEntityNotMember  return entity not part of the tuple
package core
