// Package graph assembles the existential-graph aggregate: the entity and
// predicate maps plus the context hierarchy, with persistent (copy-on-write)
// mutators.
//
// What:
//
//   - New() yields a graph holding only the sheet of assertion.
//   - Mutators (AddEntity, RemovePredicate, CreateContext, MoveItem, ...)
//     return a new Graph; the receiver is never modified, so earlier
//     snapshots stay valid and may be read concurrently without locks.
//   - Validate() runs the graph-wide consistency checks distinct from the
//     cross-cut analysis in package crosscut: dangling entity references,
//     duplicate or missing containment, hierarchy integrity.
//
// Why:
//   - The transformation engine explores many candidate rewrites from one
//     base snapshot; value semantics make that embarrassingly parallel.
//     Only the small top-level maps are copied per mutation - the records
//     themselves are immutable and shared between snapshots.
//
// Errors:
//
//   - ErrEntityNotFound     operation referenced an unknown entity
//   - ErrPredicateNotFound  operation referenced an unknown predicate
//   - ErrItemNotFound       item is not contained in any context
//   - ErrDanglingEntity     predicate references an entity absent from the graph
//   - hierarchy.ErrContextNotFound / hierarchy.ErrRemoveRoot pass through
package graph
