// Package hierarchy manages the tree of contexts (cuts) of an existential
// graph: creation, cascading removal, item containment, and the queries the
// rest of the engine builds on (path to root, depth, reverse item lookup).
//
// The Manager is an immutable value: every mutating operation returns a new
// Manager sharing unchanged Context records with its predecessor, so graph
// snapshots stay valid after mutations elsewhere.
//
// Invariants maintained (and re-checkable via ValidateIntegrity):
//
//   - the parent relation is acyclic and rooted at the sheet of assertion
//   - every non-root context's parent exists in the manager
//   - every context's depth equals its parent's depth plus one
//
// Errors:
//
//   - ErrContextNotFound  operation referenced an unknown context
//   - ErrRemoveRoot       attempt to remove the sheet of assertion
package hierarchy
