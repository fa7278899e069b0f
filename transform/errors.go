// errors.go collects the sentinel errors of the transform package.
//
// Error policy (matching the rest of the module):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Apply wraps sentinels with rule and item context via %w.
//   - The engine never panics; every rejection is a structured Attempt.
package transform

import "errors"

// ErrUnknownRule indicates a rule value outside the closed Rule set.
// Classified as InvalidRule.
var ErrUnknownRule = errors.New("transform: unknown rule")

// ErrNoTargets indicates a rule that requires target items got none.
var ErrNoTargets = errors.New("transform: no target items")

// ErrTargetContextRequired indicates a rule that operates on a context was
// called without one. Classified as ContextViolation.
var ErrTargetContextRequired = errors.New("transform: target context required")

// ErrItemUncontained indicates a target item that no context contains.
var ErrItemUncontained = errors.New("transform: target item not contained in any context")

// ErrOutsideTarget indicates a double-cut wrap item that is not directly
// contained in the target context.
var ErrOutsideTarget = errors.New("transform: wrap item outside target context")

// ErrPositiveContext indicates an erasure target sitting in an even-depth
// (positive) context, which the engine's polarity convention forbids.
var ErrPositiveContext = errors.New("transform: cannot erase from positive context")

// ErrNegativeContext indicates an insertion into an odd-depth (negative)
// context, which the engine's polarity convention forbids.
var ErrNegativeContext = errors.New("transform: cannot insert into negative context")

// ErrNoDoubleCut indicates the target context does not match the double-cut
// pattern (a cut whose only content is exactly one child cut).
var ErrNoDoubleCut = errors.New("transform: no double cut pattern at target")

// ErrShallowerTarget indicates an iteration aimed at a context shallower
// than the source items' common context.
var ErrShallowerTarget = errors.New("transform: cannot iterate to shallower context")

// ErrNoIsomorph indicates deiteration found no matching subgraph in an
// accessible context. Classified as IsomorphismFailed.
var ErrNoIsomorph = errors.New("transform: no isomorphic subgraph found")

// ErrNotAnEntity indicates an entity operation targeting a non-entity item.
var ErrNotAnEntity = errors.New("transform: target is not an entity")

// ErrTooFewEntities indicates an entity join with fewer than two entities.
var ErrTooFewEntities = errors.New("transform: entity join requires at least 2 entities")

// ErrEntityNotShared indicates an entity sever whose targets are not
// referenced by more than one predicate.
var ErrEntityNotShared = errors.New("transform: no target entity is shared by multiple predicates")
