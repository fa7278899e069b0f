// Package transform implements the rewrite engine for existential graphs:
// Peirce's Alpha and Beta transformation rules plus the entity (line of
// identity) operations, with a two-stage validation pipeline around every
// application.
//
// What:
//
//   - Engine.Apply(g, rule, targets, target, opts...) runs one rule
//     application as a single transition:
//     precondition check → cross-cut pre-flight → apply → entity-consistency
//     scan → identity-preservation check → optional semantic validation.
//     Any stage may short-circuit to a failed Attempt; the caller's graph is
//     never touched - every structural change happens on fresh snapshots, so
//     a late failure simply discards them.
//   - Engine.LegalTransformations enumerates the structurally eligible,
//     cross-cut-safe target sets per rule for interactive or search-driven
//     callers. Pure and deterministic: equal graphs yield equal results.
//   - Every attempt, successful or not, is appended to the engine's audit
//     history and logged through the configured zap logger. The history is
//     observational only; it never feeds back into decisions.
//
// Rule catalogue:
//
//   - DoubleCutInsertion  wrap a subgraph in two fresh nested cuts
//   - DoubleCutErasure    remove a cut pair, reparenting its content
//   - Erasure             delete items from odd-depth (negative) contexts
//   - Insertion           add a subgraph into an even-depth (positive) context
//   - Iteration           copy items into a same-or-deeper context
//   - Deiteration         delete a copy that matches an accessible original
//   - EntityJoin          merge lines of identity, rewriting all tuples
//   - EntitySever         split a shared line, one fresh entity per extra use
//
// The polarity gates on Erasure and Insertion follow the engine's coded
// convention (erase from negative, insert into positive); see the Rule docs.
//
// Concurrency:
//   - Apply is a pure function of its inputs except for the history append,
//     which is the engine's only lock. Many goroutines may apply rules from
//     one shared base snapshot concurrently.
package transform
