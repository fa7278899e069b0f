// Package peirce is an in-memory toolkit for building, validating and
// rewriting existential graphs: entities, predicate hyperedges and nested
// cut contexts, with a rule engine for the classic transformation calculus.
//
// 🚀 What is peirce?
//
//	A modern, immutable-by-construction library that brings together:
//		• Core primitives: entities, predicates, contexts & polarity
//		• Hierarchy: a context tree with paths, depths & integrity checks
//		• Graph: a persistent aggregate tying items to their containers
//		• Cross-cuts: identity-line analysis across context boundaries
//		• Transformations: the eight rewrite rules with full validation
//
// ✨ Why choose peirce?
//
//   - Value semantics – every mutator returns a fresh graph, snapshots are free
//   - Rock-solid guarantees – each rewrite is pre- and post-validated
//   - Deterministic – sorted iteration orders, reproducible enumeration
//   - Extensible – plug in a semantic validator or a structured logger
//
// Under the hood, everything is organized under five subpackages:
//
//	core/      — Entity, Predicate, Context records & identifier types
//	hierarchy/ — the context tree manager (create, remove, reparent, query)
//	graph/     — the persistent aggregate plus structural validation
//	crosscut/  — cross-cut detection & identity-preservation checks
//	transform/ — the rule engine, legality enumeration & attempt history
//
// Quick ASCII example:
//
//	sheet ─────────────────────────────┐
//	│  Socrates ── Person[Socrates]    │
//	│  ┌─ cut ───────────────────────┐ │
//	│  │  ┌─ cut ─────────────────┐  │ │
//	│  │  │  Mortal[Socrates]     │  │ │
//	│  │  └───────────────────────┘  │ │
//	│  └────────────────────────────┘ │
//	└──────────────────────────────────┘
//
//	Everything inside a single cut is negated; a double cut around an item
//	asserts it again.
//
// The transform package turns that equivalence, and the rest of the
// calculus, into checked, reversible graph rewrites with a full audit
// history of every attempt.
//
//	go get github.com/katalvlaran/peirce
package peirce
