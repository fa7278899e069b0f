package transform

import (
	"sort"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/graph"
)

// Rule identifies one existential-graph transformation. The set is closed;
// the engine's dispatch switch covers every member.
type Rule uint8

const (
	// DoubleCutInsertion wraps a subgraph in two freshly created, directly
	// nested cuts. Alpha rule; no semantic change.
	DoubleCutInsertion Rule = iota

	// DoubleCutErasure removes a cut pair whose outer cut contains exactly
	// one child cut and nothing else, reparenting the inner content to the
	// grandparent. Alpha rule; no semantic change.
	DoubleCutErasure

	// Erasure deletes target items. The engine's coded convention requires
	// every target's container to have odd depth (negative polarity).
	Erasure

	// Insertion adds a caller-supplied subgraph into the target context.
	// The engine's coded convention requires the target to have even depth
	// (positive polarity).
	Insertion

	// Iteration copies source items into a context at the same or deeper
	// level, minting fresh entity copies for internal references while
	// preserving external sharing.
	Iteration

	// Deiteration deletes a subgraph for which an isomorphic copy exists in
	// an accessible context.
	Deiteration

	// EntityJoin merges two or more entities into one line of identity,
	// rewriting every predicate tuple that referenced them.
	EntityJoin

	// EntitySever splits an entity referenced by multiple predicates into
	// one entity per referencing predicate (the first keeps the original).
	EntitySever

	ruleCount // sentinel for iteration over the closed set
)

// Rules returns every rule in declaration order.
func Rules() []Rule {
	out := make([]Rule, 0, int(ruleCount))
	for r := Rule(0); r < ruleCount; r++ {
		out = append(out, r)
	}
	return out
}

// String returns the canonical snake_case rule name.
func (r Rule) String() string {
	switch r {
	case DoubleCutInsertion:
		return "double_cut_insertion"
	case DoubleCutErasure:
		return "double_cut_erasure"
	case Erasure:
		return "erasure"
	case Insertion:
		return "insertion"
	case Iteration:
		return "iteration"
	case Deiteration:
		return "deiteration"
	case EntityJoin:
		return "entity_join"
	case EntitySever:
		return "entity_sever"
	default:
		return "unknown"
	}
}

// Valid reports whether r is a member of the closed rule set.
func (r Rule) Valid() bool { return r < ruleCount }

// FailureKind classifies a failed transformation attempt.
type FailureKind uint8

const (
	// FailureNone marks a successful attempt.
	FailureNone FailureKind = iota

	// PreconditionFailed: rule-specific structural precondition unmet
	// (wrong polarity, missing pattern, wrong cardinality).
	PreconditionFailed

	// EntityViolation: cross-cut pre-flight rejection, post-mutation
	// entity-reference inconsistency, or identity-preservation failure.
	EntityViolation

	// ContextViolation: malformed or missing context reference.
	ContextViolation

	// InvalidRule: rule value outside the closed set.
	InvalidRule

	// IsomorphismFailed: deiteration found no matching subgraph.
	IsomorphismFailed

	// SemanticViolation: the attached semantic validator reported a broken
	// meaning-preservation guarantee.
	SemanticViolation
)

// String returns the canonical snake_case failure name.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case PreconditionFailed:
		return "precondition_failed"
	case EntityViolation:
		return "entity_violation"
	case ContextViolation:
		return "context_violation"
	case InvalidRule:
		return "invalid_rule"
	case IsomorphismFailed:
		return "isomorphism_failed"
	case SemanticViolation:
		return "semantic_violation"
	default:
		return "unknown"
	}
}

// TargetSet is a sorted set of item IDs a rule operates on.
type TargetSet []core.ItemID

// NewTargetSet copies and sorts the given item IDs.
func NewTargetSet(items ...core.ItemID) TargetSet {
	out := make(TargetSet, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Contains reports whether the set holds id.
func (ts TargetSet) Contains(id core.ItemID) bool {
	for _, t := range ts {
		if t == id {
			return true
		}
	}
	return false
}

// Subgraph is the caller-supplied structure the Insertion rule adds:
// entities first, then predicates over them (or over pre-existing entities).
type Subgraph struct {
	Entities   []core.Entity
	Predicates []core.Predicate
}

// SemanticValidator is the hook for an external meaning-preservation
// checker. A non-nil error classifies the attempt as SemanticViolation.
type SemanticValidator interface {
	ValidateTransformationSemantics(before, after graph.Graph, rule Rule) error
}

// Attempt records one rule application, successful or not. Attempts are
// appended to the engine history and never feed back into decisions.
type Attempt struct {
	// Rule is the applied transformation.
	Rule Rule

	// Targets are the items the rule operated on (sorted copy).
	Targets TargetSet

	// TargetContext is the context parameter, when the rule takes one.
	TargetContext core.ContextID

	// Ok reports success. When false, Result is the zero Graph.
	Ok bool

	// Result is the transformed graph on success.
	Result graph.Graph

	// Failure classifies the rejection; FailureNone on success.
	Failure FailureKind

	// Err is the rejection cause; nil on success.
	Err error

	// Meta carries observational counters (entity/predicate/context deltas,
	// cross-cut statistics).
	Meta map[string]any
}
