package crosscut

import "github.com/katalvlaran/peirce/core"

// LigatureProperty is the entity property key holding the identity-join
// group. Entities sharing the same value are one line of identity even when
// no predicate connects them.
const LigatureProperty = "ligature"

// Kind classifies how a cross-cut entity spans its contexts.
type Kind uint8

const (
	// SimpleCross: exactly two contexts, neither enclosing the other.
	SimpleCross Kind = iota
	// MultiCross: more than two contexts without a full nesting chain.
	MultiCross
	// NestedCross: the contexts form a strict ancestor/descendant chain.
	NestedCross
	// LigatureCross: reachable from multiple contexts only through an
	// explicit identity join, not through shared predicate membership.
	LigatureCross
)

// String returns the canonical snake_case name of the kind.
func (k Kind) String() string {
	switch k {
	case SimpleCross:
		return "simple_cross"
	case MultiCross:
		return "multi_cross"
	case NestedCross:
		return "nested_cross"
	case LigatureCross:
		return "ligature_cross"
	default:
		return "unknown"
	}
}

// Info describes one cross-cut entity.
type Info struct {
	// Entity is the crossing line of identity.
	Entity core.EntityID

	// Kind classifies the crossing pattern.
	Kind Kind

	// Contexts is the set of contexts reaching the entity.
	Contexts map[core.ContextID]struct{}

	// DepthSpan is the difference between the deepest and shallowest
	// reaching context.
	DepthSpan int

	// Predicates is the set of predicates involved in the crossing.
	Predicates map[core.PredicateID]struct{}
}

// IdentityReport is the outcome of ValidateIdentityPreservation.
type IdentityReport struct {
	// IsPreserved is true when no violations were found.
	IsPreserved bool

	// Violations describe identity breaks that must block a transformation.
	Violations []string

	// Warnings describe suspicious but legal crossings.
	Warnings []string

	// CrossCuts is the full analysis the report was derived from.
	CrossCuts []Info
}
