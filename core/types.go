// This file declares the closed kind sets, Polarity, Properties, and the
// sentinel errors shared by the record constructors.
package core

import "errors"

// Sentinel errors for record construction and validation.
var (
	// ErrEmptyName indicates a record was constructed with an empty name.
	ErrEmptyName = errors.New("core: name is empty")

	// ErrBadEntityKind indicates an EntityKind outside the closed set.
	ErrBadEntityKind = errors.New("core: unknown entity kind")

	// ErrBadPredicateKind indicates a PredicateKind outside the closed set.
	ErrBadPredicateKind = errors.New("core: unknown predicate kind")

	// ErrNoEntities indicates a function predicate with an empty entity tuple.
	ErrNoEntities = errors.New("core: function predicate needs entities")

	// ErrReturnEntityNotMember indicates a function predicate whose return
	// entity is not an element of its entity tuple.
	ErrReturnEntityNotMember = errors.New("core: return entity not in tuple")
)

// EntityKind classifies an Entity as a constant, variable, or functional term.
type EntityKind uint8

const (
	// Constant is a named individual (e.g. Socrates).
	Constant EntityKind = iota
	// Variable is an existentially quantified term.
	Variable
	// FunctionalTerm is the output of a function predicate.
	FunctionalTerm
)

// String returns the canonical lowercase name of the kind.
func (k EntityKind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Variable:
		return "variable"
	case FunctionalTerm:
		return "functional_term"
	default:
		return "unknown"
	}
}

// Valid reports whether k is a member of the closed EntityKind set.
func (k EntityKind) Valid() bool { return k <= FunctionalTerm }

// PredicateKind classifies a Predicate as a relation or a function.
type PredicateKind uint8

const (
	// Relation is an ordinary n-ary relation over entities.
	Relation PredicateKind = iota
	// Function designates one tuple element (ReturnEntity) as the output term.
	Function
)

// String returns the canonical lowercase name of the kind.
func (k PredicateKind) String() string {
	switch k {
	case Relation:
		return "relation"
	case Function:
		return "function"
	default:
		return "unknown"
	}
}

// Valid reports whether k is a member of the closed PredicateKind set.
func (k PredicateKind) Valid() bool { return k <= Function }

// ContextKind distinguishes the root sheet of assertion from a cut.
type ContextKind uint8

const (
	// SheetOfAssertion is the unique root context of a graph (depth 0).
	SheetOfAssertion ContextKind = iota
	// Cut is a negation boundary nested inside another context.
	Cut
)

// String returns the canonical lowercase name of the kind.
func (k ContextKind) String() string {
	switch k {
	case SheetOfAssertion:
		return "sheet_of_assertion"
	case Cut:
		return "cut"
	default:
		return "unknown"
	}
}

// Polarity of a context, derived from nesting depth parity.
type Polarity uint8

const (
	// Positive: even nesting depth.
	Positive Polarity = iota
	// Negative: odd nesting depth.
	Negative
)

// String returns "positive" or "negative".
func (p Polarity) String() string {
	if p == Negative {
		return "negative"
	}
	return "positive"
}

// PolarityOf returns the polarity implied by a nesting depth.
func PolarityOf(depth int) Polarity {
	if depth%2 == 1 {
		return Negative
	}
	return Positive
}

// Properties holds arbitrary key-value metadata attached to a record.
// It is shared structurally between snapshots; mutate only through the
// WithProperty helpers, which copy.
type Properties map[string]any

// cloneProps returns a shallow copy of p, or nil for an empty map.
func cloneProps(p Properties) Properties {
	if len(p) == 0 {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
