package core

// Predicate is a hyperedge connecting an ordered tuple of entities.
//
// The tuple order is significant: for a Relation it is the argument order,
// for a Function one element (ReturnEntity) is the output term and the rest
// are arguments. Predicates reference entities, never the reverse, so the
// entity-predicate relation is acyclic by construction.
type Predicate struct {
	// ID is the unique identifier of this predicate.
	ID PredicateID

	// Name is the relation or function symbol.
	Name string

	// Entities is the ordered tuple of connected entity IDs. Arity is its length.
	Entities []EntityID

	// Kind classifies the hyperedge: Relation or Function.
	Kind PredicateKind

	// ReturnEntity, for Function predicates, names the tuple element that is
	// the output term. Empty for relations.
	ReturnEntity EntityID

	// Properties stores arbitrary metadata.
	Properties Properties
}

// PredicateOption configures a Predicate during construction.
type PredicateOption func(*Predicate)

// WithPredicateID sets an explicit identifier instead of a minted one.
func WithPredicateID(id PredicateID) PredicateOption {
	return func(p *Predicate) { p.ID = id }
}

// WithPredicateKind sets the predicate kind (default Relation).
func WithPredicateKind(kind PredicateKind) PredicateOption {
	return func(p *Predicate) { p.Kind = kind }
}

// WithReturnEntity marks one tuple element as the function output term.
// Implies nothing on its own; Validate enforces membership for Function kind.
func WithReturnEntity(id EntityID) PredicateOption {
	return func(p *Predicate) { p.ReturnEntity = id }
}

// WithPredicateProperty attaches one metadata key-value pair.
func WithPredicateProperty(key string, value any) PredicateOption {
	return func(p *Predicate) {
		if p.Properties == nil {
			p.Properties = make(Properties, 1)
		}
		p.Properties[key] = value
	}
}

// NewPredicate constructs an immutable Predicate value over the given tuple.
// The tuple slice is copied; the caller may reuse it.
// Complexity: O(arity + len(opts)).
func NewPredicate(name string, entities []EntityID, opts ...PredicateOption) (Predicate, error) {
	if name == "" {
		return Predicate{}, ErrEmptyName
	}
	tuple := make([]EntityID, len(entities))
	copy(tuple, entities)
	p := Predicate{Name: name, Entities: tuple}
	for _, opt := range opts {
		opt(&p)
	}
	if !p.Kind.Valid() {
		return Predicate{}, ErrBadPredicateKind
	}
	if p.ID == "" {
		p.ID = NewPredicateID()
	}
	if err := p.Validate(); err != nil {
		return Predicate{}, err
	}
	return p, nil
}

// Arity returns the length of the entity tuple.
func (p Predicate) Arity() int { return len(p.Entities) }

// References reports whether the tuple contains id.
func (p Predicate) References(id EntityID) bool {
	for _, e := range p.Entities {
		if e == id {
			return true
		}
	}
	return false
}

// Arguments returns the tuple without the return entity. For relations it is
// the whole tuple.
func (p Predicate) Arguments() []EntityID {
	if p.Kind != Function || p.ReturnEntity == "" {
		out := make([]EntityID, len(p.Entities))
		copy(out, p.Entities)
		return out
	}
	out := make([]EntityID, 0, len(p.Entities)-1)
	for _, e := range p.Entities {
		if e != p.ReturnEntity {
			out = append(out, e)
		}
	}
	return out
}

// Rewritten returns a copy of p with every tuple occurrence of old replaced
// by replacement, preserving ID, kind, and properties. The return entity is
// rewritten alongside the tuple.
func (p Predicate) Rewritten(old, replacement EntityID) Predicate {
	tuple := make([]EntityID, len(p.Entities))
	for i, e := range p.Entities {
		if e == old {
			tuple[i] = replacement
		} else {
			tuple[i] = e
		}
	}
	p.Entities = tuple
	if p.ReturnEntity == old {
		p.ReturnEntity = replacement
	}
	p.Properties = cloneProps(p.Properties)
	return p
}

// Validate checks the function-predicate invariants:
// a Function has a non-empty tuple and its return entity is a tuple member.
func (p Predicate) Validate() error {
	if p.Kind != Function {
		return nil
	}
	if len(p.Entities) == 0 {
		return ErrNoEntities
	}
	if p.ReturnEntity == "" || !p.References(p.ReturnEntity) {
		return ErrReturnEntityNotMember
	}
	return nil
}
