package core

// Entity is a line of identity: a term of the logical language.
//
// An Entity never changes in place; transformations replace it with a copy.
type Entity struct {
	// ID is the unique identifier of this entity.
	ID EntityID

	// Name is the display name of the term (constant name, variable letter).
	Name string

	// Kind classifies the term: Constant, Variable, or FunctionalTerm.
	Kind EntityKind

	// Properties stores arbitrary metadata (ligature membership, provenance).
	Properties Properties
}

// EntityOption configures an Entity during construction.
type EntityOption func(*Entity)

// WithEntityID sets an explicit identifier instead of a minted one.
// Parsers and tests use this to build graphs with stable IDs.
func WithEntityID(id EntityID) EntityOption {
	return func(e *Entity) { e.ID = id }
}

// WithEntityProperty attaches one metadata key-value pair.
func WithEntityProperty(key string, value any) EntityOption {
	return func(e *Entity) {
		if e.Properties == nil {
			e.Properties = make(Properties, 1)
		}
		e.Properties[key] = value
	}
}

// NewEntity constructs an immutable Entity value.
// Complexity: O(len(opts)).
func NewEntity(name string, kind EntityKind, opts ...EntityOption) (Entity, error) {
	if name == "" {
		return Entity{}, ErrEmptyName
	}
	if !kind.Valid() {
		return Entity{}, ErrBadEntityKind
	}
	e := Entity{Name: name, Kind: kind}
	for _, opt := range opts {
		opt(&e)
	}
	if e.ID == "" {
		e.ID = NewEntityID()
	}
	return e, nil
}

// WithProperty returns a copy of e carrying the extra key-value pair.
// The receiver is left untouched.
func (e Entity) WithProperty(key string, value any) Entity {
	props := cloneProps(e.Properties)
	if props == nil {
		props = make(Properties, 1)
	}
	props[key] = value
	e.Properties = props
	return e
}

// Property returns the value stored under key and whether it was present.
func (e Entity) Property(key string) (any, bool) {
	v, ok := e.Properties[key]
	return v, ok
}

// CloneWith returns a copy of e with a fresh ID and the given name,
// sharing kind and copying properties. Iteration and sever use this to
// mint derived lines of identity.
func (e Entity) CloneWith(name string) Entity {
	return Entity{
		ID:         NewEntityID(),
		Name:       name,
		Kind:       e.Kind,
		Properties: cloneProps(e.Properties),
	}
}
