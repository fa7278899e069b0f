package core

import "sort"

// Context is a negation boundary in the containment hierarchy.
//
// The root context (SheetOfAssertion) has no parent and depth 0; every other
// context has depth parent.Depth+1. Polarity is derived from depth, never
// stored. Items holds the IDs of entities, predicates, and direct child
// contexts placed directly inside this boundary.
type Context struct {
	// ID is the unique identifier of this context.
	ID ContextID

	// Kind is SheetOfAssertion for the root, Cut for every nested boundary.
	Kind ContextKind

	// Parent is the enclosing context, empty for the root.
	Parent ContextID

	// Depth is the nesting depth; root is 0.
	Depth int

	// Items is the set of directly contained item IDs.
	Items map[ItemID]struct{}

	// Properties stores arbitrary metadata (e.g. a display name).
	Properties Properties
}

// ContextOption configures a Context during construction.
type ContextOption func(*Context)

// WithContextID sets an explicit identifier instead of a minted one.
func WithContextID(id ContextID) ContextOption {
	return func(c *Context) { c.ID = id }
}

// WithContextProperty attaches one metadata key-value pair.
func WithContextProperty(key string, value any) ContextOption {
	return func(c *Context) {
		if c.Properties == nil {
			c.Properties = make(Properties, 1)
		}
		c.Properties[key] = value
	}
}

// NewContext constructs an immutable Context value. Depth consistency with
// the parent chain is the hierarchy manager's responsibility; this
// constructor records what it is given.
func NewContext(kind ContextKind, parent ContextID, depth int, opts ...ContextOption) Context {
	c := Context{Kind: kind, Parent: parent, Depth: depth}
	for _, opt := range opts {
		opt(&c)
	}
	if c.ID == "" {
		c.ID = NewContextID()
	}
	return c
}

// IsRoot reports whether this is the sheet of assertion.
func (c Context) IsRoot() bool { return c.Parent == "" && c.Kind == SheetOfAssertion }

// Polarity returns the polarity implied by the nesting depth.
func (c Context) Polarity() Polarity { return PolarityOf(c.Depth) }

// HasItem reports whether id is directly contained in this context.
func (c Context) HasItem(id ItemID) bool {
	_, ok := c.Items[id]
	return ok
}

// WithItem returns a copy of c whose item set additionally contains id.
func (c Context) WithItem(id ItemID) Context {
	items := make(map[ItemID]struct{}, len(c.Items)+1)
	for k := range c.Items {
		items[k] = struct{}{}
	}
	items[id] = struct{}{}
	c.Items = items
	return c
}

// WithoutItem returns a copy of c whose item set lacks id.
func (c Context) WithoutItem(id ItemID) Context {
	items := make(map[ItemID]struct{}, len(c.Items))
	for k := range c.Items {
		if k != id {
			items[k] = struct{}{}
		}
	}
	c.Items = items
	return c
}

// WithProperty returns a copy of c carrying the extra key-value pair.
func (c Context) WithProperty(key string, value any) Context {
	props := cloneProps(c.Properties)
	if props == nil {
		props = make(Properties, 1)
	}
	props[key] = value
	c.Properties = props
	return c
}

// ItemIDs returns the contained item IDs in sorted order.
func (c Context) ItemIDs() []ItemID {
	out := make([]ItemID, 0, len(c.Items))
	for id := range c.Items {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
