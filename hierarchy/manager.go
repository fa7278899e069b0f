package hierarchy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/peirce/core"
)

// Sentinel errors for hierarchy operations.
var (
	// ErrContextNotFound indicates an operation referenced a non-existent context.
	ErrContextNotFound = errors.New("hierarchy: context not found")

	// ErrRemoveRoot indicates an attempt to remove the sheet of assertion.
	ErrRemoveRoot = errors.New("hierarchy: cannot remove root context")
)

// Manager owns the context tree of one graph snapshot.
//
// The zero Manager is not usable; construct with NewManager, which mints the
// root sheet of assertion. All methods use value receivers and mutators
// return a new Manager.
type Manager struct {
	contexts map[core.ContextID]core.Context // context ID → record
	root     core.ContextID                  // sheet of assertion
}

// NewManager creates a manager holding exactly the root sheet of assertion.
// Complexity: O(1).
func NewManager() Manager {
	root := core.NewContext(core.SheetOfAssertion, "", 0)
	return Manager{
		contexts: map[core.ContextID]core.Context{root.ID: root},
		root:     root.ID,
	}
}

// clone returns a copy of m with a freshly allocated context map.
// Context records themselves are immutable and shared.
func (m Manager) clone() Manager {
	contexts := make(map[core.ContextID]core.Context, len(m.contexts)+1)
	for id, c := range m.contexts {
		contexts[id] = c
	}
	m.contexts = contexts
	return m
}

// CreateContext creates a new context under parent and registers the child in
// the parent's item set. An empty parent means the root. The name, when
// non-empty, is stored as the "name" property.
// Complexity: O(n) for the copy-on-write of the context map.
func (m Manager) CreateContext(kind core.ContextKind, parent core.ContextID, name string) (Manager, core.Context, error) {
	if parent == "" {
		parent = m.root
	}
	p, ok := m.contexts[parent]
	if !ok {
		return m, core.Context{}, fmt.Errorf("create context under %q: %w", parent, ErrContextNotFound)
	}

	child := core.NewContext(kind, parent, p.Depth+1)
	if name != "" {
		child = child.WithProperty("name", name)
	}

	next := m.clone()
	next.contexts[child.ID] = child
	next.contexts[parent] = p.WithItem(core.ItemID(child.ID))
	return next, child, nil
}

// AddContext registers an externally constructed context. The parent must
// already exist; the child is added to the parent's item set. Depth is taken
// as given and checked later by ValidateIntegrity.
func (m Manager) AddContext(c core.Context) (Manager, error) {
	if c.Parent != "" {
		if _, ok := m.contexts[c.Parent]; !ok {
			return m, fmt.Errorf("add context %q: parent %q: %w", c.ID, c.Parent, ErrContextNotFound)
		}
	}
	next := m.clone()
	next.contexts[c.ID] = c
	if c.Parent != "" {
		next.contexts[c.Parent] = next.contexts[c.Parent].WithItem(core.ItemID(c.ID))
	}
	return next, nil
}

// RemoveContext removes a context and all its descendants (cascading delete)
// and unregisters the context from its parent's item set.
// Removing the root is rejected.
// Complexity: O(n·d) for the descendant scan (d = tree depth).
func (m Manager) RemoveContext(id core.ContextID) (Manager, error) {
	if id == m.root {
		return m, ErrRemoveRoot
	}
	victim, ok := m.contexts[id]
	if !ok {
		return m, fmt.Errorf("remove context %q: %w", id, ErrContextNotFound)
	}

	next := m.clone()
	for _, child := range m.Descendants(id) {
		delete(next.contexts, child)
	}
	delete(next.contexts, id)
	if parent, ok := next.contexts[victim.Parent]; ok {
		next.contexts[victim.Parent] = parent.WithoutItem(core.ItemID(id))
	}
	return next, nil
}

// Reparent moves a context subtree under a new parent, updating item
// membership and recomputing depths for the whole subtree. Reparenting the
// root, reparenting under an unknown context, or reparenting a context into
// its own subtree is rejected.
// Complexity: O(n·d).
func (m Manager) Reparent(id, newParent core.ContextID) (Manager, error) {
	if id == m.root {
		return m, ErrRemoveRoot
	}
	c, ok := m.contexts[id]
	if !ok {
		return m, fmt.Errorf("reparent %q: %w", id, ErrContextNotFound)
	}
	p, ok := m.contexts[newParent]
	if !ok {
		return m, fmt.Errorf("reparent %q under %q: %w", id, newParent, ErrContextNotFound)
	}
	if id == newParent || m.IsAncestor(id, newParent) {
		return m, fmt.Errorf("reparent %q under %q would create a cycle", id, newParent)
	}

	next := m.clone()
	if old, ok := next.contexts[c.Parent]; ok {
		next.contexts[c.Parent] = old.WithoutItem(core.ItemID(id))
	}
	next.contexts[newParent] = next.contexts[newParent].WithItem(core.ItemID(id))

	delta := (p.Depth + 1) - c.Depth
	c.Parent = newParent
	c.Depth += delta
	next.contexts[id] = c
	for _, did := range m.Descendants(id) {
		d := next.contexts[did]
		d.Depth += delta
		next.contexts[did] = d
	}
	return next, nil
}

// AddItem places an item into a context's direct item set.
func (m Manager) AddItem(ctx core.ContextID, item core.ItemID) (Manager, error) {
	c, ok := m.contexts[ctx]
	if !ok {
		return m, fmt.Errorf("add item to %q: %w", ctx, ErrContextNotFound)
	}
	next := m.clone()
	next.contexts[ctx] = c.WithItem(item)
	return next, nil
}

// RemoveItem drops an item from a context's direct item set.
// Removing an absent item is a no-op on the set.
func (m Manager) RemoveItem(ctx core.ContextID, item core.ItemID) (Manager, error) {
	c, ok := m.contexts[ctx]
	if !ok {
		return m, fmt.Errorf("remove item from %q: %w", ctx, ErrContextNotFound)
	}
	next := m.clone()
	next.contexts[ctx] = c.WithoutItem(item)
	return next, nil
}
