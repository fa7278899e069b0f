package hierarchy

import (
	"sort"

	"github.com/katalvlaran/peirce/core"
)

// Context returns the record for id and whether it exists.
func (m Manager) Context(id core.ContextID) (core.Context, bool) {
	c, ok := m.contexts[id]
	return c, ok
}

// Has reports whether id names a known context.
func (m Manager) Has(id core.ContextID) bool {
	_, ok := m.contexts[id]
	return ok
}

// Root returns the sheet of assertion.
func (m Manager) Root() core.Context { return m.contexts[m.root] }

// RootID returns the ID of the sheet of assertion.
func (m Manager) RootID() core.ContextID { return m.root }

// Len returns the number of contexts, root included.
func (m Manager) Len() int { return len(m.contexts) }

// IDs returns all context IDs in sorted order.
func (m Manager) IDs() []core.ContextID {
	out := make([]core.ContextID, 0, len(m.contexts))
	for id := range m.contexts {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Items returns a copy of the direct item set of a context.
// An unknown context yields an empty set.
func (m Manager) Items(id core.ContextID) map[core.ItemID]struct{} {
	c, ok := m.contexts[id]
	out := make(map[core.ItemID]struct{}, len(c.Items))
	if !ok {
		return out
	}
	for item := range c.Items {
		out[item] = struct{}{}
	}
	return out
}

// FindItem locates the context directly containing item. Reverse lookup by
// linear scan; every item belongs to at most one context by graph invariant.
// Complexity: O(n).
func (m Manager) FindItem(item core.ItemID) (core.ContextID, bool) {
	for id, c := range m.contexts {
		if c.HasItem(item) {
			return id, true
		}
	}
	return "", false
}

// Path returns the context chain from the root to id, inclusive.
// An unknown id yields nil.
func (m Manager) Path(id core.ContextID) []core.ContextID {
	if _, ok := m.contexts[id]; !ok {
		return nil
	}
	var rev []core.ContextID
	for cur := id; cur != ""; {
		rev = append(rev, cur)
		c, ok := m.contexts[cur]
		if !ok {
			break
		}
		cur = c.Parent
	}
	// reverse in place: collected leaf→root
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// Depth returns the nesting depth of id, or -1 when unknown.
func (m Manager) Depth(id core.ContextID) int {
	c, ok := m.contexts[id]
	if !ok {
		return -1
	}
	return c.Depth
}

// Children returns the direct child contexts of parent, sorted.
// Complexity: O(n).
func (m Manager) Children(parent core.ContextID) []core.ContextID {
	var out []core.ContextID
	for id, c := range m.contexts {
		if c.Parent == parent {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Descendants returns every direct and transitive child of parent, sorted.
func (m Manager) Descendants(parent core.ContextID) []core.ContextID {
	var out []core.ContextID
	frontier := []core.ContextID{parent}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		for id, c := range m.contexts {
			if c.Parent == cur {
				out = append(out, id)
				frontier = append(frontier, id)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsAncestor reports whether a strictly encloses b (a on b's root path,
// a != b).
func (m Manager) IsAncestor(a, b core.ContextID) bool {
	if a == b {
		return false
	}
	for _, id := range m.Path(b) {
		if id == a {
			return true
		}
	}
	return false
}
