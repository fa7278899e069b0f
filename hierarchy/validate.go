package hierarchy

import (
	"fmt"

	"github.com/katalvlaran/peirce/core"
)

// ValidateIntegrity re-checks the tree invariants and returns one message per
// violation. A healthy manager yields an empty slice.
//
// Checks, in order: parent existence, depth consistency, cycle absence.
// The cycle check walks each context's ancestor chain with a visited set, so
// a corrupted parent relation cannot loop the validator itself.
// Complexity: O(n·d).
func (m Manager) ValidateIntegrity() []string {
	var errs []string

	// 1. Every non-root parent must exist.
	for _, id := range m.IDs() {
		c := m.contexts[id]
		if c.Parent == "" {
			continue
		}
		if _, ok := m.contexts[c.Parent]; !ok {
			errs = append(errs, fmt.Sprintf("context %s has non-existent parent %s", id, c.Parent))
		}
	}

	// 2. Depth must match the parent chain.
	for _, id := range m.IDs() {
		c := m.contexts[id]
		if c.Parent == "" {
			if c.Depth != 0 {
				errs = append(errs, fmt.Sprintf("root context %s has depth %d, want 0", id, c.Depth))
			}
			continue
		}
		parent, ok := m.contexts[c.Parent]
		if ok && c.Depth != parent.Depth+1 {
			errs = append(errs, fmt.Sprintf("context %s has depth %d, want %d", id, c.Depth, parent.Depth+1))
		}
	}

	// 3. The ancestor chain of every context must terminate at a root.
	for _, id := range m.IDs() {
		visited := make(map[core.ContextID]struct{})
		cur := id
		for cur != "" {
			if _, seen := visited[cur]; seen {
				errs = append(errs, fmt.Sprintf("cycle detected involving context %s", id))
				break
			}
			visited[cur] = struct{}{}
			c, ok := m.contexts[cur]
			if !ok {
				break
			}
			cur = c.Parent
		}
	}

	return errs
}
