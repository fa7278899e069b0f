// Package transform_test verifies the rule engine: preconditions, rewrites,
// post-validation, legality enumeration, and the audit history.
package transform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/graph"
)

// assertErr is the sentinel the stub semantic validator returns.
var assertErr = errors.New("semantics rejected")

// mustEntity builds an entity or fails the test.
func mustEntity(t *testing.T, name string, kind core.EntityKind) core.Entity {
	t.Helper()
	e, err := core.NewEntity(name, kind)
	require.NoError(t, err)
	return e
}

// mustPredicate builds a relation or fails the test.
func mustPredicate(t *testing.T, name string, tuple ...core.EntityID) core.Predicate {
	t.Helper()
	p, err := core.NewPredicate(name, tuple)
	require.NoError(t, err)
	return p
}

func addEntity(t *testing.T, g graph.Graph, e core.Entity, ctx core.ContextID) graph.Graph {
	t.Helper()
	g, err := g.AddEntity(e, ctx)
	require.NoError(t, err)
	return g
}

func addPredicate(t *testing.T, g graph.Graph, p core.Predicate, ctx core.ContextID) graph.Graph {
	t.Helper()
	g, err := g.AddPredicate(p, ctx)
	require.NoError(t, err)
	return g
}

func addCut(t *testing.T, g graph.Graph, parent core.ContextID) (graph.Graph, core.Context) {
	t.Helper()
	g, cut, err := g.CreateContext(core.Cut, parent, "")
	require.NoError(t, err)
	return g, cut
}

// socratesGraph builds the canonical fixture: the constant Socrates on the
// sheet of assertion with Person[Socrates] asserted next to it.
func socratesGraph(t *testing.T) (graph.Graph, core.Entity, core.Predicate) {
	t.Helper()
	socrates := mustEntity(t, "Socrates", core.Constant)
	g := addEntity(t, graph.New(), socrates, "")
	person := mustPredicate(t, "Person", socrates.ID)
	g = addPredicate(t, g, person, "")
	return g, socrates, person
}
