// Package crosscut_test verifies cross-cut detection, classification, and
// the identity-preservation checks.
package crosscut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/crosscut"
	"github.com/katalvlaran/peirce/graph"
)

// mustEntity builds an entity or fails the test.
func mustEntity(t *testing.T, name string, opts ...core.EntityOption) core.Entity {
	t.Helper()
	e, err := core.NewEntity(name, core.Variable, opts...)
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

// addEntity and addPredicate thread graph snapshots through require.
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

// TestAnalyzeCrossCuts_Empty yields nothing on an empty graph; identity is
// vacuously preserved.
func TestAnalyzeCrossCuts_Empty(t *testing.T) {
	var v crosscut.Validator
	g := graph.New()

	require.Empty(t, v.AnalyzeCrossCuts(g))

	report := v.ValidateIdentityPreservation(g)
	require.True(t, report.IsPreserved)
	require.Empty(t, report.Violations)
	require.Empty(t, report.CrossCuts)
}

// TestAnalyzeCrossCuts_SingleContext: an entity and its predicate in the
// same context never cross anything.
func TestAnalyzeCrossCuts_SingleContext(t *testing.T) {
	var v crosscut.Validator
	e := mustEntity(t, "x")
	g := addEntity(t, graph.New(), e, "")
	g = addPredicate(t, g, mustPredicate(t, "P", e.ID), "")

	require.Empty(t, v.AnalyzeCrossCuts(g))
}

// TestAnalyzeCrossCuts_Nested: an entity on the sheet referenced by a
// predicate inside a cut forms a nested crossing. Nesting chains are legal
// regardless of polarity, so identity is preserved.
func TestAnalyzeCrossCuts_Nested(t *testing.T) {
	var v crosscut.Validator
	e := mustEntity(t, "x")
	g := addEntity(t, graph.New(), e, "")
	g, cut := addCut(t, g, "")
	p := mustPredicate(t, "P", e.ID)
	g = addPredicate(t, g, p, cut.ID)

	ccs := v.AnalyzeCrossCuts(g)
	require.Len(t, ccs, 1)
	require.Equal(t, e.ID, ccs[0].Entity)
	require.Equal(t, crosscut.NestedCross, ccs[0].Kind)
	require.Equal(t, 1, ccs[0].DepthSpan)
	require.Len(t, ccs[0].Contexts, 2)
	_, involved := ccs[0].Predicates[p.ID]
	require.True(t, involved)

	report := v.ValidateIdentityPreservation(g)
	require.True(t, report.IsPreserved)
}

// TestAnalyzeCrossCuts_Simple: an entity in one cut referenced from a
// sibling cut is a simple crossing; with equal depths the polarity never
// mixes, so identity is preserved.
func TestAnalyzeCrossCuts_Simple(t *testing.T) {
	var v crosscut.Validator
	g, cutA := addCut(t, graph.New(), "")
	g, cutB := addCut(t, g, "")

	e := mustEntity(t, "x")
	g = addEntity(t, g, e, cutA.ID)
	g = addPredicate(t, g, mustPredicate(t, "P", e.ID), cutB.ID)

	ccs := v.AnalyzeCrossCuts(g)
	require.Len(t, ccs, 1)
	require.Equal(t, crosscut.SimpleCross, ccs[0].Kind)
	require.Equal(t, 0, ccs[0].DepthSpan)

	require.True(t, v.ValidateIdentityPreservation(g).IsPreserved)
}

// TestValidateIdentityPreservation_MixedPolarity: an entity bound in a
// negative cut and referenced from a positive cut on another branch is
// scope equivocation and must be reported.
func TestValidateIdentityPreservation_MixedPolarity(t *testing.T) {
	var v crosscut.Validator
	g, cutA := addCut(t, graph.New(), "") // depth 1, negative
	g, cutB := addCut(t, g, "")
	g, cutC := addCut(t, g, cutB.ID) // depth 2, positive

	e := mustEntity(t, "x")
	g = addEntity(t, g, e, cutA.ID)
	g = addPredicate(t, g, mustPredicate(t, "P", e.ID), cutC.ID)

	report := v.ValidateIdentityPreservation(g)
	require.False(t, report.IsPreserved)
	require.Len(t, report.Violations, 1)
	require.Contains(t, report.Violations[0], "mixed polarity")
}

// TestAnalyzeCrossCuts_Ligature: entities joined only by a shared ligature
// property cross through the join, not through any predicate.
func TestAnalyzeCrossCuts_Ligature(t *testing.T) {
	var v crosscut.Validator
	g, cutA := addCut(t, graph.New(), "")
	g, cutB := addCut(t, g, "")

	lig := core.NewLigatureID()
	a := mustEntity(t, "x", core.WithEntityProperty(crosscut.LigatureProperty, lig))
	b := mustEntity(t, "x", core.WithEntityProperty(crosscut.LigatureProperty, lig))
	g = addEntity(t, g, a, cutA.ID)
	g = addEntity(t, g, b, cutB.ID)

	ccs := v.AnalyzeCrossCuts(g)
	require.Len(t, ccs, 2)
	for _, cc := range ccs {
		require.Equal(t, crosscut.LigatureCross, cc.Kind)
		require.Len(t, cc.Contexts, 2)
	}

	// Both cuts are negative: no polarity mix, identity holds.
	require.True(t, v.ValidateIdentityPreservation(g).IsPreserved)
}

// TestConstraints_ErasureOrphansEntity rejects removing the only predicate
// binding a cross-cut entity.
func TestConstraints_ErasureOrphansEntity(t *testing.T) {
	var v crosscut.Validator
	e := mustEntity(t, "x")
	g := addEntity(t, graph.New(), e, "")
	g, cut := addCut(t, g, "")
	p := mustPredicate(t, "P", e.ID)
	g = addPredicate(t, g, p, cut.ID)

	vio := v.ValidateTransformationConstraints(g, crosscut.RuleErasure,
		[]core.ItemID{core.ItemID(p.ID)}, "")
	require.Len(t, vio, 1)
	require.Contains(t, vio[0], "orphan cross-cut entity")

	// A second surviving reference makes the same erasure safe.
	q := mustPredicate(t, "Q", e.ID)
	g = addPredicate(t, g, q, "")
	vio = v.ValidateTransformationConstraints(g, crosscut.RuleErasure,
		[]core.ItemID{core.ItemID(p.ID)}, "")
	require.Empty(t, vio)
}

// TestConstraints_SeverCrossCut rejects severing an entity whose identity
// spans contexts.
func TestConstraints_SeverCrossCut(t *testing.T) {
	var v crosscut.Validator
	e := mustEntity(t, "x")
	g := addEntity(t, graph.New(), e, "")
	g, cut := addCut(t, g, "")
	g = addPredicate(t, g, mustPredicate(t, "P", e.ID), cut.ID)
	g = addPredicate(t, g, mustPredicate(t, "Q", e.ID), "")

	vio := v.ValidateTransformationConstraints(g, crosscut.RuleEntitySever,
		[]core.ItemID{core.ItemID(e.ID)}, "")
	require.Len(t, vio, 1)
	require.Contains(t, vio[0], "break identity")
}

// TestConstraints_IterationUnknownTarget flags a missing destination, and an
// unrecognized rule yields no constraints at all.
func TestConstraints_IterationUnknownTarget(t *testing.T) {
	var v crosscut.Validator
	e := mustEntity(t, "x")
	g := addEntity(t, graph.New(), e, "")
	g, cut := addCut(t, g, "")
	g = addPredicate(t, g, mustPredicate(t, "P", e.ID), cut.ID)

	vio := v.ValidateTransformationConstraints(g, crosscut.RuleIteration, nil, "nope")
	require.Len(t, vio, 1)
	require.Contains(t, vio[0], "not found")

	require.Empty(t, v.ValidateTransformationConstraints(g, "made_up_rule",
		[]core.ItemID{core.ItemID(e.ID)}, ""))
}

// TestKindString locks in the canonical crossing names.
func TestKindString(t *testing.T) {
	require.Equal(t, "simple_cross", crosscut.SimpleCross.String())
	require.Equal(t, "multi_cross", crosscut.MultiCross.String())
	require.Equal(t, "nested_cross", crosscut.NestedCross.String())
	require.Equal(t, "ligature_cross", crosscut.LigatureCross.String())
}
