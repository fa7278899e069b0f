package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/graph"
	"github.com/katalvlaran/peirce/transform"
)

// TestErasure_FromNegativeContext removes a self-contained subgraph from an
// odd-depth cut.
func TestErasure_FromNegativeContext(t *testing.T) {
	eng := transform.NewEngine()
	g, cut := addCut(t, graph.New(), "")
	e := mustEntity(t, "x", core.Variable)
	g = addEntity(t, g, e, cut.ID)
	p := mustPredicate(t, "P", e.ID)
	g = addPredicate(t, g, p, cut.ID)

	a := eng.Apply(g, transform.Erasure,
		transform.NewTargetSet(core.ItemID(p.ID), core.ItemID(e.ID)), "")
	require.True(t, a.Ok, "erasure in a cut must succeed: %v", a.Err)
	require.Equal(t, 0, a.Result.EntityCount())
	require.Equal(t, 0, a.Result.PredicateCount())
	require.True(t, a.Result.Contexts().Has(cut.ID), "the cut itself stays")
}

// TestErasure_Rejections covers the no-target and uncontained cases.
func TestErasure_Rejections(t *testing.T) {
	eng := transform.NewEngine()
	g := graph.New()

	a := eng.Apply(g, transform.Erasure, nil, "")
	require.ErrorIs(t, a.Err, transform.ErrNoTargets)

	a = eng.Apply(g, transform.Erasure, transform.NewTargetSet("ghost"), "")
	require.ErrorIs(t, a.Err, transform.ErrItemUncontained)
	require.Equal(t, transform.PreconditionFailed, a.Failure)
}

// TestInsertion_PolarityGate allows even depths and rejects odd ones.
func TestInsertion_PolarityGate(t *testing.T) {
	eng := transform.NewEngine()
	g, cut := addCut(t, graph.New(), "")     // depth 1
	g, inner := addCut(t, g, cut.ID)         // depth 2

	x := mustEntity(t, "x", core.Variable)
	r := mustPredicate(t, "R", x.ID)
	sub := transform.Subgraph{Entities: []core.Entity{x}, Predicates: []core.Predicate{r}}

	// Depth 2 is positive: allowed.
	a := eng.Apply(g, transform.Insertion, nil, inner.ID, transform.WithInsertion(sub))
	require.True(t, a.Ok, "insertion at depth 2 must succeed: %v", a.Err)
	require.Equal(t, 1, a.Meta["entities_delta"])
	require.Equal(t, 1, a.Meta["predicates_delta"])
	ctx, _ := a.Result.ContainerOf(core.ItemID(x.ID))
	require.Equal(t, inner.ID, ctx)

	// Depth 1 is negative: rejected.
	b := eng.Apply(g, transform.Insertion, nil, cut.ID, transform.WithInsertion(sub))
	require.False(t, b.Ok)
	require.ErrorIs(t, b.Err, transform.ErrNegativeContext)

	// Missing destination is a context violation.
	c := eng.Apply(g, transform.Insertion, nil, "")
	require.Equal(t, transform.ContextViolation, c.Failure)
	require.ErrorIs(t, c.Err, transform.ErrTargetContextRequired)
}

// TestIteration_CopiesIntoDeeperContext duplicates a predicate and its
// entity into a nested cut, rewriting the internal reference to the copy.
func TestIteration_CopiesIntoDeeperContext(t *testing.T) {
	eng := transform.NewEngine()
	g, s, person := socratesGraph(t)
	g, outer := addCut(t, g, "")
	g, inner := addCut(t, g, outer.ID)

	a := eng.Apply(g, transform.Iteration,
		transform.NewTargetSet(core.ItemID(s.ID), core.ItemID(person.ID)), inner.ID)
	require.True(t, a.Ok, "iteration must succeed: %v", a.Err)
	require.Equal(t, 1, a.Meta["entities_delta"])
	require.Equal(t, 1, a.Meta["predicates_delta"])

	res := a.Result
	// The originals stay at the root.
	ctx, _ := res.ContainerOf(core.ItemID(person.ID))
	require.Equal(t, res.RootID(), ctx)

	// The copy lives in the destination and references the copied entity.
	var copied core.Predicate
	for _, pid := range res.PredicateIDs() {
		if pid != person.ID {
			copied, _ = res.Predicate(pid)
		}
	}
	require.Equal(t, "Person", copied.Name)
	require.NotEqual(t, []core.EntityID{s.ID}, copied.Entities, "internal reference rewritten")
	ctx, _ = res.ContainerOf(core.ItemID(copied.ID))
	require.Equal(t, inner.ID, ctx)
	require.True(t, res.Validate().IsValid)
}

// TestIteration_SharedExternalReference keeps references to entities outside
// the target set pointing at the original line of identity.
func TestIteration_SharedExternalReference(t *testing.T) {
	eng := transform.NewEngine()
	g, s, person := socratesGraph(t)
	g, cut := addCut(t, g, "")

	a := eng.Apply(g, transform.Iteration,
		transform.NewTargetSet(core.ItemID(person.ID)), cut.ID)
	require.True(t, a.Ok, "iteration must succeed: %v", a.Err)
	require.Equal(t, 0, a.Meta["entities_delta"], "no entity was in the target set")

	res := a.Result
	require.Equal(t, 2, res.PredicateCount())
	for _, pid := range res.PredicateIDs() {
		p, _ := res.Predicate(pid)
		require.Equal(t, []core.EntityID{s.ID}, p.Entities, "both copies share Socrates")
	}
}

// TestIteration_ShallowerTargetRejected blocks copying toward the sheet.
func TestIteration_ShallowerTargetRejected(t *testing.T) {
	eng := transform.NewEngine()
	g, cut := addCut(t, graph.New(), "")
	e := mustEntity(t, "x", core.Variable)
	g = addEntity(t, g, e, cut.ID)
	p := mustPredicate(t, "P", e.ID)
	g = addPredicate(t, g, p, cut.ID)

	a := eng.Apply(g, transform.Iteration,
		transform.NewTargetSet(core.ItemID(p.ID)), g.RootID())
	require.False(t, a.Ok)
	require.ErrorIs(t, a.Err, transform.ErrShallowerTarget)
}

// TestDeiteration removes a copy when the original remains accessible from
// an enclosing context.
func TestDeiteration(t *testing.T) {
	eng := transform.NewEngine()
	g, s, _ := socratesGraph(t)
	g, cut := addCut(t, g, "")
	copyP := mustPredicate(t, "Person", s.ID)
	g = addPredicate(t, g, copyP, cut.ID)

	a := eng.Apply(g, transform.Deiteration,
		transform.NewTargetSet(core.ItemID(copyP.ID)), "")
	require.True(t, a.Ok, "deiteration must succeed: %v", a.Err)
	require.Equal(t, -1, a.Meta["predicates_delta"])
	require.False(t, a.Result.HasPredicate(copyP.ID))
}

// TestDeiteration_NoIsomorph classifies a missing partner.
func TestDeiteration_NoIsomorph(t *testing.T) {
	eng := transform.NewEngine()
	g, _, person := socratesGraph(t)

	a := eng.Apply(g, transform.Deiteration,
		transform.NewTargetSet(core.ItemID(person.ID)), "")
	require.False(t, a.Ok)
	require.Equal(t, transform.IsomorphismFailed, a.Failure)
	require.ErrorIs(t, a.Err, transform.ErrNoIsomorph)
}

// TestEntityJoin_Rejections covers non-entity targets and singleton joins.
func TestEntityJoin_Rejections(t *testing.T) {
	eng := transform.NewEngine()
	g, _, person := socratesGraph(t)

	a := eng.Apply(g, transform.EntityJoin,
		transform.NewTargetSet(core.ItemID(person.ID)), "")
	require.ErrorIs(t, a.Err, transform.ErrNotAnEntity)

	b := mustEntity(t, "b", core.Variable)
	g = addEntity(t, g, b, "")
	at := eng.Apply(g, transform.EntityJoin,
		transform.NewTargetSet(core.ItemID(b.ID)), "")
	require.ErrorIs(t, at.Err, transform.ErrTooFewEntities)
}

// TestEntitySever splits a shared line: k referencing predicates end up
// with k distinct entities, the first keeping the original.
func TestEntitySever(t *testing.T) {
	eng := transform.NewEngine()
	x := mustEntity(t, "x", core.Variable)
	g := addEntity(t, graph.New(), x, "")
	p := mustPredicate(t, "P", x.ID)
	q := mustPredicate(t, "Q", x.ID)
	r := mustPredicate(t, "R", x.ID)
	g = addPredicate(t, g, p, "")
	g = addPredicate(t, g, q, "")
	g = addPredicate(t, g, r, "")

	a := eng.Apply(g, transform.EntitySever,
		transform.NewTargetSet(core.ItemID(x.ID)), "")
	require.True(t, a.Ok, "sever must succeed: %v", a.Err)
	require.Equal(t, 2, a.Meta["entities_delta"])

	res := a.Result
	require.Equal(t, 3, res.EntityCount())

	// Every predicate now references exactly one distinct entity.
	seen := make(map[core.EntityID]struct{})
	for _, pid := range res.PredicateIDs() {
		rec, _ := res.Predicate(pid)
		require.Len(t, rec.Entities, 1)
		_, dup := seen[rec.Entities[0]]
		require.False(t, dup, "each predicate gets its own line")
		seen[rec.Entities[0]] = struct{}{}
	}
	require.True(t, res.HasEntity(x.ID), "the original survives with one predicate")
	require.Len(t, res.PredicatesReferencing(x.ID), 1)
}

// TestEntitySever_NotShared rejects severing an entity with one reference.
func TestEntitySever_NotShared(t *testing.T) {
	eng := transform.NewEngine()
	g, s, _ := socratesGraph(t)

	a := eng.Apply(g, transform.EntitySever,
		transform.NewTargetSet(core.ItemID(s.ID)), "")
	require.False(t, a.Ok)
	require.ErrorIs(t, a.Err, transform.ErrEntityNotShared)
}

// TestDoubleCutErasure_Rejections covers missing targets and contexts that
// do not match the pattern.
func TestDoubleCutErasure_Rejections(t *testing.T) {
	eng := transform.NewEngine()
	g, cut := addCut(t, graph.New(), "")

	a := eng.Apply(g, transform.DoubleCutErasure, nil, "")
	require.Equal(t, transform.ContextViolation, a.Failure)

	// A lone cut with no child cut is not a double cut.
	b := eng.Apply(g, transform.DoubleCutErasure, nil, cut.ID)
	require.ErrorIs(t, b.Err, transform.ErrNoDoubleCut)

	// An outer cut with extra content besides the inner cut does not match.
	g, _ = addCut(t, g, cut.ID)
	e := mustEntity(t, "x", core.Variable)
	g = addEntity(t, g, e, cut.ID)
	c := eng.Apply(g, transform.DoubleCutErasure, nil, cut.ID)
	require.ErrorIs(t, c.Err, transform.ErrNoDoubleCut)
}

// TestDoubleCutErasure_NestedCut reparents a nested cut, and its content,
// to the grandparent instead of deleting it.
func TestDoubleCutErasure_NestedCut(t *testing.T) {
	eng := transform.NewEngine()
	g, outer := addCut(t, graph.New(), "")
	g, inner := addCut(t, g, outer.ID)
	g, nested := addCut(t, g, inner.ID) // depth 3, survives the erasure
	e := mustEntity(t, "x", core.Variable)
	g = addEntity(t, g, e, nested.ID)

	a := eng.Apply(g, transform.DoubleCutErasure, nil, outer.ID)
	require.True(t, a.Ok, "erasure with nested cut must succeed: %v", a.Err)

	res := a.Result
	require.False(t, res.Contexts().Has(outer.ID))
	require.False(t, res.Contexts().Has(inner.ID))
	require.True(t, res.Contexts().Has(nested.ID))
	require.Equal(t, 1, res.Contexts().Depth(nested.ID), "depth recomputed after lifting")
	require.True(t, res.HasEntity(e.ID))
	require.True(t, res.Validate().IsValid)
}

// TestDoubleCutInsertion_WrapsCut wraps a whole cut: the cut is reparented
// under the fresh inner cut, so its record and its subtree depths follow the
// containment change.
func TestDoubleCutInsertion_WrapsCut(t *testing.T) {
	eng := transform.NewEngine()
	g, cut := addCut(t, graph.New(), "")
	e := mustEntity(t, "x", core.Variable)
	g = addEntity(t, g, e, cut.ID)

	a := eng.Apply(g, transform.DoubleCutInsertion, nil, g.RootID(),
		transform.WithSubgraphItems(core.ItemID(cut.ID)))
	require.True(t, a.Ok, "wrapping a cut must succeed: %v", a.Err)

	res := a.Result
	children := res.Contexts().Children(res.RootID())
	require.Len(t, children, 1, "only the outer cut hangs off the root")
	outer := children[0]
	inner := res.Contexts().Children(outer)[0]

	// The record agrees with the item sets: parent is the inner cut and the
	// depth chain was recomputed for the whole subtree.
	rec, ok := res.Contexts().Context(cut.ID)
	require.True(t, ok)
	require.Equal(t, inner, rec.Parent)
	require.Equal(t, 3, res.Contexts().Depth(cut.ID))

	ctx, ok := res.ContainerOf(core.ItemID(e.ID))
	require.True(t, ok)
	require.Equal(t, cut.ID, ctx)
	require.Equal(t, core.Negative, core.PolarityOf(res.Contexts().Depth(ctx)))
	require.True(t, res.Validate().IsValid)
	require.Empty(t, res.Contexts().ValidateIntegrity())
}

// TestDeiteration_TupleOrderSignificant: R[b,a] is not a copy of R[a,b];
// argument positions matter.
func TestDeiteration_TupleOrderSignificant(t *testing.T) {
	eng := transform.NewEngine()
	a := mustEntity(t, "a", core.Variable)
	b := mustEntity(t, "b", core.Variable)
	g := addEntity(t, graph.New(), a, "")
	g = addEntity(t, g, b, "")
	g = addPredicate(t, g, mustPredicate(t, "R", a.ID, b.ID), "")
	g, cut := addCut(t, g, "")

	// Swapped tuple: no match, deiteration is rejected.
	swapped := mustPredicate(t, "R", b.ID, a.ID)
	g2 := addPredicate(t, g, swapped, cut.ID)
	at := eng.Apply(g2, transform.Deiteration,
		transform.NewTargetSet(core.ItemID(swapped.ID)), "")
	require.False(t, at.Ok)
	require.Equal(t, transform.IsomorphismFailed, at.Failure)

	// Same tuple order: the copy is removable.
	same := mustPredicate(t, "R", a.ID, b.ID)
	g3 := addPredicate(t, g, same, cut.ID)
	at = eng.Apply(g3, transform.Deiteration,
		transform.NewTargetSet(core.ItemID(same.ID)), "")
	require.True(t, at.Ok, "order-matching copy must deiterate: %v", at.Err)
}

// TestDoubleCutInsertion_WrapOutsideTarget rejects wrap items that are not
// directly in the target context.
func TestDoubleCutInsertion_WrapOutsideTarget(t *testing.T) {
	eng := transform.NewEngine()
	g, cut := addCut(t, graph.New(), "")
	e := mustEntity(t, "x", core.Variable)
	g = addEntity(t, g, e, cut.ID)

	a := eng.Apply(g, transform.DoubleCutInsertion, nil, g.RootID(),
		transform.WithSubgraphItems(core.ItemID(e.ID)))
	require.False(t, a.Ok)
	require.ErrorIs(t, a.Err, transform.ErrOutsideTarget)
}
