package transform_test

import (
	"fmt"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/graph"
	"github.com/katalvlaran/peirce/transform"
)

// ExampleEngine_Apply wraps an asserted predicate in a double cut and
// removes the pair again; both rewrites preserve meaning.
func ExampleEngine_Apply() {
	g := graph.New()
	socrates, _ := core.NewEntity("Socrates", core.Constant)
	g, _ = g.AddEntity(socrates, "")
	person, _ := core.NewPredicate("Person", []core.EntityID{socrates.ID})
	g, _ = g.AddPredicate(person, "")

	e := transform.NewEngine()

	// 1) Wrap Person[Socrates] in two nested cuts:
	wrapped := e.Apply(g, transform.DoubleCutInsertion, nil, g.RootID(),
		transform.WithSubgraphItems(core.ItemID(person.ID)))
	fmt.Println("insertion ok:", wrapped.Ok)
	fmt.Println("contexts after insertion:", wrapped.Result.Contexts().Len())

	// 2) Erase the pair again, targeting the outer cut:
	outer := wrapped.Result.Contexts().Children(wrapped.Result.RootID())[0]
	restored := e.Apply(wrapped.Result, transform.DoubleCutErasure, nil, outer)
	fmt.Println("erasure ok:", restored.Ok)
	fmt.Println("contexts after erasure:", restored.Result.Contexts().Len())

	// 3) Erasing from the positive sheet is never legal:
	rejected := e.Apply(restored.Result, transform.Erasure,
		transform.NewTargetSet(core.ItemID(person.ID)), "")
	fmt.Println("illegal erasure:", rejected.Failure)

	// Output:
	// insertion ok: true
	// contexts after insertion: 3
	// erasure ok: true
	// contexts after erasure: 1
	// illegal erasure: precondition_failed
}
