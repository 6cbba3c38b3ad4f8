// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors shows the fixed down, up, right, left enumeration
// and the filtering of pits and grid edges.
//
//	. P . G
//	. . P .
//	. . . .
//	A . . .
func ExampleGrid_Neighbors() {
	g, err := gridgraph.Parse([]string{
		".P.G",
		"..P.",
		"....",
		"A...",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, c := range []gridgraph.Cell{g.Start(), {Row: 1, Col: 1}} {
		fmt.Printf("%v:", c)
		for n := range g.Neighbors(c) {
			fmt.Printf(" %v", n)
		}
		fmt.Println()
	}

	// Output:
	// (3,0): (2,0) (3,1)
	// (1,1): (2,1) (1,0)
}

////////////////////////////////////////////////////////////////////////////////
// Example: MinPitCrossing
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_MinPitCrossing reports how many pits wall off the goal.
func ExampleGrid_MinPitCrossing() {
	g := gridgraph.MustParse(
		"A.P.",
		".PGP",
		"..P.",
	)
	_, pits := g.MinPitCrossing()
	fmt.Println("connected:", g.Connected())
	fmt.Println("pits to fill:", pits)

	// Output:
	// connected: false
	// pits to fill: 1
}
