package core_test

import (
	"fmt"

	"github.com/katalvlaran/subway/core"
)

// ExampleGraph demonstrates registration, the mirrored connections and the
// Network neighbor lists.
func ExampleGraph() {
	g := core.NewGraph()
	for _, s := range []string{"Alpha", "Beta", "Gamma"} {
		_ = g.AddStation(s)
	}
	_ = g.AddConnection("Red", "Alpha", "Beta")
	_ = g.AddConnection("Red", "Beta", "Gamma")
	_ = g.AddConnection("Red", "Alpha", "Nowhere") // silently dropped

	for _, c := range g.Connections() {
		fmt.Println(c)
	}
	nbrs, _ := g.Neighbors("Beta")
	fmt.Println("Beta neighbors:", nbrs)

	// Output:
	// Red: Alpha -> Beta
	// Red: Beta -> Alpha
	// Red: Beta -> Gamma
	// Red: Gamma -> Beta
	// Beta neighbors: [Alpha Gamma]
}

// ExampleWithStrictStations shows the strict registration mode.
func ExampleWithStrictStations() {
	g := core.NewGraph(core.WithStrictStations())
	_ = g.AddStation("Alpha")

	err := g.AddConnection("Red", "Alpha", "Nowhere")
	fmt.Println(err)

	// Output:
	// core: unknown station "Nowhere"
}
