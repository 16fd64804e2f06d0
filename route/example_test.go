package route_test

import (
	"fmt"

	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/route"
)

// ExampleSearch finds the fewest-hop route across two lines.
//
//	Alpha ─Red─ Beta ─Red─ Gamma
//	              │
//	             Blue
//	              │
//	            Delta
func ExampleSearch() {
	g := core.NewGraph()
	for _, s := range []string{"Alpha", "Beta", "Gamma", "Delta"} {
		_ = g.AddStation(s)
	}
	_ = g.AddConnection("Red", "Alpha", "Beta")
	_ = g.AddConnection("Red", "Beta", "Gamma")
	_ = g.AddConnection("Blue", "Beta", "Delta")

	res, err := route.Search(g, "Alpha", "Delta")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range res.Route {
		fmt.Println(c)
	}
	fmt.Println("transfers:", res.Route.Transfers())

	// Output:
	// Red: Alpha -> Beta
	// Blue: Beta -> Delta
	// transfers: 1
}

// ExampleSearch_noRoute shows that a disconnected pair is a normal result.
func ExampleSearch_noRoute() {
	g := core.NewGraph()
	_ = g.AddStation("Island")
	_ = g.AddStation("Mainland")

	res, err := route.Search(g, "Island", "Mainland")
	fmt.Println(err, res.Found, res.Hops())

	// Output:
	// <nil> false -1
}
