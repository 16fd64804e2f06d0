package route

import (
	"fmt"

	"github.com/katalvlaran/subway/core"
)

// Reconstruct turns a station path [s0, s1, ..., sn] into a Route with one
// Connection per consecutive pair.
//
// FirstMatch picks, for each hop, the first Connection in insertion order.
// PreferSameLine picks the first Connection on the previous hop's line when
// there is one and falls back to FirstMatch otherwise; the first hop is
// always FirstMatch.
//
// A hop without any Connection fails the whole reconstruction with
// ErrMissingConnection. Paths of length 0 or 1 yield an empty Route.
func Reconstruct(g *core.Graph, path []core.Station, mode Reconstruction) (core.Route, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(path) < 2 {
		return core.Route{}, nil
	}

	rt := make(core.Route, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		candidates := g.ConnectionsBetween(path[i].Name, path[i+1].Name)
		if len(candidates) == 0 {
			return nil, fmt.Errorf("%w: %s -> %s", ErrMissingConnection, path[i].Name, path[i+1].Name)
		}

		pick := candidates[0]
		if mode == PreferSameLine && i > 0 {
			prev := rt[i-1].Line
			for _, c := range candidates {
				if c.Line == prev {
					pick = c
					break
				}
			}
		}
		rt = append(rt, pick)
	}

	return rt, nil
}
