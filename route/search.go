// Package route implements breadth-first route search over a core.Graph
// and the reconstruction of station paths into line-tagged Routes.
package route

import (
	"context"
	"fmt"

	"github.com/katalvlaran/subway/core"
)

// walker encapsulates mutable search state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	dest    core.Station
	queue   [][]core.Station
	visited map[core.Station]bool
}

// Search finds a fewest-hop route from start to destination.
//
// Returns *core.UnknownStationError if either name is not registered,
// ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// ErrMissingConnection if reconstruction fails, a wrapped OnVisit error, or
// the context error on cancellation. An unreachable destination is not an
// error: the Result has Found == false and an empty Route.
func Search(g *core.Graph, start, destination string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	from, err := g.Station(start)
	if err != nil {
		return nil, err
	}
	to, err := g.Station(destination)
	if err != nil {
		return nil, err
	}

	// zero hops
	if from == to {
		return &Result{Path: []core.Station{from}, Route: core.Route{}, Found: true}, nil
	}

	n := g.StationCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		dest:    to,
		queue:   make([][]core.Station, 0, n),
		visited: make(map[core.Station]bool, n),
	}
	w.enqueue([]core.Station{from})

	path, err := w.loop()
	if err != nil {
		return nil, err
	}
	res := &Result{Route: core.Route{}, Visited: len(w.visited)}
	if path == nil {
		return res, nil
	}

	rt, err := Reconstruct(g, path, o.Mode)
	if err != nil {
		return nil, err
	}
	res.Path = path
	res.Route = rt
	res.Found = true

	return res, nil
}

// Distance returns the fewest-hop distance between two stations, or -1
// when the destination is unreachable.
func Distance(g *core.Graph, start, destination string) (int, error) {
	res, err := Search(g, start, destination)
	if err != nil {
		return 0, err
	}

	return res.Hops(), nil
}

// enqueue calls OnEnqueue and appends path to the queue.
func (w *walker) enqueue(path []core.Station) {
	w.opts.OnEnqueue(path)
	w.queue = append(w.queue, path)
}

// loop processes the queue until the destination is dequeued, the queue is
// exhausted, or an error occurs. A nil path means no route.
func (w *walker) loop() ([]core.Station, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		path := w.queue[0]
		w.queue = w.queue[1:]
		current := path[len(path)-1]

		if current == w.dest {
			return path, nil
		}
		// a later copy of an expanded station can only yield paths that
		// lose the FIFO race to the first copy's
		if w.visited[current] {
			continue
		}
		w.visited[current] = true

		hops := len(path) - 1
		if err := w.opts.OnVisit(current, hops); err != nil {
			return nil, fmt.Errorf("route: OnVisit error at %q: %w", current.Name, err)
		}
		if w.opts.MaxHops > 0 && hops >= w.opts.MaxHops {
			continue
		}
		if err := w.expand(path, current); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// expand enqueues path+neighbor for every unvisited Network neighbor of
// current, in Network order.
func (w *walker) expand(path []core.Station, current core.Station) error {
	neighbors, err := w.graph.Neighbors(current.Name)
	if err != nil {
		return fmt.Errorf("route: neighbors of %q: %w", current.Name, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		next := make([]core.Station, len(path)+1)
		copy(next, path)
		next[len(path)] = nbr
		w.enqueue(next)
	}

	return nil
}
