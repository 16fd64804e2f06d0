// Package route provides tunable options, error definitions and the
// Result type for route search over a core.Graph.
package route

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/subway/core"
)

// Sentinel errors for route search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("route: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("route: invalid option supplied")

	// ErrMissingConnection is returned when a hop of the found path has no
	// matching Connection in the graph.
	ErrMissingConnection = errors.New("route: no connection for hop")
)

// Reconstruction selects how a station path is turned into Connections.
type Reconstruction int

const (
	// FirstMatch takes the first Connection registered for each hop.
	FirstMatch Reconstruction = iota

	// PreferSameLine stays on the previous hop's line when it serves the hop.
	PreferSameLine
)

// String names the reconstruction mode.
func (r Reconstruction) String() string {
	switch r {
	case FirstMatch:
		return "first-match"
	case PreferSameLine:
		return "prefer-same-line"
	default:
		return fmt.Sprintf("Reconstruction(%d)", int(r))
	}
}

// Option configures Search behavior via functional arguments.
// Invalid Options are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxHops, if > 0, drops partial paths longer than this many hops.
	// 0 disables the bound.
	MaxHops int

	// Mode selects the reconstruction strategy.
	Mode Reconstruction

	// OnEnqueue is called for each partial path pushed onto the queue.
	// The slice must not be retained or modified.
	OnEnqueue func(path []core.Station)

	// OnVisit is called when a station is expanded. A non-nil error aborts
	// the search and is returned wrapped.
	OnVisit func(s core.Station, hops int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no hop bound,
// first-match reconstruction and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxHops:   0,
		Mode:      FirstMatch,
		OnEnqueue: func([]core.Station) {},
		OnVisit:   func(core.Station, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxHops bounds the route length.
//
//	n > 0: paths longer than n hops are not explored
//	n == 0: no bound
//	n < 0: ErrOptionViolation
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithPreferSameLine switches reconstruction to PreferSameLine.
func WithPreferSameLine() Option {
	return func(o *Options) { o.Mode = PreferSameLine }
}

// WithReconstruction sets the reconstruction mode explicitly.
func WithReconstruction(mode Reconstruction) Option {
	return func(o *Options) {
		switch mode {
		case FirstMatch, PreferSameLine:
			o.Mode = mode
		default:
			o.err = fmt.Errorf("%w: unknown reconstruction mode %d", ErrOptionViolation, int(mode))
		}
	}
}

// WithOnEnqueue registers a callback run for every enqueued partial path.
func WithOnEnqueue(fn func(path []core.Station)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run when a station is expanded.
func WithOnVisit(fn func(s core.Station, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the outcome of a route search.
type Result struct {
	// Path lists the stations from start to destination; nil if not found.
	Path []core.Station

	// Route holds one Connection per hop; empty for start == destination
	// and when not found.
	Route core.Route

	// Found reports whether the destination is reachable.
	Found bool

	// Visited counts stations expanded by the search.
	Visited int
}

// Hops returns the route length, or -1 when no route was found.
func (r *Result) Hops() int {
	if !r.Found {
		return -1
	}

	return len(r.Route)
}
