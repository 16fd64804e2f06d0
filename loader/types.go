package loader

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/subway/core"
)

// ErrLoadFormat classifies every malformed-input failure.
// Usage: if errors.Is(err, ErrLoadFormat) { /* reject the map file */ }.
var ErrLoadFormat = errors.New("loader: malformed subway map")

// ErrGraphNil is returned if a nil graph pointer is passed to Load.
var ErrGraphNil = errors.New("loader: graph is nil")

// LoadFormatError locates a malformed-input failure.
// It matches ErrLoadFormat and, when set, Err under errors.Is/As.
type LoadFormatError struct {
	// Line is the 1-based input line the problem was detected on.
	Line int

	// Msg describes the problem.
	Msg string

	// Err is an optional underlying cause, e.g. *core.UnknownStationError.
	Err error
}

// Error implements the error interface.
func (e *LoadFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("loader: line %d: %s: %v", e.Line, e.Msg, e.Err)
	}

	return fmt.Sprintf("loader: line %d: %s", e.Line, e.Msg)
}

// Unwrap exposes ErrLoadFormat and the underlying cause.
func (e *LoadFormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrLoadFormat, e.Err}
	}

	return []error{ErrLoadFormat}
}

// Stats summarizes what a load added to the graph.
type Stats struct {
	// Stations counts newly registered stations (duplicates excluded).
	Stations int

	// Lines counts line blocks read.
	Lines int

	// Links counts station pairs passed to AddConnection.
	Links int

	// Dropped counts pairs skipped because a station was undeclared.
	Dropped int
}

// Option configures a load.
type Option func(*options)

type options struct {
	strict    bool
	graphOpts []core.GraphOption
}

// WithStrict turns references to undeclared stations into load errors.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithGraphOptions sets the options Parse uses to create its graph.
// Load and LoadFile ignore them.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *options) { o.graphOpts = append(o.graphOpts, opts...) }
}
