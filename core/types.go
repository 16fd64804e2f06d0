// Package core defines the Station, Connection, Route and Graph types
// and the sentinel errors shared by every subway package.
//
// Errors:
//
//	ErrEmptyStationName - station name is the empty string.
//	ErrStationNotFound  - requested station does not exist.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyStationName indicates that a station was registered with an empty name.
	ErrEmptyStationName = errors.New("core: station name is empty")

	// ErrStationNotFound indicates an operation referenced an unregistered station.
	ErrStationNotFound = errors.New("core: station not found")
)

// UnknownStationError reports a reference to a station name that was never
// registered. It matches ErrStationNotFound under errors.Is.
type UnknownStationError struct {
	// Name is the station name that could not be resolved.
	Name string
}

// Error implements the error interface.
func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("core: unknown station %q", e.Name)
}

// Unwrap exposes ErrStationNotFound to errors.Is.
func (e *UnknownStationError) Unwrap() error { return ErrStationNotFound }

// Station is a named node in the transit graph.
//
// Name is the only identity field, so two Stations are equal iff their names
// are equal and Station can be used directly as a map key.
type Station struct {
	// Name uniquely identifies the station within its Graph.
	Name string
}

// NewStation constructs a Station value. It has no side effects.
func NewStation(name string) Station { return Station{Name: name} }

// String returns the station name.
func (s Station) String() string { return s.Name }

// Connection is a directed, line-tagged edge between two stations.
type Connection struct {
	// Line is the name of the transit line serving this hop.
	Line string

	// From is the departure station.
	From Station

	// To is the arrival station.
	To Station
}

// NewConnection constructs a directed Connection value.
func NewConnection(line string, from, to Station) Connection {
	return Connection{Line: line, From: from, To: to}
}

// Reverse returns the same hop travelled in the opposite direction.
func (c Connection) Reverse() Connection {
	return Connection{Line: c.Line, From: c.To, To: c.From}
}

// String renders the connection as "Line: From -> To".
func (c Connection) String() string {
	return fmt.Sprintf("%s: %s -> %s", c.Line, c.From.Name, c.To.Name)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictStations makes AddConnection report unknown endpoints as
// *UnknownStationError instead of silently ignoring the call.
func WithStrictStations() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is the subway graph: stations, connections and the derived Network.
//
// mu guards every field below it. version is bumped by each mutation that
// actually changes the graph.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	strict bool // unknown endpoints in AddConnection are errors

	// Storage
	stations    []Station             // registration order
	known       map[Station]struct{}  // membership index over stations
	connections []Connection          // insertion order, two per link
	network     map[Station][]Station // neighbor lists in registration order
	lines       []string              // distinct line names, first-seen order
	lineSeen    map[string]struct{}   // membership index over lines
	version     uint64                // mutation counter
}

// NewGraph creates an empty Graph. By default AddConnection is permissive
// about unknown stations.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		known:    make(map[Station]struct{}),
		network:  make(map[Station][]Station),
		lineSeen: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
