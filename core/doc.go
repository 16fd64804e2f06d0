// Package core provides the in-memory subway graph: named stations,
// line-tagged directed connections and the line-agnostic Network used
// for fewest-hop route search.
//
// The Graph G = (S, C, N) holds:
//
//   - S: the ordered set of registered Stations (identity = name)
//   - C: the connection list, two directed Connections per registered link
//   - N: the Network, Station → neighbor Stations in registration order
//
// Building a graph:
//
//	g := core.NewGraph()
//	_ = g.AddStation("Alpha")
//	_ = g.AddStation("Beta")
//	_ = g.AddConnection("Red", "Alpha", "Beta")
//	// C = [{Red Alpha Beta} {Red Beta Alpha}]
//	// N = {Alpha: [Beta], Beta: [Alpha]}
//
// Station registration policy:
//
//	– AddStation(name) is idempotent: a repeated name is a silent no-op.
//	  The empty name is rejected with ErrEmptyStationName.
//
// Connection registration policy (GraphOption):
//
//	– default (permissive)
//	    AddConnection with an unknown endpoint does nothing and returns nil.
//	– WithStrictStations()
//	    AddConnection with an unknown endpoint returns *UnknownStationError.
//
//	In both modes a rejected call leaves no partial state behind.
//	Identical calls are never deduplicated: registering A–B twice stores four
//	Connections and two Network entries in each direction.
//
// Determinism:
//
//	Stations(), Connections(), Neighbors() and Lines() all reflect registration
//	order. Route search tie-breaking depends on it.
//
// Concurrency:
//
//	A single sync.RWMutex guards the whole graph. Queries take the read lock,
//	so any number of route searches may run against a fully built graph.
//	Construction is expected to precede querying; concurrent mutation is
//	serialized but offers no ordering guarantees.
//
// Errors:
//
//	ErrEmptyStationName – zero-length station name
//	ErrStationNotFound  – unknown station (wrapped by *UnknownStationError)
package core
