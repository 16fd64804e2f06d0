// File: methods_clone.go
// Role: Deep copy, configuration and version queries.
package core

// Clone returns a deep copy of g: stations, connections, Network and flags.
// The clone starts at the same Version() and evolves independently.
// Complexity: O(S + C)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var opts []GraphOption
	if g.strict {
		opts = append(opts, WithStrictStations())
	}
	clone := NewGraph(opts...)

	clone.stations = append([]Station(nil), g.stations...)
	for s := range g.known {
		clone.known[s] = struct{}{}
	}
	clone.connections = append([]Connection(nil), g.connections...)
	for s, nbrs := range g.network {
		clone.network[s] = append([]Station(nil), nbrs...)
	}
	clone.lines = append([]string(nil), g.lines...)
	for l := range g.lineSeen {
		clone.lineSeen[l] = struct{}{}
	}
	clone.version = g.version

	return clone
}

// Strict reports whether AddConnection rejects unknown stations.
func (g *Graph) Strict() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.strict
}

// Version returns a counter bumped by every effective mutation. Two reads
// returning the same value observed the same graph contents.
func (g *Graph) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}
