// File: methods_connections.go
// Role: Connection registration and the Network adjacency it maintains.
//
// Determinism:
//   - Connections(), Neighbors(), ConnectionsBetween() and Lines() follow
//     insertion order; route tie-breaking depends on it.
//
// Concurrency:
//   - Registration holds the write lock for the whole update so readers never
//     observe one direction of a link without the other.
package core

// AddConnection links two registered stations on the named line.
//
// Implementation:
//   - Stage 1: Resolve both endpoints under the write lock.
//   - Stage 2: Missing endpoint → nil (permissive) or *UnknownStationError (strict).
//   - Stage 3: Append (line, s1, s2) then (line, s2, s1) to the connection list.
//   - Stage 4: Append s2 to Network[s1], then s1 to Network[s2].
//
// Behavior highlights:
//   - No deduplication: identical calls store duplicate Connections and
//     duplicate neighbor entries.
//   - A rejected call leaves no partial state.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddConnection(line, name1, name2 string) error {
	s1, s2 := NewStation(name1), NewStation(name2)

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, s := range [2]Station{s1, s2} {
		if !g.hasStationLocked(s) {
			if g.strict {
				return &UnknownStationError{Name: s.Name}
			}

			return nil // permissive: silently dropped
		}
	}

	g.connections = append(g.connections,
		NewConnection(line, s1, s2),
		NewConnection(line, s2, s1),
	)
	g.network[s1] = append(g.network[s1], s2)
	g.network[s2] = append(g.network[s2], s1)

	if _, seen := g.lineSeen[line]; !seen {
		g.lineSeen[line] = struct{}{}
		g.lines = append(g.lines, line)
	}
	g.version++

	return nil
}

// Connections returns a copy of every registered Connection in insertion order.
// Complexity: O(C)
func (g *Graph) Connections() []Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Connection, len(g.connections))
	copy(out, g.connections)

	return out
}

// ConnectionCount returns the number of directed Connections (two per link).
func (g *Graph) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.connections)
}

// ConnectionsBetween returns every Connection from → to in insertion order.
// Unknown names simply yield no Connections.
// Complexity: O(C)
func (g *Graph) ConnectionsBetween(from, to string) []Connection {
	sf, st := NewStation(from), NewStation(to)

	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Connection
	for _, c := range g.connections {
		if c.From == sf && c.To == st {
			out = append(out, c)
		}
	}

	return out
}

// Neighbors returns a copy of the Network entry for name: every station
// directly reachable from it, in registration order, duplicates included.
// Returns *UnknownStationError if name is not registered.
func (g *Graph) Neighbors(name string) ([]Station, error) {
	s := NewStation(name)

	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasStationLocked(s) {
		return nil, &UnknownStationError{Name: name}
	}
	nbrs := g.network[s]
	out := make([]Station, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// Lines returns the distinct line names in the order they were first registered.
func (g *Graph) Lines() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.lines))
	copy(out, g.lines)

	return out
}
