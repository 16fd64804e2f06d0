// File: methods_stations.go
// Role: Station lifecycle & queries.
//
// Determinism:
//   - Stations() returns stations in registration order.
//
// Concurrency:
//   - All methods take g.mu; queries use the read lock.
package core

// AddStation registers a station if no station with that name exists.
//
// Behavior highlights:
//   - Idempotent: adding an existing name is a silent no-op and does not
//     bump Version().
//   - No format constraints apply to the name beyond being non-empty.
//
// Errors:
//   - ErrEmptyStationName: if name == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddStation(name string) error {
	if name == "" {
		return ErrEmptyStationName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	s := NewStation(name)
	if _, exists := g.known[s]; exists {
		return nil // no-op for existing station
	}
	g.known[s] = struct{}{}
	g.stations = append(g.stations, s)
	g.version++

	return nil
}

// HasStation reports whether a station with the given name is registered
// (empty name ⇒ false).
// Complexity: O(1)
func (g *Graph) HasStation(name string) bool {
	if name == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.known[NewStation(name)]

	return ok
}

// Station resolves a name to its registered Station.
// Returns *UnknownStationError if the name is not registered.
func (g *Graph) Station(name string) (Station, error) {
	if !g.HasStation(name) {
		return Station{}, &UnknownStationError{Name: name}
	}

	return NewStation(name), nil
}

// Stations returns a copy of the registered stations in registration order.
// Complexity: O(S)
func (g *Graph) Stations() []Station {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Station, len(g.stations))
	copy(out, g.stations)

	return out
}

// StationCount returns the number of registered stations.
func (g *Graph) StationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.stations)
}

// hasStationLocked is HasStation for callers already holding g.mu.
func (g *Graph) hasStationLocked(s Station) bool {
	_, ok := g.known[s]

	return ok
}
