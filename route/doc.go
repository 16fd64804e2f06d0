// Package route answers fewest-hop route queries over a core.Graph.
//
// What
//
//   - Breadth-first search over the line-agnostic Network from a start
//     station, expanding whole partial paths level by level.
//   - Reconstruction of the winning station path into a core.Route: one
//     concrete, line-tagged core.Connection per hop.
//   - Returns a Result containing:
//   - Path:    stations from start to destination
//   - Route:   the Connections to ride
//   - Found:   false when the stations are in different components
//   - Visited: number of stations expanded
//
// Search rules
//
//	A station is marked visited when its path is dequeued and expanded, not
//	when it is first enqueued, so the same station may sit in the queue on
//	several partial paths. The first path whose last station is the
//	destination wins. FIFO order makes it a fewest-hop path; ties are broken
//	by Network neighbor order, i.e. the order connections were registered.
//	Callers must not read anything into which of several equal-length paths
//	is returned.
//
// Reconstruction
//
//   - Default: for every hop take the first Connection in insertion order.
//     This does not minimize line changes.
//   - WithPreferSameLine: after the first hop, keep riding the previous hop's
//     line whenever that line serves the next hop.
//   - A hop with no Connection at all aborts with ErrMissingConnection.
//
// Usage
//
//	res, err := route.Search(g, "Alpha", "Omega")
//	switch {
//	case errors.Is(err, core.ErrStationNotFound):
//	    // bad input
//	case err != nil:
//	    // ErrGraphNil, ErrOptionViolation, ErrMissingConnection, ctx error
//	case !res.Found:
//	    // disconnected
//	default:
//	    for _, c := range res.Route { ... }
//	}
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per dequeue.
//   - WithMaxHops(n):         give up on paths longer than n hops (n>0).
//   - WithPreferSameLine():   same-line reconstruction.
//   - WithOnEnqueue(fn):      hook when a partial path is enqueued.
//   - WithOnVisit(fn):        hook when a station is expanded; an error aborts.
//
// Complexity (S = stations, C = connections)
//
//   - Search:         O(S + C) expansions; each queued path copies its prefix.
//   - Reconstruction: O(hops · C) connection-list scans.
package route
