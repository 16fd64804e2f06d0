// File: route.go
// Role: Route value type produced by route search.
package core

// Route is an ordered sequence of Connections forming one directed walk.
// Consecutive Connections chain: r[i].To == r[i+1].From.
type Route []Connection

// Hops returns the number of Connections in the route.
func (r Route) Hops() int { return len(r) }

// Valid reports whether the chain invariant holds. The empty route is valid.
func (r Route) Valid() bool {
	for i := 1; i < len(r); i++ {
		if r[i-1].To != r[i].From {
			return false
		}
	}

	return true
}

// Stations lists every station the route touches, start first.
// The empty route yields nil.
func (r Route) Stations() []Station {
	if len(r) == 0 {
		return nil
	}
	out := make([]Station, 0, len(r)+1)
	out = append(out, r[0].From)
	for _, c := range r {
		out = append(out, c.To)
	}

	return out
}

// Lines lists the line of each ride segment in order; consecutive hops on
// the same line collapse into one entry.
func (r Route) Lines() []string {
	var out []string
	for _, c := range r {
		if n := len(out); n == 0 || out[n-1] != c.Line {
			out = append(out, c.Line)
		}
	}

	return out
}

// Transfers counts line changes along the route.
func (r Route) Transfers() int {
	if n := len(r.Lines()); n > 1 {
		return n - 1
	}

	return 0
}
