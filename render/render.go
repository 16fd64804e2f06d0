// Package render prints stations, connections and routes as plain text.
package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/route"
)

// Printer writes human-readable subway output to an io.Writer.
// The first write error is kept and returned by every later call.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Stations lists every station in registration order.
func (p *Printer) Stations(g *core.Graph) error {
	stations := g.Stations()
	p.printf("Stations (%d):\n", len(stations))
	for _, s := range stations {
		p.printf("  %s\n", s.Name)
	}

	return p.err
}

// Connections lists every directed connection in insertion order.
func (p *Printer) Connections(g *core.Graph) error {
	conns := g.Connections()
	p.printf("Connections (%d):\n", len(conns))
	for _, c := range conns {
		p.printf("  %s\n", c)
	}

	return p.err
}

// Route narrates a non-empty route as riding instructions. An empty route
// prints nothing.
func (p *Printer) Route(r core.Route) error {
	if len(r) == 0 {
		return p.err
	}

	line := r[0].Line
	p.printf("Start out at %s.\n", r[0].From.Name)
	p.printf("Get on the %s line heading towards %s.\n", line, r[0].To.Name)
	for _, c := range r[1:] {
		if c.Line == line {
			p.printf("  Continue past %s...\n", c.From.Name)
			continue
		}
		p.printf("When you get to %s, get off the %s.\n", c.From.Name, line)
		p.printf("Switch over to the %s, heading towards %s.\n", c.Line, c.To.Name)
		line = c.Line
	}
	p.printf("Get off at %s and enjoy yourself!\n", r[len(r)-1].To.Name)

	return p.err
}

// Result prints the outcome of a route query between from and to.
func (p *Printer) Result(res *route.Result, from, to string) error {
	switch {
	case res == nil || !res.Found:
		p.printf("No route from %s to %s.\n", from, to)
	case len(res.Route) == 0:
		p.printf("You are already at %s.\n", from)
	default:
		return p.Route(res.Route)
	}

	return p.err
}
