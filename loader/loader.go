package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/subway/core"
)

// lineReader yields trimmed input lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next trimmed line; ok is false at EOF or on a read error.
func (lr *lineReader) next() (text string, ok bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++

	return strings.TrimSpace(lr.sc.Text()), true
}

// block is one parsed line block.
type block struct {
	line     string
	start    int      // input line of the line name
	stations []string // station names in order
	lines    []int    // input line of each station name
}

// Load reads a subway map from r into g.
// See the package documentation for the format and error policy.
func Load(r io.Reader, g *core.Graph, opts ...Option) (*Stats, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	lr := &lineReader{sc: bufio.NewScanner(r)}
	stats := &Stats{}

	before := g.StationCount()
	err := readStations(lr, g)
	stats.Stations = g.StationCount() - before
	if err != nil {
		return stats, err
	}

	for {
		b, err := readBlock(lr)
		if err != nil {
			return stats, err
		}
		if b == nil {
			break
		}
		if err := applyBlock(g, b, o.strict, stats); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

// LoadFile opens path and loads it into g.
func LoadFile(path string, g *core.Graph, opts ...Option) (*Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: could not open map file: %w", err)
	}
	defer f.Close()

	return Load(f, g, opts...)
}

// Parse loads r into a fresh graph built with the WithGraphOptions options.
func Parse(r io.Reader, opts ...Option) (*core.Graph, *Stats, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	g := core.NewGraph(o.graphOpts...)
	stats, err := Load(r, g, opts...)
	if err != nil {
		return nil, stats, err
	}

	return g, stats, nil
}

// readStations consumes section 1 up to and including its blank terminator.
func readStations(lr *lineReader, g *core.Graph) error {
	seen := 0
	for {
		text, ok := lr.next()
		if !ok {
			if err := lr.sc.Err(); err != nil {
				return fmt.Errorf("loader: read: %w", err)
			}
			if seen == 0 {
				return &LoadFormatError{Line: lr.line, Msg: "no stations declared"}
			}

			return &LoadFormatError{Line: lr.line, Msg: "station section not terminated by a blank line"}
		}
		if text == "" {
			if seen == 0 {
				continue // leading blank lines
			}

			return nil
		}
		if err := g.AddStation(text); err != nil {
			return &LoadFormatError{Line: lr.line, Msg: "invalid station", Err: err}
		}
		seen++
	}
}

// readBlock reads the next line block. It returns nil, nil at a clean EOF.
func readBlock(lr *lineReader) (*block, error) {
	var b *block
	for {
		text, ok := lr.next()
		if !ok {
			if err := lr.sc.Err(); err != nil {
				return nil, fmt.Errorf("loader: read: %w", err)
			}
			break
		}
		if text == "" {
			if b == nil {
				continue // blank lines between blocks
			}
			break
		}
		if b == nil {
			b = &block{line: text, start: lr.line}
			continue
		}
		b.stations = append(b.stations, text)
		b.lines = append(b.lines, lr.line)
	}
	if b == nil {
		return nil, nil
	}
	if len(b.stations) < 2 {
		return nil, &LoadFormatError{
			Line: b.start,
			Msg:  fmt.Sprintf("line %q lists %d station(s), need at least 2", b.line, len(b.stations)),
		}
	}

	return b, nil
}

// applyBlock validates b against g and then registers its consecutive pairs.
func applyBlock(g *core.Graph, b *block, strict bool, stats *Stats) error {
	known := make([]bool, len(b.stations))
	for i, name := range b.stations {
		known[i] = g.HasStation(name)
		if !known[i] && strict {
			return &LoadFormatError{
				Line: b.lines[i],
				Msg:  fmt.Sprintf("line %q references an undeclared station", b.line),
				Err:  &core.UnknownStationError{Name: name},
			}
		}
	}

	stats.Lines++
	for i := 0; i+1 < len(b.stations); i++ {
		if !known[i] || !known[i+1] {
			stats.Dropped++
			continue
		}
		if err := g.AddConnection(b.line, b.stations[i], b.stations[i+1]); err != nil {
			return &LoadFormatError{Line: b.lines[i+1], Msg: "could not connect stations", Err: err}
		}
		stats.Links++
	}

	return nil
}
