package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/loader"
	"github.com/katalvlaran/subway/render"
	"github.com/katalvlaran/subway/route"
)

const mapText = `A
B
C
D

Red
A
B
C

Blue
C
D
`

func loadMap(t *testing.T) *core.Graph {
	t.Helper()
	g, _, err := loader.Parse(strings.NewReader(mapText))
	require.NoError(t, err)

	return g
}

func TestPrinter_StationsAndConnections(t *testing.T) {
	g := loadMap(t)
	var buf bytes.Buffer
	p := render.NewPrinter(&buf)

	require.NoError(t, p.Stations(g))
	require.NoError(t, p.Connections(g))
	assert.Equal(t, `Stations (4):
  A
  B
  C
  D
Connections (6):
  Red: A -> B
  Red: B -> A
  Red: B -> C
  Red: C -> B
  Blue: C -> D
  Blue: D -> C
`, buf.String())
}

func TestPrinter_RouteWithTransfer(t *testing.T) {
	g := loadMap(t)
	res, err := route.Search(g, "A", "D")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.NewPrinter(&buf).Result(res, "A", "D"))
	assert.Equal(t, `Start out at A.
Get on the Red line heading towards B.
  Continue past B...
When you get to C, get off the Red.
Switch over to the Blue, heading towards D.
Get off at D and enjoy yourself!
`, buf.String())
}

func TestPrinter_ResultEdgeCases(t *testing.T) {
	g := loadMap(t)
	require.NoError(t, g.AddStation("Island"))

	var buf bytes.Buffer
	p := render.NewPrinter(&buf)

	same, err := route.Search(g, "A", "A")
	require.NoError(t, err)
	require.NoError(t, p.Result(same, "A", "A"))

	none, err := route.Search(g, "A", "Island")
	require.NoError(t, err)
	require.NoError(t, p.Result(none, "A", "Island"))
	require.NoError(t, p.Route(nil))

	assert.Equal(t, "You are already at A.\nNo route from A to Island.\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrinter_StickyWriteError(t *testing.T) {
	g := loadMap(t)
	p := render.NewPrinter(failingWriter{})
	assert.EqualError(t, p.Stations(g), "disk full")
	assert.EqualError(t, p.Connections(g), "disk full")
}
