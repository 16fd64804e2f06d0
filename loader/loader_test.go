package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/loader"
	"github.com/katalvlaran/subway/route"
)

const sample = `A
B
C

L1
A
B
C
`

func TestLoad_Basic(t *testing.T) {
	g := core.NewGraph()
	stats, err := loader.Load(strings.NewReader(sample), g)
	require.NoError(t, err)
	assert.Equal(t, &loader.Stats{Stations: 3, Lines: 1, Links: 2}, stats)

	a, b, c := core.NewStation("A"), core.NewStation("B"), core.NewStation("C")
	assert.Equal(t, []core.Connection{
		core.NewConnection("L1", a, b),
		core.NewConnection("L1", b, a),
		core.NewConnection("L1", b, c),
		core.NewConnection("L1", c, b),
	}, g.Connections())

	res, err := route.Search(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, core.Route{core.NewConnection("L1", a, b), core.NewConnection("L1", b, c)}, res.Route)
}

func TestLoadFile_Metro(t *testing.T) {
	g := core.NewGraph()
	stats, err := loader.LoadFile(filepath.Join("testdata", "metro.txt"), g)
	require.NoError(t, err)
	assert.Equal(t, 8, stats.Stations)
	assert.Equal(t, 4, stats.Lines)
	assert.Equal(t, 3+2+2+1, stats.Links)
	assert.Zero(t, stats.Dropped)
	assert.Equal(t, []string{"Red Line", "Blue Line", "Green Line", "Airport Express"}, g.Lines())

	res, err := route.Search(g, "Harbor Gate", "Airport")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"Red Line", "Green Line", "Airport Express"}, res.Route.Lines())
	assert.Equal(t, 3, res.Hops())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := loader.LoadFile(filepath.Join(t.TempDir(), "nope.txt"), core.NewGraph())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_NilGraph(t *testing.T) {
	_, err := loader.Load(strings.NewReader(sample), nil)
	assert.ErrorIs(t, err, loader.ErrGraphNil)
}

func TestLoad_DuplicateStationsAndWhitespace(t *testing.T) {
	in := "\n  A  \r\nB\r\nA\r\n\r\n\r\n\r\nL1\r\n A\r\nB \r\n"
	g := core.NewGraph()
	stats, err := loader.Load(strings.NewReader(in), g)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Stations)
	assert.Equal(t, 2, g.StationCount())
	assert.Equal(t, 1, stats.Links)
	assert.Len(t, g.ConnectionsBetween("A", "B"), 1)
}

func TestLoad_PermissiveDropsUndeclared(t *testing.T) {
	in := "A\nB\nC\n\nL1\nA\nGhost\nB\nC\n"
	g := core.NewGraph()
	stats, err := loader.Load(strings.NewReader(in), g)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Dropped) // A–Ghost, Ghost–B
	assert.Equal(t, 1, stats.Links)   // B–C
	assert.False(t, g.HasStation("Ghost"))
	assert.Empty(t, g.ConnectionsBetween("A", "B"))
	assert.Len(t, g.ConnectionsBetween("B", "C"), 1)
}

func TestLoad_StrictRejectsUndeclared(t *testing.T) {
	in := "A\nB\nC\n\nL1\nA\nB\n\nL2\nB\nGhost\nC\n"
	g := core.NewGraph()
	_, err := loader.Load(strings.NewReader(in), g, loader.WithStrict())
	require.ErrorIs(t, err, loader.ErrLoadFormat)
	require.ErrorIs(t, err, core.ErrStationNotFound)

	var lfe *loader.LoadFormatError
	require.True(t, errors.As(err, &lfe))
	assert.Equal(t, 11, lfe.Line)
	var use *core.UnknownStationError
	require.True(t, errors.As(err, &use))
	assert.Equal(t, "Ghost", use.Name)

	// L1 applied, nothing of L2
	assert.Len(t, g.ConnectionsBetween("A", "B"), 1)
	assert.Empty(t, g.ConnectionsBetween("B", "C"))
	assert.Equal(t, []string{"L1"}, g.Lines())
}

func TestLoad_FormatErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
	}{
		{"empty input", "", 0},
		{"only blank lines", "\n\n", 2},
		{"truncated station section", "A\nB", 2},
		{"single-station block", "A\nB\n\nL1\nA\n", 4},
		{"name-only block at EOF", "A\nB\n\nL1\nA\nB\n\nL2", 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Load(strings.NewReader(tc.in), core.NewGraph())
			require.ErrorIs(t, err, loader.ErrLoadFormat)
			var lfe *loader.LoadFormatError
			require.True(t, errors.As(err, &lfe))
			assert.Equal(t, tc.line, lfe.Line)
		})
	}
}

func TestLoad_StationsOnly(t *testing.T) {
	g := core.NewGraph()
	stats, err := loader.Load(strings.NewReader("A\nB\n\n"), g)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Stations)
	assert.Zero(t, stats.Lines)
	assert.Empty(t, g.Connections())
}

func TestParse_GraphOptions(t *testing.T) {
	g, stats, err := loader.Parse(strings.NewReader(sample), loader.WithGraphOptions(core.WithStrictStations()))
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.True(t, g.Strict())
	assert.Equal(t, 2, stats.Links)

	g, _, err = loader.Parse(strings.NewReader("A\n"))
	assert.ErrorIs(t, err, loader.ErrLoadFormat)
	assert.Nil(t, g)
}

func TestLoadFormatError_Message(t *testing.T) {
	err := &loader.LoadFormatError{Line: 3, Msg: "bad"}
	assert.Equal(t, "loader: line 3: bad", err.Error())

	err = &loader.LoadFormatError{Line: 3, Msg: "bad", Err: &core.UnknownStationError{Name: "X"}}
	assert.Equal(t, `loader: line 3: bad: core: unknown station "X"`, err.Error())
}
