package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/render"
	"github.com/katalvlaran/gridsearch/search"
)

func classroom(t *testing.T) (*gridgraph.Grid, *search.Result) {
	t.Helper()
	g := gridgraph.MustParse(".P.G", "..P.", "....", "A...")
	res, err := bfs.Search(g, g.Start(), g.Goal())
	require.NoError(t, err)
	return g, res
}

func TestText(t *testing.T) {
	g, res := classroom(t)

	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, g, res.Path))
	assert.Equal(t, ". P . G\n. . P *\n* * * *\nA . . .\n\n", buf.String())

	buf.Reset()
	require.NoError(t, render.Text(&buf, g, nil))
	assert.Equal(t, ". P . G\n. . P .\n. . . .\nA . . .\n\n", buf.String())
}

func TestOverlay_IgnoresOutOfBounds(t *testing.T) {
	g := gridgraph.MustParse("AG")
	rows := render.Overlay(g, []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 5, Col: 5}, {Row: 0, Col: 1}})
	assert.Equal(t, [][]rune{{'A', 'G'}}, rows)
}

func TestClassify(t *testing.T) {
	g, res := classroom(t)
	F, P, S, G, R, X := render.ShadeFree, render.ShadePit, render.ShadeStart, render.ShadeGoal, render.ShadeRoute, render.ShadeExpanded
	assert.Equal(t, [][]render.Shade{
		{X, P, F, G},
		{X, X, P, R},
		{R, R, R, R},
		{S, X, X, X},
	}, render.Classify(g, res))

	assert.Equal(t, [][]render.Shade{
		{F, P, F, G},
		{F, F, P, F},
		{F, F, F, F},
		{S, F, F, F},
	}, render.Classify(g, nil))
}

func TestHeatmap_Geometry(t *testing.T) {
	g, res := classroom(t)
	dc := render.Heatmap(g, res, render.HeatmapOptions{CellSize: 40, Title: "BFS"})
	assert.Equal(t, 6*84, dc.Width(), "legend wider than a 4-column grid")
	assert.Equal(t, 28+4*40+24, dc.Height())

	big := gridgraph.MustParse("A..................G")
	dc = render.Heatmap(big, nil, render.HeatmapOptions{})
	assert.Equal(t, 20*render.DefaultCellSize, dc.Width())
}

func TestHeatmap_Colours(t *testing.T) {
	g, res := classroom(t)
	const size = 40
	img := render.Heatmap(g, res, render.HeatmapOptions{CellSize: size}).Image()

	sample := func(r, c int) color.Color {
		return img.At(c*size+size/4, 28+r*size+size/4)
	}
	tests := []struct {
		name string
		r, c int
		hex  string
	}{
		{"pit", 0, 1, "#c62828"},
		{"start", 3, 0, "#1565c0"},
		{"goal", 0, 3, "#ffd600"},
		{"route", 2, 2, "#2e7d32"},
		{"expanded", 0, 0, "#80cbc4"},
		{"free", 0, 2, "#e0e0e0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertColour(t, tt.hex, sample(tt.r, tt.c))
		})
	}
}

func TestSavePNG(t *testing.T) {
	g, res := classroom(t)
	path := filepath.Join(t.TempDir(), "bfs.png")
	require.NoError(t, render.SavePNG(path, g, res, render.HeatmapOptions{Title: "BFS"}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 6*84, img.Bounds().Dx())

	err = render.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), g, res, render.HeatmapOptions{})
	assert.Error(t, err)
}

func TestEncodePNG_NoPath(t *testing.T) {
	g := gridgraph.MustParse("A.P.", ".PGP", "..P.")
	res, err := bfs.Search(g, g.Start(), g.Goal())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, render.EncodePNG(&buf, g, res, render.HeatmapOptions{}))
	_, err = png.Decode(&buf)
	require.NoError(t, err)
}

func assertColour(t *testing.T, hex string, got color.Color) {
	t.Helper()
	dc := gg.NewContext(1, 1)
	dc.SetHexColor(hex)
	dc.Clear()
	want := dc.Image().At(0, 0)
	wr, wg, wb, _ := want.RGBA()
	gr, gn, gb, _ := got.RGBA()
	assert.Equal(t, [3]uint32{wr >> 8, wg >> 8, wb >> 8}, [3]uint32{gr >> 8, gn >> 8, gb >> 8}, "colour %s", hex)
}
