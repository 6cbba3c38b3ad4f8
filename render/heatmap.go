package render

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// Shade classifies one heatmap cell.
type Shade uint8

const (
	ShadeFree Shade = iota
	ShadePit
	ShadeStart
	ShadeGoal
	ShadeRoute
	ShadeExpanded
)

// Palette maps each Shade to its fill colour.
var Palette = [...]string{
	ShadeFree:     "#e0e0e0",
	ShadePit:      "#c62828",
	ShadeStart:    "#1565c0",
	ShadeGoal:     "#ffd600",
	ShadeRoute:    "#2e7d32",
	ShadeExpanded: "#80cbc4",
}

var legend = [...]struct {
	shade Shade
	label string
}{
	{ShadeFree, "free"},
	{ShadePit, "pit"},
	{ShadeStart, "start"},
	{ShadeGoal, "goal"},
	{ShadeRoute, "path"},
	{ShadeExpanded, "expanded"},
}

// Layout constants, in pixels.
const (
	DefaultCellSize = 32
	titleHeight     = 28
	legendHeight    = 24
	legendItemWidth = 84
	arrowColor      = "#ff0000"
)

// HeatmapOptions controls the PNG rendering.
type HeatmapOptions struct {
	// CellSize is the side of one grid cell; values below 8 select
	// DefaultCellSize.
	CellSize int
	// Title is drawn centred above the grid.
	Title string
}

func (o HeatmapOptions) cellSize() int {
	if o.CellSize < 8 {
		return DefaultCellSize
	}
	return o.CellSize
}

// Classify shades every cell of g. Terrain wins over search state: Start,
// Goal and pits keep their own shade. Otherwise path cells shade as
// ShadeRoute and other expanded cells as ShadeExpanded. A nil res shades
// terrain only.
func Classify(g *gridgraph.Grid, res *search.Result) [][]Shade {
	out := make([][]Shade, g.Rows())
	for r := range out {
		out[r] = make([]Shade, g.Cols())
		for c := range out[r] {
			switch g.Terrain(gridgraph.Cell{Row: r, Col: c}) {
			case gridgraph.Obstacle:
				out[r][c] = ShadePit
			case gridgraph.Start:
				out[r][c] = ShadeStart
			case gridgraph.Goal:
				out[r][c] = ShadeGoal
			}
		}
	}
	if res == nil {
		return out
	}
	for _, e := range res.Expanded {
		if g.InBounds(e) && out[e.Row][e.Col] == ShadeFree {
			out[e.Row][e.Col] = ShadeExpanded
		}
	}
	for _, p := range res.Path {
		if g.InBounds(p) && (out[p.Row][p.Col] == ShadeFree || out[p.Row][p.Col] == ShadeExpanded) {
			out[p.Row][p.Col] = ShadeRoute
		}
	}
	return out
}

// Heatmap draws g and res onto a new context: a title strip, one square
// per cell with a thin black border, annotations for terrain symbols and
// search marks, red arrows along the path, and a legend strip.
func Heatmap(g *gridgraph.Grid, res *search.Result, opts HeatmapOptions) *gg.Context {
	size := opts.cellSize()
	gridW, gridH := g.Cols()*size, g.Rows()*size
	width := max(gridW, len(legend)*legendItemWidth)
	dc := gg.NewContext(width, titleHeight+gridH+legendHeight)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	// title
	dc.SetHexColor("#000000")
	dc.DrawStringAnchored(opts.Title, float64(width)/2, titleHeight/2, 0.5, 0.5)

	// cells
	shades := Classify(g, res)
	fs := float64(size)
	for r, row := range shades {
		for c, s := range row {
			x, y := float64(c)*fs, titleHeight+float64(r)*fs
			dc.DrawRectangle(x, y, fs, fs)
			dc.SetHexColor(Palette[s])
			dc.FillPreserve()
			dc.SetHexColor("#000000")
			dc.SetLineWidth(1)
			dc.Stroke()
			if mark := annotation(g, gridgraph.Cell{Row: r, Col: c}, s); mark != "" {
				dc.DrawStringAnchored(mark, x+fs/2, y+fs/2, 0.5, 0.5)
			}
		}
	}

	if res != nil {
		drawArrows(dc, res.Path, fs)
	}
	drawLegend(dc, titleHeight+gridH)

	return dc
}

// annotation returns the label printed in a cell.
func annotation(g *gridgraph.Grid, c gridgraph.Cell, s Shade) string {
	switch s {
	case ShadeRoute:
		return "*"
	case ShadeExpanded:
		return "x"
	case ShadeFree:
		return ""
	}
	return string(g.Terrain(c).Symbol())
}

// drawArrows draws one arrow per move, from the centre of a cell 0.6 of
// the way towards the next one.
func drawArrows(dc *gg.Context, path []gridgraph.Cell, fs float64) {
	dc.SetHexColor(arrowColor)
	dc.SetLineWidth(2)
	head := 0.15 * fs
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		dx, dy := float64(b.Col-a.Col), float64(b.Row-a.Row)
		x0 := float64(a.Col)*fs + fs/2
		y0 := titleHeight + float64(a.Row)*fs + fs/2
		x1, y1 := x0+dx*0.6*fs, y0+dy*0.6*fs
		dc.DrawLine(x0, y0, x1, y1)
		dc.Stroke()
		// head: a triangle pointing along (dx, dy)
		dc.MoveTo(x1+dx*head, y1+dy*head)
		dc.LineTo(x1-dy*head, y1+dx*head)
		dc.LineTo(x1+dy*head, y1-dx*head)
		dc.ClosePath()
		dc.Fill()
	}
}

func drawLegend(dc *gg.Context, top int) {
	const swatch = 12
	y := float64(top) + legendHeight/2
	for i, item := range legend {
		x := float64(i*legendItemWidth) + 6
		dc.DrawRectangle(x, y-swatch/2, swatch, swatch)
		dc.SetHexColor(Palette[item.shade])
		dc.FillPreserve()
		dc.SetHexColor("#000000")
		dc.SetLineWidth(1)
		dc.Stroke()
		dc.DrawStringAnchored(item.label, x+swatch+4, y, 0, 0.5)
	}
}

// EncodePNG renders the heatmap and writes it to w as PNG.
func EncodePNG(w io.Writer, g *gridgraph.Grid, res *search.Result, opts HeatmapOptions) error {
	if err := Heatmap(g, res, opts).EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG renders the heatmap to the file at path.
func SavePNG(path string, g *gridgraph.Grid, res *search.Result, opts HeatmapOptions) error {
	if err := Heatmap(g, res, opts).SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
