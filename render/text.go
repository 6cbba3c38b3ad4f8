package render

import (
	"bufio"
	"io"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// RouteSymbol marks path cells in text output.
const RouteSymbol = '*'

// Overlay returns g as symbol rows with every path cell other than Start
// and Goal replaced by RouteSymbol. A nil path leaves the grid unchanged.
func Overlay(g *gridgraph.Grid, path []gridgraph.Cell) [][]rune {
	rows := make([][]rune, g.Rows())
	for r := range rows {
		rows[r] = make([]rune, g.Cols())
		for c := range rows[r] {
			rows[r][c] = g.Terrain(gridgraph.Cell{Row: r, Col: c}).Symbol()
		}
	}
	for _, p := range path {
		if !g.InBounds(p) {
			continue
		}
		switch g.Terrain(p) {
		case gridgraph.Start, gridgraph.Goal:
		default:
			rows[p.Row][p.Col] = RouteSymbol
		}
	}
	return rows
}

// Text writes Overlay(g, path) with cells separated by single spaces and a
// blank line after the last row.
func Text(w io.Writer, g *gridgraph.Grid, path []gridgraph.Cell) error {
	bw := bufio.NewWriter(w)
	for _, row := range Overlay(g, path) {
		for c, s := range row {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteRune(s)
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
