package render

import (
	"testing"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// The default gg face only has ASCII glyphs, so every annotation must be
// plain ASCII.
func TestAnnotationASCII(t *testing.T) {
	g := gridgraph.MustParse(".P.G", "..P.", "....", "A...")
	tests := []struct {
		cell  gridgraph.Cell
		shade Shade
		want  string
	}{
		{gridgraph.Cell{Row: 2, Col: 1}, ShadeRoute, "*"},
		{gridgraph.Cell{Row: 2, Col: 2}, ShadeExpanded, "x"},
		{gridgraph.Cell{Row: 2, Col: 3}, ShadeFree, ""},
		{gridgraph.Cell{Row: 0, Col: 1}, ShadePit, "P"},
		{gridgraph.Cell{Row: 3, Col: 0}, ShadeStart, "A"},
		{gridgraph.Cell{Row: 0, Col: 3}, ShadeGoal, "G"},
	}
	for _, tt := range tests {
		got := annotation(g, tt.cell, tt.shade)
		if got != tt.want {
			t.Errorf("annotation(%v, %v) = %q, want %q", tt.cell, tt.shade, got, tt.want)
		}
		for _, r := range got {
			if r > 0x7f {
				t.Errorf("annotation(%v, %v) = %q contains non-ASCII rune %q", tt.cell, tt.shade, got, r)
			}
		}
	}
}
