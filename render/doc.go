// Package render draws grids and search results for people: a plain text
// overlay for terminals and a PNG heatmap built with fogleman/gg.
//
// Both renderers accept a missing path (nil) and then show the terrain and,
// for the heatmap, the expanded cells only.
package render
