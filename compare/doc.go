// Package compare runs several search strategies side by side on one grid
// and collects their outcomes.
//
// Each strategy runs in its own goroutine under an errgroup; the grid is
// shared read-only. Every run gets an OpenTelemetry span and a debug log
// line with its cost, expansion count and elapsed time.
package compare
