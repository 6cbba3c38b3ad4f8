// Package generator builds random pit grids from an explicit, seeded
// random source, plus the fixed 4×4 classroom grid.
//
// Determinism:
//
//   - NewSeeded(seed) with the same seed yields the same sequence of grids.
//   - seed == 0 maps to a fixed default rather than the clock.
//   - Derive(stream) splits off independent generators for batches.
//
// math/rand.Rand is not goroutine-safe; give each goroutine its own
// Generator.
package generator
