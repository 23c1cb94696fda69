// Package analysis inspects a dynamics table after it has been built.
//
//   - [Truncation]: per-pair retained and dropped probability mass
//   - [Summarize]: table-wide statistics
//   - [Sweep]: builds and summarises a table for each demand rate in a grid
//
// # Truncated Mass
//
// The inventory builder drops demand realisations that would take the next
// state below the floor. A pair's retained mass is the sum of its
// probabilities; one minus that is the mass the model silently ignores:
//
//	rep := analysis.Truncation(dyn)
//	worst := analysis.Summarize(dyn).Worst
package analysis
