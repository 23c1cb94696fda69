// Package viz renders dynamics tables in the terminal.
//
//   - [RenderPair]: outcome table for one (state, action) pair
//   - [RenderSummary]: table-wide truncation summary
//   - [PlotRetained], [PlotDemand]: asciigraph line charts
//   - [Browser]: Bubble Tea program for paging through pairs
//
// # Key Bindings
//
//	up/k, down/j - Previous/next pair
//	left/h, right/l - Jump to previous/next state
//	t            - Cycle color themes
//	q            - Quit
package viz
