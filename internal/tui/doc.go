// Package tui is the interactive viewer for calculated plans.
//
// One tab per plan shows its days in a scrollable table. Enter opens the
// initiative reductions of the selected day.
package tui
