// Package engine runs the emissions calculator over a whole well plan.
//
// For every step, in plan order, the engine computes the step record with
// the plan and season durations as denominators, scales it to a daily rate
// and splits it into per-day rows. Baselines use the planned durations and
// targets the improved ones, each with its own running day offset.
//
// Rows are keyed by (step, datetime). DailyCO2, DailyNOX and
// EmissionReductionsByDate aggregate them by calendar date for reporting.
package engine
