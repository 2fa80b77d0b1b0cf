// Package report renders calculation results as tables, JSON or NDJSON.
//
// All masses are in tonnes and durations in days. Number formatting uses
// English thousand separators regardless of the process locale.
package report
