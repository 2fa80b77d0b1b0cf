// Package batch splits a slice of work items into fixed-size batches and
// runs a callback per batch, sequentially or with bounded concurrency.
//
// The engine uses it to calculate many well plans in one run: each plan is
// an item, failures are collected rather than aborting sibling batches, and
// a progress callback feeds the CLI's progress line.
package batch
