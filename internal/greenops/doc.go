// Package greenops expresses CO2 masses as relatable equivalents such as
// miles driven by a passenger car or days of household electricity.
//
// The calculators work in tonnes; Equivalents normalizes to kilograms and
// divides by per-activity factors.
package greenops
