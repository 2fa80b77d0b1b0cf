// Package emissions converts offshore drilling activity into CO2 and NOX masses.
//
// Every function in this package is pure arithmetic over already-resolved
// inputs. Catalog lookups (baseline fuel per phase and mode, initiative
// percentages, vessel fuel rates per season) happen in the wellplan package
// before any value reaches a converter here.
//
// # Order of operations
//
// Results are compared against reference fixtures with exact float equality,
// so each formula keeps a fixed evaluation order. Sums are accumulated left to
// right starting from zero, and products that feed an addition are rounded
// explicitly with float64() so the compiler cannot fuse them.
//
// # Apportionment
//
// Vessel figures are spread over the season bucket of the step
// (stepDuration / seasonDuration). Helicopter figures are spread over the
// whole plan (stepDuration / planDuration). Rig asset, boiler and external
// energy supply figures scale with the step duration alone. Materials are
// already step scoped and are summed directly.
package emissions
