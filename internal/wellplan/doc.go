// Package wellplan loads well plan documents and resolves them into the
// plain inputs consumed by the emissions calculator.
//
// A plan document is YAML (or JSON) with a schema_version, the well's fuel
// factors, the rig baseline, the phase and mode catalogs, the emission
// reduction initiatives, the vessel, helicopter and material catalogs, the
// plan-wide vessel and helicopter bookings, and the ordered steps.
//
// Resolve performs every catalog lookup up front. A missing lookup is a data
// integrity error and is returned as a wrapped sentinel; no value is ever
// defaulted.
package wellplan
