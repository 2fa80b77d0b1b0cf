// Package server exposes the calculator over HTTP.
//
//	POST /v1/calculations   plan document (YAML or JSON) in, JSON report out
//	GET  /healthz           liveness
//
// Set ?daily=true to include the per-date view in the response.
package server
