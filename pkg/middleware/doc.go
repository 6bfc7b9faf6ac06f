// Package middleware provides observability middleware for the check
// server's HTTP surface.
//
// Prometheus collects per-request counters, durations, and an in-flight
// gauge; OpenTelemetry opens a span per request and threads its context
// through to the handler. Both are plain func(http.Handler) http.Handler
// wrappers and compose with any chi or net/http stack.
package middleware
