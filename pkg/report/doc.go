// Package report records hydration check outcomes and stores them.
//
// A Collector sits behind the hydration diagnostic sink and gathers
// every emitted mismatch. When a check finishes, Finish turns the
// collected diagnostics into a Report, and a Store (S3-backed in
// production) persists it for later inspection.
package report
