// Package errors provides structured, actionable error messages for hydrate.
//
// The errors package implements an error system that:
//   - Shows exact input locations (file, line, column)
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues with examples
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - parse: Input errors (malformed markup, invalid expected trees)
//   - hydration: Server/client mismatch errors
//   - config: Configuration file errors
//   - cli: Command-line usage errors
//   - report: Mismatch report storage errors
//   - server: Check server errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "H001") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("H002").
//	    WithLocation("tree.json", 15, 12).
//	    WithSuggestion(`Use "kind": "element" for tag nodes`)
//
//	fmt.Println(err.Format())
package errors
