// Package dev provides the development-mode diagnostics overlay.
//
// The overlay server broadcasts hydration mismatch diagnostics to
// connected browsers over WebSocket. A small injected script renders
// each warning in a fixed panel at the bottom of the page, so
// mismatches surface next to the markup that caused them.
//
// The overlay is a development tool: the check server only mounts the
// endpoint when diagnostics.overlay is enabled in hydrate.json.
package dev
