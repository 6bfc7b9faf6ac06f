// Package htmldom is a host adapter exposing trees parsed by
// golang.org/x/net/html through the dom interfaces.
//
// It makes hydration usable without a browser: server-rendered HTML is
// parsed into a read-only tree, matched against the expected vdom, and
// attribute differences come back as patch payloads. The parser decodes
// entities, so text and attribute values compare on content rather than
// representation.
package htmldom
