// Package dom defines the read-only view of an existing, pre-rendered
// tree that hydration matches against.
//
// The concrete tree is owned by a host adapter (a browser bridge, an
// HTML parser, a test double). The adapter exposes nodes through the
// Node, Element, Text, and Comment interfaces and implements
// AttributeDiffer to compute attribute patch payloads. Hydration never
// creates, mutates, or destroys nodes through these interfaces.
package dom
