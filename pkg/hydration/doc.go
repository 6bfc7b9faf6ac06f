// Package hydration matches a freshly rendered vdom tree against an
// existing, pre-rendered dom tree, attaching identity to existing nodes
// instead of recreating them, and reports any divergence it finds.
//
// The package has three layers:
//
//   - Traversal: IsHydratable, NextHydratableSibling, and
//     FirstHydratableChild define the order in which existing nodes are
//     considered. Comments and other non-matchable kinds are invisible
//     to the walk but still show up in diagnostics.
//
//   - Matching: CanMatchElement and CanMatchText decide whether an
//     existing node can stand in for an expected one. Attribute
//     reconciliation after a match is delegated to the host adapter's
//     AttributeDiffer.
//
//   - Diagnostics: the Report* methods on Hydrator build a unified-diff
//     style description of where the trees disagree and hand it to the
//     configured sink. Diagnostics are development-only, capped at one
//     per attempt, and never affect match results.
//
// Mismatches are reported, never returned as errors: a failed hydration
// is recoverable by discarding the pre-rendered subtree, a policy that
// belongs to the caller.
package hydration
