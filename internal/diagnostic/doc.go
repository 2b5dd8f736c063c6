// Package diagnostic provides structured errors, warnings and infos
// collected while validating target schemas.
//
// Key capabilities:
//   - Unknown properties with "did you mean" suggestions
//   - Incomplete relation descriptors (one-to-many missing a key)
//   - Relation cycles that would make mapping recurse without end
package diagnostic
