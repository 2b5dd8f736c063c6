// Package match provides identifier normalization and edit-distance helpers
// used for loose raw-key matching and for "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: folds case and separators ("relation_id" == "RelationID")
//   - NormalizeKey: NormalizeIdent applied per dotted segment of a raw key
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest candidate name for an unknown identifier
package match
