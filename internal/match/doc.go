// Package match suggests known type names for misspelled ones.
//
// Names are compared after normalization (case folded, separators dropped)
// by Levenshtein similarity.
//
// Key functions:
//   - Normalize: folds a type name for fuzzy comparison
//   - Distance: edit distance between two strings
//   - Closest: the best candidate above a similarity threshold
package match
