// Package ladder turns a word list into a one-substitution word graph and
// answers word-ladder queries over it.
//
// Build connects two words iff they differ in exactly one position
// (Hamming distance 1). Two strategies produce the identical edge set:
//
//   - StrategyPairwise compares every new word with every word already in
//     the graph, O(n²·L) for n words of length L.
//   - StrategyBucket groups words by wildcard signature ("c*t", "*at", ...)
//     and links words that share one, O(n·L²) expected.
//
// The built graph is frozen, so it can be searched any number of times.
//
// Solver glues a WordSupplier (usually a dictionary.Source), Build and
// bfs.ShortestPath together. Usage problems are reported before any word is
// loaded; "no ladder" is a normal result, not an error.
//
// Word length is counted in Unicode code points.
package ladder
