// Package unionfind provides a string-keyed disjoint-set (union-find) forest
// with path compression and union by size.
//
// What
//
//   - MakeSet registers a label as a singleton set.
//   - Find returns the representative (root) label of the set holding a label.
//   - Union merges the sets of two labels, attaching the smaller tree under the
//     larger tree's root and adding the absorbed size to the survivor.
//   - Connected, SetSize, Sets and Len answer the usual bookkeeping questions.
//
// Find is iterative: the first pass walks to the root, the second pass rewrites
// every visited parent pointer to that root. No recursion depth is ever needed,
// even on long chains built before any compression happened.
//
// Errors
//
//	ErrUnknownElement – Find/Union/Connected/SetSize on a label never registered.
//
// Lifetime
//
//	A UnionFind is cheap to build and is meant to be created per computation
//	(see threshold.SmallestConnectingThreshold and prim_kruskal.Kruskal) and
//	discarded afterwards. It is not safe for concurrent use.
//
// Complexity (α = inverse Ackermann)
//
//   - MakeSet: O(1)
//   - Find, Union, Connected: O(α(n)) amortized
//   - Memory: O(n)
package unionfind
