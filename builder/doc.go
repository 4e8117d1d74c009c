// Package builder generates deterministic core.Graph topologies for tests,
// benchmarks and the `wgraph generate` command.
//
// A Constructor adds nodes and edges to an existing graph; BuildGraph runs a
// sequence of constructors on a fresh graph. Node labels come from an IDFn
// (decimal by default, see WithIDScheme) and edge weights from a WeightFn
// (constant 1 by default, see WithWeightFn).
//
// Constructors:
//
//	Path(n)            n ≥ 2   0–1–…–(n-1)
//	Cycle(n)           n ≥ 3   path plus (n-1)–0
//	Star(n)            n ≥ 2   hub "Center" joined to leaves 1…n-1
//	Wheel(n)           n ≥ 4   Cycle(n-1) on the rim plus spokes to "Center"
//	Complete(n)        n ≥ 1   every pair i < j
//	Grid(rows, cols)   ≥ 1×1   4-neighbourhood, labels "r,c"
//	RandomSparse(n, p) n ≥ 1   Erdős–Rényi G(n, p); needs an RNG when 0 < p < 1
//
// Determinism: nodes are created in index order and edges are emitted in a
// fixed order, so equal options (including the seed) give equal graphs.
//
// Errors: constructors never panic; they return ErrTooFewVertices,
// ErrInvalidProbability or ErrNeedRandSource wrapped with the method name.
// Option constructors panic on nil functions.
package builder
