// SPDX-License-Identifier: MIT

// Package builder provides reusable "functional-options"-style graph fixtures
// for pathboard. Each Constructor appends a small, deterministic topology to a
// core.Graph, so fixtures can seed a new board or extend an existing one.
//
// The package offers the following key components:
//
//   - Orchestrators:
//     BuildGraph(gopts, bopts, cons...) creates a fresh graph.
//     Apply(g, bopts, cons...) appends to an existing one.
//   - Constructors (impl_*.go):
//     Classic()                the nine-node textbook graph with fixed weights.
//     Path(n), Cycle(n)        P_n and C_n.
//     Star(n), Wheel(n)        hub first, labelled CenterLabel.
//     Complete(n)              K_n.
//     CompleteBipartite(a, b)  K_{a,b} with "L"/"R" label prefixes.
//     Grid(rows, cols)         4-neighbourhood lattice labelled "r,c".
//     RandomSparse(n, p)       independent edges with probability p.
//   - Label schemes (LabelFn): DefaultLabelFn, SymbolLabelFn,
//     ExcelColumnLabelFn, PrefixLabelFn.
//   - Weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, NormalWeightFn, ExponentialWeightFn. All yield int64
//     weights ≥ 0.
//   - Layout: WithOrigin and WithSpacing place nodes on the board (line, ring,
//     grid or fixed coordinates depending on the constructor).
//
// Guarantees:
//
//   - Parameters are validated before the first mutation; failures return
//     sentinel errors (ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource)
//     branchable with errors.Is.
//   - Graph rejections during emission are marked with ErrConstructFailed.
//   - Option constructors panic on meaningless inputs; constructors never panic.
//   - Same options, seed and constructor order ⇒ identical graphs.
package builder
