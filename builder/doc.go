// Package builder provides deterministic graph constructors for tests,
// benchmarks and demos.
//
// Design contract:
//
//   - One orchestrator: Build(bopts, cons...). Creates the graph,
//     resolves options into an immutable config, runs the constructors
//     in order.
//   - Determinism: identical options, seed and constructor order yield
//     identical graphs. Stochastic constructors (RandomSparse) draw
//     only from the seeded generator in the resolved config.
//   - Safety: constructors never panic; invalid input surfaces as a
//     sentinel error from Build.
//
// Constructors:
//
//   - Demo / DemoNegative — the seven-vertex reference graph (A..G),
//     with and without the A→B edge negated.
//   - Path(n), Cycle(n), Complete(n) — classic shapes over vertices
//     <prefix>0..<prefix>n-1 (default prefix "V").
//   - RandomSparse(n, extra) — a spanning path plus extra random arcs.
//
// Options: WithSeed, WithWeightFn, WithIDPrefix.
package builder
