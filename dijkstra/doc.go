// Package dijkstra implements exact minimum-cost routing under the composite
// QoS cost, used as the reference optimum for the stochastic solvers.
//
// What
//
//   - Dijkstra(g, opts...): single-source costs (and predecessors) where each
//     link costs qos.EdgeCost under Options.Weights.
//   - ShortestPath(g, src, dst, opts...): the optimal route and its cost.
//   - Solver: solver.Solver adapter registered as "dijkstra".
//
// Why exact
//
//	The cost is a sum of non-negative per-link terms (−ln r ≥ 0 for r ≤ 1),
//	so the first time a vertex is settled its label is optimal.
//
// Determinism
//
//	The heap orders labels by (cost, vertex ID); equal-cost alternatives
//	always resolve the same way.
//
// Options
//
//   - Source(id), WithWeights(w), WithDemand(bw), WithReturnPath(),
//     WithMaxDistance(x), WithInfEdgeThreshold(t).
//
// Option constructors panic on meaningless values (negative caps, negative
// demand); Dijkstra itself only returns errors.
package dijkstra
