// Package solver defines the Solver capability shared by the routing
// heuristics, the Problem they receive and the Result they return, plus the
// compiled Network they all search.
//
// What
//
//   - Problem: graph, endpoints, QoS weights, optional bandwidth demand.
//   - Solver:  Name() + Solve(ctx, Problem, seed). One call is one run; all
//     mutable search state lives inside that call.
//   - Network: Compile(Problem) validates the problem, hides links below the
//     demand, maps vertices to dense indices (sorted ID order), caches
//     qos.EdgeCost per arc and computes hop distances to the destination.
//   - Walk primitives: RandomPath (randomized DFS with hop pruning),
//     Reroute (segment replacement), RemoveLoops, Better (ranking).
//   - RNG: NewRand(seed), DeriveSeed(parent, stream), Roulette.
//   - Registry: name → Solver lookup.
//
// Ranking
//
//	Routes compare by cost; costs within CostTolerance tie and fall back to
//	fewer hops, then to the lexicographic order of their vertex IDs.
//
// Errors
//
//   - ErrNoPathFound   no valid route produced.
//   - ErrSameEndpoints source == destination.
//   - ErrNilGraph / core.ErrInvalidGraph for a missing graph or endpoint.
//   - ErrInvalidDemand negative or non-finite demand.
//   - qos.ErrInvalidWeights for bad weights.
package solver
