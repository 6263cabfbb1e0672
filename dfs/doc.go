// Package dfs enumerates simple paths on a core.Graph.
//
// What:
//
//   - SimplePaths(g, from, to, visit, opts...) walks every simple
//     from→to path depth-first and hands it to visit. Supports:
//   - Cancellation via context.Context
//   - Depth (hop) limiting
//   - Link filtering, e.g. by bandwidth demand (WithDemand)
//   - Early stop by returning ErrStop from visit
//
// Why:
//
//   - Exhaustive optimum on small networks, to check heuristic and exact
//     solvers against
//   - Route counting when sizing an experiment
//
// Key Types:
//
//   - Visit: callback receiving each path (slice reused between calls)
//   - Option / Options: Ctx, MaxDepth, FilterEdge
//   - Stats: paths reported, vertices expanded, links skipped
package dfs
