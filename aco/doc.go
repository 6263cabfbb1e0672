// Package aco implements an ant colony route solver for the composite QoS
// cost.
//
// Each iteration releases Ants ants at the source. An ant at u moves to an
// unvisited neighbour v with probability proportional to
//
//	τ(u,v)^α · (1 / cost(u,v))^β
//
// where cost is qos.EdgeCost. An ant never enters a vertex twice and never
// steps where the destination is out of MaxHops reach. At a dead end it
// retreats one hop; an ant that retreats past the source is discarded. After construction every trail evaporates,
// τ ← max(τ·(1−ρ), MinPheromone), and the EliteAnts best routes of the
// iteration reinforce their arcs by Q/cost (capped at MaxPheromone).
//
// Pheromone is stored sparsely, keyed by arc; arcs never reinforced share a
// single evaporating base level.
//
// The solver stops after Iterations, or after Patience iterations without
// improvement, and returns the best route seen. If no ant ever arrives the
// result is solver.ErrNoPathFound.
//
// Defaults: 15 ants, 20 iterations, α=1, β=2, ρ=0.1, Q=10, τ0=0.1.
package aco
