// Package annealing implements a simulated annealing route solver.
//
// The state is one simple source→destination route. A neighbour replaces a
// random sub-segment by a freshly sampled alternative sub-route between the
// same two vertices, with the rest of the route blocked so the result stays
// simple and within MaxHops. A worse neighbour (Δ > 0) is accepted with
// probability exp(−Δ/T); T cools geometrically from InitialTemperature.
//
// The initial route is the exact minimum-delay route (dijkstra with delay
// weight only) when it fits the hop limit; otherwise, or with RandomStart, a
// random simple route. The best route ever held is returned.
//
// Defaults: T0=5, cooling 0.995, floor 1e-6, 5000 proposals.
package annealing
