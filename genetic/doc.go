// Package genetic implements a genetic-algorithm route solver.
//
// Individuals are simple source→destination routes; fitness is 1/cost
// under the composite QoS cost.
//
//   - Initialization: random simple routes (randomized depth-first search
//     with hop pruning), at most Population·10 draws.
//   - Selection: tournament (default, size 3) or roulette on fitness.
//   - Crossover (rate 0.9): splice the head of one parent to the tail of the
//     other at a random shared intermediate vertex. Parents without one
//     reproduce by mutation only.
//   - Mutation (rate 0.1): reroute a random sub-segment through an
//     alternative sub-route.
//   - Repair: loop excision; children still invalid are replaced by a fresh
//     random route.
//   - Elitism: the best Elites individuals pass unchanged.
//
// Evolution stops after Generations or once population cost variance falls
// below ConvergenceVariance (gonum stat.Variance). If no initial route can be
// sampled the result is solver.ErrNoPathFound.
package genetic
