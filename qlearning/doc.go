// Package qlearning implements a tabular Q-learning route solver.
//
// States are vertices and actions are outgoing links. Stepping over u→v
// earns reward −cost(u,v) under the composite QoS cost, so maximizing return
// minimizes route cost. Training runs Episodes ε-greedy walks from the
// source:
//
//	Q(u,v) ← Q(u,v) + α·(r + γ·max_w Q(v,w) − Q(u,v))
//
// A walk ends when it reaches the destination, when it steps onto a vertex
// it already visited (extra −CyclePenalty), or when it exceeds MaxHops or
// runs out of moves (extra −FailurePenalty). Terminal steps do not
// bootstrap. ε decays multiplicatively per episode down to EpsilonMin.
//
// After training the route is read greedily: from the source, repeatedly
// take the unvisited neighbour with the highest Q-value, ties to the
// smallest vertex ID. A dead end or a walk longer than MaxHops is
// solver.ErrNoPathFound.
//
// The Q-table is sparse and private to one Solve call; unseen entries are 0.
//
// Defaults: 500 episodes, α=0.1, γ=0.9, ε 1.0 → 0.01 with decay 0.995.
package qlearning
