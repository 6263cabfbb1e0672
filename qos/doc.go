// Package qos defines the composite path cost shared by every solver.
//
// For a path P = (v0, v1, …, vk) and weights w:
//
//	cost(P) = w_d · Σ delay(e) + w_r · Σ −ln(reliability(e)) + w_res · Σ resource(e)
//
// The reliability term turns the multiplicative end-to-end success
// probability Π r(e) into an additive quantity, so the whole cost is a sum of
// non-negative per-link terms (EdgeCost). Two consequences used elsewhere:
//
//   - exact shortest-path search (Dijkstra) is valid on EdgeCost;
//   - scaling w by k > 0 scales every cost by k and preserves the ranking.
//
// Errors:
//
//	ErrInvalidPath    - empty path, non-link hop, or reliability ≤ 0.
//	ErrInvalidWeights - negative or non-finite weight, or all weights zero.
package qos
