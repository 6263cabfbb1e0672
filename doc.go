// Package qosroute finds source→destination routes in networks whose links
// carry delay, reliability, resource and bandwidth attributes, and compares
// stochastic heuristics that search for them.
//
// What is qosroute?
//
//	A thread-safe network model plus four seeded, independent route solvers
//	and a harness that runs them under identical conditions:
//		• Network model: core graphs with validated QoS link attributes
//		• Cost: weighted delay + Σ −ln(reliability) + resource (qos)
//		• Solvers: ant colony (aco), genetic (genetic), Q-learning
//		  (qlearning), simulated annealing (annealing)
//		• Exact reference: Dijkstra on the same additive cost (dijkstra)
//		• Experiments: N seeded runs per solver, failure-tolerant statistics
//		  (compare), CSV/JSON/table output (report)
//		• Networks: seeded random topologies (builder), YAML/JSON files
//		  (topology)
//
// Layout:
//
//	core/       Graph, Vertex, Edge, Attributes & thread-safe primitives
//	qos/        Weights, Cost, Evaluate, simple-path validation
//	bfs/ dfs/   hop distances, connectivity, simple-path enumeration
//	solver/     Problem, Result, Solver interface, compiled Network, seeds
//	aco/ genetic/ qlearning/ annealing/ dijkstra/ the solvers
//	compare/    experiment harness and batch scenarios
//	report/     run and summary tables, scenario CSV
//	builder/ topology/ network generation and files
//	config/ logging/   TOML configuration, logrus + rotation
//	cmd/qosbench       command-line front end
//
// Quick example, the canonical diamond (delay, reliability per link):
//
//	      (2, 0.9)   1   (2, 0.9)
//	    0 ─────────▶   ─────────▶ 3
//	      (1, 0.5)   2   (1, 0.5)
//
// With equal delay and reliability weights the route 0→2→3 costs
// 2 + 2·(−ln 0.5) ≈ 3.386 and beats 0→1→3 at 4 + 2·(−ln 0.9) ≈ 4.211.
//
//	go run ./cmd/qosbench -config cmd/qosbench/qosbench.toml
package qosroute
