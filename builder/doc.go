// Package builder generates seeded network topologies with QoS link
// attributes, for experiments and test fixtures.
//
// Constructors (RandomSparse, Path, Complete, Grid) are composed by
// BuildGraph; Connected resamples RandomSparse until the graph is connected.
// Options select the vertex ID scheme (WithIDScheme, WithSymbNumb,
// WithExcelColumnIDs), the RNG (WithSeed, WithRand) and the attribute
// distribution (WithAttrRanges, WithConstantAttributes, WithAttrFn).
//
// By default links get delay U[3,15], reliability U[0.95,0.999], bandwidth
// U[100,1000] and resource 1000/bandwidth.
//
// Guarantees:
//   - Same options, seed and constructor order give identical graphs.
//   - Invalid parameters return sentinel errors (errors.Is); only option
//     constructors panic.
package builder
