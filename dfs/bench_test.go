package dfs_test

import (
	"testing"

	"github.com/katalvlaran/qosroute/dfs"
	"github.com/katalvlaran/qosroute/internal/fixture"
)

// BenchmarkSimplePaths_Ladder10 enumerates every a0→b9 route of a 2×10 ladder.
// The graph is built once; each iteration walks all routes.
func BenchmarkSimplePaths_Ladder10(b *testing.B) {
	g := fixture.Ladder(10)
	count := func([]string) error { return nil }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.SimplePaths(g, "a0", "b9", count)
	}
}
