// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/qosroute/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and all links appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexX))
	for i := 0; i < NConcurrentAdds; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}

	var wg sync.WaitGroup
	errs := make([]error, NConcurrentAdds)
	wg.Add(NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			_, errs[id] = g.AddEdge(VertexX, fmt.Sprintf("V%d", id), linkAttrs)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	nbs, err := g.Neighbors(VertexX)
	require.NoError(t, err)
	require.Len(t, nbs, NConcurrentAdds)
}

// TestConcurrentReaders runs readers and views while a writer keeps inserting.
func TestConcurrentReaders(t *testing.T) {
	g := newTriangle(t)
	var wg sync.WaitGroup
	wg.Add(NReaders + 1)
	go func() {
		defer wg.Done()
		for i := 0; i < NReaders; i++ {
			id := fmt.Sprintf("W%d", i)
			_ = g.AddVertex(id)
			_, _ = g.AddEdge(VertexA, id, linkAttrs)
		}
	}()
	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_, _ = g.NeighborIDs(VertexA)
			_ = core.DemandView(g, 1).EdgeCount()
		}()
	}
	wg.Wait()
	require.Equal(t, 3+NReaders, g.EdgeCount())
}
