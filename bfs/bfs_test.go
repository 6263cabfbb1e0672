package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/qosroute/bfs"
	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsOnLadder(t *testing.T) {
	g := fixture.Ladder(4)
	res, err := bfs.BFS(g, "a0")
	require.NoError(t, err)
	assert.Equal(t, "a0", res.Order[0])
	assert.Equal(t, 1, res.Depth["b0"])
	assert.Equal(t, 4, res.Depth["b3"])

	path, err := res.PathTo("b3")
	require.NoError(t, err)
	assert.Len(t, path, 5)
	assert.Equal(t, "a0", path[0])
	assert.Equal(t, "b3", path[4])
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(fixture.Chain(6), "0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)
	_, err = res.PathTo("3")
	assert.Error(t, err)
}

func TestHopDistances_Directed(t *testing.T) {
	g := fixture.Chain(5)
	d, err := bfs.HopDistances(g, "4")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"4": 0, "3": 1, "2": 2, "1": 3, "0": 4}, d)

	d, err = bfs.HopDistances(g, "0")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"0": 0}, d, "nothing reaches the head of a directed chain")
}

func TestReachableAndConnected(t *testing.T) {
	g := fixture.Diamond()
	ok, err := bfs.Reachable(g, "0", "3")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = bfs.Reachable(g, "3", "0")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = bfs.Connected(fixture.Ladder(3))
	require.NoError(t, err)
	assert.True(t, ok)

	iso := fixture.Ladder(2)
	require.NoError(t, iso.AddVertex("lonely"))
	ok, err = bfs.Connected(iso)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBFS_HooksAndCancel(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(fixture.Chain(4), "0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "2" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(fixture.Chain(4), "0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	res, err := bfs.BFS(fixture.Ladder(3), "a0", bfs.WithFilterNeighbor(func(_, nbr string) bool {
		return nbr[0] == 'a'
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "a1", "a2"}, res.Order)
}
