package builder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qosroute/bfs"
	"github.com/katalvlaran/qosroute/builder"
	"github.com/katalvlaran/qosroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unit = core.Attributes{Delay: 1, Reliability: 0.99, Resource: 1}

func TestBuilders_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		directed     bool
		ctor         builder.Constructor
		wantV, wantE int
		check        func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("2", "3"))
			},
		},
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
		},
		{
			name: "Complete(4) directed", directed: true, ctor: builder.Complete(4), wantV: 4, wantE: 12,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("3", "0"))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(0, 1)))
				assert.True(t, g.HasEdge(builder.GridID(0, 2), builder.GridID(1, 2)))
				assert.False(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(1, 1)))
			},
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
		{
			name: "RandomSparse(5,1) directed", directed: true, ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 20,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithDirected(tc.directed)},
				[]builder.BuilderOption{builder.WithSeed(1), builder.WithConstantAttributes(unit)},
				tc.ctor,
			)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, unit, e.Attributes)
			}
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	cases := map[string]struct {
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		"path n":        {builder.Path(1), nil, builder.ErrTooFewVertices},
		"complete n":    {builder.Complete(0), nil, builder.ErrTooFewVertices},
		"grid dims":     {builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		"sparse n":      {builder.RandomSparse(0, 0.5), seeded, builder.ErrTooFewVertices},
		"sparse p":      {builder.RandomSparse(5, 1.5), seeded, builder.ErrInvalidProbability},
		"sparse no rng": {builder.RandomSparse(5, 0.5), nil, builder.ErrNeedRandSource},
		"nil ctor":      {nil, nil, builder.ErrConstructFailed},
	}
	for name, tc := range cases {
		_, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
		assert.ErrorIs(t, err, tc.want, name)
	}
}

func TestRandomSparse_SameSeedSameGraph(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}
	a, b, c := build(7), build(7), build(8)

	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	ea, eb := a.Edges(), b.Edges()
	for i := range ea {
		assert.Equal(t, *ea[i], *eb[i])
	}
	assert.NotEqual(t, edgeSet(a), edgeSet(c), "different seeds should differ")
}

func TestRandomSparse_DefaultAttributeRanges(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(40, 0.3))
	require.NoError(t, err)
	require.NotZero(t, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.True(t, e.Delay >= builder.DefaultDelayMin && e.Delay <= builder.DefaultDelayMax)
		assert.True(t, e.Reliability >= builder.DefaultReliabilityMin && e.Reliability <= builder.DefaultReliabilityMax)
		assert.True(t, e.Bandwidth >= builder.DefaultBandwidthMin && e.Bandwidth <= builder.DefaultBandwidthMax)
		assert.InDelta(t, builder.DefaultResourceScale/e.Bandwidth, e.Resource, 1e-9)
		require.NoError(t, e.Attributes.Validate())
	}
}

func TestConnected(t *testing.T) {
	g, err := builder.Connected(25, 0.2, 50, nil, builder.WithSeed(42), builder.WithSymbNumb("r"))
	require.NoError(t, err)
	ok, err := bfs.Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, g.HasVertex("r0"))

	// ten isolated vertices are never connected
	_, err = builder.Connected(10, 0, 3, nil, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.Connected(10, 0.5, 3, nil)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Connected(10, 0.5, 0, nil, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestConnected_Deterministic(t *testing.T) {
	a, err := builder.Connected(15, 0.15, 100, nil, builder.WithSeed(9))
	require.NoError(t, err)
	b, err := builder.Connected(15, 0.15, 100, nil, builder.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, edgeSet(a), edgeSet(b))
}

func edgeSet(g *core.Graph) map[[2]string]float64 {
	out := make(map[[2]string]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		out[[2]string{e.From, e.To}] = math.Round(e.Delay*1e6) / 1e6
	}

	return out
}
