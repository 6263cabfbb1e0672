// Package fixture holds the small reference networks shared by package tests.
package fixture

import (
	"strconv"

	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/qos"
)

// Expected costs of the two Diamond routes under DiamondWeights.
const (
	DiamondUpperCost = 4.210721031315653  // 0→1→3: 4 + 2·(−ln 0.9)
	DiamondLowerCost = 3.386294361119891  // 0→2→3: 2 + 2·(−ln 0.5)
	TrapSafeCost     = 4.1005033585350145 // s→b→t: 4 + 5·2·(−ln 0.99)
)

// DiamondWeights weights delay and reliability equally and ignores resource.
var DiamondWeights = qos.Weights{Delay: 1, Reliability: 1}

// TrapWeights makes reliability dominate delay.
var TrapWeights = qos.Weights{Delay: 1, Reliability: 5}

// Diamond is the directed four-node network whose optimum is 0→2→3.
func Diamond() *core.Graph {
	return must(core.FromLists(
		[]string{"0", "1", "2", "3"},
		[]core.EdgeSpec{
			{From: "0", To: "1", Attributes: core.Attributes{Delay: 2, Reliability: 0.9, Resource: 1}},
			{From: "1", To: "3", Attributes: core.Attributes{Delay: 2, Reliability: 0.9, Resource: 1}},
			{From: "0", To: "2", Attributes: core.Attributes{Delay: 1, Reliability: 0.5, Resource: 3}},
			{From: "2", To: "3", Attributes: core.Attributes{Delay: 1, Reliability: 0.5, Resource: 3}},
		},
		core.WithDirected(true),
	))
}

// Trap is an undirected network where the minimum-delay route s→a→t is not
// the minimum-cost route s→b→t under TrapWeights.
func Trap() *core.Graph {
	return must(core.FromLists(
		[]string{"s", "a", "b", "t"},
		[]core.EdgeSpec{
			{From: "s", To: "a", Attributes: core.Attributes{Delay: 1, Reliability: 0.5}},
			{From: "a", To: "t", Attributes: core.Attributes{Delay: 1, Reliability: 0.5}},
			{From: "s", To: "b", Attributes: core.Attributes{Delay: 2, Reliability: 0.99}},
			{From: "b", To: "t", Attributes: core.Attributes{Delay: 2, Reliability: 0.99}},
		},
	))
}

// Chain returns the directed path 0→1→…→n-1 with unit links.
func Chain(n int) *core.Graph {
	nodes := make([]string, n)
	for i := range nodes {
		nodes[i] = strconv.Itoa(i)
	}
	edges := make([]core.EdgeSpec, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, core.EdgeSpec{
			From: nodes[i-1], To: nodes[i],
			Attributes: core.Attributes{Delay: 1, Reliability: 0.99, Resource: 1},
		})
	}

	return must(core.FromLists(nodes, edges, core.WithDirected(true)))
}

// Comb returns an undirected chain "c0"–…–"c<n-1>" where every chain vertex
// but the last also carries a dead-end spur "s<i>". The chain is the only
// route between its ends.
func Comb(n int) *core.Graph {
	g := core.NewGraph()
	link := core.Attributes{Delay: 1, Reliability: 0.99, Resource: 1}
	for i := 0; i < n; i++ {
		_ = g.AddVertex("c" + strconv.Itoa(i))
	}
	for i := 0; i < n-1; i++ {
		c, spur := "c"+strconv.Itoa(i), "s"+strconv.Itoa(i)
		_ = g.AddVertex(spur)
		_, _ = g.AddEdge(c, spur, link)
		_, _ = g.AddEdge(c, "c"+strconv.Itoa(i+1), link)
	}

	return g
}

// CombRoute is the only route of Comb(n) from "c0" to "c<n-1>".
func CombRoute(n int) []string {
	route := make([]string, n)
	for i := range route {
		route[i] = "c" + strconv.Itoa(i)
	}

	return route
}

// Ladder returns an undirected 2×n ladder with varied link attributes, so
// that many simple routes exist between "a0" and "b<n-1>".
func Ladder(n int) *core.Graph {
	g := core.NewGraph()
	id := func(side byte, i int) string { return string(side) + strconv.Itoa(i) }
	for i := 0; i < n; i++ {
		_ = g.AddVertex(id('a', i))
		_ = g.AddVertex(id('b', i))
	}
	attr := func(k int) core.Attributes {
		return core.Attributes{
			Delay:       float64(1 + (k*7)%5),
			Reliability: 0.9 + float64((k*3)%10)/100,
			Resource:    float64(1 + (k*5)%4),
		}
	}
	k := 0
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(id('a', i), id('b', i), attr(k))
		k++
		if i+1 < n {
			_, _ = g.AddEdge(id('a', i), id('a', i+1), attr(k))
			k++
			_, _ = g.AddEdge(id('b', i), id('b', i+1), attr(k))
			k++
		}
	}

	return g
}

func must(g *core.Graph, err error) *core.Graph {
	if err != nil {
		panic(err)
	}

	return g
}
