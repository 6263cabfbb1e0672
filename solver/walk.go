// File: walk.go
// Role: Randomized route primitives shared by the population and local-search
//       solvers: sampling, segment rerouting, loop excision, ranking.

package solver

import (
	"math/rand"
	"strings"
)

// CostTolerance is the absolute difference below which two costs tie.
const CostTolerance = 1e-9

// Candidate is a scored index route.
type Candidate struct {
	Path []int
	Cost float64
}

// Better reports whether a ranks strictly before b.
//
// Ranking: lower cost; on a tie within CostTolerance, fewer hops; then the
// lexicographically smaller sequence of vertex IDs. An empty Path never
// ranks before a non-empty one.
func (n *Network) Better(a, b Candidate) bool {
	if len(a.Path) == 0 {
		return false
	}
	if len(b.Path) == 0 {
		return true
	}
	if d := a.Cost - b.Cost; d < -CostTolerance || d > CostTolerance {
		return d < 0
	}
	if len(a.Path) != len(b.Path) {
		return len(a.Path) < len(b.Path)
	}
	for i := range a.Path {
		if a.Path[i] != b.Path[i] {
			return strings.Compare(n.ids[a.Path[i]], n.ids[b.Path[i]]) < 0
		}
	}

	return false
}

// BetterResult ranks two run results with the same rule as Better, on
// vertex IDs instead of indices.
func BetterResult(a, b Result) bool {
	if len(a.Path) == 0 {
		return false
	}
	if len(b.Path) == 0 {
		return true
	}
	if d := a.Cost - b.Cost; d < -CostTolerance || d > CostTolerance {
		return d < 0
	}
	if len(a.Path) != len(b.Path) {
		return len(a.Path) < len(b.Path)
	}
	for i := range a.Path {
		if a.Path[i] != b.Path[i] {
			return a.Path[i] < b.Path[i]
		}
	}

	return false
}

// RandomPath samples a simple route from → to by randomized depth-first
// search with backtracking.
//
// Contract:
//   - vertices with blocked[v] == true are never entered (blocked may be nil);
//   - the route has at most maxHops links;
//   - when to is the destination, partial routes that cannot arrive within
//     the budget are pruned using hop distances;
//   - returns nil when the search exhausts without reaching to.
//
// Every vertex is entered at most once per call, so the cost is O(V + E)
// and the sampler may miss feasible routes under a tight hop budget.
func (n *Network) RandomPath(rng *rand.Rand, from, to int, blocked []bool, maxHops int) []int {
	if from == to {
		return []int{from}
	}
	type frame struct {
		v     int
		order []int
		next  int
	}
	visited := make([]bool, len(n.ids))
	visited[from] = true
	stack := []frame{{v: from, order: n.shuffledTargets(rng, from)}}

	var (
		top *frame
		v   int
	)
	for len(stack) > 0 {
		top = &stack[len(stack)-1]
		if top.next >= len(top.order) {
			stack = stack[:len(stack)-1]
			continue
		}
		v = top.order[top.next]
		top.next++

		depth := len(stack) // links used once v is entered
		if visited[v] || (blocked != nil && blocked[v]) || depth > maxHops {
			continue
		}
		if to == n.dst && (n.hops[v] < 0 || depth+n.hops[v] > maxHops) {
			continue
		}
		visited[v] = true
		if v == to {
			path := make([]int, 0, depth+1)
			for _, f := range stack {
				path = append(path, f.v)
			}
			return append(path, v)
		}
		stack = append(stack, frame{v: v, order: n.shuffledTargets(rng, v)})
	}

	return nil
}

// Sample draws a random simple source→destination route within maxHops.
func (n *Network) Sample(rng *rand.Rand, maxHops int) []int {
	return n.RandomPath(rng, n.src, n.dst, nil, maxHops)
}

// Reroute replaces a random sub-segment path[i..j] of a valid route by a
// freshly sampled alternative sub-route between the same two vertices.
//
// The rest of the route is blocked during sampling, so the result stays
// simple; the hop budget is shared with the kept prefix and suffix. ok is
// false when no different route was produced.
func (n *Network) Reroute(rng *rand.Rand, path []int, maxHops int) ([]int, bool) {
	if len(path) < 2 {
		return nil, false
	}
	i := rng.Intn(len(path) - 1)
	j := i + 1 + rng.Intn(len(path)-1-i)

	blocked := make([]bool, len(n.ids))
	for k, v := range path {
		if k < i || k > j {
			blocked[v] = true
		}
	}
	budget := maxHops - i - (len(path) - 1 - j)
	if budget < 1 {
		return nil, false
	}
	seg := n.RandomPath(rng, path[i], path[j], blocked, budget)
	if seg == nil || equalInts(seg, path[i:j+1]) {
		return nil, false
	}

	out := make([]int, 0, i+len(seg)+len(path)-j-1)
	out = append(out, path[:i]...)
	out = append(out, seg...)
	out = append(out, path[j+1:]...)

	return out, true
}

// RemoveLoops excises cycles: whenever a vertex reappears, the route is cut
// back to its first occurrence. The result is simple and keeps both ends.
func RemoveLoops(path []int) []int {
	pos := make(map[int]int, len(path))
	out := make([]int, 0, len(path))
	for _, v := range path {
		if p, seen := pos[v]; seen {
			for _, drop := range out[p+1:] {
				delete(pos, drop)
			}
			out = out[:p+1]
			continue
		}
		pos[v] = len(out)
		out = append(out, v)
	}

	return out
}

// shuffledTargets returns the arc targets of u in random order.
func (n *Network) shuffledTargets(rng *rand.Rand, u int) []int {
	out := make([]int, len(n.arcs[u]))
	for k, a := range n.arcs[u] {
		out[k] = a.To
	}
	shuffleInts(out, rng)

	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
