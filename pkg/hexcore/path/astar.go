package path

import (
	"container/heap"

	"github.com/gravitas-games/hexboard/pkg/hexcore/hex"
)

// AStar computes a shortest path using the A* algorithm.
//   - start, goal: board coordinates
//   - h: admissible heuristic (e.g. HeuristicTo(goal))
//   - neighbors: returns adjacent coordinates to explore
//   - cost: edge cost between two adjacent coordinates (values < 1 count as 1)
//
// Returns the path including start and goal, or nil if no path exists.
func AStar(start, goal hex.Coord,
	h func(c hex.Coord) int,
	neighbors func(c hex.Coord) []hex.Coord,
	cost func(a, b hex.Coord) int,
) []hex.Coord {
	if start == goal {
		return []hex.Coord{start}
	}
	open := &nodePQ{}
	heap.Init(open)
	seq := 0
	push := func(c hex.Coord, f int) {
		heap.Push(open, &pqNode{c: c, f: f, seq: seq})
		seq++
	}

	g := map[hex.Coord]int{start: 0}
	came := map[hex.Coord]hex.Coord{}
	closed := map[hex.Coord]bool{}
	push(start, h(start))

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pqNode).c
		if closed[cur] {
			continue
		}
		closed[cur] = true
		if cur == goal {
			path := []hex.Coord{goal}
			for k := goal; k != start; {
				k = came[k]
				path = append(path, k)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		for _, nb := range neighbors(cur) {
			if closed[nb] {
				continue
			}
			step := cost(cur, nb)
			if step <= 0 {
				step = 1
			}
			tentative := g[cur] + step
			if old, ok := g[nb]; !ok || tentative < old {
				g[nb] = tentative
				came[nb] = cur
				push(nb, tentative+h(nb))
			}
		}
	}
	return nil
}

type pqNode struct {
	c   hex.Coord
	f   int
	seq int
}

// nodePQ breaks f ties by insertion order so results do not depend on heap
// layout.
type nodePQ []*pqNode

func (p nodePQ) Len() int { return len(p) }
func (p nodePQ) Less(i, j int) bool {
	if p[i].f != p[j].f {
		return p[i].f < p[j].f
	}
	return p[i].seq < p[j].seq
}
func (p nodePQ) Swap(i, j int) { p[i], p[j] = p[j], p[i] }
func (p *nodePQ) Push(x any)   { *p = append(*p, x.(*pqNode)) }
func (p *nodePQ) Pop() any {
	old := *p
	n := len(old)
	x := old[n-1]
	*p = old[:n-1]
	return x
}

// HeuristicTo returns the hex-distance heuristic toward goal.
func HeuristicTo(goal hex.Coord) func(c hex.Coord) int {
	return func(c hex.Coord) int { return c.DistanceTo(goal) }
}

// UnitCost charges one step per move.
func UnitCost(a, b hex.Coord) int { return 1 }

// NeighborsIn returns the neighbours of a coordinate that satisfy passable,
// in direction order.
func NeighborsIn(passable func(c hex.Coord) bool) func(c hex.Coord) []hex.Coord {
	return func(c hex.Coord) []hex.Coord {
		out := make([]hex.Coord, 0, 6)
		for _, nb := range c.AdjacentAll() {
			if passable(nb) {
				out = append(out, nb)
			}
		}
		return out
	}
}
