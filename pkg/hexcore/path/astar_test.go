package path

import (
	"testing"

	"github.com/gravitas-games/hexboard/pkg/hexcore/hex"
)

func TestAStarFindsShortestPath(t *testing.T) {
	domain := hex.NewSet(hex.Disk(hex.Coord{}, 4)...)
	start, goal := hex.Coord{X: -3, Y: 0}, hex.Coord{X: 3, Y: -1}
	p := AStar(start, goal, HeuristicTo(goal), NeighborsIn(domain.Has), UnitCost)
	if p == nil {
		t.Fatalf("expected a path")
	}
	if p[0] != start || p[len(p)-1] != goal {
		t.Fatalf("path must start at %v and end at %v: %v", start, goal, p)
	}
	if len(p)-1 != start.DistanceTo(goal) {
		t.Fatalf("expected %d steps, got %d", start.DistanceTo(goal), len(p)-1)
	}
	for i := 1; i < len(p); i++ {
		if !p[i-1].IsAdjacent(p[i]) {
			t.Fatalf("path step %d is not adjacent: %v -> %v", i, p[i-1], p[i])
		}
	}
}

func TestAStarDetoursAroundBlocked(t *testing.T) {
	domain := hex.NewSet(hex.Disk(hex.Coord{}, 3)...)
	domain.Remove(hex.Coord{})
	domain.Remove(hex.Coord{X: 0, Y: -1})
	start, goal := hex.Coord{X: -1, Y: 0}, hex.Coord{X: 1, Y: -1}
	p := AStar(start, goal, HeuristicTo(goal), NeighborsIn(domain.Has), UnitCost)
	if p == nil {
		t.Fatalf("expected a path")
	}
	for _, c := range p {
		if !domain.Has(c) {
			t.Fatalf("path crosses blocked coordinate %v", c)
		}
	}
	if len(p)-1 <= start.DistanceTo(goal) {
		t.Fatalf("expected a detour longer than %d steps, got %d", start.DistanceTo(goal), len(p)-1)
	}
}

func TestAStarNoPath(t *testing.T) {
	domain := hex.NewSet(hex.Coord{}, hex.Coord{X: 5, Y: 5})
	if p := AStar(hex.Coord{}, hex.Coord{X: 5, Y: 5}, HeuristicTo(hex.Coord{X: 5, Y: 5}), NeighborsIn(domain.Has), UnitCost); p != nil {
		t.Fatalf("expected nil path, got %v", p)
	}
	if p := AStar(hex.Coord{}, hex.Coord{}, HeuristicTo(hex.Coord{}), NeighborsIn(domain.Has), UnitCost); len(p) != 1 {
		t.Fatalf("start==goal must return a single-cell path, got %v", p)
	}
}
