package gamemap

import (
	"errors"
	"fmt"

	"github.com/gravitas-games/hexboard/pkg/hexcore/hex"
	"github.com/gravitas-games/hexboard/pkg/hexcore/path"
)

var (
	ErrDistanceFieldNotComputed = errors.New("gamemap: distance field not computed")
	ErrWaterBodiesNotComputed   = errors.New("gamemap: water bodies not computed")
	ErrNotValid                 = errors.New("gamemap: coordinate is not on the board")
	ErrNotReached               = errors.New("gamemap: coordinate not reached")
)

// rangeCache keeps the single-source water distances for the last `from`
// passed to WaterRange. It is replaced when `from` changes and dropped on
// any topology change.
type rangeCache struct {
	from hex.Coord
	dist map[hex.Coord]int
}

// ComputeDistanceField labels every valid coordinate with its step count to
// the nearest occupied coordinate, moving only across valid coordinates.
func (g *Grid) ComputeDistanceField() {
	seeds := make([]hex.Coord, 0, len(g.content))
	for c := range g.content {
		seeds = append(seeds, c)
	}
	hex.SortCoords(seeds)
	g.distance = path.MarkDistances(seeds, g.IsValid)
}

// DistanceFromLand returns the label of c in the distance field.
func (g *Grid) DistanceFromLand(c hex.Coord) (int, error) {
	if g.distance == nil {
		return 0, ErrDistanceFieldNotComputed
	}
	if !g.IsValid(c) {
		return 0, fmt.Errorf("%w: %s", ErrNotValid, c)
	}
	d, ok := g.distance[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotReached, c)
	}
	return d, nil
}

// MaxDistanceFromLand returns the largest label in the distance field.
func (g *Grid) MaxDistanceFromLand() (int, error) {
	if g.distance == nil {
		return 0, ErrDistanceFieldNotComputed
	}
	best := 0
	for _, d := range g.distance {
		best = max(best, d)
	}
	return best, nil
}

// ComputeWaterBodies partitions the unoccupied valid coordinates into
// maximal connected components. Seeds are taken in coordinate order, so
// the body order is deterministic.
func (g *Grid) ComputeWaterBodies() {
	remaining := g.unoccupiedSet()
	g.water = nil
	g.waterIndex = make(map[hex.Coord]int, len(remaining))
	g.rangeCache = nil

	for _, seed := range remaining.Sorted() {
		if !remaining.Has(seed) {
			continue
		}
		body := hex.NewSet(seed)
		remaining.Remove(seed)
		frontier := []hex.Coord{seed}
		for len(frontier) > 0 {
			var next []hex.Coord
			for _, c := range frontier {
				for _, nb := range c.AdjacentAll() {
					if !remaining.Has(nb) {
						continue
					}
					remaining.Remove(nb)
					body.Add(nb)
					next = append(next, nb)
				}
			}
			frontier = next
		}
		idx := len(g.water)
		for c := range body {
			g.waterIndex[c] = idx
		}
		g.water = append(g.water, body)
	}
}

// WaterBodies returns the components found by ComputeWaterBodies.
func (g *Grid) WaterBodies() ([]hex.Set, error) {
	if g.waterIndex == nil {
		return nil, ErrWaterBodiesNotComputed
	}
	return g.water, nil
}

// WaterBodyOf returns the index into WaterBodies of the body holding c.
func (g *Grid) WaterBodyOf(c hex.Coord) (int, bool, error) {
	if g.waterIndex == nil {
		return 0, false, ErrWaterBodiesNotComputed
	}
	idx, ok := g.waterIndex[c]
	return idx, ok, nil
}

// Lakes returns every water body except the largest one, the sea. When
// several bodies share the largest size only the first is treated as the
// sea. Returns nil when there is at most one body.
func (g *Grid) Lakes() ([]hex.Set, error) {
	if g.waterIndex == nil {
		return nil, ErrWaterBodiesNotComputed
	}
	if len(g.water) <= 1 {
		return nil, nil
	}
	sea := 0
	for i, b := range g.water {
		if b.Len() > g.water[sea].Len() {
			sea = i
		}
	}
	lakes := make([]hex.Set, 0, len(g.water)-1)
	for i, b := range g.water {
		if i != sea {
			lakes = append(lakes, b)
		}
	}
	return lakes, nil
}

// WaterRange returns the number of steps between from and to travelling
// only through the water body that holds both. ok is false when no single
// body contains both coordinates.
func (g *Grid) WaterRange(from, to hex.Coord) (steps int, ok bool, err error) {
	if g.waterIndex == nil {
		return 0, false, ErrWaterBodiesNotComputed
	}
	fi, fok := g.waterIndex[from]
	ti, tok := g.waterIndex[to]
	if !fok || !tok || fi != ti {
		return 0, false, nil
	}
	if g.rangeCache == nil || g.rangeCache.from != from {
		g.rangeCache = &rangeCache{
			from: from,
			dist: path.MarkDistances([]hex.Coord{from}, path.InSet(g.water[fi])),
		}
	}
	steps, ok = g.rangeCache.dist[to]
	return steps, ok, nil
}

// ClearRangeCache drops the cached WaterRange search.
func (g *Grid) ClearRangeCache() { g.rangeCache = nil }

// WaterPath returns a shortest all-water route from from to to, both ends
// included, or nil when they are not in the same body.
func (g *Grid) WaterPath(from, to hex.Coord) ([]hex.Coord, error) {
	if g.waterIndex == nil {
		return nil, ErrWaterBodiesNotComputed
	}
	fi, fok := g.waterIndex[from]
	ti, tok := g.waterIndex[to]
	if !fok || !tok || fi != ti {
		return nil, nil
	}
	body := g.water[fi]
	return path.AStar(from, to, path.HeuristicTo(to), path.NeighborsIn(body.Has), path.UnitCost), nil
}
