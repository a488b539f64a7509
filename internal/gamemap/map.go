package gamemap

import (
	"math/rand"

	"github.com/gravitas-games/hexboard/pkg/hexcore"
	"github.com/gravitas-games/hexboard/pkg/hexcore/hex"
)

// Grid is the board: the set of valid coordinates, the hex content placed
// on them, the committed tile sets, and the fields derived from them.
//
// A Grid is not safe for concurrent use. Callers sharing one across
// goroutines must guard it with a single mutex and recompute the derived
// fields after every topology change.
type Grid struct {
	valid    hex.Set
	content  map[hex.Coord]*Hex
	tileSets map[hex.Coord]*TileSet

	// Derived; nil until computed and reset by any topology change.
	distance   map[hex.Coord]int
	water      []hex.Set
	waterIndex map[hex.Coord]int
	rangeCache *rangeCache

	selection hex.Set

	ids *IDAllocator
	rng *rand.Rand
}

// Option configures a Grid.
type Option func(*Grid)

// WithRand sets the random source used to choose among acceptable
// placement centres.
func WithRand(rng *rand.Rand) Option {
	return func(g *Grid) {
		g.rng = rng
	}
}

// WithSeed is WithRand with a fresh source seeded by seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithIDAllocator shares a hex serial allocator between grids.
func WithIDAllocator(ids *IDAllocator) Option {
	return func(g *Grid) {
		g.ids = ids
	}
}

// New creates an empty grid. Without WithRand the placement source is
// seeded with 1 so runs are reproducible.
func New(opts ...Option) *Grid {
	g := &Grid{
		valid:     hex.NewSet(),
		content:   make(map[hex.Coord]*Hex),
		tileSets:  make(map[hex.Coord]*TileSet),
		selection: hex.NewSet(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.ids == nil {
		g.ids = NewIDAllocator()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(1))
	}
	return g
}

// InitShape adds the staggered-column board of the given size. Column gx
// runs over rows [-gx/2, height-gx/2-odd), where odd is 1 for odd columns.
func (g *Grid) InitShape(width, height int) {
	for gx := 0; gx < width; gx++ {
		offset := gx / 2
		shortCol := gx % 2
		for gy := -offset; gy < height-offset-shortCol; gy++ {
			g.valid.Add(hex.Coord{X: gx, Y: gy})
		}
	}
	g.invalidate()
}

// AddValid marks coordinates as part of the board. Loaders use it to
// rebuild a saved shape.
func (g *Grid) AddValid(coords ...hex.Coord) {
	for _, c := range coords {
		g.valid.Add(c)
	}
	g.invalidate()
}

// IsValid reports whether c is part of the board.
func (g *Grid) IsValid(c hex.Coord) bool { return g.valid.Has(c) }

// IsOccupied reports whether c holds a hex.
func (g *Grid) IsOccupied(c hex.Coord) bool {
	_, ok := g.content[c]
	return ok
}

// HexAt returns the hex at c.
func (g *Grid) HexAt(c hex.Coord) (*Hex, bool) {
	h, ok := g.content[c]
	return h, ok
}

// State classifies c as off-board, water, or land.
func (g *Grid) State(c hex.Coord) hexcore.CellState {
	switch {
	case !g.IsValid(c):
		return hexcore.OffBoard
	case g.IsOccupied(c):
		return hexcore.Land
	default:
		return hexcore.Water
	}
}

// ValidCoordinates returns every board coordinate, sorted.
func (g *Grid) ValidCoordinates() []hex.Coord { return g.valid.Sorted() }

// Occupied returns the coordinates holding hexes, sorted.
func (g *Grid) Occupied() []hex.Coord {
	out := make([]hex.Coord, 0, len(g.content))
	for c := range g.content {
		out = append(out, c)
	}
	hex.SortCoords(out)
	return out
}

// Unoccupied returns the valid coordinates holding no hex, sorted.
func (g *Grid) Unoccupied() []hex.Coord {
	return g.unoccupiedSet().Sorted()
}

func (g *Grid) unoccupiedSet() hex.Set {
	s := make(hex.Set, len(g.valid))
	for c := range g.valid {
		if !g.IsOccupied(c) {
			s.Add(c)
		}
	}
	return s
}

// EdgeCoordinates returns the valid coordinates with at least one
// neighbour off the board, sorted.
func (g *Grid) EdgeCoordinates() []hex.Coord {
	var out []hex.Coord
	for c := range g.valid {
		for _, nb := range c.AdjacentAll() {
			if !g.IsValid(nb) {
				out = append(out, c)
				break
			}
		}
	}
	hex.SortCoords(out)
	return out
}

// TileSets returns the committed tile sets ordered by centre.
func (g *Grid) TileSets() []*TileSet {
	centers := make([]hex.Coord, 0, len(g.tileSets))
	for c := range g.tileSets {
		centers = append(centers, c)
	}
	hex.SortCoords(centers)
	out := make([]*TileSet, len(centers))
	for i, c := range centers {
		out[i] = g.tileSets[c]
	}
	return out
}

// TileSetAt returns the tile set centred on c.
func (g *Grid) TileSetAt(c hex.Coord) (*TileSet, bool) {
	t, ok := g.tileSets[c]
	return t, ok
}

// Select marks t's footprint at c as the current selection.
func (g *Grid) Select(t *TileSet, c hex.Coord) { t.SelectMap(g, c) }

// Selection returns the selected coordinates, sorted.
func (g *Grid) Selection() []hex.Coord { return g.selection.Sorted() }

// ClearSelection empties the selection.
func (g *Grid) ClearSelection() { g.selection = hex.NewSet() }

// invalidate drops every derived structure after a topology change.
func (g *Grid) invalidate() {
	g.distance = nil
	g.water = nil
	g.waterIndex = nil
	g.rangeCache = nil
}
