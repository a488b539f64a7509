package gamemap

import (
	"fmt"

	"github.com/gravitas-games/hexboard/pkg/hexcore/hex"
)

// Placement is one cell of a tile-set pattern, offset from the set's centre.
// Border cells sit on the pattern's outer boundary and are the only cells
// consulted when testing adjacency to other tile sets.
type Placement struct {
	Name    string
	OffsetX int
	OffsetY int
	Border  bool
}

// Offset returns the placement's unrotated offset vector.
func (p Placement) Offset() hex.Coord { return hex.Coord{X: p.OffsetX, Y: p.OffsetY} }

// Kind selects how a tile set's template was built.
type Kind int

const (
	KindSingle Kind = iota
	KindCluster
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindCluster:
		return "cluster"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// TileSet is a fixed multi-hex pattern placed as a unit. All variants share
// one placement algorithm; they differ only in their template.
type TileSet struct {
	Name string
	Kind Kind

	templates []Placement
	center    *hex.Coord
	rotation  hex.Rotation
}

// NewSingle returns a one-hex tile set. Its only cell is a border cell.
func NewSingle(name string) *TileSet {
	return &TileSet{
		Name:      name,
		Kind:      KindSingle,
		templates: []Placement{{Name: name, Border: true}},
	}
}

// NewCluster returns a disk-shaped tile set of the given radius. Cells on
// the outermost ring are border cells; a radius-0 cluster behaves like a
// single.
func NewCluster(name string, radius int) *TileSet {
	if radius < 0 {
		radius = 0
	}
	var tpl []Placement
	for i, c := range hex.Disk(hex.Coord{}, radius) {
		tpl = append(tpl, Placement{
			Name:    fmt.Sprintf("%s-%d", name, i+1),
			OffsetX: c.X,
			OffsetY: c.Y,
			Border:  c.DistanceTo(hex.Coord{}) == radius,
		})
	}
	return &TileSet{Name: name, Kind: KindCluster, templates: tpl}
}

// NewCustom returns a tile set with a caller-supplied template.
func NewCustom(name string, templates []Placement) *TileSet {
	tpl := make([]Placement, len(templates))
	copy(tpl, templates)
	return &TileSet{Name: name, Kind: KindCustom, templates: tpl}
}

// Templates returns a copy of the pattern.
func (t *TileSet) Templates() []Placement {
	out := make([]Placement, len(t.templates))
	copy(out, t.templates)
	return out
}

// Len returns the number of cells in the pattern.
func (t *TileSet) Len() int { return len(t.templates) }

// Center returns the placed centre, or false if the set is not on a board.
func (t *TileSet) Center() (hex.Coord, bool) {
	if t.center == nil {
		return hex.Coord{}, false
	}
	return *t.center, true
}

// Placed reports whether the set is committed to a grid.
func (t *TileSet) Placed() bool { return t.center != nil }

// Rotation returns the pattern orientation.
func (t *TileSet) Rotation() hex.Rotation { return t.rotation }

// Rotate turns an unplaced pattern one step either way.
func (t *TileSet) Rotate(delta int) error {
	if t.center != nil {
		return fmt.Errorf("gamemap: cannot rotate placed tile set %q", t.Name)
	}
	return t.rotation.Rotate(delta)
}

// CoordsAt maps every template cell through centre c under the current
// rotation, in template order.
func (t *TileSet) CoordsAt(c hex.Coord) []hex.Coord {
	out := make([]hex.Coord, len(t.templates))
	for i, p := range t.templates {
		out[i] = c.Add(p.Offset().Rotate(t.rotation.Steps()))
	}
	return out
}

// Overlaps reports whether placing the set at c would put any cell off the
// board or on an occupied coordinate. A centre already held by another tile
// set also counts, since custom patterns need not cover their own centre.
func (t *TileSet) Overlaps(g *Grid, c hex.Coord) bool {
	if _, taken := g.tileSets[c]; taken {
		return true
	}
	for _, abs := range t.CoordsAt(c) {
		if !g.IsValid(abs) || g.IsOccupied(abs) {
			return true
		}
	}
	return false
}

// AdjacentToAnother reports whether any border cell of the set at c would
// touch occupied content. Callers must check Overlaps first; the result is
// meaningless for an overlapping centre.
func (t *TileSet) AdjacentToAnother(g *Grid, c hex.Coord) bool {
	for i, abs := range t.CoordsAt(c) {
		if !t.templates[i].Border {
			continue
		}
		for _, nb := range abs.AdjacentAll() {
			if g.IsOccupied(nb) {
				return true
			}
		}
	}
	return false
}

// loadMap commits the set's hexes to g at its current centre. It refuses
// to replace hexes that are already on the board.
func (t *TileSet) loadMap(g *Grid) error {
	c, ok := t.Center()
	if !ok {
		return fmt.Errorf("gamemap: tile set %q has no centre", t.Name)
	}
	coords := t.CoordsAt(c)
	for _, abs := range coords {
		if g.IsOccupied(abs) {
			return fmt.Errorf("gamemap: tile set %q would replace content at %s", t.Name, abs)
		}
	}
	for i, p := range t.templates {
		h := NewHex(g.ids.Next(), p.Name, p.Name)
		h.Rotate(t.rotation.Steps())
		if p.Border {
			h.AddKeyword(KeywordBorder)
		}
		h.AddKeyword(t.Name)
		g.content[coords[i]] = h
	}
	return nil
}

// unloadMap removes the set's hexes from g.
func (t *TileSet) unloadMap(g *Grid) {
	c, ok := t.Center()
	if !ok {
		return
	}
	for _, abs := range t.CoordsAt(c) {
		delete(g.content, abs)
	}
}

// SelectMap marks the set's footprint at c as the grid's selection without
// committing content.
func (t *TileSet) SelectMap(g *Grid, c hex.Coord) {
	g.selection = hex.NewSet(t.CoordsAt(c)...)
}

// KeywordBorder tags hexes materialised from border placements.
const KeywordBorder = "border"
