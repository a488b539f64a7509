package gamemap

import (
	"fmt"
	"strings"

	"github.com/gravitas-games/hexboard/pkg/hexcore/hex"
)

// Policy constrains where AddTileSet may put a tile set.
type Policy int

const (
	// PolicyRandom accepts any non-overlapping centre.
	PolicyRandom Policy = iota
	// PolicyForceAdjacent requires the set to touch existing content.
	PolicyForceAdjacent
	// PolicyForceIsland requires the set not to touch existing content.
	PolicyForceIsland
)

func (p Policy) String() string {
	switch p {
	case PolicyRandom:
		return "random"
	case PolicyForceAdjacent:
		return "adjacent"
	case PolicyForceIsland:
		return "island"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy accepts the names produced by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return PolicyRandom, nil
	case "adjacent", "force_adjacent":
		return PolicyForceAdjacent, nil
	case "island", "force_island":
		return PolicyForceIsland, nil
	}
	return PolicyRandom, fmt.Errorf("gamemap: unknown placement policy %q", s)
}

// CandidatePool holds the centres still worth trying for one family of
// tile sets. AddTileSet drops centres that overlap, since content only
// grows while a board is assembled.
type CandidatePool struct {
	centers []hex.Coord
}

// NewCandidatePool copies centres into a pool, keeping their order.
func NewCandidatePool(centers []hex.Coord) *CandidatePool {
	cs := make([]hex.Coord, len(centers))
	copy(cs, centers)
	return &CandidatePool{centers: cs}
}

// Len returns the number of remaining centres.
func (p *CandidatePool) Len() int { return len(p.centers) }

// Centers returns a copy of the remaining centres.
func (p *CandidatePool) Centers() []hex.Coord {
	out := make([]hex.Coord, len(p.centers))
	copy(out, p.centers)
	return out
}

// AddTileSet places t at a centre drawn uniformly from the acceptable
// members of pool. It returns false, leaving the grid unchanged, when t is
// already placed or no centre is acceptable under policy. The first tile
// set on a grid is exempt from the adjacency policies.
func (g *Grid) AddTileSet(t *TileSet, pool *CandidatePool, policy Policy) bool {
	if t.Placed() || pool == nil {
		return false
	}
	first := len(g.tileSets) == 0

	kept := pool.centers[:0]
	var acceptable []hex.Coord
	for _, c := range pool.centers {
		if t.Overlaps(g, c) {
			continue
		}
		kept = append(kept, c)
		if first {
			acceptable = append(acceptable, c)
			continue
		}
		switch policy {
		case PolicyForceAdjacent:
			if t.AdjacentToAnother(g, c) {
				acceptable = append(acceptable, c)
			}
		case PolicyForceIsland:
			if !t.AdjacentToAnother(g, c) {
				acceptable = append(acceptable, c)
			}
		default:
			acceptable = append(acceptable, c)
		}
	}
	pool.centers = kept

	if len(acceptable) == 0 {
		return false
	}
	return g.commit(t, acceptable[g.rng.Intn(len(acceptable))]) == nil
}

// PlaceAt commits t at c without a policy. It fails if t is already placed
// or would overlap.
func (g *Grid) PlaceAt(t *TileSet, c hex.Coord) error {
	if t.Placed() {
		return fmt.Errorf("gamemap: tile set %q already placed", t.Name)
	}
	if t.Overlaps(g, c) {
		return fmt.Errorf("gamemap: tile set %q overlaps at %s", t.Name, c)
	}
	return g.commit(t, c)
}

func (g *Grid) commit(t *TileSet, c hex.Coord) error {
	center := c
	t.center = &center
	if err := t.loadMap(g); err != nil {
		t.center = nil
		return err
	}
	g.tileSets[c] = t
	g.invalidate()
	return nil
}

// RemoveTileSet removes t and all of its hexes. It returns false if t is
// not placed on this grid.
func (g *Grid) RemoveTileSet(t *TileSet) bool {
	c, ok := t.Center()
	if !ok {
		return false
	}
	if g.tileSets[c] != t {
		return false
	}
	t.unloadMap(g)
	delete(g.tileSets, c)
	t.center = nil
	g.invalidate()
	return true
}
