package path

import "github.com/gravitas-games/hexboard/pkg/hexcore/hex"

// MarkDistances labels every coordinate reachable from seeds with its step
// count to the nearest seed, moving only between adjacent coordinates for
// which inDomain is true. Seeds are labelled 0 whether or not they are in
// the domain. Labelling proceeds one distance layer at a time, so every
// coordinate at distance d is labelled before any at d+1.
func MarkDistances(seeds []hex.Coord, inDomain func(hex.Coord) bool) map[hex.Coord]int {
	dist := make(map[hex.Coord]int, len(seeds))
	frontier := make([]hex.Coord, 0, len(seeds))
	for _, s := range seeds {
		if _, seen := dist[s]; seen {
			continue
		}
		dist[s] = 0
		frontier = append(frontier, s)
	}
	for d := 0; len(frontier) > 0; d++ {
		next := make([]hex.Coord, 0, len(frontier)*2)
		for _, c := range frontier {
			for _, nb := range c.AdjacentAll() {
				if _, seen := dist[nb]; seen {
					continue
				}
				if !inDomain(nb) {
					continue
				}
				dist[nb] = d + 1
				next = append(next, nb)
			}
		}
		frontier = next
	}
	return dist
}

// InSet adapts a coordinate set to a MarkDistances domain.
func InSet(s hex.Set) func(hex.Coord) bool {
	return s.Has
}
