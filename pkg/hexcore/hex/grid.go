package hex

import "sort"

// Set is an unordered collection of coordinates.
type Set map[Coord]struct{}

// NewSet builds a set from coords.
func NewSet(coords ...Coord) Set {
	s := make(Set, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

func (s Set) Add(c Coord)    { s[c] = struct{}{} }
func (s Set) Remove(c Coord) { delete(s, c) }
func (s Set) Len() int       { return len(s) }

func (s Set) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the members ordered by Coord.Less.
func (s Set) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	SortCoords(out)
	return out
}

// SortCoords sorts in place by Coord.Less.
func SortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
}

// Ring returns the coordinates at exact distance k from c, starting from
// the k-th step toward SouthWest and walking the six sides clockwise.
// If k==0, returns [c].
func Ring(c Coord, k int) []Coord {
	if k == 0 {
		return []Coord{c}
	}
	res := make([]Coord, 0, 6*k)
	cur := c.Add(Directions[SouthWest].Mul(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return res
}

// Disk returns all coordinates at distance <= r from c, innermost ring first.
func Disk(c Coord, r int) []Coord {
	res := make([]Coord, 0, 1+3*r*(r+1))
	for k := 0; k <= r; k++ {
		res = append(res, Ring(c, k)...)
	}
	return res
}
