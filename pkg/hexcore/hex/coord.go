package hex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Coord is an axial-offset board coordinate. Equality is structural, so
// Coord is safe to use as a map key.
type Coord struct {
	X int
	Y int
}

// Direction indexes the six neighbours of a hex, 0..5 clockwise from north.
type Direction int

const (
	North Direction = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
)

// NoDirection is returned by DirectionTo when the coordinates are not adjacent.
const NoDirection Direction = -1

// Directions holds the neighbour deltas in direction order. Wall masks and
// border tests index into this order, so it must not change.
var Directions = [6]Coord{
	{0, -1}, {+1, -1}, {+1, 0}, {0, +1}, {-1, +1}, {-1, 0},
}

var (
	ErrMalformedKey     = errors.New("hex: malformed coordinate key")
	ErrInvalidDirection = errors.New("hex: direction out of range")
)

// ParseError reports a coordinate key that could not be parsed.
type ParseError struct {
	Key    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("hex: parse %q: %s", e.Key, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrMalformedKey }

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool { return d >= 0 && d < 6 }

// Opposite returns the direction pointing back along d.
func (d Direction) Opposite() Direction { return (d + 3) % 6 }

// Add returns a+b.
func (a Coord) Add(b Coord) Coord { return Coord{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b.
func (a Coord) Sub(b Coord) Coord { return Coord{a.X - b.X, a.Y - b.Y} }

// Mul scales a by k.
func (a Coord) Mul(k int) Coord { return Coord{a.X * k, a.Y * k} }

// Adjacent returns the neighbour in direction d. It panics on an invalid
// direction; use AdjacentChecked for untrusted input.
func (a Coord) Adjacent(d Direction) Coord {
	return a.Add(Directions[d])
}

// AdjacentChecked is Adjacent with range validation.
func (a Coord) AdjacentChecked(d Direction) (Coord, error) {
	if !d.Valid() {
		return Coord{}, fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}
	return a.Adjacent(d), nil
}

// AdjacentAll returns all six neighbours in direction order.
func (a Coord) AdjacentAll() [6]Coord {
	var out [6]Coord
	for i, d := range Directions {
		out[i] = a.Add(d)
	}
	return out
}

// DirectionTo returns the direction from a to b, or NoDirection if b is not
// one of a's neighbours.
func (a Coord) DirectionTo(b Coord) Direction {
	delta := b.Sub(a)
	for i, d := range Directions {
		if d == delta {
			return Direction(i)
		}
	}
	return NoDirection
}

// IsAdjacent reports whether b is one of a's six neighbours.
func (a Coord) IsAdjacent(b Coord) bool { return a.DirectionTo(b) != NoDirection }

// DistanceTo returns the hex distance between a and b.
func (a Coord) DistanceTo(b Coord) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if (dx < 0 && dy > 0) || (dx > 0 && dy < 0) {
		return max(abs(dx), abs(dy))
	}
	return abs(dx + dy)
}

// Rotate turns the vector a about the origin by steps sixths of a turn
// clockwise; one step maps Directions[d] to Directions[d+1].
func (a Coord) Rotate(steps int) Coord {
	steps = ((steps % 6) + 6) % 6
	for i := 0; i < steps; i++ {
		a = Coord{-a.Y, a.X + a.Y}
	}
	return a
}

// Less orders coordinates by X then Y. Used for deterministic iteration.
func (a Coord) Less(b Coord) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Key returns the canonical "x,y" form of a.
func (a Coord) Key() string {
	return strconv.Itoa(a.X) + "," + strconv.Itoa(a.Y)
}

func (a Coord) String() string { return a.Key() }

// Parse is the inverse of Key.
func Parse(key string) (Coord, error) {
	xs, ys, ok := strings.Cut(key, ",")
	if !ok {
		return Coord{}, &ParseError{Key: key, Reason: "missing separator"}
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Coord{}, &ParseError{Key: key, Reason: "bad x component"}
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Coord{}, &ParseError{Key: key, Reason: "bad y component"}
	}
	return Coord{X: x, Y: y}, nil
}

// MarshalText implements encoding.TextMarshaler using Key, which lets Coord
// be used as a map key in YAML and JSON documents.
func (a Coord) MarshalText() ([]byte, error) { return []byte(a.Key()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (a *Coord) UnmarshalText(b []byte) error {
	c, err := Parse(string(b))
	if err != nil {
		return err
	}
	*a = c
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
