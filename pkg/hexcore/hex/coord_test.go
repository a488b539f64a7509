package hex

import (
	"errors"
	"testing"
)

func TestKeyParseRoundTrip(t *testing.T) {
	for x := -7; x <= 7; x++ {
		for y := -7; y <= 7; y++ {
			c := Coord{X: x, Y: y}
			got, err := Parse(c.Key())
			if err != nil {
				t.Fatalf("parse %q: %v", c.Key(), err)
			}
			if got != c {
				t.Fatalf("round trip mismatch: %v -> %q -> %v", c, c.Key(), got)
			}
		}
	}
	if k := (Coord{X: -3, Y: 12}).Key(); k != "-3,12" {
		t.Fatalf("expected key \"-3,12\", got %q", k)
	}
}

func TestParseRejectsMalformedKeys(t *testing.T) {
	for _, key := range []string{"", "1", "1;2", "a,2", "1,b", "1,2,3", " 1,2"} {
		_, err := Parse(key)
		if err == nil {
			t.Fatalf("expected error for %q", key)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("expected *ParseError for %q, got %T", key, err)
		}
		if pe.Key != key {
			t.Fatalf("expected error key %q, got %q", key, pe.Key)
		}
		if !errors.Is(err, ErrMalformedKey) {
			t.Fatalf("expected ErrMalformedKey for %q", key)
		}
	}
}

func TestTextMarshalling(t *testing.T) {
	c := Coord{X: 4, Y: -2}
	b, err := c.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Coord
	if err := out.UnmarshalText(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != c {
		t.Fatalf("expected %v, got %v", c, out)
	}
	if err := out.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("expected error for malformed text")
	}
}

func TestAdjacentDeltas(t *testing.T) {
	origin := Coord{}
	want := [6]Coord{{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}}
	if got := origin.AdjacentAll(); got != want {
		t.Fatalf("unexpected neighbour order: %v", got)
	}
	for d := North; d <= NorthWest; d++ {
		if got := origin.Adjacent(d); got != want[d] {
			t.Fatalf("direction %d: expected %v, got %v", d, want[d], got)
		}
	}
}

func TestAdjacencySymmetry(t *testing.T) {
	for _, c := range Disk(Coord{X: 2, Y: -1}, 3) {
		for d := North; d <= NorthWest; d++ {
			back := c.Adjacent(d).DirectionTo(c)
			if back != d.Opposite() {
				t.Fatalf("%v dir %d: expected back direction %d, got %d", c, d, d.Opposite(), back)
			}
		}
	}
	if North.Opposite() != South || NorthEast.Opposite() != SouthWest || SouthEast.Opposite() != NorthWest {
		t.Fatalf("unexpected opposite pairs")
	}
}

func TestDirectionToNonAdjacent(t *testing.T) {
	a := Coord{X: 1, Y: 1}
	for _, b := range []Coord{a, {3, 1}, {1, -1}, {2, 2}, {0, 0}} {
		if d := a.DirectionTo(b); d != NoDirection {
			t.Fatalf("expected NoDirection for %v -> %v, got %d", a, b, d)
		}
		if a.IsAdjacent(b) {
			t.Fatalf("%v should not be adjacent to %v", a, b)
		}
	}
}

func TestAdjacentChecked(t *testing.T) {
	if _, err := (Coord{}).AdjacentChecked(6); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
	got, err := (Coord{}).AdjacentChecked(SouthEast)
	if err != nil || got != (Coord{1, 0}) {
		t.Fatalf("expected (1,0), got %v err=%v", got, err)
	}
}

func TestDistanceMetric(t *testing.T) {
	cs := Disk(Coord{}, 4)
	for _, a := range cs {
		if a.DistanceTo(a) != 0 {
			t.Fatalf("distance to self must be 0 for %v", a)
		}
		for _, nb := range a.AdjacentAll() {
			if a.DistanceTo(nb) != 1 {
				t.Fatalf("neighbour distance must be 1: %v -> %v", a, nb)
			}
		}
		for _, b := range cs {
			if a.DistanceTo(b) != b.DistanceTo(a) {
				t.Fatalf("distance not symmetric: %v, %v", a, b)
			}
		}
	}
	cases := []struct {
		a, b Coord
		want int
	}{
		{Coord{0, 0}, Coord{2, -1}, 2},
		{Coord{0, 0}, Coord{2, 1}, 3},
		{Coord{0, 0}, Coord{-3, 3}, 3},
		{Coord{1, 1}, Coord{-2, -2}, 6},
	}
	for _, tc := range cases {
		if got := tc.a.DistanceTo(tc.b); got != tc.want {
			t.Fatalf("distance %v -> %v: expected %d, got %d", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestRotateVector(t *testing.T) {
	for d := 0; d < 6; d++ {
		if got := Directions[d].Rotate(1); got != Directions[(d+1)%6] {
			t.Fatalf("direction %d rotated: expected %v, got %v", d, Directions[(d+1)%6], got)
		}
		if got := Directions[d].Rotate(-1); got != Directions[(d+5)%6] {
			t.Fatalf("direction %d rotated back: expected %v, got %v", d, Directions[(d+5)%6], got)
		}
	}
	v := Coord{X: 2, Y: -3}
	for n := 0; n < 6; n++ {
		r := v.Rotate(n)
		if r.DistanceTo(Coord{}) != v.DistanceTo(Coord{}) {
			t.Fatalf("rotation by %d changed length of %v", n, v)
		}
	}
	if v.Rotate(6) != v {
		t.Fatalf("full turn must be identity")
	}
}
