package hex

import (
	"errors"
	"fmt"
)

var ErrInvalidRotation = errors.New("hex: rotation delta must be +1 or -1")

// Rotation is a cyclic counter in [0,6) shared by single hexes (wall
// orientation) and tile sets (pattern orientation).
type Rotation int

// NewRotation normalises n into [0,6).
func NewRotation(n int) Rotation {
	return Rotation(((n % 6) + 6) % 6)
}

// Rotate advances the counter by one step in either direction.
func (r *Rotation) Rotate(delta int) error {
	if delta != 1 && delta != -1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRotation, delta)
	}
	*r = NewRotation(int(*r) + delta)
	return nil
}

// Steps returns the counter value.
func (r Rotation) Steps() int { return int(r) }
