package gamemap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gravitas-games/hexboard/pkg/hexcore/hex"
)

var ErrInvalidWall = errors.New("gamemap: wall position out of range")

// foldKeyword normalises a tag for case-insensitive comparison. A Caser
// is stateful, so one is built per call.
func foldKeyword(kw string) string {
	return cases.Fold().String(kw)
}

// Hex is the static content of one board cell. It owns no grid knowledge;
// the Grid maps coordinates to hexes.
type Hex struct {
	serial uint64

	ID       string // logical id label shown on the board
	Numbered bool   // false suppresses the id in board numbering
	Name     string
	Label    string

	Active bool // inactive hexes are blocked but remain valid coordinates

	walls        [6]bool // current mask, indexed by hex.Direction
	wallPosition [6]bool // unrotated layout
	rotation     hex.Rotation

	keywords map[string]string // folded -> as given
}

// NewHex creates an active, numbered hex with the given serial number.
// Serial numbers normally come from an IDAllocator.
func NewHex(serial uint64, id, name string) *Hex {
	return &Hex{
		serial:   serial,
		ID:       id,
		Numbered: true,
		Name:     name,
		Active:   true,
		keywords: make(map[string]string),
	}
}

// Serial returns the process-unique sequence number assigned at creation.
func (h *Hex) Serial() uint64 { return h.serial }

// Rotation returns the current wall orientation.
func (h *Hex) Rotation() hex.Rotation { return h.rotation }

// Walls returns the current wall mask, one flag per direction.
func (h *Hex) Walls() [6]bool { return h.walls }

// HasWall reports whether the edge facing d is walled.
func (h *Hex) HasWall(d hex.Direction) bool {
	if !d.Valid() {
		return false
	}
	return h.walls[d]
}

// SetWall sets or clears the wall on the edge currently facing position.
// The unrotated layout is updated so later rotations keep the wall.
func (h *Hex) SetWall(position int, on bool) error {
	if position < 0 || position >= 6 {
		return fmt.Errorf("%w: %d", ErrInvalidWall, position)
	}
	h.walls[position] = on
	h.wallPosition[(position-h.rotation.Steps()+6)%6] = on
	return nil
}

// SetWallLayout replaces the unrotated wall layout and reapplies the
// current rotation.
func (h *Hex) SetWallLayout(layout [6]bool) {
	h.wallPosition = layout
	h.applyRotation()
}

// Rotate turns the hex by n sixths of a turn (negative turns the other
// way). Rotating by n and then by (6-n)%6 restores the previous mask.
func (h *Hex) Rotate(n int) {
	h.rotation = hex.NewRotation(h.rotation.Steps() + n)
	h.applyRotation()
}

func (h *Hex) applyRotation() {
	r := h.rotation.Steps()
	for i := 0; i < 6; i++ {
		h.walls[(i+r)%6] = h.wallPosition[i]
	}
}

// AddKeyword tags the hex. Tags compare case-insensitively; the first
// spelling added is kept for display.
func (h *Hex) AddKeyword(kw string) {
	if h.keywords == nil {
		h.keywords = make(map[string]string)
	}
	f := foldKeyword(kw)
	if _, ok := h.keywords[f]; !ok {
		h.keywords[f] = kw
	}
}

// RemoveKeyword drops a tag, ignoring case.
func (h *Hex) RemoveKeyword(kw string) {
	delete(h.keywords, foldKeyword(kw))
}

// HasKeyword reports an exact, case-insensitive match.
func (h *Hex) HasKeyword(kw string) bool {
	_, ok := h.keywords[foldKeyword(kw)]
	return ok
}

// HasKeywordPrefix reports whether any tag starts with prefix.
func (h *Hex) HasKeywordPrefix(prefix string) bool {
	p := foldKeyword(prefix)
	for f := range h.keywords {
		if strings.HasPrefix(f, p) {
			return true
		}
	}
	return false
}

// HasKeywordContaining reports whether any tag contains sub.
func (h *Hex) HasKeywordContaining(sub string) bool {
	s := foldKeyword(sub)
	for f := range h.keywords {
		if strings.Contains(f, s) {
			return true
		}
	}
	return false
}

// Keywords returns the tags as originally spelled, sorted.
func (h *Hex) Keywords() []string {
	out := make([]string, 0, len(h.keywords))
	for _, kw := range h.keywords {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

func (h *Hex) String() string {
	if h.Label != "" {
		return fmt.Sprintf("%s %q", h.Name, h.Label)
	}
	return h.Name
}
