package hexcore

// CellState classifies a board coordinate.
type CellState int

const (
	OffBoard CellState = 0
	Water    CellState = 1
	Land     CellState = 2
)

func (s CellState) String() string {
	switch s {
	case Water:
		return "water"
	case Land:
		return "land"
	default:
		return "off-board"
	}
}
