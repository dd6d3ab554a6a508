package wang

// Mode describes a terrain set's topology: which of the 8 positions carry
// terrain and how a tile's slot assignments map onto them.
type Mode int

const (
	// ModeCorner matches on the 4 corner positions only.
	ModeCorner Mode = iota
	// ModeEdge matches on the 4 edge positions only.
	ModeEdge
	// ModeMixed matches on all 8 positions independently.
	ModeMixed
)

func (m Mode) String() string {
	switch m {
	case ModeCorner:
		return "corner"
	case ModeEdge:
		return "edge"
	case ModeMixed:
		return "mixed"
	}
	return "unknown"
}

var (
	cornerPositions = []int{1, 3, 5, 7}
	edgePositions   = []int{0, 2, 4, 6}
	allPositions    = []int{0, 1, 2, 3, 4, 5, 6, 7}

	// Slot order -> wang position, per mode. The slot order is fixed:
	// corner mode {TL,TR,BL,BR}, edge mode {Top,Right,Bottom,Left},
	// mixed mode {TL,Top,TR,Right,BR,Bottom,BL,Left}.
	cornerSlots = []int{TopLeft, TopRight, BottomLeft, BottomRight}
	edgeSlots   = []int{Top, Right, Bottom, Left}
	mixedSlots  = []int{TopLeft, Top, TopRight, Right, BottomRight, Bottom, BottomLeft, Left}
)

// ActivePositions returns the position indices that participate in matching
// for this mode.
func (m Mode) ActivePositions() []int {
	switch m {
	case ModeCorner:
		return cornerPositions
	case ModeEdge:
		return edgePositions
	default:
		return allPositions
	}
}

// SlotPositions returns the wang position for each terrain slot, in slot
// order. Its length is the slot count for the mode (4 or 8).
func (m Mode) SlotPositions() []int {
	switch m {
	case ModeCorner:
		return cornerSlots
	case ModeEdge:
		return edgeSlots
	default:
		return mixedSlots
	}
}

// NumSlots returns how many terrain slots a tile has in this mode.
func (m Mode) NumSlots() int {
	return len(m.SlotPositions())
}
