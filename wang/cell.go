package wang

// CellInfo holds the desired terrain colors for a single cell plus a hard
// mask marking which positions are non-negotiable.
type CellInfo struct {
	// Desired terrain colors at each position.
	Desired WangID
	// Mask marks hard constraints: when Mask[i] is true a candidate tile
	// must carry Desired[i] at position i (0 matches only 0).
	Mask [8]bool
}

// SetConstraint records a hard constraint at position i. A constraint always
// wins: it overwrites whatever is there and sets the mask.
func (c *CellInfo) SetConstraint(i int, color TerrainColor) {
	idx := mod8(i)
	c.Desired[idx] = color
	c.Mask[idx] = true
}

// SetPreference records a soft preference at position i. It never overrides
// a hard constraint, regardless of call order.
func (c *CellInfo) SetPreference(i int, color TerrainColor) {
	idx := mod8(i)
	if !c.Mask[idx] {
		c.Desired[idx] = color
	}
}

// IsConstrained reports whether position i carries a hard constraint.
func (c *CellInfo) IsConstrained(i int) bool {
	return c.Mask[mod8(i)]
}

// violatedBy reports whether a tile with the given colors breaks any hard
// constraint on this cell. A masked position with desired color 0 is not
// counted as a violation.
func (c *CellInfo) violatedBy(tile WangID) bool {
	for i := 0; i < 8; i++ {
		if c.Mask[i] && c.Desired[i] != 0 && c.Desired[i] != tile[i] {
			return true
		}
	}
	return false
}
