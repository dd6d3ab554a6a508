// Package wang implements constraint-based terrain autotiling over flat
// row-major tile grids. Painting a terrain color at a corner or edge builds
// hard constraints for the touched cells, fills them with matching tiles and
// propagates constraints outward so neighboring tiles keep lining up.
package wang

// TerrainColor identifies a terrain at one position of a tile.
// 0 means no terrain; terrain index t is stored as color t+1.
type TerrainColor = uint8

// Clock positions around a cell:
//
//	7|0|1
//	6|X|2
//	5|4|3
//
// Even indices are edges, odd indices are corners.
const (
	Top         = 0
	TopRight    = 1
	Right       = 2
	BottomRight = 3
	Bottom      = 4
	BottomLeft  = 5
	Left        = 6
	TopLeft     = 7
)

// WangID stores a terrain color for each of the 8 clock positions.
// The zero value is the wildcard: it matches anything.
type WangID [8]TerrainColor

// Filled returns a WangID with every position set to the same color.
func Filled(color TerrainColor) WangID {
	var w WangID
	for i := range w {
		w[i] = color
	}
	return w
}

// ColorAt returns the color at position i. Indices wrap mod 8.
func (w WangID) ColorAt(i int) TerrainColor {
	return w[mod8(i)]
}

// SetColor sets the color at position i. Indices wrap mod 8.
func (w *WangID) SetColor(i int, color TerrainColor) {
	w[mod8(i)] = color
}

// HasAnyTerrain reports whether any position carries a non-zero color.
func (w WangID) HasAnyTerrain() bool {
	for _, c := range w {
		if c != 0 {
			return true
		}
	}
	return false
}

// OppositeIndex returns the position on a neighbor that faces position i.
func OppositeIndex(i int) int {
	return mod8(i + 4)
}

// IsCorner reports whether position i is a corner (odd index).
func IsCorner(i int) bool {
	return mod8(i)%2 == 1
}

// NextIndex returns the next position clockwise.
func NextIndex(i int) int {
	return mod8(i + 1)
}

// PrevIndex returns the previous position counter-clockwise.
func PrevIndex(i int) int {
	return mod8(i + 7)
}

func mod8(i int) int {
	return ((i % 8) + 8) % 8
}

// neighborOffsets maps each clock position to the offset of the neighboring
// cell in that direction, Y-up.
var neighborOffsets = [8][2]int{
	{0, 1},   // Top
	{1, 1},   // TopRight
	{1, 0},   // Right
	{1, -1},  // BottomRight
	{0, -1},  // Bottom
	{-1, -1}, // BottomLeft
	{-1, 0},  // Left
	{-1, 1},  // TopLeft
}
