package wang

import "math"

// TargetKind discriminates what a paint action lands on.
type TargetKind int

const (
	// TargetCorner paints the intersection of up to 4 cells.
	TargetCorner TargetKind = iota
	// TargetHorizontalEdge paints the boundary between two vertically
	// adjacent cells.
	TargetHorizontalEdge
	// TargetVerticalEdge paints the boundary between two horizontally
	// adjacent cells.
	TargetVerticalEdge
)

func (k TargetKind) String() string {
	switch k {
	case TargetCorner:
		return "corner"
	case TargetHorizontalEdge:
		return "horizontal-edge"
	case TargetVerticalEdge:
		return "vertical-edge"
	}
	return "unknown"
}

// PaintTarget is a resolved semantic paint location. For a corner target X,Y
// are the corner intersection coordinates; for a horizontal edge X is the
// tile column and Y the edge row; for a vertical edge X is the edge column
// and Y the tile row.
type PaintTarget struct {
	Kind TargetKind
	X, Y int
}

// ResolvePaintTarget maps a continuous world position (Y-up) to the paint
// target the brush should affect, given the tile size and set topology.
// Resulting coordinates are clamped non-negative; callers bounds-check
// against their grid.
func ResolvePaintTarget(worldX, worldY, tileSize float64, mode Mode) PaintTarget {
	tileX := int(math.Floor(worldX / tileSize))
	tileY := int(math.Floor(worldY / tileSize))

	localX := fract(worldX / tileSize)
	localY := fract(worldY / tileSize)

	if mode == ModeCorner {
		return cornerTarget(nearestCorner(tileX, tileY, localX, localY))
	}

	if mode == ModeEdge {
		distH := math.Abs(localY - 0.5)
		distV := math.Abs(localX - 0.5)
		if distH < distV {
			edgeY := tileY
			if localY >= 0.5 {
				edgeY++
			}
			return horizontalEdgeTarget(tileX, edgeY)
		}
		edgeX := tileX
		if localX >= 0.5 {
			edgeX++
		}
		return verticalEdgeTarget(edgeX, tileY)
	}

	// Mixed: split the tile into a 3x3 zone grid. Outer corner zones snap
	// to the matching corner, outer edge zones to the matching edge, and
	// the center zone renormalizes and snaps to the nearest corner.
	zoneX := zone(localX)
	zoneY := zone(localY)

	switch {
	case zoneX == 0 && zoneY == 0:
		return cornerTarget(tileX, tileY)
	case zoneX == 2 && zoneY == 0:
		return cornerTarget(tileX+1, tileY)
	case zoneX == 0 && zoneY == 2:
		return cornerTarget(tileX, tileY+1)
	case zoneX == 2 && zoneY == 2:
		return cornerTarget(tileX+1, tileY+1)
	case zoneX == 1 && zoneY == 0:
		return horizontalEdgeTarget(tileX, tileY)
	case zoneX == 1 && zoneY == 2:
		return horizontalEdgeTarget(tileX, tileY+1)
	case zoneX == 0 && zoneY == 1:
		return verticalEdgeTarget(tileX, tileY)
	case zoneX == 2 && zoneY == 1:
		return verticalEdgeTarget(tileX+1, tileY)
	}

	centerX := (localX - 0.33) / 0.34
	centerY := (localY - 0.33) / 0.34
	return cornerTarget(nearestCorner(tileX, tileY, centerX, centerY))
}

// fract returns the fractional part of v mapped into [0, 1), including for
// negative inputs.
func fract(v float64) float64 {
	f := v - math.Trunc(v)
	if f < 0 {
		f++
	}
	return f
}

func zone(local float64) int {
	switch {
	case local < 0.33:
		return 0
	case local < 0.67:
		return 1
	default:
		return 2
	}
}

func nearestCorner(tileX, tileY int, localX, localY float64) (int, int) {
	cx, cy := tileX, tileY
	if localX >= 0.5 {
		cx++
	}
	if localY >= 0.5 {
		cy++
	}
	return cx, cy
}

func cornerTarget(x, y int) PaintTarget {
	return PaintTarget{Kind: TargetCorner, X: clampZero(x), Y: clampZero(y)}
}

func horizontalEdgeTarget(x, y int) PaintTarget {
	return PaintTarget{Kind: TargetHorizontalEdge, X: clampZero(x), Y: clampZero(y)}
}

func verticalEdgeTarget(x, y int) PaintTarget {
	return PaintTarget{Kind: TargetVerticalEdge, X: clampZero(x), Y: clampZero(y)}
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
