package wang

// Per-target-kind seed tags keep corner and edge paints at coincident
// coordinates from colliding.
const (
	seedTagHorizontalEdge = int64(0x1000_0000_0000_0000)
	seedTagVerticalEdge   = int64(0x2000_0000_0000_0000)
)

func targetSeed(target PaintTarget) int64 {
	seed := int64(target.X)<<32 | int64(target.Y)
	switch target.Kind {
	case TargetHorizontalEdge:
		seed |= seedTagHorizontalEdge
	case TargetVerticalEdge:
		seed |= seedTagVerticalEdge
	}
	return seed
}

// affectedCells lists the cells a target touches along with the position
// index that gets the hard constraint in each.
func affectedCells(target PaintTarget) [][3]int {
	x, y := target.X, target.Y
	switch target.Kind {
	case TargetCorner:
		// A corner is shared by 4 cells; each contributes the corner
		// facing the intersection.
		return [][3]int{
			{x - 1, y - 1, TopRight},
			{x, y - 1, TopLeft},
			{x - 1, y, BottomRight},
			{x, y, BottomLeft},
		}
	case TargetHorizontalEdge:
		return [][3]int{
			{x, y - 1, Top},
			{x, y, Bottom},
		}
	default: // TargetVerticalEdge
		return [][3]int{
			{x - 1, y, Right},
			{x, y, Left},
		}
	}
}

// Paint applies terrain terrainIndex at the target, selecting and placing
// tiles for the touched cells and correcting invalidated neighbors. tiles is
// mutated in place. Repeated paints of the same target over the same grid
// state are reproducible.
func Paint(tiles []int, width, height int, target PaintTarget, set TerrainSet, terrainIndex int) {
	PaintTraced(tiles, width, height, target, set, terrainIndex, false)
}

// PaintTraced is Paint with optional candidate tracing to the log.
func PaintTraced(tiles []int, width, height int, target PaintTarget, set TerrainSet, terrainIndex int, trace bool) {
	color := TerrainColor(terrainIndex + 1)

	filler := NewFillerSeeded(set, targetSeed(target))
	filler.Trace = trace

	var region []Point
	for _, a := range affectedCells(target) {
		x, y, pos := a[0], a[1], a[2]
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}
		// Corners and edges are independent: only the painted position
		// is constrained, never its neighbors on the same cell.
		filler.Cell(x, y).SetConstraint(pos, color)

		p := Point{x, y}
		if !containsPoint(region, p) {
			region = append(region, p)
		}
	}

	filler.Apply(tiles, width, height, region)
}

// PaintCorner paints terrain at the corner intersection (cornerX, cornerY).
func PaintCorner(tiles []int, width, height, cornerX, cornerY int, set TerrainSet, terrainIndex int) {
	Paint(tiles, width, height, PaintTarget{Kind: TargetCorner, X: cornerX, Y: cornerY}, set, terrainIndex)
}

// PaintHorizontalEdge paints terrain on the edge between rows edgeY-1 and
// edgeY in column tileX.
func PaintHorizontalEdge(tiles []int, width, height, tileX, edgeY int, set TerrainSet, terrainIndex int) {
	Paint(tiles, width, height, PaintTarget{Kind: TargetHorizontalEdge, X: tileX, Y: edgeY}, set, terrainIndex)
}

// PaintVerticalEdge paints terrain on the edge between columns edgeX-1 and
// edgeX in row tileY.
func PaintVerticalEdge(tiles []int, width, height, edgeX, tileY int, set TerrainSet, terrainIndex int) {
	Paint(tiles, width, height, PaintTarget{Kind: TargetVerticalEdge, X: edgeX, Y: tileY}, set, terrainIndex)
}

// UpdateTileWithNeighbors re-selects the tile at (x, y) so it blends with
// its neighbors, preferring primaryTerrain everywhere without forcing it.
func UpdateTileWithNeighbors(tiles []int, width, height, x, y int, set TerrainSet, primaryTerrain int) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}

	color := TerrainColor(primaryTerrain + 1)
	filler := NewFiller(set)
	cell := filler.Cell(x, y)
	for i := 0; i < 8; i++ {
		cell.SetPreference(i, color)
	}

	filler.Apply(tiles, width, height, []Point{{x, y}})
}

// PreviewTile is one cell change a paint would make.
type PreviewTile struct {
	Pos  Point
	Tile int
}

// targetRegion lists the in-bounds cells a target touches.
func targetRegion(target PaintTarget, width, height int) []Point {
	var region []Point
	for _, a := range affectedCells(target) {
		x, y := a[0], a[1]
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}
		p := Point{x, y}
		if !containsPoint(region, p) {
			region = append(region, p)
		}
	}
	return region
}

// Preview computes the cell changes Paint would make, without mutating
// tiles. Only cells whose tile actually changes are reported.
func Preview(tiles []int, width, height int, target PaintTarget, set TerrainSet, terrainIndex int) []PreviewTile {
	return PreviewAll(tiles, width, height, []PaintTarget{target}, set, terrainIndex)
}

// PreviewAll previews several targets over one shared scratch grid, applying
// them in order and reporting the combined changes.
func PreviewAll(tiles []int, width, height int, targets []PaintTarget, set TerrainSet, terrainIndex int) []PreviewTile {
	if len(targets) == 0 {
		return nil
	}

	var affected []Point
	for _, target := range targets {
		for _, p := range targetRegion(target, width, height) {
			if !containsPoint(affected, p) {
				affected = append(affected, p)
			}
		}
	}
	if len(affected) == 0 {
		return nil
	}

	scratch := make([]int, len(tiles))
	copy(scratch, tiles)
	for _, target := range targets {
		Paint(scratch, width, height, target, set, terrainIndex)
	}

	var result []PreviewTile
	for _, p := range affected {
		idx := p.Y*width + p.X
		if scratch[idx] != tiles[idx] && scratch[idx] != NoTile {
			result = append(result, PreviewTile{Pos: p, Tile: scratch[idx]})
		}
	}
	return result
}

func containsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}
