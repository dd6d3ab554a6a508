package wang

import (
	"log"
	"math/rand"
)

// NoTile marks an empty cell in a tile grid.
const NoTile = -1

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// TerrainSet is the terrain description the filler consults. Implemented by
// terrain.Set; anything carrying tile-to-terrain assignments, transition
// costs and selection weights will do.
type TerrainSet interface {
	// Mode returns the set's topology.
	Mode() Mode
	// WangID returns the positional colors of a tile, or false when the
	// tile carries no terrain data.
	WangID(tileID int) (WangID, bool)
	// TransitionPenalty returns the cost of placing terrain `to` where
	// terrain `from` was preferred. Always >= 0.
	TransitionPenalty(from, to int) float64
	// TileProbability returns the selection weight of a tile. Always > 0.
	TileProbability(tileID int) float64
	// TileIDs enumerates every tile with terrain data, in ascending order.
	TileIDs() []int
}

// penaltyEpsilon bounds the penalty difference under which two candidates
// count as tied for the minimum.
const penaltyEpsilon = 1e-9

// Filler fills a region of a tile grid with terrain-matching tiles using a
// three-phase algorithm: build constraints from existing content, place
// tiles while propagating hard constraints to neighbors, then run a single
// correction pass over invalidated cells outside the region.
//
// A Filler is single-use state for one Apply call chain; it owns its cell
// map and correction queue and borrows the terrain set and the grid.
type Filler struct {
	set         TerrainSet
	cells       map[Point]*CellInfo
	corrections []Point
	rng         *rand.Rand

	// Trace enables log output describing constraints and candidate
	// accept/reject decisions.
	Trace bool
}

// NewFiller returns a filler with a fixed default seed.
func NewFiller(set TerrainSet) *Filler {
	return NewFillerSeeded(set, 0)
}

// NewFillerSeeded returns a filler whose random selection is driven by the
// given seed. Identical seed, grid and region produce identical results.
func NewFillerSeeded(set TerrainSet, seed int64) *Filler {
	return &Filler{
		set:   set,
		cells: make(map[Point]*CellInfo),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Cell returns the constraint record at (x, y), creating it when absent.
func (f *Filler) Cell(x, y int) *CellInfo {
	p := Point{x, y}
	c, ok := f.cells[p]
	if !ok {
		c = &CellInfo{}
		f.cells[p] = c
	}
	return c
}

// surroundings collects, for each of the 8 neighbor directions, the color on
// the neighbor's opposite-facing position. That color must visually continue
// into this cell, so it becomes a preference here.
func (f *Filler) surroundings(tiles []int, width, height, x, y int) WangID {
	var result WangID
	for i, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || ny < 0 || nx >= width || ny >= height {
			continue
		}
		tile := tiles[ny*width+nx]
		if tile == NoTile {
			continue
		}
		neighbor, ok := f.set.WangID(tile)
		if !ok {
			continue
		}
		if c := neighbor[OppositeIndex(i)]; c != 0 {
			result[i] = c
		}
	}
	return result
}

// scoreTile scores a candidate against a cell's constraints over the active
// positions of the set's mode. It returns false when a hard constraint is
// violated; otherwise the accumulated soft penalty (possibly 0).
func (f *Filler) scoreTile(cell *CellInfo, tile WangID) (float64, bool) {
	penalty := 0.0
	for _, i := range f.set.Mode().ActivePositions() {
		want := cell.Desired[i]
		have := tile[i]

		if cell.Mask[i] {
			if want != have {
				return 0, false
			}
			continue
		}
		if want == 0 || want == have {
			continue
		}
		if have == 0 {
			// Candidate has no terrain where one was preferred.
			penalty += 1.0
			continue
		}
		penalty += f.set.TransitionPenalty(int(want)-1, int(have)-1)
	}
	return penalty, true
}

type candidate struct {
	tileID int
	weight float64
}

// findBestMatch scores every terrain-carrying tile against the cell and
// picks randomly among those tied for the minimum penalty, weighted by
// tile probability scaled down by penalty. Returns false when every tile
// was rejected.
func (f *Filler) findBestMatch(cell *CellInfo) (int, bool) {
	if f.Trace {
		f.traceConstraints(cell)
	}

	var candidates []candidate
	best := 0.0
	rejected := 0

	for _, tileID := range f.set.TileIDs() {
		tile, ok := f.set.WangID(tileID)
		if !ok || !tile.HasAnyTerrain() {
			continue
		}

		penalty, ok := f.scoreTile(cell, tile)
		if !ok {
			rejected++
			if f.Trace {
				log.Printf("wang: tile %d rejected (colors %v)", tileID, tile)
			}
			continue
		}
		if f.Trace {
			log.Printf("wang: tile %d accepted penalty=%g (colors %v)", tileID, penalty, tile)
		}
		if len(candidates) == 0 || penalty < best {
			best = penalty
			candidates = candidates[:0]
		}
		if penalty-best < penaltyEpsilon {
			weight := f.set.TileProbability(tileID) / (1 + penalty)
			candidates = append(candidates, candidate{tileID: tileID, weight: weight})
		}
	}

	if f.Trace {
		log.Printf("wang: %d candidates, %d rejected", len(candidates), rejected)
	}

	tileID, ok := f.randomPick(candidates)
	if f.Trace {
		if ok {
			log.Printf("wang: selected tile %d", tileID)
		} else {
			log.Printf("wang: no matching tile")
		}
	}
	return tileID, ok
}

// randomPick samples one candidate with probability proportional to its
// weight, using cumulative-sum sampling.
func (f *Filler) randomPick(candidates []candidate) (int, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	if len(candidates) == 1 {
		return candidates[0].tileID, true
	}

	total := 0.0
	for _, c := range candidates {
		total += c.weight
	}
	if total <= 0 {
		return candidates[0].tileID, true
	}

	r := f.rng.Float64() * total
	for _, c := range candidates {
		r -= c.weight
		if r <= 0 {
			return c.tileID, true
		}
	}
	// Floating point residue: fall through to the last candidate.
	return candidates[len(candidates)-1].tileID, true
}

// Apply runs the three-phase fill over region. tiles is a row-major
// width*height grid using NoTile for empty cells and is mutated in place.
// Region coordinates may repeat or fall out of bounds; both are harmless.
func (f *Filler) Apply(tiles []int, width, height int, region []Point) {
	regionSet := make(map[Point]struct{}, len(region))
	for _, p := range region {
		regionSet[p] = struct{}{}
	}

	// Phase 1: build constraints. Existing tile content and neighbor
	// colors become soft preferences only; they influence selection but
	// never force an outcome.
	for _, p := range region {
		if p.X < 0 || p.Y < 0 || p.X >= width || p.Y >= height {
			continue
		}
		if tile := tiles[p.Y*width+p.X]; tile != NoTile {
			if existing, ok := f.set.WangID(tile); ok {
				cell := f.Cell(p.X, p.Y)
				for i := 0; i < 8; i++ {
					if existing[i] != 0 {
						cell.SetPreference(i, existing[i])
					}
				}
			}
		}

		around := f.surroundings(tiles, width, height, p.X, p.Y)
		cell := f.Cell(p.X, p.Y)
		for i := 0; i < 8; i++ {
			if around[i] != 0 {
				cell.SetPreference(i, around[i])
			}
		}
	}

	// Phase 2: place tiles and propagate hard constraints.
	for _, p := range region {
		if p.X < 0 || p.Y < 0 || p.X >= width || p.Y >= height {
			continue
		}

		var cell CellInfo
		if c, ok := f.cells[p]; ok {
			cell = *c
		}

		chosen, ok := f.findBestMatch(&cell)
		if !ok {
			continue
		}
		tiles[p.Y*width+p.X] = chosen

		chosenWang, ok := f.set.WangID(chosen)
		if !ok {
			continue
		}

		for dir, off := range neighborOffsets {
			nx, ny := p.X+off[0], p.Y+off[1]
			if nx < 0 || ny < 0 || nx >= width || ny >= height {
				continue
			}
			neighborTile := tiles[ny*width+nx]
			if neighborTile == NoTile {
				continue
			}

			// The placed tile's color must be mirrored on the
			// neighbor's facing position.
			f.Cell(nx, ny).SetConstraint(OppositeIndex(dir), chosenWang[dir])

			np := Point{nx, ny}
			if _, inRegion := regionSet[np]; inRegion {
				continue
			}
			neighborWang, ok := f.set.WangID(neighborTile)
			if !ok {
				continue
			}
			if f.cells[np].violatedBy(neighborWang) {
				f.enqueueCorrection(np)
			}
		}
	}

	// Phase 3: single correction pass. The queue is drained once; a
	// correction never propagates or enqueues further corrections.
	corrections := f.corrections
	f.corrections = nil
	for _, p := range corrections {
		if _, inRegion := regionSet[p]; inRegion {
			continue
		}
		if p.X < 0 || p.Y < 0 || p.X >= width || p.Y >= height {
			continue
		}

		idx := p.Y*width + p.X
		tile := tiles[idx]
		if tile == NoTile {
			continue
		}
		current, ok := f.set.WangID(tile)
		if !ok {
			continue
		}
		cell, ok := f.cells[p]
		if !ok || !cell.violatedBy(current) {
			continue
		}
		if fix, ok := f.findBestMatch(cell); ok {
			tiles[idx] = fix
		}
	}
}

func (f *Filler) enqueueCorrection(p Point) {
	for _, q := range f.corrections {
		if q == p {
			return
		}
	}
	f.corrections = append(f.corrections, p)
}

func (f *Filler) traceConstraints(cell *CellInfo) {
	log.Printf("wang: matching against mode %s, active positions %v",
		f.set.Mode(), f.set.Mode().ActivePositions())
	for _, i := range f.set.Mode().ActivePositions() {
		switch {
		case cell.Mask[i]:
			log.Printf("wang:   position %d: hard constraint color=%d", i, cell.Desired[i])
		case cell.Desired[i] != 0:
			log.Printf("wang:   position %d: soft preference color=%d", i, cell.Desired[i])
		}
	}
}
