// Package terrain models terrain sets: which terrains a tile carries at its
// corners and edges, how costly transitions between terrains are, and how
// likely each tile is to be picked. Sets are built in code or loaded from
// YAML spec files.
package terrain

import (
	"sort"

	"github.com/milk9111/autotile/wang"
)

// Unassigned marks a tile slot with no terrain.
const Unassigned = -1

// TileTerrain holds a tile's terrain index per slot, in the fixed slot order
// of the set's mode (see wang.Mode.SlotPositions). Unassigned slots carry
// Unassigned.
type TileTerrain []int

// HasAnyTerrain reports whether any slot is assigned.
func (t TileTerrain) HasAnyTerrain() bool {
	for _, v := range t {
		if v != Unassigned {
			return true
		}
	}
	return false
}

// Set describes a terrain set over a tileset. The zero value is unusable;
// use NewSet.
type Set struct {
	mode wang.Mode

	// Terrains are display names, indexed by terrain index.
	Terrains []string

	tiles         map[int]TileTerrain
	probabilities map[int]float64
	// penalties[from][to]; missing entries cost 0.
	penalties [][]float64

	// sorted tile ids, rebuilt lazily
	ids      []int
	idsStale bool
}

// NewSet returns an empty set with the given topology and terrain names.
func NewSet(mode wang.Mode, terrains ...string) *Set {
	return &Set{
		mode:          mode,
		Terrains:      terrains,
		tiles:         make(map[int]TileTerrain),
		probabilities: make(map[int]float64),
	}
}

// Mode returns the set's topology.
func (s *Set) Mode() wang.Mode {
	return s.mode
}

// NumTerrains returns how many terrains the set defines.
func (s *Set) NumTerrains() int {
	return len(s.Terrains)
}

// SetTileTerrain assigns a tile's per-slot terrain indexes. slots must have
// the slot count of the set's mode; extra entries are ignored and missing
// ones stay unassigned.
func (s *Set) SetTileTerrain(tileID int, slots ...int) {
	n := s.mode.NumSlots()
	t := make(TileTerrain, n)
	for i := range t {
		t[i] = Unassigned
	}
	for i := 0; i < n && i < len(slots); i++ {
		t[i] = slots[i]
	}
	s.tiles[tileID] = t
	s.idsStale = true
}

// TileTerrain returns a tile's slot assignment, or false when the tile
// carries no terrain data.
func (s *Set) TileTerrain(tileID int) (TileTerrain, bool) {
	t, ok := s.tiles[tileID]
	return t, ok
}

// WangID converts a tile's slot assignment to positional colors using the
// mode's fixed slot-to-position mapping. Terrain index t is stored as color
// t+1; unassigned slots stay 0.
func (s *Set) WangID(tileID int) (wang.WangID, bool) {
	t, ok := s.tiles[tileID]
	if !ok {
		return wang.WangID{}, false
	}

	var w wang.WangID
	for slot, pos := range s.mode.SlotPositions() {
		if slot < len(t) && t[slot] != Unassigned {
			w[pos] = wang.TerrainColor(t[slot] + 1)
		}
	}
	return w, true
}

// SetTransitionPenalty records the cost of placing terrain `to` where
// terrain `from` was preferred, and the reverse.
func (s *Set) SetTransitionPenalty(from, to int, cost float64) {
	n := s.NumTerrains()
	if from < 0 || to < 0 || from >= n || to >= n {
		return
	}
	if s.penalties == nil {
		s.penalties = make([][]float64, n)
		for i := range s.penalties {
			s.penalties[i] = make([]float64, n)
		}
	}
	s.penalties[from][to] = cost
	s.penalties[to][from] = cost
}

// TransitionPenalty returns the transition cost between two terrains.
// Unknown pairs cost 0.
func (s *Set) TransitionPenalty(from, to int) float64 {
	if from < 0 || to < 0 || from >= len(s.penalties) || to >= len(s.penalties[from]) {
		return 0
	}
	return s.penalties[from][to]
}

// SetTileProbability sets a tile's selection weight. Values <= 0 reset to
// the default of 1.
func (s *Set) SetTileProbability(tileID int, p float64) {
	if p <= 0 {
		delete(s.probabilities, tileID)
		return
	}
	s.probabilities[tileID] = p
}

// TileProbability returns a tile's selection weight, defaulting to 1.
func (s *Set) TileProbability(tileID int) float64 {
	if p, ok := s.probabilities[tileID]; ok {
		return p
	}
	return 1
}

// TileIDs returns every tile id with terrain data, ascending.
func (s *Set) TileIDs() []int {
	if s.ids == nil || s.idsStale {
		s.ids = make([]int, 0, len(s.tiles))
		for id := range s.tiles {
			s.ids = append(s.ids, id)
		}
		sort.Ints(s.ids)
		s.idsStale = false
	}
	return s.ids
}
