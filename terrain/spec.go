package terrain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/autotile/wang"
)

// SetSpec is the YAML form of a terrain set.
//
//	mode: mixed
//	terrains: [grass, water]
//	tiles:
//	  - id: 3
//	    slots: [0, 0, 0, 0, 0, 0, 0, 0]
//	    probability: 0.5
//	transitions:
//	  - from: grass
//	    to: water
//	    cost: 2
//
// Slot lists use -1 (or omit trailing entries) for unassigned slots, in the
// mode's fixed slot order.
type SetSpec struct {
	Mode        string           `yaml:"mode"`
	Terrains    []string         `yaml:"terrains"`
	Tiles       []TileSpec       `yaml:"tiles"`
	Transitions []TransitionSpec `yaml:"transitions,omitempty"`
}

type TileSpec struct {
	ID          int     `yaml:"id"`
	Slots       []int   `yaml:"slots"`
	Probability float64 `yaml:"probability,omitempty"`
}

type TransitionSpec struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// LoadSetSpec reads a terrain set spec from a YAML file.
func LoadSetSpec(path string) (*SetSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("terrain: load %s: %w", path, err)
	}

	var spec SetSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("terrain: unmarshal %s: %w", path, err)
	}
	return &spec, nil
}

// LoadSet reads and builds a terrain set from a YAML file.
func LoadSet(path string) (*Set, error) {
	spec, err := LoadSetSpec(path)
	if err != nil {
		return nil, err
	}
	return spec.Build()
}

// Build validates the spec and constructs a Set from it.
func (spec *SetSpec) Build() (*Set, error) {
	mode, err := parseMode(spec.Mode)
	if err != nil {
		return nil, err
	}

	set := NewSet(mode, spec.Terrains...)

	for _, tile := range spec.Tiles {
		if len(tile.Slots) > mode.NumSlots() {
			return nil, fmt.Errorf("terrain: tile %d has %d slots, %s mode allows %d",
				tile.ID, len(tile.Slots), mode, mode.NumSlots())
		}
		for _, t := range tile.Slots {
			if t != Unassigned && (t < 0 || t >= len(spec.Terrains)) {
				return nil, fmt.Errorf("terrain: tile %d references terrain %d, have %d terrains",
					tile.ID, t, len(spec.Terrains))
			}
		}
		set.SetTileTerrain(tile.ID, tile.Slots...)
		if tile.Probability > 0 {
			set.SetTileProbability(tile.ID, tile.Probability)
		}
	}

	for _, tr := range spec.Transitions {
		from := terrainIndex(spec.Terrains, tr.From)
		to := terrainIndex(spec.Terrains, tr.To)
		if from < 0 || to < 0 {
			return nil, fmt.Errorf("terrain: transition %q -> %q names an unknown terrain", tr.From, tr.To)
		}
		if tr.Cost < 0 {
			return nil, fmt.Errorf("terrain: transition %q -> %q has negative cost %g", tr.From, tr.To, tr.Cost)
		}
		set.SetTransitionPenalty(from, to, tr.Cost)
	}

	return set, nil
}

func parseMode(name string) (wang.Mode, error) {
	switch name {
	case "corner":
		return wang.ModeCorner, nil
	case "edge":
		return wang.ModeEdge, nil
	case "mixed":
		return wang.ModeMixed, nil
	}
	return 0, fmt.Errorf("terrain: unknown mode %q (want corner, edge or mixed)", name)
}

func terrainIndex(terrains []string, name string) int {
	for i, t := range terrains {
		if t == name {
			return i
		}
	}
	return -1
}
