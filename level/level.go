// Package level holds the JSON tile map the autotile commands operate on.
package level

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/milk9111/autotile/wang"
)

// Level represents a tile map stored as JSON. Each layer is a flat array of
// length Width*Height (row-major) holding tile ids; -1 marks an empty cell.
// Layer 0 is the bottom layer.
type Level struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Layers [][]int `json:"layers,omitempty"`

	// LayerNames optionally labels layers for editor display.
	LayerNames []string `json:"layer_names,omitempty"`

	// TerrainSetPath references the YAML terrain set used to paint this
	// level, relative to the level file.
	TerrainSetPath string `json:"terrain_set,omitempty"`

	// TileSize is the edge length of a tile in world units.
	TileSize float64 `json:"tile_size,omitempty"`
}

// New returns an empty level with one all-empty layer.
func New(width, height int) *Level {
	l := &Level{Width: width, Height: height}
	l.EnsureLayers(1)
	return l
}

// Load reads a level from a JSON file at path.
func Load(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return loadFromBytes(b)
}

func loadFromBytes(b []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, err
	}

	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", lvl.Width, lvl.Height)
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("layer %d has %d cells, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
	}
	return &lvl, nil
}

// Save writes the level as indented JSON to path.
func (l *Level) Save(path string) error {
	b, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// EnsureLayers grows the layer list to at least n layers, filling new layers
// with empty cells.
func (l *Level) EnsureLayers(n int) {
	for len(l.Layers) < n {
		layer := make([]int, l.Width*l.Height)
		for i := range layer {
			layer[i] = wang.NoTile
		}
		l.Layers = append(l.Layers, layer)
	}
}

// Layer returns layer i, or nil when it does not exist.
func (l *Level) Layer(i int) []int {
	if i < 0 || i >= len(l.Layers) {
		return nil
	}
	return l.Layers[i]
}

// Tile returns the tile at (x, y) on layer i, or wang.NoTile for empty or
// out-of-range cells.
func (l *Level) Tile(i, x, y int) int {
	layer := l.Layer(i)
	if layer == nil || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return wang.NoTile
	}
	return layer[y*l.Width+x]
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	c := *l
	c.Layers = make([][]int, len(l.Layers))
	for i, layer := range l.Layers {
		c.Layers[i] = append([]int(nil), layer...)
	}
	c.LayerNames = append([]string(nil), l.LayerNames...)
	return &c
}
