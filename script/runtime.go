// Package script runs tengo brush scripts against a level layer, exposing
// the paint and preview operations for batch map authoring.
package script

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/autotile/level"
	"github.com/milk9111/autotile/terrain"
	"github.com/milk9111/autotile/wang"
)

// Runtime holds a compiled brush script. A script sees:
//
//	__width, __height  grid size in tiles
//	__brush            the brush engine:
//	  paint(kind, x, y, terrain)     kind is "corner", "hedge" or "vedge"
//	  paint_at(wx, wy, terrain)      resolve a world position, then paint
//	  preview(kind, x, y, terrain)   changes as [[x, y, tile], ...]
//	  tile(x, y)                     current tile id, -1 when empty
//
// Terrain arguments are terrain indexes into the set's terrain list.
type Runtime struct {
	compiled *tengo.Compiled
}

// Load reads and compiles a brush script from a file.
func Load(path string) (*Runtime, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	return New(src)
}

// New compiles a brush script.
func New(src []byte) (*Runtime, error) {
	s := tengo.NewScript(src)
	_ = s.Add("__width", 0)
	_ = s.Add("__height", 0)
	_ = s.Add("__brush", &tengo.ImmutableMap{Value: map[string]tengo.Object{}})

	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &Runtime{compiled: compiled}, nil
}

// Run executes the script over the given level layer, mutating it in place.
func (rt *Runtime) Run(lvl *level.Level, layerIndex int, set *terrain.Set) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("script: nil runtime")
	}
	layer := lvl.Layer(layerIndex)
	if layer == nil {
		return fmt.Errorf("script: level has no layer %d", layerIndex)
	}

	engine := buildBrushEngine(lvl, layer, set)
	if err := rt.compiled.Set("__width", lvl.Width); err != nil {
		return err
	}
	if err := rt.compiled.Set("__height", lvl.Height); err != nil {
		return err
	}
	if err := rt.compiled.Set("__brush", engine); err != nil {
		return err
	}
	if err := rt.compiled.Run(); err != nil {
		return fmt.Errorf("script: run: %w", err)
	}
	return nil
}

func buildBrushEngine(lvl *level.Level, layer []int, set *terrain.Set) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["paint"] = &tengo.UserFunction{Name: "paint", Value: func(args ...tengo.Object) (tengo.Object, error) {
		target, terrainIndex, ok := targetArgs(args)
		if !ok {
			return tengo.FalseValue, nil
		}
		wang.Paint(layer, lvl.Width, lvl.Height, target, set, terrainIndex)
		return tengo.TrueValue, nil
	}}

	values["paint_at"] = &tengo.UserFunction{Name: "paint_at", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 {
			return tengo.FalseValue, nil
		}
		wx, okX := objectAsFloat(args[0])
		wy, okY := objectAsFloat(args[1])
		terrainIndex, okT := objectAsInt(args[2])
		if !okX || !okY || !okT {
			return tengo.FalseValue, nil
		}
		tileSize := lvl.TileSize
		if tileSize <= 0 {
			tileSize = 1
		}
		target := wang.ResolvePaintTarget(wx, wy, tileSize, set.Mode())
		wang.Paint(layer, lvl.Width, lvl.Height, target, set, terrainIndex)
		return tengo.TrueValue, nil
	}}

	values["preview"] = &tengo.UserFunction{Name: "preview", Value: func(args ...tengo.Object) (tengo.Object, error) {
		target, terrainIndex, ok := targetArgs(args)
		if !ok {
			return &tengo.Array{}, nil
		}
		changes := wang.Preview(layer, lvl.Width, lvl.Height, target, set, terrainIndex)
		out := make([]tengo.Object, 0, len(changes))
		for _, ch := range changes {
			out = append(out, &tengo.Array{Value: []tengo.Object{
				&tengo.Int{Value: int64(ch.Pos.X)},
				&tengo.Int{Value: int64(ch.Pos.Y)},
				&tengo.Int{Value: int64(ch.Tile)},
			}})
		}
		return &tengo.Array{Value: out}, nil
	}}

	values["tile"] = &tengo.UserFunction{Name: "tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return &tengo.Int{Value: int64(wang.NoTile)}, nil
		}
		x, okX := objectAsInt(args[0])
		y, okY := objectAsInt(args[1])
		if !okX || !okY || x < 0 || y < 0 || x >= lvl.Width || y >= lvl.Height {
			return &tengo.Int{Value: int64(wang.NoTile)}, nil
		}
		return &tengo.Int{Value: int64(layer[y*lvl.Width+x])}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

// targetArgs decodes (kind, x, y, terrain) script arguments.
func targetArgs(args []tengo.Object) (wang.PaintTarget, int, bool) {
	if len(args) < 4 {
		return wang.PaintTarget{}, 0, false
	}
	kind, okK := tengo.ToString(args[0])
	x, okX := objectAsInt(args[1])
	y, okY := objectAsInt(args[2])
	terrainIndex, okT := objectAsInt(args[3])
	if !okK || !okX || !okY || !okT {
		return wang.PaintTarget{}, 0, false
	}

	target := wang.PaintTarget{X: x, Y: y}
	switch kind {
	case "corner":
		target.Kind = wang.TargetCorner
	case "hedge":
		target.Kind = wang.TargetHorizontalEdge
	case "vedge":
		target.Kind = wang.TargetVerticalEdge
	default:
		return wang.PaintTarget{}, 0, false
	}
	return target, terrainIndex, true
}

func objectAsInt(obj tengo.Object) (int, bool) {
	v, ok := tengo.ToInt(obj)
	return v, ok
}

func objectAsFloat(obj tengo.Object) (float64, bool) {
	v, ok := tengo.ToFloat64(obj)
	return v, ok
}
