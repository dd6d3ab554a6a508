package script

import (
	"testing"

	"github.com/milk9111/autotile/level"
	"github.com/milk9111/autotile/terrain"
	"github.com/milk9111/autotile/wang"
)

func testSet(t *testing.T) *terrain.Set {
	t.Helper()
	set := terrain.NewSet(wang.ModeMixed, "grass")
	set.SetTileTerrain(10, 0, 0, 0, 0, 0, 0, 0, 0)
	return set
}

func TestRunPaintsCorner(t *testing.T) {
	src := `
brush := __brush
brush.paint("corner", 1, 1, 0)
`
	rt, err := New([]byte(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	lvl := level.New(3, 3)
	if err := rt.Run(lvl, 0, testSet(t)); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, p := range []wang.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}} {
		if got := lvl.Tile(0, p.X, p.Y); got != 10 {
			t.Fatalf("cell (%d,%d) = %d, want 10", p.X, p.Y, got)
		}
	}
	if got := lvl.Tile(0, 2, 2); got != wang.NoTile {
		t.Fatalf("cell (2,2) = %d, want empty", got)
	}
}

func TestRunPaintAtResolvesWorldPosition(t *testing.T) {
	src := `
__brush.paint_at(1.1, 1.1, 0)
`
	rt, err := New([]byte(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	lvl := level.New(3, 3)
	lvl.TileSize = 1
	if err := rt.Run(lvl, 0, testSet(t)); err != nil {
		t.Fatalf("run: %v", err)
	}

	// (1.1, 1.1) falls in the zone nearest the corner at (1,1).
	if got := lvl.Tile(0, 0, 0); got != 10 {
		t.Fatalf("cell (0,0) = %d, want 10", got)
	}
	if got := lvl.Tile(0, 1, 1); got != 10 {
		t.Fatalf("cell (1,1) = %d, want 10", got)
	}
}

func TestRunGridSizeAndTiles(t *testing.T) {
	// The script only paints when the injected globals line up, so the
	// painted cells prove __width, __height and tile() all worked.
	src := `
if __width == 4 && __height == 2 && __brush.tile(0, 0) == -1 {
	__brush.paint("corner", 1, 1, 0)
}
`
	rt, err := New([]byte(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	lvl := level.New(4, 2)
	if err := rt.Run(lvl, 0, testSet(t)); err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := lvl.Tile(0, 0, 0); got != 10 {
		t.Fatalf("cell (0,0) = %d, want 10", got)
	}
}

func TestRunPreviewReportsChanges(t *testing.T) {
	src := `
if len(__brush.preview("corner", 1, 1, 0)) == 4 {
	__brush.paint("corner", 1, 1, 0)
}
`
	rt, err := New([]byte(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	lvl := level.New(3, 3)
	if err := rt.Run(lvl, 0, testSet(t)); err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := lvl.Tile(0, 0, 0); got != 10 {
		t.Fatalf("preview reported wrong change count, cell (0,0) = %d", got)
	}
}

func TestRunPreviewDoesNotMutate(t *testing.T) {
	src := `
__brush.preview("corner", 1, 1, 0)
`
	rt, err := New([]byte(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	lvl := level.New(3, 3)
	if err := rt.Run(lvl, 0, testSet(t)); err != nil {
		t.Fatalf("run: %v", err)
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := lvl.Tile(0, x, y); got != wang.NoTile {
				t.Fatalf("preview mutated cell (%d,%d) = %d", x, y, got)
			}
		}
	}
}

func TestRunErrors(t *testing.T) {
	t.Run("compile_error", func(t *testing.T) {
		if _, err := New([]byte(`if {`)); err == nil {
			t.Fatalf("expected compile error")
		}
	})

	t.Run("missing_layer", func(t *testing.T) {
		rt, err := New([]byte(`x := 1`))
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		lvl := level.New(2, 2)
		if err := rt.Run(lvl, 3, testSet(t)); err == nil {
			t.Fatalf("expected missing layer error")
		}
	})
}
