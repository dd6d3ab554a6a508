package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/autotile/level"
	"github.com/milk9111/autotile/terrain"
	"github.com/milk9111/autotile/wang"
)

// Canvas encapsulates the editor's drawing canvas and paint interactions.
// The level is Y-up: grid row 0 renders at the bottom of the canvas.
type Canvas struct {
	// mutable canvas transform + drag state
	CanvasZoom       float64
	CanvasOffsetX    float64
	CanvasOffsetY    float64
	CanvasDragActive bool
	CanvasLastMX     int
	CanvasLastMY     int

	// level/model
	Level        *level.Level
	Set          *terrain.Set
	CellSize     int
	CurrentLayer int

	// current brush
	TerrainIndex int
	Trace        bool

	// hover preview state
	hoverTarget  wang.PaintTarget
	hoverValid   bool
	hoverChanges []wang.PreviewTile

	pixel *ebiten.Image
}

func NewCanvas(lvl *level.Level, set *terrain.Set, cellSize int) *Canvas {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Canvas{
		Level:      lvl,
		Set:        set,
		CellSize:   cellSize,
		CanvasZoom: 1.0,
		pixel:      pixel,
	}
}

// SetTerrainSet swaps the terrain set (live reload) and drops cached state.
func (c *Canvas) SetTerrainSet(set *terrain.Set) {
	c.Set = set
	c.hoverValid = false
	c.hoverChanges = nil
	if c.TerrainIndex >= set.NumTerrains() {
		c.TerrainIndex = 0
	}
}

// screenToCanvas maps a screen pixel through pan/zoom into canvas
// coordinates.
func (c *Canvas) screenToCanvas(sx, sy int) (float64, float64) {
	if c.CanvasZoom == 0 {
		c.CanvasZoom = 1.0
	}
	cx := (float64(sx) - c.CanvasOffsetX) / c.CanvasZoom
	cy := (float64(sy) - c.CanvasOffsetY) / c.CanvasZoom
	return cx, cy
}

// canvasToWorld converts canvas pixels into Y-up world coordinates measured
// in tiles.
func (c *Canvas) canvasToWorld(cx, cy float64) (float64, float64) {
	wx := cx / float64(c.CellSize)
	wy := float64(c.Level.Height) - cy/float64(c.CellSize)
	return wx, wy
}

// Update handles pan/zoom/paint/erase input. uiHovered suppresses canvas
// interaction while the pointer is over toolbar widgets.
func (c *Canvas) Update(mx, my int, uiHovered bool) {
	// Canvas zoom with mouse wheel.
	if !uiHovered {
		_, wy := ebiten.Wheel()
		if wy != 0 {
			localX, localY := c.screenToCanvas(mx, my)
			factor := 1.1
			if wy < 0 {
				factor = 1.0 / 1.1
			}
			newZoom := c.CanvasZoom * factor
			if newZoom < 0.25 {
				newZoom = 0.25
			}
			if newZoom > 8.0 {
				newZoom = 8.0
			}
			c.CanvasZoom = newZoom
			// keep the point under the cursor fixed
			c.CanvasOffsetX = float64(mx) - localX*c.CanvasZoom
			c.CanvasOffsetY = float64(my) - localY*c.CanvasZoom
		}
	}

	// Middle-button drag to pan.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		if !c.CanvasDragActive {
			c.CanvasDragActive = true
			c.CanvasLastMX = mx
			c.CanvasLastMY = my
		}
		c.CanvasOffsetX += float64(mx - c.CanvasLastMX)
		c.CanvasOffsetY += float64(my - c.CanvasLastMY)
		c.CanvasLastMX = mx
		c.CanvasLastMY = my
	} else {
		c.CanvasDragActive = false
	}

	layer := c.Level.Layer(c.CurrentLayer)
	if layer == nil || uiHovered {
		c.hoverValid = false
		return
	}

	cx, cy := c.screenToCanvas(mx, my)
	worldX, worldY := c.canvasToWorld(cx, cy)

	target := wang.ResolvePaintTarget(worldX, worldY, 1.0, c.Set.Mode())
	if !c.hoverValid || target != c.hoverTarget {
		c.hoverTarget = target
		c.hoverValid = true
		c.hoverChanges = wang.Preview(layer, c.Level.Width, c.Level.Height, target, c.Set, c.TerrainIndex)
	}

	// Left click / drag paints the hovered target.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		wang.PaintTraced(layer, c.Level.Width, c.Level.Height, target, c.Set, c.TerrainIndex, c.Trace)
		c.hoverChanges = nil
		c.hoverValid = false
	}

	// Right click erases the hovered cell.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		gx := int(math.Floor(worldX))
		gy := int(math.Floor(worldY))
		if gx >= 0 && gy >= 0 && gx < c.Level.Width && gy < c.Level.Height {
			layer[gy*c.Level.Width+gx] = wang.NoTile
			c.hoverValid = false
		}
	}
}

// Draw renders the grid, tiles and hover preview ghosts.
func (c *Canvas) Draw(screen *ebiten.Image) {
	layer := c.Level.Layer(c.CurrentLayer)
	if layer == nil {
		return
	}

	for y := 0; y < c.Level.Height; y++ {
		for x := 0; x < c.Level.Width; x++ {
			c.drawCellBackground(screen, x, y)
			if tile := layer[y*c.Level.Width+x]; tile != wang.NoTile {
				c.drawTile(screen, x, y, tile, 1.0)
			}
		}
	}

	if c.hoverValid {
		for _, ch := range c.hoverChanges {
			c.drawTile(screen, ch.Pos.X, ch.Pos.Y, ch.Tile, 0.55)
		}
	}
}

// cellRect returns the screen-space rectangle of cell (x, y), flipping Y so
// row 0 sits at the bottom.
func (c *Canvas) cellRect(x, y int) (float64, float64, float64) {
	size := float64(c.CellSize) * c.CanvasZoom
	sx := c.CanvasOffsetX + float64(x)*size
	sy := c.CanvasOffsetY + float64(c.Level.Height-1-y)*size
	return sx, sy, size
}

func (c *Canvas) drawCellBackground(screen *ebiten.Image, x, y int) {
	sx, sy, size := c.cellRect(x, y)
	shade := uint8(52)
	if (x+y)%2 == 0 {
		shade = 60
	}
	c.fillRect(screen, sx, sy, size-1, size-1, color.RGBA{shade, shade, shade, 255}, 1.0)
}

// drawTile renders a tile as a 3x3 swatch of its positional terrain colors,
// so corner/edge assignments are visible without artwork.
func (c *Canvas) drawTile(screen *ebiten.Image, x, y int, tileID int, alpha float64) {
	w, ok := c.Set.WangID(tileID)
	if !ok {
		return
	}

	sx, sy, size := c.cellRect(x, y)
	third := size / 3

	// sub-cell column/row -> wang position; center uses the dominant color
	subcells := [3][3]int{
		{wang.TopLeft, wang.Top, wang.TopRight},
		{wang.Left, -1, wang.Right},
		{wang.BottomLeft, wang.Bottom, wang.BottomRight},
	}

	dominant := dominantColor(w)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			colorID := dominant
			if pos := subcells[row][col]; pos >= 0 {
				colorID = w.ColorAt(pos)
			}
			if colorID == 0 {
				continue
			}
			c.fillRect(screen,
				sx+float64(col)*third, sy+float64(row)*third,
				third, third,
				terrainDisplayColor(int(colorID)-1), alpha)
		}
	}
}

func dominantColor(w wang.WangID) wang.TerrainColor {
	var counts [256]int
	best := wang.TerrainColor(0)
	for _, col := range w {
		if col == 0 {
			continue
		}
		counts[col]++
		if best == 0 || counts[col] > counts[best] {
			best = col
		}
	}
	return best
}

func (c *Canvas) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.RGBA, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(c.pixel, op)
}
