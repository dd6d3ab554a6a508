package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(color.RGBA{40, 40, 40, 255}),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:   solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed: solidNineSlice(color.RGBA{160, 160, 160, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
		},
	}
}

var terrainBarBackground = color.RGBA{220, 220, 240, 255}

// terrainPalette supplies display colors for terrain indexes. Color 0 (no
// terrain) renders as the checker background instead.
var terrainPalette = []color.RGBA{
	{0x4c, 0xaf, 0x50, 0xff}, // green
	{0x21, 0x96, 0xf3, 0xff}, // blue
	{0x79, 0x55, 0x48, 0xff}, // brown
	{0xff, 0xc1, 0x07, 0xff}, // amber
	{0x9c, 0x27, 0xb0, 0xff}, // purple
	{0xf4, 0x43, 0x36, 0xff}, // red
	{0x00, 0xbc, 0xd4, 0xff}, // cyan
	{0x9e, 0x9e, 0x9e, 0xff}, // gray
}

func terrainDisplayColor(terrainIndex int) color.RGBA {
	if terrainIndex < 0 {
		return color.RGBA{0, 0, 0, 0}
	}
	return terrainPalette[terrainIndex%len(terrainPalette)]
}
