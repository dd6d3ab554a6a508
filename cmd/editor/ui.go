package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// BuildEditorUI assembles the toolbar: one toggle button per terrain color
// plus a trace toggle, anchored top center.
func BuildEditorUI(
	terrains []string,
	onTerrainSelected func(terrainIndex int),
	onToggleTrace func(),
	initialTerrain int,
) *ebitenui.UI {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbar := buildTerrainBar(ui.PrimaryTheme, &fontFace, terrains, onTerrainSelected, onToggleTrace, initialTerrain)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolbar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(toolbar)

	ui.Container = root
	return ui
}

func buildTerrainBar(
	theme *widget.Theme,
	fontFace *text.Face,
	terrains []string,
	onTerrainSelected func(terrainIndex int),
	onToggleTrace func(),
	initialTerrain int,
) *widget.Container {
	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(terrainBarBackground)),
	)

	var terrainButtons []*widget.Button
	for _, name := range terrains {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(name, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(64, 40),
			),
		)
		terrainButtons = append(terrainButtons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(terrainButtons))
	for _, b := range terrainButtons {
		elements = append(elements, b)
	}

	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onTerrainSelected == nil {
				return
			}
			for idx, b := range terrainButtons {
				if args.Active == b {
					onTerrainSelected(idx)
					return
				}
			}
		}),
	)
	if initialTerrain >= 0 && initialTerrain < len(terrainButtons) {
		group.SetActive(terrainButtons[initialTerrain])
	}

	traceBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Trace", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ToggleMode(),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onToggleTrace != nil {
				onToggleTrace()
			}
		}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(64, 40),
		),
	)
	toolbar.AddChild(traceBtn)

	return toolbar
}
