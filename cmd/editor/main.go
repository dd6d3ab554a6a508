// Command editor is an interactive terrain painting demo. Hovering previews
// the tiles a paint would place; left click paints, right click erases,
// middle drag pans and the wheel zooms. The toolbar picks the terrain color.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/autotile/level"
	"github.com/milk9111/autotile/terrain"
)

type EditorGame struct {
	ui     *ebitenui.UI
	canvas *Canvas

	levelPath   string
	terrainPath string
	watcher     *terrain.Watcher
}

func (g *EditorGame) Update() error {
	// Live-reload the terrain set when its spec file changes.
	if g.watcher != nil {
		select {
		case r, ok := <-g.watcher.Reloads:
			if ok {
				g.applyReload(r)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("editor: watch error: %v", err)
			}
		default:
		}
	}

	g.ui.Update()

	mx, my := ebiten.CursorPosition()
	g.canvas.Update(mx, my, ebuiinput.UIHovered)

	if ebiten.IsKeyPressed(ebiten.KeyControl) && ebiten.IsKeyPressed(ebiten.KeyS) {
		if err := g.canvas.Level.Save(g.levelPath); err != nil {
			log.Printf("editor: save: %v", err)
		}
	}
	return nil
}

func (g *EditorGame) applyReload(r terrain.Reload) {
	if r.Err != nil {
		log.Printf("editor: reload %s: %v", r.Path, r.Err)
		return
	}
	g.canvas.SetTerrainSet(r.Set)
	log.Printf("editor: reloaded terrain set %s", r.Path)
}

func (g *EditorGame) Draw(screen *ebiten.Image) {
	g.canvas.Draw(screen)
	g.ui.Draw(screen)
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	levelPath := flag.String("level", "level.json", "level JSON file")
	terrainPath := flag.String("terrain", "", "terrain set YAML (defaults to the level's terrain_set)")
	cellSize := flag.Int("cell", 32, "cell size in pixels")
	watch := flag.Bool("watch", false, "live-reload the terrain set on change")
	flag.Parse()

	lvl, err := level.Load(*levelPath)
	if err != nil {
		log.Fatalf("editor: %v", err)
	}
	lvl.EnsureLayers(1)

	setPath := *terrainPath
	if setPath == "" {
		if lvl.TerrainSetPath == "" {
			log.Fatal("editor: no -terrain given and level has no terrain_set")
		}
		setPath = filepath.Join(filepath.Dir(*levelPath), lvl.TerrainSetPath)
	}
	set, err := terrain.LoadSet(setPath)
	if err != nil {
		log.Fatalf("editor: %v", err)
	}

	game := &EditorGame{
		canvas:      NewCanvas(lvl, set, *cellSize),
		levelPath:   *levelPath,
		terrainPath: setPath,
	}

	game.ui = BuildEditorUI(
		set.Terrains,
		func(terrainIndex int) {
			game.canvas.TerrainIndex = terrainIndex
		},
		func() {
			game.canvas.Trace = !game.canvas.Trace
		},
		0,
	)

	if *watch {
		w, err := terrain.NewWatcher(filepath.Dir(setPath))
		if err != nil {
			log.Fatalf("editor: watch: %v", err)
		}
		defer w.Close()
		game.watcher = w
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1024, 768)
	ebiten.SetWindowTitle("autotile editor")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
