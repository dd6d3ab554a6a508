// Command brush runs a tengo brush script against a level file, autotiling
// terrain onto one of its layers, and writes the result back out.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/milk9111/autotile/level"
	"github.com/milk9111/autotile/script"
	"github.com/milk9111/autotile/terrain"
)

func main() {
	levelPath := flag.String("level", "", "level JSON file to paint")
	terrainPath := flag.String("terrain", "", "terrain set YAML (defaults to the level's terrain_set)")
	scriptPath := flag.String("script", "", "tengo brush script to run")
	layer := flag.Int("layer", 0, "layer index to paint")
	out := flag.String("o", "", "output path (defaults to overwriting the level)")
	flag.Parse()

	if *levelPath == "" || *scriptPath == "" {
		flag.Usage()
		log.Fatal("brush: -level and -script are required")
	}

	lvl, err := level.Load(*levelPath)
	if err != nil {
		log.Fatalf("brush: %v", err)
	}

	setPath := *terrainPath
	if setPath == "" {
		if lvl.TerrainSetPath == "" {
			log.Fatal("brush: no -terrain given and level has no terrain_set")
		}
		setPath = filepath.Join(filepath.Dir(*levelPath), lvl.TerrainSetPath)
	}
	set, err := terrain.LoadSet(setPath)
	if err != nil {
		log.Fatalf("brush: %v", err)
	}

	rt, err := script.Load(*scriptPath)
	if err != nil {
		log.Fatalf("brush: %v", err)
	}

	lvl.EnsureLayers(*layer + 1)
	if err := rt.Run(lvl, *layer, set); err != nil {
		log.Fatalf("brush: %v", err)
	}

	dest := *out
	if dest == "" {
		dest = *levelPath
	}
	if err := lvl.Save(dest); err != nil {
		log.Fatalf("brush: %v", err)
	}
	log.Printf("brush: wrote %s", dest)
}
