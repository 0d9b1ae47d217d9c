package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"coinhop/levels"
	"coinhop/sim"
)

func main() {
	levelName := flag.String("level", "", "embedded level name (basename, .txt optional)")
	levelFile := flag.String("level-file", "", "path to a level file on disk (watched for changes)")
	configPath := flag.String("config", "", "path to a tuning config (yaml)")
	debug := flag.Bool("debug", false, "start with the collision overlay enabled")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := sim.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	src, watchPath, err := loadLevelSource(*levelName, *levelFile)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	simulation := sim.New(src, cfg, rng)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(960, 544)
	ebiten.SetWindowTitle("coinhop")

	game := NewGame(simulation, watchPath, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadLevelSource resolves the level text: an on-disk file wins (and gets
// watched), otherwise an embedded level by name, otherwise the default.
func loadLevelSource(name, file string) (src, watchPath string, err error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", "", err
		}
		log.Printf("loaded level from %s", file)
		return string(data), file, nil
	}

	if name == "" {
		name = levels.Default
	}
	src, err = levels.Load(name)
	if err != nil {
		return "", "", fmt.Errorf("level %q (embedded levels: %s): %w", name, strings.Join(levels.Names(), ", "), err)
	}
	log.Printf("loaded embedded level %q", name)
	return src, "", nil
}
