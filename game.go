package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"coinhop/common"
	"coinhop/level"
	"coinhop/sim"
)

type Game struct {
	frames int

	input *Input
	sim   *sim.Simulation

	// debug toggles the collision overlay (F1).
	debug bool

	winUI *ebitenui.UI

	// levelPath is set when the level came from disk; the watcher reloads
	// it on save.
	levelPath string
	watcher   *level.Watcher
}

func NewGame(simulation *sim.Simulation, levelPath string, debug bool) *Game {
	g := &Game{
		input:     NewInput(),
		sim:       simulation,
		debug:     debug,
		levelPath: levelPath,
	}
	g.winUI = NewWinUI(g)

	if levelPath != "" {
		w, err := level.NewWatcher(levelPath)
		if err != nil {
			log.Printf("level watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()

	if g.input.ResetPressed {
		log.Println("resetting level")
		g.sim.Reset()
	}
	if g.input.DebugPressed {
		g.debug = !g.debug
	}

	// Pick up at most one pending live reload per frame.
	if g.watcher != nil {
		select {
		case path := <-g.watcher.Events:
			g.reloadLevel(path)
		case err := <-g.watcher.Errors:
			log.Printf("level watcher: %v", err)
		default:
		}
	}

	g.sim.Step(g.input.Intent())

	if g.sim.Snapshot().Won {
		g.winUI.Update()
	}

	return nil
}

func (g *Game) reloadLevel(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("reload %s: %v", path, err)
		return
	}
	log.Printf("reloading level from %s", path)
	g.sim.Load(string(data))
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()

	drawWorld(screen, snap, g.frames)
	drawTouchButtons(screen, g.input.TouchButtons())

	if g.debug {
		drawDebugOverlay(screen, snap)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Coins: %d/%d    FPS: %.2f", snap.Score, snap.TotalCoins, ebiten.ActualFPS()))

	if snap.Won {
		g.winUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
