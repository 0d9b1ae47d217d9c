// Command sweepviz is an interactive demo of the swept AABB collision test.
// The candidate box fires toward the cursor; the overlay shows the swept
// bounds, the time of impact and the contact normal. Right-click moves the
// box.
//
// The live game resolves tiles per axis instead; this tool is where the
// time-of-impact path stays visible.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"coinhop/geom"
	"coinhop/physics"
)

const (
	screenW = 960
	screenH = 544
)

type App struct {
	moving geom.AABB
	target geom.AABB
}

func NewApp() *App {
	return &App{
		moving: geom.AABB{X: 120, Y: 240, W: 48, H: 48},
		target: geom.AABB{X: 520, Y: 200, W: 160, H: 160},
	}
}

func (a *App) velocity() geom.Vec2 {
	mx, my := ebiten.CursorPosition()
	c := a.moving.Center()
	return geom.Vec2{X: float64(mx) - c.X, Y: float64(my) - c.Y}
}

func (a *App) Update() error {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		a.moving.X = float64(mx) - a.moving.W/2
		a.moving.Y = float64(my) - a.moving.H/2
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	vel := a.velocity()
	res := physics.Sweep(a.moving, vel, a.target)

	// Swept bounds (broad phase).
	sb := physics.SweptBounds(a.moving, vel)
	vector.StrokeRect(screen, float32(sb.X), float32(sb.Y), float32(sb.W), float32(sb.H), 1, colornames.Gray, false)

	// Stationary target and the moving box.
	vector.DrawFilledRect(screen, float32(a.target.X), float32(a.target.Y), float32(a.target.W), float32(a.target.H), colornames.Peru, false)
	vector.DrawFilledRect(screen, float32(a.moving.X), float32(a.moving.Y), float32(a.moving.W), float32(a.moving.H), colornames.Royalblue, false)

	// Velocity ray from the box center.
	c := a.moving.Center()
	vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(c.X+vel.X), float32(c.Y+vel.Y), 1, colornames.Lightsteelblue, true)

	// Where the box ends up after the safe fraction of the motion.
	clipped := a.moving.Translate(vel.Scale(res.Time))
	outline := colornames.Lime
	if res.Time == 1 {
		outline = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
	}
	vector.StrokeRect(screen, float32(clipped.X), float32(clipped.Y), float32(clipped.W), float32(clipped.H), 2, outline, false)

	// Contact normal at the hit face.
	if res.Normal != (geom.Vec2{}) {
		cc := clipped.Center()
		vector.StrokeLine(screen, float32(cc.X), float32(cc.Y),
			float32(cc.X+res.Normal.X*40), float32(cc.Y+res.Normal.Y*40), 3, colornames.Red, true)
	}

	status := fmt.Sprintf("time: %.3f   normal: (%.0f, %.0f)", res.Time, res.Normal.X, res.Normal.Y)
	if ext, ok := a.moving.OverlapExtent(a.target); ok {
		status = fmt.Sprintf("%s   penetration: (%.0f, %.0f)", status, ext.X, ext.Y)
	}
	ebitenutil.DebugPrint(screen, status+"\naim with the cursor, right-click to move the box")
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("sweepviz")
	if err := ebiten.RunGame(NewApp()); err != nil {
		log.Fatal(err)
	}
}
