package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"coinhop/common"
	"coinhop/geom"
	"coinhop/sim"
)

// touchButton is an on-screen rectangle that acts as a held button while any
// touch is inside it.
type touchButton struct {
	box  geom.AABB
	held bool
}

// Input polls keyboard, gamepad and touch every frame and folds them into
// one intent. Multiple physical keys map onto the same three booleans.
type Input struct {
	// intent is what the simulation consumes this tick.
	intent sim.InputIntent

	// ResetPressed is true on the frame the reset key was pressed.
	ResetPressed bool
	// DebugPressed is true on the frame the debug-overlay key was pressed.
	DebugPressed bool

	touchLeft  touchButton
	touchRight touchButton
	touchJump  touchButton

	touchIDs []ebiten.TouchID
}

func NewInput() *Input {
	const size = 80
	const margin = 16
	y := float64(common.BaseHeight - size - margin)
	return &Input{
		touchLeft:  touchButton{box: geom.AABB{X: margin, Y: y, W: size, H: size}},
		touchRight: touchButton{box: geom.AABB{X: margin + size + 12, Y: y, W: size, H: size}},
		touchJump:  touchButton{box: geom.AABB{X: common.BaseWidth - size - margin, Y: y, W: size, H: size}},
	}
}

// Update polls all sources. Keyboard, gamepad and touch OR together; the
// stepper never sees where an intent came from.
func (i *Input) Update() {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyW) ||
		ebiten.IsKeyPressed(ebiten.KeyUp)

	// Gamepad: left stick X plus the bottom face button.
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -0.3 {
			left = true
		} else if x > 0.3 {
			right = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			jump = true
		}
	}

	i.updateTouch()
	left = left || i.touchLeft.held
	right = right || i.touchRight.held
	jump = jump || i.touchJump.held

	i.intent = sim.InputIntent{Left: left, Right: right, Jump: jump}

	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF1)
}

func (i *Input) updateTouch() {
	i.touchLeft.held = false
	i.touchRight.held = false
	i.touchJump.held = false

	i.touchIDs = ebiten.AppendTouchIDs(i.touchIDs[:0])
	for _, id := range i.touchIDs {
		x, y := ebiten.TouchPosition(id)
		p := geom.AABB{X: float64(x), Y: float64(y), W: 1, H: 1}
		if p.Overlaps(i.touchLeft.box) {
			i.touchLeft.held = true
		}
		if p.Overlaps(i.touchRight.box) {
			i.touchRight.held = true
		}
		if p.Overlaps(i.touchJump.box) {
			i.touchJump.held = true
		}
	}
}

// Intent returns the merged intent computed by the last Update.
func (i *Input) Intent() sim.InputIntent {
	return i.intent
}

// TouchButtons exposes the on-screen buttons so the renderer can draw and
// highlight them.
func (i *Input) TouchButtons() []touchButton {
	return []touchButton{i.touchLeft, i.touchRight, i.touchJump}
}
