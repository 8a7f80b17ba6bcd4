package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/grotto/scene"
)

var keyBindings = map[scene.Key]ebiten.Key{
	scene.KeyForward:       ebiten.KeyW,
	scene.KeyBack:          ebiten.KeyS,
	scene.KeyStrafeLeft:    ebiten.KeyA,
	scene.KeyStrafeRight:   ebiten.KeyD,
	scene.KeyDown:          ebiten.KeyQ,
	scene.KeyUp:            ebiten.KeyE,
	scene.KeyQuit:          ebiten.KeyEscape,
	scene.KeyCaptureToggle: ebiten.KeyShiftLeft,
}

// windowInput reads the keyboard and cursor from ebiten.
type windowInput struct {
	// blocked, when set and true, hides the keyboard from the camera so
	// typing into the debug overlay does not fly around.
	blocked func() bool
}

func (in *windowInput) KeyDown(k scene.Key) bool {
	if k != scene.KeyQuit && in.blocked != nil && in.blocked() {
		return false
	}
	key, ok := keyBindings[k]
	return ok && ebiten.IsKeyPressed(key)
}

func (in *windowInput) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (in *windowInput) SetCursorCaptured(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}
