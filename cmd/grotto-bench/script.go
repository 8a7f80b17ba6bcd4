package main

import (
	"math"

	"github.com/plus3/grotto/scene"
)

// flythrough is a scripted scene.Input. It releases and re-grabs the cursor
// over the first ticks so mouse look is live, then flies forward while
// sweeping the view.
type flythrough struct {
	tick int
}

func (f *flythrough) Advance() {
	f.tick++
}

func (f *flythrough) KeyDown(k scene.Key) bool {
	switch k {
	case scene.KeyCaptureToggle:
		return f.tick == 0 || f.tick == 2
	case scene.KeyForward:
		return f.tick >= 3
	case scene.KeyStrafeRight:
		return f.tick >= 3 && (f.tick/120)%2 == 1
	case scene.KeyUp:
		return f.tick >= 3 && (f.tick/300)%2 == 1
	}
	return false
}

func (f *flythrough) CursorPosition() (float64, float64) {
	t := float64(f.tick)
	return t * 3, 200 * math.Sin(t/30)
}
