package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/grotto/scene"
)

var runeBindings = map[rune]scene.Key{
	'w': scene.KeyForward,
	's': scene.KeyBack,
	'a': scene.KeyStrafeLeft,
	'd': scene.KeyStrafeRight,
	'q': scene.KeyDown,
	'e': scene.KeyUp,
}

// terminalInput turns tcell events into held keys. Terminals report key
// presses and repeats but no releases, so a key counts as held for hold
// after its last event.
type terminalInput struct {
	screen tcell.Screen
	hold   time.Duration
	now    func() time.Time

	pressed map[scene.Key]time.Time
	x, y    float64
}

func newTerminalInput(screen tcell.Screen, hold time.Duration) *terminalInput {
	return &terminalInput{
		screen:  screen,
		hold:    hold,
		now:     time.Now,
		pressed: make(map[scene.Key]time.Time),
	}
}

// HandleEvent records key and mouse events and reports whether ev was one
// of them.
func (in *terminalInput) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.press(scene.KeyQuit)
		case tcell.KeyTab:
			in.press(scene.KeyCaptureToggle)
		case tcell.KeyRune:
			key, ok := runeBindings[ev.Rune()]
			if !ok {
				return false
			}
			in.press(key)
		default:
			return false
		}
		return true

	case *tcell.EventMouse:
		x, y := ev.Position()
		in.x, in.y = float64(x), float64(y)
		return true
	}
	return false
}

func (in *terminalInput) press(k scene.Key) {
	in.pressed[k] = in.now()
}

func (in *terminalInput) KeyDown(k scene.Key) bool {
	at, ok := in.pressed[k]
	return ok && in.now().Sub(at) < in.hold
}

func (in *terminalInput) CursorPosition() (float64, float64) {
	return in.x, in.y
}

// SetCursorCaptured turns mouse reporting on while capturing.
func (in *terminalInput) SetCursorCaptured(captured bool) {
	if in.screen == nil {
		return
	}
	if captured {
		in.screen.EnableMouse(tcell.MouseMotionEvents)
	} else {
		in.screen.DisableMouse()
	}
}
