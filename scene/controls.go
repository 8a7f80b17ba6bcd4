package scene

import (
	"github.com/plus3/grotto/linalg"
)

// Key is one of the discrete inputs the camera understands.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyStrafeLeft
	KeyStrafeRight
	KeyUp
	KeyDown
	KeyQuit
	KeyCaptureToggle

	keyCount
)

var keyNames = [keyCount]string{
	KeyForward:       "forward",
	KeyBack:          "back",
	KeyStrafeLeft:    "strafe-left",
	KeyStrafeRight:   "strafe-right",
	KeyUp:            "up",
	KeyDown:          "down",
	KeyQuit:          "quit",
	KeyCaptureToggle: "capture-toggle",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// Keys lists every Key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// KeySet is a bitset of held keys.
type KeySet uint16

func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Cursor is a pointer position in collaborator-defined units.
type Cursor struct {
	X, Y float64
}

// InputSnapshot is the input state for one tick.
type InputSnapshot struct {
	Keys   KeySet
	Cursor Cursor
}

// Input is the input collaborator. The core only reads from it.
type Input interface {
	KeyDown(Key) bool
	CursorPosition() (x, y float64)
}

// CursorCapturer is implemented by input collaborators that can grab and
// release the pointer when capture mode changes.
type CursorCapturer interface {
	SetCursorCaptured(captured bool)
}

// Sample polls in once for every key and the cursor.
func Sample(in Input) InputSnapshot {
	var snap InputSnapshot
	for _, k := range Keys() {
		if in.KeyDown(k) {
			snap.Keys = snap.Keys.With(k)
		}
	}
	snap.Cursor.X, snap.Cursor.Y = in.CursorPosition()
	return snap
}

// ToggleState is the edge detector for the capture toggle key.
type ToggleState uint8

const (
	// ToggleReleased: the next press flips capture mode.
	ToggleReleased ToggleState = iota
	// ToggleConsumed: the current press already flipped it; wait for release.
	ToggleConsumed
)

// ControlConfig tunes the free-look controls.
type ControlConfig struct {
	// MoveStep is the distance moved per tick while a direction key is held.
	// It is not scaled by the tick delta.
	MoveStep float32
	// MoveThreshold is the minimum length of the raw direction delta before
	// it is normalised and applied.
	MoveThreshold float32
	// Sensitivity converts cursor units to degrees.
	Sensitivity float32
	// PitchLimit bounds pitch to [-PitchLimit, PitchLimit] degrees.
	PitchLimit float32
}

func DefaultControlConfig() ControlConfig {
	return ControlConfig{
		MoveStep:      0.05,
		MoveThreshold: 0.1,
		Sensitivity:   0.05,
		PitchLimit:    89,
	}
}

// FreeLook is the state the camera controls carry from one tick to the next.
type FreeLook struct {
	Captured bool
	// Anchor is the cursor position seen on the previous captured tick; nil
	// until capture is (re)enabled.
	Anchor *Cursor
	Toggle ToggleState
}

// NewFreeLook returns the start-of-session state: captured, but with no
// anchor, so look input starts only after capture is toggled on again.
func NewFreeLook() FreeLook {
	return FreeLook{Captured: true}
}

// Intent is what one tick of input asks the camera to do.
type Intent struct {
	// Move holds the forward, right and world-up components of the step.
	Move   linalg.Vec3
	Moving bool

	Quit bool

	CaptureChanged bool

	YawDelta   float32
	PitchDelta float32
}

// Step translates one input snapshot into an Intent and the next state.
// It has no side effects.
//
// A quit request returns before the toggle and look handling, leaving that
// part of the state untouched.
func (f FreeLook) Step(in InputSnapshot, cfg ControlConfig) (FreeLook, Intent) {
	var intent Intent

	var delta linalg.Vec3
	if in.Keys.Has(KeyForward) {
		delta[0] += 1
	}
	if in.Keys.Has(KeyStrafeLeft) {
		delta[1] -= 1
	}
	if in.Keys.Has(KeyBack) {
		delta[0] -= 1
	}
	if in.Keys.Has(KeyStrafeRight) {
		delta[1] += 1
	}
	if in.Keys.Has(KeyDown) {
		delta[2] -= 1
	}
	if in.Keys.Has(KeyUp) {
		delta[2] += 1
	}
	if linalg.Length(delta) > cfg.MoveThreshold {
		intent.Move = linalg.Normalize(delta).Mul(cfg.MoveStep)
		intent.Moving = true
	}

	if in.Keys.Has(KeyQuit) {
		intent.Quit = true
		return f, intent
	}

	next := f
	if in.Keys.Has(KeyCaptureToggle) {
		if f.Toggle == ToggleReleased {
			next.Captured = !f.Captured
			if next.Captured {
				anchor := in.Cursor
				next.Anchor = &anchor
			} else {
				next.Anchor = nil
			}
			next.Toggle = ToggleConsumed
			intent.CaptureChanged = true
		}
	} else {
		next.Toggle = ToggleReleased
	}

	if next.Captured && next.Anchor != nil {
		dx := in.Cursor.X - next.Anchor.X
		dy := in.Cursor.Y - next.Anchor.Y
		anchor := in.Cursor
		next.Anchor = &anchor

		intent.YawDelta = -float32(dx) * cfg.Sensitivity
		intent.PitchDelta = -float32(dy) * cfg.Sensitivity
	}

	return next, intent
}
