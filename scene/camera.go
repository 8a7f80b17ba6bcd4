package scene

import (
	"math"

	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/linalg"
)

// ComputeBasis derives the camera basis from eulers in degrees (Z yaw, Y pitch).
func ComputeBasis(eulers linalg.Vec3) Camera {
	yaw := float64(linalg.Radians(eulers[2]))
	pitch := float64(linalg.Radians(eulers[1]))

	forwards := linalg.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
	}
	right := linalg.Normalize(linalg.Cross(forwards, linalg.WorldUp))
	up := linalg.Normalize(linalg.Cross(right, forwards))

	return Camera{Right: right, Up: up, Forwards: forwards}
}

// ViewMatrix looks from position one unit along the basis' forward axis.
func ViewMatrix(position linalg.Vec3, basis Camera) linalg.Mat4 {
	return linalg.LookAt(position, position.Add(basis.Forwards))
}

// ApplyLook adds look deltas to eulers, clamping pitch to ±limit and
// wrapping yaw into [0, 360).
func ApplyLook(eulers linalg.Vec3, yawDelta, pitchDelta, limit float32) linalg.Vec3 {
	eulers[2] += yawDelta
	eulers[1] += pitchDelta
	eulers[1] = min(limit, max(-limit, eulers[1]))
	if eulers[2] < 0 {
		eulers[2] += 360
	}
	// A tiny negative yaw rounds up to exactly 360 above.
	if eulers[2] >= 360 {
		eulers[2] -= 360
	}
	return eulers
}

// CameraSystem drives the active camera entity from user input.
//
// FreeLook is the only state kept between ticks. Construct with
// NewCameraSystem to start in capture mode.
type CameraSystem struct {
	Transforms *ecs.Store[Transform]
	Cameras    *ecs.Store[Camera]
	Active     ecs.Singleton[ActiveCamera]
	Input      ecs.Singleton[InputSnapshot]
	ViewState  ecs.Singleton[ViewState]
	Session    ecs.Singleton[Session]

	Config   ControlConfig
	FreeLook FreeLook
	// Cursor, when set, is told about capture mode changes.
	Cursor CursorCapturer

	// View is the view matrix produced by the last Update.
	View linalg.Mat4
}

func NewCameraSystem(cfg ControlConfig, cursor CursorCapturer) *CameraSystem {
	return &CameraSystem{
		Config:   cfg,
		FreeLook: NewFreeLook(),
		Cursor:   cursor,
	}
}

// Update runs one camera tick for cameraID and reports whether the user
// asked to end the session.
//
// The basis and view are computed from the transform as it was at the start
// of the tick; movement and look input then update the transform for the
// next tick. Movement uses a fixed step per tick and ignores dt.
func (s *CameraSystem) Update(transforms *ecs.Store[Transform], cameraID ecs.EntityId, cam *Camera, in InputSnapshot, dt float32) bool {
	t := transforms.MustGet(cameraID)

	*cam = ComputeBasis(t.Eulers)
	s.View = ViewMatrix(t.Position, *cam)

	next, intent := s.FreeLook.Step(in, s.Config)
	s.FreeLook = next

	if intent.Moving {
		t.Position = t.Position.
			Add(cam.Forwards.Mul(intent.Move[0])).
			Add(cam.Right.Mul(intent.Move[1])).
			Add(linalg.WorldUp.Mul(intent.Move[2]))
	}

	if intent.Quit {
		return true
	}

	if intent.CaptureChanged && s.Cursor != nil {
		s.Cursor.SetCursorCaptured(next.Captured)
	}

	if next.Captured && next.Anchor != nil {
		t.Eulers = ApplyLook(t.Eulers, intent.YawDelta, intent.PitchDelta, s.Config.PitchLimit)
	}

	return false
}

func (s *CameraSystem) Execute(frame *ecs.UpdateFrame) {
	active := s.Active.Get()
	if active == nil || !active.Entity.Valid() {
		return
	}

	var in InputSnapshot
	if snap := s.Input.Get(); snap != nil {
		in = *snap
	}

	cam := s.Cameras.Get(active.Entity)
	if cam == nil {
		cam = s.Cameras.Set(active.Entity, Camera{})
	}

	quit := s.Update(s.Transforms, active.Entity, cam, in, float32(frame.DeltaTime))
	s.ViewState.Set(ViewState{View: s.View})

	if quit {
		if session := s.Session.Get(); session != nil {
			session.QuitRequested = true
		}
	}
}
