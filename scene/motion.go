package scene

import (
	"github.com/plus3/grotto/ecs"
)

// Integrate advances every entity that has physics by dt seconds.
//
// Every entity in physics must also have a transform; a missing one panics.
// Yaw is brought back under 360 with a single subtraction, so an entity
// turning more than 360 degrees in one tick keeps a yaw above 360.
func Integrate(transforms *ecs.Store[Transform], physics *ecs.Store[Physics], dt float32) {
	for id, p := range physics.All() {
		t := transforms.MustGet(id)
		t.Position = t.Position.Add(p.Velocity.Mul(dt))
		t.Eulers = t.Eulers.Add(p.EulerVelocity.Mul(dt))
		if t.Eulers[2] > 360 {
			t.Eulers[2] -= 360
		}
	}
}

// MotionSystem runs Integrate once per scheduler frame.
type MotionSystem struct {
	Transforms *ecs.Store[Transform]
	Physics    *ecs.Store[Physics]
}

func (s *MotionSystem) Execute(frame *ecs.UpdateFrame) {
	Integrate(s.Transforms, s.Physics, float32(frame.DeltaTime))
}
