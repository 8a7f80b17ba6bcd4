// Package scene holds the per-tick pipeline of the runner: the component
// kinds, the motion and camera systems, the hand-off to the render
// collaborator, and the fixed-timestep frame driver that sequences them.
package scene

import (
	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/linalg"
)

// Transform places an entity. Eulers are in degrees: Z is yaw, Y is pitch,
// X is unused by the camera.
type Transform struct {
	Position linalg.Vec3
	Eulers   linalg.Vec3
}

// Physics is read by the motion system and never written by it.
type Physics struct {
	Velocity      linalg.Vec3 // units per second
	EulerVelocity linalg.Vec3 // degrees per second
}

// Camera is the orthonormal viewing basis, rebuilt every tick from the
// camera entity's eulers.
type Camera struct {
	Right    linalg.Vec3
	Up       linalg.Vec3
	Forwards linalg.Vec3
}

// MeshHandle and MaterialHandle are opaque to the core; the render
// collaborator resolves them.
type (
	MeshHandle     uint32
	MaterialHandle uint32
)

type Render struct {
	Mesh     MeshHandle
	Material MaterialHandle
}

// Label names an entity for logs and the debug overlay.
type Label string

// ActiveCamera is the singleton naming the entity the camera system drives.
type ActiveCamera struct {
	Entity ecs.EntityId
}

// ViewState carries the view matrix from the camera system to the render
// system within a tick.
type ViewState struct {
	View linalg.Mat4
}

// Session is the singleton the systems use to agree on termination.
type Session struct {
	Ticks         uint64
	QuitRequested bool
}

// RegisterComponents registers every component kind the scene uses.
func RegisterComponents(r *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](r)
	ecs.RegisterComponent[Physics](r)
	ecs.RegisterComponent[Camera](r)
	ecs.RegisterComponent[Render](r)
	ecs.RegisterComponent[Label](r)
}
