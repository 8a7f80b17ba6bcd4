package scene

import (
	"log"

	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/linalg"
)

// Prop is a drawable entity placed by Setup.
type Prop struct {
	Label     Label
	Transform Transform
	Physics   Physics
	Render    Render
}

// Layout describes the initial scene.
type Layout struct {
	Props  []Prop
	Camera Transform
}

// DemoLayout is a single spinning cube in front of a camera.
func DemoLayout(cube MeshHandle, brick MaterialHandle) Layout {
	return Layout{
		Props: []Prop{{
			Label:     "cube",
			Transform: Transform{Position: linalg.Vec3{3, 0, 0.25}},
			Physics:   Physics{EulerVelocity: linalg.Vec3{0, 0, 10}},
			Render:    Render{Mesh: cube, Material: brick},
		}},
		Camera: Transform{Position: linalg.Vec3{0, 0, 1}},
	}
}

// Setup spawns the layout into storage, marks the camera entity active and
// returns its id.
func Setup(storage *ecs.Storage, layout Layout, logger *log.Logger) ecs.EntityId {
	if logger == nil {
		logger = log.Default()
	}

	for _, prop := range layout.Props {
		id := storage.Spawn(prop.Label, prop.Transform, prop.Physics, prop.Render)
		logger.Printf("[APP] made %s entity %d at %v", prop.Label, id, prop.Transform.Position)
	}

	camera := storage.Spawn(Label("camera"), layout.Camera, ComputeBasis(layout.Camera.Eulers))
	logger.Printf("[APP] made camera entity %d at %v", camera, layout.Camera.Position)

	ecs.NewSingleton[ActiveCamera](storage).Set(ActiveCamera{Entity: camera})
	return camera
}
