package debugui

import (
	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/scene"
)

// RegisterComponents registers the overlay's component kinds.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

// Overlay is the set of debug windows for one driver.
type Overlay struct {
	Entities *EntityInspector
	Camera   *CameraInspector
	Stats    *StatsWindow
}

// Spawn adds the debug windows to the driver's storage as ImguiItem
// entities and registers an ImguiSystem after the scene systems.
func Spawn(driver *scene.Driver) *Overlay {
	storage := driver.Storage()
	overlay := &Overlay{
		Entities: NewEntityInspector(storage, 50),
		Camera:   NewCameraInspector(storage, driver.Camera()),
		Stats:    NewStatsWindow(driver.Scheduler(), 120),
	}

	storage.Spawn(ImguiItem{Render: overlay.Entities.Render})
	storage.Spawn(ImguiItem{Render: overlay.Camera.Render})
	storage.Spawn(ImguiItem{Render: overlay.Stats.Render})

	driver.Scheduler().Register(&ImguiSystem{})
	return overlay
}
