package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/scene"
)

// CameraState is a snapshot of the active camera for display.
type CameraState struct {
	Entity    ecs.EntityId
	Transform scene.Transform
	Basis     scene.Camera
	Captured  bool
	Anchored  bool
}

// ReadCameraState reports the active camera, or false when there is none or
// it has no transform yet.
func ReadCameraState(storage *ecs.Storage, camera *scene.CameraSystem) (CameraState, bool) {
	var active *scene.ActiveCamera
	if !storage.ReadSingleton(&active) || !active.Entity.Valid() {
		return CameraState{}, false
	}
	transform := ecs.ReadComponent[scene.Transform](storage, active.Entity)
	if transform == nil {
		return CameraState{}, false
	}

	state := CameraState{
		Entity:    active.Entity,
		Transform: *transform,
		Basis:     scene.ComputeBasis(transform.Eulers),
	}
	if camera != nil {
		state.Captured = camera.FreeLook.Captured
		state.Anchored = camera.FreeLook.Anchor != nil
	}
	return state, true
}

// CameraInspector shows the active camera's pose, basis and capture mode.
type CameraInspector struct {
	storage *ecs.Storage
	camera  *scene.CameraSystem
}

func NewCameraInspector(storage *ecs.Storage, camera *scene.CameraSystem) *CameraInspector {
	return &CameraInspector{storage: storage, camera: camera}
}

func (ci *CameraInspector) Render() {
	if !imgui.BeginV("Camera", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	state, ok := ReadCameraState(ci.storage, ci.camera)
	if !ok {
		imgui.Text("No active camera")
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %d", state.Entity))
	imgui.Text(fmt.Sprintf("Position: %s", formatVec(state.Transform.Position)))
	imgui.Text(fmt.Sprintf("Yaw: %.2f  Pitch: %.2f", state.Transform.Eulers[2], state.Transform.Eulers[1]))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Forwards: %s", formatVec(state.Basis.Forwards)))
	imgui.Text(fmt.Sprintf("Right: %s", formatVec(state.Basis.Right)))
	imgui.Text(fmt.Sprintf("Up: %s", formatVec(state.Basis.Up)))
	imgui.Separator()

	mode := "free cursor"
	switch {
	case state.Captured && state.Anchored:
		mode = "captured"
	case state.Captured:
		mode = "captured (waiting for toggle)"
	}
	imgui.Text("Mode: " + mode)
}

func formatVec(v [3]float32) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
