// Package debugui draws a Dear ImGui overlay over a running scene: an entity
// inspector, a camera inspector and scheduler timings. Windows are ImguiItem
// components, so the overlay is just more entities in the storage.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/grotto/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton.
// Front-ends check it before forwarding mouse and keyboard to the camera.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queries all ImguiItem components and defers their render functions.
// It also updates the ImguiInputState singleton with current input capture state.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.Set(ImguiInputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	})

	for item := range i.Items.Values() {
		if item.ImguiItem.Render != nil {
			frame.Commands.Defer(item.ImguiItem.Render)
		}
	}
}
