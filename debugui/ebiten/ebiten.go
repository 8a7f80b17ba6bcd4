// Package ebiten connects the debug overlay to an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. The ini file is
// disabled so window layout is not written next to the binary.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Frame runs update between BeginFrame and EndFrame, so ImguiSystem's
// deferred render functions land in this frame.
func (b *ImguiBackend) Frame(update func() error) error {
	b.BeginFrame()
	defer b.EndFrame()
	return update()
}
