package scene

import (
	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/linalg"
)

// Renderer is the render collaborator. Matrices are column-major, matching
// the shading stage's model, view and projection uniforms.
type Renderer interface {
	SetProjection(projection linalg.Mat4)
	SetView(view linalg.Mat4)
	Submit(model linalg.Mat4, mesh MeshHandle, material MaterialHandle)
}

// RenderSystem hands the view and every drawable's model matrix to the
// Renderer. It does nothing on a tick where quit was requested.
type RenderSystem struct {
	Drawables ecs.Query[struct {
		*Transform
		*Render
	}]
	ViewState ecs.Singleton[ViewState]
	Session   ecs.Singleton[Session]

	Renderer Renderer
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Renderer == nil {
		return
	}
	if session := s.Session.Get(); session != nil && session.QuitRequested {
		return
	}

	if view := s.ViewState.Get(); view != nil {
		s.Renderer.SetView(view.View)
	}

	for item := range s.Drawables.Values() {
		model := linalg.Model(item.Transform.Position, item.Transform.Eulers[2])
		s.Renderer.Submit(model, item.Render.Mesh, item.Render.Material)
	}
}

// NopRenderer discards everything. Headless runs use it.
type NopRenderer struct{}

func (NopRenderer) SetProjection(linalg.Mat4)                      {}
func (NopRenderer) SetView(linalg.Mat4)                            {}
func (NopRenderer) Submit(linalg.Mat4, MeshHandle, MaterialHandle) {}
