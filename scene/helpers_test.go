package scene_test

import (
	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/linalg"
	"github.com/plus3/grotto/scene"
)

// scriptedInput is an Input whose state the test sets between ticks.
type scriptedInput struct {
	keys     scene.KeySet
	x, y     float64
	captures []bool
}

func (in *scriptedInput) KeyDown(k scene.Key) bool           { return in.keys.Has(k) }
func (in *scriptedInput) CursorPosition() (float64, float64) { return in.x, in.y }
func (in *scriptedInput) SetCursorCaptured(captured bool) {
	in.captures = append(in.captures, captured)
}

func (in *scriptedInput) press(keys ...scene.Key) {
	in.keys = 0
	for _, k := range keys {
		in.keys = in.keys.With(k)
	}
}

type submission struct {
	model    linalg.Mat4
	mesh     scene.MeshHandle
	material scene.MaterialHandle
}

type recordingRenderer struct {
	projections []linalg.Mat4
	views       []linalg.Mat4
	submissions []submission
}

func (r *recordingRenderer) SetProjection(m linalg.Mat4) { r.projections = append(r.projections, m) }
func (r *recordingRenderer) SetView(m linalg.Mat4)       { r.views = append(r.views, m) }
func (r *recordingRenderer) Submit(model linalg.Mat4, mesh scene.MeshHandle, material scene.MaterialHandle) {
	r.submissions = append(r.submissions, submission{model, mesh, material})
}

func newSceneStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	return ecs.NewStorage(registry)
}

func snapshot(cursorX, cursorY float64, keys ...scene.Key) scene.InputSnapshot {
	var set scene.KeySet
	for _, k := range keys {
		set = set.With(k)
	}
	return scene.InputSnapshot{Keys: set, Cursor: scene.Cursor{X: cursorX, Y: cursorY}}
}
