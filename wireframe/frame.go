package wireframe

import (
	"image/color"

	"github.com/plus3/grotto/linalg"
	"github.com/plus3/grotto/scene"
)

// Line is a coloured screen segment.
type Line struct {
	Segment
	Color color.RGBA
}

// Frame is a scene.Renderer that projects each submission into Lines.
// Front-ends read Lines after a tick and call Reset before the next one.
type Frame struct {
	Projector Projector
	Meshes    *Library
	Materials *Palette

	Lines []Line
	// Missing counts submissions whose mesh handle the library did not know.
	Missing int
}

func NewFrame(meshes *Library, materials *Palette) *Frame {
	return &Frame{
		Projector: Projector{
			View:       linalg.Identity(),
			Projection: linalg.Identity(),
		},
		Meshes:    meshes,
		Materials: materials,
	}
}

// SetSize sets the pixel size segments are mapped to.
func (f *Frame) SetSize(width, height int) {
	f.Projector.Width = width
	f.Projector.Height = height
}

func (f *Frame) SetProjection(projection linalg.Mat4) {
	f.Projector.Projection = projection
}

func (f *Frame) SetView(view linalg.Mat4) {
	f.Projector.View = view
}

func (f *Frame) Submit(model linalg.Mat4, mesh scene.MeshHandle, material scene.MaterialHandle) {
	m, ok := f.Meshes.Get(mesh)
	if !ok {
		f.Missing++
		return
	}
	c := f.Materials.Color(material)
	for _, seg := range f.Projector.Project(model, m) {
		f.Lines = append(f.Lines, Line{Segment: seg, Color: c})
	}
}

func (f *Frame) Reset() {
	f.Lines = f.Lines[:0]
	f.Missing = 0
}
