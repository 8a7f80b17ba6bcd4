package wireframe

import (
	"github.com/plus3/grotto/linalg"
)

// nearW is the smallest clip-space w kept after near clipping.
const nearW = 1e-4

// Segment is a line in pixel coordinates, y down.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

// Projector maps model-space edges to screen segments.
type Projector struct {
	View       linalg.Mat4
	Projection linalg.Mat4
	Width      int
	Height     int
}

// Project returns the visible part of every edge of mesh placed by model.
// Edges entirely behind the camera are dropped; edges crossing the near
// plane are cut at it. Nothing is clipped against the screen edges.
func (p *Projector) Project(model linalg.Mat4, mesh Mesh) []Segment {
	mvp := p.Projection.Mul4(p.View).Mul4(model)

	clip := make([]linalg.Vec4, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		clip[i] = linalg.TransformPoint(mvp, v)
	}

	segments := make([]Segment, 0, len(mesh.Edges))
	for _, e := range mesh.Edges {
		if e[0] < 0 || e[1] < 0 || e[0] >= len(clip) || e[1] >= len(clip) {
			continue
		}
		a, b, ok := clipNear(clip[e[0]], clip[e[1]])
		if !ok {
			continue
		}
		x0, y0 := p.toScreen(a)
		x1, y1 := p.toScreen(b)
		segments = append(segments, Segment{X0: x0, Y0: y0, X1: x1, Y1: y1})
	}
	return segments
}

func clipNear(a, b linalg.Vec4) (linalg.Vec4, linalg.Vec4, bool) {
	aIn, bIn := a[3] > nearW, b[3] > nearW
	switch {
	case aIn && bIn:
		return a, b, true
	case !aIn && !bIn:
		return a, b, false
	}

	t := (nearW - a[3]) / (b[3] - a[3])
	cut := a.Add(b.Sub(a).Mul(t))
	if aIn {
		return a, cut, true
	}
	return cut, b, true
}

func (p *Projector) toScreen(c linalg.Vec4) (float32, float32) {
	x := c[0] / c[3]
	y := c[1] / c[3]
	return (x*0.5 + 0.5) * float32(p.Width), (0.5 - y*0.5) * float32(p.Height)
}
