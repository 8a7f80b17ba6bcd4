package wireframe

import (
	"image"
	"image/color"

	"github.com/plus3/grotto/scene"
)

// Library resolves mesh handles. Handle 0 is never issued.
type Library struct {
	meshes []Mesh
	names  map[string]scene.MeshHandle
}

func NewLibrary() *Library {
	return &Library{
		meshes: []Mesh{{}},
		names:  make(map[string]scene.MeshHandle),
	}
}

// Add registers mesh under name and returns its handle. Adding a name twice
// returns the first handle and ignores the new mesh.
func (l *Library) Add(name string, mesh Mesh) scene.MeshHandle {
	if h, ok := l.names[name]; ok {
		return h
	}
	h := scene.MeshHandle(len(l.meshes))
	l.meshes = append(l.meshes, mesh)
	l.names[name] = h
	return h
}

func (l *Library) Get(h scene.MeshHandle) (Mesh, bool) {
	if h == 0 || int(h) >= len(l.meshes) {
		return Mesh{}, false
	}
	return l.meshes[h], true
}

func (l *Library) Lookup(name string) (scene.MeshHandle, bool) {
	h, ok := l.names[name]
	return h, ok
}

func (l *Library) Len() int {
	return len(l.meshes) - 1
}

// DefaultColor is used for materials the Palette does not know.
var DefaultColor = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

// Palette maps material handles to line colours.
type Palette struct {
	colors []color.RGBA
}

func NewPalette() *Palette {
	return &Palette{colors: []color.RGBA{DefaultColor}}
}

func (p *Palette) Add(c color.RGBA) scene.MaterialHandle {
	p.colors = append(p.colors, c)
	return scene.MaterialHandle(len(p.colors) - 1)
}

func (p *Palette) Color(h scene.MaterialHandle) color.RGBA {
	if int(h) >= len(p.colors) {
		return DefaultColor
	}
	return p.colors[h]
}

// AverageColor is the mean of the opaque pixels in img, used to turn a
// texture into a flat line colour.
func AverageColor(img image.Image) color.RGBA {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			if ca == 0 {
				continue
			}
			r += uint64(cr)
			g += uint64(cg)
			b += uint64(cb)
			n++
		}
	}
	if n == 0 {
		return DefaultColor
	}
	return color.RGBA{R: uint8(r / n >> 8), G: uint8(g / n >> 8), B: uint8(b / n >> 8), A: 0xff}
}
