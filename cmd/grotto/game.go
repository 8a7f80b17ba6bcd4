package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	debugui_ebiten "github.com/plus3/grotto/debugui/ebiten"
	"github.com/plus3/grotto/scene"
	"github.com/plus3/grotto/wireframe"
)

var background = color.RGBA{R: 0x18, G: 0x1a, B: 0x22, A: 0xff}

// Game implements ebiten.Game on top of a scene.Driver. Ebiten's fixed
// update rate stands in for the driver's own ticker.
type Game struct {
	driver  *scene.Driver
	frame   *wireframe.Frame
	overlay *debugui_ebiten.ImguiBackend

	width, height int
}

func (g *Game) Update() error {
	g.driver.SetActive(ebiten.IsFocused())

	if g.overlay != nil {
		return g.overlay.Frame(g.tick)
	}
	return g.tick()
}

func (g *Game) tick() error {
	g.frame.Reset()
	if !g.driver.Tick() {
		return ebiten.Termination
	}
	g.driver.Backoff()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, line := range g.frame.Lines {
		vector.StrokeLine(screen, line.X0, line.Y0, line.X1, line.Y1, 1, line.Color, true)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.frame.SetSize(outsideWidth, outsideHeight)
		g.driver.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
