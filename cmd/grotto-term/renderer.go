package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/grotto/wireframe"
)

// Cells are about twice as tall as they are wide, so the frame is projected
// at twice the row count and every two pixel rows share a cell.
const cellAspect = 2

// The terminal has no texture to sample, so the cube uses a fixed brick red.
var brickColor = color.RGBA{R: 0xb0, G: 0x4a, B: 0x32, A: 0xff}

func frameSize(cols, rows int) (int, int) {
	return cols, rows * cellAspect
}

// drawFrame clears the screen and rasterises the frame's lines into it.
func drawFrame(screen tcell.Screen, frame *wireframe.Frame) {
	screen.Clear()
	cols, rows := screen.Size()

	for _, line := range frame.Lines {
		style := tcell.StyleDefault.Foreground(cellColor(line.Color))
		wireframe.Raster(line.Segment, func(x, y int) {
			row := y / cellAspect
			if x < 0 || y < 0 || x >= cols || row >= rows {
				return
			}
			screen.SetContent(x, row, '#', nil, style)
		})
	}
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
