package wireframe

import "math"

// Raster walks the integer cells of seg with Bresenham's algorithm, calling
// plot for each one including both end points.
func Raster(seg Segment, plot func(x, y int)) {
	x0, y0 := round(seg.X0), round(seg.Y0)
	x1, y1 := round(seg.X1), round(seg.Y1)

	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func round(v float32) int {
	return int(math.Floor(float64(v) + 0.5))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
