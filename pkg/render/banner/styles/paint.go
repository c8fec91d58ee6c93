package styles

import (
	"math"

	"github.com/matzehuels/linkbanner/pkg/render/canvas"
)

const (
	width  = float64(canvas.Width)
	height = float64(canvas.Height)
)

func stop(offset float64, c canvas.Color) canvas.Stop {
	return canvas.Stop{Offset: offset, Color: c}
}

// solid fills the whole canvas with c.
func solid(d canvas.Drawer, c canvas.Color) {
	d.SetFill(c)
	d.FillRect(0, 0, width, height)
}

// gradient fills the whole canvas with a linear gradient along
// (x0,y0)-(x1,y1).
func gradient(d canvas.Drawer, x0, y0, x1, y1 float64, stops ...canvas.Stop) {
	d.SetFill(canvas.Linear(x0, y0, x1, y1, stops...))
	d.FillRect(0, 0, width, height)
}

// glow fills the square around (x, y) with a radial fade from c to
// transparent.
func glow(d canvas.Drawer, x, y, r float64, c canvas.Color) {
	d.SetFill(canvas.Radial(x, y, 0, x, y, r, stop(0, c), stop(1, canvas.Transparent)))
	d.FillRect(x-r, y-r, 2*r, 2*r)
}

// band returns the part of the circle (cx, cy, r) between y0 and y1 as a
// polygon. y0 and y1 must lie within [cy-r, cy+r].
func band(cx, cy, r, y0, y1 float64) []canvas.Point {
	const steps = 12
	half := func(y float64) float64 {
		dy := y - cy
		return math.Sqrt(max(0, r*r-dy*dy))
	}
	pts := make([]canvas.Point, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		y := y0 + (y1-y0)*float64(i)/steps
		pts = append(pts, canvas.Point{X: cx + half(y), Y: y})
	}
	for i := steps; i >= 0; i-- {
		y := y0 + (y1-y0)*float64(i)/steps
		pts = append(pts, canvas.Point{X: cx - half(y), Y: y})
	}
	return pts
}
