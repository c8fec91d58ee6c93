package styles

import (
	"math"

	"github.com/matzehuels/linkbanner/pkg/render/canvas"
)

var modern = Style{
	ID:          Modern,
	Description: "Indigo to violet gradient, wireframe cube, accent glow",
	Background:  modernBackground,
	Decoration:  modernDecoration,
	Text:        defaultText,
}

var (
	modernFrom = canvas.Hex("#1e1b4b")
	modernTo   = canvas.Hex("#4c1d95")
)

func modernBackground(d canvas.Drawer, _ canvas.Color) {
	canvas.Scoped(d, func() {
		gradient(d, 0, 0, width, 0, stop(0, modernFrom), stop(1, modernTo))
	})
}

// Cube wireframe geometry.
const (
	cubeX    = 300
	cubeY    = 200
	cubeSize = 150
)

// hexagon returns the six corners of the cube outline, starting at -30°.
func hexagon() []canvas.Point {
	pts := make([]canvas.Point, 6)
	for i := range pts {
		a := math.Pi/3*float64(i) - math.Pi/6
		pts[i] = canvas.Point{X: cubeX + cubeSize*math.Cos(a), Y: cubeY + cubeSize*math.Sin(a)}
	}
	return pts
}

func modernDecoration(d canvas.Drawer, accent canvas.Color, _ RandomSource) {
	canvas.Scoped(d, func() {
		d.SetStroke(canvas.White.WithAlpha(0x1a))
		d.SetLineWidth(15)
		d.SetLineJoin(canvas.JoinRound)

		canvas.Polygon(d, hexagon()...)
		d.Stroke()

		dx, dy := cubeSize*math.Cos(math.Pi/6), cubeSize*math.Sin(math.Pi/6)
		d.BeginPath()
		d.MoveTo(cubeX, cubeY)
		d.LineTo(cubeX, cubeY-cubeSize)
		d.MoveTo(cubeX, cubeY)
		d.LineTo(cubeX+dx, cubeY+dy)
		d.MoveTo(cubeX, cubeY)
		d.LineTo(cubeX-dx, cubeY+dy)
		d.Stroke()

		d.SetFill(canvas.Radial(1400, 100, 0, 1400, 100, 200,
			stop(0, accent.WithAlpha(0x40)),
			stop(1, canvas.Transparent)))
		d.FillRect(800, 0, 784, height)
	})
}
