package styles

import "github.com/matzehuels/linkbanner/pkg/render/canvas"

var geometric = Style{
	ID:          Geometric,
	Description: "Teal gradient with a triangle strip and a diamond outline",
	Background:  geometricBackground,
	Decoration:  geometricDecoration,
	Text:        defaultText,
}

var geometricStops = []canvas.Stop{
	stop(0, canvas.Hex("#134e4a")),
	stop(0.5, canvas.Hex("#115e59")),
	stop(1, canvas.Hex("#0f172a")),
}

func geometricBackground(d canvas.Drawer, _ canvas.Color) {
	canvas.Scoped(d, func() {
		gradient(d, 0, 0, width, 0, geometricStops...)
	})
}

// Triangle strip geometry: two rows of side-by-side triangles that
// alternate between pointing up and down.
const (
	triSide  = 120
	triTop   = 78
	triRows  = 2
	triSpan  = 720
	triCount = (triSpan-triSide)/(triSide/2) + 1
)

func triangle(col, row int) []canvas.Point {
	x := float64(col * triSide / 2)
	top := float64(triTop + row*triSide)
	if (col+row)%2 == 0 {
		return []canvas.Point{{X: x, Y: top + triSide}, {X: x + triSide/2, Y: top}, {X: x + triSide, Y: top + triSide}}
	}
	return []canvas.Point{{X: x, Y: top}, {X: x + triSide, Y: top}, {X: x + triSide/2, Y: top + triSide}}
}

func geometricDecoration(d canvas.Drawer, accent canvas.Color, _ RandomSource) {
	canvas.Scoped(d, func() {
		for row := range triRows {
			for col := range triCount {
				if col%2 == 0 {
					d.SetFill(accent.WithAlpha(0x26))
				} else {
					d.SetFill(canvas.White.WithAlpha(0x0d))
				}
				canvas.Polygon(d, triangle(col, row)...)
				d.Fill()
			}
		}

		d.SetStroke(accent.WithAlpha(0x80))
		d.SetLineWidth(4)
		d.SetLineJoin(canvas.JoinMiter)
		canvas.Polygon(d,
			canvas.Point{X: 360, Y: 48},
			canvas.Point{X: 560, Y: 198},
			canvas.Point{X: 360, Y: 348},
			canvas.Point{X: 160, Y: 198},
		)
		d.Stroke()
	})
}
