package styles

import "github.com/matzehuels/linkbanner/pkg/render/canvas"

var retro = Style{
	ID:          Retro,
	Description: "Synthwave dusk with a striped sun and horizon lines",
	Background:  retroBackground,
	Decoration:  retroDecoration,
	Text:        defaultText,
}

var (
	retroStops = []canvas.Stop{
		stop(0, canvas.Hex("#2e1065")),
		stop(0.65, canvas.Hex("#831843")),
		stop(1, canvas.Hex("#c2410c")),
	}
	sunGold = canvas.Hex("#facc15")
)

func retroBackground(d canvas.Drawer, _ canvas.Color) {
	canvas.Scoped(d, func() {
		gradient(d, 0, 0, 0, height, retroStops...)
	})
}

// Sun geometry; the horizon runs through the sun's center.
const (
	sunX, sunY = 360, 300
	sunR       = 170
	horizon    = sunY
	starCount  = 18
)

// sunBands splits the upper half of the sun into stripes whose gaps widen
// towards the horizon.
func sunBands() [][2]float64 {
	var out [][2]float64
	y := float64(sunY - sunR)
	for i := 0; y < horizon; i++ {
		h := max(34-4*i, 8)
		y1 := min(y+float64(h), horizon)
		out = append(out, [2]float64{y, y1})
		y = y1 + float64(3+2*i)
	}
	return out
}

func retroDecoration(d canvas.Drawer, accent canvas.Color, _ RandomSource) {
	canvas.Scoped(d, func() {
		d.SetFill(canvas.White.WithAlpha(0x99))
		for i := range starCount {
			x := float64(40 + (i*137)%740)
			y := float64(20 + (i*71)%160)
			canvas.Circle(d, x, y, 1.5)
			d.Fill()
		}
	})

	canvas.Scoped(d, func() {
		d.SetFill(canvas.Linear(0, sunY-sunR, 0, sunY, stop(0, accent), stop(1, sunGold)))
		for _, b := range sunBands() {
			canvas.Polygon(d, band(sunX, sunY, sunR, b[0], b[1])...)
			d.Fill()
		}
	})

	canvas.Scoped(d, func() {
		d.SetStroke(accent.WithAlpha(0x59))
		d.SetLineWidth(2)
		for k := 0; ; k++ {
			y := float64(horizon + 8*k*k)
			if y > height {
				break
			}
			canvas.Line(d, 0, y, width, y)
		}
	})
}
