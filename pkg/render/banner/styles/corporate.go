package styles

import "github.com/matzehuels/linkbanner/pkg/render/canvas"

var corporate = Style{
	ID:          Corporate,
	Description: "Slate canvas with a dark sidebar, dot grid and chevrons",
	Background:  corporateBackground,
	Decoration:  corporateDecoration,
	Text:        defaultText,
}

var (
	corporateFill    = canvas.Hex("#1e293b")
	corporateSidebar = canvas.Hex("#0f172a")
)

const sidebarWidth = 96

func corporateBackground(d canvas.Drawer, _ canvas.Color) {
	canvas.Scoped(d, func() {
		solid(d, corporateFill)
		d.SetFill(corporateSidebar)
		d.FillRect(0, 0, sidebarWidth, height)
	})
}

// chevron returns a right-pointing chevron whose back edge starts at x.
func chevron(x float64) []canvas.Point {
	return []canvas.Point{
		{X: x, Y: 120},
		{X: x + 40, Y: 120},
		{X: x + 100, Y: 198},
		{X: x + 40, Y: 276},
		{X: x, Y: 276},
		{X: x + 60, Y: 198},
	}
}

func corporateDecoration(d canvas.Drawer, accent canvas.Color, _ RandomSource) {
	canvas.Scoped(d, func() {
		d.SetFill(accent)
		d.FillRect(sidebarWidth, 0, 6, height)

		d.SetFill(canvas.White.WithAlpha(0x14))
		for i := range 16 {
			for j := range 11 {
				canvas.Circle(d, float64(140+28*i), float64(48+28*j), 2)
				d.Fill()
			}
		}

		d.SetFill(accent.WithAlpha(0x40))
		for k := range 3 {
			canvas.Polygon(d, chevron(float64(620+40*k))...)
			d.Fill()
		}
	})
}
