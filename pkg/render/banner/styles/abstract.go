package styles

import "github.com/matzehuels/linkbanner/pkg/render/canvas"

var abstract = Style{
	ID:          Abstract,
	Description: "Pink to navy diagonal gradient with overlapping circles",
	Background:  abstractBackground,
	Decoration:  abstractDecoration,
	Text:        defaultText,
}

var (
	abstractFrom = canvas.Hex("#be185d")
	abstractTo   = canvas.Hex("#0f172a")
)

func abstractBackground(d canvas.Drawer, _ canvas.Color) {
	canvas.Scoped(d, func() {
		gradient(d, 0, 0, width, height, stop(0, abstractFrom), stop(1, abstractTo))
	})
}

func abstractDecoration(d canvas.Drawer, accent canvas.Color, _ RandomSource) {
	canvas.Scoped(d, func() {
		d.SetFill(accent.WithAlpha(0x30))
		canvas.Circle(d, 200, 396, 300)
		d.Fill()

		d.SetFill(canvas.White.WithAlpha(0x10))
		canvas.Circle(d, 1400, 0, 200)
		d.Fill()
	})
}
