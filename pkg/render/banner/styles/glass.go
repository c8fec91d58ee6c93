package styles

import "github.com/matzehuels/linkbanner/pkg/render/canvas"

var glass = Style{
	ID:          Glass,
	Description: "Sky to violet gradient, soft blobs and a frosted panel",
	Background:  glassBackground,
	Decoration:  glassDecoration,
	Text:        defaultText,
}

var glassStops = []canvas.Stop{
	stop(0, canvas.Hex("#0ea5e9")),
	stop(0.5, canvas.Hex("#6366f1")),
	stop(1, canvas.Hex("#a855f7")),
}

func glassBackground(d canvas.Drawer, _ canvas.Color) {
	canvas.Scoped(d, func() {
		gradient(d, 0, 0, width, height, glassStops...)
	})
}

func glassDecoration(d canvas.Drawer, accent canvas.Color, _ RandomSource) {
	canvas.Scoped(d, func() {
		glow(d, 320, 120, 260, accent.WithAlpha(0x8c))
		glow(d, 1180, 360, 220, canvas.White.WithAlpha(0x40))
	})

	canvas.Scoped(d, func() {
		d.BeginPath()
		d.RoundRect(760, 48, 790, 300, 28)
		d.SetFill(canvas.White.WithAlpha(0x1a))
		d.Fill()
		d.SetStroke(canvas.White.WithAlpha(0x33))
		d.SetLineWidth(1.5)
		d.Stroke()
	})
}
