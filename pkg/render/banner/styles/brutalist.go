package styles

import "github.com/matzehuels/linkbanner/pkg/render/canvas"

var brutalist = Style{
	ID:          Brutalist,
	Description: "Flat charcoal, hard-shadowed accent block and slashes",
	Background:  brutalistBackground,
	Decoration:  brutalistDecoration,
	Text:        defaultText,
}

var brutalistFill = canvas.Hex("#27272a")

func brutalistBackground(d canvas.Drawer, _ canvas.Color) {
	canvas.Scoped(d, func() {
		solid(d, brutalistFill)
	})
}

// Accent block geometry and its shadow offset.
const (
	blockX, blockY = 96, 88
	blockW, blockH = 300, 220
	shadowOffset   = 16
)

func brutalistDecoration(d canvas.Drawer, accent canvas.Color, _ RandomSource) {
	canvas.Scoped(d, func() {
		d.SetStroke(canvas.White.WithAlpha(0x1a))
		d.SetLineWidth(28)
		d.SetLineCap(canvas.CapButt)
		canvas.Line(d, 480, height+20, 640, -20)
		canvas.Line(d, 560, height+20, 720, -20)
	})

	canvas.Scoped(d, func() {
		d.SetFill(canvas.Black)
		d.FillRect(blockX+shadowOffset, blockY+shadowOffset, blockW, blockH)

		d.SetFill(accent)
		d.FillRect(blockX, blockY, blockW, blockH)

		d.SetStroke(canvas.Black)
		d.SetLineWidth(6)
		d.SetLineJoin(canvas.JoinMiter)
		d.StrokeRect(blockX, blockY, blockW, blockH)
	})
}
