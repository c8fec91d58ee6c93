package styles

import "github.com/matzehuels/linkbanner/pkg/render/canvas"

var terminal = Style{
	ID:          Terminal,
	Description: "Dark console with scattered binary runs and a prompt",
	Background:  terminalBackground,
	Decoration:  terminalDecoration,
	Text:        defaultText,
	Random:      true,
}

var (
	terminalFill = canvas.Hex("#0f172a")
	binaryInk    = canvas.Color{R: 0, G: 255, B: 0, A: 13}
)

const (
	binaryRun  = "1 0 1 0 0 1"
	binaryRuns = 40
)

func terminalBackground(d canvas.Drawer, _ canvas.Color) {
	canvas.Scoped(d, func() {
		solid(d, terminalFill)
	})
}

// terminalDecoration draws binaryRuns copies of binaryRun at random
// positions in the left half, drawing x before y for each run.
func terminalDecoration(d canvas.Drawer, accent canvas.Color, rng RandomSource) {
	canvas.Scoped(d, func() {
		d.SetTextAlign(canvas.AlignLeft)
		d.SetFill(binaryInk)
		d.SetFont(canvas.Font{Weight: canvas.WeightRegular, Size: 20, Fallback: canvas.Monospace})
		for range binaryRuns {
			x := rng.Float64() * 800
			y := rng.Float64()*300 + 50
			d.FillText(binaryRun, x, y)
		}

		d.SetFill(accent)
		d.SetFont(canvas.Font{Weight: canvas.WeightBold, Size: 200, Fallback: canvas.Monospace})
		d.FillText(">", 100, 280)
	})
}
