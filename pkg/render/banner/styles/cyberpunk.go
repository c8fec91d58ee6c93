package styles

import "github.com/matzehuels/linkbanner/pkg/render/canvas"

var cyberpunk = Style{
	ID:          Cyberpunk,
	Description: "Night gradient, neon perspective grid and glitch bars",
	Background:  cyberpunkBackground,
	Decoration:  cyberpunkDecoration,
	Text:        defaultText,
}

var (
	cyberpunkStops = []canvas.Stop{
		stop(0, canvas.Hex("#0c0a1d")),
		stop(0.6, canvas.Hex("#1a0b2e")),
		stop(1, canvas.Hex("#2d0b3f")),
	}
	glitchCyan    = canvas.Hex("#22d3ee").WithAlpha(0x59)
	glitchMagenta = canvas.Hex("#f0abfc").WithAlpha(0x4d)
)

func cyberpunkBackground(d canvas.Drawer, _ canvas.Color) {
	canvas.Scoped(d, func() {
		gradient(d, 0, 0, 0, height, cyberpunkStops...)
	})
}

// Vanishing point of the grid; it also marks the horizon.
const (
	vanishX = width / 2
	vanishY = height / 2
)

func cyberpunkDecoration(d canvas.Drawer, accent canvas.Color, _ RandomSource) {
	canvas.Scoped(d, func() {
		d.SetStroke(accent.WithAlpha(0x66))
		d.SetLineWidth(2)
		for k := 1; ; k++ {
			y := vanishY + float64(4*k*k)
			if y > height {
				break
			}
			canvas.Line(d, 0, y, width, y)
		}
		for i := -12; i <= 12; i++ {
			canvas.Line(d, vanishX, vanishY, vanishX+float64(i)*140, height)
		}
	})

	canvas.Scoped(d, func() {
		glow(d, 260, vanishY, 260, accent.WithAlpha(0x59))

		d.SetFill(glitchCyan)
		d.FillRect(120, 96, 420, 10)
		d.SetFill(glitchMagenta)
		d.FillRect(160, 292, 360, 6)
	})
}
