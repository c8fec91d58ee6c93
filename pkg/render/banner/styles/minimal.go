package styles

import "github.com/matzehuels/linkbanner/pkg/render/canvas"

// Slate is the dark text color used on light backgrounds.
var Slate = canvas.Hex("#1e293b")

var minimal = Style{
	ID:          Minimal,
	Description: "Light slate canvas with a hairline border, no ornaments",
	Background:  minimalBackground,
	Text:        TextRule{WhiteSubstitute: Slate, TitleAlpha: 0xff},
}

var (
	minimalFill   = canvas.Hex("#f8fafc")
	minimalBorder = canvas.Hex("#e2e8f0")
)

func minimalBackground(d canvas.Drawer, _ canvas.Color) {
	canvas.Scoped(d, func() {
		solid(d, minimalFill)
		d.SetStroke(minimalBorder)
		d.SetLineWidth(2)
		d.StrokeRect(0, 0, width, height)
	})
}
