package banner

import (
	"strings"

	"github.com/matzehuels/linkbanner/pkg/render/banner/styles"
	"github.com/matzehuels/linkbanner/pkg/render/canvas"
)

// Text layout: every line is right-aligned on textX.
const (
	textX        = 1500
	nameY        = 180
	titleY       = 250
	stackY       = 310
	underlineY   = 325
	underlineLen = 100
)

// TextParams are the resolved inputs of the text layer.
type TextParams struct {
	Name       string
	Title      string
	StackTags  string
	TextColor  canvas.Color
	FontFamily string
	Accent     canvas.Color
	Style      styles.ID
}

// textFont builds "<weight> <size>px <family>, sans-serif".
func textFont(weight int, size float64, family string) canvas.Font {
	return canvas.Font{Weight: weight, Size: size, Family: strings.TrimSpace(family), Fallback: canvas.SansSerif}
}

// PaintText draws the name, title and stack lines. The stack line and its
// underline are skipped when StackTags is blank.
func PaintText(d canvas.Drawer, p TextParams) error {
	style, err := styles.Resolve(p.Style)
	if err != nil {
		return err
	}
	name, title := style.Text.Colors(p.TextColor)

	canvas.Scoped(d, func() {
		d.SetTextAlign(canvas.AlignRight)

		d.SetFill(name)
		d.SetFont(textFont(canvas.WeightBold, 80, p.FontFamily))
		d.FillText(p.Name, textX, nameY)

		d.SetFill(title)
		d.SetFont(textFont(canvas.WeightRegular, 40, p.FontFamily))
		d.FillText(p.Title, textX, titleY)

		stack := strings.TrimSpace(p.StackTags)
		if stack == "" {
			return
		}
		d.SetFill(p.Accent)
		d.SetFont(textFont(canvas.WeightSemiBold, 24, p.FontFamily))
		d.FillText(strings.ToUpper(stack), textX, stackY)

		d.SetStroke(p.Accent)
		d.SetLineWidth(3)
		canvas.Line(d, textX, underlineY, textX-underlineLen, underlineY)
	})
	return nil
}
