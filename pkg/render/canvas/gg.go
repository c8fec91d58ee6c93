package canvas

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Canvas dimensions of a banner in pixels.
const (
	Width  = 1584
	Height = 396
)

// NewSurface allocates a transparent Width x Height raster.
func NewSurface() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, Width, Height))
}

// GG is a [Drawer] that rasterizes onto an *image.RGBA with fogleman/gg.
// The image is borrowed; GG never resizes or replaces it.
//
// Text is painted with the last solid fill color; gradients are not applied
// to glyphs.
type GG struct {
	dc    *gg.Context
	faces FaceResolver
	align TextAlign
	font  Font
	stack []ggState
}

type ggState struct {
	align TextAlign
	font  Font
}

// NewGG returns a drawer for img. Fonts are resolved through faces; when
// faces is nil every font falls back to a fixed 7x13 bitmap face.
func NewGG(img *image.RGBA, faces FaceResolver) *GG {
	dc := gg.NewContextForRGBA(img)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinBevel)
	dc.SetFillStyle(gg.NewSolidPattern(color.Black))
	dc.SetStrokeStyle(gg.NewSolidPattern(color.Black))
	return &GG{dc: dc, faces: faces}
}

// Image returns the underlying raster.
func (g *GG) Image() image.Image { return g.dc.Image() }

func (g *GG) Size() (int, int) { return g.dc.Width(), g.dc.Height() }

func (g *GG) Clear() {
	g.dc.Push()
	g.dc.SetColor(color.Transparent)
	g.dc.Clear()
	g.dc.Pop()
}

func (g *GG) Save() {
	g.dc.Push()
	g.stack = append(g.stack, ggState{align: g.align, font: g.font})
}

// Restore pops the last saved state. Unbalanced calls are ignored.
func (g *GG) Restore() {
	if len(g.stack) == 0 {
		return
	}
	s := g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
	g.align, g.font = s.align, s.font
	g.dc.Pop()
}

func (g *GG) SetFill(p Paint)   { g.dc.SetFillStyle(pattern(p)) }
func (g *GG) SetStroke(p Paint) { g.dc.SetStrokeStyle(pattern(p)) }

func (g *GG) SetLineWidth(w float64) { g.dc.SetLineWidth(w) }

// SetLineJoin maps JoinMiter to a bevel join; gg has no miter joins.
func (g *GG) SetLineJoin(j LineJoin) {
	if j == JoinRound {
		g.dc.SetLineJoin(gg.LineJoinRound)
		return
	}
	g.dc.SetLineJoin(gg.LineJoinBevel)
}

func (g *GG) SetLineCap(c LineCap) {
	switch c {
	case CapRound:
		g.dc.SetLineCap(gg.LineCapRound)
	case CapSquare:
		g.dc.SetLineCap(gg.LineCapSquare)
	default:
		g.dc.SetLineCap(gg.LineCapButt)
	}
}

func (g *GG) SetFont(f Font) {
	g.font = f
	if g.faces != nil {
		if face := g.faces.Face(f); face != nil {
			g.dc.SetFontFace(face)
			return
		}
	}
	g.dc.SetFontFace(basicfont.Face7x13)
}

func (g *GG) SetTextAlign(a TextAlign) { g.align = a }

func (g *GG) BeginPath()                      { g.dc.ClearPath() }
func (g *GG) MoveTo(x, y float64)             { g.dc.MoveTo(x, y) }
func (g *GG) LineTo(x, y float64)             { g.dc.LineTo(x, y) }
func (g *GG) ClosePath()                      { g.dc.ClosePath() }
func (g *GG) Arc(x, y, r, a0, a1 float64)     { g.dc.DrawArc(x, y, r, a0, a1) }
func (g *GG) Rect(x, y, w, h float64)         { g.dc.DrawRectangle(x, y, w, h) }
func (g *GG) RoundRect(x, y, w, h, r float64) { g.dc.DrawRoundedRectangle(x, y, w, h, r) }
func (g *GG) Fill()                           { g.dc.FillPreserve() }
func (g *GG) Stroke()                         { g.dc.StrokePreserve() }

func (g *GG) FillRect(x, y, w, h float64) {
	g.dc.ClearPath()
	g.dc.DrawRectangle(x, y, w, h)
	g.dc.Fill()
}

func (g *GG) StrokeRect(x, y, w, h float64) {
	g.dc.ClearPath()
	g.dc.DrawRectangle(x, y, w, h)
	g.dc.Stroke()
}

func (g *GG) FillText(s string, x, y float64) {
	var ax float64
	switch g.align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	g.dc.DrawStringAnchored(s, x, y, ax, 0)
}

func (g *GG) MeasureText(s string) float64 {
	w, _ := g.dc.MeasureString(s)
	return w
}

func pattern(p Paint) gg.Pattern {
	switch p := p.(type) {
	case Color:
		return gg.NewSolidPattern(p)
	case *LinearGradient:
		grad := gg.NewLinearGradient(p.X0, p.Y0, p.X1, p.Y1)
		for _, s := range p.Stops {
			grad.AddColorStop(s.Offset, s.Color)
		}
		return grad
	case *RadialGradient:
		grad := gg.NewRadialGradient(p.X0, p.Y0, p.R0, p.X1, p.Y1, p.R1)
		for _, s := range p.Stops {
			grad.AddColorStop(s.Offset, s.Color)
		}
		return grad
	default:
		return gg.NewSolidPattern(color.Transparent)
	}
}

var _ Drawer = (*GG)(nil)
