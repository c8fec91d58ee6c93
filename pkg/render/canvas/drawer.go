package canvas

import (
	"math"

	"golang.org/x/image/font"
)

// Drawer is an explicit drawing-context handle. All state setters
// (paints, line settings, font, alignment) are captured by Save and restored
// by Restore.
//
// Path operations follow canvas-2D semantics: BeginPath discards the current
// path, Fill and Stroke paint it without discarding it. FillRect and
// StrokeRect paint a rectangle directly and leave the drawer with an empty
// path.
type Drawer interface {
	// Size returns the surface size in pixels.
	Size() (width, height int)

	// Clear resets every pixel to transparent.
	Clear()

	Save()
	Restore()

	SetFill(p Paint)
	SetStroke(p Paint)
	SetLineWidth(w float64)
	SetLineJoin(j LineJoin)
	SetLineCap(c LineCap)
	SetFont(f Font)
	SetTextAlign(a TextAlign)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Arc adds a circular arc from angle a0 to a1 (radians, clockwise in
	// screen space) around (x, y).
	Arc(x, y, r, a0, a1 float64)
	Rect(x, y, w, h float64)
	RoundRect(x, y, w, h, r float64)
	Fill()
	Stroke()

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)

	// FillText draws s with its alphabetic baseline at y, aligned on x
	// according to the current TextAlign.
	FillText(s string, x, y float64)
	MeasureText(s string) float64
}

// FaceResolver turns a [Font] specification into a concrete font face.
type FaceResolver interface {
	Face(f Font) font.Face
}

// Scoped runs fn between d.Save and d.Restore. Restore is deferred so state
// is restored even if fn panics.
func Scoped(d Drawer, fn func()) {
	d.Save()
	defer d.Restore()
	fn()
}

// Point is a 2D coordinate.
type Point struct{ X, Y float64 }

// Polygon replaces the current path with a closed polygon through pts.
func Polygon(d Drawer, pts ...Point) {
	d.BeginPath()
	for i, p := range pts {
		if i == 0 {
			d.MoveTo(p.X, p.Y)
			continue
		}
		d.LineTo(p.X, p.Y)
	}
	d.ClosePath()
}

// Circle replaces the current path with a full circle.
func Circle(d Drawer, x, y, r float64) {
	d.BeginPath()
	d.Arc(x, y, r, 0, 2*math.Pi)
	d.ClosePath()
}

// Line strokes a single segment with the current stroke settings.
func Line(d Drawer, x0, y0, x1, y1 float64) {
	d.BeginPath()
	d.MoveTo(x0, y0)
	d.LineTo(x1, y1)
	d.Stroke()
}
