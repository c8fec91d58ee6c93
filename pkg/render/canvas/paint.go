package canvas

import (
	"fmt"
	"strings"
)

// Paint is a fill or stroke source: a solid [Color], a [*LinearGradient] or a
// [*RadialGradient].
type Paint interface {
	fmt.Stringer
	isPaint()
}

func (Color) isPaint() {}

// Stop is a gradient color stop at Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  Color
}

// LinearGradient interpolates its stops along the line (X0,Y0)-(X1,Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

// Linear returns a linear gradient between two points.
func Linear(x0, y0, x1, y1 float64, stops ...Stop) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}
}

func (*LinearGradient) isPaint() {}

func (g *LinearGradient) String() string {
	return fmt.Sprintf("linear(%g,%g,%g,%g;%s)", g.X0, g.Y0, g.X1, g.Y1, stopsString(g.Stops))
}

// RadialGradient interpolates its stops between the circle (X0,Y0,R0) and the
// circle (X1,Y1,R1).
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []Stop
}

// Radial returns a radial gradient between two circles.
func Radial(x0, y0, r0, x1, y1, r1 float64, stops ...Stop) *RadialGradient {
	return &RadialGradient{X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1, Stops: stops}
}

func (*RadialGradient) isPaint() {}

func (g *RadialGradient) String() string {
	return fmt.Sprintf("radial(%g,%g,%g,%g,%g,%g;%s)", g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1, stopsString(g.Stops))
}

func stopsString(stops []Stop) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = fmt.Sprintf("%g:%s", s.Offset, s.Color)
	}
	return strings.Join(parts, ",")
}

// LineJoin is the shape used where two path segments meet.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// LineCap is the shape used at open path ends.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// TextAlign controls how the x coordinate passed to FillText is interpreted.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Font weights used by the banner renderer.
const (
	WeightRegular  = 400
	WeightSemiBold = 600
	WeightBold     = 700
)

// Generic font families.
const (
	SansSerif = "sans-serif"
	Monospace = "monospace"
)

// Font is a CSS-like font specification: weight, pixel size, a primary
// family and a generic fallback family.
type Font struct {
	Weight   int
	Size     float64
	Family   string
	Fallback string
}

// String formats f the way a CSS font shorthand would, e.g.
// "bold 80px Inter, sans-serif".
func (f Font) String() string {
	weight := fmt.Sprint(f.Weight)
	if f.Weight == WeightBold {
		weight = "bold"
	}
	families := f.Family
	if f.Fallback != "" && f.Fallback != f.Family {
		if families != "" {
			families += ", "
		}
		families += f.Fallback
	}
	return fmt.Sprintf("%s %gpx %s", weight, f.Size, families)
}

// Families returns the family list in lookup order.
func (f Font) Families() []string {
	var out []string
	for _, fam := range []string{f.Family, f.Fallback} {
		if fam = strings.TrimSpace(fam); fam != "" {
			out = append(out, fam)
		}
	}
	return out
}
