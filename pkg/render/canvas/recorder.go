package canvas

import (
	"encoding/json"
	"unicode/utf8"
)

// Op is one recorded drawing call together with the graphics state that was
// in effect when it ran.
type Op struct {
	Kind      string
	Args      []float64
	Text      string
	Fill      Paint
	Stroke    Paint
	LineWidth float64
	Font      Font
	Align     TextAlign
	Depth     int
}

// FillColor returns the solid fill color of the op, if any.
func (o Op) FillColor() (Color, bool) {
	c, ok := o.Fill.(Color)
	return c, ok
}

// StrokeColor returns the solid stroke color of the op, if any.
func (o Op) StrokeColor() (Color, bool) {
	c, ok := o.Stroke.(Color)
	return c, ok
}

// MarshalJSON encodes paints and fonts by their string forms.
func (o Op) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind      string    `json:"op"`
		Args      []float64 `json:"args,omitempty"`
		Text      string    `json:"text,omitempty"`
		Fill      string    `json:"fill,omitempty"`
		Stroke    string    `json:"stroke,omitempty"`
		LineWidth float64   `json:"line_width,omitempty"`
		Font      string    `json:"font,omitempty"`
		Align     string    `json:"align,omitempty"`
		Depth     int       `json:"depth"`
	}{Kind: o.Kind, Args: o.Args, Text: o.Text, Depth: o.Depth}

	switch o.Kind {
	case "fill", "fillRect":
		out.Fill = o.Fill.String()
	case "stroke", "strokeRect":
		out.Stroke = o.Stroke.String()
		out.LineWidth = o.LineWidth
	case "fillText":
		out.Fill = o.Fill.String()
		out.Font = o.Font.String()
		out.Align = o.Align.String()
	}
	return json.Marshal(out)
}

type recState struct {
	fill, stroke Paint
	lineWidth    float64
	font         Font
	align        TextAlign
}

// Recorder is a [Drawer] that keeps a log of drawing calls instead of
// rasterizing them. Setter calls are not logged; their effect is captured in
// the state of later ops.
//
// MeasureText is approximate: 0.6 x font size per rune.
type Recorder struct {
	width, height int
	state         recState
	stack         []recState
	ops           []Op
}

// NewRecorder returns a recorder reporting a width x height surface.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
		state:  recState{fill: Black, stroke: Black, lineWidth: 1},
	}
}

// Ops returns the recorded operations.
func (r *Recorder) Ops() []Op { return r.ops }

// Depth returns the current Save nesting depth.
func (r *Recorder) Depth() int { return len(r.stack) }

// Find returns the recorded ops of the given kind in order.
func (r *Recorder) Find(kind string) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) record(kind string, text string, args ...float64) {
	r.ops = append(r.ops, Op{
		Kind:      kind,
		Args:      args,
		Text:      text,
		Fill:      r.state.fill,
		Stroke:    r.state.stroke,
		LineWidth: r.state.lineWidth,
		Font:      r.state.font,
		Align:     r.state.align,
		Depth:     len(r.stack),
	})
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }
func (r *Recorder) Clear()           { r.record("clear", "") }

func (r *Recorder) Save() {
	r.record("save", "")
	r.stack = append(r.stack, r.state)
}

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.record("restore", "")
}

func (r *Recorder) SetFill(p Paint)          { r.state.fill = p }
func (r *Recorder) SetStroke(p Paint)        { r.state.stroke = p }
func (r *Recorder) SetLineWidth(w float64)   { r.state.lineWidth = w }
func (r *Recorder) SetLineJoin(LineJoin)     {}
func (r *Recorder) SetLineCap(LineCap)       {}
func (r *Recorder) SetFont(f Font)           { r.state.font = f }
func (r *Recorder) SetTextAlign(a TextAlign) { r.state.align = a }

func (r *Recorder) BeginPath()          { r.record("beginPath", "") }
func (r *Recorder) MoveTo(x, y float64) { r.record("moveTo", "", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.record("lineTo", "", x, y) }
func (r *Recorder) ClosePath()          { r.record("closePath", "") }

func (r *Recorder) Arc(x, y, rad, a0, a1 float64) { r.record("arc", "", x, y, rad, a0, a1) }
func (r *Recorder) Rect(x, y, w, h float64)       { r.record("rect", "", x, y, w, h) }

func (r *Recorder) RoundRect(x, y, w, h, rad float64) {
	r.record("roundRect", "", x, y, w, h, rad)
}

func (r *Recorder) Fill()                         { r.record("fill", "") }
func (r *Recorder) Stroke()                       { r.record("stroke", "") }
func (r *Recorder) FillRect(x, y, w, h float64)   { r.record("fillRect", "", x, y, w, h) }
func (r *Recorder) StrokeRect(x, y, w, h float64) { r.record("strokeRect", "", x, y, w, h) }

func (r *Recorder) FillText(s string, x, y float64) { r.record("fillText", s, x, y) }

func (r *Recorder) MeasureText(s string) float64 {
	return 0.6 * r.state.font.Size * float64(utf8.RuneCountInString(s))
}

var _ Drawer = (*Recorder)(nil)
