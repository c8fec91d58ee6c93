package canvas

// Tee is a [Drawer] that forwards every call to all of its drawers in order.
// Size and MeasureText are answered by the first drawer.
type Tee []Drawer

func (t Tee) Size() (int, int) {
	if len(t) == 0 {
		return 0, 0
	}
	return t[0].Size()
}

func (t Tee) MeasureText(s string) float64 {
	if len(t) == 0 {
		return 0
	}
	return t[0].MeasureText(s)
}

func (t Tee) each(fn func(Drawer)) {
	for _, d := range t {
		fn(d)
	}
}

func (t Tee) Clear()                   { t.each(func(d Drawer) { d.Clear() }) }
func (t Tee) Save()                    { t.each(func(d Drawer) { d.Save() }) }
func (t Tee) Restore()                 { t.each(func(d Drawer) { d.Restore() }) }
func (t Tee) SetFill(p Paint)          { t.each(func(d Drawer) { d.SetFill(p) }) }
func (t Tee) SetStroke(p Paint)        { t.each(func(d Drawer) { d.SetStroke(p) }) }
func (t Tee) SetLineWidth(w float64)   { t.each(func(d Drawer) { d.SetLineWidth(w) }) }
func (t Tee) SetLineJoin(j LineJoin)   { t.each(func(d Drawer) { d.SetLineJoin(j) }) }
func (t Tee) SetLineCap(c LineCap)     { t.each(func(d Drawer) { d.SetLineCap(c) }) }
func (t Tee) SetFont(f Font)           { t.each(func(d Drawer) { d.SetFont(f) }) }
func (t Tee) SetTextAlign(a TextAlign) { t.each(func(d Drawer) { d.SetTextAlign(a) }) }
func (t Tee) BeginPath()               { t.each(func(d Drawer) { d.BeginPath() }) }
func (t Tee) MoveTo(x, y float64)      { t.each(func(d Drawer) { d.MoveTo(x, y) }) }
func (t Tee) LineTo(x, y float64)      { t.each(func(d Drawer) { d.LineTo(x, y) }) }
func (t Tee) ClosePath()               { t.each(func(d Drawer) { d.ClosePath() }) }
func (t Tee) Fill()                    { t.each(func(d Drawer) { d.Fill() }) }
func (t Tee) Stroke()                  { t.each(func(d Drawer) { d.Stroke() }) }

func (t Tee) Arc(x, y, r, a0, a1 float64) {
	t.each(func(d Drawer) { d.Arc(x, y, r, a0, a1) })
}

func (t Tee) Rect(x, y, w, h float64) {
	t.each(func(d Drawer) { d.Rect(x, y, w, h) })
}

func (t Tee) RoundRect(x, y, w, h, r float64) {
	t.each(func(d Drawer) { d.RoundRect(x, y, w, h, r) })
}

func (t Tee) FillRect(x, y, w, h float64) {
	t.each(func(d Drawer) { d.FillRect(x, y, w, h) })
}

func (t Tee) StrokeRect(x, y, w, h float64) {
	t.each(func(d Drawer) { d.StrokeRect(x, y, w, h) })
}

func (t Tee) FillText(s string, x, y float64) {
	t.each(func(d Drawer) { d.FillText(s, x, y) })
}

var _ Drawer = Tee(nil)
