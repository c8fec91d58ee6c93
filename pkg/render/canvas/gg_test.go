package canvas

import (
	"image"
	"image/color"
	"testing"
)

func newTestGG(w, h int) (*GG, *image.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return NewGG(img, nil), img
}

func TestNewSurface(t *testing.T) {
	s := NewSurface()
	if b := s.Bounds(); b.Dx() != 1584 || b.Dy() != 396 {
		t.Errorf("surface = %v, want 1584x396", b)
	}
	g := NewGG(s, nil)
	if w, h := g.Size(); w != Width || h != Height {
		t.Errorf("Size() = %dx%d", w, h)
	}
}

func TestGGFillRect(t *testing.T) {
	g, img := newTestGG(20, 20)
	g.SetFill(RGB(255, 0, 0))
	g.FillRect(0, 0, 10, 10)

	if got := img.RGBAAt(5, 5); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("inside = %v, want red", got)
	}
	if got := img.RGBAAt(15, 15); got.A != 0 {
		t.Errorf("outside = %v, want transparent", got)
	}
}

func TestGGClear(t *testing.T) {
	g, img := newTestGG(8, 8)
	g.SetFill(White)
	g.FillRect(0, 0, 8, 8)
	g.Clear()
	for y := range 8 {
		for x := range 8 {
			if img.RGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d,%d) not cleared", x, y)
			}
		}
	}
}

func TestGGSaveRestore(t *testing.T) {
	g, img := newTestGG(10, 10)
	g.SetFill(RGB(255, 0, 0))
	Scoped(g, func() {
		g.SetFill(RGB(0, 0, 255))
		g.SetTextAlign(AlignRight)
	})
	g.FillRect(0, 0, 10, 10)

	if got := img.RGBAAt(5, 5); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel = %v, want red after restore", got)
	}
	if g.align != AlignLeft {
		t.Errorf("align = %v, want left after restore", g.align)
	}
	g.Restore()
}

func TestGGLinearGradient(t *testing.T) {
	g, img := newTestGG(100, 4)
	g.SetFill(Linear(0, 0, 100, 0, Stop{0, Black}, Stop{1, White}))
	g.FillRect(0, 0, 100, 4)

	left, right := img.RGBAAt(2, 2), img.RGBAAt(97, 2)
	if left.R >= right.R {
		t.Errorf("left %v should be darker than right %v", left, right)
	}
	if left.A != 255 || right.A != 255 {
		t.Error("gradient fill should be opaque")
	}
}

func TestGGText(t *testing.T) {
	g, img := newTestGG(100, 30)
	if got := g.MeasureText("abc"); got != 21 {
		t.Errorf("MeasureText = %v, want 21 with the bitmap face", got)
	}

	g.SetFill(White)
	g.SetTextAlign(AlignRight)
	g.FillText("AB", 90, 20)

	var inked int
	for y := range 30 {
		for x := range 100 {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			inked++
			if x > 90 || x < 70 {
				t.Fatalf("ink at x=%d outside right-aligned run", x)
			}
		}
	}
	if inked == 0 {
		t.Error("FillText drew nothing")
	}
}

func TestGGStrokePreservesPath(t *testing.T) {
	g, img := newTestGG(20, 20)
	g.BeginPath()
	g.Rect(2, 2, 16, 16)
	g.SetFill(RGB(0, 0, 255))
	g.Fill()
	g.SetStroke(RGB(255, 0, 0))
	g.SetLineWidth(2)
	g.Stroke()

	if got := img.RGBAAt(10, 10); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("interior = %v, want blue", got)
	}
	if got := img.RGBAAt(2, 10); got.R == 0 {
		t.Errorf("edge = %v, want stroked red", got)
	}
}
