package canvas

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRecorderCapturesState(t *testing.T) {
	r := NewRecorder(Width, Height)
	font := Font{Weight: WeightBold, Size: 80, Family: "Inter", Fallback: SansSerif}

	Scoped(r, func() {
		r.SetFill(White)
		r.SetFont(font)
		r.SetTextAlign(AlignRight)
		r.FillText("Name", 1500, 180)
	})
	r.FillRect(0, 0, 10, 10)

	texts := r.Find("fillText")
	if len(texts) != 1 {
		t.Fatalf("fillText ops = %d, want 1", len(texts))
	}
	op := texts[0]
	if c, ok := op.FillColor(); !ok || c != White {
		t.Errorf("fill = %v, want white", op.Fill)
	}
	if op.Font != font || op.Align != AlignRight || op.Depth != 1 {
		t.Errorf("op state = %+v", op)
	}
	if op.Args[0] != 1500 || op.Args[1] != 180 {
		t.Errorf("args = %v", op.Args)
	}

	rects := r.Find("fillRect")
	if c, _ := rects[0].FillColor(); c != Black {
		t.Errorf("fill after restore = %v, want default black", c)
	}
	if r.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", r.Depth())
	}
}

func TestRecorderScopedRestoresOnPanic(t *testing.T) {
	r := NewRecorder(Width, Height)
	func() {
		defer func() { _ = recover() }()
		Scoped(r, func() {
			r.SetFill(White)
			panic("boom")
		})
	}()
	if r.Depth() != 0 {
		t.Errorf("Depth() = %d after panic, want 0", r.Depth())
	}
	r.FillRect(0, 0, 1, 1)
	if c, _ := r.Find("fillRect")[0].FillColor(); c != Black {
		t.Errorf("fill = %v, want black", c)
	}
}

func TestRecorderUnbalancedRestore(t *testing.T) {
	r := NewRecorder(Width, Height)
	r.Restore()
	if len(r.Ops()) != 0 || r.Depth() != 0 {
		t.Errorf("unbalanced Restore should be ignored, ops = %v", r.Ops())
	}
}

func TestRecorderMeasureText(t *testing.T) {
	r := NewRecorder(Width, Height)
	r.SetFont(Font{Size: 10})
	if got := r.MeasureText("abcd"); got != 24 {
		t.Errorf("MeasureText = %v, want 24", got)
	}
	if got := r.MeasureText("ñé"); got != 12 {
		t.Errorf("MeasureText counts runes, got %v", got)
	}
}

func TestOpMarshalJSON(t *testing.T) {
	r := NewRecorder(Width, Height)
	r.SetFill(Linear(0, 0, Width, 0, Stop{0, Hex("#1e1b4b")}, Stop{1, Hex("#4c1d95")}))
	r.FillRect(0, 0, Width, Height)
	r.SetStroke(White.WithAlpha(0x1a))
	r.SetLineWidth(15)
	r.Stroke()
	r.SetFill(White)
	r.SetFont(Font{Weight: WeightBold, Size: 80, Family: "Inter", Fallback: SansSerif})
	r.SetTextAlign(AlignRight)
	r.FillText("Name", 1500, 180)

	data, err := json.Marshal(r.Ops())
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	var ops []map[string]any
	if err := json.Unmarshal(data, &ops); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("ops = %d, want 3", len(ops))
	}
	if fill := ops[0]["fill"].(string); !strings.HasPrefix(fill, "linear(") {
		t.Errorf("gradient fill = %q", fill)
	}
	if ops[1]["stroke"] != "#ffffff1a" || ops[1]["line_width"] != 15.0 {
		t.Errorf("stroke op = %v", ops[1])
	}
	if _, ok := ops[1]["fill"]; ok {
		t.Error("stroke op should not carry a fill")
	}
	if ops[2]["font"] != "bold 80px Inter, sans-serif" || ops[2]["align"] != "right" || ops[2]["text"] != "Name" {
		t.Errorf("text op = %v", ops[2])
	}
}

func TestTee(t *testing.T) {
	a, b := NewRecorder(10, 10), NewRecorder(20, 20)
	tee := Tee{a, b}

	Scoped(tee, func() {
		tee.SetFill(White)
		Circle(tee, 5, 5, 2)
		tee.Fill()
	})

	if w, _ := tee.Size(); w != 10 {
		t.Errorf("Size() width = %d, want first drawer's 10", w)
	}
	if len(a.Ops()) != len(b.Ops()) || len(a.Ops()) == 0 {
		t.Errorf("ops a = %d, b = %d", len(a.Ops()), len(b.Ops()))
	}
	if len(b.Find("arc")) != 1 {
		t.Error("arc not forwarded")
	}
	if w, h := (Tee{}).Size(); w != 0 || h != 0 {
		t.Error("empty Tee should report zero size")
	}
}

func TestPolygon(t *testing.T) {
	r := NewRecorder(Width, Height)
	Polygon(r, Point{0, 0}, Point{10, 0}, Point{5, 5})
	var kinds []string
	for _, op := range r.Ops() {
		kinds = append(kinds, op.Kind)
	}
	want := "beginPath moveTo lineTo lineTo closePath"
	if got := strings.Join(kinds, " "); got != want {
		t.Errorf("ops = %q, want %q", got, want)
	}
}
