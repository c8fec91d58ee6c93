package sink

import (
	"encoding/json"

	"github.com/matzehuels/linkbanner/pkg/render/canvas"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
	seed  uint64
	size  [2]int
}

// WithJSONStyle records the style id in the output.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONSeed records the random seed, so a trace can be reproduced.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

// WithJSONSize overrides the recorded surface size (default canvas size).
func WithJSONSize(w, h int) JSONOption { return func(r *jsonRenderer) { r.size = [2]int{w, h} } }

type jsonOutput struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Style  string      `json:"style,omitempty"`
	Seed   uint64      `json:"seed,omitempty"`
	Ops    []canvas.Op `json:"ops"`
}

// RenderJSON exports a recorded draw trace as pretty-printed JSON.
func RenderJSON(ops []canvas.Op, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{size: [2]int{canvas.Width, canvas.Height}}
	for _, opt := range opts {
		opt(&r)
	}
	if ops == nil {
		ops = []canvas.Op{}
	}
	return json.MarshalIndent(jsonOutput{
		Width:  r.size[0],
		Height: r.size[1],
		Style:  r.style,
		Seed:   r.seed,
		Ops:    ops,
	}, "", "  ")
}
