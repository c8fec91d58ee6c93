package fonts

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/matzehuels/linkbanner/pkg/render/canvas"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Inter", "inter"},
		{"Inter-Bold", "interbold"},
		{"inter_bold", "interbold"},
		{"Inter Bold", "interbold"},
		{"'Fira Code'", "firacode"},
		{"Inter[opsz,wght]", "inter"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := normalize(tt.in); got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLocateGenericFamilies(t *testing.T) {
	r := NewRegistry(false)
	tests := []struct {
		family string
		weight int
		want   string
	}{
		{canvas.SansSerif, canvas.WeightRegular, GoRegular},
		{canvas.SansSerif, canvas.WeightSemiBold, GoMedium},
		{canvas.SansSerif, canvas.WeightBold, GoBold},
		{"serif", canvas.WeightBold, GoBold},
		{canvas.Monospace, canvas.WeightRegular, GoMono},
		{canvas.Monospace, canvas.WeightBold, GoMonoBold},
	}
	for _, tt := range tests {
		got, ok := r.locate(tt.family, tt.weight)
		if !ok || got != tt.want {
			t.Errorf("locate(%q, %d) = %q, %v; want %q", tt.family, tt.weight, got, ok, tt.want)
		}
	}
}

func TestFaceFallsBackToEmbedded(t *testing.T) {
	r := NewRegistry(false)

	missing := r.Face(canvas.Font{Weight: canvas.WeightBold, Size: 80, Family: "Definitely Not Installed", Fallback: canvas.SansSerif})
	generic := r.Face(canvas.Font{Weight: canvas.WeightBold, Size: 80, Family: canvas.SansSerif})
	if missing == nil || generic == nil {
		t.Fatal("Face returned nil")
	}
	if missing != generic {
		t.Error("missing family should resolve to the cached sans-serif face")
	}
	if r.Available("Definitely Not Installed") {
		t.Error("Available reported a missing family")
	}
}

func TestFaceWithoutFamilies(t *testing.T) {
	r := NewRegistry(false)
	face := r.Face(canvas.Font{Weight: canvas.WeightRegular, Size: 24})
	if face == nil {
		t.Fatal("Face returned nil")
	}
	if h := face.Metrics().Height.Ceil(); h < 20 {
		t.Errorf("24px face height = %d, want >= 20", h)
	}
}

func TestFaceCachedPerSize(t *testing.T) {
	r := NewRegistry(false)
	a := r.Face(canvas.Font{Size: 40, Family: canvas.SansSerif})
	b := r.Face(canvas.Font{Size: 40, Family: canvas.SansSerif})
	c := r.Face(canvas.Font{Size: 24, Family: canvas.SansSerif})
	if a != b {
		t.Error("same size should return the cached face")
	}
	if a == c {
		t.Error("different sizes should return different faces")
	}
}

func TestFaceConcurrent(t *testing.T) {
	r := NewRegistry(false)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			size := float64(20 + i%4)
			if r.Face(canvas.Font{Size: size, Family: canvas.Monospace}) == nil {
				t.Error("Face returned nil")
			}
		}(i)
	}
	wg.Wait()
}

func TestWeightSuffixes(t *testing.T) {
	if got := weightSuffixes(canvas.WeightBold)[0]; got != "bold" {
		t.Errorf("bold first suffix = %q", got)
	}
	if got := weightSuffixes(canvas.WeightSemiBold)[0]; got != "semibold" {
		t.Errorf("semibold first suffix = %q", got)
	}
	if got := weightSuffixes(canvas.WeightRegular)[0]; got != "regular" {
		t.Errorf("regular first suffix = %q", got)
	}
}

func TestRegisterWeightName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	r := NewRegistry(false)
	if err := r.Register("Custom Bold", path); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if got, ok := r.locate("Custom", canvas.WeightBold); !ok || got != path {
		t.Errorf("bold lookup = %q, %v; want %q", got, ok, path)
	}
	if _, ok := r.locate("Custom", canvas.WeightRegular); ok {
		t.Error("regular lookup should not match a name registered with a weight")
	}
	if !r.Available("Custom Bold") {
		t.Error("name is stored as given")
	}
	if err := r.Register("Broken", filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("missing file should fail")
	}
}
