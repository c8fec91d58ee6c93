// Package fonts resolves CSS-like font specifications into font faces.
//
// Generic families (sans-serif, serif, system-ui, monospace) map to the Go
// fonts embedded by golang.org/x/image/font/gofont. Named families are looked
// up among the system fonts found by go-findfont; a family that cannot be
// found falls through to the next family of the specification and finally
// to the embedded sans-serif face, so resolution never fails.
//
// Font files are parsed with x/image opentype first and with golang/freetype
// when opentype rejects them. Parsed fonts and sized faces are cached, and a
// [Registry] is safe for concurrent use.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/linkbanner/pkg/render/canvas"
)

// Source keys of the embedded Go fonts.
const (
	GoRegular  = "go-regular"
	GoMedium   = "go-medium"
	GoBold     = "go-bold"
	GoMono     = "go-mono"
	GoMonoBold = "go-mono-bold"
)

var embedded = map[string][]byte{
	GoRegular:  goregular.TTF,
	GoMedium:   gomedium.TTF,
	GoBold:     gobold.TTF,
	GoMono:     gomono.TTF,
	GoMonoBold: gomonobold.TTF,
}

type faceKey struct {
	source string
	size   float64
}

// source is a parsed font that can produce sized faces.
type source interface {
	newFace(size float64) (font.Face, error)
}

type otSource struct{ f *opentype.Font }

func (s otSource) newFace(size float64) (font.Face, error) {
	return opentype.NewFace(s.f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

type ttSource struct{ f *truetype.Font }

func (s ttSource) newFace(size float64) (font.Face, error) {
	return truetype.NewFace(s.f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

// parse parses TrueType or OpenType font data.
func parse(data []byte) (source, error) {
	if f, err := opentype.Parse(data); err == nil {
		return otSource{f}, nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return ttSource{f}, nil
}

// Registry resolves [canvas.Font] values into faces.
type Registry struct {
	system bool

	mu      sync.RWMutex
	scanned bool
	files   map[string]string // normalized name -> path
	sources map[string]source // path or embedded name -> parsed font
	faces   map[faceKey]font.Face
}

// NewRegistry returns an empty registry. When systemFonts is false only the
// embedded Go fonts are used, which makes rendering independent of the host.
func NewRegistry(systemFonts bool) *Registry {
	return &Registry{
		system:  systemFonts,
		files:   make(map[string]string),
		sources: make(map[string]source),
		faces:   make(map[faceKey]font.Face),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry with system font lookup enabled.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(true)
	})
	return defaultRegistry
}

// Face returns a face for f. It never returns nil.
func (r *Registry) Face(f canvas.Font) font.Face {
	size := f.Size
	if size <= 0 {
		size = 16
	}
	for _, family := range f.Families() {
		if key, ok := r.locate(family, f.Weight); ok {
			if face := r.face(key, size); face != nil {
				return face
			}
		}
	}
	return r.face(sansKey(f.Weight), size)
}

// Available reports whether family resolves to a font without falling back
// to the embedded sans-serif face.
func (r *Registry) Available(family string) bool {
	_, ok := r.locate(family, canvas.WeightRegular)
	return ok
}

// Register adds a font file under the given family name. The name is
// stored as given; register a weight-specific file under a name that
// carries the weight, e.g. "Inter Bold", so bold lookups prefer it.
func (r *Registry) Register(family, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	src, err := parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[path] = src
	r.files[normalize(family)] = path
	return nil
}

// locate maps a family and weight to a source key.
func (r *Registry) locate(family string, weight int) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "":
		return "", false
	case canvas.SansSerif, "serif", "system-ui":
		return sansKey(weight), true
	case canvas.Monospace:
		if weight >= canvas.WeightSemiBold {
			return GoMonoBold, true
		}
		return GoMono, true
	}

	r.scan()
	r.mu.RLock()
	defer r.mu.RUnlock()
	base := normalize(family)
	for _, suffix := range weightSuffixes(weight) {
		if path, ok := r.files[base+suffix]; ok {
			return path, true
		}
	}
	return "", false
}

func (r *Registry) face(key string, size float64) font.Face {
	fk := faceKey{source: key, size: size}
	r.mu.RLock()
	face, ok := r.faces[fk]
	src := r.sources[key]
	r.mu.RUnlock()
	if ok {
		return face
	}

	if src == nil {
		var err error
		if src, err = r.load(key); err != nil {
			return nil
		}
	}
	face, err := src.newFace(size)
	if err != nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.faces[fk]; ok {
		return cached
	}
	r.sources[key] = src
	r.faces[fk] = face
	return face
}

func (r *Registry) load(key string) (source, error) {
	if data, ok := embedded[key]; ok {
		return parse(data)
	}
	data, err := os.ReadFile(key)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// scan indexes system font files once.
func (r *Registry) scan() {
	r.mu.RLock()
	done := r.scanned || !r.system
	r.mu.RUnlock()
	if done {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.scanned {
		return
	}
	r.scanned = true
	for _, path := range findfont.List() {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ttf", ".otf":
		default:
			continue
		}
		name := normalize(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		if _, exists := r.files[name]; !exists {
			r.files[name] = path
		}
	}
}

func sansKey(weight int) string {
	switch {
	case weight >= canvas.WeightBold:
		return GoBold
	case weight >= 500:
		return GoMedium
	default:
		return GoRegular
	}
}

// weightSuffixes lists file-name suffixes to try for a weight, best match
// first. Windows short names ("arialbd") are included.
func weightSuffixes(weight int) []string {
	switch {
	case weight >= canvas.WeightBold:
		return []string{"bold", "bd", "b", ""}
	case weight >= canvas.WeightSemiBold:
		return []string{"semibold", "demibold", "sb", "medium", "bold", ""}
	case weight >= 500:
		return []string{"medium", "regular", ""}
	default:
		return []string{"regular", "", "r"}
	}
}

// normalize lowercases a family or file name and strips separators and
// variable-font axis tags, so "Inter-Bold", "inter_bold" and "Inter Bold"
// compare equal.
func normalize(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '-', '_', '\'', '"':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
