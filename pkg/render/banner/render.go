package banner

import (
	"context"
	"image"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/linkbanner/pkg/errors"
	"github.com/matzehuels/linkbanner/pkg/fonts"
	"github.com/matzehuels/linkbanner/pkg/render/banner/styles"
	"github.com/matzehuels/linkbanner/pkg/render/canvas"
)

// Renderer draws banners. A Renderer is not safe for concurrent use because
// its random source is not.
type Renderer struct {
	Fonts  canvas.FaceResolver
	Rand   styles.RandomSource
	Logger *log.Logger
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithFonts sets the font resolver used by [Renderer.RenderImage].
func WithFonts(f canvas.FaceResolver) Option {
	return func(r *Renderer) { r.Fonts = f }
}

// WithRand sets the random source handed to decorations.
func WithRand(rng styles.RandomSource) Option {
	return func(r *Renderer) { r.Rand = rng }
}

// WithSeed seeds the random source; see [NewRand].
func WithSeed(seed uint64) Option {
	return func(r *Renderer) { r.Rand = NewRand(seed) }
}

// WithLogger sets the logger for warnings and debug output.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) { r.Logger = l }
}

// New returns a renderer. Unset fields default to the process font
// registry, a clock-seeded random source and the default logger.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Fonts == nil {
		r.Fonts = fonts.Default()
	}
	if r.Rand == nil {
		r.Rand = NewRand(0)
	}
	if r.Logger == nil {
		r.Logger = log.Default()
	}
	return r
}

// NewRand returns a PCG generator for seed. Seed 0 seeds from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Render paints cfg onto d. The context is only checked before the surface
// is touched; a started render always runs to completion.
func (r *Renderer) Render(ctx context.Context, d canvas.Drawer, cfg Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	d.Clear()
	eff := Effective(cfg)
	style, err := styles.Resolve(eff.Style)
	if err != nil {
		return err
	}

	accent := r.color("accent", eff.AccentColor, Defaults.AccentColor)
	text := r.color("text_color", eff.TextColor, Defaults.TextColor)
	r.checkFont(eff.FontFamily)

	style.Background(d, accent)
	var decoErr error
	if style.Decoration != nil {
		decoErr = r.decorate(d, style, accent)
	}
	if err := PaintText(d, TextParams{
		Name:       eff.Name,
		Title:      eff.Title,
		StackTags:  eff.StackTags,
		TextColor:  text,
		FontFamily: eff.FontFamily,
		Accent:     accent,
		Style:      style.ID,
	}); err != nil {
		return err
	}
	if decoErr != nil {
		r.Logger.Error("decoration failed", "style", style.ID, "err", decoErr)
		return decoErr
	}

	r.Logger.Debug("rendered banner", "style", style.ID, "elapsed", time.Since(start))
	return nil
}

// RenderImage renders cfg onto a new surface rasterized with the renderer's
// fonts.
func (r *Renderer) RenderImage(ctx context.Context, cfg Config) (*image.RGBA, error) {
	img := canvas.NewSurface()
	if err := r.Render(ctx, canvas.NewGG(img, r.Fonts), cfg); err != nil {
		return nil, err
	}
	return img, nil
}

func (r *Renderer) decorate(d canvas.Drawer, style styles.Style, accent canvas.Color) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = apperrors.New(apperrors.ErrCodeRenderFailed, "%s decoration: %v", style.ID, p)
		}
	}()
	style.Decoration(d, accent, r.Rand)
	return nil
}

// color parses value, falling back to def when it is not a valid color.
func (r *Renderer) color(field, value, def string) canvas.Color {
	c, err := canvas.ParseColor(value)
	if err == nil {
		return c
	}
	r.Logger.Warn("invalid color, using default", "field", field, "value", value, "default", def)
	return canvas.Hex(def)
}

type availability interface {
	Available(family string) bool
}

func (r *Renderer) checkFont(family string) {
	if a, ok := r.Fonts.(availability); ok && !a.Available(family) {
		r.Logger.Debug("font family not found, using fallback", "family", family)
	}
}
