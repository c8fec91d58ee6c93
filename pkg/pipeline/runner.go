package pipeline

import (
	"context"
	"image"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/linkbanner/pkg/buildinfo"
	"github.com/matzehuels/linkbanner/pkg/cache"
	apperrors "github.com/matzehuels/linkbanner/pkg/errors"
	"github.com/matzehuels/linkbanner/pkg/fonts"
	"github.com/matzehuels/linkbanner/pkg/observability"
	"github.com/matzehuels/linkbanner/pkg/render/banner"
	"github.com/matzehuels/linkbanner/pkg/render/banner/sink"
	"github.com/matzehuels/linkbanner/pkg/render/banner/styles"
	"github.com/matzehuels/linkbanner/pkg/render/canvas"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache, fonts and logger; every
// Execute builds its own renderer and surface. Multiple goroutines can
// safely share a Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Fonts  *fonts.Registry
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil keyer
// scopes [cache.DefaultKeyer] keys by the build version.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Fonts:  fonts.Default(),
		Logger: logger,
	}
}

// Execute renders the banner described by opts and encodes it in every
// requested format.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     uuid.New(),
		Style:     styles.ID(opts.Style),
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger.With("run", result.RunID.String())
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Style, opts.Formats)
	start := time.Now()

	configHash, err := hashConfig(opts)
	if err != nil {
		return nil, err
	}
	result.CacheInfo.Cacheable = opts.Cacheable()
	if result.CacheInfo.Cacheable {
		if artifacts, ok := r.cached(ctx, configHash, opts); ok {
			result.Artifacts = artifacts
			result.Seed = opts.Seed
			result.CacheInfo.RenderHit = true
			result.Stats.Bytes = totalBytes(artifacts)
			logger.Info("served from cache", "style", opts.Style, "formats", opts.Formats)
			hooks.OnRenderComplete(ctx, opts.Style, opts.Formats, time.Since(start), nil)
			return result, nil
		}
	}

	img, ops, seed, err := r.render(ctx, logger, opts)
	result.Stats.RenderTime = time.Since(start)
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.Style, opts.Formats, time.Since(start), err)
		return nil, err
	}
	result.Seed = seed
	logger.Info("rendered banner", "style", opts.Style, "seed", seed, "duration", result.Stats.RenderTime)

	encodeStart := time.Now()
	artifacts, err := Encode(ctx, img, ops, seed, opts)
	result.Stats.EncodeTime = time.Since(encodeStart)
	hooks.OnRenderComplete(ctx, opts.Style, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.Bytes = totalBytes(artifacts)
	logger.Info("encoded outputs", "formats", opts.Formats, "bytes", result.Stats.Bytes, "duration", result.Stats.EncodeTime)

	if result.CacheInfo.Cacheable {
		r.store(ctx, logger, configHash, opts, artifacts)
	}
	return result, nil
}

// hashConfig identifies the inputs of a render. A font file is keyed by its
// contents, so replacing the file invalidates cached artifacts.
func hashConfig(opts Options) (string, error) {
	key := struct {
		Config   banner.Config `json:"config"`
		FontFile string        `json:"font_file,omitempty"`
	}{Config: opts.Config()}
	if opts.FontFile != "" {
		data, err := os.ReadFile(opts.FontFile)
		if err != nil {
			return "", apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "load font file")
		}
		key.FontFile = cache.Hash(data)
	}
	hash, err := cache.HashJSON(key)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInternal, err, "hash config")
	}
	return hash, nil
}

// render draws the banner once. A recorder is teed in when a JSON trace
// was requested.
func (r *Runner) render(ctx context.Context, logger *log.Logger, opts Options) (*image.RGBA, []canvas.Op, uint64, error) {
	faces := r.Fonts
	if faces == nil {
		faces = fonts.Default()
	}
	if opts.FontFile != "" {
		faces = fonts.NewRegistry(true)
		if err := faces.Register(opts.Font, opts.FontFile); err != nil {
			return nil, nil, 0, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "load font file")
		}
		logger.Debug("registered font file", "font", opts.Font, "path", opts.FontFile)
	}

	// Unseeded runs draw from the clock; the seed is only reported for
	// styles that consume randomness.
	seed, rngSeed := opts.Seed, opts.Seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
		if s, err := styles.Resolve(styles.ID(opts.Style)); err == nil && s.Random {
			seed = rngSeed
		}
	}
	renderer := banner.New(
		banner.WithFonts(faces),
		banner.WithSeed(rngSeed),
		banner.WithLogger(logger),
	)

	img := canvas.NewSurface()
	var d canvas.Drawer = canvas.NewGG(img, faces)
	var rec *canvas.Recorder
	if slices.Contains(opts.Formats, sink.FormatJSON) {
		rec = canvas.NewRecorder(canvas.Width, canvas.Height)
		d = canvas.Tee{d, rec}
	}
	if err := renderer.Render(ctx, d, opts.Config()); err != nil {
		return nil, nil, 0, err
	}
	var ops []canvas.Op
	if rec != nil {
		ops = rec.Ops()
	}
	return img, ops, seed, nil
}

// cached returns every requested artifact from the cache, or false if any
// is missing.
func (r *Runner) cached(ctx context.Context, configHash string, opts Options) (map[string][]byte, bool) {
	hooks := observability.Cache()
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(configHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			if err != nil {
				r.Logger.Debug("cache read failed", "format", format, "err", err)
			}
			hooks.OnCacheMiss(ctx, key)
			return nil, false
		}
		hooks.OnCacheHit(ctx, key)
		artifacts[format] = data
	}
	return artifacts, true
}

func (r *Runner) store(ctx context.Context, logger *log.Logger, configHash string, opts Options, artifacts map[string][]byte) {
	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(configHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			logger.Debug("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, key, len(data))
	}
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func totalBytes(artifacts map[string][]byte) int {
	n := 0
	for _, data := range artifacts {
		n += len(data)
	}
	return n
}

