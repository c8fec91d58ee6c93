// Package pipeline runs the complete configure → render → encode flow for a
// banner.
//
// The CLI (and anything else that wants files rather than a surface) goes
// through a [Runner], which validates [Options], renders the banner once,
// encodes it into every requested format and caches the encoded bytes.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Name:    "Ada Lovelace",
//	    Style:   "retro",
//	    Formats: []string{"png", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// Options can also be read from a TOML file with [LoadOptions]:
//
//	name    = "Ada Lovelace"
//	title   = "Analyst"
//	stack   = "NOTES • ENGINES"
//	accent  = "#f59e0b"
//	style   = "retro"
//	formats = ["png", "jpeg"]
//	scale   = 2.0
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/linkbanner/pkg/cache"
	apperrors "github.com/matzehuels/linkbanner/pkg/errors"
	"github.com/matzehuels/linkbanner/pkg/render/banner"
	"github.com/matzehuels/linkbanner/pkg/render/banner/sink"
	"github.com/matzehuels/linkbanner/pkg/render/banner/styles"
	"github.com/matzehuels/linkbanner/pkg/render/canvas"
)

const (
	// DefaultScale leaves raster output at 1584x396.
	DefaultScale = 1.0

	// DefaultQuality is the JPEG quality.
	DefaultQuality = 90
)

// DefaultStyle is the style used when none is given.
const DefaultStyle = styles.Modern

// DefaultFormats are the output formats used when none are given.
var DefaultFormats = []string{sink.FormatPNG}

// Options contains all configuration for one pipeline run. Field names follow
// the TOML config file.
type Options struct {
	// Banner content
	Name      string `toml:"name" json:"name,omitempty"`
	Title     string `toml:"title" json:"title,omitempty"`
	Stack     string `toml:"stack" json:"stack,omitempty"`
	Accent    string `toml:"accent" json:"accent,omitempty"`
	TextColor string `toml:"text_color" json:"text_color,omitempty"`
	Font      string `toml:"font" json:"font,omitempty"`
	FontFile  string `toml:"font_file" json:"font_file,omitempty"` // registers Font from this file
	Style     string `toml:"style" json:"style,omitempty"`

	// Output
	Formats []string `toml:"formats" json:"formats,omitempty"`
	Scale   float64  `toml:"scale" json:"scale,omitempty"`
	Quality int      `toml:"quality" json:"quality,omitempty"`
	Seed    uint64   `toml:"seed" json:"seed,omitempty"`

	// Runtime options (not serialized)
	NoCache bool        `toml:"-" json:"-"`
	Logger  *log.Logger `toml:"-" json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID

	// Style is the resolved style id.
	Style styles.ID

	// Seed reproduces the decoration of a random style. It is 0 for styles
	// that draw no random elements.
	Seed uint64

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RenderTime time.Duration
	EncodeTime time.Duration
	Bytes      int
}

// CacheInfo reports how the cache was used.
type CacheInfo struct {
	Cacheable bool // false for unseeded runs of random styles
	RenderHit bool // every artifact came from the cache
}

// LoadOptions reads options from a TOML file. Unknown keys are rejected.
func LoadOptions(path string) (Options, error) {
	var opts Options
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, apperrors.New(apperrors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return opts, nil
}

// ValidateAndSetDefaults checks every field and applies defaults. Colors are
// validated strictly here; the renderer itself only falls back on bad
// colors. The method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	for _, f := range []struct{ name, value string }{
		{"name", o.Name},
		{"title", o.Title},
		{"stack", o.Stack},
	} {
		if err := apperrors.ValidateText(f.name, f.value); err != nil {
			return err
		}
	}
	if err := apperrors.ValidateFontFamily(o.Font); err != nil {
		return err
	}
	if o.FontFile != "" {
		if strings.TrimSpace(o.Font) == "" {
			return apperrors.New(apperrors.ErrCodeInvalidConfig, "font_file requires font")
		}
		if err := apperrors.ValidateOutputPath(o.FontFile); err != nil {
			return err
		}
	}
	for _, c := range []struct{ name, value string }{
		{"accent", o.Accent},
		{"text_color", o.TextColor},
	} {
		if err := ValidateColor(c.name, c.value); err != nil {
			return err
		}
	}

	if strings.TrimSpace(o.Style) == "" {
		o.Style = string(DefaultStyle)
	}
	id, err := styles.Parse(o.Style)
	if err != nil {
		return err
	}
	o.Style = string(id)

	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	formats := make([]string, 0, len(o.Formats))
	for _, f := range o.Formats {
		format, err := sink.ParseFormat(f)
		if err != nil {
			return err
		}
		if !slices.Contains(formats, format) {
			formats = append(formats, format)
		}
	}
	o.Formats = formats

	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if err := apperrors.ValidateScale(o.Scale); err != nil {
		return err
	}
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	if o.Quality < 1 || o.Quality > 100 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "quality %d out of range [1, 100]", o.Quality)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ValidateColor checks that a non-empty value is a CSS color.
func ValidateColor(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := canvas.ParseColor(value); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidColor, err, "invalid %s color: %q", field, value)
	}
	return nil
}

// Config returns the banner configuration described by o.
func (o *Options) Config() banner.Config {
	return banner.Config{
		Name:        o.Name,
		Title:       o.Title,
		StackTags:   o.Stack,
		AccentColor: o.Accent,
		TextColor:   o.TextColor,
		FontFamily:  o.Font,
		Style:       styles.ID(o.Style),
	}
}

// Cacheable reports whether the output of o is reproducible. Random styles
// are only reproducible with an explicit seed.
func (o *Options) Cacheable() bool {
	if o.NoCache {
		return false
	}
	s, err := styles.Resolve(styles.ID(o.Style))
	if err != nil {
		return false
	}
	return !s.Random || o.Seed != 0
}

// ArtifactKeyOpts returns cache key options for one output format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Style:  o.Style,
		Format: format,
		Seed:   o.Seed,
	}
	if sink.IsRaster(format) {
		k.Scale = o.Scale
	}
	if format == sink.FormatJPEG {
		k.Quality = o.Quality
	}
	return k
}
