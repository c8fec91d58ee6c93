package banner

import (
	"strings"

	"github.com/matzehuels/linkbanner/pkg/render/banner/styles"
)

// Config holds the raw user inputs for one render.
type Config struct {
	Name        string
	Title       string
	StackTags   string
	AccentColor string
	TextColor   string
	FontFamily  string
	Style       styles.ID
}

// Defaults are substituted for empty or whitespace-only fields.
var Defaults = Config{
	Name:        "Dante Rodríguez",
	Title:       "Técnico Programador",
	StackTags:   ".NET • PYTHON • UNITY2D",
	AccentColor: "#6366f1",
	TextColor:   "#ffffff",
	FontFamily:  "Inter",
	Style:       styles.Modern,
}

// Effective trims every text field of cfg and substitutes [Defaults] for
// empty results. Style is left as given so unknown styles still fail.
func Effective(cfg Config) Config {
	return Config{
		Name:        orDefault(cfg.Name, Defaults.Name),
		Title:       orDefault(cfg.Title, Defaults.Title),
		StackTags:   orDefault(cfg.StackTags, Defaults.StackTags),
		AccentColor: orDefault(cfg.AccentColor, Defaults.AccentColor),
		TextColor:   orDefault(cfg.TextColor, Defaults.TextColor),
		FontFamily:  orDefault(cfg.FontFamily, Defaults.FontFamily),
		Style:       cfg.Style,
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
