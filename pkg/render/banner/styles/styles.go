package styles

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/matzehuels/linkbanner/pkg/errors"
	"github.com/matzehuels/linkbanner/pkg/render/canvas"
)

// ID identifies a banner style.
type ID string

// Style identifiers, in canonical order.
const (
	Modern    ID = "modern"
	Minimal   ID = "minimal"
	Terminal  ID = "terminal"
	Abstract  ID = "abstract"
	Geometric ID = "geometric"
	Cyberpunk ID = "cyberpunk"
	Brutalist ID = "brutalist"
	Retro     ID = "retro"
	Corporate ID = "corporate"
	Glass     ID = "glass"
)

func (id ID) String() string { return string(id) }

// RandomSource yields uniformly distributed values in [0, 1).
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Background paints the full canvas.
type Background func(d canvas.Drawer, accent canvas.Color)

// Decoration paints ornaments between the background and the text layer.
type Decoration func(d canvas.Drawer, accent canvas.Color, rng RandomSource)

// TextRule adjusts text colors for a style's background.
type TextRule struct {
	// WhiteSubstitute replaces opaque white text when it is not transparent.
	WhiteSubstitute canvas.Color
	// TitleAlpha scales the alpha channel of the title line.
	TitleAlpha uint8
}

// Colors returns the effective name and title colors for text. A dimmed
// title stays strictly below the name's alpha unless the text is fully
// transparent.
func (r TextRule) Colors(text canvas.Color) (name, title canvas.Color) {
	if r.WhiteSubstitute.A != 0 && text == canvas.White {
		text = r.WhiteSubstitute
	}
	title = text.MulAlpha(r.TitleAlpha)
	if r.TitleAlpha < 0xff && text.A > 0 && title.A >= text.A {
		title.A = text.A - 1
	}
	return text, title
}

// defaultText dims the title line slightly.
var defaultText = TextRule{TitleAlpha: 0xdd}

// Style is one registry entry.
type Style struct {
	ID          ID
	Description string
	Background  Background
	Decoration  Decoration // nil for styles without ornaments
	Text        TextRule
	// Random reports whether Decoration consumes its random source.
	Random bool
}

var entries = []Style{
	modern,
	minimal,
	terminal,
	abstract,
	geometric,
	cyberpunk,
	brutalist,
	retro,
	corporate,
	glass,
}

var registry = func() map[ID]Style {
	m := make(map[ID]Style, len(entries))
	for _, s := range entries {
		m[s.ID] = s
	}
	return m
}()

// Resolve returns the style registered under id. Unknown ids yield an
// [*UnknownStyleError].
func Resolve(id ID) (Style, error) {
	s, ok := registry[id]
	if !ok {
		return Style{}, &UnknownStyleError{ID: string(id)}
	}
	return s, nil
}

// Parse resolves a user-supplied style name. Matching ignores case and
// surrounding whitespace.
func Parse(name string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(name)))
	if _, err := Resolve(id); err != nil {
		return "", &UnknownStyleError{ID: name}
	}
	return id, nil
}

// IDs returns every style id in canonical order.
func IDs() []ID {
	out := make([]ID, len(entries))
	for i, s := range entries {
		out[i] = s.ID
	}
	return out
}

// All returns every style in canonical order.
func All() []Style {
	return append([]Style(nil), entries...)
}

// ErrUnknownStyle is matched by every [*UnknownStyleError].
var ErrUnknownStyle = errors.New("unknown style")

// UnknownStyleError reports a style id outside the registry. It matches
// [ErrUnknownStyle] with errors.Is and carries the INVALID_STYLE code.
type UnknownStyleError struct {
	ID string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown style %q (valid: %s)", e.ID, validList())
}

func (e *UnknownStyleError) Is(target error) bool { return target == ErrUnknownStyle }

func (e *UnknownStyleError) Unwrap() error {
	return apperrors.New(apperrors.ErrCodeInvalidStyle, "unknown style %q", e.ID)
}

func validList() string {
	ids := IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
