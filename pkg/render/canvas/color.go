package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by [ParseColor] for strings that are not a
// recognised CSS color.
var ErrInvalidColor = errors.New("invalid color")

// Color is a non-premultiplied RGBA color with an explicit alpha channel.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White       = Color{0xff, 0xff, 0xff, 0xff}
	Black       = Color{0x00, 0x00, 0x00, 0xff}
	Transparent = Color{}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 0xff} }

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// WithAlpha returns c with its alpha channel replaced by a.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// MulAlpha scales the alpha channel of c by a/255.
func (c Color) MulAlpha(a uint8) Color {
	c.A = uint8((uint16(c.A)*uint16(a) + 127) / 255)
	return c
}

// Opaque reports whether c has full alpha.
func (c Color) Opaque() bool { return c.A == 0xff }

// Hex returns the #rrggbb form of c, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns #rrggbb for opaque colors and #rrggbbaa otherwise.
func (c Color) String() string {
	if c.Opaque() {
		return c.Hex()
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Hex parses a color literal and panics if it is malformed.
// It is meant for package-level color constants.
func Hex(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor parses a CSS color value. Supported forms are #rgb, #rgba,
// #rrggbb, #rrggbbaa, rgb(r, g, b), rgba(r, g, b, a), "transparent" and the
// CSS named colors. Matching is case-insensitive.
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return Color{}, fmt.Errorf("%w: empty value", ErrInvalidColor)
	case v == "transparent":
		return Transparent, nil
	case strings.HasPrefix(v, "#"):
		return parseHex(v)
	case strings.HasPrefix(v, "rgb"):
		return parseFunc(v)
	}
	if named, ok := colornames.Map[v]; ok {
		return Color{named.R, named.G, named.B, 0xff}, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(v string) (Color, error) {
	alpha := uint8(0xff)
	switch len(v) {
	case 4, 7:
	case 5:
		a, err := strconv.ParseUint(v[4:5], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		alpha = uint8(a * 0x11)
		v = v[:4]
	case 9:
		a, err := strconv.ParseUint(v[7:9], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		alpha = uint8(a)
		v = v[:7]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}
	r, g, b := c.RGB255()
	return Color{r, g, b, alpha}, nil
}

func parseFunc(v string) (Color, error) {
	open, end := strings.IndexByte(v, '('), strings.LastIndexByte(v, ')')
	if open < 0 || end < open {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}
	name, args := v[:open], strings.Split(v[open+1:end], ",")
	if (name != "rgb" && name != "rgba") || len(args) < 3 || len(args) > 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}
	var ch [3]uint8
	for i := range ch {
		n, err := strconv.Atoi(strings.TrimSpace(args[i]))
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		ch[i] = uint8(n)
	}
	alpha := uint8(0xff)
	if len(args) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		alpha = uint8(a*255 + 0.5)
	}
	return Color{ch[0], ch[1], ch[2], alpha}, nil
}
