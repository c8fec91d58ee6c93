package sink

import (
	"slices"
	"strings"

	apperrors "github.com/matzehuels/linkbanner/pkg/errors"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatJSON = "json"
)

// Formats lists every supported output format.
var Formats = []string{FormatPNG, FormatJPEG, FormatJSON}

// DefaultFilename is the export name of a PNG banner.
const DefaultFilename = "LinkBanner-AI.png"

// ParseFormat normalizes a format name. "jpg" is accepted for JPEG.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if f == "jpg" {
		f = FormatJPEG
	}
	if !slices.Contains(Formats, f) {
		return "", apperrors.New(apperrors.ErrCodeInvalidFormat, "invalid format: %s (valid: %s)", s, strings.Join(Formats, ", "))
	}
	return f, nil
}

// IsRaster reports whether format produces an image.
func IsRaster(format string) bool {
	return format == FormatPNG || format == FormatJPEG
}

// Extension returns the file extension for format, including the dot.
func Extension(format string) string {
	if format == FormatJPEG {
		return ".jpg"
	}
	return "." + format
}

// Filename returns the export filename for format.
func Filename(format string) string {
	return strings.TrimSuffix(DefaultFilename, ".png") + Extension(format)
}
