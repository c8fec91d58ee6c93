package errors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTextLength is the longest banner text field accepted, in runes.
const MaxTextLength = 120

// ValidateText validates a free-text banner field (name, title, stack).
// Empty values are valid; the renderer substitutes defaults for them.
//
// Validation rules:
//   - Must be valid UTF-8
//   - Maximum length of MaxTextLength runes
//   - No control characters (text is drawn on a single line)
func ValidateText(field, value string) error {
	if !utf8.ValidString(value) {
		return New(ErrCodeInvalidInput, "%s is not valid UTF-8", field)
	}

	if n := utf8.RuneCountInString(value); n > MaxTextLength {
		return New(ErrCodeInvalidInput, "%s too long (%d characters, max %d)", field, n, MaxTextLength)
	}

	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains control characters", field)
		}
	}

	return nil
}

// fontFamilyRegex matches font family names as they appear in font files.
var fontFamilyRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ._-]*$`)

// ValidateFontFamily validates a font family name. Quotes and commas are
// rejected because the family is interpolated into a font list.
func ValidateFontFamily(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "font family too long (max 64 characters)")
	}

	if !fontFamilyRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid font family: %q", name)
	}

	return nil
}

// ValidateOutputPath validates an output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}

	return nil
}

// Scale bounds for raster export.
const (
	MinScale = 0.25
	MaxScale = 4
)

// ValidateScale validates a raster export scale factor.
func ValidateScale(scale float64) error {
	if scale < MinScale || scale > MaxScale {
		return New(ErrCodeInvalidInput, "scale %g out of range [%g, %g]", scale, float64(MinScale), float64(MaxScale))
	}
	return nil
}
