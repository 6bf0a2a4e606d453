package render

import (
	"errors"
	"fmt"
	"strings"
)

// Format is an output image format.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
	FormatJPG Format = "jpg"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatPDF

// ErrUnsupportedFormat is returned for formats outside Formats.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatPDF, FormatPNG, FormatJPG}
}

// ParseFormat validates a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, ok := range Formats() {
		if f == ok {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of %v", ErrUnsupportedFormat, s, Formats())
}

// OutputPath joins a base filename and a format into "<base>.<format>".
func OutputPath(base string, f Format) string {
	return base + "." + string(f)
}
