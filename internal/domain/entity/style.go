package entity

import (
	"errors"
	"regexp"
	"strings"
)

// ErrBadStyleFormat is returned when a style reference cannot be normalized.
var ErrBadStyleFormat = errors.New("unrecognized style reference format")

// styleRefPatterns are tried in order against the raw style string. Each must
// capture (user, style id).
var styleRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^mapbox://styles/([^/]+)/([^/]+)$`), // mapbox://styles/user/style
	regexp.MustCompile(`styles/v1/([^/]+)/([^/]+)`),         // full URL e.g. api.mapbox.com/styles/v1/user/style
	regexp.MustCompile(`^([^/]+)/([^/]+)$`),                 // user/style
}

// ParseStyleRef normalizes the accepted style reference forms into a StyleRef.
// A bare id like "streets-v12" resolves to the provider-owned "mapbox"
// namespace. Anything else is ErrBadStyleFormat.
func ParseStyleRef(style string) (StyleRef, error) {
	style = strings.TrimSpace(style)
	if style == "" {
		return StyleRef{}, ErrBadStyleFormat
	}

	for _, pattern := range styleRefPatterns {
		match := pattern.FindStringSubmatch(style)
		if match != nil && match[1] != "" && match[2] != "" {
			return StyleRef{User: match[1], StyleID: match[2]}, nil
		}
	}

	if !strings.Contains(style, "/") {
		return StyleRef{User: "mapbox", StyleID: style}, nil
	}

	return StyleRef{}, ErrBadStyleFormat
}
