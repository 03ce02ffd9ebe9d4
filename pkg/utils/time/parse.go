// ABOUTME: Time parsing utilities for GData timestamps and Base date attributes
// ABOUTME: Handles RFC 3339 with and without fractions plus the bare date forms Base accepts

package time

import (
	"strings"
	"time"
)

// Formats seen in Atom updated/published elements and g: date attributes
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses s with the first matching format; ok is false when none match
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
