// ABOUTME: Duration parsing for configuration values
// ABOUTME: Accepts Go duration strings, plain seconds and HH:MM:SS or MM:SS clock forms

package duration

import (
	"strconv"
	"strings"
	"time"
)

// Parse converts "1h30m", "45" (seconds), "01:30:00" or "05:00" to a duration.
// ok is false when the string matches none of these forms.
func Parse(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// If already a number, assume it's seconds
	if seconds, err := strconv.Atoi(s); err == nil {
		return time.Duration(seconds) * time.Second, true
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d, true
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return time.Duration(total) * time.Second, true
}
