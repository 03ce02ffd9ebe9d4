// ABOUTME: Utility functions for parsing numbers from attribute and header values
// ABOUTME: Provides safe parsing with zero defaults and "value unit" splitting

package parse

import (
	"strconv"
	"strings"
)

// IntOrZero safely parses an integer from a string, returning 0 if parsing fails
func IntOrZero(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// NumberUnit splits values such as "199.99 usd" or "12 km" into number and unit.
// The unit is "" when absent; ok is false when the number does not parse.
func NumberUnit(s string) (value float64, unit string, ok bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, "", false
	}
	if len(fields) == 2 {
		unit = fields[1]
	}
	return v, unit, true
}
