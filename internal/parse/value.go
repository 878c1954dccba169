package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var decimalRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Layouts accepted for upstream timestamps, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Decimal parses a decimal amount as the upstream API emits it, e.g. "20000.00".
func Decimal(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty decimal")
	}
	if !decimalRe.MatchString(s) {
		return 0, fmt.Errorf("unable to parse decimal: %q", raw)
	}
	return strconv.ParseFloat(s, 64)
}

// Timestamp parses an upstream timestamp. Layouts without a zone are interpreted in loc.
func Timestamp(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp: %q", raw)
}
