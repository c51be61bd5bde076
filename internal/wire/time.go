package wire

import (
	"fmt"
	"strings"
	"time"
)

// OutputLayout is the timestamp format of every response. Fractional
// seconds are printed only when present.
const OutputLayout = "2006-01-02 15:04:05.999999999"

// inputLayouts are tried in order. Fractional seconds are accepted after
// the seconds field of any layout. Timestamps without a zone are UTC.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses an ISO-8601-like date-time.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// FormatTime renders a timestamp for responses. Non-UTC offsets are kept.
func FormatTime(t time.Time) string {
	if _, offset := t.Zone(); offset != 0 {
		return t.Format(OutputLayout + "Z07:00")
	}
	return t.Format(OutputLayout)
}
