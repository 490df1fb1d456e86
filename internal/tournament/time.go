package tournament

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for start_time. Zone-less values come from datetime-local inputs and are read as UTC.
var startTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("start_time %q is not a valid ISO 8601 datetime", s)
}
