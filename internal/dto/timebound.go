package dto

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvertedRange = errors.New("since must be before until")

// TimeRange is a half-open window [Since, Until). Nil bounds are open.
type TimeRange struct {
	Since *time.Time
	Until *time.Time
}

// ParseTimeRange reads optional since/until values given as RFC 3339 or as
// plain dates. A plain-date until covers that whole day; an RFC 3339 until
// includes the instant itself (Postgres keeps microseconds).
func ParseTimeRange(since, until string) (TimeRange, error) {
	var r TimeRange

	from, _, err := parseTime(since)
	if err != nil {
		return TimeRange{}, fmt.Errorf("since: %w", err)
	}
	r.Since = from

	to, dateOnly, err := parseTime(until)
	if err != nil {
		return TimeRange{}, fmt.Errorf("until: %w", err)
	}
	if to != nil {
		end := to.Add(time.Microsecond)
		if dateOnly {
			end = to.AddDate(0, 0, 1)
		}
		r.Until = &end
	}

	if r.Since != nil && r.Until != nil && !r.Since.Before(*r.Until) {
		return TimeRange{}, ErrInvertedRange
	}
	return r, nil
}

func parseTime(value string) (*time.Time, bool, error) {
	if value == "" {
		return nil, false, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, false, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return &t, true, nil
	}
	return nil, false, fmt.Errorf("invalid time %q: want RFC 3339 or YYYY-MM-DD", value)
}
