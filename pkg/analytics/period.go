package analytics

import (
	"fmt"
	"time"
)

// Period is a named aggregation window.
type Period string

// Supported aggregation windows.
const (
	Period7d    Period = "7d"
	Period30d   Period = "30d"
	Period90d   Period = "90d"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod validates a period string, defaulting empty input to "all".
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case Period7d, Period30d, Period90d, PeriodMonth, PeriodAll:
		return Period(s), nil
	case "":
		return PeriodAll, nil
	default:
		return "", fmt.Errorf("unknown period %q (want 7d, 30d, 90d, month or all)", s)
	}
}

// WindowStart returns the inclusive lower bound of the period relative to
// now. Events at exactly the boundary instant are inside the window. The
// zero time means unbounded.
func (p Period) WindowStart(now time.Time) time.Time {
	switch p {
	case Period7d:
		return now.AddDate(0, 0, -7)
	case Period30d:
		return now.AddDate(0, 0, -30)
	case Period90d:
		return now.AddDate(0, 0, -90)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}
	}
}

// Contains reports whether t falls inside the window ending at now.
func (p Period) Contains(now, t time.Time) bool {
	start := p.WindowStart(now)
	if start.IsZero() {
		return true
	}
	return !t.Before(start)
}
