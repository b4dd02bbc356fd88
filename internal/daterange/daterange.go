// Package daterange resolves the dashboard's range selectors into concrete
// intervals. The caller supplies "now"; nothing here reads the wall clock.
package daterange

import (
	"strings"
	"time"

	pkgerrors "github.com/dsalazar-dev/restoops-backend/pkg/errors"
)

type Selector string

const (
	SelectorToday  Selector = "today"
	Selector7D     Selector = "7d"
	Selector30D    Selector = "30d"
	SelectorCustom Selector = "custom"
)

// ParseSelector normalizes a query value; empty defaults to today.
func ParseSelector(raw string) (Selector, error) {
	switch Selector(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return SelectorToday, nil
	case SelectorToday:
		return SelectorToday, nil
	case Selector7D:
		return Selector7D, nil
	case Selector30D:
		return Selector30D, nil
	case SelectorCustom:
		return SelectorCustom, nil
	default:
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid range selector")
	}
}

// Range is a closed interval: membership is inclusive on both bounds, which
// the dashboard's record timestamps rely on.
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) Contains(ts time.Time) bool {
	return !ts.Before(r.Start) && !ts.After(r.End)
}

// Covers reports whether a possibly-absent timestamp falls in the range.
// Records without a timestamp are never in range.
func (r Range) Covers(ts *time.Time) bool {
	return ts != nil && r.Contains(*ts)
}

// Resolve maps a selector to [start, now]. Preset windows start at local
// midnight (of today, or N fixed 24h days back). A custom range requires both
// bounds; partial bounds are rejected rather than silently degraded.
func Resolve(sel Selector, customStart, customEnd string, now time.Time) (Range, error) {
	if sel == SelectorCustom {
		if strings.TrimSpace(customStart) == "" || strings.TrimSpace(customEnd) == "" {
			return Range{}, pkgerrors.New(pkgerrors.CodeValidation, "customStart and customEnd must be provided together")
		}
		start, err := parseBound(customStart, now.Location())
		if err != nil {
			return Range{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customStart")
		}
		end, err := parseBound(customEnd, now.Location())
		if err != nil {
			return Range{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customEnd")
		}
		if end.Before(start) {
			return Range{}, pkgerrors.New(pkgerrors.CodeValidation, "customEnd must not precede customStart")
		}
		return Range{Start: start, End: end}, nil
	}

	today := Midnight(now)
	switch sel {
	case Selector7D:
		return Range{Start: today.Add(-7 * 24 * time.Hour), End: now}, nil
	case Selector30D:
		return Range{Start: today.Add(-30 * 24 * time.Hour), End: now}, nil
	default:
		return Range{Start: today, End: now}, nil
	}
}

// MonthToDate spans the first instant of the current calendar month to now.
func MonthToDate(now time.Time) Range {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Range{Start: start, End: now}
}

// Midnight truncates an instant to the start of its day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var boundLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseBound(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range boundLayouts {
		if ts, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return ts, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
