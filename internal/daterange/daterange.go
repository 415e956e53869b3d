// Package daterange resolves user-supplied date inputs into the concrete
// query ranges the Toggl API expects, including the widened window used to
// work around the API's single-day filtering quirk.
package daterange

import (
	"fmt"
	"time"

	"github.com/vontell/toggl-track-mcp/internal/toggl"
)

// DayFormat is the calendar-date layout used everywhere (YYYY-MM-DD).
const DayFormat = "2006-01-02"

// Default lookback windows in days.
const (
	EntriesWindow = 7
	SearchWindow  = 30
)

// padDays is how far the query window is widened on each side for
// single-day ranges. The API can omit boundary entries when start and end
// are the same day, so we over-fetch and post-filter.
const padDays = 2

// Range is a resolved inclusive calendar-date range.
type Range struct {
	Start string
	End   string
}

// Resolve turns optional start/end dates into a concrete range. The now
// parameter anchors the defaults so resolution is deterministic:
//
//   - neither given: [now - window, now]
//   - only end:      [end - window, end]
//   - only start:    [start, now]
//   - both:          used as-is
func Resolve(startDate, endDate string, window int, now time.Time) (Range, error) {
	switch {
	case startDate == "" && endDate == "":
		endDate = now.Format(DayFormat)
		startDate = now.AddDate(0, 0, -window).Format(DayFormat)
	case startDate == "":
		end, err := time.Parse(DayFormat, endDate)
		if err != nil {
			return Range{}, fmt.Errorf("invalid end_date %q: expected YYYY-MM-DD", endDate)
		}
		startDate = end.AddDate(0, 0, -window).Format(DayFormat)
	case endDate == "":
		if _, err := time.Parse(DayFormat, startDate); err != nil {
			return Range{}, fmt.Errorf("invalid start_date %q: expected YYYY-MM-DD", startDate)
		}
		endDate = now.Format(DayFormat)
	default:
		if _, err := time.Parse(DayFormat, startDate); err != nil {
			return Range{}, fmt.Errorf("invalid start_date %q: expected YYYY-MM-DD", startDate)
		}
		if _, err := time.Parse(DayFormat, endDate); err != nil {
			return Range{}, fmt.Errorf("invalid end_date %q: expected YYYY-MM-DD", endDate)
		}
	}
	return Range{Start: startDate, End: endDate}, nil
}

// SingleDay reports whether the range collapses to one calendar day.
func (r Range) SingleDay() bool {
	return r.Start == r.End
}

// QueryWindow returns the dates to actually query the API with. Single-day
// ranges are widened by padDays on each side; wider ranges pass through.
func (r Range) QueryWindow() (string, string) {
	if !r.SingleDay() {
		return r.Start, r.End
	}
	day, err := time.Parse(DayFormat, r.Start)
	if err != nil {
		return r.Start, r.End
	}
	return day.AddDate(0, 0, -padDays).Format(DayFormat),
		day.AddDate(0, 0, padDays).Format(DayFormat)
}

// Filter discards entries that fall outside the requested range. For
// single-day ranges only entries whose date prefix equals that day survive
// (this is the post-filter paired with the widened QueryWindow). For wider
// ranges entries are compared lexicographically against [Start, End], which
// is valid because ISO dates sort as strings; entries with no start
// timestamp are kept so they are never silently dropped from aggregation.
func (r Range) Filter(entries []toggl.TimeEntry) []toggl.TimeEntry {
	var kept []toggl.TimeEntry
	for _, e := range entries {
		key := e.DateKey()
		if r.SingleDay() {
			if key == r.Start {
				kept = append(kept, e)
			}
			continue
		}
		if key == "" || (r.Start <= key && key <= r.End) {
			kept = append(kept, e)
		}
	}
	return kept
}

// Describe renders the range for user-facing messages.
func (r Range) Describe() string {
	return fmt.Sprintf("from %s to %s", r.Start, r.End)
}
