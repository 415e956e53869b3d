// Package report aggregates time entries into the derived views shown to
// the user (daily groups, per-project totals) and renders every tool's
// text output. Views are recomputed per call; nothing here is persisted.
package report

import (
	"fmt"
	"sort"

	"github.com/vontell/toggl-track-mcp/internal/names"
	"github.com/vontell/toggl-track-mcp/internal/toggl"
)

// UnknownDate is the group key for entries with no start timestamp. It
// sorts after all ISO dates, so these entries land at the end of a report.
const UnknownDate = "Unknown date"

// FormatDuration renders a single entry's duration. Anything non-positive
// (including the -1 running sentinel) is a running entry.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "Running"
	}
	return FormatTotal(seconds)
}

// FormatTotal renders seconds as "Xh Ym". Integer division throughout; no
// rounding, no seconds.
func FormatTotal(seconds int) string {
	return fmt.Sprintf("%dh %dm", seconds/3600, seconds%3600/60)
}

// DailyGroup is one calendar date's entries with their closed total.
type DailyGroup struct {
	Date    string
	Entries []toggl.TimeEntry
	Total   int // seconds over closed entries; running entries contribute 0
}

// GroupByDate partitions entries by the date prefix of their start
// timestamp, preserving entry order within each group, and returns the
// groups sorted ascending by date key.
func GroupByDate(entries []toggl.TimeEntry) []DailyGroup {
	index := make(map[string]int)
	var groups []DailyGroup

	for _, e := range entries {
		key := e.DateKey()
		if key == "" {
			key = UnknownDate
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DailyGroup{Date: key})
		}
		groups[i].Entries = append(groups[i].Entries, e)
		if e.Duration > 0 {
			groups[i].Total += e.Duration
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date < groups[j].Date
	})
	return groups
}

// ProjectTotal is a project's summed closed duration over a range.
type ProjectTotal struct {
	Name    string
	Seconds int
	Percent float64 // share of the grand total; 0 when the grand total is 0
}

// ProjectTotals sums closed entries by project display name and returns the
// totals sorted by descending duration (ties keep first-encounter order)
// plus the grand total. Running entries are excluded from both the totals
// and the percentage base.
func ProjectTotals(entries []toggl.TimeEntry, ix *names.Index) ([]ProjectTotal, int) {
	index := make(map[string]int)
	var totals []ProjectTotal
	grand := 0

	for _, e := range entries {
		if e.Duration <= 0 {
			continue
		}
		name := ix.NameForID(e.ProjectID)
		i, ok := index[name]
		if !ok {
			i = len(totals)
			index[name] = i
			totals = append(totals, ProjectTotal{Name: name})
		}
		totals[i].Seconds += e.Duration
		grand += e.Duration
	}

	for i := range totals {
		if grand > 0 {
			totals[i].Percent = float64(totals[i].Seconds) / float64(grand) * 100
		}
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Seconds > totals[j].Seconds
	})
	return totals, grand
}
