package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/vontell/toggl-track-mcp/internal/daterange"
	"github.com/vontell/toggl-track-mcp/internal/names"
	"github.com/vontell/toggl-track-mcp/internal/report"
	"github.com/vontell/toggl-track-mcp/internal/toggl"
)

// fetchRange resolves a date range, builds the name index, and fetches the
// (post-filtered) entries for it. Shared by the listing, summary and search
// operations. A non-empty notFound return is a user-facing message for an
// unresolvable project name.
func (s *Service) fetchRange(ctx context.Context, api API, startDate, endDate, projectName string, window int) (r daterange.Range, ix *names.Index, entries []toggl.TimeEntry, notFound string, err error) {
	r, err = daterange.Resolve(startDate, endDate, window, s.now())
	if err != nil {
		return r, nil, nil, "", err
	}

	projects, err := api.GetProjects(ctx)
	if err != nil {
		return r, nil, nil, "", err
	}
	ix = names.NewIndex(projects)

	var projectIDs []int
	if projectName != "" {
		p, ok := ix.Project(projectName)
		if !ok {
			return r, ix, nil, ix.NotFoundMessage(projectName), nil
		}
		projectIDs = []int{p.ID}
	}

	queryStart, queryEnd := r.QueryWindow()
	entries, err = api.GetTimeEntries(ctx, queryStart, queryEnd, projectIDs)
	if err != nil {
		return r, ix, nil, "", err
	}
	return r, ix, r.Filter(entries), "", nil
}

func noEntriesMessage(r daterange.Range, projectName string) string {
	msg := "No time entries found " + r.Describe()
	if projectName != "" {
		msg += fmt.Sprintf(" for project '%s'", projectName)
	}
	return msg + "."
}

// Entries lists time entries grouped by date with daily totals. The default
// window is the configured entries lookback.
func (s *Service) Entries(ctx context.Context, startDate, endDate, projectName string) (string, error) {
	api, err := s.api()
	if err != nil {
		return "", err
	}

	r, ix, entries, notFound, err := s.fetchRange(ctx, api, startDate, endDate, projectName, s.cfg.EntriesWindowDays)
	if err != nil {
		return "", err
	}
	if notFound != "" {
		return notFound, nil
	}
	if len(entries) == 0 {
		return noEntriesMessage(r, projectName), nil
	}

	groups := report.GroupByDate(entries)
	return report.RenderEntries(r.Describe(), groups, ix), nil
}

// Summary aggregates closed entries by project with percentage shares.
func (s *Service) Summary(ctx context.Context, startDate, endDate, projectName string) (string, error) {
	api, err := s.api()
	if err != nil {
		return "", err
	}

	r, ix, entries, notFound, err := s.fetchRange(ctx, api, startDate, endDate, projectName, s.cfg.EntriesWindowDays)
	if err != nil {
		return "", err
	}
	if notFound != "" {
		return notFound, nil
	}
	if len(entries) == 0 {
		return noEntriesMessage(r, projectName), nil
	}

	totals, grand := report.ProjectTotals(entries, ix)
	return report.RenderSummary(r.Describe(), totals, grand), nil
}

// Search filters entries by a case-insensitive description substring over
// the configured search lookback window.
func (s *Service) Search(ctx context.Context, query, startDate, endDate string) (string, error) {
	api, err := s.api()
	if err != nil {
		return "", err
	}

	r, ix, entries, _, err := s.fetchRange(ctx, api, startDate, endDate, "", s.cfg.SearchWindowDays)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return noEntriesMessage(r, ""), nil
	}

	needle := strings.ToLower(query)
	var matching []toggl.TimeEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Description), needle) {
			matching = append(matching, e)
		}
	}
	if len(matching) == 0 {
		return fmt.Sprintf("No time entries found matching '%s' %s.", query, r.Describe()), nil
	}

	groups := report.GroupByDate(matching)
	return report.RenderSearch(query, r.Describe(), groups, ix), nil
}
