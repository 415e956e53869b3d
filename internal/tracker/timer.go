package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/vontell/toggl-track-mcp/internal/names"
	"github.com/vontell/toggl-track-mcp/internal/report"
	"github.com/vontell/toggl-track-mcp/internal/toggl"
)

// noTimerMessage is shared by the status and stop operations.
const noTimerMessage = "No timer is currently running."

// elapsed computes how long a running entry has been open, in the entry's
// own timezone. Distinct from the backend-reported duration, which is only
// meaningful once the entry is stopped.
func (s *Service) elapsed(e *toggl.TimeEntry) string {
	start, err := time.Parse(time.RFC3339, e.Start)
	if err != nil {
		return "Unknown duration"
	}
	now := s.now().In(start.Location())
	seconds := int(now.Sub(start).Seconds())
	return fmt.Sprintf("%dh %dm", seconds/3600, seconds%3600/60)
}

// projectNameFor resolves an entry's project id to a display name, fetching
// the project list only when the entry actually has a project.
func projectNameFor(ctx context.Context, api API, e *toggl.TimeEntry) (string, error) {
	if e.ProjectID == nil {
		return names.NoProject, nil
	}
	projects, err := api.GetProjects(ctx)
	if err != nil {
		return "", err
	}
	return names.NewIndex(projects).NameForID(e.ProjectID), nil
}

// CurrentTimer reports the running entry, if any.
func (s *Service) CurrentTimer(ctx context.Context) (string, error) {
	api, err := s.api()
	if err != nil {
		return "", err
	}

	entry, err := api.GetCurrentTimeEntry(ctx)
	if err != nil {
		return "", err
	}
	if entry == nil {
		return noTimerMessage, nil
	}

	projectName, err := projectNameFor(ctx, api, entry)
	if err != nil {
		return "", err
	}
	return report.RenderCurrentTimer(*entry, projectName, s.elapsed(entry)), nil
}

// StartTimer creates a running entry in the default workspace. An
// unresolvable project name reports the available names and performs no
// mutation.
func (s *Service) StartTimer(ctx context.Context, description, projectName string) (string, error) {
	api, err := s.api()
	if err != nil {
		return "", err
	}

	workspaces, err := api.GetWorkspaces(ctx)
	if err != nil {
		return "", err
	}
	if len(workspaces) == 0 {
		return "No workspaces found. Cannot start timer.", nil
	}

	workspace, ok := s.pickWorkspace(workspaces)
	if !ok {
		return fmt.Sprintf("Configured workspace %d not found in your account.", s.cfg.DefaultWorkspaceID), nil
	}

	var projectID *int
	displayName := names.NoProject
	if projectName != "" {
		projects, err := api.GetProjects(ctx)
		if err != nil {
			return "", err
		}
		ix := names.NewIndex(projects)
		p, found := ix.Project(projectName)
		if !found {
			return ix.NotFoundMessage(projectName), nil
		}
		projectID = &p.ID
		displayName = projectName
	}

	entry, err := api.StartTimeEntry(ctx, toggl.StartTimeEntryRequest{
		CreatedWith: createdWith,
		Description: description,
		WorkspaceID: workspace.ID,
		ProjectID:   projectID,
		Duration:    -1,
		Start:       s.now().UTC().Format(time.RFC3339),
		Stop:        nil,
		Tags:        []string{},
		Billable:    false,
	})
	if err != nil {
		return "", err
	}

	return report.RenderTimerStarted(*entry, displayName, workspace.Name), nil
}

// pickWorkspace selects the configured default workspace, or the first one
// when no default is set.
func (s *Service) pickWorkspace(workspaces []toggl.Workspace) (toggl.Workspace, bool) {
	if s.cfg.DefaultWorkspaceID == 0 {
		return workspaces[0], true
	}
	for _, w := range workspaces {
		if w.ID == s.cfg.DefaultWorkspaceID {
			return w, true
		}
	}
	return toggl.Workspace{}, false
}

// StopTimer stops the running entry. The final duration comes from the
// backend's response. If the running entry changes between the read and the
// stop call, the backend arbitrates; no optimistic-concurrency check here.
func (s *Service) StopTimer(ctx context.Context) (string, error) {
	api, err := s.api()
	if err != nil {
		return "", err
	}

	entry, err := api.GetCurrentTimeEntry(ctx)
	if err != nil {
		return "", err
	}
	if entry == nil {
		return noTimerMessage, nil
	}

	workspaces, err := api.GetWorkspaces(ctx)
	if err != nil {
		return "", err
	}
	found := false
	for _, w := range workspaces {
		if w.ID == entry.WorkspaceID {
			found = true
			break
		}
	}
	if !found {
		return "Could not determine workspace for current timer.", nil
	}

	stopped, err := api.StopTimeEntry(ctx, entry.WorkspaceID, entry.ID)
	if err != nil {
		return "", err
	}

	projectName, err := projectNameFor(ctx, api, entry)
	if err != nil {
		return "", err
	}
	return report.RenderTimerStopped(*stopped, projectName), nil
}
