// Package tracker orchestrates tool invocations: it resolves dates and
// project names, calls the Toggl API, aggregates, and returns the formatted
// text block each tool exposes. Domain-level "not found" outcomes (unknown
// project, no running timer) are normal text returns carrying the
// alternatives, not errors; only configuration and backend failures come
// back as errors.
package tracker

import (
	"context"
	"time"

	"github.com/vontell/toggl-track-mcp/internal/config"
	"github.com/vontell/toggl-track-mcp/internal/toggl"
)

// createdWith tags time entries created by this server.
const createdWith = "Toggl Track MCP Server"

// API is the slice of the Toggl client the service depends on.
type API interface {
	GetWorkspaces(ctx context.Context) ([]toggl.Workspace, error)
	GetProjects(ctx context.Context) ([]toggl.Project, error)
	GetTimeEntries(ctx context.Context, startDate, endDate string, projectIDs []int) ([]toggl.TimeEntry, error)
	GetCurrentTimeEntry(ctx context.Context) (*toggl.TimeEntry, error)
	StartTimeEntry(ctx context.Context, req toggl.StartTimeEntryRequest) (*toggl.TimeEntry, error)
	StopTimeEntry(ctx context.Context, workspaceID, entryID int) (*toggl.TimeEntry, error)
	GetTasks(ctx context.Context, workspaceID, projectID int) ([]toggl.Task, error)
	CreateTask(ctx context.Context, workspaceID, projectID int, req toggl.CreateTaskRequest) (*toggl.Task, error)
}

// Service implements the tool surface over an API client.
type Service struct {
	cfg    *config.Config
	now    func() time.Time
	newAPI func() (API, error)
}

// New creates a service that builds a fresh client per invocation from the
// environment. A missing token surfaces as an error on each call rather
// than crashing the server at startup.
func New(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
		now: time.Now,
		newAPI: func() (API, error) {
			client, err := toggl.NewClient()
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	}
}

// NewWithAPI creates a service with a fixed API and clock, for tests and
// embedding.
func NewWithAPI(cfg *config.Config, api API, now func() time.Time) *Service {
	return &Service{
		cfg:    cfg,
		now:    now,
		newAPI: func() (API, error) { return api, nil },
	}
}

func (s *Service) api() (API, error) {
	return s.newAPI()
}
