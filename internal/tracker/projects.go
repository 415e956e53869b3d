package tracker

import (
	"context"

	"github.com/vontell/toggl-track-mcp/internal/report"
)

// Projects lists all projects in the account.
func (s *Service) Projects(ctx context.Context) (string, error) {
	api, err := s.api()
	if err != nil {
		return "", err
	}

	projects, err := api.GetProjects(ctx)
	if err != nil {
		return "", err
	}
	return report.RenderProjects(projects), nil
}

// Workspaces lists all workspaces in the account.
func (s *Service) Workspaces(ctx context.Context) (string, error) {
	api, err := s.api()
	if err != nil {
		return "", err
	}

	workspaces, err := api.GetWorkspaces(ctx)
	if err != nil {
		return "", err
	}
	return report.RenderWorkspaces(workspaces), nil
}
