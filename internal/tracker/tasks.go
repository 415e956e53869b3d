package tracker

import (
	"context"

	"github.com/vontell/toggl-track-mcp/internal/logging"
	"github.com/vontell/toggl-track-mcp/internal/names"
	"github.com/vontell/toggl-track-mcp/internal/report"
	"github.com/vontell/toggl-track-mcp/internal/toggl"
)

// ProjectTasks lists the tasks of a single project.
func (s *Service) ProjectTasks(ctx context.Context, projectName string) (string, error) {
	api, err := s.api()
	if err != nil {
		return "", err
	}

	projects, err := api.GetProjects(ctx)
	if err != nil {
		return "", err
	}
	ix := names.NewIndex(projects)
	p, ok := ix.Project(projectName)
	if !ok {
		return ix.NotFoundMessage(projectName), nil
	}

	tasks, err := api.GetTasks(ctx, p.WorkspaceID, p.ID)
	if err != nil {
		return "", err
	}
	return report.RenderProjectTasks(projectName, tasks), nil
}

// CreateTask creates a task under a project. Estimated hours convert to
// whole seconds; zero or negative means no estimate.
func (s *Service) CreateTask(ctx context.Context, projectName, taskName string, estimatedHours float64) (string, error) {
	api, err := s.api()
	if err != nil {
		return "", err
	}

	projects, err := api.GetProjects(ctx)
	if err != nil {
		return "", err
	}
	ix := names.NewIndex(projects)
	p, ok := ix.Project(projectName)
	if !ok {
		return ix.NotFoundMessage(projectName), nil
	}

	var estimatedSeconds *int
	if estimatedHours > 0 {
		secs := int(estimatedHours * 3600)
		estimatedSeconds = &secs
	}

	task, err := api.CreateTask(ctx, p.WorkspaceID, p.ID, toggl.CreateTaskRequest{
		Name:             taskName,
		Active:           true,
		EstimatedSeconds: estimatedSeconds,
	})
	if err != nil {
		return "", err
	}
	return report.RenderTaskCreated(*task, projectName, estimatedHours), nil
}

// AllTasks enumerates tasks across every project. A failure fetching one
// project's tasks skips that project; enumeration continues.
func (s *Service) AllTasks(ctx context.Context) (string, error) {
	api, err := s.api()
	if err != nil {
		return "", err
	}

	workspaces, err := api.GetWorkspaces(ctx)
	if err != nil {
		return "", err
	}
	if len(workspaces) == 0 {
		return "No workspaces found.", nil
	}

	projects, err := api.GetProjects(ctx)
	if err != nil {
		return "", err
	}
	if len(projects) == 0 {
		return "No projects found.", nil
	}

	workspaceNames := make(map[int]string, len(workspaces))
	for _, w := range workspaces {
		workspaceNames[w.ID] = w.Name
	}

	var sections []report.ProjectTasks
	for _, p := range projects {
		tasks, err := api.GetTasks(ctx, p.WorkspaceID, p.ID)
		if err != nil {
			// Projects without tasks enabled are expected to fail here.
			logging.Debug("tracker", "skipping tasks for project %q: %v", p.Name, err)
			continue
		}
		sections = append(sections, report.ProjectTasks{
			ProjectName:   p.Name,
			WorkspaceName: workspaceName(workspaceNames, p.WorkspaceID),
			Tasks:         tasks,
		})
	}
	return report.RenderAllTasks(sections), nil
}

func workspaceName(byID map[int]string, id int) string {
	if name, ok := byID[id]; ok {
		return name
	}
	return "Unknown Workspace"
}
