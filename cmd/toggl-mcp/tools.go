package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vontell/toggl-track-mcp/internal/toggl"
	"github.com/vontell/toggl-track-mcp/internal/tracker"
)

// toolError maps a service failure to a tool-result error message. A missing
// token is a configuration problem, everything else is reported under the
// failed action.
func toolError(action string, err error) *mcp.CallToolResult {
	if errors.Is(err, toggl.ErrMissingToken) {
		return mcp.NewToolResultError(fmt.Sprintf("Configuration error: %v", err))
	}
	return mcp.NewToolResultError(fmt.Sprintf("Error %s: %v", action, err))
}

func registerTools(s *server.MCPServer, svc *tracker.Service) {
	s.AddTool(getProjectsTool(), handleGetProjects(svc))
	s.AddTool(getWorkspacesTool(), handleGetWorkspaces(svc))
	s.AddTool(getTimeEntriesTool(), handleGetTimeEntries(svc))
	s.AddTool(getTimeSummaryTool(), handleGetTimeSummary(svc))
	s.AddTool(searchTimeEntriesTool(), handleSearchTimeEntries(svc))
	s.AddTool(getCurrentTimerTool(), handleGetCurrentTimer(svc))
	s.AddTool(startTimerTool(), handleStartTimer(svc))
	s.AddTool(stopCurrentTimerTool(), handleStopCurrentTimer(svc))
	s.AddTool(getProjectTasksTool(), handleGetProjectTasks(svc))
	s.AddTool(createProjectTaskTool(), handleCreateProjectTask(svc))
	s.AddTool(getAllTasksTool(), handleGetAllTasks(svc))
}

func getProjectsTool() mcp.Tool {
	return mcp.NewTool("get_projects",
		mcp.WithDescription("Get all projects from Toggl Track. Returns a formatted list of projects with their details."),
	)
}

func handleGetProjects(svc *tracker.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := svc.Projects(ctx)
		if err != nil {
			return toolError("fetching projects", err), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func getWorkspacesTool() mcp.Tool {
	return mcp.NewTool("get_workspaces",
		mcp.WithDescription("Get all workspaces from Toggl Track."),
	)
}

func handleGetWorkspaces(svc *tracker.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := svc.Workspaces(ctx)
		if err != nil {
			return toolError("fetching workspaces", err), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func getTimeEntriesTool() mcp.Tool {
	return mcp.NewTool("get_time_entries",
		mcp.WithDescription("Get time entries from Toggl Track, grouped by date with daily totals. Defaults to the last 7 days when no dates are given."),
		mcp.WithString("start_date",
			mcp.Description("Start date in YYYY-MM-DD format (optional)"),
		),
		mcp.WithString("end_date",
			mcp.Description("End date in YYYY-MM-DD format (optional)"),
		),
		mcp.WithString("project_name",
			mcp.Description("Filter entries to a single project by name (optional)"),
		),
	)
}

func handleGetTimeEntries(svc *tracker.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		startDate, _ := args["start_date"].(string)
		endDate, _ := args["end_date"].(string)
		projectName, _ := args["project_name"].(string)

		out, err := svc.Entries(ctx, startDate, endDate, projectName)
		if err != nil {
			return toolError("fetching time entries", err), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func getTimeSummaryTool() mcp.Tool {
	return mcp.NewTool("get_time_summary",
		mcp.WithDescription("Get a time summary by project with total hours and percentage shares. Running entries are excluded from totals."),
		mcp.WithString("start_date",
			mcp.Description("Start date in YYYY-MM-DD format (optional)"),
		),
		mcp.WithString("end_date",
			mcp.Description("End date in YYYY-MM-DD format (optional)"),
		),
		mcp.WithString("project_name",
			mcp.Description("Limit the summary to a single project by name (optional)"),
		),
	)
}

func handleGetTimeSummary(svc *tracker.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		startDate, _ := args["start_date"].(string)
		endDate, _ := args["end_date"].(string)
		projectName, _ := args["project_name"].(string)

		out, err := svc.Summary(ctx, startDate, endDate, projectName)
		if err != nil {
			return toolError("generating time summary", err), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func searchTimeEntriesTool() mcp.Tool {
	return mcp.NewTool("search_time_entries",
		mcp.WithDescription("Search time entries by description text (case-insensitive). Defaults to the last 30 days when no dates are given."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for in entry descriptions"),
		),
		mcp.WithString("start_date",
			mcp.Description("Start date in YYYY-MM-DD format (optional)"),
		),
		mcp.WithString("end_date",
			mcp.Description("End date in YYYY-MM-DD format (optional)"),
		),
	)
}

func handleSearchTimeEntries(svc *tracker.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		query, _ := args["query"].(string)
		startDate, _ := args["start_date"].(string)
		endDate, _ := args["end_date"].(string)

		if query == "" {
			return mcp.NewToolResultError("query is required"), nil
		}

		out, err := svc.Search(ctx, query, startDate, endDate)
		if err != nil {
			return toolError("searching time entries", err), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func getCurrentTimerTool() mcp.Tool {
	return mcp.NewTool("get_current_timer",
		mcp.WithDescription("Get the currently running timer, if any, with its elapsed time."),
	)
}

func handleGetCurrentTimer(svc *tracker.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := svc.CurrentTimer(ctx)
		if err != nil {
			return toolError("fetching current timer", err), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func startTimerTool() mcp.Tool {
	return mcp.NewTool("start_timer",
		mcp.WithDescription("Start a new timer in Toggl Track, optionally assigned to a project by name."),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("What you are working on"),
		),
		mcp.WithString("project_name",
			mcp.Description("Project to assign the timer to, by name (optional)"),
		),
	)
}

func handleStartTimer(svc *tracker.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		description, _ := args["description"].(string)
		projectName, _ := args["project_name"].(string)

		if description == "" {
			return mcp.NewToolResultError("description is required"), nil
		}

		out, err := svc.StartTimer(ctx, description, projectName)
		if err != nil {
			return toolError("starting timer", err), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func stopCurrentTimerTool() mcp.Tool {
	return mcp.NewTool("stop_current_timer",
		mcp.WithDescription("Stop the currently running timer and report its final duration."),
	)
}

func handleStopCurrentTimer(svc *tracker.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := svc.StopTimer(ctx)
		if err != nil {
			return toolError("stopping timer", err), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func getProjectTasksTool() mcp.Tool {
	return mcp.NewTool("get_project_tasks",
		mcp.WithDescription("Get all tasks for a project, with status and estimated time."),
		mcp.WithString("project_name",
			mcp.Required(),
			mcp.Description("Project name to list tasks for"),
		),
	)
}

func handleGetProjectTasks(svc *tracker.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		projectName, _ := args["project_name"].(string)

		if projectName == "" {
			return mcp.NewToolResultError("project_name is required"), nil
		}

		out, err := svc.ProjectTasks(ctx, projectName)
		if err != nil {
			return toolError("fetching tasks", err), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func createProjectTaskTool() mcp.Tool {
	return mcp.NewTool("create_project_task",
		mcp.WithDescription("Create a new task under a project, with an optional time estimate in hours. Requires a paid Toggl Track plan."),
		mcp.WithString("project_name",
			mcp.Required(),
			mcp.Description("Project to create the task under, by name"),
		),
		mcp.WithString("task_name",
			mcp.Required(),
			mcp.Description("Name of the new task"),
		),
		mcp.WithNumber("estimated_hours",
			mcp.Description("Estimated hours for the task (optional)"),
		),
	)
}

func handleCreateProjectTask(svc *tracker.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		projectName, _ := args["project_name"].(string)
		taskName, _ := args["task_name"].(string)
		estimatedHours, _ := args["estimated_hours"].(float64)

		if projectName == "" {
			return mcp.NewToolResultError("project_name is required"), nil
		}
		if taskName == "" {
			return mcp.NewToolResultError("task_name is required"), nil
		}

		out, err := svc.CreateTask(ctx, projectName, taskName, estimatedHours)
		if err != nil {
			return toolError("creating task", err), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func getAllTasksTool() mcp.Tool {
	return mcp.NewTool("get_all_tasks",
		mcp.WithDescription("Get all tasks across every project, organized by project."),
	)
}

func handleGetAllTasks(svc *tracker.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := svc.AllTasks(ctx)
		if err != nil {
			return toolError("fetching all tasks", err), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}
