package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vontell/toggl-track-mcp/internal/prompts"
)

// textPrompt wraps a single-message prompt builder as a prompt handler.
func textPrompt(description string, build func(args map[string]string) string) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(build(req.Params.Arguments))),
		}), nil
	}
}

// conversationPrompt wraps a multi-message prompt builder.
func conversationPrompt(description string, build func(args map[string]string) []prompts.Message) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		var messages []mcp.PromptMessage
		for _, m := range build(req.Params.Arguments) {
			role := mcp.RoleUser
			if m.Role == prompts.RoleAssistant {
				role = mcp.RoleAssistant
			}
			messages = append(messages, mcp.NewPromptMessage(role, mcp.NewTextContent(m.Text)))
		}
		return mcp.NewGetPromptResult(description, messages), nil
	}
}

func argOr(args map[string]string, key, fallback string) string {
	if v := args[key]; v != "" {
		return v
	}
	return fallback
}

// requiredArg returns the argument value or a placeholder naming the gap, so
// a host that skips required arguments still gets a usable prompt.
func requiredArg(args map[string]string, key string) string {
	return argOr(args, key, fmt.Sprintf("<missing %s>", key))
}

func registerPrompts(s *server.MCPServer) {
	s.AddPrompt(mcp.NewPrompt("start_time_tracking",
		mcp.WithPromptDescription("Generate a prompt to start time tracking for a project"),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Project to track time for"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("description",
			mcp.ArgumentDescription("Optional description of the work"),
		),
	), textPrompt("Start time tracking", func(args map[string]string) string {
		return prompts.StartTimeTracking(requiredArg(args, "project_name"), args["description"])
	}))

	s.AddPrompt(mcp.NewPrompt("weekly_time_report",
		mcp.WithPromptDescription("Generate a prompt to request a weekly time report"),
	), textPrompt("Weekly time report", func(args map[string]string) string {
		return prompts.WeeklyTimeReport()
	}))

	s.AddPrompt(mcp.NewPrompt("project_time_analysis",
		mcp.WithPromptDescription("Generate a structured conversation for project time analysis"),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Project to analyze"),
			mcp.RequiredArgument(),
		),
	), conversationPrompt("Project time analysis", func(args map[string]string) []prompts.Message {
		return prompts.ProjectTimeAnalysis(requiredArg(args, "project_name"))
	}))

	s.AddPrompt(mcp.NewPrompt("optimize_workflow",
		mcp.WithPromptDescription("Generate a prompt for workflow optimization based on time tracking data"),
	), textPrompt("Optimize workflow", func(args map[string]string) string {
		return prompts.OptimizeWorkflow()
	}))

	s.AddPrompt(mcp.NewPrompt("project_overview",
		mcp.WithPromptDescription("Generate a prompt to get an overview of all projects"),
	), textPrompt("Project overview", func(args map[string]string) string {
		return prompts.ProjectOverview()
	}))

	s.AddPrompt(mcp.NewPrompt("detailed_time_report",
		mcp.WithPromptDescription("Generate a prompt for a detailed time report"),
		mcp.WithArgument("start_date",
			mcp.ArgumentDescription("Start date in YYYY-MM-DD format"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("end_date",
			mcp.ArgumentDescription("Optional end date in YYYY-MM-DD format"),
		),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Optional project to filter by"),
		),
	), textPrompt("Detailed time report", func(args map[string]string) string {
		return prompts.DetailedTimeReport(requiredArg(args, "start_date"), args["end_date"], args["project_name"])
	}))

	s.AddPrompt(mcp.NewPrompt("time_summary_report",
		mcp.WithPromptDescription("Generate a prompt for a time summary over recent days"),
		mcp.WithArgument("days",
			mcp.ArgumentDescription("Number of days to cover (default 7)"),
		),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Optional project to filter by"),
		),
	), textPrompt("Time summary report", func(args map[string]string) string {
		return prompts.TimeSummaryReport(argOr(args, "days", "7"), args["project_name"])
	}))

	s.AddPrompt(mcp.NewPrompt("productivity_analysis",
		mcp.WithPromptDescription("Generate a structured conversation for productivity analysis"),
		mcp.WithArgument("period",
			mcp.ArgumentDescription("Period to analyze, e.g. week or month (default week)"),
		),
	), conversationPrompt("Productivity analysis", func(args map[string]string) []prompts.Message {
		return prompts.ProductivityAnalysis(argOr(args, "period", "week"))
	}))

	s.AddPrompt(mcp.NewPrompt("current_status_check",
		mcp.WithPromptDescription("Generate a prompt to check current timer status and today's work"),
	), textPrompt("Current status check", func(args map[string]string) string {
		return prompts.CurrentStatusCheck()
	}))

	s.AddPrompt(mcp.NewPrompt("project_deep_dive",
		mcp.WithPromptDescription("Generate a prompt for an in-depth single-project analysis"),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Project to analyze"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("days",
			mcp.ArgumentDescription("Number of days to cover (default 30)"),
		),
	), textPrompt("Project deep dive", func(args map[string]string) string {
		return prompts.ProjectDeepDive(requiredArg(args, "project_name"), argOr(args, "days", "30"))
	}))

	s.AddPrompt(mcp.NewPrompt("search_by_description",
		mcp.WithPromptDescription("Generate a prompt to search time entries by description"),
		mcp.WithArgument("query",
			mcp.ArgumentDescription("Text to search for"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("days",
			mcp.ArgumentDescription("Number of days to cover (default 30)"),
		),
	), textPrompt("Search by description", func(args map[string]string) string {
		return prompts.SearchByDescription(requiredArg(args, "query"), argOr(args, "days", "30"))
	}))

	s.AddPrompt(mcp.NewPrompt("quick_start_timer",
		mcp.WithPromptDescription("Generate a prompt to quickly start a timer"),
		mcp.WithArgument("description",
			mcp.ArgumentDescription("What to work on"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Optional project to assign the timer to"),
		),
	), textPrompt("Quick start timer", func(args map[string]string) string {
		return prompts.QuickStartTimer(requiredArg(args, "description"), args["project_name"])
	}))

	s.AddPrompt(mcp.NewPrompt("stop_and_start_new",
		mcp.WithPromptDescription("Generate a prompt to stop the current timer and start a new one"),
		mcp.WithArgument("new_description",
			mcp.ArgumentDescription("Description for the new timer"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Optional project for the new timer"),
		),
	), textPrompt("Stop and start new timer", func(args map[string]string) string {
		return prompts.StopAndStartNew(requiredArg(args, "new_description"), args["project_name"])
	}))

	s.AddPrompt(mcp.NewPrompt("timer_status_and_control",
		mcp.WithPromptDescription("Generate a prompt to check timer status with follow-up actions"),
	), textPrompt("Timer status and control", func(args map[string]string) string {
		return prompts.TimerStatusAndControl()
	}))

	s.AddPrompt(mcp.NewPrompt("work_session_timer",
		mcp.WithPromptDescription("Generate a prompt to start a focused work session"),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Project to work on"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("duration",
			mcp.ArgumentDescription("Session length, e.g. 1 hour (default 1 hour)"),
		),
	), textPrompt("Work session timer", func(args map[string]string) string {
		return prompts.WorkSessionTimer(requiredArg(args, "project_name"), argOr(args, "duration", "1 hour"))
	}))

	s.AddPrompt(mcp.NewPrompt("view_project_tasks",
		mcp.WithPromptDescription("Generate a prompt to view all tasks for a project"),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Project to list tasks for"),
			mcp.RequiredArgument(),
		),
	), textPrompt("View project tasks", func(args map[string]string) string {
		return prompts.ViewProjectTasks(requiredArg(args, "project_name"))
	}))

	s.AddPrompt(mcp.NewPrompt("create_new_task",
		mcp.WithPromptDescription("Generate a prompt to create a new task for a project"),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Project to create the task under"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("task_name",
			mcp.ArgumentDescription("Name of the new task"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("estimated_hours",
			mcp.ArgumentDescription("Optional estimated hours"),
		),
	), textPrompt("Create new task", func(args map[string]string) string {
		return prompts.CreateNewTask(requiredArg(args, "project_name"), requiredArg(args, "task_name"), args["estimated_hours"])
	}))

	s.AddPrompt(mcp.NewPrompt("task_planning_session",
		mcp.WithPromptDescription("Generate a prompt for a task planning session"),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Project to plan tasks for"),
			mcp.RequiredArgument(),
		),
	), textPrompt("Task planning session", func(args map[string]string) string {
		return prompts.TaskPlanningSession(requiredArg(args, "project_name"))
	}))

	s.AddPrompt(mcp.NewPrompt("project_task_overview",
		mcp.WithPromptDescription("Generate a prompt for an overview of tasks across all projects"),
	), textPrompt("Project task overview", func(args map[string]string) string {
		return prompts.ProjectTaskOverview()
	}))

	s.AddPrompt(mcp.NewPrompt("list_all_tasks",
		mcp.WithPromptDescription("Generate a prompt to list all tasks across all projects"),
	), textPrompt("List all tasks", func(args map[string]string) string {
		return prompts.ListAllTasks()
	}))
}
