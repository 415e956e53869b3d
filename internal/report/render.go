package report

import (
	"fmt"
	"strings"

	"github.com/vontell/toggl-track-mcp/internal/names"
	"github.com/vontell/toggl-track-mcp/internal/toggl"
)

// Display fallbacks for absent fields.
const (
	noDescription = "No description"
	noClient      = "No client"
)

func describe(e toggl.TimeEntry) string {
	if e.Description == "" {
		return noDescription
	}
	return e.Description
}

// RenderProjects renders the project list.
func RenderProjects(projects []toggl.Project) string {
	if len(projects) == 0 {
		return "No projects found in your Toggl Track account."
	}

	var b strings.Builder
	b.WriteString("Your Toggl Track Projects:\n\n")
	for _, p := range projects {
		client := noClient
		if p.ClientName != nil && *p.ClientName != "" {
			client = *p.ClientName
		}
		private := "No"
		if p.IsPrivate {
			private = "Yes"
		}
		fmt.Fprintf(&b, "• **%s**\n", p.Name)
		fmt.Fprintf(&b, "  - Workspace ID: %d\n", p.WorkspaceID)
		fmt.Fprintf(&b, "  - Client: %s\n", client)
		fmt.Fprintf(&b, "  - Color: %s\n", p.Color)
		fmt.Fprintf(&b, "  - Private: %s\n\n", private)
	}
	return b.String()
}

// RenderWorkspaces renders the workspace list.
func RenderWorkspaces(workspaces []toggl.Workspace) string {
	if len(workspaces) == 0 {
		return "No workspaces found in your Toggl Track account."
	}

	var b strings.Builder
	b.WriteString("Your Toggl Track Workspaces:\n\n")
	for _, w := range workspaces {
		fmt.Fprintf(&b, "• **%s** (ID: %d)\n", w.Name, w.ID)
	}
	return b.String()
}

// RenderGroups renders daily groups as bullet lines with a per-day total.
// Shared by the entry listing and the description search.
func RenderGroups(b *strings.Builder, groups []DailyGroup, ix *names.Index) {
	for _, g := range groups {
		fmt.Fprintf(b, "**%s**\n", g.Date)
		for _, e := range g.Entries {
			fmt.Fprintf(b, "  • %s | %s | %s | %s\n",
				e.StartDisplay(), ix.NameForID(e.ProjectID), describe(e), FormatDuration(e.Duration))
		}
		if g.Total > 0 {
			fmt.Fprintf(b, "  **Daily Total: %s**\n", FormatTotal(g.Total))
		}
		b.WriteString("\n")
	}
}

// RenderEntries renders the grouped entry listing for a resolved range.
func RenderEntries(rangeDesc string, groups []DailyGroup, ix *names.Index) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Time Entries (%s):\n\n", rangeDesc)
	RenderGroups(&b, groups, ix)
	return b.String()
}

// RenderSearch renders description-search results with a matching total.
func RenderSearch(query, rangeDesc string, groups []DailyGroup, ix *names.Index) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Time Entries matching '%s' (%s):\n\n", query, rangeDesc)
	RenderGroups(&b, groups, ix)

	total := 0
	for _, g := range groups {
		total += g.Total
	}
	if total > 0 {
		fmt.Fprintf(&b, "**Total Time for '%s': %s**\n", query, FormatTotal(total))
	}
	return b.String()
}

// RenderSummary renders per-project totals with percentage shares.
func RenderSummary(rangeDesc string, totals []ProjectTotal, grand int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Time Summary (%s):\n\n", rangeDesc)
	for _, pt := range totals {
		fmt.Fprintf(&b, "• **%s**: %s (%.1f%%)\n", pt.Name, FormatTotal(pt.Seconds), pt.Percent)
	}
	fmt.Fprintf(&b, "\n**Total Time: %s**\n", FormatTotal(grand))
	return b.String()
}

// RenderCurrentTimer renders the running entry with its locally computed
// elapsed duration.
func RenderCurrentTimer(e toggl.TimeEntry, projectName, elapsed string) string {
	var b strings.Builder
	b.WriteString("**Currently Running Timer:**\n\n")
	fmt.Fprintf(&b, "• **Project**: %s\n", projectName)
	fmt.Fprintf(&b, "• **Description**: %s\n", describe(e))
	fmt.Fprintf(&b, "• **Duration**: %s\n", elapsed)
	fmt.Fprintf(&b, "• **Started**: %s\n", e.StartDisplay())
	return b.String()
}

// RenderTimerStarted confirms a started timer.
func RenderTimerStarted(e toggl.TimeEntry, projectName, workspaceName string) string {
	var b strings.Builder
	b.WriteString("**Timer Started Successfully!**\n\n")
	fmt.Fprintf(&b, "• **Description**: %s\n", describe(e))
	fmt.Fprintf(&b, "• **Project**: %s\n", projectName)
	fmt.Fprintf(&b, "• **Workspace**: %s\n", workspaceName)
	fmt.Fprintf(&b, "• **Started**: %s\n", e.StartDisplay())
	fmt.Fprintf(&b, "• **Timer ID**: %d\n", e.ID)
	return b.String()
}

// RenderTimerStopped confirms a stopped timer. The duration comes from the
// backend response, not a local recomputation.
func RenderTimerStopped(stopped toggl.TimeEntry, projectName string) string {
	duration := "Unknown duration"
	if stopped.Duration > 0 {
		duration = FormatTotal(stopped.Duration)
	}

	var b strings.Builder
	b.WriteString("**Timer Stopped Successfully!**\n\n")
	fmt.Fprintf(&b, "• **Description**: %s\n", describe(stopped))
	fmt.Fprintf(&b, "• **Project**: %s\n", projectName)
	fmt.Fprintf(&b, "• **Duration**: %s\n", duration)
	fmt.Fprintf(&b, "• **Started**: %s\n", stopped.StartDisplay())
	fmt.Fprintf(&b, "• **Stopped**: %s\n", stopped.StopDisplay())
	return b.String()
}

func renderTask(b *strings.Builder, t toggl.Task, indent string) {
	status := "Inactive"
	if t.Active {
		status = "Active"
	}
	fmt.Fprintf(b, "%s• **%s** (ID: %d)\n", indent, t.Name, t.ID)
	fmt.Fprintf(b, "%s  - Status: %s\n", indent, status)
	if t.EstimatedSeconds != nil && *t.EstimatedSeconds > 0 {
		fmt.Fprintf(b, "%s  - Estimated: %s\n", indent, FormatTotal(*t.EstimatedSeconds))
	}
}

// RenderProjectTasks renders one project's task list.
func RenderProjectTasks(projectName string, tasks []toggl.Task) string {
	if len(tasks) == 0 {
		return fmt.Sprintf("No tasks found for project '%s'.", projectName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tasks for project '%s':\n\n", projectName)
	for _, t := range tasks {
		renderTask(&b, t, "")
		b.WriteString("\n")
	}
	return b.String()
}

// RenderTaskCreated confirms a created task.
func RenderTaskCreated(t toggl.Task, projectName string, estimatedHours float64) string {
	status := "Inactive"
	if t.Active {
		status = "Active"
	}

	var b strings.Builder
	b.WriteString("**Task Created Successfully!**\n\n")
	fmt.Fprintf(&b, "• **Task Name**: %s\n", t.Name)
	fmt.Fprintf(&b, "• **Project**: %s\n", projectName)
	fmt.Fprintf(&b, "• **Task ID**: %d\n", t.ID)
	fmt.Fprintf(&b, "• **Status**: %s\n", status)
	if estimatedHours > 0 {
		fmt.Fprintf(&b, "• **Estimated Time**: %gh\n", estimatedHours)
	}
	return b.String()
}

// ProjectTasks pairs a project with its tasks for the all-tasks listing.
type ProjectTasks struct {
	ProjectName   string
	WorkspaceName string
	Tasks         []toggl.Task
}

// RenderAllTasks renders tasks across all projects, grouped per project.
func RenderAllTasks(sections []ProjectTasks) string {
	var b strings.Builder
	b.WriteString("All Tasks Across Projects:\n\n")

	total := 0
	for _, s := range sections {
		if len(s.Tasks) == 0 {
			continue
		}
		fmt.Fprintf(&b, "**%s** (%s)\n", s.ProjectName, s.WorkspaceName)
		for _, t := range s.Tasks {
			renderTask(&b, t, "  ")
			total++
		}
		b.WriteString("\n")
	}

	if total == 0 {
		return "No tasks found across any projects."
	}
	fmt.Fprintf(&b, "**Total Tasks Found: %d**\n", total)
	return b.String()
}
