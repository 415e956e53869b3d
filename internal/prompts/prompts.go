// Package prompts builds the static prompt texts the server exposes to the
// host's prompting layer. Pure text generation; no network access.
package prompts

import "fmt"

// Role tags a message in a structured prompt.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a structured prompt conversation.
type Message struct {
	Role Role
	Text string
}

func user(text string) Message      { return Message{Role: RoleUser, Text: text} }
func assistant(text string) Message { return Message{Role: RoleAssistant, Text: text} }

// StartTimeTracking asks to start tracking time for a project.
func StartTimeTracking(projectName, description string) string {
	prompt := fmt.Sprintf("I want to start tracking time for the project '%s'", projectName)
	if description != "" {
		prompt += fmt.Sprintf(" with the description '%s'", description)
	}
	return prompt + ". Please help me start a new time entry using my Toggl Track account."
}

// WeeklyTimeReport requests a weekly time report.
func WeeklyTimeReport() string {
	return "Please generate a weekly time report showing my time entries, total hours worked, " +
		"and project breakdown for this week using my Toggl Track data."
}

// ProjectTimeAnalysis is a structured conversation for analyzing one
// project's time.
func ProjectTimeAnalysis(projectName string) []Message {
	return []Message{
		user(fmt.Sprintf("I need to analyze my time tracking for the project '%s'", projectName)),
		assistant("I'll help you analyze your time tracking data. Let me first get your projects " +
			"and recent time entries for this project."),
		user("Please show me the total hours, daily breakdown, and any patterns in my work " +
			"schedule for this project."),
	}
}

// OptimizeWorkflow asks for workflow suggestions from tracking data.
func OptimizeWorkflow() string {
	return "Based on my Toggl Track time tracking data, please analyze my work patterns and " +
		"suggest ways to optimize my workflow and improve productivity."
}

// ProjectOverview asks for an overview of all projects.
func ProjectOverview() string {
	return "Please show me all my Toggl Track projects and workspaces, organized in a clear " +
		"format with project details and current status."
}

// DetailedTimeReport asks for detailed entries over a range.
func DetailedTimeReport(startDate, endDate, projectName string) string {
	prompt := fmt.Sprintf("Please show me detailed time entries from %s", startDate)
	if endDate != "" {
		prompt += fmt.Sprintf(" to %s", endDate)
	}
	if projectName != "" {
		prompt += fmt.Sprintf(" for project '%s'", projectName)
	}
	return prompt + ". Include descriptions, durations, and daily breakdowns."
}

// TimeSummaryReport asks for project totals over a trailing window.
func TimeSummaryReport(days, projectName string) string {
	prompt := fmt.Sprintf("Please give me a time summary for the last %s days", days)
	if projectName != "" {
		prompt += fmt.Sprintf(" for project '%s'", projectName)
	}
	return prompt + ". Show total hours by project with percentages."
}

// ProductivityAnalysis is a structured conversation for productivity review.
func ProductivityAnalysis(period string) []Message {
	return []Message{
		user(fmt.Sprintf("I want to analyze my productivity for this %s", period)),
		assistant("I'll help you analyze your productivity patterns. Let me get your time " +
			"tracking data and current timer status."),
		user("Please show me my time distribution, most productive periods, and suggest improvements."),
	}
}

// CurrentStatusCheck asks about the running timer and today's work.
func CurrentStatusCheck() string {
	return "Please check my current timer status and show me what I've been working on today."
}

// ProjectDeepDive asks for an in-depth single-project analysis.
func ProjectDeepDive(projectName, days string) string {
	return fmt.Sprintf("Please provide a detailed analysis of my work on '%s' over the last %s days. "+
		"Include time patterns, task descriptions, and productivity insights.", projectName, days)
}

// SearchByDescription asks to search entries by description text.
func SearchByDescription(query, days string) string {
	return fmt.Sprintf("Please search my time entries for '%s' over the last %s days and show me "+
		"the total time spent on related activities.", query, days)
}

// QuickStartTimer asks to start a timer right away.
func QuickStartTimer(description, projectName string) string {
	prompt := fmt.Sprintf("Please start a timer with description '%s'", description)
	if projectName != "" {
		prompt += fmt.Sprintf(" for project '%s'", projectName)
	}
	return prompt + ". Confirm when the timer has started."
}

// StopAndStartNew asks to swap the running timer for a new one.
func StopAndStartNew(newDescription, projectName string) string {
	prompt := fmt.Sprintf("Please stop my current timer and start a new one with description '%s'", newDescription)
	if projectName != "" {
		prompt += fmt.Sprintf(" for project '%s'", projectName)
	}
	return prompt + ". Show me the duration of the stopped timer and confirm the new timer has started."
}

// TimerStatusAndControl asks for timer status with follow-up controls.
func TimerStatusAndControl() string {
	return "Please check my current timer status. If I have a timer running, show me the details " +
		"and ask if I want to stop it. If no timer is running, ask if I want to start one."
}

// WorkSessionTimer asks for a focused work session.
func WorkSessionTimer(projectName, duration string) string {
	return fmt.Sprintf("I want to start a focused %s work session on '%s'. Please start a timer "+
		"and remind me to take breaks.", duration, projectName)
}

// ViewProjectTasks asks for one project's tasks.
func ViewProjectTasks(projectName string) string {
	return fmt.Sprintf("Please show me all tasks for the project '%s' with their current status "+
		"and estimated time.", projectName)
}

// CreateNewTask asks to create a task under a project.
func CreateNewTask(projectName, taskName, estimatedHours string) string {
	prompt := fmt.Sprintf("Please create a new task called '%s' for project '%s'", taskName, projectName)
	if estimatedHours != "" {
		prompt += fmt.Sprintf(" with an estimated time of %s hours", estimatedHours)
	}
	return prompt + ". Confirm when the task has been created."
}

// TaskPlanningSession asks for help planning a project's tasks.
func TaskPlanningSession(projectName string) string {
	return fmt.Sprintf("I want to plan out tasks for the project '%s'. Please show me existing "+
		"tasks and help me create new ones based on the project requirements.", projectName)
}

// ProjectTaskOverview asks for a cross-project task overview.
func ProjectTaskOverview() string {
	return "Please give me an overview of tasks across all my projects. Show me which projects " +
		"have tasks, what needs attention, and help me prioritize my work."
}

// ListAllTasks asks for every task across all projects.
func ListAllTasks() string {
	return "Please show me all tasks across all my projects, organized by project. Include task " +
		"status and estimated time for each task."
}
