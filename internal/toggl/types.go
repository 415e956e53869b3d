package toggl

import "strings"

// Workspace is a top-level account partition containing projects and entries.
type Workspace struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Project is a Toggl Track project. Names are not guaranteed unique; id is.
type Project struct {
	ID          int     `json:"id"`
	WorkspaceID int     `json:"workspace_id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	IsPrivate   bool    `json:"is_private"`
	Active      bool    `json:"active"`
	ClientName  *string `json:"client_name"`
}

// TimeEntry is a tracked interval. Duration -1 marks the single currently
// running entry; closed entries have Duration >= 0 and a Stop timestamp.
type TimeEntry struct {
	ID          int      `json:"id"`
	WorkspaceID int      `json:"workspace_id"`
	ProjectID   *int     `json:"project_id"`
	Description string   `json:"description"`
	Start       string   `json:"start"` // ISO-8601 UTC, 'Z'-suffixed
	Stop        *string  `json:"stop"`
	Duration    int      `json:"duration"` // seconds; -1 while running
	Tags        []string `json:"tags,omitempty"`
	Billable    bool     `json:"billable"`
}

// Running reports whether the entry is still open.
func (e *TimeEntry) Running() bool {
	return e.Duration < 0
}

// DateKey returns the calendar-date prefix of the start timestamp
// (YYYY-MM-DD), or "" if the entry has no start.
func (e *TimeEntry) DateKey() string {
	if len(e.Start) < 10 {
		return ""
	}
	return e.Start[:10]
}

// StartDisplay returns "YYYY-MM-DD HH:MM" for display, or "" if no start.
func (e *TimeEntry) StartDisplay() string {
	return timestampDisplay(e.Start)
}

// StopDisplay is StartDisplay for the stop timestamp.
func (e *TimeEntry) StopDisplay() string {
	if e.Stop == nil {
		return ""
	}
	return timestampDisplay(*e.Stop)
}

func timestampDisplay(ts string) string {
	if len(ts) < 16 {
		return ts
	}
	return strings.Replace(ts[:16], "T", " ", 1)
}

// Task belongs to a project. Created here, never updated or deleted.
type Task struct {
	ID               int    `json:"id"`
	ProjectID        int    `json:"project_id"`
	WorkspaceID      int    `json:"workspace_id"`
	Name             string `json:"name"`
	Active           bool   `json:"active"`
	EstimatedSeconds *int   `json:"estimated_seconds"`
}

// StartTimeEntryRequest is the body for creating a running time entry.
type StartTimeEntryRequest struct {
	CreatedWith string   `json:"created_with"`
	Description string   `json:"description"`
	WorkspaceID int      `json:"workspace_id"`
	ProjectID   *int     `json:"project_id,omitempty"`
	Duration    int      `json:"duration"` // -1 = running
	Start       string   `json:"start"`
	Stop        *string  `json:"stop"`
	Tags        []string `json:"tags"`
	Billable    bool     `json:"billable"`
}

// CreateTaskRequest is the body for creating a project task.
type CreateTaskRequest struct {
	Name             string `json:"name"`
	Active           bool   `json:"active"`
	EstimatedSeconds *int   `json:"estimated_seconds,omitempty"`
}
