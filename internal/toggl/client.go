package toggl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultBaseURL = "https://api.track.toggl.com/api/v9"

// basicAuthPassword is the fixed password Toggl expects alongside the API
// token in the Basic auth pair (token:api_token). Not standard Basic auth.
const basicAuthPassword = "api_token"

// APIError is a non-success response from the Toggl API. The current-entry
// 404 is handled separately and never surfaces as an APIError.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("toggl API error (%d): %s", e.StatusCode, e.Body)
}

// Client is a Toggl Track v9 API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// ErrMissingToken is returned when no credential is configured. It is
// surfaced per call, not at startup, so the server can come up without one.
var ErrMissingToken = errors.New("TOGGL_API_TOKEN environment variable is required. " +
	"Get your API token from your Toggl Track profile settings.")

// NewClient creates a client from the TOGGL_API_TOKEN env var.
func NewClient() (*Client, error) {
	token := os.Getenv("TOGGL_API_TOKEN")
	if token == "" {
		return nil, ErrMissingToken
	}
	return NewClientWithToken(token), nil
}

// NewClientWithToken creates a client with an explicit token.
func NewClientWithToken(token string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// request makes an authenticated request and returns the response body.
// Any status outside 2xx comes back as *APIError carrying status and body.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(c.token, basicAuthPassword)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

// GetWorkspaces returns all workspaces for the authenticated user.
func (c *Client) GetWorkspaces(ctx context.Context) ([]Workspace, error) {
	data, err := c.request(ctx, http.MethodGet, "/workspaces", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get workspaces: %w", err)
	}

	var workspaces []Workspace
	if err := json.Unmarshal(data, &workspaces); err != nil {
		return nil, fmt.Errorf("unmarshal workspaces: %w", err)
	}
	return workspaces, nil
}

// GetProjects returns all projects for the authenticated user.
func (c *Client) GetProjects(ctx context.Context) ([]Project, error) {
	data, err := c.request(ctx, http.MethodGet, "/me/projects", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get projects: %w", err)
	}

	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("unmarshal projects: %w", err)
	}
	return projects, nil
}

// GetTimeEntries returns time entries between two inclusive calendar dates
// (YYYY-MM-DD). If projectIDs is non-empty the result is filtered to those
// projects client-side; the API cannot filter by multiple ids in one call.
func (c *Client) GetTimeEntries(ctx context.Context, startDate, endDate string, projectIDs []int) ([]TimeEntry, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}

	data, err := c.request(ctx, http.MethodGet, "/me/time_entries", query, nil)
	if err != nil {
		return nil, fmt.Errorf("get time entries: %w", err)
	}

	var entries []TimeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal time entries: %w", err)
	}

	if len(projectIDs) == 0 {
		return entries, nil
	}

	wanted := make(map[int]bool, len(projectIDs))
	for _, id := range projectIDs {
		wanted[id] = true
	}
	var filtered []TimeEntry
	for _, e := range entries {
		if e.ProjectID != nil && wanted[*e.ProjectID] {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// GetCurrentTimeEntry returns the running entry, or nil if none is running.
// The API signals absence with a 404 or a null body; neither is an error.
func (c *Client) GetCurrentTimeEntry(ctx context.Context) (*TimeEntry, error) {
	data, err := c.request(ctx, http.MethodGet, "/me/time_entries/current", nil, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get current time entry: %w", err)
	}

	if string(bytes.TrimSpace(data)) == "null" {
		return nil, nil
	}

	var entry TimeEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unmarshal current time entry: %w", err)
	}
	return &entry, nil
}

// StartTimeEntry creates a new running time entry in the given workspace.
func (c *Client) StartTimeEntry(ctx context.Context, req StartTimeEntryRequest) (*TimeEntry, error) {
	path := fmt.Sprintf("/workspaces/%d/time_entries", req.WorkspaceID)
	data, err := c.request(ctx, http.MethodPost, path, nil, req)
	if err != nil {
		return nil, fmt.Errorf("start timer: %w", err)
	}

	var entry TimeEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unmarshal started entry: %w", err)
	}
	return &entry, nil
}

// StopTimeEntry stops a running entry. The returned entry carries the
// backend-computed final duration.
func (c *Client) StopTimeEntry(ctx context.Context, workspaceID, entryID int) (*TimeEntry, error) {
	path := fmt.Sprintf("/workspaces/%d/time_entries/%d/stop", workspaceID, entryID)
	data, err := c.request(ctx, http.MethodPatch, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("stop timer: %w", err)
	}

	var entry TimeEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unmarshal stopped entry: %w", err)
	}
	return &entry, nil
}

// GetTasks returns all tasks for a project.
func (c *Client) GetTasks(ctx context.Context, workspaceID, projectID int) ([]Task, error) {
	path := fmt.Sprintf("/workspaces/%d/projects/%d/tasks", workspaceID, projectID)
	data, err := c.request(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get tasks: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("unmarshal tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a new task under a project.
func (c *Client) CreateTask(ctx context.Context, workspaceID, projectID int, req CreateTaskRequest) (*Task, error) {
	path := fmt.Sprintf("/workspaces/%d/projects/%d/tasks", workspaceID, projectID)
	data, err := c.request(ctx, http.MethodPost, path, nil, req)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	var task Task
	if err := json.Unmarshal(data, &task); err != nil {
		return nil, fmt.Errorf("unmarshal created task: %w", err)
	}
	return &task, nil
}
