package toggl

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient returns a client pointed at a fake API server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClientWithToken("secret-token")
	c.baseURL = srv.URL
	return c
}

func TestRequestAuthHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`[]`))
	})

	if _, err := c.GetWorkspaces(context.Background()); err != nil {
		t.Fatalf("GetWorkspaces: %v", err)
	}

	// Toggl Basic auth is token:api_token, not username:password
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("secret-token:api_token"))
	if gotAuth != want {
		t.Errorf("Authorization = %q, want %q", gotAuth, want)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
}

func TestGetTimeEntriesQueryAndFilter(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me/time_entries" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("start_date") != "2024-01-01" || q.Get("end_date") != "2024-01-07" {
			t.Errorf("unexpected query: %v", q)
		}
		json.NewEncoder(w).Encode([]TimeEntry{
			{ID: 1, ProjectID: intPtr(10), Duration: 60},
			{ID: 2, ProjectID: intPtr(20), Duration: 120},
			{ID: 3, ProjectID: nil, Duration: 180},
		})
	})

	entries, err := c.GetTimeEntries(context.Background(), "2024-01-01", "2024-01-07", []int{10})
	if err != nil {
		t.Fatalf("GetTimeEntries: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != 1 {
		t.Errorf("expected only entry 1, got %+v", entries)
	}
}

func TestGetTimeEntriesNoFilterKeepsAll(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]TimeEntry{{ID: 1}, {ID: 2}})
	})

	entries, err := c.GetTimeEntries(context.Background(), "", "", nil)
	if err != nil {
		t.Fatalf("GetTimeEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestGetCurrentTimeEntryAbsent(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"404", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}},
		{"null body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("null"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			entry, err := c.GetCurrentTimeEntry(context.Background())
			if err != nil {
				t.Fatalf("GetCurrentTimeEntry: %v", err)
			}
			if entry != nil {
				t.Errorf("expected nil entry, got %+v", entry)
			}
		})
	}
}

func TestGetCurrentTimeEntryRunning(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TimeEntry{
			ID:          42,
			WorkspaceID: 7,
			Description: "deep work",
			Start:       "2024-01-01T09:00:00Z",
			Duration:    -1,
		})
	})

	entry, err := c.GetCurrentTimeEntry(context.Background())
	if err != nil {
		t.Fatalf("GetCurrentTimeEntry: %v", err)
	}
	if entry == nil || entry.ID != 42 || !entry.Running() {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestAPIErrorCarriesStatusAndBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("Incorrect username and/or password"))
	})

	_, err := c.GetProjects(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
	if apiErr.Body != "Incorrect username and/or password" {
		t.Errorf("Body = %q", apiErr.Body)
	}
}

func TestStartTimeEntry(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/workspaces/7/time_entries" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var req StartTimeEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req.Duration != -1 {
			t.Errorf("Duration = %d, want -1", req.Duration)
		}
		if req.Billable {
			t.Error("expected non-billable entry")
		}
		w.WriteHeader(http.StatusCreated) // 201 is success for mutations
		json.NewEncoder(w).Encode(TimeEntry{ID: 99, Description: req.Description, Duration: -1})
	})

	entry, err := c.StartTimeEntry(context.Background(), StartTimeEntryRequest{
		CreatedWith: "test",
		Description: "write report",
		WorkspaceID: 7,
		Duration:    -1,
		Start:       "2024-01-01T09:00:00Z",
		Tags:        []string{},
	})
	if err != nil {
		t.Fatalf("StartTimeEntry: %v", err)
	}
	if entry.ID != 99 {
		t.Errorf("ID = %d, want 99", entry.ID)
	}
}

func TestStopTimeEntry(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/workspaces/7/time_entries/42/stop" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(TimeEntry{ID: 42, Duration: 3600})
	})

	entry, err := c.StopTimeEntry(context.Background(), 7, 42)
	if err != nil {
		t.Fatalf("StopTimeEntry: %v", err)
	}
	if entry.Duration != 3600 {
		t.Errorf("Duration = %d, want 3600", entry.Duration)
	}
}

func TestCreateTask(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/workspaces/7/projects/10/tasks" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var req CreateTaskRequest
		json.NewDecoder(r.Body).Decode(&req)
		if !req.Active {
			t.Error("new tasks should be active")
		}
		json.NewEncoder(w).Encode(Task{ID: 5, Name: req.Name, Active: true})
	})

	est := 7200
	task, err := c.CreateTask(context.Background(), 7, 10, CreateTaskRequest{
		Name:             "design review",
		Active:           true,
		EstimatedSeconds: &est,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ID != 5 || task.Name != "design review" {
		t.Errorf("unexpected task: %+v", task)
	}
}

func TestEntryDateKey(t *testing.T) {
	tests := []struct {
		start string
		want  string
	}{
		{"2024-01-01T09:00:00Z", "2024-01-01"},
		{"", ""},
		{"short", ""},
	}
	for _, tt := range tests {
		e := TimeEntry{Start: tt.start}
		if got := e.DateKey(); got != tt.want {
			t.Errorf("DateKey(%q) = %q, want %q", tt.start, got, tt.want)
		}
	}
}

func intPtr(v int) *int { return &v }
