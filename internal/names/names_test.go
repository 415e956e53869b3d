package names

import (
	"testing"

	"github.com/vontell/toggl-track-mcp/internal/toggl"
)

func testProjects() []toggl.Project {
	return []toggl.Project{
		{ID: 1, Name: "Beta", WorkspaceID: 7},
		{ID: 2, Name: "Gamma", WorkspaceID: 7},
	}
}

func TestProjectLookup(t *testing.T) {
	ix := NewIndex(testProjects())

	p, ok := ix.Project("Beta")
	if !ok || p.ID != 1 {
		t.Errorf("Project(Beta) = %+v, %v", p, ok)
	}

	if _, ok := ix.Project("Alpha"); ok {
		t.Error("Project(Alpha) should not resolve")
	}
}

func TestNotFoundMessageListsAvailable(t *testing.T) {
	ix := NewIndex(testProjects())

	got := ix.NotFoundMessage("Alpha")
	want := "Project 'Alpha' not found. Available projects: Beta, Gamma"
	if got != want {
		t.Errorf("NotFoundMessage = %q, want %q", got, want)
	}
}

func TestDuplicateNamesFirstMatchWins(t *testing.T) {
	ix := NewIndex([]toggl.Project{
		{ID: 1, Name: "Ops", WorkspaceID: 7},
		{ID: 2, Name: "Ops", WorkspaceID: 8},
	})

	p, ok := ix.Project("Ops")
	if !ok || p.ID != 1 {
		t.Errorf("expected first match (id 1), got %+v", p)
	}

	// Both ids still resolve back to the shared name
	one, two := 1, 2
	if ix.NameForID(&one) != "Ops" || ix.NameForID(&two) != "Ops" {
		t.Error("both ids should resolve to 'Ops'")
	}
}

func TestNameForIDFallback(t *testing.T) {
	ix := NewIndex(testProjects())

	deleted := 999
	tests := []struct {
		name string
		id   *int
		want string
	}{
		{"nil id", nil, NoProject},
		{"deleted project", &deleted, NoProject},
	}
	for _, tt := range tests {
		if got := ix.NameForID(tt.id); got != tt.want {
			t.Errorf("%s: NameForID = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestEmptyIndex(t *testing.T) {
	ix := NewIndex(nil)
	if len(ix.Names()) != 0 {
		t.Errorf("expected no names, got %v", ix.Names())
	}
	got := ix.NotFoundMessage("Alpha")
	want := "Project 'Alpha' not found. Available projects: "
	if got != want {
		t.Errorf("NotFoundMessage = %q, want %q", got, want)
	}
}
