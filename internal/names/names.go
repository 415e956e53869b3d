// Package names maps between project display names and ids. Toggl does not
// guarantee project names are unique; lookups resolve to the first project
// with that name in listing order.
package names

import (
	"fmt"
	"strings"

	"github.com/vontell/toggl-track-mcp/internal/toggl"
)

// NoProject is the display value for entries whose project id does not
// resolve (no project assigned, or the project was deleted). Such entries
// stay in every aggregation; they are labeled, never dropped.
const NoProject = "No project"

// Index is a per-call bidirectional lookup over the current project list.
type Index struct {
	byName map[string]toggl.Project
	byID   map[int]string
	names  []string // listing order, duplicates included
}

// NewIndex builds an index from the project list. First occurrence of a
// duplicated name wins.
func NewIndex(projects []toggl.Project) *Index {
	ix := &Index{
		byName: make(map[string]toggl.Project, len(projects)),
		byID:   make(map[int]string, len(projects)),
	}
	for _, p := range projects {
		if _, seen := ix.byName[p.Name]; !seen {
			ix.byName[p.Name] = p
		}
		ix.byID[p.ID] = p.Name
		ix.names = append(ix.names, p.Name)
	}
	return ix
}

// Project resolves a display name to its project.
func (ix *Index) Project(name string) (toggl.Project, bool) {
	p, ok := ix.byName[name]
	return p, ok
}

// NameForID resolves a project id to a display name. A nil or unknown id
// yields NoProject.
func (ix *Index) NameForID(id *int) string {
	if id == nil {
		return NoProject
	}
	name, ok := ix.byID[*id]
	if !ok {
		return NoProject
	}
	return name
}

// Names returns all project names in listing order.
func (ix *Index) Names() []string {
	return ix.names
}

// NotFoundMessage is the user-facing text for an unresolved project name.
// It always carries the full list of valid names so the caller can
// self-correct.
func (ix *Index) NotFoundMessage(name string) string {
	return fmt.Sprintf("Project '%s' not found. Available projects: %s",
		name, strings.Join(ix.names, ", "))
}
