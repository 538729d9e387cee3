// Package entities contains core business entities.
package entities

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	// ProjectActive marks a project in progress.
	ProjectActive ProjectStatus = "Active"
	// ProjectPending marks a project not started yet.
	ProjectPending ProjectStatus = "Pending"
	// ProjectCompleted marks a finished project.
	ProjectCompleted ProjectStatus = "Completed"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectPending, ProjectCompleted:
		return true
	}
	return false
}

const (
	// MaxNameLength bounds names and titles.
	MaxNameLength = 120
	// MaxDescriptionLength bounds free-form descriptions.
	MaxDescriptionLength = 2000
	// MaxTeamSize mirrors the upper bound of the project form.
	MaxTeamSize = 20
)

// Project is a tracked piece of work with a schedule and a budget.
type Project struct {
	ID          int64
	Name        string
	Description string
	Status      ProjectStatus
	Progress    int
	StartDate   time.Time
	EndDate     time.Time
	TeamSize    int
	Budget      float64
}

// ProjectInput carries user supplied fields for a new project.
type ProjectInput struct {
	Name        string
	Description string
	Status      ProjectStatus
	StartDate   time.Time
	EndDate     time.Time
	TeamSize    int
	Budget      float64
}

// Normalize trims text fields in place.
func (in *ProjectInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

// Validate checks required fields and numeric ranges.
func (in ProjectInput) Validate() error {
	c := newFieldChecker("project")
	in.check(c)
	return c.err()
}

func (in ProjectInput) check(c *fieldChecker) {
	c.check(in.Name != "", "name", "is required")
	c.check(utf8.RuneCountInString(in.Name) <= MaxNameLength, "name", "is too long")
	c.check(utf8.RuneCountInString(in.Description) <= MaxDescriptionLength, "description", "is too long")
	c.check(in.Status.Valid(), "status", "must be one of Active, Pending, Completed")
	c.check(!in.StartDate.IsZero(), "start_date", "is required")
	c.check(!in.EndDate.IsZero(), "end_date", "is required")
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() {
		c.check(!in.EndDate.Before(in.StartDate), "end_date", "must not be before start_date")
	}
	c.check(in.TeamSize >= 1 && in.TeamSize <= MaxTeamSize, "team_size", "must be between 1 and 20")
	c.check(in.Budget >= 0, "budget", "must not be negative")
}

// ProjectUpdate replaces every mutable field of a project.
type ProjectUpdate struct {
	ProjectInput
	Progress int
}

// Validate checks the embedded input and the progress range.
func (u ProjectUpdate) Validate() error {
	c := newFieldChecker("project")
	u.check(c)
	c.check(u.Progress >= 0 && u.Progress <= 100, "progress", "must be between 0 and 100")
	return c.err()
}

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Status *ProjectStatus
	Query  string
}

// Matches reports whether p satisfies the filter.
func (f ProjectFilter) Matches(p Project) bool {
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	return containsFold(f.Query, p.Name, p.Description)
}

func containsFold(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
