// Package entities contains core business entities.
package entities

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Priority enumerates task urgency levels.
type Priority string

const (
	// PriorityHigh marks urgent work.
	PriorityHigh Priority = "High"
	// PriorityMedium marks regular work.
	PriorityMedium Priority = "Medium"
	// PriorityLow marks work that can wait.
	PriorityLow Priority = "Low"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// TaskPending marks a task not started.
	TaskPending TaskStatus = "Pending"
	// TaskInProgress marks a task being worked on.
	TaskInProgress TaskStatus = "In Progress"
	// TaskCompleted marks a finished task.
	TaskCompleted TaskStatus = "Completed"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task is a unit of work inside a project assigned to a team member.
type Task struct {
	ID          int64
	Title       string
	ProjectID   int64
	AssigneeID  int64
	Priority    Priority
	Status      TaskStatus
	DueDate     time.Time
	Description string
}

// TaskView is a task joined with the current names of its references.
type TaskView struct {
	Task
	ProjectName  string
	AssigneeName string
}

// TaskInput carries user supplied fields for a new task.
type TaskInput struct {
	Title       string
	ProjectID   int64
	AssigneeID  int64
	Priority    Priority
	Status      TaskStatus
	DueDate     time.Time
	Description string
}

// Normalize trims text fields in place.
func (in *TaskInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
}

// Validate checks required fields and enum values.
func (in TaskInput) Validate() error {
	c := newFieldChecker("task")
	c.check(in.Title != "", "title", "is required")
	c.check(utf8.RuneCountInString(in.Title) <= MaxNameLength, "title", "is too long")
	c.check(utf8.RuneCountInString(in.Description) <= MaxDescriptionLength, "description", "is too long")
	c.check(in.ProjectID > 0, "project_id", "is required")
	c.check(in.AssigneeID > 0, "assignee_id", "is required")
	c.check(in.Priority.Valid(), "priority", "must be one of High, Medium, Low")
	c.check(in.Status.Valid(), "status", "must be one of Pending, In Progress, Completed")
	c.check(!in.DueDate.IsZero(), "due_date", "is required")
	return c.err()
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	ProjectID  *int64
	AssigneeID *int64
	Status     *TaskStatus
	Priority   *Priority
	Query      string
}

// Matches reports whether t satisfies the filter.
func (f TaskFilter) Matches(t Task) bool {
	if f.ProjectID != nil && t.ProjectID != *f.ProjectID {
		return false
	}
	if f.AssigneeID != nil && t.AssigneeID != *f.AssigneeID {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	return containsFold(f.Query, t.Title, t.Description)
}
