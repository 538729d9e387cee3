// Package repository contains repository interfaces for storage backends.
package repository

import (
	"context"

	"tasksphere/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// SessionInterface hands out the entity store owned by each session.
type SessionInterface interface {
	CreateSession(ctx context.Context) (entities.Session, error)
	Store(ctx context.Context, sessionID string) (Store, error)
	CloseSession(ctx context.Context, sessionID string) error
	SessionCount() int
}

// ProjectInterface exposes project operations of one session.
type ProjectInterface interface {
	InsertProject(ctx context.Context, in entities.ProjectInput) (*entities.Project, error)
	ReplaceProject(ctx context.Context, id int64, upd entities.ProjectUpdate) (*entities.Project, error)
	GetProject(ctx context.Context, id int64) (*entities.Project, error)
	ListProjects(ctx context.Context, filter entities.ProjectFilter) ([]entities.Project, error)
}

// TaskInterface exposes task operations of one session.
type TaskInterface interface {
	InsertTask(ctx context.Context, in entities.TaskInput) (*entities.Task, error)
	SetTaskStatus(ctx context.Context, id int64, status entities.TaskStatus) (*entities.Task, error)
	GetTask(ctx context.Context, id int64) (*entities.Task, error)
	ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error)
}

// TeamInterface exposes team member operations of one session.
type TeamInterface interface {
	InsertTeamMember(ctx context.Context, in entities.TeamMemberInput) (*entities.TeamMember, error)
	RenameTeamMember(ctx context.Context, id int64, name string) (*entities.TeamMember, error)
	GetTeamMember(ctx context.Context, id int64) (*entities.TeamMember, error)
	ListTeamMembers(ctx context.Context) ([]entities.TeamMember, error)
}

// SettingsInterface exposes per-session preferences.
type SettingsInterface interface {
	Settings(ctx context.Context) (entities.Settings, error)
	SaveSettings(ctx context.Context, s entities.Settings) (entities.Settings, error)
}

// SnapshotInterface exposes whole-store reads and seeding.
type SnapshotInterface interface {
	Snapshot(ctx context.Context) (entities.Snapshot, error)
	Seed(ctx context.Context) error
}

// Store aggregates every operation on one session's entities.
type Store interface {
	ProjectInterface
	TaskInterface
	TeamInterface
	SettingsInterface
	SnapshotInterface
}
