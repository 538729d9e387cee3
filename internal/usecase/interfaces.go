package usecase

import (
	"context"

	"tasksphere/internal/entities"
)

// SessionUsecaseInterface abstracts session lifecycle for delivery layer.
type SessionUsecaseInterface interface {
	OpenSession(ctx context.Context) (entities.Session, error)
	CloseSession(ctx context.Context, sessionID string) error
}

// ProjectUsecaseInterface abstracts project operations.
type ProjectUsecaseInterface interface {
	AddProject(ctx context.Context, sessionID string, in entities.ProjectInput) (*entities.Project, error)
	UpdateProject(ctx context.Context, sessionID string, id int64, upd entities.ProjectUpdate) (*entities.Project, error)
	Project(ctx context.Context, sessionID string, id int64) (*entities.Project, error)
	Projects(ctx context.Context, sessionID string, filter entities.ProjectFilter) ([]entities.Project, error)
}

// TaskUsecaseInterface abstracts task operations.
type TaskUsecaseInterface interface {
	AddTask(ctx context.Context, sessionID string, in entities.TaskInput) (*entities.TaskView, error)
	SetTaskStatus(ctx context.Context, sessionID string, id int64, status entities.TaskStatus) (*entities.TaskView, error)
	Task(ctx context.Context, sessionID string, id int64) (*entities.TaskView, error)
	Tasks(ctx context.Context, sessionID string, filter entities.TaskFilter) ([]entities.TaskView, error)
}

// TeamUsecaseInterface abstracts team member operations.
type TeamUsecaseInterface interface {
	AddTeamMember(ctx context.Context, sessionID string, in entities.TeamMemberInput) (*entities.TeamMember, error)
	RenameTeamMember(ctx context.Context, sessionID string, id int64, name string) (*entities.TeamMember, error)
	TeamMember(ctx context.Context, sessionID string, id int64) (*entities.TeamMember, error)
	TeamMembers(ctx context.Context, sessionID string) ([]entities.TeamMember, error)
}

// SettingsUsecaseInterface abstracts per-session preferences.
type SettingsUsecaseInterface interface {
	Settings(ctx context.Context, sessionID string) (entities.Settings, error)
	UpdateSettings(ctx context.Context, sessionID string, s entities.Settings) (entities.Settings, error)
}

// StatsUsecaseInterface abstracts dashboard aggregates.
type StatsUsecaseInterface interface {
	Summary(ctx context.Context, sessionID string) (entities.SummaryMetrics, error)
	Dashboard(ctx context.Context, sessionID string) (entities.Dashboard, error)
	Analytics(ctx context.Context, sessionID string) (entities.Analytics, error)
}
