// Package domain contains application Usecases orchestrating the dashboard entities.
package domain

import (
	"context"
	"fmt"

	"tasksphere/internal/entities"
)

// AddProject validates the input and stores a new project with zero progress.
func (u *Usecase) AddProject(ctx context.Context, sessionID string, in entities.ProjectInput) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	in.Normalize()
	if err := in.Validate(); err != nil {
		u.log.Warnw("rejected project", "session_id", sessionID, "error", err)
		return nil, err
	}
	store, err := u.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	p, err := store.InsertProject(ctx, in)
	if err != nil {
		return nil, err
	}
	u.log.Infow("project added", "session_id", sessionID, "project_id", p.ID)
	return p, nil
}

// UpdateProject replaces the mutable fields of a project, progress included.
func (u *Usecase) UpdateProject(ctx context.Context, sessionID string, id int64, upd entities.ProjectUpdate) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: project id must be positive", entities.ErrInvalidArgument)
	}
	upd.Normalize()
	if err := upd.Validate(); err != nil {
		u.log.Warnw("rejected project update", "session_id", sessionID, "project_id", id, "error", err)
		return nil, err
	}
	store, err := u.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return store.ReplaceProject(ctx, id, upd)
}

// Project returns a project by id.
func (u *Usecase) Project(ctx context.Context, sessionID string, id int64) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: project id must be positive", entities.ErrInvalidArgument)
	}
	store, err := u.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return store.GetProject(ctx, id)
}

// Projects lists projects in insertion order.
func (u *Usecase) Projects(ctx context.Context, sessionID string, filter entities.ProjectFilter) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown project status %q", entities.ErrInvalidArgument, *filter.Status)
	}
	store, err := u.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return store.ListProjects(ctx, filter)
}
