package domain

import (
	"context"
	"errors"
	"fmt"

	"tasksphere/internal/entities"
	"tasksphere/internal/repository"
)

// AddTask validates the input and stores a task linked to an existing project and member.
func (u *Usecase) AddTask(ctx context.Context, sessionID string, in entities.TaskInput) (*entities.TaskView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	in.Normalize()
	if err := in.Validate(); err != nil {
		u.log.Warnw("rejected task", "session_id", sessionID, "error", err)
		return nil, err
	}
	store, err := u.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	t, err := store.InsertTask(ctx, in)
	if err != nil {
		u.log.Warnw("failed to add task", "session_id", sessionID, "error", err)
		return nil, err
	}
	u.log.Infow("task added", "session_id", sessionID, "task_id", t.ID, "project_id", t.ProjectID)
	return viewTask(ctx, store, *t)
}

// SetTaskStatus moves a task to another status.
func (u *Usecase) SetTaskStatus(ctx context.Context, sessionID string, id int64, status entities.TaskStatus) (*entities.TaskView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: task id must be positive", entities.ErrInvalidArgument)
	}
	if !status.Valid() {
		return nil, &entities.ValidationError{
			Entity: "task",
			Fields: []entities.FieldError{{Field: "status", Message: "must be one of Pending, In Progress, Completed"}},
		}
	}
	store, err := u.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	t, err := store.SetTaskStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return viewTask(ctx, store, *t)
}

// Task returns a task by id joined with its project and assignee names.
func (u *Usecase) Task(ctx context.Context, sessionID string, id int64) (*entities.TaskView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: task id must be positive", entities.ErrInvalidArgument)
	}
	store, err := u.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	t, err := store.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return viewTask(ctx, store, *t)
}

// Tasks lists tasks in insertion order joined with current names.
func (u *Usecase) Tasks(ctx context.Context, sessionID string, filter entities.TaskFilter) ([]entities.TaskView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown task status %q", entities.ErrInvalidArgument, *filter.Status)
	}
	if filter.Priority != nil && !filter.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, *filter.Priority)
	}
	snap, err := u.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	projectNames := make(map[int64]string, len(snap.Projects))
	for _, p := range snap.Projects {
		projectNames[p.ID] = p.Name
	}
	memberNames := make(map[int64]string, len(snap.Members))
	for _, m := range snap.Members {
		memberNames[m.ID] = m.Name
	}

	views := make([]entities.TaskView, 0, len(snap.Tasks))
	for _, t := range snap.Tasks {
		if !filter.Matches(t) {
			continue
		}
		views = append(views, entities.TaskView{
			Task:         t,
			ProjectName:  projectNames[t.ProjectID],
			AssigneeName: memberNames[t.AssigneeID],
		})
	}
	return views, nil
}

func viewTask(ctx context.Context, store repository.Store, t entities.Task) (*entities.TaskView, error) {
	view := &entities.TaskView{Task: t}

	p, err := store.GetProject(ctx, t.ProjectID)
	switch {
	case err == nil:
		view.ProjectName = p.Name
	case !errors.Is(err, entities.ErrProjectNotFound):
		return nil, err
	}
	m, err := store.GetTeamMember(ctx, t.AssigneeID)
	switch {
	case err == nil:
		view.AssigneeName = m.Name
	case !errors.Is(err, entities.ErrMemberNotFound):
		return nil, err
	}
	return view, nil
}
