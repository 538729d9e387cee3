package memory

import (
	"context"
	"fmt"

	"tasksphere/internal/entities"
)

// InsertTask stores a new task after checking that its project and assignee exist.
func (s *Store) InsertTask(ctx context.Context, in entities.TaskInput) (*entities.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := s.db.Txn(true)
	defer txn.Abort()

	project, err := first[entities.Project](txn, tableProjects, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, &entities.ReferenceNotFoundError{Kind: "project", ID: in.ProjectID}
	}
	member, err := first[entities.TeamMember](txn, tableMembers, in.AssigneeID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, &entities.ReferenceNotFoundError{Kind: "team member", ID: in.AssigneeID}
	}

	t := &entities.Task{
		ID:          s.lastTaskID + 1,
		Title:       in.Title,
		ProjectID:   in.ProjectID,
		AssigneeID:  in.AssigneeID,
		Priority:    in.Priority,
		Status:      in.Status,
		DueDate:     in.DueDate,
		Description: in.Description,
	}
	if err := txn.Insert(tableTasks, t); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	s.lastTaskID = t.ID
	txn.Commit()

	s.log.Debugw("task inserted", "task_id", t.ID, "project_id", t.ProjectID, "assignee_id", t.AssigneeID)
	out := *t
	return &out, nil
}

// SetTaskStatus moves a task to another status.
func (s *Store) SetTaskStatus(ctx context.Context, id int64, status entities.TaskStatus) (*entities.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := s.db.Txn(true)
	defer txn.Abort()

	t, err := first[entities.Task](txn, tableTasks, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, entities.ErrTaskNotFound
	}
	t.Status = status
	if err := txn.Insert(tableTasks, t); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	txn.Commit()

	out := *t
	return &out, nil
}

// GetTask returns a task by id.
func (s *Store) GetTask(ctx context.Context, id int64) (*entities.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := s.db.Txn(false)
	defer txn.Abort()

	t, err := first[entities.Task](txn, tableTasks, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, entities.ErrTaskNotFound
	}
	return t, nil
}

// ListTasks returns matching tasks in id order, scanning the narrowest index.
func (s *Store) ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := s.db.Txn(false)
	defer txn.Abort()

	index, args := indexID, []interface{}{}
	switch {
	case filter.ProjectID != nil:
		index, args = indexProject, []interface{}{*filter.ProjectID}
	case filter.AssigneeID != nil:
		index, args = indexAssignee, []interface{}{*filter.AssigneeID}
	case filter.Status != nil:
		index, args = indexStatus, []interface{}{string(*filter.Status)}
	}

	tasks, err := collect(txn, tableTasks, index, filter.Matches, args...)
	if err != nil {
		return nil, err
	}
	sortByID(tasks, func(t entities.Task) int64 { return t.ID })
	return tasks, nil
}
