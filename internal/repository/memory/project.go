package memory

import (
	"context"
	"fmt"

	"tasksphere/internal/entities"
)

// InsertProject stores a new project with the next id and zero progress.
func (s *Store) InsertProject(ctx context.Context, in entities.ProjectInput) (*entities.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := s.db.Txn(true)
	defer txn.Abort()

	p := &entities.Project{
		ID:          s.lastProjectID + 1,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Progress:    0,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		TeamSize:    in.TeamSize,
		Budget:      in.Budget,
	}
	if err := txn.Insert(tableProjects, p); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	s.lastProjectID = p.ID
	txn.Commit()

	s.log.Debugw("project inserted", "project_id", p.ID)
	out := *p
	return &out, nil
}

// ReplaceProject overwrites every mutable field of an existing project.
func (s *Store) ReplaceProject(ctx context.Context, id int64, upd entities.ProjectUpdate) (*entities.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := s.db.Txn(true)
	defer txn.Abort()

	existing, err := first[entities.Project](txn, tableProjects, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, entities.ErrProjectNotFound
	}

	p := &entities.Project{
		ID:          id,
		Name:        upd.Name,
		Description: upd.Description,
		Status:      upd.Status,
		Progress:    upd.Progress,
		StartDate:   upd.StartDate,
		EndDate:     upd.EndDate,
		TeamSize:    upd.TeamSize,
		Budget:      upd.Budget,
	}
	if err := txn.Insert(tableProjects, p); err != nil {
		return nil, fmt.Errorf("replace project: %w", err)
	}
	txn.Commit()

	s.log.Debugw("project replaced", "project_id", id)
	out := *p
	return &out, nil
}

// GetProject returns a project by id.
func (s *Store) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := s.db.Txn(false)
	defer txn.Abort()

	p, err := first[entities.Project](txn, tableProjects, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, entities.ErrProjectNotFound
	}
	return p, nil
}

// ListProjects returns matching projects in id order.
func (s *Store) ListProjects(ctx context.Context, filter entities.ProjectFilter) ([]entities.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := s.db.Txn(false)
	defer txn.Abort()

	index, args := indexID, []interface{}{}
	if filter.Status != nil {
		index, args = indexStatus, []interface{}{string(*filter.Status)}
	}

	projects, err := collect(txn, tableProjects, index, filter.Matches, args...)
	if err != nil {
		return nil, err
	}
	sortByID(projects, func(p entities.Project) int64 { return p.ID })
	return projects, nil
}
