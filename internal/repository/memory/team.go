package memory

import (
	"context"
	"fmt"

	"tasksphere/internal/entities"
)

// InsertTeamMember stores a new member with its initials as avatar.
func (s *Store) InsertTeamMember(ctx context.Context, in entities.TeamMemberInput) (*entities.TeamMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := s.db.Txn(true)
	defer txn.Abort()

	m := &entities.TeamMember{
		ID:     s.lastMemberID + 1,
		Name:   in.Name,
		Role:   in.Role,
		Avatar: entities.Initials(in.Name),
		Email:  in.Email,
		Phone:  in.Phone,
	}
	if err := txn.Insert(tableMembers, m); err != nil {
		return nil, fmt.Errorf("insert team member: %w", err)
	}
	s.lastMemberID = m.ID
	txn.Commit()

	s.log.Debugw("team member inserted", "member_id", m.ID)
	out := *m
	return &out, nil
}

// RenameTeamMember changes a member's name and avatar; tasks keep pointing at the id.
func (s *Store) RenameTeamMember(ctx context.Context, id int64, name string) (*entities.TeamMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := s.db.Txn(true)
	defer txn.Abort()

	m, err := first[entities.TeamMember](txn, tableMembers, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, entities.ErrMemberNotFound
	}
	m.Name = name
	m.Avatar = entities.Initials(name)
	if err := txn.Insert(tableMembers, m); err != nil {
		return nil, fmt.Errorf("rename team member: %w", err)
	}
	txn.Commit()

	out := *m
	return &out, nil
}

// GetTeamMember returns a member by id.
func (s *Store) GetTeamMember(ctx context.Context, id int64) (*entities.TeamMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := s.db.Txn(false)
	defer txn.Abort()

	m, err := first[entities.TeamMember](txn, tableMembers, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, entities.ErrMemberNotFound
	}
	return m, nil
}

// ListTeamMembers returns every member in id order.
func (s *Store) ListTeamMembers(ctx context.Context) ([]entities.TeamMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := s.db.Txn(false)
	defer txn.Abort()

	members, err := collect[entities.TeamMember](txn, tableMembers, indexID, nil)
	if err != nil {
		return nil, err
	}
	sortByID(members, func(m entities.TeamMember) int64 { return m.ID })
	return members, nil
}
