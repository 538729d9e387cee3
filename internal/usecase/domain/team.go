package domain

import (
	"context"
	"fmt"
	"strings"

	"tasksphere/internal/entities"
)

// AddTeamMember validates the input and stores a member with initials as avatar.
func (u *Usecase) AddTeamMember(ctx context.Context, sessionID string, in entities.TeamMemberInput) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	in.Normalize()
	if err := in.Validate(); err != nil {
		u.log.Warnw("rejected team member", "session_id", sessionID, "error", err)
		return nil, err
	}
	store, err := u.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	m, err := store.InsertTeamMember(ctx, in)
	if err != nil {
		return nil, err
	}
	u.log.Infow("team member added", "session_id", sessionID, "member_id", m.ID)
	return m, nil
}

// RenameTeamMember changes a member's name; tasks keep pointing at the same id.
func (u *Usecase) RenameTeamMember(ctx context.Context, sessionID string, id int64, name string) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: member id must be positive", entities.ErrInvalidArgument)
	}
	name = strings.TrimSpace(name)
	if err := entities.ValidateMemberName(name); err != nil {
		return nil, err
	}
	store, err := u.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return store.RenameTeamMember(ctx, id, name)
}

// TeamMember returns a member by id.
func (u *Usecase) TeamMember(ctx context.Context, sessionID string, id int64) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: member id must be positive", entities.ErrInvalidArgument)
	}
	store, err := u.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return store.GetTeamMember(ctx, id)
}

// TeamMembers lists members in insertion order.
func (u *Usecase) TeamMembers(ctx context.Context, sessionID string) ([]entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	store, err := u.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return store.ListTeamMembers(ctx)
}
