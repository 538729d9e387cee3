package domain

import (
	"context"
	"fmt"

	"tasksphere/internal/entities"
)

// OpenSession creates a session with its own entity store.
func (u *Usecase) OpenSession(ctx context.Context) (entities.Session, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	sess, err := u.repo.CreateSession(ctx)
	if err != nil {
		u.log.Errorw("failed to open session", "error", err)
		return entities.Session{}, err
	}
	return sess, nil
}

// CloseSession discards a session and everything stored in it.
func (u *Usecase) CloseSession(ctx context.Context, sessionID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", entities.ErrInvalidArgument)
	}
	return u.repo.CloseSession(ctx, sessionID)
}
