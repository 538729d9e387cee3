package domain

import (
	"context"

	"tasksphere/internal/entities"
)

// Settings returns the session preferences.
func (u *Usecase) Settings(ctx context.Context, sessionID string) (entities.Settings, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	store, err := u.store(ctx, sessionID)
	if err != nil {
		return entities.Settings{}, err
	}
	return store.Settings(ctx)
}

// UpdateSettings replaces the session preferences after validation.
func (u *Usecase) UpdateSettings(ctx context.Context, sessionID string, s entities.Settings) (entities.Settings, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := s.Validate(); err != nil {
		return entities.Settings{}, err
	}
	store, err := u.store(ctx, sessionID)
	if err != nil {
		return entities.Settings{}, err
	}
	saved, err := store.SaveSettings(ctx, s)
	if err != nil {
		return entities.Settings{}, err
	}
	u.log.Infow("settings updated", "session_id", sessionID, "session_timeout", saved.SessionTimeout)
	return saved, nil
}
