package memory

import (
	"context"
	"time"

	"tasksphere/internal/entities"
)

// Settings returns the session preferences.
func (s *Store) Settings(ctx context.Context) (entities.Settings, error) {
	if err := ctx.Err(); err != nil {
		return entities.Settings{}, err
	}
	s.settingsMu.RLock()
	defer s.settingsMu.RUnlock()
	return s.settings, nil
}

// SaveSettings replaces the session preferences.
func (s *Store) SaveSettings(ctx context.Context, settings entities.Settings) (entities.Settings, error) {
	if err := ctx.Err(); err != nil {
		return entities.Settings{}, err
	}
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	s.settings = settings
	return s.settings, nil
}

func (s *Store) sessionTimeout() time.Duration {
	s.settingsMu.RLock()
	defer s.settingsMu.RUnlock()
	return s.settings.SessionTimeout.Duration()
}
