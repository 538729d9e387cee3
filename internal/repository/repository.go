// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"tasksphere/config"
	"tasksphere/internal/repository/memory"

	"go.uber.org/zap"
)

// Repository aggregates all storage interfaces.
type Repository interface {
	LifecycleInterface
	SessionInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "memory":
		return newMemory(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}

// memoryRepo narrows the concrete session store of the memory backend to Store.
type memoryRepo struct {
	*memory.Memory
}

func newMemory(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) memoryRepo {
	return memoryRepo{Memory: memory.New(ctx, log, cfg.Session)}
}

// Store returns the entity store of a live session.
func (m memoryRepo) Store(ctx context.Context, sessionID string) (Store, error) {
	s, err := m.Memory.Store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s, nil
}
