package domain

import (
	"context"
	"time"

	"tasksphere/internal/repository"

	"go.uber.org/zap"
)

// recentProjects is how many projects the dashboard lists.
const recentProjects = 3

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// store resolves the entity store of a session.
func (u *Usecase) store(ctx context.Context, sessionID string) (repository.Store, error) {
	s, err := u.repo.Store(ctx, sessionID)
	if err != nil {
		u.log.Debugw("session lookup failed", "session_id", sessionID, "error", err)
		return nil, err
	}
	return s, nil
}
