package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tasksphere/config"
	"tasksphere/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type session struct {
	store    *Store
	lastSeen time.Time
}

// Memory owns one Store per session and drops sessions left idle.
type Memory struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.SessionConfig
	now     func() time.Time
	newID   func() string

	mu       sync.Mutex
	sessions map[string]*session

	stop chan struct{}
	done chan struct{}
}

// New creates a session registry.
func New(ctx context.Context, log *zap.SugaredLogger, cfg config.SessionConfig) *Memory {
	return &Memory{
		baseCtx:  ctx,
		log:      log.Named("repo.memory"),
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
		sessions: make(map[string]*session),
	}
}

// OnStart launches the idle session sweeper.
func (m *Memory) OnStart(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stop != nil {
		return nil
	}
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	go m.sweepLoop(m.stop, m.done)

	m.log.Infow("memory store ready",
		"seed", m.cfg.Seed,
		"idle_timeout", m.cfg.IdleTimeout,
		"sweep_interval", m.cfg.SweepInterval,
	)
	return nil
}

// OnStop stops the sweeper and discards every session.
func (m *Memory) OnStop(_ context.Context) error {
	m.mu.Lock()
	stop, done := m.stop, m.done
	m.stop, m.done = nil, nil
	m.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}

	m.mu.Lock()
	dropped := len(m.sessions)
	m.sessions = make(map[string]*session)
	m.mu.Unlock()

	m.log.Infow("memory store stopped", "dropped_sessions", dropped)
	return nil
}

// CreateSession opens a session with its own store, seeded when configured.
func (m *Memory) CreateSession(ctx context.Context) (entities.Session, error) {
	if err := ctx.Err(); err != nil {
		return entities.Session{}, err
	}
	id := m.newID()
	store, err := NewStore(m.log.Named("store").With("session_id", id))
	if err != nil {
		return entities.Session{}, err
	}
	if m.cfg.Seed {
		if err := store.Seed(ctx); err != nil {
			return entities.Session{}, fmt.Errorf("seed session: %w", err)
		}
	}

	now := m.now()
	m.mu.Lock()
	if m.cfg.MaxSessions > 0 && len(m.sessions) >= m.cfg.MaxSessions {
		m.evictOldestLocked()
	}
	m.sessions[id] = &session{store: store, lastSeen: now}
	m.mu.Unlock()

	m.log.Infow("session created", "session_id", id)
	return entities.Session{ID: id, CreatedAt: now}, nil
}

// Store returns the store of a live session and marks the session as used.
func (m *Memory) Store(ctx context.Context, sessionID string) (*Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", entities.ErrInvalidArgument)
	}

	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	if m.expiredLocked(s, now) {
		delete(m.sessions, sessionID)
		m.log.Infow("session expired", "session_id", sessionID)
		return nil, entities.ErrSessionNotFound
	}
	s.lastSeen = now
	return s.store, nil
}

// CloseSession discards a session and its data.
func (m *Memory) CloseSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", entities.ErrInvalidArgument)
	}

	m.mu.Lock()
	_, ok := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if !ok {
		return entities.ErrSessionNotFound
	}
	m.log.Infow("session closed", "session_id", sessionID)
	return nil
}

// SessionCount returns the number of live sessions.
func (m *Memory) SessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Memory) sweepLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(m.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-m.baseCtx.Done():
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

// sweep drops every expired session and returns how many were dropped.
func (m *Memory) sweep() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if m.expiredLocked(s, now) {
			delete(m.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		m.log.Infow("idle sessions evicted", "count", evicted, "remaining", len(m.sessions))
	}
	return evicted
}

// expiredLocked applies the session's own timeout, capped by the configured one.
func (m *Memory) expiredLocked(s *session, now time.Time) bool {
	timeout := s.store.sessionTimeout()
	if timeout <= 0 || timeout > m.cfg.IdleTimeout {
		timeout = m.cfg.IdleTimeout
	}
	return now.Sub(s.lastSeen) > timeout
}

func (m *Memory) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, s := range m.sessions {
		if oldestID == "" || s.lastSeen.Before(oldest) {
			oldestID, oldest = id, s.lastSeen
		}
	}
	if oldestID != "" {
		delete(m.sessions, oldestID)
		m.log.Warnw("session limit reached, evicted least recently used", "session_id", oldestID)
	}
}
