package repository

import (
	"context"
	"sync"
	"time"

	"compound-interest/domain"
)

const sessionCleanupInterval = 5 * time.Minute

// SessionRepositoryMemory keeps sessions in memory and drops the ones not
// updated within ttl.
type SessionRepositoryMemory struct {
	mu          sync.Mutex
	ttl         time.Duration
	sessions    map[string]domain.Session
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// NewSessionRepositoryMemory creates the repository and starts its eviction
// loop. Stop must be called to release it.
func NewSessionRepositoryMemory(ttl time.Duration) *SessionRepositoryMemory {
	r := &SessionRepositoryMemory{
		ttl:         ttl,
		sessions:    make(map[string]domain.Session),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go r.cleanupLoop()
	return r
}

func (r *SessionRepositoryMemory) cleanupLoop() {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *SessionRepositoryMemory) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, session := range r.sessions {
		if r.expired(session, now) {
			delete(r.sessions, id)
		}
	}
}

func (r *SessionRepositoryMemory) expired(session domain.Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(session.UpdatedAt) > r.ttl
}

func (r *SessionRepositoryMemory) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *SessionRepositoryMemory) Get(_ context.Context, id string) (domain.Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok || r.expired(session, r.now()) {
		return domain.Session{}, false, nil
	}
	return session, true, nil
}

func (r *SessionRepositoryMemory) Save(_ context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = r.now()
	}
	r.sessions[session.ID] = session
	return nil
}
