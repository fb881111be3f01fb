package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long an idle session survives before the sweeper
// drops it.
const DefaultTTL = 2 * time.Hour

// Store holds all live sessions in memory. There is no persistence — a
// session is exactly one browser tab's transient state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create registers a new session and returns it.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:       uuid.New().String(),
		lastSeen: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for the id, or nil if it does not exist.
func (s *Store) Get(id string) *Session {
	s.mu.RLock()
	sess := s.sessions[id]
	s.mu.RUnlock()
	return sess
}

// GetOrCreate returns the existing session or a fresh one when the id is
// unknown or empty.
func (s *Store) GetOrCreate(id string) *Session {
	if sess := s.Get(id); sess != nil {
		return sess
	}
	return s.Create()
}

// Update runs fn with the session locked. Every mutation of selection or
// cart state goes through here so operations on one session never overlap.
func (s *Store) Update(id string, fn func(*Session) error) error {
	sess := s.Get(id)
	if sess == nil {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.lastSeen = time.Now()
	return fn(sess)
}

// Sweep drops sessions idle for longer than the TTL and reports how many
// were removed.
func (s *Store) Sweep() int {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()

		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on an interval until stop is closed.
func (s *Store) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-stop:
				return
			}
		}
	}()
}
