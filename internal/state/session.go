package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// DefaultSessionTTL is how long an idle session is kept.
const DefaultSessionTTL = 2 * time.Hour

// Session holds one learner's simulator state
type Session struct {
	ID        string
	State     Snapshot
	Sources   *Sources
	CreatedAt time.Time
	Reflog    []ReflogEntry
	mu        sync.RWMutex
}

// ReflogEntry records a command executed in the session and what it printed
type ReflogEntry struct {
	Command   string    `json:"command"`
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionManager handles concurrent access to sessions.
// Idle sessions expire after the configured TTL.
type SessionManager struct {
	sessions   *cache.Cache
	NewSources func() *Sources
	mu         sync.Mutex
}

// NewSessionManager creates a session manager with the default TTL
func NewSessionManager() *SessionManager {
	return NewSessionManagerWithTTL(DefaultSessionTTL)
}

// NewSessionManagerWithTTL creates a session manager whose sessions expire after ttl
// without access. A ttl <= 0 keeps sessions forever.
func NewSessionManagerWithTTL(ttl time.Duration) *SessionManager {
	expiration, cleanup := ttl, ttl/2
	if ttl <= 0 {
		expiration, cleanup = cache.NoExpiration, 0
	}
	return &SessionManager{
		sessions:   cache.New(expiration, cleanup),
		NewSources: DefaultSources,
	}
}

// NewSessionID returns a fresh random session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// NewSession builds a detached session in the initial state.
func NewSession(id string, src *Sources) *Session {
	if src == nil {
		src = DefaultSources()
	}
	return &Session{
		ID:        id,
		State:     NewSnapshot(),
		Sources:   src,
		CreatedAt: time.Now(),
	}
}

// CreateSession initializes a new session. An existing session with the same
// id is returned as is. An empty id gets a generated one.
func (sm *SessionManager) CreateSession(id string) (*Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if id == "" {
		id = NewSessionID()
	}
	if v, ok := sm.sessions.Get(id); ok {
		return v.(*Session), nil
	}

	s := NewSession(id, sm.NewSources())
	if err := sm.sessions.Add(id, s, cache.DefaultExpiration); err != nil {
		return nil, fmt.Errorf("create session %s: %w", id, err)
	}
	return s, nil
}

// GetSession retrieves a session by ID and refreshes its expiry
func (sm *SessionManager) GetSession(id string) (*Session, bool) {
	v, ok := sm.sessions.Get(id)
	if !ok {
		return nil, false
	}
	sm.sessions.Set(id, v, cache.DefaultExpiration)
	return v.(*Session), true
}

// GetOrCreateSession returns the session for id, recreating it when it has
// expired or the backend restarted.
func (sm *SessionManager) GetOrCreateSession(id string) (*Session, error) {
	if s, ok := sm.GetSession(id); ok {
		return s, nil
	}
	return sm.CreateSession(id)
}

// DeleteSession drops a session
func (sm *SessionManager) DeleteSession(id string) {
	sm.sessions.Delete(id)
}

// Count returns the number of live sessions
func (sm *SessionManager) Count() int {
	return sm.sessions.ItemCount()
}

// Lock locks the session for writing
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock unlocks the session
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// RLock locks the session for reading
func (s *Session) RLock() {
	s.mu.RLock()
}

// RUnlock unlocks the session for reading
func (s *Session) RUnlock() {
	s.mu.RUnlock()
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.State.Clone()
}

// Transcript returns a copy of the reflog.
func (s *Session) Transcript() []ReflogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ReflogEntry, len(s.Reflog))
	copy(out, s.Reflog)
	return out
}

// RecordReflog adds an entry to the session reflog. Caller holds the write lock.
func (s *Session) RecordReflog(cmd, output string) {
	s.Reflog = append(s.Reflog, ReflogEntry{
		Command:   cmd,
		Output:    output,
		Timestamp: time.Now(),
	})
}
