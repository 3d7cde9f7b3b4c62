package wizard

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ActorContext is a read-only snapshot of profile fields taken at session
// start. It seeds the destination folder and metadata for file uploads and is
// never mutated afterwards.
type ActorContext struct {
	Username string
	FullName string
	Faculty  string
	Track    string
	Term     int
}

// Session is the mutable state of one actor's progress through one wizard.
type Session struct {
	ActorID   int64
	Kind      Kind
	StepIndex int
	Answers   map[string]any
	UI        UIState
	Context   ActorContext
	UpdatedAt time.Time
}

// UIState is transient view state that never reaches the persisted answers:
// the current page per paged step and the in-progress toggle selections.
type UIState struct {
	Pages      map[string]int
	Selections map[string]map[string]bool
}

func newSession(actorID int64, kind Kind, actorCtx ActorContext) *Session {
	return &Session{
		ActorID: actorID,
		Kind:    kind,
		Answers: make(map[string]any),
		UI: UIState{
			Pages:      make(map[string]int),
			Selections: make(map[string]map[string]bool),
		},
		Context:   actorCtx,
		UpdatedAt: time.Now(),
	}
}

// selection returns the toggle set for a step, creating it on first use.
func (s *Session) selection(key string) map[string]bool {
	set, ok := s.UI.Selections[key]
	if !ok {
		set = make(map[string]bool)
		s.UI.Selections[key] = set
	}
	return set
}

// selectedList returns the toggled-on options for a step in stable order.
func (s *Session) selectedList(key string, options []string) []string {
	set := s.UI.Selections[key]
	var out []string
	for _, opt := range options {
		if set[opt] {
			out = append(out, opt)
		}
	}
	return out
}

type sessionKey struct {
	actorID int64
	kind    Kind
}

// SessionStore keeps active sessions keyed by (actor, kind). Sessions live in
// memory only; a process restart drops them. Idle sessions are evicted after
// the TTL so abandoned wizards do not accumulate.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[sessionKey]*Session
}

// NewSessionStore creates a store with the given idle TTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[sessionKey]*Session),
	}
}

// Get returns the session for (actorID, kind), or nil.
func (st *SessionStore) Get(actorID int64, kind Kind) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[sessionKey{actorID, kind}]
}

// Any returns the actor's active session, scanning kinds in dispatch order,
// or nil when the actor is idle.
func (st *SessionStore) Any(actorID int64) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, kind := range dispatchOrder {
		if s, ok := st.sessions[sessionKey{actorID, kind}]; ok {
			return s
		}
	}
	return nil
}

// Set stores a session.
func (st *SessionStore) Set(sess *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess.UpdatedAt = time.Now()
	st.sessions[sessionKey{sess.ActorID, sess.Kind}] = sess
}

// Touch refreshes the idle timer after a valid input event.
func (st *SessionStore) Touch(sess *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess.UpdatedAt = time.Now()
}

// Delete removes a session.
func (st *SessionStore) Delete(actorID int64, kind Kind) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, sessionKey{actorID, kind})
}

// Len returns the number of active sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartSweep evicts idle sessions periodically until ctx is cancelled.
func (st *SessionStore) StartSweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.evictIdle()
			}
		}
	}()
}

func (st *SessionStore) evictIdle() {
	st.mu.Lock()
	defer st.mu.Unlock()
	cutoff := time.Now().Add(-st.ttl)
	for key, sess := range st.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(st.sessions, key)
			slog.Info("Evicted idle wizard session", "actor_id", key.actorID, "kind", key.kind)
		}
	}
}
