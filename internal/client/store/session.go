// Package store holds the client-side state: the session (who is logged in),
// the post collection with its per-request view state, and the theme
// preference. Stores mutate only in memory; durable persistence is attached
// as listeners so the state machines stay storage-agnostic.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/annakovaleva/blogview/internal/client/models"
	"github.com/annakovaleva/blogview/internal/common"
)

// Session is the client-held proof of identity. Authenticated is true iff
// both User and Token are present.
type Session struct {
	User          *models.User `json:"user"`
	Token         string       `json:"token"`
	Authenticated bool         `json:"authenticated"`
}

// SessionListener is notified synchronously after every session mutation,
// before the mutating call returns. Persistence hooks implement this;
// failures are theirs to log, the store does not roll back (best effort,
// last write wins).
type SessionListener func(Session)

// Mirror is an externally visible session indicator with a bounded lifetime,
// consumed by code outside the core to short-circuit obviously
// unauthenticated requests.
type Mirror interface {
	Set(token string, ttl time.Duration) error
	Clear() error
}

// SessionSource supplies the persisted session during startup rehydration.
// A nil session with nil error means nothing was persisted.
type SessionSource interface {
	Load(ctx context.Context) (*Session, error)
}

// SessionStore is the single source of truth for the current identity.
type SessionStore struct {
	mu        sync.Mutex
	s         Session
	listeners []SessionListener

	mirror    Mirror
	mirrorTTL time.Duration

	rehydrated     chan struct{}
	rehydratedOnce sync.Once
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		mirrorTTL:  common.SessionMirrorTTL,
		rehydrated: make(chan struct{}),
	}
}

// Subscribe registers a listener invoked after every mutation.
func (s *SessionStore) Subscribe(fn SessionListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// AttachMirror wires the external session indicator. A non-positive ttl
// keeps the default lifetime.
func (s *SessionStore) AttachMirror(m Mirror, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mirror = m
	if ttl > 0 {
		s.mirrorTTL = ttl
	}
}

// Set stores the user and token and marks the session authenticated.
// The durable copy and the external mirror are refreshed before Set returns.
func (s *SessionStore) Set(user *models.User, token string) {
	s.mu.Lock()
	u := *user
	s.s = Session{User: &u, Token: token, Authenticated: true}
	snapshot := s.snapshotLocked()
	mirror, ttl := s.mirror, s.mirrorTTL
	listeners := s.listeners
	s.mu.Unlock()

	if mirror != nil {
		_ = mirror.Set(token, ttl)
	}
	for _, fn := range listeners {
		fn(snapshot)
	}
}

// Clear resets the store to the empty session and removes the durable copy
// and the external mirror. Calling it on an already empty store is a no-op.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	if s.s.User == nil && s.s.Token == "" && !s.s.Authenticated {
		s.mu.Unlock()
		return
	}
	s.s = Session{}
	snapshot := s.snapshotLocked()
	mirror := s.mirror
	listeners := s.listeners
	s.mu.Unlock()

	if mirror != nil {
		_ = mirror.Clear()
	}
	for _, fn := range listeners {
		fn(snapshot)
	}
}

// UpdateUser merges the patch into the current user. Without an active
// session this is a no-op, not an error.
func (s *SessionStore) UpdateUser(patch models.UserPatch) {
	s.mu.Lock()
	if s.s.User == nil {
		s.mu.Unlock()
		return
	}
	patch.Apply(s.s.User)
	snapshot := s.snapshotLocked()
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// Rehydrate reads the persisted session back once at startup and then signals
// completion via Rehydrated. The route guard must not decide before that
// signal. Listeners are not notified: rehydration restores state, it is not
// a mutation.
func (s *SessionStore) Rehydrate(ctx context.Context, src SessionSource) error {
	defer s.rehydratedOnce.Do(func() { close(s.rehydrated) })

	if src == nil {
		return nil
	}
	sess, err := src.Load(ctx)
	if err != nil {
		return err
	}
	if sess == nil {
		return nil
	}

	s.mu.Lock()
	s.s = *sess
	// Re-establish the invariant in case the record was written by an
	// older build.
	s.s.Authenticated = s.s.User != nil && s.s.Token != ""
	s.mu.Unlock()
	return nil
}

// Rehydrated is closed once the persisted state has been read back.
func (s *SessionStore) Rehydrated() <-chan struct{} {
	return s.rehydrated
}

// Snapshot returns a copy of the current session.
func (s *SessionStore) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// User returns a copy of the current user, or nil without a session.
func (s *SessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.s.User == nil {
		return nil
	}
	u := *s.s.User
	return &u
}

func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Token
}

func (s *SessionStore) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Authenticated
}

func (s *SessionStore) snapshotLocked() Session {
	snapshot := s.s
	if s.s.User != nil {
		u := *s.s.User
		snapshot.User = &u
	}
	return snapshot
}
