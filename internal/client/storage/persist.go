package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/annakovaleva/blogview/internal/client/store"
	"github.com/annakovaleva/blogview/internal/common"
	"github.com/annakovaleva/blogview/internal/logging"
)

// SessionRecord bridges the session store and durable storage: it is both
// the rehydration source read once at startup and the listener that rewrites
// the record on every mutation. Writes are best effort; failures are logged
// and the in-memory state stays authoritative.
type SessionRecord struct {
	repo Repository
	log  logging.Logger
}

func NewSessionRecord(repo Repository, log logging.Logger) *SessionRecord {
	return &SessionRecord{repo: repo, log: log}
}

// Load implements store.SessionSource.
func (r *SessionRecord) Load(ctx context.Context) (*store.Session, error) {
	data, err := r.repo.Get(ctx, common.SessionStorageName)
	if err != nil {
		return nil, fmt.Errorf("load session record: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var s store.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}
	return &s, nil
}

// Listener returns the persistence hook to subscribe on the session store.
// An empty session removes the record instead of storing it.
func (r *SessionRecord) Listener() store.SessionListener {
	return func(s store.Session) {
		ctx := context.Background()
		if !s.Authenticated && s.User == nil && s.Token == "" {
			if err := r.repo.Delete(ctx, common.SessionStorageName); err != nil {
				r.log.Error(ctx, "failed to remove session record", "err", err)
			}
			return
		}

		data, err := json.Marshal(s)
		if err != nil {
			r.log.Error(ctx, "failed to encode session record", "err", err)
			return
		}
		if err := r.repo.Set(ctx, common.SessionStorageName, data); err != nil {
			r.log.Error(ctx, "failed to write session record", "err", err)
		}
	}
}

// ThemeRecord persists the theme preference in its own namespace.
type ThemeRecord struct {
	repo Repository
	log  logging.Logger
}

func NewThemeRecord(repo Repository, log logging.Logger) *ThemeRecord {
	return &ThemeRecord{repo: repo, log: log}
}

// Load returns the persisted theme, or empty when none was saved yet.
func (r *ThemeRecord) Load(ctx context.Context) (store.Theme, error) {
	data, err := r.repo.Get(ctx, common.ThemeStorageName)
	if err != nil {
		return "", fmt.Errorf("load theme record: %w", err)
	}
	return store.Theme(data), nil
}

func (r *ThemeRecord) Listener() store.ThemeListener {
	return func(theme store.Theme) {
		ctx := context.Background()
		if err := r.repo.Set(ctx, common.ThemeStorageName, []byte(theme)); err != nil {
			r.log.Error(ctx, "failed to write theme record", "err", err)
		}
	}
}
