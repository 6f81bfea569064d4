package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/annakovaleva/blogview/internal/common"
)

// FileMirror is the externally visible session indicator: a small file
// holding the token and an absolute expiry, set on login with a bounded
// lifetime and removed on logout. Consumers outside the core read it to
// short-circuit obviously unauthenticated requests.
type FileMirror struct {
	path string
	now  func() time.Time
}

type mirrorRecord struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewFileMirror(path string) *FileMirror {
	return &FileMirror{path: path, now: time.Now}
}

func (m *FileMirror) Set(token string, ttl time.Duration) error {
	data, err := json.Marshal(mirrorRecord{
		Token:     token,
		ExpiresAt: m.now().Add(ttl),
	})
	if err != nil {
		return fmt.Errorf("encode session mirror: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("write session mirror: %w", err)
	}
	return nil
}

func (m *FileMirror) Clear() error {
	if err := os.Remove(m.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session mirror: %w", err)
	}
	return nil
}

// Read returns the mirrored token. common.ErrorNotFound is returned when no
// mirror exists, common.ErrMirrorExpired when its lifetime has elapsed (the
// stale file is removed on the way out).
func (m *FileMirror) Read() (string, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", common.ErrorNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read session mirror: %w", err)
	}

	var rec mirrorRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", fmt.Errorf("decode session mirror: %w", err)
	}
	if m.now().After(rec.ExpiresAt) {
		_ = os.Remove(m.path)
		return "", common.ErrMirrorExpired
	}
	return rec.Token, nil
}
