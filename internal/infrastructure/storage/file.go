// Package storage persists the session record between process restarts.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gadgetstore/storefront/internal/core/domain"
)

// sessionKey is the fixed key the record lives under, kept for wire
// compatibility with records written by the mobile app.
const sessionKey = "@AuthData"

// persistedSession is the on-disk shape: a single JSON blob of token + user.
type persistedSession struct {
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

// FileStorage keeps the session record in one JSON file, the local-storage
// analog for a headless deployment. It implements ports.SessionStorage.
type FileStorage struct {
	path string
}

// NewFileStorage stores the record at path. Parent directories are created on
// first save.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load(_ context.Context) (domain.Session, bool, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("read session file: %w", err)
	}

	var record map[string]persistedSession
	if err := json.Unmarshal(raw, &record); err != nil {
		return domain.Session{}, false, fmt.Errorf("parse session file: %w", err)
	}
	data, ok := record[sessionKey]
	if !ok || data.AccessToken == "" {
		return domain.Session{}, false, nil
	}
	return domain.Session{User: data.User, AccessToken: data.AccessToken}, true, nil
}

func (f *FileStorage) Save(_ context.Context, s domain.Session) error {
	record := map[string]persistedSession{
		sessionKey: {AccessToken: s.AccessToken, User: s.User},
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (f *FileStorage) Clear(_ context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
