// ABOUTME: File-backed session persistence for the CLI
// ABOUTME: The terminal analog of the web client's localStorage session key

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/krishisahai/krishi-cli/internal/models"
)

// SessionStorage persists sessions between CLI invocations.
type SessionStorage interface {
	Load() (*models.Session, error)
	Save(sess *models.Session) error
	Clear() error
}

// FileStorage stores the session as JSON in a user-owned file.
type FileStorage struct {
	path string
}

// NewFileStorage creates storage at the given path. Parent directories are
// created on first save.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the persisted session. A missing file means "signed out" and
// returns (nil, nil); a corrupt file is an error so callers can warn and clear.
func (f *FileStorage) Load() (*models.Session, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("corrupt session file %s: %w", f.path, err)
	}
	if sess.AccessToken == "" {
		return nil, nil
	}
	return &sess, nil
}

// Save writes the session with owner-only permissions.
func (f *FileStorage) Save(sess *models.Session) error {
	if sess == nil {
		return f.Clear()
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Missing file is not an error.
func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
