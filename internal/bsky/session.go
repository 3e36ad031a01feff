package bsky

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"skyfeed/internal/jsonutil"
)

// ErrNoSession is returned when there is no stored or active session.
var ErrNoSession = errors.New("no session")

// Session holds the tokens of a logged-in account.
type Session struct {
	DID        string `json:"did"`
	Handle     string `json:"handle"`
	Email      string `json:"email,omitempty"`
	AccessJwt  string `json:"accessJwt"`
	RefreshJwt string `json:"refreshJwt"`
}

// SessionStore persists a Session between runs.
type SessionStore interface {
	Load() (*Session, error)
	Save(*Session) error
	Clear() error
}

// FileStore keeps the session as JSON in a file readable only by the owner.
type FileStore struct {
	path string
}

// SessionFile is the file name used inside the data directory.
const SessionFile = "session.json"

// NewFileStore returns a store writing to dir/session.json.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, SessionFile)}
}

// Path returns the session file location.
func (f *FileStore) Path() string { return f.path }

// Load reads the stored session. Returns ErrNoSession if there is none.
func (f *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	var s Session
	if err := jsonutil.UnmarshalWithContext(data, &s, "parse session"); err != nil {
		return nil, err
	}
	if s.AccessJwt == "" || s.RefreshJwt == "" {
		return nil, ErrNoSession
	}
	return &s, nil
}

// Save replaces the stored session.
func (f *FileStore) Save(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the stored session. A missing file is not an error.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
