// Package session persists the {token, user} pair that identifies a logged-in
// client, surviving restarts of the application.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/alexkarev/travellog/internal/models"
)

// Store is the durable persistence surface for the session. It is owned
// exclusively by the auth service; nothing else reads or writes it.
type Store interface {
	// Save persists both halves of the session.
	Save(token string, user models.User) error
	// SaveUser rewrites the user entry only, leaving the token untouched.
	SaveUser(user models.User) error
	// Load returns the stored pair. ok is false when either half is missing
	// or the user fails to parse; in that case any partial leftovers have
	// been cleared so a later Load stays empty.
	Load() (token string, user *models.User, ok bool)
	// Clear removes both entries. Idempotent.
	Clear() error
}

const (
	tokenFileName = "token"
	userFileName  = "user.json"
)

// FileStore keeps the session as two files under a directory: an opaque
// token file and a JSON-serialized user.
//
// The underlying filesystem gives no transactional guarantee across the two
// files. Save writes the user first and the token second, so an interruption
// can leave a user without a token but never a token without a user; Load
// treats either partial state as "no session" and cleans it up.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) tokenPath() string { return filepath.Join(s.dir, tokenFileName) }
func (s *FileStore) userPath() string  { return filepath.Join(s.dir, userFileName) }

func (s *FileStore) Save(token string, user models.User) error {
	if err := s.SaveUser(user); err != nil {
		return err
	}
	return os.WriteFile(s.tokenPath(), []byte(token), 0o600)
}

func (s *FileStore) SaveUser(user models.User) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(s.userPath(), data, 0o600)
}

func (s *FileStore) Load() (string, *models.User, bool) {
	tokenData, tokenErr := os.ReadFile(s.tokenPath())
	userData, userErr := os.ReadFile(s.userPath())

	if tokenErr != nil || userErr != nil || len(tokenData) == 0 {
		_ = s.Clear()
		return "", nil, false
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		_ = s.Clear()
		return "", nil, false
	}

	return string(tokenData), &user, true
}

func (s *FileStore) Clear() error {
	tokenErr := os.Remove(s.tokenPath())
	userErr := os.Remove(s.userPath())

	if tokenErr != nil && !os.IsNotExist(tokenErr) {
		return tokenErr
	}
	if userErr != nil && !os.IsNotExist(userErr) {
		return userErr
	}
	return nil
}

// DefaultDir resolves the per-user state directory for the client.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "travellog"), nil
}
