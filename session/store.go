// Package session persists the opaque bearer token between runs, one file per
// role so farmer and buyer logins coexist.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"farm-market/models"
)

type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Save(role models.Role, token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	if err := os.WriteFile(s.path(role), []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing session token: %w", err)
	}
	return nil
}

// Token returns the stored token for the role, or "" when none exists. A
// missing token is the normal logged-out state, not an error.
func (s *Store) Token(role models.Role) (string, error) {
	raw, err := os.ReadFile(s.path(role))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading session token: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Clear removes the stored token. Clearing an absent token is a no-op.
func (s *Store) Clear(role models.Role) error {
	err := os.Remove(s.path(role))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session token: %w", err)
	}
	return nil
}

func (s *Store) path(role models.Role) string {
	return filepath.Join(s.dir, string(role)+".token")
}
