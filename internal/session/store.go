// Package session persists the bearer token issued by the backend and
// exposes the identity claims embedded in it.
//
// The token lives in a single file under the user's config directory, the
// CLI counterpart of the browser's local storage. It is written on
// login/registration, read before every request, and removed on logout or
// when it is found to be expired.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/plateful/plateful/internal/logging"
)

// timeNow is a test seam for expiry checks.
var timeNow = time.Now

// Store is a file-backed token store.
type Store struct {
	path string
	log  logging.Logger
}

// NewStore returns a Store persisting the token at path.
func NewStore(path string, log logging.Logger) *Store {
	return &Store{path: path, log: log}
}

// DefaultTokenPath is where the token lives unless configured otherwise.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "plateful", "token"), nil
}

// Save persists the token, creating the parent directory if needed.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("mkdir token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Clear removes the stored token. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when no usable token exists.
//
// A token whose exp claim has passed is deleted as a side effect and
// reported as absent. A malformed token is also reported as absent (with a
// warning); callers never see an error, so a corrupt store cannot break a
// request path.
func (s *Store) Token() string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return ""
	}

	claims, err := decodeClaims(token)
	if err != nil {
		s.warn("stored token is malformed, treating as absent", "err", err)
		return ""
	}
	if expiredAt(claims, timeNow()) {
		if err := s.Clear(); err != nil {
			s.warn("failed to purge expired token", "err", err)
		}
		return ""
	}
	return token
}

// Claims returns the identity claims of the current token, or nil when no
// usable token is stored.
func (s *Store) Claims() Claims {
	token := s.Token()
	if token == "" {
		return nil
	}
	claims, err := decodeClaims(token)
	if err != nil {
		return nil
	}
	return claims
}

func (s *Store) warn(msg string, args ...any) {
	if s.log != nil {
		s.log.Warn(context.Background(), msg, args...)
	}
}
