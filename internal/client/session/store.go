// Package session holds the bearer credential and the authenticated identity
// for the lifetime of the program. Only the credential is persisted (a single
// token file); the identity is always re-derived through the verify endpoint
// and never written to disk. The package performs no network access.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"playcenter-console/internal/client/models"
)

// DefaultTokenFile returns the token path under the user config directory,
// falling back to the working directory when none is available.
func DefaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".playcenter-token"
	}
	return filepath.Join(dir, "playcenter", "token")
}

// Store is the in-memory session plus the persisted credential.
// Safe for use from multiple goroutines.
type Store struct {
	path string

	mu       sync.Mutex
	token    string
	identity *models.User
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads a previously persisted credential into memory. A missing token
// file is not an error; it simply yields an empty token.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return token, nil
}

// Set stores the credential and identity in memory and persists the
// credential so it survives restarts.
func (s *Store) Set(token string, identity models.User) error {
	s.mu.Lock()
	s.token = token
	id := identity
	s.identity = &id
	s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// SetIdentity records the verified identity without touching the credential.
func (s *Store) SetIdentity(identity models.User) {
	s.mu.Lock()
	id := identity
	s.identity = &id
	s.mu.Unlock()
}

// Clear removes the session from memory and the credential from disk.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// Token returns the current credential, or "" when logged out.
// Satisfies the api.TokenSource interface.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Identity returns the authenticated identity, if verified this run.
func (s *Store) Identity() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return models.User{}, false
	}
	return *s.identity, true
}

// Expired inspects the credential's exp claim without verifying the
// signature, so an obviously stale token can be discarded without a network
// round-trip. Tokens that do not parse or carry no expiry report false and
// are left for the verify endpoint to judge.
func (s *Store) Expired(now time.Time) bool {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
