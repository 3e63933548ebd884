// Package session holds the authorization credential used for service calls.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/finance-tracker/client/internal/application/adapter"
)

// Session is the current credential, optionally persisted in a TokenStore.
// It is safe for concurrent use; calls in flight read the credential at the
// moment they are built.
type Session struct {
	mu    sync.RWMutex
	token string
	store adapter.TokenStore
	now   func() time.Time
}

var _ adapter.SessionManager = (*Session)(nil)

// New creates an empty session. store may be nil to keep the credential in
// memory only.
func New(store adapter.TokenStore) *Session {
	return &Session{
		store: store,
		now:   time.Now,
	}
}

// Authorize attaches the bearer credential to req. Without a credential the
// request is left untouched.
func (s *Session) Authorize(req *http.Request) {
	if token, ok := s.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// Token returns the current credential.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Owner identifies the user behind the current credential: a hash of the
// token's subject claim, or of the token itself when it carries none.
func (s *Session) Owner() (string, bool) {
	token, ok := s.Token()
	if !ok {
		return "", false
	}
	return OwnerOf(token), true
}

// Login replaces the current credential and persists it.
func (s *Session) Login(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, token); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}
	return nil
}

// Logout clears the credential and its persisted copy.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

// Restore loads a persisted credential. Tokens that are already expired
// are discarded. It reports whether a credential was restored.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	if s.store == nil {
		return false, nil
	}

	token, ok, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load session token: %w", err)
	}
	if !ok {
		return false, nil
	}

	if expiresAt, known := ExpiresAt(token); known && !expiresAt.After(s.now()) {
		slog.Info("Discarding expired session token", "expired_at", expiresAt)
		if err := s.store.Clear(ctx); err != nil {
			return false, fmt.Errorf("failed to clear session token: %w", err)
		}
		return false, nil
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return true, nil
}

// ExpiresAt reads the exp claim of a JWT without verifying its signature;
// the service remains the authority on validity. The second result is false
// for opaque tokens or tokens without an exp claim.
func ExpiresAt(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// OwnerOf derives the owner id of a token. Two tokens issued to the same
// user share it; the raw subject never leaves the process.
func OwnerOf(token string) string {
	source := "token:" + token
	if subject, ok := Subject(token); ok {
		source = "sub:" + subject
	}
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:8])
}

// Subject reads the sub claim of a JWT without verifying its signature.
func Subject(token string) (string, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", false
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", false
	}
	return subject, true
}
