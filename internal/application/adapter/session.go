package adapter

import (
	"context"
	"net/http"
)

// Credentials supplies the current authorization credential to outgoing
// calls. Calls go out unauthenticated when there is none.
type Credentials interface {
	// Authorize attaches the current credential, if any, to req.
	Authorize(req *http.Request)
}

// CredentialOwner identifies the user the current credential belongs to.
type CredentialOwner interface {
	// Owner returns a stable, opaque id of that user. It reports false
	// when there is no credential.
	Owner() (string, bool)
}

// SessionManager is the login/logout lifecycle of the credential.
type SessionManager interface {
	Credentials
	CredentialOwner

	// Token returns the current credential.
	Token() (string, bool)

	// Login replaces the current credential.
	Login(ctx context.Context, token string) error

	// Logout clears the current credential.
	Logout(ctx context.Context) error
}

// TokenStore persists the credential across process restarts.
type TokenStore interface {
	Load(ctx context.Context) (string, bool, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
