package auth

import (
	"context"

	"github.com/SameedIlyas/Cloud-Project/internal/model"
)

// API defines the authentication service surface used by the Manager.
type API interface {
	Login(ctx context.Context, username, password string) (model.Session, error)
	Register(ctx context.Context, username, password string) (model.Session, error)
	VerifyToken(ctx context.Context, token string) error
}

// SessionStore persists the session across restarts. The store mirrors the
// session; the Manager owns it.
type SessionStore interface {
	SaveSession(session model.Session) error
	LoadSession() (model.Session, bool)
	ClearSession()
}
