package auth

import (
	"context"
	"log"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SameedIlyas/Cloud-Project/internal/model"
)

// Manager owns the process-wide authentication state. State transitions follow
// a fixed machine:
//
//	Verifying       -> Authenticated    verifyToken succeeded
//	Verifying       -> Unauthenticated  verifyToken failed (slot cleared)
//	Unauthenticated -> Authenticated    login or register succeeded
//	Authenticated   -> Unauthenticated  explicit logout (slot cleared)
//
// No transition is retried automatically.
type Manager struct {
	mu      sync.RWMutex
	client  API
	store   SessionStore
	state   model.SessionState
	session model.Session

	onChange func(model.SessionState, model.Session) // callback for UI updates
}

// NewManager creates a session manager. Initial state is Verifying when a
// persisted session with a token exists, Unauthenticated otherwise.
func NewManager(client API, store SessionStore) *Manager {
	m := &Manager{
		client: client,
		store:  store,
		state:  model.StateUnauthenticated,
	}

	if session, ok := store.LoadSession(); ok && session.HasToken() {
		m.session = session
		m.session.Username = usernameFromToken(session.AccessToken)
		m.state = model.StateVerifying
	} else if ok {
		// A username-only slot belongs to a registration that never logged
		// in; it grants nothing at startup.
		store.ClearSession()
	}

	return m
}

// SetStateCallback sets the callback invoked on every state transition
func (m *Manager) SetStateCallback(callback func(model.SessionState, model.Session)) {
	m.mu.Lock()
	m.onChange = callback
	m.mu.Unlock()
}

// State returns the current authentication state
func (m *Manager) State() model.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Session returns the current session
func (m *Manager) Session() model.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Token returns the current bearer token, empty when unauthenticated
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.AccessToken
}

// StartupVerify performs the startup token verification. It is a no-op unless
// the manager is in Verifying. A failed verification forces a full logout.
func (m *Manager) StartupVerify(ctx context.Context) {
	m.mu.RLock()
	state := m.state
	token := m.session.AccessToken
	m.mu.RUnlock()

	if state != model.StateVerifying {
		return
	}

	if err := m.client.VerifyToken(ctx, token); err != nil {
		log.Printf("Startup token verification failed: %v", err)
		m.store.ClearSession()
		m.transition(model.StateUnauthenticated, model.Session{})
		return
	}

	log.Printf("Startup token verified")
	m.mu.RLock()
	session := m.session
	m.mu.RUnlock()
	m.transition(model.StateAuthenticated, session)
}

// Login authenticates with the auth service and persists the new session
func (m *Manager) Login(ctx context.Context, username, password string) error {
	session, err := m.client.Login(ctx, username, password)
	if err != nil {
		log.Printf("Login failed for %s: %v", username, err)
		return err
	}

	if err := m.store.SaveSession(session); err != nil {
		log.Printf("Failed to persist session: %v", err)
	}

	// The login response carries no username; decode the token's subject
	// claim for display only. Verification stays server-side.
	session.Username = usernameFromToken(session.AccessToken)
	if session.Username == "" {
		session.Username = username
	}

	log.Printf("User %s logged in", username)
	m.transition(model.StateAuthenticated, session)
	return nil
}

// Register creates an account and signs the user in with a username-only
// session, matching the registration flow of the service.
func (m *Manager) Register(ctx context.Context, username, password string) error {
	session, err := m.client.Register(ctx, username, password)
	if err != nil {
		log.Printf("Registration failed for %s: %v", username, err)
		return err
	}

	if err := m.store.SaveSession(session); err != nil {
		log.Printf("Failed to persist session: %v", err)
	}

	log.Printf("User %s registered", username)
	m.transition(model.StateAuthenticated, session)
	return nil
}

// Logout clears the session and the persisted slot
func (m *Manager) Logout() {
	m.store.ClearSession()
	log.Printf("User logged out")
	m.transition(model.StateUnauthenticated, model.Session{})
}

// transition updates state and notifies the UI callback outside the lock
func (m *Manager) transition(state model.SessionState, session model.Session) {
	m.mu.Lock()
	m.state = state
	m.session = session
	callback := m.onChange
	m.mu.Unlock()

	if callback != nil {
		callback(state, session)
	}
}

// usernameFromToken extracts the subject claim from the access token without
// verifying the signature. The claim is used for display only.
func usernameFromToken(token string) string {
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
