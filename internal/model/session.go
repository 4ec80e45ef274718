package model

// Session is the client's record of the currently authenticated user.
// A session saved right after registration carries only the username; the
// bearer credential appears once the user logs in.
type Session struct {
	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	Username    string `json:"username,omitempty"`
}

// IsZero returns true when the session holds neither a token nor a username.
func (s Session) IsZero() bool {
	return s.AccessToken == "" && s.Username == ""
}

// HasToken returns true when the session carries a bearer credential.
func (s Session) HasToken() bool {
	return s.AccessToken != ""
}

// DisplayName returns the username for UI display, empty when unknown.
func (s Session) DisplayName() string {
	return s.Username
}

// SessionState represents the authentication state of the client
type SessionState string

const (
	// StateUnauthenticated means no valid session exists
	StateUnauthenticated SessionState = "Unauthenticated"

	// StateVerifying means a persisted token is being verified at startup
	StateVerifying SessionState = "Verifying"

	// StateAuthenticated means the user holds a verified session
	StateAuthenticated SessionState = "Authenticated"
)

// String returns the string representation of SessionState
func (ss SessionState) String() string {
	return string(ss)
}

// IsAuthenticated returns true when protected screens may be shown
func (ss SessionState) IsAuthenticated() bool {
	return ss == StateAuthenticated
}
