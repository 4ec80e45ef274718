package auth

// Package auth implements the client for the authentication service and the
// session manager that owns process-wide authentication state. The manager is
// a state machine over Unauthenticated/Verifying/Authenticated; transitions
// are propagated to the UI through a callback and mirrored into the persisted
// session slot.
