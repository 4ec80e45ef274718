package model

import "testing"

func TestSession_IsZero(t *testing.T) {
	tests := []struct {
		session  Session
		expected bool
	}{
		{Session{}, true},
		{Session{AccessToken: "t1", TokenType: "bearer"}, false},
		{Session{Username: "alice"}, false},
	}

	for _, test := range tests {
		if result := test.session.IsZero(); result != test.expected {
			t.Errorf("IsZero() for %+v = %v, expected %v", test.session, result, test.expected)
		}
	}
}

func TestSession_HasToken(t *testing.T) {
	tests := []struct {
		session  Session
		expected bool
	}{
		{Session{}, false},
		{Session{AccessToken: "t1", TokenType: "bearer"}, true},
		{Session{Username: "alice"}, false},
	}

	for _, test := range tests {
		if result := test.session.HasToken(); result != test.expected {
			t.Errorf("HasToken() for %+v = %v, expected %v", test.session, result, test.expected)
		}
	}
}

func TestSessionState(t *testing.T) {
	if StateAuthenticated.String() != "Authenticated" {
		t.Errorf("Expected 'Authenticated', got %s", StateAuthenticated.String())
	}

	if !StateAuthenticated.IsAuthenticated() {
		t.Error("StateAuthenticated should be authenticated")
	}

	if StateVerifying.IsAuthenticated() {
		t.Error("StateVerifying must not count as authenticated")
	}

	if StateUnauthenticated.IsAuthenticated() {
		t.Error("StateUnauthenticated must not count as authenticated")
	}
}
