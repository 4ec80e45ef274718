package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SameedIlyas/Cloud-Project/internal/api"
)

func TestClient_Login(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		expectKind   api.Kind
		expectToken  string
		expectType   string
	}{
		{"success", http.StatusOK, `{"access_token":"t1","token_type":"bearer"}`, "", "t1", "bearer"},
		{"invalid credentials", http.StatusUnauthorized, `{"detail":"Invalid credentials"}`, api.KindInvalidCredentials, "", ""},
		{"server error", http.StatusInternalServerError, `{"detail":"Internal Server Error"}`, api.KindServerRejected, "", ""},
		{"empty token", http.StatusOK, `{}`, api.KindUnknown, "", ""},
	}

	for _, test := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != PathLogin {
				t.Errorf("%s: unexpected request %s %s", test.name, r.Method, r.URL.Path)
			}
			w.WriteHeader(test.status)
			fmt.Fprint(w, test.body)
		}))

		client := NewClient(server.URL, server.Client())
		session, err := client.Login(context.Background(), "alice", "secret")

		if test.expectKind == "" {
			if err != nil {
				t.Fatalf("%s: expected no error, got %v", test.name, err)
			}
			if session.AccessToken != test.expectToken || session.TokenType != test.expectType {
				t.Errorf("%s: unexpected session %+v", test.name, session)
			}
		} else {
			if !api.IsKind(err, test.expectKind) {
				t.Errorf("%s: expected kind %s, got %v", test.name, test.expectKind, err)
			}
		}
		server.Close()
	}
}

func TestClient_Login_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil)

	_, err := client.Login(context.Background(), "alice", "secret")
	if !api.IsKind(err, api.KindUnreachable) {
		t.Errorf("Expected KindUnreachable, got %v", err)
	}
}

func TestClient_Register(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		expectKind api.Kind
	}{
		{"created", http.StatusCreated, `{"message":"User registered successfully"}`, ""},
		{"duplicate", http.StatusBadRequest, `{"detail":"Username already exists"}`, api.KindDuplicateOrInvalid},
		{"server error", http.StatusBadGateway, ``, api.KindServerRejected},
	}

	for _, test := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != PathRegister {
				t.Errorf("%s: unexpected request %s %s", test.name, r.Method, r.URL.Path)
			}
			w.WriteHeader(test.status)
			fmt.Fprint(w, test.body)
		}))

		client := NewClient(server.URL, server.Client())
		session, err := client.Register(context.Background(), "bob", "secret")

		if test.expectKind == "" {
			if err != nil {
				t.Fatalf("%s: expected no error, got %v", test.name, err)
			}
			if session.Username != "bob" || session.HasToken() {
				t.Errorf("%s: expected username-only session, got %+v", test.name, session)
			}
		} else if !api.IsKind(err, test.expectKind) {
			t.Errorf("%s: expected kind %s, got %v", test.name, test.expectKind, err)
		}
		server.Close()
	}
}

func TestClient_VerifyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathVerify {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("token") == "good" {
			fmt.Fprint(w, `{"message":"Token is valid"}`)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"Invalid token"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	if err := client.VerifyToken(context.Background(), "good"); err != nil {
		t.Errorf("Expected valid token, got %v", err)
	}

	err := client.VerifyToken(context.Background(), "bad")
	if !api.IsKind(err, api.KindInvalidToken) {
		t.Errorf("Expected KindInvalidToken, got %v", err)
	}

	// Network failure also reads as an invalid token
	unreachable := NewClient("http://127.0.0.1:1", nil)
	err = unreachable.VerifyToken(context.Background(), "good")
	if !api.IsKind(err, api.KindInvalidToken) {
		t.Errorf("Expected KindInvalidToken for unreachable service, got %v", err)
	}
}
