package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Request limits
const (
	DefaultTimeout   = 30 * time.Second
	MaxErrorBodySize = 64 * 1024
)

// Doer abstracts the HTTP client so tests can substitute transports.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns the default client used against both services
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// JoinURL joins a base URL and a path without doubling slashes
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// PostJSON issues a JSON POST. A transport-level failure is returned as a
// KindUnreachable error; any received response is returned as-is for the
// caller to classify.
func PostJSON(ctx context.Context, client Doer, url string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, NewError(KindUnreachable, "no response received: "+err.Error(), 0)
	}
	return resp, nil
}

// Get issues a GET with an optional bearer token. Transport failures map to
// KindUnreachable like PostJSON.
func Get(ctx context.Context, client Doer, url, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	SetBearer(req, token)

	resp, err := client.Do(req)
	if err != nil {
		return nil, NewError(KindUnreachable, "no response received: "+err.Error(), 0)
	}
	return resp, nil
}

// Delete issues a DELETE with a bearer token
func Delete(ctx context.Context, client Doer, url, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	SetBearer(req, token)

	resp, err := client.Do(req)
	if err != nil {
		return nil, NewError(KindUnreachable, "no response received: "+err.Error(), 0)
	}
	return resp, nil
}

// SetBearer attaches the Authorization header when a token is present
func SetBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// DecodeJSON decodes the response body into v and closes it
func DecodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return NewError(KindUnknown, "unrecognized response body: "+err.Error(), resp.StatusCode)
	}
	return nil
}

// errorBody matches the services' error shapes: FastAPI uses {"detail": ...},
// some handlers answer {"message": ...} instead.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// ResponseMessage extracts the human-readable message from an error body,
// falling back to the HTTP status text.
func ResponseMessage(resp *http.Response) string {
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodySize))
	if err == nil && len(raw) > 0 {
		var body errorBody
		if jsonErr := json.Unmarshal(raw, &body); jsonErr == nil {
			if body.Detail != "" {
				return body.Detail
			}
			if body.Message != "" {
				return body.Message
			}
		}
	}
	return http.StatusText(resp.StatusCode)
}

// ErrorFromResponse turns a non-2xx response into a generic KindServerRejected
// error carrying the body message. Callers map specific statuses to more
// precise kinds before falling back to this.
func ErrorFromResponse(resp *http.Response) *Error {
	return NewError(KindServerRejected, ResponseMessage(resp), resp.StatusCode)
}
