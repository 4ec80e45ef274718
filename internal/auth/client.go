package auth

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SameedIlyas/Cloud-Project/internal/api"
	"github.com/SameedIlyas/Cloud-Project/internal/model"
)

// Service paths
const (
	PathLogin    = "/login/"
	PathRegister = "/register/"
	PathVerify   = "/verify/"
)

// Client issues requests against the authentication service. Every call is a
// single best-effort attempt; failures surface synchronously to the caller.
type Client struct {
	baseURL string
	http    api.Doer
}

// NewClient creates a new auth service client
func NewClient(baseURL string, httpClient api.Doer) *Client {
	if httpClient == nil {
		httpClient = api.NewHTTPClient()
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// credentials is the request body shared by login and register
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse is the login response body
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token session
func (c *Client) Login(ctx context.Context, username, password string) (model.Session, error) {
	resp, err := api.PostJSON(ctx, c.http, api.JoinURL(c.baseURL, PathLogin), credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		return model.Session{}, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var body tokenResponse
		if err := api.DecodeJSON(resp, &body); err != nil {
			return model.Session{}, err
		}
		if body.AccessToken == "" {
			return model.Session{}, api.NewError(api.KindUnknown, "login response carried no token", resp.StatusCode)
		}
		return model.Session{AccessToken: body.AccessToken, TokenType: body.TokenType}, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return model.Session{}, api.NewError(api.KindInvalidCredentials, api.ResponseMessage(resp), resp.StatusCode)
	default:
		return model.Session{}, api.ErrorFromResponse(resp)
	}
}

// Register creates a new account. The returned session carries only the
// username; a bearer token appears once the user logs in.
func (c *Client) Register(ctx context.Context, username, password string) (model.Session, error) {
	resp, err := api.PostJSON(ctx, c.http, api.JoinURL(c.baseURL, PathRegister), credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		return model.Session{}, err
	}

	switch {
	case resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK:
		resp.Body.Close()
		return model.Session{Username: username}, nil
	case resp.StatusCode == http.StatusBadRequest:
		return model.Session{}, api.NewError(api.KindDuplicateOrInvalid, api.ResponseMessage(resp), resp.StatusCode)
	default:
		return model.Session{}, api.ErrorFromResponse(resp)
	}
}

// VerifyToken checks the token with the auth service. Any non-2xx answer or
// network failure means the token is invalid.
func (c *Client) VerifyToken(ctx context.Context, token string) error {
	verifyURL := api.JoinURL(c.baseURL, PathVerify) + "?token=" + url.QueryEscape(token)

	resp, err := api.Get(ctx, c.http, verifyURL, "")
	if err != nil {
		return api.NewError(api.KindInvalidToken, "token verification failed: "+err.Error(), 0)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return api.NewError(api.KindInvalidToken, api.ResponseMessage(resp), resp.StatusCode)
	}
	resp.Body.Close()
	return nil
}
