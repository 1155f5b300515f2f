// Package adminsdk provides a typed Go client for the collab admin API,
// plus the wire types shared between the client and the server handlers.
package adminsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a client for the collab admin API. Every call carries the
// shared API token in the Authorization header.
type Client struct {
	BaseURL    string
	APIToken   string
	HTTPClient *http.Client
}

// New creates a new admin API client.
func New(baseURL, apiToken string) *Client {
	return &Client{
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		APIToken: apiToken,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListUsers returns every user in the directory.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser registers a new user.
func (c *Client) CreateUser(ctx context.Context, login string, admin bool) (User, error) {
	var user User
	err := c.do(ctx, http.MethodPost, "/users", CreateUserRequest{Login: login, Admin: admin}, &user)
	return user, err
}

// GetUser fetches a user by provider login.
func (c *Client) GetUser(ctx context.Context, login string) (User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(login), nil, &user)
	return user, err
}

// UpdateUser overwrites a user's admin flag.
func (c *Client) UpdateUser(ctx context.Context, userID string, admin bool) error {
	return c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(userID), UpdateUserRequest{Admin: admin}, nil)
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(userID), nil, nil)
}

// ListInviteCodes returns the invite codes owned by a user.
func (c *Client) ListInviteCodes(ctx context.Context, userID string) ([]InviteCode, error) {
	var codes []InviteCode
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/invite_codes", nil, &codes)
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// CreateInviteCode creates a server-generated invite code for a user.
func (c *Client) CreateInviteCode(ctx context.Context, userID string, allowedUsageCount int) error {
	return c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(userID)+"/invite_codes",
		CreateInviteCodeRequest{AllowedUsageCount: allowedUsageCount}, nil)
}

// UpdateInviteCode overwrites the remaining count of an invite code.
func (c *Client) UpdateInviteCode(ctx context.Context, code string, remainingCount int) error {
	return c.do(ctx, http.MethodPut, "/invite_codes/"+url.PathEscape(code),
		UpdateInviteCodeRequest{RemainingCount: remainingCount}, nil)
}

// CreateAccessToken requests an encrypted access token for the user with
// the given login. publicKey is a base64 DER PKIX RSA public key;
// impersonate may be empty.
func (c *Client) CreateAccessToken(
	ctx context.Context,
	login, publicKey, impersonate string,
) (CreateAccessTokenResponse, error) {
	q := url.Values{}
	q.Set("public_key", publicKey)
	if impersonate != "" {
		q.Set("impersonate", impersonate)
	}

	var resp CreateAccessTokenResponse
	err := c.do(ctx, http.MethodGet,
		"/users/"+url.PathEscape(login)+"/access_tokens?"+q.Encode(), nil, &resp)
	return resp, err
}

// ReportPanic submits a client crash report. The server always accepts.
func (c *Client) ReportPanic(ctx context.Context, version, text string) error {
	return c.do(ctx, http.MethodPost, "/panic", PanicReport{Version: version, Text: text}, nil)
}

// do performs a JSON request against the API and decodes the response
// into out when out is non-nil. Non-2xx responses are returned as
// *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "token "+c.APIToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Error
		apiErr.Description = body.ErrorDescription
	}
	return apiErr
}
