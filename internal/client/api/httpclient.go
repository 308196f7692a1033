package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"itemvault/internal/client/models"
	"itemvault/internal/client/storage"
	"itemvault/internal/logging"
)

// HTTPClient is the REST/JSON implementation of Client. It owns the token
// pair in memory, mirrors it into a TokenStore, and performs at most one
// transparent refresh-and-retry per authenticated call.
type HTTPClient struct {
	baseURL string
	origin  string
	http    *http.Client
	store   storage.TokenStore
	log     logging.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the API at baseURL (e.g.
// "http://localhost:8000/api") and loads any persisted tokens into memory.
func NewHTTPClient(ctx context.Context, baseURL string, timeout time.Duration, store storage.TokenStore, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url %q: %w", baseURL, err)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		origin:  u.Scheme + "://" + u.Host,
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}

	tokens, err := store.Tokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted tokens: %w", err)
	}
	c.accessToken = tokens.AccessToken
	c.refreshToken = tokens.RefreshToken

	return c, nil
}

// request describes a single API call for do.
type request struct {
	method      string
	path        string
	body        any
	requireAuth bool
	// bearer overrides the attached credential; used by the refresh call,
	// which authenticates with the refresh token.
	bearer string
}

// do executes a request and decodes a 2xx JSON body into out (out may be
// nil). A 401 on an auth-required call with a refresh token held triggers
// one refresh and one resend of the identical request; if anything on that
// path fails, tokens are cleared and ErrSessionExpired is returned.
func (c *HTTPClient) do(ctx context.Context, r request, out any) error {
	fullURL := c.baseURL + r.path

	var payload []byte
	if r.body != nil {
		var err error
		payload, err = json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	requestID := uuid.NewString()

	bearer := r.bearer
	if bearer == "" && r.requireAuth {
		bearer = c.heldAccessToken()
	}

	status, body, err := c.send(ctx, r.method, fullURL, payload, bearer, requestID)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", r.method, "path", r.path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request done", "method", r.method, "path", r.path, "status", status, "request_id", requestID)

	if status == http.StatusUnauthorized && r.requireAuth && c.heldRefreshToken() != "" {
		status, body, err = c.refreshAndRetry(ctx, r.method, fullURL, payload, requestID)
		if err != nil {
			c.log.Warn(ctx, "token refresh failed, clearing session", "path", r.path, "request_id", requestID, "error", err)
			_ = c.ClearTokens(ctx)
			return ErrSessionExpired
		}
	}

	if status >= 200 && status < 300 {
		return decodeBody(status, body, out)
	}

	return newRequestError(status, errorMessage(body))
}

// refreshAndRetry refreshes the access token and resends the request once.
// Any failure, including a non-2xx retry response, is returned as an error.
func (c *HTTPClient) refreshAndRetry(ctx context.Context, method, fullURL string, payload []byte, requestID string) (int, []byte, error) {
	if err := c.RefreshAccessToken(ctx); err != nil {
		return 0, nil, err
	}

	status, body, err := c.send(ctx, method, fullURL, payload, c.heldAccessToken(), requestID)
	if err != nil {
		return 0, nil, err
	}
	if status < 200 || status >= 300 {
		return 0, nil, fmt.Errorf("retry failed: status %d", status)
	}
	return status, body, nil
}

// send performs one HTTP round trip and drains the response body.
func (c *HTTPClient) send(ctx context.Context, method, fullURL string, payload []byte, bearer, requestID string) (int, []byte, error) {
	var rdr io.Reader
	if payload != nil {
		rdr = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, rdr)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func decodeBody(status int, body []byte, out any) error {
	if out == nil || status == http.StatusNoContent || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage extracts a message from the backend's JSON error body, which
// is either {"error": "..."} or {"errors": ["...", ...]}.
func errorMessage(body []byte) string {
	var eb struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Error != "" {
		return eb.Error
	}
	if len(eb.Errors) > 0 {
		return strings.Join(eb.Errors, ", ")
	}
	return ""
}

func (c *HTTPClient) heldAccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken
}

func (c *HTTPClient) heldRefreshToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshToken
}

// Login authenticates with email/password. On success the returned token
// pair and user record are persisted and the full response is returned.
// Login never triggers the refresh path.
func (c *HTTPClient) Login(ctx context.Context, credentials models.LoginData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/login", body: credentials}, &resp); err != nil {
		return nil, err
	}

	if err := c.SetTokens(ctx, models.AuthTokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}); err != nil {
		return nil, err
	}
	if err := c.store.SetUser(ctx, resp.User); err != nil {
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	return &resp, nil
}

// Register creates an account and, like Login, persists the returned tokens
// and user record.
func (c *HTTPClient) Register(ctx context.Context, userData models.RegisterData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/register", body: userData}, &resp); err != nil {
		return nil, err
	}

	if err := c.SetTokens(ctx, models.AuthTokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}); err != nil {
		return nil, err
	}
	if err := c.store.SetUser(ctx, resp.User); err != nil {
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	return &resp, nil
}

// Logout tells the server to revoke the session if an access token is held,
// then clears all local auth state. The outcome of the network call is
// ignored by policy: logout cannot fail from the caller's point of view.
func (c *HTTPClient) Logout(ctx context.Context) {
	if c.IsAuthenticated() {
		if err := c.do(ctx, request{method: http.MethodDelete, path: "/auth/logout", requireAuth: true}, nil); err != nil {
			c.log.Warn(ctx, "logout request failed, clearing local state anyway", "error", err)
		}
	}

	if err := c.ClearTokens(ctx); err != nil {
		c.log.Warn(ctx, "failed to clear persisted tokens", "error", err)
	}
}

// RefreshAccessToken exchanges the held refresh token for a new access
// token. The refresh token itself is left untouched.
func (c *HTTPClient) RefreshAccessToken(ctx context.Context) error {
	rt := c.heldRefreshToken()
	if rt == "" {
		return ErrNoRefreshToken
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/refresh", bearer: rt}, &resp); err != nil {
		return err
	}

	c.mu.Lock()
	c.accessToken = resp.AccessToken
	c.mu.Unlock()

	if err := c.store.SetAccessToken(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("failed to persist access token: %w", err)
	}
	return nil
}

// CurrentUser fetches the authenticated principal from the server.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/auth/me", requireAuth: true}, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, request{method: http.MethodGet, path: "/items", requireAuth: true}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	if err := c.do(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/items/%d", id), requireAuth: true}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) CreateItem(ctx context.Context, data models.CreateItemData) (*models.Item, error) {
	var item models.Item
	if err := c.do(ctx, request{method: http.MethodPost, path: "/items", body: data, requireAuth: true}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) UpdateItem(ctx context.Context, id int64, data models.UpdateItemData) (*models.Item, error) {
	var item models.Item
	if err := c.do(ctx, request{method: http.MethodPut, path: fmt.Sprintf("/items/%d", id), body: data, requireAuth: true}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/items/%d", id), requireAuth: true}, nil)
}

// SetTokens replaces the token pair in memory and in the store. Token
// contents are opaque and not validated.
func (c *HTTPClient) SetTokens(ctx context.Context, tokens models.AuthTokens) error {
	c.mu.Lock()
	c.accessToken = tokens.AccessToken
	c.refreshToken = tokens.RefreshToken
	c.mu.Unlock()

	if err := c.store.SetTokens(ctx, tokens); err != nil {
		return fmt.Errorf("failed to persist tokens: %w", err)
	}
	return nil
}

// ClearTokens removes the token pair and the persisted user record.
// Clearing an already empty client is a no-op.
func (c *HTTPClient) ClearTokens(ctx context.Context) error {
	c.mu.Lock()
	c.accessToken = ""
	c.refreshToken = ""
	c.mu.Unlock()

	return c.store.Clear(ctx)
}

// IsAuthenticated reports whether an access token is held in memory. It says
// nothing about the token's validity.
func (c *HTTPClient) IsAuthenticated() bool {
	return c.heldAccessToken() != ""
}

// StoredUser returns the persisted user record, or nil when absent or
// malformed.
func (c *HTTPClient) StoredUser(ctx context.Context) *models.User {
	return c.store.User(ctx)
}

// Ping probes the backend's health route at the origin of the API base URL.
func (c *HTTPClient) Ping(ctx context.Context) error {
	status, _, err := c.send(ctx, http.MethodGet, c.origin+"/", nil, "", uuid.NewString())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if status < 200 || status >= 300 {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
