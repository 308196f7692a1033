// Package session holds the client's authentication state: who is logged in,
// whether a state transition is in flight, and the operations that mutate it.
//
// The session is an explicitly owned object injected into the UI layer; all
// transitions go through Bootstrap, Login, Register and Logout. By policy,
// Bootstrap and Logout never surface errors: they log and settle into the
// anonymous state instead. Login and Register return their errors so the UI
// can render them.
package session

import (
	"context"
	"sync"

	"itemvault/internal/client/api"
	"itemvault/internal/client/models"
	"itemvault/internal/logging"
)

// State is the session's lifecycle state.
type State string

const (
	// StateBootstrapping is the initial state, before Bootstrap has resolved.
	StateBootstrapping State = "bootstrapping"
	// StateAuthenticated means a user is present.
	StateAuthenticated State = "authenticated"
	// StateAnonymous means no user is present.
	StateAnonymous State = "anonymous"
)

// Session is the process-wide authentication state. Safe for concurrent use.
type Session struct {
	client api.Client
	log    logging.Logger

	mu      sync.Mutex
	state   State
	user    *models.User
	loading bool
}

func New(client api.Client, log logging.Logger) *Session {
	return &Session{
		client: client,
		log:    log,
		state:  StateBootstrapping,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the current user, or nil when anonymous or bootstrapping.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether a user is present. This is independent of
// token presence on the API client; the two can transiently disagree during
// bootstrap or after a failed refresh.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// IsLoading reports whether a session operation is in flight.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Session) settle(state State, user *models.User) {
	s.mu.Lock()
	s.state = state
	s.user = user
	s.mu.Unlock()
}

// Bootstrap derives the initial session state from persisted tokens.
//
// With no held access token it settles into Anonymous without touching the
// network. With a token and a persisted user record, that record is trusted.
// With a token but no record, the current user is fetched once; any failure
// clears all tokens and settles into Anonymous. Errors are never returned.
func (s *Session) Bootstrap(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	if !s.client.IsAuthenticated() {
		s.settle(StateAnonymous, nil)
		return
	}

	if stored := s.client.StoredUser(ctx); stored != nil {
		s.settle(StateAuthenticated, stored)
		return
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.log.Warn(ctx, "session bootstrap failed, dropping persisted tokens", "error", err)
		if cerr := s.client.ClearTokens(ctx); cerr != nil {
			s.log.Warn(ctx, "failed to clear tokens", "error", cerr)
		}
		s.settle(StateAnonymous, nil)
		return
	}

	s.settle(StateAuthenticated, user)
}

// Login authenticates with email/password. On failure the prior state is
// left untouched and the error is returned for display.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.Login(ctx, models.LoginData{Email: email, Password: password})
	if err != nil {
		return err
	}

	s.settle(StateAuthenticated, &resp.User)
	return nil
}

// Register creates an account and logs the new user in. Same failure
// semantics as Login.
func (s *Session) Register(ctx context.Context, email, password, name string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.Register(ctx, models.RegisterData{Email: email, Password: password, Name: name})
	if err != nil {
		return err
	}

	s.settle(StateAuthenticated, &resp.User)
	return nil
}

// Logout ends the session. It always settles into Anonymous; the API
// client's logout cannot fail from our point of view.
func (s *Session) Logout(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	s.client.Logout(ctx)
	s.settle(StateAnonymous, nil)
}
