package storage

import (
	"context"
	"encoding/json"

	"itemvault/internal/client/models"
	"itemvault/internal/client/repositories/metadata"
)

// Keys under which auth state is persisted. Tokens are opaque strings; the
// user record is stored JSON-encoded.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUser         = "user"
)

// TokenStore is the persistence surface the API client uses for its auth
// state: the token pair and the last-known user record.
//
// Writes are plain key-value sets with last-write-wins semantics; callers
// must not assume the three keys change atomically.
type TokenStore interface {
	Tokens(ctx context.Context) (models.AuthTokens, error)
	SetTokens(ctx context.Context, tokens models.AuthTokens) error
	SetAccessToken(ctx context.Context, token string) error
	User(ctx context.Context) *models.User
	SetUser(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

// MetadataTokenStore keeps auth state as rows in the metadata repository.
type MetadataTokenStore struct {
	repo metadata.Repository
}

func NewMetadataTokenStore(repo metadata.Repository) *MetadataTokenStore {
	return &MetadataTokenStore{repo: repo}
}

// Tokens returns the persisted token pair. Absent keys yield empty strings.
func (s *MetadataTokenStore) Tokens(ctx context.Context) (models.AuthTokens, error) {
	access, err := s.repo.Get(ctx, KeyAccessToken)
	if err != nil {
		return models.AuthTokens{}, err
	}
	refresh, err := s.repo.Get(ctx, KeyRefreshToken)
	if err != nil {
		return models.AuthTokens{}, err
	}
	return models.AuthTokens{AccessToken: string(access), RefreshToken: string(refresh)}, nil
}

func (s *MetadataTokenStore) SetTokens(ctx context.Context, tokens models.AuthTokens) error {
	if err := s.repo.Set(ctx, KeyAccessToken, []byte(tokens.AccessToken)); err != nil {
		return err
	}
	return s.repo.Set(ctx, KeyRefreshToken, []byte(tokens.RefreshToken))
}

// SetAccessToken replaces the access token only, leaving the refresh token
// untouched. Used after a token refresh.
func (s *MetadataTokenStore) SetAccessToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, KeyAccessToken, []byte(token))
}

// User returns the persisted user record, or nil if it is absent or cannot
// be decoded. Malformed data is treated as absence, not as an error.
func (s *MetadataTokenStore) User(ctx context.Context) *models.User {
	raw, err := s.repo.Get(ctx, KeyUser)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

func (s *MetadataTokenStore) SetUser(ctx context.Context, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, KeyUser, raw)
}

// Clear removes the token pair and the user record. Clearing an already
// empty store is a no-op.
func (s *MetadataTokenStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, KeyAccessToken); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, KeyRefreshToken); err != nil {
		return err
	}
	return s.repo.Delete(ctx, KeyUser)
}
