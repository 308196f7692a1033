package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"itemvault/internal/client/models"
	"itemvault/internal/client/repositories/metadata"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *MetadataTokenStore {
	t.Helper()
	db, err := InitDatabase(context.Background(), "file:tokenstore_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMetadataTokenStore(metadata.NewSQLiteRepository(db))
}

func TestMetadataTokenStore_EmptyStore(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	tokens, err := s.Tokens(ctx)
	require.NoError(t, err)
	require.Empty(t, tokens.AccessToken)
	require.Empty(t, tokens.RefreshToken)
	require.Nil(t, s.User(ctx))
}

func TestMetadataTokenStore_SetTokensRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetTokens(ctx, models.AuthTokens{AccessToken: "T1", RefreshToken: "T2"}))

	tokens, err := s.Tokens(ctx)
	require.NoError(t, err)
	require.Equal(t, "T1", tokens.AccessToken)
	require.Equal(t, "T2", tokens.RefreshToken)
}

func TestMetadataTokenStore_SetAccessToken_LeavesRefreshAlone(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetTokens(ctx, models.AuthTokens{AccessToken: "T1", RefreshToken: "T2"}))
	require.NoError(t, s.SetAccessToken(ctx, "T3"))

	tokens, err := s.Tokens(ctx)
	require.NoError(t, err)
	require.Equal(t, "T3", tokens.AccessToken)
	require.Equal(t, "T2", tokens.RefreshToken)
}

func TestMetadataTokenStore_UserRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	u := models.User{ID: 1, Email: "a@b.com", Name: "A"}
	require.NoError(t, s.SetUser(ctx, u))

	got := s.User(ctx)
	require.NotNil(t, got)
	require.Equal(t, u, *got)
}

func TestMetadataTokenStore_MalformedUser_TreatedAsAbsent(t *testing.T) {
	db, err := InitDatabase(context.Background(), "file:tokenstore_malformed?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := metadata.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(context.Background(), KeyUser, []byte("{not json")))

	s := NewMetadataTokenStore(repo)
	require.Nil(t, s.User(context.Background()))
}

func TestMetadataTokenStore_Clear_RemovesEverythingAndIsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetTokens(ctx, models.AuthTokens{AccessToken: "T1", RefreshToken: "T2"}))
	require.NoError(t, s.SetUser(ctx, models.User{ID: 1, Email: "a@b.com", Name: "A"}))

	require.NoError(t, s.Clear(ctx))

	tokens, err := s.Tokens(ctx)
	require.NoError(t, err)
	require.Empty(t, tokens.AccessToken)
	require.Empty(t, tokens.RefreshToken)
	require.Nil(t, s.User(ctx))

	// clearing again is a no-op
	require.NoError(t, s.Clear(ctx))
}
