package api

import (
	"context"

	"itemvault/internal/client/models"
)

// Client is the transport-agnostic contract for talking to the item-store
// backend. The CLI and session layers depend on this interface only.
type Client interface {
	// Auth.
	Login(ctx context.Context, credentials models.LoginData) (*models.AuthResponse, error)
	Register(ctx context.Context, userData models.RegisterData) (*models.AuthResponse, error)
	Logout(ctx context.Context)
	RefreshAccessToken(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)

	// Items.
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	CreateItem(ctx context.Context, data models.CreateItemData) (*models.Item, error)
	UpdateItem(ctx context.Context, id int64, data models.UpdateItemData) (*models.Item, error)
	DeleteItem(ctx context.Context, id int64) error

	// Token state.
	SetTokens(ctx context.Context, tokens models.AuthTokens) error
	ClearTokens(ctx context.Context) error
	IsAuthenticated() bool
	StoredUser(ctx context.Context) *models.User

	// Liveness.
	Ping(ctx context.Context) error

	Close() error
}
