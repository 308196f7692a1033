// Package services contains the application services sitting between the CLI
// and the API client. This file defines the item service: CRUD over the
// remote item store with client-side validation mirroring the backend's
// rules, so the common mistakes are caught without a round trip.
package services

import (
	"context"
	"errors"
	"strings"

	"itemvault/internal/client/api"
	"itemvault/internal/client/models"
)

var (
	ErrNameRequired  = errors.New("name cannot be empty")
	ErrPricePositive = errors.New("price must be a positive number")
)

// ItemService defines the item operations available to the UI.
type ItemService interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	Create(ctx context.Context, data models.CreateItemData) (*models.Item, error)
	Update(ctx context.Context, id int64, data models.UpdateItemData) (*models.Item, error)
	Delete(ctx context.Context, id int64) error
}

type itemService struct {
	client api.Client
}

// NewItemService constructs an ItemService bound to the given API client.
func NewItemService(client api.Client) ItemService {
	return &itemService{client: client}
}

func (s *itemService) List(ctx context.Context) ([]models.Item, error) {
	return s.client.ListItems(ctx)
}

func (s *itemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	return s.client.GetItem(ctx, id)
}

func (s *itemService) Create(ctx context.Context, data models.CreateItemData) (*models.Item, error) {
	if strings.TrimSpace(data.Name) == "" {
		return nil, ErrNameRequired
	}
	if data.Price <= 0 {
		return nil, ErrPricePositive
	}
	return s.client.CreateItem(ctx, data)
}

func (s *itemService) Update(ctx context.Context, id int64, data models.UpdateItemData) (*models.Item, error) {
	if data.Name != nil && strings.TrimSpace(*data.Name) == "" {
		return nil, ErrNameRequired
	}
	if data.Price != nil && *data.Price <= 0 {
		return nil, ErrPricePositive
	}
	return s.client.UpdateItem(ctx, id, data)
}

func (s *itemService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteItem(ctx, id)
}
