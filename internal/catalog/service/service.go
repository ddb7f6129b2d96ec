package service

import (
	"context"

	"restaurant-orders/internal/catalog/repository"
	"restaurant-orders/internal/domain"
)

type CatalogServiceInterface interface {
	ListMenu(ctx context.Context) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, in domain.MenuItemInput) (domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, in domain.MenuItemInput) (domain.MenuItem, bool, error)
	DeleteMenuItem(ctx context.Context, id int64) (bool, error)

	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, in domain.SettingsInput) (domain.Settings, error)
}

func New(repo repository.CatalogRepoInterface) *CatalogService {
	return &CatalogService{repo: repo}
}
