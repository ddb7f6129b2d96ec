package repository

import (
	"context"
	"database/sql"

	"restaurant-orders/internal/domain"
)

type CatalogRepoInterface interface {
	ListMenu(ctx context.Context) ([]domain.MenuItem, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, in domain.MenuItemInput) (domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, in domain.MenuItemInput) (domain.MenuItem, bool, error)
	DeleteMenuItem(ctx context.Context, id int64) (bool, error)

	GetSettings(ctx context.Context) (domain.Settings, bool, error)
	UpdateSettings(ctx context.Context, in domain.SettingsInput) (domain.Settings, error)
}

func New(db *sql.DB) *CatalogRepo { return &CatalogRepo{db: db} }
