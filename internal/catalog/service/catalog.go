package service

import (
	"context"

	"restaurant-orders/internal/catalog/repository"
	"restaurant-orders/internal/domain"
)

type CatalogService struct {
	repo repository.CatalogRepoInterface
}

func (s *CatalogService) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.ListMenu(ctx)
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, in domain.MenuItemInput) (domain.MenuItem, error) {
	if err := validateMenuItem(in); err != nil {
		return domain.MenuItem{}, err
	}
	return s.repo.CreateMenuItem(ctx, in)
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, id int64, in domain.MenuItemInput) (domain.MenuItem, bool, error) {
	if err := validateMenuItem(in); err != nil {
		return domain.MenuItem{}, false, err
	}
	return s.repo.UpdateMenuItem(ctx, id, in)
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteMenuItem(ctx, id)
}

func (s *CatalogService) GetSettings(ctx context.Context) (domain.Settings, error) {
	settings, ok, err := s.repo.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if !ok {
		return domain.Settings{}, domain.ErrSettingsUnavailable
	}
	return settings, nil
}

func (s *CatalogService) UpdateSettings(ctx context.Context, in domain.SettingsInput) (domain.Settings, error) {
	if in.DiscountRate < 0 || in.DiscountRate > 100 {
		return domain.Settings{}, &domain.ValidationError{
			Field: "discount_rate", Message: "must be between 0 and 100",
		}
	}
	if in.TaxRate < 0 {
		return domain.Settings{}, &domain.ValidationError{
			Field: "tax_rate", Message: "must not be negative",
		}
	}
	return s.repo.UpdateSettings(ctx, in)
}

func validateMenuItem(in domain.MenuItemInput) error {
	if in.Name == "" {
		return &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if in.Price < 0 {
		return &domain.ValidationError{Field: "price", Message: "must not be negative"}
	}
	if in.Category == "" {
		return &domain.ValidationError{Field: "category", Message: "category is required"}
	}
	return nil
}
