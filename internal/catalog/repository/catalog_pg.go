package repository

import (
	"context"
	"database/sql"
	"errors"

	"restaurant-orders/internal/domain"
)

type CatalogRepo struct {
	db *sql.DB
}

func (r *CatalogRepo) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, price, category, image_ref, created_at, updated_at
FROM menu_items
ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

// FindByIDs fetches the catalog rows for a set of ids in one query. Ids that
// do not exist are simply absent from the result; callers decide what a miss
// means.
func (r *CatalogRepo) FindByIDs(ctx context.Context, ids []int64) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, price, category, image_ref, created_at, updated_at
FROM menu_items
WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

func (r *CatalogRepo) CreateMenuItem(ctx context.Context, in domain.MenuItemInput) (domain.MenuItem, error) {
	it := domain.MenuItem{
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
		ImageRef: in.ImageRef,
	}
	err := r.db.QueryRowContext(ctx, `
INSERT INTO menu_items (name, price, category, image_ref)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`,
		in.Name, in.Price, in.Category, in.ImageRef,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return domain.MenuItem{}, err
	}
	return it, nil
}

func (r *CatalogRepo) UpdateMenuItem(ctx context.Context, id int64, in domain.MenuItemInput) (domain.MenuItem, bool, error) {
	it := domain.MenuItem{
		ID:       id,
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
		ImageRef: in.ImageRef,
	}
	err := r.db.QueryRowContext(ctx, `
UPDATE menu_items
SET name = $2, price = $3, category = $4, image_ref = $5, updated_at = NOW()
WHERE id = $1
RETURNING created_at, updated_at`,
		id, in.Name, in.Price, in.Category, in.ImageRef,
	).Scan(&it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MenuItem{}, false, nil
	}
	if err != nil {
		return domain.MenuItem{}, false, err
	}
	return it, true, nil
}

func (r *CatalogRepo) DeleteMenuItem(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CatalogRepo) GetSettings(ctx context.Context) (domain.Settings, bool, error) {
	var s domain.Settings
	err := r.db.QueryRowContext(ctx, `
SELECT discount_rate, tax_rate, updated_at
FROM settings
WHERE id = 1`).Scan(&s.DiscountRate, &s.TaxRate, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Settings{}, false, nil
	}
	if err != nil {
		return domain.Settings{}, false, err
	}
	return s, true, nil
}

// UpdateSettings mutates the singleton row in place; last write wins.
func (r *CatalogRepo) UpdateSettings(ctx context.Context, in domain.SettingsInput) (domain.Settings, error) {
	var s domain.Settings
	err := r.db.QueryRowContext(ctx, `
INSERT INTO settings (id, discount_rate, tax_rate)
VALUES (1, $1, $2)
ON CONFLICT (id) DO UPDATE SET
  discount_rate = EXCLUDED.discount_rate,
  tax_rate = EXCLUDED.tax_rate,
  updated_at = NOW()
RETURNING discount_rate, tax_rate, updated_at`,
		in.DiscountRate, in.TaxRate,
	).Scan(&s.DiscountRate, &s.TaxRate, &s.UpdatedAt)
	if err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

func scanMenuItems(rows *sql.Rows) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for rows.Next() {
		var it domain.MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Category, &it.ImageRef,
			&it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
