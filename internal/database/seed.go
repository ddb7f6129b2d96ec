package database

import (
	"context"
	"database/sql"
	"fmt"
)

type seedItem struct {
	name     string
	price    float64
	category string
	imageRef string
}

var defaultMenu = []seedItem{
	{"Margherita Pizza", 250, "pizza", "images/margherita.jpg"},
	{"Pepperoni Pizza", 300, "pizza", "images/pepperoni.jpg"},
	{"Caesar Salad", 150, "salad", "images/caesar.jpg"},
	{"Garlic Bread", 90, "starter", "images/garlic-bread.jpg"},
	{"Spaghetti Bolognese", 220, "pasta", "images/bolognese.jpg"},
	{"Tiramisu", 120, "dessert", "images/tiramisu.jpg"},
	{"Lemonade", 60, "drink", "images/lemonade.jpg"},
}

const (
	defaultDiscountRate = 0    // percent
	defaultTaxRate      = 0.10 // fraction
)

// Seed inserts the default menu when the catalog is empty and creates the
// settings singleton if absent. Safe to run on every startup.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return fmt.Errorf("count menu items: %w", err)
	}
	if count == 0 {
		for _, it := range defaultMenu {
			if _, err := db.ExecContext(ctx, `
INSERT INTO menu_items (name, price, category, image_ref)
VALUES ($1, $2, $3, $4)`,
				it.name, it.price, it.category, it.imageRef); err != nil {
				return fmt.Errorf("seed menu item %q: %w", it.name, err)
			}
		}
	}

	if _, err := db.ExecContext(ctx, `
INSERT INTO settings (id, discount_rate, tax_rate)
VALUES (1, $1, $2)
ON CONFLICT (id) DO NOTHING`,
		float64(defaultDiscountRate), float64(defaultTaxRate)); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}
