package repository

import (
	"context"
	"database/sql"

	"restaurant-orders/internal/domain"
)

type OrderRepoInterface interface {
	InsertOrder(ctx context.Context, o domain.Order) (domain.Order, error)
	GetByID(ctx context.Context, id int64) (domain.Order, bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.Order, error)
}

func New(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }
