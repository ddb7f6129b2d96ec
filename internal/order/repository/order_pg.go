package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"restaurant-orders/internal/domain"
)

type OrderRepo struct {
	db *sql.DB
}

// InsertOrder appends the order and its line snapshots in one transaction and
// returns the stored record with its assigned id and creation timestamp.
// Orders are never updated afterwards.
func (r *OrderRepo) InsertOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
INSERT INTO orders (table_number, total, discount, tax, net_payable)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`,
		o.TableNumber, o.Total, o.Discount, o.Tax, o.NetPayable,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	for i := range o.Lines {
		o.Lines[i].OrderID = o.ID
		err = tx.QueryRowContext(ctx, `
INSERT INTO order_lines (order_id, item_id, name, price, image_ref)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`,
			o.ID, o.Lines[i].ItemID, o.Lines[i].Name, o.Lines[i].Price, o.Lines[i].ImageRef,
		).Scan(&o.Lines[i].ID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("insert order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, fmt.Errorf("commit: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (domain.Order, bool, error) {
	var o domain.Order
	err := r.db.QueryRowContext(ctx, `
SELECT id, table_number, total, discount, tax, net_payable, created_at
FROM orders
WHERE id = $1`, id).Scan(&o.ID, &o.TableNumber, &o.Total, &o.Discount, &o.Tax, &o.NetPayable, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, false, nil
	}
	if err != nil {
		return domain.Order{}, false, err
	}

	lines, err := r.linesFor(ctx, []int64{o.ID})
	if err != nil {
		return domain.Order{}, false, err
	}
	o.Lines = lines[o.ID]
	return o, true, nil
}

func (r *OrderRepo) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, table_number, total, discount, tax, net_payable, created_at
FROM orders
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	var ids []int64
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.TableNumber, &o.Total, &o.Discount, &o.Tax,
			&o.NetPayable, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = lines[orders[i].ID]
	}
	return orders, nil
}

func (r *OrderRepo) linesFor(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderLine, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, order_id, item_id, name, price, image_ref
FROM order_lines
WHERE order_id = ANY($1)
ORDER BY id`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]domain.OrderLine)
	for rows.Next() {
		var ln domain.OrderLine
		if err := rows.Scan(&ln.ID, &ln.OrderID, &ln.ItemID, &ln.Name, &ln.Price, &ln.ImageRef); err != nil {
			return nil, err
		}
		out[ln.OrderID] = append(out[ln.OrderID], ln)
	}
	return out, rows.Err()
}
