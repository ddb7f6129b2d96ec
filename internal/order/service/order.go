package service

import (
	"context"
	"time"

	"restaurant-orders/internal/common/logger"
	"restaurant-orders/internal/domain"
	"restaurant-orders/internal/order/repository"
)

type OrderService struct {
	catalog Catalog
	repo    repository.OrderRepoInterface
	events  Publisher
	lg      *logger.Logger
}

// PlaceOrder runs one order through validation, catalog resolution, pricing
// and persistence, then acknowledges with a summary. Every failure rejects
// the whole request; nothing is retried and no partial order is stored.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.OrderSummary, error) {
	if err := validatePlaceOrder(req); err != nil {
		return domain.OrderSummary{}, err
	}

	lines, err := s.resolveLines(ctx, req.Items)
	if err != nil {
		return domain.OrderSummary{}, err
	}

	settings, ok, err := s.catalog.GetSettings(ctx)
	if err != nil {
		return domain.OrderSummary{}, &domain.StorageError{Op: "read settings", Err: err}
	}
	if !ok {
		return domain.OrderSummary{}, domain.ErrSettingsUnavailable
	}

	t := calculateTotals(lines, settings, req.DiscountOverride)

	order, err := s.repo.InsertOrder(ctx, domain.Order{
		TableNumber: req.TableNumber,
		Lines:       lines,
		Total:       t.Total,
		Discount:    t.Discount,
		Tax:         t.Tax,
		NetPayable:  t.NetPayable,
	})
	if err != nil {
		return domain.OrderSummary{}, &domain.StorageError{Op: "insert order", Err: err}
	}

	s.publishPlaced(ctx, order)

	return domain.OrderSummary{
		OrderID:    order.ID,
		Total:      order.Total,
		Discount:   order.Discount,
		Tax:        order.Tax,
		NetPayable: order.NetPayable,
		CreatedAt:  order.CreatedAt,
	}, nil
}

// resolveLines maps every requested id to a catalog snapshot with one batched
// lookup. Order and duplicates of the request are preserved; a single unknown
// id rejects the whole set.
func (s *OrderService) resolveLines(ctx context.Context, items []domain.PlaceOrderItem) ([]domain.OrderLine, error) {
	distinct := make([]int64, 0, len(items))
	seen := make(map[int64]bool, len(items))
	for _, it := range items {
		if !seen[it.ItemID] {
			seen[it.ItemID] = true
			distinct = append(distinct, it.ItemID)
		}
	}

	found, err := s.catalog.FindByIDs(ctx, distinct)
	if err != nil {
		return nil, &domain.StorageError{Op: "find menu items", Err: err}
	}
	byID := make(map[int64]domain.MenuItem, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}

	lines := make([]domain.OrderLine, 0, len(items))
	var missing []int64
	missingSeen := make(map[int64]bool)
	for _, it := range items {
		m, ok := byID[it.ItemID]
		if !ok {
			if !missingSeen[it.ItemID] {
				missingSeen[it.ItemID] = true
				missing = append(missing, it.ItemID)
			}
			continue
		}
		lines = append(lines, domain.OrderLine{
			ItemID:   m.ID,
			Name:     m.Name,
			Price:    m.Price,
			ImageRef: m.ImageRef,
		})
	}
	if len(missing) > 0 {
		return nil, &domain.UnknownMenuItemError{MissingIDs: missing}
	}
	return lines, nil
}

// publishPlaced emits the order event best-effort. The order is already
// durable; a broker failure is logged and the request still succeeds.
func (s *OrderService) publishPlaced(ctx context.Context, order domain.Order) {
	msgLines := make([]domain.OrderLineMsg, 0, len(order.Lines))
	for _, ln := range order.Lines {
		msgLines = append(msgLines, domain.OrderLineMsg{ItemID: ln.ItemID, Name: ln.Name, Price: ln.Price})
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.events.PublishOrderPlaced(pctx, domain.OrderPlacedMessage{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Lines:       msgLines,
		Total:       order.Total,
		Discount:    order.Discount,
		Tax:         order.Tax,
		NetPayable:  order.NetPayable,
		CreatedAt:   order.CreatedAt,
	})
	if err != nil {
		s.lg.Error("order_publish_failed", logger.RequestIDFrom(ctx), err, map[string]any{
			"order_id": order.ID,
		})
	}
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (domain.Order, bool, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	return s.repo.List(ctx, limit, offset)
}
