package service

import (
	"context"

	"restaurant-orders/internal/common/logger"
	"restaurant-orders/internal/domain"
	"restaurant-orders/internal/order/repository"
)

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.OrderSummary, error)
	GetOrder(ctx context.Context, id int64) (domain.Order, bool, error)
	ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error)
}

// Catalog is the read-only slice of the catalog/settings store the pricing
// engine consumes.
type Catalog interface {
	FindByIDs(ctx context.Context, ids []int64) ([]domain.MenuItem, error)
	GetSettings(ctx context.Context) (domain.Settings, bool, error)
}

// Publisher emits the order-placed event. Failures here never fail the
// request; persistence is the last fallible step.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, msg domain.OrderPlacedMessage) error
}

func New(catalog Catalog, repo repository.OrderRepoInterface, events Publisher, lg *logger.Logger) *OrderService {
	return &OrderService{catalog: catalog, repo: repo, events: events, lg: lg}
}
