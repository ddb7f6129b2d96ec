package service

import "restaurant-orders/internal/domain"

// validatePlaceOrder rejects structurally invalid requests before any catalog
// lookup. Zero-item orders are rejected: a priced order of nothing is
// meaningless.
func validatePlaceOrder(req domain.PlaceOrderRequest) error {
	if req.TableNumber <= 0 {
		return &domain.InvalidOrderError{
			Field:   "table_number",
			Message: "must be a positive integer",
		}
	}
	if len(req.Items) == 0 {
		return &domain.InvalidOrderError{
			Field:   "items",
			Message: "at least one item is required",
		}
	}
	if req.DiscountOverride != nil {
		if d := *req.DiscountOverride; d < 0 || d > 100 {
			return &domain.InvalidOrderError{
				Field:   "discount_override",
				Message: "must be between 0 and 100",
			}
		}
	}
	return nil
}
