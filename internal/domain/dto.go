package domain

import "time"

type PlaceOrderItem struct {
	ItemID int64 `json:"item_id"`
}

type PlaceOrderRequest struct {
	TableNumber      int              `json:"table_number"`
	Items            []PlaceOrderItem `json:"items"`
	DiscountOverride *float64         `json:"discount_override,omitempty"`
}

type OrderSummary struct {
	OrderID    int64     `json:"order_id"`
	Total      float64   `json:"total"`
	Discount   float64   `json:"discount"`
	Tax        float64   `json:"tax"`
	NetPayable float64   `json:"net_payable"`
	CreatedAt  time.Time `json:"created_at"`
}

type MenuItemInput struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImageRef string  `json:"image_ref"`
}

type MenuItemResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImageRef string  `json:"image_ref"`
}

type SettingsInput struct {
	DiscountRate float64 `json:"discount_rate"`
	TaxRate      float64 `json:"tax_rate"`
}

type SettingsResponse struct {
	DiscountRate float64   `json:"discount_rate"`
	TaxRate      float64   `json:"tax_rate"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type OrderLineResponse struct {
	ItemID   int64   `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageRef string  `json:"image_ref"`
}

type OrderResponse struct {
	ID          int64               `json:"id"`
	TableNumber int                 `json:"table_number"`
	Lines       []OrderLineResponse `json:"items"`
	Total       float64             `json:"total"`
	Discount    float64             `json:"discount"`
	Tax         float64             `json:"tax"`
	NetPayable  float64             `json:"net_payable"`
	CreatedAt   time.Time           `json:"created_at"`
}
