package domain

import "time"

type OrderLineMsg struct {
	ItemID int64   `json:"item_id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// OrderPlacedMessage is published after an order has been persisted.
type OrderPlacedMessage struct {
	OrderID     int64          `json:"order_id"`
	TableNumber int            `json:"table_number"`
	Lines       []OrderLineMsg `json:"items"`
	Total       float64        `json:"total"`
	Discount    float64        `json:"discount"`
	Tax         float64        `json:"tax"`
	NetPayable  float64        `json:"net_payable"`
	CreatedAt   time.Time      `json:"created_at"`
}
