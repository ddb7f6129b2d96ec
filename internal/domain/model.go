package domain

import "time"

// MenuItem is a row of the restaurant catalog. Placed orders never reference
// these rows live; they embed a price snapshot instead.
type MenuItem struct {
	ID        int64
	Name      string
	Price     float64
	Category  string
	ImageRef  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Settings is the singleton discount/tax configuration record.
// DiscountRate is a percentage in [0,100]; TaxRate is a fraction (0.10 = 10%).
// The asymmetry is intentional and matches the stored data.
type Settings struct {
	DiscountRate float64
	TaxRate      float64
	UpdatedAt    time.Time
}

// OrderLine is a catalog snapshot captured at resolution time.
type OrderLine struct {
	ID       int64
	OrderID  int64
	ItemID   int64
	Name     string
	Price    float64
	ImageRef string
}

// Order is an immutable record of a placed transaction. Invariant for every
// stored order: Total - Discount + Tax == NetPayable (float tolerance).
type Order struct {
	ID          int64
	TableNumber int
	Lines       []OrderLine
	Total       float64
	Discount    float64
	Tax         float64
	NetPayable  float64
	CreatedAt   time.Time
}
