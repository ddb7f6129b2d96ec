package service

import "restaurant-orders/internal/domain"

// totals holds the computed monetary fields of an order.
type totals struct {
	Total      float64
	Discount   float64
	Tax        float64
	NetPayable float64
}

// calculateTotals prices a set of resolved lines. Each line contributes its
// price exactly once; an item listed twice in the request shows up as two
// lines. DiscountRate is a percentage (0-100) while TaxRate is a fraction;
// the asymmetry mirrors the stored settings and must not be "fixed".
// No rounding happens here, display rounding is a boundary concern.
func calculateTotals(lines []domain.OrderLine, settings domain.Settings, discountOverride *float64) totals {
	var total float64
	for _, ln := range lines {
		total += ln.Price
	}

	rate := settings.DiscountRate
	if discountOverride != nil {
		rate = *discountOverride
	}

	discount := total * rate / 100
	taxable := total - discount
	tax := taxable * settings.TaxRate

	return totals{
		Total:      total,
		Discount:   discount,
		Tax:        tax,
		NetPayable: taxable + tax,
	}
}
