package pricing

import (
	"math"

	"pool-quote/internal/storage"
)

// DiscountAmount считает скидку от неуменьшенной суммы договора,
// процентные скидки друг на друга не накладываются.
// Отрицательная скидка считается нулевой, процент ограничен 100.
func DiscountAmount(d storage.Discount, undiscounted float64) float64 {
	v := math.Max(val(d.Value), 0)
	switch d.Type {
	case storage.DiscountPercentage:
		return math.Max(undiscounted, 0) * math.Min(v, 100) / 100
	default:
		return v
	}
}

func DiscountTotal(discounts []storage.Discount, undiscounted float64) float64 {
	var total float64
	for _, d := range discounts {
		total += DiscountAmount(d, undiscounted)
	}
	return total
}
