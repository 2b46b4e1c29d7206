package pricing

// MarginMultiplier возвращает 1 / (1 − margin/100).
// Маржа 100% и выше не имеет смысла в этой формуле, в этом случае наценка не применяется.
func MarginMultiplier(marginPercent float64) float64 {
	if marginPercent >= 100 {
		return 1
	}
	return 1 / (1 - marginPercent/100)
}

// SellPrice считает цену продажи из себестоимости по формуле cost / (1 − margin/100).
func SellPrice(cost, marginPercent float64) float64 {
	return cost * MarginMultiplier(marginPercent)
}
