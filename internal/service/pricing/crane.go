package pricing

import "math"

const DefaultCraneAllowance = 700.0

// CraneSellPrice делит стоимость крана на включённый лимит (с наценкой)
// и превышение, которое переносится в цену без наценки.
func CraneSellPrice(raw, multiplier, allowance float64) float64 {
	return allowance*multiplier + math.Max(raw-allowance, 0)
}

// CraneExcess: часть стоимости крана сверх лимита.
func CraneExcess(raw, allowance float64) float64 {
	return math.Max(raw-allowance, 0)
}
