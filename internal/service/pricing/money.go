package pricing

import (
	"github.com/shopspring/decimal"

	"pool-quote/internal/storage"
)

// val разворачивает необязательное значение, nil считается нулём.
func val(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func sumLines(lines []storage.CostLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += val(l.Amount)
	}
	return sum
}

// RoundMoney округляет до центов, половина округляется от нуля.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func sumMoney(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(2).InexactFloat64()
}
