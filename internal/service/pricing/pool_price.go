package pricing

// PoolCostInput: себестоимость бассейна для таблицы цен на сайте.
type PoolCostInput struct {
	PoolID          int64
	PoolName        string
	BuyPrice        float64
	IndividualCosts float64
	FixedCosts      float64
	FiltrationCost  float64
	DigCost         float64
	MarginPercent   float64
}

type PoolPriceRow struct {
	PoolID        int64   `json:"pool_id"`
	PoolName      string  `json:"pool_name"`
	TotalCost     float64 `json:"total_cost"`
	MarginPercent float64 `json:"margin_percent"`
	WebPrice      float64 `json:"web_price"`
}

// PoolWebPrice считает цену по формуле cost / (1 − margin/100).
// Например, себестоимость 30 000 при марже 25% даёт 40 000.
func PoolWebPrice(in PoolCostInput, craneAllowance float64) PoolPriceRow {
	total := sumMoney(in.BuyPrice, in.IndividualCosts, in.FixedCosts, in.FiltrationCost, in.DigCost, craneAllowance)

	return PoolPriceRow{
		PoolID:        in.PoolID,
		PoolName:      in.PoolName,
		TotalCost:     total,
		MarginPercent: in.MarginPercent,
		WebPrice:      RoundMoney(SellPrice(total, in.MarginPercent)),
	}
}
