package pricing

import "math"

type HWIRate struct {
	PoolAmount    float64 `json:"pool_amount"`
	InsuranceCost float64 `json:"insurance_cost"`
}

// HWIInsuranceCost ищет стоимость страховки по сумме договора,
// округлённой вниз до тысячи. Ниже первого порога возвращается первая ставка.
func HWIInsuranceCost(contractAmount float64) float64 {
	return lookupHWI(hwiInsuranceTable, contractAmount)
}

// HWITable возвращает копию таблицы ставок.
func HWITable() []HWIRate {
	out := make([]HWIRate, len(hwiInsuranceTable))
	copy(out, hwiInsuranceTable)
	return out
}

func lookupHWI(table []HWIRate, contractAmount float64) float64 {
	if len(table) == 0 {
		return 0
	}

	rounded := math.Floor(contractAmount/1000) * 1000

	cost := table[0].InsuranceCost
	for _, rate := range table {
		if rate.PoolAmount > rounded {
			break
		}
		cost = rate.InsuranceCost
	}

	return cost
}
