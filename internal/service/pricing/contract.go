package pricing

type LineItem struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type ContractSummary struct {
	LineItems       []LineItem `json:"line_items"`
	ContractTotal   float64    `json:"contract_total"`
	PaymentSchedule []LineItem `json:"payment_schedule"`
	OutsideContract []LineItem `json:"outside_contract"`
	GrandTotal      float64    `json:"grand_total"`
}

// ContractSummaryLineItems раскладывает итоги на строки договора.
// Сумма LineItems равна ContractGrandTotal, сумма PaymentSchedule: тоже.
func ContractSummaryLineItems(b Breakdown) ContractSummary {
	items := []LineItem{
		{Code: "POOL_SHELL", Description: "Pool shell supply and installation", Amount: b.BasePoolPrice},
		{Code: "EXCAVATION", Description: "Excavation and removal", Amount: b.DigPrice},
		{Code: "CRANE", Description: "Crane hire", Amount: b.CranePrice},
		{Code: "BOBCAT", Description: "Bobcat", Amount: b.BobcatCost},
		{Code: "FILTRATION", Description: "Filtration package", Amount: b.FiltrationPrice},
		{Code: "POOL_COSTS", Description: "Pool installation costs", Amount: b.IndividualCostsPrice},
		{Code: "FIXED_COSTS", Description: "Fixed costs", Amount: b.FixedCostsPrice},
		{Code: "SITE_REQUIREMENTS", Description: "Site requirements", Amount: b.SiteRequirements},
		{Code: "CONCRETE", Description: "Concrete and paving", Amount: sumMoney(b.ConcreteCost, b.PavingCost)},
		{Code: "WATER_FEATURE", Description: "Water feature", Amount: b.WaterFeatureCost},
		{Code: "RETAINING_WALLS", Description: "Retaining walls", Amount: b.RetainingWallCost},
	}

	var lines []LineItem
	for _, it := range items {
		if it.Amount != 0 {
			lines = append(lines, it)
		}
	}

	if b.DiscountTotal != 0 {
		lines = append(lines, LineItem{Code: "DISCOUNT", Description: "Discounts", Amount: -b.DiscountTotal})
	}
	lines = append(lines, LineItem{Code: "HWI", Description: "Home warranty insurance", Amount: b.HWICost})

	schedule := []LineItem{
		{Code: "FIRE_ANT", Description: "Fire ant treatment", Amount: b.Deposit.FireAnt},
		{Code: "FORM_15", Description: "Form 15 lodgement", Amount: b.Deposit.Form15},
		{Code: "DEPOSIT", Description: "Deposit balance", Amount: b.Deposit.Remainder},
		{Code: "BALANCE", Description: "Balance on completion", Amount: sumMoney(b.ContractGrandTotal, -b.Deposit.Total)},
	}

	var outside []LineItem
	for _, it := range []LineItem{
		{Code: "FENCING", Description: "Pool fencing", Amount: b.FencingCost},
		{Code: "HEAT_PUMP", Description: "Heat pump", Amount: b.HeatPumpPrice},
		{Code: "BLANKET_ROLLER", Description: "Blanket and roller", Amount: b.BlanketRollerPrice},
		{Code: "GENERAL_EXTRAS", Description: "Extras", Amount: b.GeneralExtrasPrice},
	} {
		if it.Amount != 0 {
			outside = append(outside, it)
		}
	}

	return ContractSummary{
		LineItems:       lines,
		ContractTotal:   b.ContractGrandTotal,
		PaymentSchedule: schedule,
		OutsideContract: outside,
		GrandTotal:      b.GrandTotal,
	}
}
