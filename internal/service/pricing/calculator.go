package pricing

import (
	"math"
	"strings"

	"pool-quote/internal/storage"
)

type Options struct {
	CraneAllowance float64
	DepositPercent float64
	FireAntName    string
	Form15Name     string
}

func DefaultOptions() Options {
	return Options{
		CraneAllowance: DefaultCraneAllowance,
		DepositPercent: 10,
		FireAntName:    "Fire Ant",
		Form15Name:     "Form 15",
	}
}

type Breakdown struct {
	MarginPercent    float64 `json:"margin_percent"`
	MarginMultiplier float64 `json:"margin_multiplier"`

	// с наценкой
	BasePoolPrice        float64 `json:"base_pool_price"`
	DigPrice             float64 `json:"dig_price"`
	FiltrationPrice      float64 `json:"filtration_price"`
	IndividualCostsPrice float64 `json:"individual_costs_price"`
	FixedCostsPrice      float64 `json:"fixed_costs_price"`
	CraneAllowancePrice  float64 `json:"crane_allowance_price"`

	// без наценки
	CraneExcess       float64 `json:"crane_excess"`
	BobcatCost        float64 `json:"bobcat_cost"`
	SiteRequirements  float64 `json:"site_requirements"`
	ConcreteCost      float64 `json:"concrete_cost"`
	PavingCost        float64 `json:"paving_cost"`
	WaterFeatureCost  float64 `json:"water_feature_cost"`
	RetainingWallCost float64 `json:"retaining_wall_cost"`

	// вне договора на строительство
	FencingCost        float64 `json:"fencing_cost"`
	HeatPumpPrice      float64 `json:"heat_pump_price"`
	BlanketRollerPrice float64 `json:"blanket_roller_price"`
	GeneralExtrasPrice float64 `json:"general_extras_price"`
	ExtrasTotal        float64 `json:"extras_total"`

	CranePrice            float64 `json:"crane_price"`
	ContractSubtotal      float64 `json:"contract_subtotal"`
	DiscountTotal         float64 `json:"discount_total"`
	ContractAfterDiscount float64 `json:"contract_after_discount"`
	HWICost               float64 `json:"hwi_cost"`
	ContractGrandTotal    float64 `json:"contract_grand_total"`
	GrandTotal            float64 `json:"grand_total"`

	Deposit DepositBreakdown `json:"deposit"`
}

type DepositBreakdown struct {
	Total     float64 `json:"total"`
	FireAnt   float64 `json:"fire_ant"`
	Form15    float64 `json:"form_15"`
	Remainder float64 `json:"remainder"`
}

// Calculate сводит снимок предложения к итогам. Не возвращает ошибок:
// любое отсутствующее значение даёт нулевой вклад.
func Calculate(s storage.ProposalSnapshot, opts Options) Breakdown {
	margin := val(s.MarginPercent)
	mult := MarginMultiplier(margin)

	b := Breakdown{
		MarginPercent:    margin,
		MarginMultiplier: mult,
	}

	dig := ExcavationCost(ExcavationInput{
		ExcavationHours:      s.DigExcavationHours,
		ExcavationHourlyRate: s.DigExcavationRate,
		TruckQuantity:        s.DigTruckQuantity,
		TruckHours:           s.DigTruckHours,
		TruckHourlyRate:      s.DigTruckRate,
	})
	filtration := FiltrationPackagePrice(FiltrationInput{
		PumpPrice:      s.PumpPrice,
		FilterPrice:    s.FilterPrice,
		SanitiserPrice: s.SanitiserPrice,
		LightPrice:     s.LightPrice,
		HandoverKit:    s.HandoverKit,
	})

	b.BasePoolPrice = RoundMoney(val(s.PoolBuyPrice) * mult)
	b.DigPrice = RoundMoney(dig * mult)
	b.FiltrationPrice = RoundMoney(filtration * mult)
	b.IndividualCostsPrice = RoundMoney(sumLines(s.IndividualCosts) * mult)
	b.FixedCostsPrice = RoundMoney(sumLines(s.FixedCosts) * mult)
	b.CraneAllowancePrice = RoundMoney(opts.CraneAllowance * mult)
	b.CraneExcess = RoundMoney(CraneExcess(val(s.CraneCost), opts.CraneAllowance))
	b.CranePrice = sumMoney(b.CraneAllowancePrice, b.CraneExcess)

	b.BobcatCost = RoundMoney(val(s.BobcatCost))
	b.SiteRequirements = RoundMoney(sumLines(s.SiteRequirements))
	b.ConcreteCost = RoundMoney(val(s.ConcreteCost))
	b.PavingCost = RoundMoney(val(s.PavingCost))
	b.WaterFeatureCost = RoundMoney(val(s.WaterFeatureCost))
	b.RetainingWallCost = RoundMoney(val(s.RetainingWallCost))

	b.FencingCost = RoundMoney(val(s.FencingCost))
	if s.HeatPumpIncluded {
		b.HeatPumpPrice = RoundMoney(val(s.HeatPumpPrice))
	}
	if s.BlanketRollerIncluded {
		b.BlanketRollerPrice = RoundMoney(val(s.BlanketRollerPrice))
	}
	b.GeneralExtrasPrice = RoundMoney(generalExtrasTotal(s.GeneralExtras))
	b.ExtrasTotal = sumMoney(b.HeatPumpPrice, b.BlanketRollerPrice, b.GeneralExtrasPrice)

	b.ContractSubtotal = sumMoney(
		b.BasePoolPrice,
		b.DigPrice,
		b.FiltrationPrice,
		b.IndividualCostsPrice,
		b.FixedCostsPrice,
		b.CranePrice,
		b.BobcatCost,
		b.SiteRequirements,
		b.ConcreteCost,
		b.PavingCost,
		b.WaterFeatureCost,
		b.RetainingWallCost,
	)

	// скидка не может увести договор в минус
	discount := RoundMoney(DiscountTotal(s.Discounts, b.ContractSubtotal))
	b.DiscountTotal = math.Max(math.Min(discount, b.ContractSubtotal), 0)
	b.ContractAfterDiscount = sumMoney(b.ContractSubtotal, -b.DiscountTotal)

	b.HWICost = HWIInsuranceCost(b.ContractAfterDiscount)
	b.ContractGrandTotal = sumMoney(b.ContractAfterDiscount, b.HWICost)
	b.GrandTotal = sumMoney(b.ContractGrandTotal, b.FencingCost, b.ExtrasTotal)

	b.Deposit = splitDeposit(b.ContractGrandTotal, s.FixedCosts, opts)

	return b
}

func generalExtrasTotal(extras []storage.ExtraLine) float64 {
	var sum float64
	for _, e := range extras {
		qty := 1.0
		if e.Quantity != nil {
			qty = *e.Quantity
		}
		sum += val(e.Price) * qty
	}
	return sum
}

// splitDeposit выделяет из депозита Fire Ant и Form 15. Если сборы больше
// процента депозита, депозит поднимается до их суммы.
func splitDeposit(contractTotal float64, fixed []storage.CostLine, opts Options) DepositBreakdown {
	d := DepositBreakdown{
		Total:   RoundMoney(contractTotal * opts.DepositPercent / 100),
		FireAnt: RoundMoney(fixedCostByName(fixed, opts.FireAntName)),
		Form15:  RoundMoney(fixedCostByName(fixed, opts.Form15Name)),
	}

	d.Remainder = sumMoney(d.Total, -d.FireAnt, -d.Form15)
	if d.Remainder < 0 {
		d.Remainder = 0
		d.Total = sumMoney(d.FireAnt, d.Form15)
	}

	return d
}

func fixedCostByName(fixed []storage.CostLine, name string) float64 {
	if name == "" {
		return 0
	}
	var sum float64
	for _, f := range fixed {
		if strings.EqualFold(strings.TrimSpace(f.Name), name) {
			sum += val(f.Amount)
		}
	}
	return sum
}
