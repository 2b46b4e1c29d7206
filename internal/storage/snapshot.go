package storage

const (
	DiscountDollar     = "dollar"
	DiscountPercentage = "percentage"
)

// ProposalSnapshot: замороженный набор входных данных для расчёта цены.
// Все числовые поля необязательные: отсутствующее значение считается нулём.
type ProposalSnapshot struct {
	PoolSpecificationID *int64   `json:"pool_specification_id,omitempty"`
	PoolName            string   `json:"pool_name,omitempty"`
	PoolBuyPrice        *float64 `json:"spec_buy_inc_gst,omitempty" validate:"omitempty,gte=0"`

	DigName            string   `json:"dig_name,omitempty"`
	DigExcavationHours *float64 `json:"dig_excavation_hours,omitempty" validate:"omitempty,gte=0"`
	DigExcavationRate  *float64 `json:"dig_excavation_rate,omitempty" validate:"omitempty,gte=0"`
	DigTruckQuantity   *float64 `json:"dig_truck_qty,omitempty" validate:"omitempty,gte=0"`
	DigTruckHours      *float64 `json:"dig_truck_hours,omitempty" validate:"omitempty,gte=0"`
	DigTruckRate       *float64 `json:"dig_truck_rate,omitempty" validate:"omitempty,gte=0"`

	FiltrationPackageName string            `json:"filtration_package_name,omitempty"`
	PumpPrice             *float64          `json:"pump_price_inc_gst,omitempty" validate:"omitempty,gte=0"`
	FilterPrice           *float64          `json:"filter_price_inc_gst,omitempty" validate:"omitempty,gte=0"`
	SanitiserPrice        *float64          `json:"sanitiser_price_inc_gst,omitempty" validate:"omitempty,gte=0"`
	LightPrice            *float64          `json:"light_price_inc_gst,omitempty" validate:"omitempty,gte=0"`
	HandoverKit           []HandoverKitItem `json:"handover_components,omitempty" validate:"dive"`

	IndividualCosts  []CostLine `json:"pool_individual_costs,omitempty" validate:"dive"`
	FixedCosts       []CostLine `json:"fixed_costs,omitempty" validate:"dive"`
	SiteRequirements []CostLine `json:"site_requirements_data,omitempty" validate:"dive"`

	CraneCost  *float64 `json:"crane_cost,omitempty" validate:"omitempty,gte=0"`
	BobcatCost *float64 `json:"bobcat_cost,omitempty" validate:"omitempty,gte=0"`

	ConcreteCost      *float64 `json:"concrete_cost,omitempty" validate:"omitempty,gte=0"`
	PavingCost        *float64 `json:"extra_paving_cost,omitempty" validate:"omitempty,gte=0"`
	FencingCost       *float64 `json:"fencing_total_cost,omitempty" validate:"omitempty,gte=0"`
	WaterFeatureCost  *float64 `json:"water_feature_total_cost,omitempty" validate:"omitempty,gte=0"`
	RetainingWallCost *float64 `json:"retaining_walls_cost,omitempty" validate:"omitempty,gte=0"`

	HeatPumpIncluded      bool        `json:"include_heat_pump,omitempty"`
	HeatPumpPrice         *float64    `json:"heat_pump_rrp,omitempty" validate:"omitempty,gte=0"`
	BlanketRollerIncluded bool        `json:"include_blanket_roller,omitempty"`
	BlanketRollerPrice    *float64    `json:"blanket_roller_rrp,omitempty" validate:"omitempty,gte=0"`
	GeneralExtras         []ExtraLine `json:"general_extras,omitempty" validate:"dive"`

	MarginPercent *float64   `json:"pool_margin_pct,omitempty" validate:"omitempty,gte=0,lt=100"`
	Discounts     []Discount `json:"discounts,omitempty" validate:"dive"`
}

type CostLine struct {
	Name   string   `json:"name"`
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
}

type HandoverKitItem struct {
	Name           string   `json:"name,omitempty"`
	ComponentPrice *float64 `json:"hk_component_price_inc_gst,omitempty" validate:"omitempty,gte=0"`
	Quantity       *float64 `json:"hk_component_quantity,omitempty" validate:"omitempty,gte=0"`
}

type ExtraLine struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"rrp,omitempty" validate:"omitempty,gte=0"`
	Quantity *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}

type Discount struct {
	Name  string   `json:"discount_name"`
	Type  string   `json:"discount_type" validate:"omitempty,oneof=dollar percentage"`
	Value *float64 `json:"value,omitempty" validate:"omitempty,gte=0"`
}
