package storage

import "time"

const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
)

type PoolProject struct {
	ID                  string            `json:"id"`
	OwnerName           string            `json:"owner1" validate:"required,max=255"`
	Email               string            `json:"email" validate:"required,email"`
	Phone               string            `json:"phone" validate:"required,max=50"`
	SiteAddress         string            `json:"site_address" validate:"max=500"`
	PoolSpecificationID int64             `json:"pool_specification_id" validate:"required"`
	CraneCostID         *int64            `json:"crane_id"`
	DigTypeID           *int64            `json:"dig_type_id"`
	FiltrationPackageID *int64            `json:"filtration_package_id"`
	HeatPumpID          *int64            `json:"heat_pump_id"`
	Selections          ProjectSelections `json:"selections"`
	CreatedAt           time.Time         `json:"created_at"`
}

// ProjectSelections: суммы, которые продавец вводит вручную по объекту.
type ProjectSelections struct {
	BobcatCost            *float64    `json:"bobcat_cost,omitempty" validate:"omitempty,gte=0"`
	SiteRequirements      []CostLine  `json:"site_requirements,omitempty" validate:"dive"`
	ConcreteCost          *float64    `json:"concrete_cost,omitempty" validate:"omitempty,gte=0"`
	PavingCost            *float64    `json:"paving_cost,omitempty" validate:"omitempty,gte=0"`
	FencingCost           *float64    `json:"fencing_cost,omitempty" validate:"omitempty,gte=0"`
	WaterFeatureCost      *float64    `json:"water_feature_cost,omitempty" validate:"omitempty,gte=0"`
	RetainingWallCost     *float64    `json:"retaining_wall_cost,omitempty" validate:"omitempty,gte=0"`
	BlanketRollerIncluded bool        `json:"include_blanket_roller,omitempty"`
	BlanketRollerPrice    *float64    `json:"blanket_roller_rrp,omitempty" validate:"omitempty,gte=0"`
	GeneralExtras         []ExtraLine `json:"general_extras,omitempty" validate:"dive"`
	Discounts             []Discount  `json:"discounts,omitempty" validate:"dive"`
	MarginOverride        *float64    `json:"margin_override,omitempty" validate:"omitempty,gte=0,lt=100"`
}

type Quote struct {
	ID        string           `json:"id"`
	ProjectID string           `json:"project_id"`
	Status    string           `json:"status"`
	Snapshot  ProposalSnapshot `json:"snapshot"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
