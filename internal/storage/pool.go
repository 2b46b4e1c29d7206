package storage

// PoolSpecification: строка pool_specifications.
type PoolSpecification struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name" validate:"required,max=255"`
	Range               string  `json:"range" validate:"max=255"`
	LengthM             float64 `json:"length" validate:"gte=0"`
	WidthM              float64 `json:"width" validate:"gte=0"`
	DepthShallowM       float64 `json:"depth_shallow" validate:"gte=0"`
	DepthDeepM          float64 `json:"depth_deep" validate:"gte=0"`
	VolumeLitres        float64 `json:"volume_liters" validate:"gte=0"`
	BuyPriceIncGST      float64 `json:"buy_price_inc_gst" validate:"gte=0"`
	BuyPriceExGST       float64 `json:"buy_price_ex_gst" validate:"gte=0"`
	DigTypeID           *int64  `json:"dig_type_id"`
	FiltrationPackageID *int64  `json:"default_filtration_package_id"`
}

// PoolCost: индивидуальная статья затрат конкретного бассейна (pool_costs).
type PoolCost struct {
	ID                  int64   `json:"id"`
	PoolSpecificationID int64   `json:"pool_id" validate:"required"`
	Name                string  `json:"name" validate:"required,max=255"`
	Amount              float64 `json:"amount"`
}

type PoolMargin struct {
	PoolSpecificationID int64   `json:"pool_id" validate:"required"`
	MarginPercentage    float64 `json:"margin_percentage" validate:"gte=0,lt=100"`
}
