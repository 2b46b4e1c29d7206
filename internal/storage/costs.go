package storage

type FixedCost struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name" validate:"required,max=255"`
	Price        float64 `json:"price"`
	DisplayOrder int     `json:"display_order"`
}

type CraneCost struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name" validate:"required,max=255"`
	Price        float64 `json:"price" validate:"gte=0"`
	DisplayOrder int     `json:"display_order"`
}

type DigType struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name" validate:"required,max=255"`
	TruckQuantity        float64 `json:"truck_quantity" validate:"gte=0"`
	TruckHourlyRate      float64 `json:"truck_hourly_rate" validate:"gte=0"`
	TruckHours           float64 `json:"truck_hours" validate:"gte=0"`
	ExcavationHourlyRate float64 `json:"excavation_hourly_rate" validate:"gte=0"`
	ExcavationHours      float64 `json:"excavation_hours" validate:"gte=0"`
}
