package pricing

import "pool-quote/internal/storage"

type ExcavationInput struct {
	ExcavationHours      *float64 `json:"excavation_hours"`
	ExcavationHourlyRate *float64 `json:"excavation_hourly_rate"`
	TruckQuantity        *float64 `json:"truck_quantity"`
	TruckHours           *float64 `json:"truck_hours"`
	TruckHourlyRate      *float64 `json:"truck_hourly_rate"`
}

func ExcavationCost(in ExcavationInput) float64 {
	return val(in.ExcavationHours)*val(in.ExcavationHourlyRate) +
		val(in.TruckQuantity)*val(in.TruckHours)*val(in.TruckHourlyRate)
}

func ExcavationInputFromDigType(d storage.DigType) ExcavationInput {
	return ExcavationInput{
		ExcavationHours:      &d.ExcavationHours,
		ExcavationHourlyRate: &d.ExcavationHourlyRate,
		TruckQuantity:        &d.TruckQuantity,
		TruckHours:           &d.TruckHours,
		TruckHourlyRate:      &d.TruckHourlyRate,
	}
}
