package storage

type GeneralExtra struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required,max=255"`
	Type        string  `json:"type" validate:"max=100"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	Margin      float64 `json:"margin" validate:"gte=0,lt=100"`
	RRP         float64 `json:"rrp" validate:"gte=0"`
}

// PoolGeneralExtra: доп. позиция, входящая в комплект бассейна по умолчанию.
// Name и RRP подтягиваются из general_extras при чтении.
type PoolGeneralExtra struct {
	ID                  int64   `json:"id"`
	PoolSpecificationID int64   `json:"pool_id" validate:"required"`
	GeneralExtraID      int64   `json:"general_extra_id" validate:"required"`
	Quantity            float64 `json:"quantity" validate:"gt=0"`
	Name                string  `json:"name,omitempty"`
	RRP                 float64 `json:"rrp,omitempty"`
}

type HeatPump struct {
	ID          int64   `json:"id"`
	ProductCode string  `json:"hp_sku" validate:"required,max=100"`
	Name        string  `json:"hp_name" validate:"required,max=255"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	Margin      float64 `json:"margin" validate:"gte=0,lt=100"`
	RRP         float64 `json:"rrp" validate:"gte=0"`
}

// HeatPumpCompatibility: ячейка матрицы бассейн × тепловой насос.
type HeatPumpCompatibility struct {
	ID                  int64  `json:"id"`
	PoolSpecificationID int64  `json:"pool_id" validate:"required"`
	HeatPumpID          int64  `json:"heat_pump_id" validate:"required"`
	PoolName            string `json:"pool_name,omitempty"`
	HeatPumpName        string `json:"hp_name,omitempty"`
}
