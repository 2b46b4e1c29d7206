package storage

const (
	ComponentPump        = "pump"
	ComponentFilter      = "filter"
	ComponentSanitiser   = "sanitiser"
	ComponentLight       = "light"
	ComponentHandoverKit = "handover_kit"
)

type FiltrationComponent struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required,max=255"`
	ModelNumber string  `json:"model_number" validate:"max=255"`
	TypeID      string  `json:"type_id" validate:"required,oneof=pump filter sanitiser light handover_kit"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type FiltrationPackage struct {
	ID            int64  `json:"id"`
	Name          string `json:"name" validate:"required,max=255"`
	DisplayOrder  int    `json:"display_order"`
	PumpID        *int64 `json:"pump_id"`
	FilterID      *int64 `json:"filter_id"`
	SanitiserID   *int64 `json:"sanitiser_id"`
	LightID       *int64 `json:"light_id"`
	HandoverKitID *int64 `json:"handover_kit_id"`
}

// FiltrationPackageDetails: пакет с уже подтянутыми ценами компонентов.
type FiltrationPackageDetails struct {
	FiltrationPackage
	Pump        *FiltrationComponent `json:"pump"`
	Filter      *FiltrationComponent `json:"filter"`
	Sanitiser   *FiltrationComponent `json:"sanitiser"`
	Light       *FiltrationComponent `json:"light"`
	HandoverKit *HandoverKitPackage  `json:"handover_kit"`
}

type HandoverKitPackage struct {
	ID         int64                         `json:"id"`
	Name       string                        `json:"name" validate:"required,max=255"`
	Components []HandoverKitPackageComponent `json:"components" validate:"dive"`
}

type HandoverKitPackageComponent struct {
	ID             int64   `json:"id"`
	PackageID      int64   `json:"package_id"`
	ComponentID    int64   `json:"component_id" validate:"required"`
	Quantity       float64 `json:"quantity" validate:"gt=0"`
	ComponentName  string  `json:"component_name,omitempty"`
	ComponentPrice float64 `json:"component_price,omitempty"`
}
