package pricing

import "pool-quote/internal/storage"

type FiltrationInput struct {
	PumpPrice      *float64                  `json:"pump_price"`
	FilterPrice    *float64                  `json:"filter_price"`
	SanitiserPrice *float64                  `json:"sanitiser_price"`
	LightPrice     *float64                  `json:"light_price"`
	HandoverKit    []storage.HandoverKitItem `json:"handover_kit"`
}

func HandoverKitSubtotal(items []storage.HandoverKitItem) float64 {
	var sum float64
	for _, it := range items {
		sum += val(it.ComponentPrice) * val(it.Quantity)
	}
	return sum
}

// FiltrationPackagePrice: насос + фильтр + санитайзер + свет + комплект передачи.
func FiltrationPackagePrice(in FiltrationInput) float64 {
	return val(in.PumpPrice) + val(in.FilterPrice) + val(in.SanitiserPrice) + val(in.LightPrice) +
		HandoverKitSubtotal(in.HandoverKit)
}

// FiltrationInputFromPackage собирает вход расчёта из пакета с подтянутыми компонентами.
func FiltrationInputFromPackage(p storage.FiltrationPackageDetails) FiltrationInput {
	in := FiltrationInput{
		PumpPrice:      componentPrice(p.Pump),
		FilterPrice:    componentPrice(p.Filter),
		SanitiserPrice: componentPrice(p.Sanitiser),
		LightPrice:     componentPrice(p.Light),
	}

	if p.HandoverKit != nil {
		for _, c := range p.HandoverKit.Components {
			price, qty := c.ComponentPrice, c.Quantity
			in.HandoverKit = append(in.HandoverKit, storage.HandoverKitItem{
				Name:           c.ComponentName,
				ComponentPrice: &price,
				Quantity:       &qty,
			})
		}
	}

	return in
}

func componentPrice(c *storage.FiltrationComponent) *float64 {
	if c == nil {
		return nil
	}
	price := c.Price
	return &price
}
