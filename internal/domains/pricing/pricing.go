// Package pricing computes stay prices in integer minor currency units.
package pricing

import (
	"hotelbook/shared/failure"
)

const (
	ServiceChargePercent = 10
	RoomTaxPercent       = 12
	ServiceTaxPercent    = 18

	percentDivisor = 100
)

type Breakdown struct {
	BaseRate      int64 `json:"base_rate"`
	Nights        int   `json:"nights"`
	RoomTotal     int64 `json:"room_total"`
	ServiceCharge int64 `json:"service_charge"`
	TaxOnRoom     int64 `json:"tax_on_room"`
	TaxOnService  int64 `json:"tax_on_service"`
	Total         int64 `json:"total"`
}

// Compute prices a stay of nights at baseRate. Every line item is rounded half-up to a whole unit.
func Compute(baseRate int64, nights int) (Breakdown, error) {
	if nights < 1 {
		return Breakdown{}, failure.BadRequestFromString("nights must be at least 1")
	}

	if baseRate < 0 {
		return Breakdown{}, failure.BadRequestFromString("base_rate must not be negative")
	}

	roomTotal := baseRate * int64(nights)
	serviceCharge := percentOf(roomTotal, ServiceChargePercent)
	taxOnRoom := percentOf(roomTotal, RoomTaxPercent)
	taxOnService := percentOf(serviceCharge, ServiceTaxPercent)

	return Breakdown{
		BaseRate:      baseRate,
		Nights:        nights,
		RoomTotal:     roomTotal,
		ServiceCharge: serviceCharge,
		TaxOnRoom:     taxOnRoom,
		TaxOnService:  taxOnService,
		Total:         roomTotal + serviceCharge + taxOnRoom + taxOnService,
	}, nil
}

// percentOf rounds half-up; amount is never negative.
func percentOf(amount, percent int64) int64 {
	return (amount*percent + percentDivisor/2) / percentDivisor
}
