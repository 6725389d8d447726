// Package availability decides which room types can be sold for a stay.
package availability

import (
	"time"

	"hotelbook/internal/domains/availability/model"
	inventoryModel "hotelbook/internal/domains/inventory/model"
	"hotelbook/internal/domains/pricing"
	roomTypeModel "hotelbook/internal/domains/roomtype/model"
	"hotelbook/shared/daterange"
	"hotelbook/shared/failure"
)

// Calculate returns the sellable candidates in their input order. A room type is sellable when it is
// active, fits the party, and has a positive remainder on every night of [checkIn, checkOut).
func Calculate(
	candidates []roomTypeModel.RoomType,
	inventory map[string][]inventoryModel.Inventory,
	checkIn, checkOut time.Time,
	guests int,
) ([]model.AvailableRoom, error) {
	if err := daterange.Validate(checkIn, checkOut); err != nil {
		return nil, failure.BadRequest(err) //nolint:wrapcheck
	}

	if guests < 1 {
		return nil, failure.BadRequestFromString("guests must be at least 1") //nolint:wrapcheck
	}

	dates := daterange.Nights(checkIn, checkOut)
	rooms := []model.AvailableRoom{}

	for _, candidate := range candidates {
		if !candidate.Accommodates(guests) {
			continue
		}

		available, ok := minRemaining(inventory[candidate.ID], dates)
		if !ok || available <= 0 {
			continue
		}

		breakdown, err := pricing.Compute(candidate.BaseRate, len(dates))
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, model.AvailableRoom{
			RoomType:  candidate,
			Available: available,
			Pricing:   breakdown,
		})
	}

	return rooms, nil
}

// minRemaining reports false when any date has no inventory row.
func minRemaining(rows []inventoryModel.Inventory, dates []time.Time) (int, bool) {
	byDate := make(map[string]inventoryModel.Inventory, len(rows))
	for _, row := range rows {
		byDate[daterange.Format(row.Date)] = row
	}

	remaining := 0

	for i, date := range dates {
		row, ok := byDate[daterange.Format(date)]
		if !ok {
			return 0, false
		}

		left := row.Allotment - row.Booked
		if i == 0 || left < remaining {
			remaining = left
		}
	}

	return remaining, true
}
