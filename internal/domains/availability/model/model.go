package model

import (
	"hotelbook/internal/domains/pricing"
	roomTypeModel "hotelbook/internal/domains/roomtype/model"
)

// AvailableRoom is a room type that can be sold for every night of a stay.
type AvailableRoom struct {
	RoomType  roomTypeModel.RoomType
	Available int
	Pricing   pricing.Breakdown
}
