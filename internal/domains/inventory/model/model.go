package model

import (
	"time"

	"hotelbook/shared/model"
)

const (
	TableName  = "inventories"
	EntityName = "inventory"

	FieldID         = "id"
	FieldRoomTypeID = "room_type_id"
	FieldDate       = "date"
	FieldAllotment  = "allotment"
	FieldBooked     = "booked"
)

// Inventory is the sellable stock of one room type on one night.
type Inventory struct {
	ID         string    `db:"id"`
	RoomTypeID string    `db:"room_type_id"`
	Date       time.Time `db:"date"`
	Allotment  int       `db:"allotment"`
	Booked     int       `db:"booked"`
	model.Metadata
}

// Available never goes below zero even when the row is overbooked.
func (i Inventory) Available() int {
	return max(i.Allotment-i.Booked, 0)
}
