package model

import (
	"hotelbook/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldBaseRate    = "base_rate"
	FieldCapacity    = "capacity"
	FieldAmenities   = "amenities"
	FieldImages      = "images"
	FieldActive      = "active"
)

type RoomType struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	BaseRate    int64          `db:"base_rate"`
	Capacity    int            `db:"capacity"`
	Amenities   pq.StringArray `db:"amenities"`
	Images      pq.StringArray `db:"images"`
	Active      bool           `db:"active"`
	model.Metadata
}

// Accommodates reports whether the room type can be sold to a party of guests.
func (r RoomType) Accommodates(guests int) bool {
	return r.Active && r.Capacity >= guests
}
