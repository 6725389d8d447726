package model

import "hotelbook/shared/model"

const (
	TableName  = "rate_plans"
	EntityName = "rate_plan"

	FieldID         = "id"
	FieldName       = "name"
	FieldRoomTypeID = "room_type_id"
	FieldRefundable = "refundable"
)

// RatePlan describes a commercial package shown to guests. It does not change the computed price.
type RatePlan struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	RoomTypeID      string `db:"room_type_id"`
	Description     string `db:"description"`
	Refundable      bool   `db:"refundable"`
	DiscountPercent int    `db:"discount_percent"`
	model.Metadata
}
