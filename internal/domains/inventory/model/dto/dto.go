package dto

import (
	"hotelbook/internal/domains/inventory/model"
	"hotelbook/shared/daterange"
)

const MaxUpsertDays = 366

type UpsertInventoryRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required"`
	From       string `json:"from"         validate:"required,dateonly"`
	To         string `json:"to"           validate:"required,dateonly"`
	Allotment  int    `json:"allotment"    validate:"gte=0,lte=10000"`
}

type GetInventoryRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"omitempty"`
	From       string `json:"from"         validate:"required,dateonly"`
	To         string `json:"to"           validate:"required,dateonly"`
}

type InventoryResponse struct {
	RoomTypeID string `json:"room_type_id"`
	Date       string `json:"date"`
	Allotment  int    `json:"allotment"`
	Booked     int    `json:"booked"`
	Available  int    `json:"available"`
}

func (r *InventoryResponse) FromModel(model model.Inventory) {
	r.RoomTypeID = model.RoomTypeID
	r.Date = daterange.Format(model.Date)
	r.Allotment = model.Allotment
	r.Booked = model.Booked
	r.Available = model.Available()
}

type UpsertInventoryResponse struct {
	RoomTypeID string `json:"room_type_id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Days       int    `json:"days"`
}

func FromModels(models []model.Inventory) []InventoryResponse {
	res := make([]InventoryResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
