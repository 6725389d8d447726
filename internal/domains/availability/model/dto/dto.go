package dto

import (
	"hotelbook/internal/domains/availability/model"
	"hotelbook/internal/domains/pricing"
)

type SearchRequest struct {
	CheckIn  string `json:"check_in"  validate:"required,dateonly"`
	CheckOut string `json:"check_out" validate:"required,dateonly"`
	Guests   int    `json:"guests"    validate:"required,min=1,max=20"`
}

type AvailableRoomResponse struct {
	RoomTypeID  string            `json:"room_type_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Capacity    int               `json:"capacity"`
	Amenities   []string          `json:"amenities"`
	Images      []string          `json:"images"`
	Available   int               `json:"available"`
	Pricing     pricing.Breakdown `json:"pricing"`
}

func (r *AvailableRoomResponse) FromModel(room model.AvailableRoom) {
	r.RoomTypeID = room.RoomType.ID
	r.Name = room.RoomType.Name
	r.Description = room.RoomType.Description
	r.Capacity = room.RoomType.Capacity
	r.Amenities = append([]string{}, room.RoomType.Amenities...)
	r.Images = append([]string{}, room.RoomType.Images...)
	r.Available = room.Available
	r.Pricing = room.Pricing
}

type SearchResponse struct {
	CheckIn  string                  `json:"check_in"`
	CheckOut string                  `json:"check_out"`
	Guests   int                     `json:"guests"`
	Nights   int                     `json:"nights"`
	Rooms    []AvailableRoomResponse `json:"rooms"`
}

func (r *SearchResponse) FromModels(rooms []model.AvailableRoom) {
	r.Rooms = make([]AvailableRoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}
}
