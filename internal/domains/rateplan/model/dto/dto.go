package dto

import (
	"hotelbook/internal/domains/rateplan/model"
	"hotelbook/shared"
	gDto "hotelbook/shared/dto"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateRatePlanRequest struct {
	Name            string `json:"name"             validate:"required,max=100"`
	RoomTypeID      string `json:"room_type_id"     validate:"required"`
	Description     string `json:"description"      validate:"omitempty,max=1000"`
	Refundable      bool   `json:"refundable"`
	DiscountPercent int    `json:"discount_percent" validate:"gte=0,lte=100"`
}

func (c *CreateRatePlanRequest) ToModel(user string) model.RatePlan {
	now := timezone.Now()

	return model.RatePlan{
		ID:              uuid.NewString(),
		Name:            c.Name,
		RoomTypeID:      c.RoomTypeID,
		Description:     c.Description,
		Refundable:      c.Refundable,
		DiscountPercent: c.DiscountPercent,
		Metadata:        gModel.NewMetadata(now, user),
	}
}

type UpdateRatePlanRequest struct {
	Name            string  `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Description     *string `db:"description"      json:"description"      validate:"omitempty,max=1000"`
	Refundable      *bool   `db:"refundable"       json:"refundable"`
	DiscountPercent *int    `db:"discount_percent" json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
}

type RatePlanResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RoomTypeID      string `json:"room_type_id"`
	Description     string `json:"description"`
	Refundable      bool   `json:"refundable"`
	DiscountPercent int    `json:"discount_percent"`
	gDto.Metadata
}

func (r *RatePlanResponse) FromModel(model model.RatePlan) {
	r.ID = model.ID
	r.Name = model.Name
	r.RoomTypeID = model.RoomTypeID
	r.Description = model.Description
	r.Refundable = model.Refundable
	r.DiscountPercent = model.DiscountPercent
	r.Metadata.FromModel(model.Metadata)
}

type GetRatePlansResponse struct {
	RatePlans []RatePlanResponse `json:"rate_plans"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRatePlansResponse) FromModels(models []model.RatePlan, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RatePlans = make([]RatePlanResponse, len(models))
	for i, mod := range models {
		r.RatePlans[i].FromModel(mod)
	}
}
