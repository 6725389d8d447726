package dto

import (
	"mime/multipart"

	"hotelbook/internal/domains/roomtype/model"
	"hotelbook/shared"
	gDto "hotelbook/shared/dto"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomTypeRequest struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Description string   `json:"description" validate:"omitempty,max=1000"`
	BaseRate    int64    `json:"base_rate"   validate:"gte=0"`
	Capacity    int      `json:"capacity"    validate:"required,min=1"`
	Amenities   []string `json:"amenities"   validate:"omitempty,dive,required,max=50"`
	Active      *bool    `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	amenities := pq.StringArray{}
	if c.Amenities != nil {
		amenities = c.Amenities
	}

	now := timezone.Now()

	return model.RoomType{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		BaseRate:    c.BaseRate,
		Capacity:    c.Capacity,
		Amenities:   amenities,
		Images:      pq.StringArray{},
		Active:      active,
		Metadata:    gModel.NewMetadata(now, user),
	}
}

type UpdateRoomTypeRequest struct {
	Name        string         `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description *string        `db:"description" json:"description" validate:"omitempty,max=1000"`
	BaseRate    *int64         `db:"base_rate"   json:"base_rate"   validate:"omitempty,gte=0"`
	Capacity    *int           `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	Amenities   pq.StringArray `db:"amenities"   json:"amenities"   validate:"omitempty,dive,required,max=50"`
	Active      *bool          `db:"active"      json:"active"      validate:"omitempty"`
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile multipart.File        `json:"-"`
}

type RemoveImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type RoomTypeResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BaseRate    int64    `json:"base_rate"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Active      bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.BaseRate = model.BaseRate
	r.Capacity = model.Capacity
	r.Amenities = orEmpty(model.Amenities)
	r.Images = orEmpty(model.Images)
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
