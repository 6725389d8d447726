package dto

import (
	"time"

	"hotelbook/internal/domains/channel/model"
	"hotelbook/internal/domains/channel/provider"
	"hotelbook/shared"
	gDto "hotelbook/shared/dto"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateMappingRequest struct {
	RoomTypeID   string `json:"room_type_id"  validate:"required,uuid"`
	Provider     string `json:"provider"      validate:"required,max=50"`
	ExternalCode string `json:"external_code" validate:"required,max=100"`
	Active       *bool  `json:"active"        validate:"omitempty"`
}

func (c *CreateMappingRequest) ToModel(user string) model.Mapping {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	now := timezone.Now()

	return model.Mapping{
		ID:           uuid.NewString(),
		RoomTypeID:   c.RoomTypeID,
		Provider:     c.Provider,
		ExternalCode: c.ExternalCode,
		Active:       active,
		Metadata:     gModel.NewMetadata(now, user),
	}
}

type UpdateMappingRequest struct {
	ExternalCode string `db:"external_code" json:"external_code" validate:"omitempty,max=100"`
	Active       *bool  `db:"active"        json:"active"        validate:"omitempty"`
}

type GetMappingsRequest struct {
	Provider   string `json:"provider"     validate:"omitempty,max=50"`
	RoomTypeID string `json:"room_type_id" validate:"omitempty"`
}

type MappingResponse struct {
	ID           string `json:"id"`
	RoomTypeID   string `json:"room_type_id"`
	Provider     string `json:"provider"`
	ExternalCode string `json:"external_code"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *MappingResponse) FromModel(m model.Mapping) {
	r.ID = m.ID
	r.RoomTypeID = m.RoomTypeID
	r.Provider = m.Provider
	r.ExternalCode = m.ExternalCode
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

type GetMappingsResponse struct {
	Mappings  []MappingResponse `json:"mappings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetMappingsResponse) FromModels(models []model.Mapping, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Mappings = make([]MappingResponse, len(models))
	for i, mod := range models {
		r.Mappings[i].FromModel(mod)
	}
}

type TriggerRequest struct {
	Operation string `json:"operation" validate:"required,oneof=push_availability push_rates pull_bookings test_connection get_room_mappings"`
	From      string `json:"from"      validate:"omitempty,dateonly"`
	To        string `json:"to"        validate:"omitempty,dateonly"`
}

// SyncResponse summarises one orchestrated operation after retries.
type SyncResponse struct {
	Provider       string   `json:"provider"`
	Operation      string   `json:"operation"`
	Success        bool     `json:"success"`
	Attempts       int      `json:"attempts"`
	ItemsProcessed int      `json:"items_processed"`
	Errors         []string `json:"errors"`
	Imported       int      `json:"imported,omitempty"`
	Cancelled      int      `json:"cancelled,omitempty"`
	Skipped        int      `json:"skipped,omitempty"`
	// Mappings is keyed by internal room type id.
	Mappings map[string]string `json:"mappings,omitempty"`
}

func (r *SyncResponse) FromResult(name, operation string, attempts int, result provider.SyncResult) {
	r.Provider = name
	r.Operation = operation
	r.Attempts = attempts
	r.Success = result.Success
	r.ItemsProcessed = result.ItemsProcessed
	r.Errors = append([]string{}, result.Errors...)
}

type ProviderResponse struct {
	Name string `json:"name"`
}

type GetSyncLogsRequest struct {
	Provider  string `json:"provider"  validate:"omitempty,max=50"`
	Operation string `json:"operation" validate:"omitempty,oneof=push_availability push_rates pull_bookings test_connection get_room_mappings apply_bookings"`
	Success   *bool  `json:"success"   validate:"omitempty"`
}

type SyncLogResponse struct {
	ID         string    `json:"id"`
	Provider   string    `json:"provider"`
	Operation  string    `json:"operation"`
	Direction  string    `json:"direction"`
	Request    any       `json:"request,omitempty"`
	Response   any       `json:"response,omitempty"`
	Success    bool      `json:"success"`
	Error      *string   `json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *SyncLogResponse) FromModel(m model.Payload) {
	r.ID = m.ID
	r.Provider = m.Provider
	r.Operation = m.Operation
	r.Direction = m.Direction
	r.Success = m.Success
	r.Error = m.Error
	r.DurationMs = m.DurationMs
	r.CreatedAt = m.CreatedAt

	if len(m.Request) > 0 {
		r.Request = m.Request
	}

	if len(m.Response) > 0 {
		r.Response = m.Response
	}
}

type GetSyncLogsResponse struct {
	Logs      []SyncLogResponse `json:"logs"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetSyncLogsResponse) FromModels(models []model.Payload, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]SyncLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}
