package model

import (
	"time"

	"hotelbook/shared/model"

	"github.com/jmoiron/sqlx/types"
)

const (
	MappingTableName  = "channel_mappings"
	MappingEntityName = "channel mapping"

	PayloadTableName  = "provider_payloads"
	PayloadEntityName = "provider payload"

	FieldID           = "id"
	FieldRoomTypeID   = "room_type_id"
	FieldProvider     = "provider"
	FieldExternalCode = "external_code"
	FieldActive       = "active"
	FieldOperation    = "operation"
	FieldSuccess      = "success"
	FieldCreatedAt    = "created_at"
)

const (
	OperationPushAvailability = "push_availability"
	OperationPushRates        = "push_rates"
	OperationPullBookings     = "pull_bookings"
	OperationTestConnection   = "test_connection"
	OperationGetRoomMappings  = "get_room_mappings"
	// OperationApplyBookings marks a pull whose bookings were all applied locally. Its time is the pull cursor.
	OperationApplyBookings = "apply_bookings"

	DirectionOutbound = "outbound"
	DirectionInbound  = "inbound"
)

// Mapping links a room type to the code a provider knows it by.
type Mapping struct {
	ID           string `db:"id"`
	RoomTypeID   string `db:"room_type_id"`
	Provider     string `db:"provider"`
	ExternalCode string `db:"external_code"`
	Active       bool   `db:"active"`
	model.Metadata
}

// Payload is one provider exchange. The table doubles as the sync log.
type Payload struct {
	ID         string         `db:"id"`
	Provider   string         `db:"provider"`
	Operation  string         `db:"operation"`
	Direction  string         `db:"direction"`
	Request    types.JSONText `db:"request"`
	Response   types.JSONText `db:"response"`
	Success    bool           `db:"success"`
	Error      *string        `db:"error"`
	DurationMs int64          `db:"duration_ms"`
	CreatedAt  time.Time      `db:"created_at"`
}
