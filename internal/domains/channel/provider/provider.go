// Package provider defines the contract every distribution channel adapter implements.
// Adapters translate these shapes to their own wire formats and never return raw errors:
// failures come back as unsuccessful results.
package provider

//go:generate go run go.uber.org/mock/mockgen -source=./provider.go -destination=./mocks/provider_mock.go -package=mocks

import (
	"context"
	"time"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Provider interface {
	Name() string
	TestConnection(ctx context.Context) bool
	PushAvailability(ctx context.Context, updates []AvailabilityUpdate) SyncResult
	PushRates(ctx context.Context, updates []RateUpdate) SyncResult
	PullBookings(ctx context.Context, since time.Time) PullResult
	GetRoomMappings(ctx context.Context) MappingResult
}

type AvailabilityUpdate struct {
	RoomTypeID       string    `json:"room_type_id"`
	ExternalRoomCode string    `json:"external_room_code"`
	Date             time.Time `json:"date"`
	Available        int       `json:"available"`
}

type RateUpdate struct {
	RoomTypeID       string    `json:"room_type_id"`
	ExternalRoomCode string    `json:"external_room_code"`
	Date             time.Time `json:"date"`
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
}

type GuestContact struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

type ExternalBooking struct {
	ExternalID       string       `json:"external_id"`
	ExternalRoomCode string       `json:"external_room_code"`
	CheckIn          time.Time    `json:"check_in"`
	CheckOut         time.Time    `json:"check_out"`
	Guests           int          `json:"guests"`
	Guest            GuestContact `json:"guest"`
	TotalAmount      int64        `json:"total_amount"`
	Status           string       `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
}

// SyncResult reports the outcome of one provider call.
type SyncResult struct {
	Success        bool     `json:"success"`
	ItemsProcessed int      `json:"items_processed"`
	Errors         []string `json:"errors,omitempty"`
	Retryable      bool     `json:"retryable"`
}

// Outcome exposes the embedded result of richer result types.
func (r SyncResult) Outcome() SyncResult {
	return r
}

type PullResult struct {
	SyncResult
	Bookings []ExternalBooking `json:"bookings"`
}

type MappingResult struct {
	SyncResult
	// Mappings is keyed by internal room type id.
	Mappings map[string]string `json:"mappings"`
}

// Outcome is satisfied by SyncResult and every result embedding it.
type Outcome interface {
	Outcome() SyncResult
}

func Succeeded(items int) SyncResult {
	return SyncResult{Success: true, ItemsProcessed: items}
}
