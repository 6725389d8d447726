package model

import (
	"time"

	"hotelbook/internal/domains/pricing"
	"hotelbook/shared/daterange"
	"hotelbook/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                = "id"
	FieldUserID            = "user_id"
	FieldRoomTypeID        = "room_type_id"
	FieldCheckIn           = "check_in"
	FieldCheckOut          = "check_out"
	FieldStatus            = "status"
	FieldPaymentOrderID    = "payment_order_id"
	FieldPaymentID         = "payment_id"
	FieldRefundAmount      = "refund_amount"
	FieldCancelledAt       = "cancelled_at"
	FieldSource            = "source"
	FieldExternalBookingID = "external_booking_id"
	FieldCreatedAt         = "created_at"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
)

// SourceDirect marks bookings made through this application. Channel bookings carry the provider name.
const SourceDirect = "direct"

var transitions = map[Status][]Status{
	StatusPending: {StatusPaid, StatusCancelled},
	StatusPaid:    {StatusCancelled},
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

type Booking struct {
	ID                string     `db:"id"`
	UserID            *string    `db:"user_id"`
	RoomTypeID        string     `db:"room_type_id"`
	CheckIn           time.Time  `db:"check_in"`
	CheckOut          time.Time  `db:"check_out"`
	Guests            int        `db:"guests"`
	BaseRate          int64      `db:"base_rate"`
	RoomTotal         int64      `db:"room_total"`
	ServiceCharge     int64      `db:"service_charge"`
	TaxOnRoom         int64      `db:"tax_on_room"`
	TaxOnService      int64      `db:"tax_on_service"`
	TotalAmount       int64      `db:"total_amount"`
	Status            Status     `db:"status"`
	GuestName         string     `db:"guest_name"`
	GuestEmail        string     `db:"guest_email"`
	GuestPhone        *string    `db:"guest_phone"`
	PaymentOrderID    *string    `db:"payment_order_id"`
	PaymentID         *string    `db:"payment_id"`
	RefundAmount      *int64     `db:"refund_amount"`
	CancelledAt       *time.Time `db:"cancelled_at"`
	Source            string     `db:"source"`
	ExternalBookingID *string    `db:"external_booking_id"`
	model.Metadata
}

// ApplyPricing snapshots the breakdown onto the booking.
func (b *Booking) ApplyPricing(p pricing.Breakdown) {
	b.BaseRate = p.BaseRate
	b.RoomTotal = p.RoomTotal
	b.ServiceCharge = p.ServiceCharge
	b.TaxOnRoom = p.TaxOnRoom
	b.TaxOnService = p.TaxOnService
	b.TotalAmount = p.Total
}

// Pricing rebuilds the stored snapshot.
func (b Booking) Pricing() pricing.Breakdown {
	return pricing.Breakdown{
		BaseRate:      b.BaseRate,
		Nights:        len(b.Nights()),
		RoomTotal:     b.RoomTotal,
		ServiceCharge: b.ServiceCharge,
		TaxOnRoom:     b.TaxOnRoom,
		TaxOnService:  b.TaxOnService,
		Total:         b.TotalAmount,
	}
}

// Nights lists the inventory dates the stay occupies.
func (b Booking) Nights() []time.Time {
	return daterange.Nights(b.CheckIn, b.CheckOut)
}

func (b Booking) OwnedBy(userID string) bool {
	return b.UserID != nil && *b.UserID == userID
}
