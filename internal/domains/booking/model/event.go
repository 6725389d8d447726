package model

import (
	"time"

	"hotelbook/shared/daterange"
)

// Event is published on booking.confirmed and booking.cancelled.
type Event struct {
	BookingID    string    `json:"booking_id"`
	RoomTypeID   string    `json:"room_type_id"`
	UserID       *string   `json:"user_id,omitempty"`
	Status       Status    `json:"status"`
	Source       string    `json:"source"`
	CheckIn      string    `json:"check_in"`
	CheckOut     string    `json:"check_out"`
	TotalAmount  int64     `json:"total_amount"`
	RefundAmount *int64    `json:"refund_amount,omitempty"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (b Booking) ToEvent(at time.Time) Event {
	return Event{
		BookingID:    b.ID,
		RoomTypeID:   b.RoomTypeID,
		UserID:       b.UserID,
		Status:       b.Status,
		Source:       b.Source,
		CheckIn:      daterange.Format(b.CheckIn),
		CheckOut:     daterange.Format(b.CheckOut),
		TotalAmount:  b.TotalAmount,
		RefundAmount: b.RefundAmount,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		OccurredAt:   at,
	}
}
