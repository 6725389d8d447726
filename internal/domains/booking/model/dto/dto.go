package dto

import (
	"time"

	"hotelbook/infras/razorpay"
	"hotelbook/internal/domains/booking/model"
	"hotelbook/internal/domains/pricing"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	"hotelbook/shared/daterange"
	gDto "hotelbook/shared/dto"
	gModel "hotelbook/shared/model"
	"hotelbook/shared/timezone"
)

type CreateBookingRequest struct {
	RoomTypeID string  `json:"room_type_id"          validate:"required"`
	CheckIn    string  `json:"check_in"              validate:"required,dateonly"`
	CheckOut   string  `json:"check_out"             validate:"required,dateonly"`
	Guests     int     `json:"guests"                validate:"required,gte=1,lte=20"`
	GuestName  string  `json:"guest_name"            validate:"required,max=100"`
	GuestEmail string  `json:"guest_email"           validate:"required,email,max=100"`
	GuestPhone *string `json:"guest_phone,omitempty" validate:"omitempty,e164"`
}

// Dates parses the stay range.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	if checkIn, err = daterange.Parse(c.CheckIn); err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	if checkOut, err = daterange.Parse(c.CheckOut); err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

func (c *CreateBookingRequest) ToModel(id, user string, checkIn, checkOut time.Time, breakdown pricing.Breakdown) model.Booking {
	now := timezone.Now()

	booking := model.Booking{
		ID:         id,
		RoomTypeID: c.RoomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     c.Guests,
		Status:     model.StatusPending,
		GuestName:  c.GuestName,
		GuestEmail: c.GuestEmail,
		GuestPhone: c.GuestPhone,
		Source:     model.SourceDirect,
		Metadata:   gModel.NewMetadata(now, user),
	}

	if user != constant.ContextGuest && user != constant.ContextSystem {
		booking.UserID = &user
	}

	booking.ApplyPricing(breakdown)

	return booking
}

// ImportBookingRequest is a reservation received from a distribution channel.
type ImportBookingRequest struct {
	Source            string
	ExternalBookingID string
	RoomTypeID        string
	CheckIn           time.Time
	CheckOut          time.Time
	Guests            int
	GuestName         string
	GuestEmail        string
	GuestPhone        *string
	TotalAmount       int64
}

func (r *ImportBookingRequest) ToModel(id string, breakdown pricing.Breakdown) model.Booking {
	now := timezone.Now()

	booking := model.Booking{
		ID:                id,
		RoomTypeID:        r.RoomTypeID,
		CheckIn:           r.CheckIn,
		CheckOut:          r.CheckOut,
		Guests:            r.Guests,
		Status:            model.StatusPaid,
		GuestName:         r.GuestName,
		GuestEmail:        r.GuestEmail,
		GuestPhone:        r.GuestPhone,
		Source:            r.Source,
		ExternalBookingID: &r.ExternalBookingID,
		Metadata:          gModel.NewMetadata(now, r.Source),
	}

	booking.ApplyPricing(breakdown)

	// The channel collected payment; its figure is what the guest was charged.
	if r.TotalAmount > 0 {
		booking.TotalAmount = r.TotalAmount
	}

	return booking
}

type ImportBookingResponse struct {
	BookingID string `json:"booking_id"`
	Created   bool   `json:"created"`
}

type PaymentOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (r *PaymentOrderResponse) FromOrder(order razorpay.Order) {
	r.ID = order.ID
	r.Amount = order.Amount
	r.Currency = order.Currency
}

type BookingResponse struct {
	ID                string            `json:"id"`
	UserID            *string           `json:"user_id,omitempty"`
	RoomTypeID        string            `json:"room_type_id"`
	CheckIn           string            `json:"check_in"`
	CheckOut          string            `json:"check_out"`
	Guests            int               `json:"guests"`
	Pricing           pricing.Breakdown `json:"pricing"`
	Status            string            `json:"status"`
	GuestName         string            `json:"guest_name"`
	GuestEmail        string            `json:"guest_email"`
	GuestPhone        *string           `json:"guest_phone,omitempty"`
	PaymentOrderID    *string           `json:"payment_order_id,omitempty"`
	PaymentID         *string           `json:"payment_id,omitempty"`
	RefundAmount      *int64            `json:"refund_amount,omitempty"`
	CancelledAt       *string           `json:"cancelled_at,omitempty"`
	Source            string            `json:"source"`
	ExternalBookingID *string           `json:"external_booking_id,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.UserID = m.UserID
	r.RoomTypeID = m.RoomTypeID
	r.CheckIn = daterange.Format(m.CheckIn)
	r.CheckOut = daterange.Format(m.CheckOut)
	r.Guests = m.Guests
	r.Pricing = m.Pricing()
	r.Status = string(m.Status)
	r.GuestName = m.GuestName
	r.GuestEmail = m.GuestEmail
	r.GuestPhone = m.GuestPhone
	r.PaymentOrderID = m.PaymentOrderID
	r.PaymentID = m.PaymentID
	r.RefundAmount = m.RefundAmount
	r.Source = m.Source
	r.ExternalBookingID = m.ExternalBookingID
	r.Metadata.FromModel(m.Metadata)

	if m.CancelledAt != nil {
		cancelledAt := timezone.Format(*m.CancelledAt, constant.DateFormat)
		r.CancelledAt = &cancelledAt
	}
}

type CreateBookingResponse struct {
	Booking      BookingResponse      `json:"booking"`
	PaymentOrder PaymentOrderResponse `json:"payment_order"`
}

type GetBookingsRequest struct {
	Status     string `json:"status"       validate:"omitempty,oneof=PENDING PAID CANCELLED"`
	RoomTypeID string `json:"room_type_id" validate:"omitempty"`
	Source     string `json:"source"       validate:"omitempty,max=50"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

const (
	WebhookStatusConfirmed = "confirmed"
	WebhookStatusIgnored   = "ignored"
)

type WebhookResponse struct {
	Status         string `json:"status"`
	BookingID      string `json:"booking_id,omitempty"`
	AmountMismatch bool   `json:"amount_mismatch,omitempty"`
}
