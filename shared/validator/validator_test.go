package validator_test

import (
	"strings"
	"testing"

	"hotelbook/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required"`
	CheckIn    string `json:"check_in"     validate:"required,dateonly"`
	CheckOut   string `json:"check_out"    validate:"required,dateonly"`
	Guests     int    `json:"guests"       validate:"gte=1,lte=10"`
	GuestEmail string `json:"guest_email"  validate:"omitempty,email"`
	Status     string `json:"status"       validate:"omitempty,oneof=PENDING PAID CANCELLED"`
	GuestName  string `json:"guest_name"   validate:"omitempty,min=2,max=20"`
}

func validStay() stayRequest {
	return stayRequest{
		RoomTypeID: "deluxe",
		CheckIn:    "2026-03-01",
		CheckOut:   "2026-03-03",
		Guests:     2,
		GuestEmail: "guest@example.com",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *stayRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(*stayRequest) {}},
		{name: "missing room type", mutate: func(r *stayRequest) { r.RoomTypeID = "" }, wantMsg: "room_type_id is required"},
		{name: "bad date", mutate: func(r *stayRequest) { r.CheckIn = "01/03/2026" }, wantMsg: "check_in must be a date in YYYY-MM-DD format"},
		{name: "too many guests", mutate: func(r *stayRequest) { r.Guests = 11 }, wantMsg: "guests must be less than or equal to 10"},
		{name: "zero guests", mutate: func(r *stayRequest) { r.Guests = 0 }, wantMsg: "guests must be greater than or equal to 1"},
		{name: "bad email", mutate: func(r *stayRequest) { r.GuestEmail = "nope" }, wantMsg: "guest_email must be a valid email address"},
		{name: "short name", mutate: func(r *stayRequest) { r.GuestName = "A" }, wantMsg: "guest_name must be at least 2 characters"},
		{name: "bad status", mutate: func(r *stayRequest) { r.Status = "HELD" }, wantMsg: "status must be one of PENDING PAID CANCELLED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStay()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2026-02-28", "dateonly"))
	assert.Error(t, validator.ValidateVar("2026-02-30", "dateonly"))
	assert.NoError(t, validator.ValidateVar(3, "gte=1"))
	assert.Error(t, validator.ValidateVar("", "required"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid body",
			body: `{"room_type_id":"deluxe","check_in":"2026-03-01","check_out":"2026-03-03","guests":2}`,
		},
		{
			name:    "malformed body",
			body:    `{"room_type_id":`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req stayRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "deluxe", req.RoomTypeID)
		})
	}
}
