package model_test

import (
	"testing"
	"time"

	"hotelbook/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to model.Status
		want     bool
	}{
		{model.StatusPending, model.StatusPaid, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusPaid, model.StatusCancelled, true},
		{model.StatusPaid, model.StatusPending, false},
		{model.StatusCancelled, model.StatusPaid, false},
		{model.StatusCancelled, model.StatusPending, false},
		{model.StatusCancelled, model.StatusCancelled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestRefundAmount_Boundaries(t *testing.T) {
	checkInAt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int64
	}{
		{"exactly 24h before", time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC), 1238000},
		{"23h59m before", time.Date(2026, 3, 9, 14, 1, 0, 0, time.UTC), 619000},
		{"at check-in", checkInAt, 619000},
		{"one minute after check-in", time.Date(2026, 3, 10, 14, 1, 0, 0, time.UTC), 0},
		{"a week before", time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC), 1238000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.RefundAmount(1238000, tt.now, checkInAt))
		})
	}
}

func TestRefundAmount_RoundsHalfUp(t *testing.T) {
	checkInAt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(4), model.RefundAmount(7, checkInAt.Add(-time.Hour), checkInAt))
}

func TestBooking_Nights(t *testing.T) {
	b := model.Booking{
		CheckIn:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	}

	assert.Len(t, b.Nights(), 2)
	assert.Equal(t, 2, b.Pricing().Nights)
	assert.False(t, b.OwnedBy("user-1"))
}
