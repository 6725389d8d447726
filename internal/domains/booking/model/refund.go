package model

import (
	"time"

	"hotelbook/shared/constant"
)

const (
	fullRefundNotice = constant.HoursPerDay * time.Hour

	fullRefundPercent    = 100
	partialRefundPercent = 50
)

// RefundPercent applies the cancellation policy: at least a day before check-in refunds everything,
// any time before check-in refunds half, and nothing after check-in.
func RefundPercent(now, checkInAt time.Time) int64 {
	notice := checkInAt.Sub(now)

	switch {
	case notice >= fullRefundNotice:
		return fullRefundPercent
	case notice >= 0:
		return partialRefundPercent
	default:
		return 0
	}
}

// RefundAmount rounds half-up to the nearest minor unit.
func RefundAmount(total int64, now, checkInAt time.Time) int64 {
	return (total*RefundPercent(now, checkInAt) + constant.PercentFactor/2) / constant.PercentFactor
}
