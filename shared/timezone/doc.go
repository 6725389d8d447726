// Package timezone pins wall-clock time to the hotel's location, configured through APP_TIMEZONE
// (an IANA name such as "Asia/Kolkata"; unknown or empty names fall back to UTC).
//
// Stay dates themselves are calendar dates (see package daterange). This package is only used where a
// date meets a clock: audit timestamps, and the check-in instant that decides the refund tier:
//
//	checkInAt := timezone.At(booking.CheckIn, cfg.Booking.CheckInHour)
//	hoursLeft := checkInAt.Sub(timezone.Now()).Hours()
package timezone
