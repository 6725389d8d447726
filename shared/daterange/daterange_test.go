package daterange_test

import (
	"testing"
	"time"

	"hotelbook/shared/daterange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	got := daterange.Day(time.Date(2026, 11, 1, 23, 45, 0, 0, ist))

	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParse(t *testing.T) {
	got, err := daterange.Parse("2026-11-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-11-01", daterange.Format(got))

	_, err = daterange.Parse("01/11/2026")
	assert.ErrorContains(t, err, "expected YYYY-MM-DD")
}

func TestValidate(t *testing.T) {
	checkIn := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, daterange.Validate(checkIn, checkIn.AddDate(0, 0, 1)))
	assert.ErrorIs(t, daterange.Validate(checkIn, checkIn), daterange.ErrEmptyRange)
	assert.ErrorIs(t, daterange.Validate(checkIn, checkIn.AddDate(0, 0, -1)), daterange.ErrEmptyRange)
}

func TestNights(t *testing.T) {
	checkIn := time.Date(2026, 12, 30, 0, 0, 0, 0, time.UTC)

	nights := daterange.Nights(checkIn, checkIn.AddDate(0, 0, 3))

	assert.Equal(t, []string{"2026-12-30", "2026-12-31", "2027-01-01"}, daterange.Strings(nights))
	assert.Empty(t, daterange.Nights(checkIn, checkIn))
}
