package timezone

import (
	"time"

	"hotelbook/config"

	"github.com/rs/zerolog/log"
)

const defaultTimezone = "UTC"

var (
	appLocation *time.Location
)

func init() {
	appLocation = load(config.Get().App.Timezone)
}

func load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names like 'Asia/Kolkata' or 'UTC'")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// GetLocation returns the hotel's timezone. Check-in instants and refund windows are computed in it.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse parses value as a wall-clock time in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// At places the calendar date of day at the given hour in the application timezone. Stay dates are
// stored as midnight UTC, so only the date part of day is used.
func At(day time.Time, hour int) time.Time {
	year, month, date := day.Date()

	return time.Date(year, month, date, hour, 0, 0, 0, GetLocation())
}
