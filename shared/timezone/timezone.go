package timezone

import (
	"hotel/config"
	"hotel/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const secondsPerDay = 24 * 60 * 60

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Europe/London', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns the current civil date in the application timezone.
func Today() time.Time {
	return Date(Now())
}

// Date drops the clock part of t, keeping the calendar day as seen in t's own location.
// The result is midnight UTC so that day arithmetic never crosses a DST change.
func Date(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO-8601 calendar date such as 2024-03-01.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(constant.DateFormat, value)
}

// FormatDate formats a calendar date as ISO-8601.
func FormatDate(t time.Time) string {
	return t.Format(constant.DateFormat)
}

// DaysBetween returns the number of whole days from a to b, negative when b is before a.
// Counted on Unix seconds, as time.Duration saturates after about 292 years.
func DaysBetween(a, b time.Time) int {
	return int((Date(b).Unix() - Date(a).Unix()) / secondsPerDay)
}

// InRange reports whether day falls within [from, to], both ends inclusive.
func InRange(day, from, to time.Time) bool {
	d := Date(day)

	return !d.Before(Date(from)) && !d.After(Date(to))
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")

		return time.UTC
	}

	return appLocation
}
