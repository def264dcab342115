package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// TimestampLayout is the layout of every created_at/updated_at value we write
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	if durationStr == "" {
		return defaultDuration
	}
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Global logger: config may not be loaded yet when this runs.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// Timestamp formats t in UTC with millisecond precision
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Now is Timestamp(time.Now())
func Now() string {
	return Timestamp(time.Now())
}
